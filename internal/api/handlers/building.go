package handlers

import (
	"net/http"

	"org-directory/internal/service"

	"github.com/gin-gonic/gin"
)

// BuildingHandler handles HTTP requests for buildings
type BuildingHandler struct {
	service service.BuildingServiceInterface
}

// NewBuildingHandler creates a new building handler
func NewBuildingHandler(service service.BuildingServiceInterface) *BuildingHandler {
	return &BuildingHandler{service: service}
}

// CreateBuilding handles POST /api/v1/buildings
// @Summary Create a building
// @Description Create a building at the given address and coordinates
// @Tags buildings
// @Accept json
// @Produce json
// @Param building body service.CreateBuildingRequest true "Building data"
// @Success 201 {object} service.BuildingResponse "Successfully created building"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /buildings [post]
func (h *BuildingHandler) CreateBuilding(c *gin.Context) {
	var req service.CreateBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	building, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create building")
		return
	}

	c.JSON(http.StatusCreated, building)
}

// ListBuildings handles GET /api/v1/buildings
// @Summary List buildings
// @Description Get every building in the directory
// @Tags buildings
// @Produce json
// @Success 200 {array} service.BuildingResponse "Buildings"
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /buildings [get]
func (h *BuildingHandler) ListBuildings(c *gin.Context) {
	buildings, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get buildings")
		return
	}

	c.JSON(http.StatusOK, buildings)
}

// GetBuilding handles GET /api/v1/buildings/:id
// @Summary Get building by ID
// @Tags buildings
// @Produce json
// @Param id path int true "Building ID"
// @Success 200 {object} service.BuildingResponse "Building"
// @Failure 400 {object} ErrorResponse "Invalid building ID"
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 404 {object} ErrorResponse "Building not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /buildings/{id} [get]
func (h *BuildingHandler) GetBuilding(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "building")
	if !ok {
		return
	}

	building, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get building")
		return
	}

	c.JSON(http.StatusOK, building)
}
