package handlers

import (
	"net/http"

	"org-directory/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

type radiusQuery struct {
	Latitude  *float64 `form:"latitude" binding:"required"`
	Longitude *float64 `form:"longitude" binding:"required"`
	Radius    *float64 `form:"radius" binding:"required"`
}

type rectangleQuery struct {
	MinLat *float64 `form:"min_lat" binding:"required"`
	MaxLat *float64 `form:"max_lat" binding:"required"`
	MinLon *float64 `form:"min_lon" binding:"required"`
	MaxLon *float64 `form:"max_lon" binding:"required"`
}

// Name must be present but may be empty, which matches every organization
type nameSearchQuery struct {
	Name  *string `form:"name" binding:"required"`
	Skip  int     `form:"skip,default=0"`
	Limit int     `form:"limit,default=100"`
}

// CreateOrganization handles POST /api/v1/organizations
// @Summary Create an organization
// @Description Create an organization in an existing building, linked to existing activities
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization data"
// @Success 201 {object} service.OrganizationResponse "Successfully created organization"
// @Failure 400 {object} ErrorResponse "Invalid request body or unknown references"
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	org, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create organization")
		return
	}

	c.JSON(http.StatusCreated, org)
}

// GetOrganization handles GET /api/v1/organizations/:id
// @Summary Get organization by ID
// @Tags organizations
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {object} service.OrganizationResponse "Organization with building and activities"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "organization")
	if !ok {
		return
	}

	org, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get organization")
		return
	}

	c.JSON(http.StatusOK, org)
}

// GetByBuilding handles GET /api/v1/organizations/by-building/:building_id
// @Summary List organizations in a building
// @Tags organizations
// @Produce json
// @Param building_id path int true "Building ID"
// @Success 200 {array} service.OrganizationResponse "Organizations"
// @Failure 400 {object} ErrorResponse "Invalid building ID"
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organizations/by-building/{building_id} [get]
func (h *OrganizationHandler) GetByBuilding(c *gin.Context) {
	buildingID, ok := parseIDParam(c, "building_id", "building")
	if !ok {
		return
	}

	orgs, err := h.service.GetByBuilding(c.Request.Context(), buildingID)
	if err != nil {
		respondError(c, err, "Failed to get organizations")
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// GetByActivity handles GET /api/v1/organizations/by-activity/:activity_id
// @Summary List organizations by activity
// @Description Organizations tagged with the activity or with any activity nested below it
// @Tags organizations
// @Produce json
// @Param activity_id path int true "Activity ID"
// @Success 200 {array} service.OrganizationResponse "Organizations"
// @Failure 400 {object} ErrorResponse "Invalid activity ID"
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organizations/by-activity/{activity_id} [get]
func (h *OrganizationHandler) GetByActivity(c *gin.Context) {
	activityID, ok := parseIDParam(c, "activity_id", "activity")
	if !ok {
		return
	}

	orgs, err := h.service.GetByActivity(c.Request.Context(), activityID)
	if err != nil {
		respondError(c, err, "Failed to get organizations")
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// GetInRadius handles GET /api/v1/organizations/in-radius
// @Summary List organizations within a radius
// @Description Organizations whose building lies within radius kilometers of the point (great-circle distance)
// @Tags organizations
// @Produce json
// @Param latitude query number true "Center latitude"
// @Param longitude query number true "Center longitude"
// @Param radius query number true "Radius in kilometers"
// @Success 200 {array} service.OrganizationResponse "Organizations"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organizations/in-radius [get]
func (h *OrganizationHandler) GetInRadius(c *gin.Context) {
	var q radiusQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return
	}

	orgs, err := h.service.GetInRadius(c.Request.Context(), *q.Latitude, *q.Longitude, *q.Radius)
	if err != nil {
		respondError(c, err, "Failed to get organizations")
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// GetInRectangle handles GET /api/v1/organizations/in-rectangle
// @Summary List organizations inside a rectangle
// @Description Organizations whose building lies inside the latitude/longitude box, edges included
// @Tags organizations
// @Produce json
// @Param min_lat query number true "Minimum latitude"
// @Param max_lat query number true "Maximum latitude"
// @Param min_lon query number true "Minimum longitude"
// @Param max_lon query number true "Maximum longitude"
// @Success 200 {array} service.OrganizationResponse "Organizations"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organizations/in-rectangle [get]
func (h *OrganizationHandler) GetInRectangle(c *gin.Context) {
	var q rectangleQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return
	}

	orgs, err := h.service.GetInRectangle(c.Request.Context(), *q.MinLat, *q.MaxLat, *q.MinLon, *q.MaxLon)
	if err != nil {
		respondError(c, err, "Failed to get organizations")
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// SearchByName handles GET /api/v1/organizations/search/by-name
// @Summary Search organizations by name
// @Description Case-insensitive substring match on the organization name
// @Tags organizations
// @Produce json
// @Param name query string true "Part of the name"
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows (1-1000)" default(100)
// @Success 200 {array} service.OrganizationResponse "Organizations"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organizations/search/by-name [get]
func (h *OrganizationHandler) SearchByName(c *gin.Context) {
	var q nameSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return
	}

	orgs, err := h.service.SearchByName(c.Request.Context(), *q.Name, q.Skip, q.Limit)
	if err != nil {
		respondError(c, err, "Failed to search organizations")
		return
	}

	c.JSON(http.StatusOK, orgs)
}
