package handlers

import (
	"net/http"

	"org-directory/internal/service"

	"github.com/gin-gonic/gin"
)

// ActivityHandler handles HTTP requests for activities
type ActivityHandler struct {
	service service.ActivityServiceInterface
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(service service.ActivityServiceInterface) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// CreateActivity handles POST /api/v1/activities
// @Summary Create an activity
// @Description Create an activity, optionally below a parent. The level is derived from the parent and at most 3.
// @Tags activities
// @Accept json
// @Produce json
// @Param activity body service.CreateActivityRequest true "Activity data"
// @Success 201 {object} service.ActivityResponse "Successfully created activity"
// @Failure 400 {object} ErrorResponse "Invalid request or nesting too deep"
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /activities [post]
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var req service.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	activity, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create activity")
		return
	}

	c.JSON(http.StatusCreated, activity)
}

// GetActivity handles GET /api/v1/activities/:id
// @Summary Get activity by ID
// @Tags activities
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} service.ActivityResponse "Activity"
// @Failure 400 {object} ErrorResponse "Invalid activity ID"
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 404 {object} ErrorResponse "Activity not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /activities/{id} [get]
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "activity")
	if !ok {
		return
	}

	activity, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get activity")
		return
	}

	c.JSON(http.StatusOK, activity)
}
