package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/mergington/internal/app/models/dto"
	"github.com/yigit/mergington/internal/app/services"
	"github.com/yigit/mergington/internal/middleware"
)

// ActivityController handles roster related operations
type ActivityController struct {
	activityService services.ActivityService
}

// NewActivityController creates a new ActivityController
func NewActivityController(activityService services.ActivityService) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

// GetAllActivities handles listing every activity
// @Summary List activities
// @Description Returns all activities keyed by name, with their participants and remaining capacity
// @Tags activities
// @Produce json
// @Success 200 {object} dto.ActivityListResponse "Activities retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities [get]
func (c *ActivityController) GetAllActivities(ctx *gin.Context) {
	activities, err := c.activityService.ListActivities(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, activities)
}

// Signup handles enrolling a student in an activity
// @Summary Sign up for an activity
// @Description Adds the student email to the activity's participants
// @Tags activities
// @Accept json
// @Produce json
// @Param activityName path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} dto.SuccessResponse "Student signed up"
// @Failure 400 {object} dto.ErrorResponse "Student already signed up or activity is full"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Failure 422 {object} dto.ErrorResponse "Missing or malformed email"
// @Router /activities/{activityName}/signup [post]
func (c *ActivityController) Signup(ctx *gin.Context) {
	activityName := ctx.Param("activityName")

	var req dto.ParticipantRequest
	if err := middleware.BindParticipant(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.activityService.Signup(ctx.Request.Context(), activityName, req.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Unregister handles removing a student from an activity
// @Summary Unregister from an activity
// @Description Removes the student email from the activity's participants
// @Tags activities
// @Accept json
// @Produce json
// @Param activityName path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} dto.SuccessResponse "Student unregistered"
// @Failure 400 {object} dto.ErrorResponse "Student is not registered for this activity"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Failure 422 {object} dto.ErrorResponse "Missing or malformed email"
// @Router /activities/{activityName}/unregister [delete]
func (c *ActivityController) Unregister(ctx *gin.Context) {
	activityName := ctx.Param("activityName")

	var req dto.ParticipantRequest
	if err := middleware.BindParticipant(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.activityService.Unregister(ctx.Request.Context(), activityName, req.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
