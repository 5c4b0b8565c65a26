package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ets-hub/etshub-backend/internal/app/models/dto"
	"github.com/ets-hub/etshub-backend/internal/app/services"
	"github.com/ets-hub/etshub-backend/internal/middleware"
	"github.com/ets-hub/etshub-backend/internal/pkg/helpers"
)

// VolunteerController handles volunteer profile operations
type VolunteerController struct {
	volunteerService *services.VolunteerService
}

// NewVolunteerController creates a new VolunteerController
func NewVolunteerController(volunteerService *services.VolunteerService) *VolunteerController {
	return &VolunteerController{volunteerService: volunteerService}
}

// ListVolunteers handles retrieving volunteer profiles
// @Summary List volunteers
// @Tags volunteers
// @Produce json
// @Param search query string false "Search in name, role, specialty"
// @Param role query string false "Filter by role"
// @Param page query int false "Page number (1-based)" default(1)
// @Param limit query int false "Page size (default 10, max 100)" default(10)
// @Success 200 {object} dto.PaginatedResponse
// @Router /volunteers [get]
func (c *VolunteerController) ListVolunteers(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)

	filter := dto.VolunteerFilter{
		Search: ctx.Query("search"),
		Role:   ctx.Query("role"),
		Page:   page,
		Limit:  limit,
	}

	response, err := c.volunteerService.ListVolunteers(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetVolunteer handles retrieving a single profile by ID or slug
// @Summary Get a volunteer
// @Tags volunteers
// @Produce json
// @Param id path string true "Volunteer ID or slug"
// @Success 200 {object} models.Volunteer
// @Failure 404 {object} dto.ErrorResponse
// @Router /volunteers/{id} [get]
func (c *VolunteerController) GetVolunteer(ctx *gin.Context) {
	volunteer, err := c.volunteerService.GetVolunteer(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, volunteer)
}

// CreateVolunteer handles creating a profile
// @Summary Create a volunteer
// @Tags volunteers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param volunteer body dto.CreateVolunteerRequest true "Volunteer payload"
// @Success 201 {object} models.Volunteer
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /volunteers [post]
func (c *VolunteerController) CreateVolunteer(ctx *gin.Context) {
	var req dto.CreateVolunteerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	volunteer, err := c.volunteerService.CreateVolunteer(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, volunteer)
}

// UpdateVolunteer handles a partial profile update
// @Summary Update a volunteer
// @Tags volunteers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Volunteer ID or slug"
// @Param volunteer body dto.UpdateVolunteerRequest true "Fields to update"
// @Success 200 {object} models.Volunteer
// @Failure 404 {object} dto.ErrorResponse
// @Router /volunteers/{id} [put]
func (c *VolunteerController) UpdateVolunteer(ctx *gin.Context) {
	var req dto.UpdateVolunteerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	volunteer, err := c.volunteerService.UpdateVolunteer(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, volunteer)
}

// DeleteVolunteer handles deleting a profile
// @Summary Delete a volunteer
// @Tags volunteers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Volunteer ID or slug"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /volunteers/{id} [delete]
func (c *VolunteerController) DeleteVolunteer(ctx *gin.Context) {
	if err := c.volunteerService.DeleteVolunteer(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Volunteer deleted"})
}

// Appreciate handles the public appreciation button
// @Summary Appreciate a volunteer
// @Description Increments the profile's appreciation counter and returns the new value.
// @Tags volunteers
// @Produce json
// @Param id path string true "Volunteer ID or slug"
// @Success 200 {object} dto.AppreciationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /volunteers/{id}/appreciate [post]
func (c *VolunteerController) Appreciate(ctx *gin.Context) {
	count, err := c.volunteerService.Appreciate(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AppreciationResponse{AppreciationCount: count})
}
