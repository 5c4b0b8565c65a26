package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ets-hub/etshub-backend/internal/app/models/dto"
	"github.com/ets-hub/etshub-backend/internal/app/services"
	"github.com/ets-hub/etshub-backend/internal/middleware"
	"github.com/ets-hub/etshub-backend/internal/pkg/helpers"
)

// ApplicationController handles job application operations
type ApplicationController struct {
	applicationService *services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: applicationService}
}

// ListApplications handles retrieving a posting's applications
// @Summary List applications for a job
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Job slug"
// @Param status query string false "Filter by status (pending, reviewed, accepted, rejected)"
// @Param page query int false "Page number (1-based)" default(1)
// @Param limit query int false "Page size (default 10, max 100)" default(10)
// @Success 200 {object} dto.PaginatedResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /jobs/{slug}/apply [get]
func (c *ApplicationController) ListApplications(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)

	filter := dto.ApplicationFilter{
		Status: ctx.Query("status"),
		Page:   page,
		Limit:  limit,
	}

	response, err := c.applicationService.ListApplications(ctx.Request.Context(), ctx.Param("slug"), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// Apply handles the public application form
// @Summary Apply for a job
// @Description Submits an application against an active posting. One application per email per posting.
// @Tags applications
// @Accept json
// @Produce json
// @Param slug path string true "Job slug"
// @Param application body dto.CreateJobApplicationRequest true "Application payload"
// @Success 201 {object} models.JobApplication
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /jobs/{slug}/apply [post]
func (c *ApplicationController) Apply(ctx *gin.Context) {
	var req dto.CreateJobApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	app, err := c.applicationService.Apply(ctx.Request.Context(), ctx.Param("slug"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, app)
}

// UpdateStatus handles setting an application's review label
// @Summary Update application status
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Job slug"
// @Param id query int true "Application ID"
// @Param status body dto.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} models.JobApplication
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /jobs/{slug}/apply [patch]
func (c *ApplicationController) UpdateStatus(ctx *gin.Context) {
	applicationID, err := strconv.ParseInt(ctx.Query("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid application ID"))
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	app, err := c.applicationService.UpdateStatus(ctx.Request.Context(), ctx.Param("slug"), applicationID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, app)
}

// DeleteApplication handles deleting a single application
// @Summary Delete an application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Job slug"
// @Param id query int true "Application ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /jobs/{slug}/apply [delete]
func (c *ApplicationController) DeleteApplication(ctx *gin.Context) {
	applicationID, err := strconv.ParseInt(ctx.Query("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid application ID"))
		return
	}

	if err := c.applicationService.DeleteApplication(ctx.Request.Context(), ctx.Param("slug"), applicationID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Application deleted"})
}
