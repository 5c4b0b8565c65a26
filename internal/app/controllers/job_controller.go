package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ets-hub/etshub-backend/internal/app/models/dto"
	"github.com/ets-hub/etshub-backend/internal/app/services"
	"github.com/ets-hub/etshub-backend/internal/middleware"
	"github.com/ets-hub/etshub-backend/internal/pkg/helpers"
)

// JobController handles job posting operations
type JobController struct {
	jobService *services.JobService
}

// NewJobController creates a new JobController
func NewJobController(jobService *services.JobService) *JobController {
	return &JobController{jobService: jobService}
}

// ListJobs handles retrieving job postings with filtering and pagination
// @Summary List job postings
// @Description Retrieves a paginated list of postings, newest first. Anonymous callers only see active postings; authenticated callers may pass includeInactive=true.
// @Tags jobs
// @Produce json
// @Param jobType query string false "Filter by job type"
// @Param location query string false "Filter by location substring"
// @Param search query string false "Search in title, company, description"
// @Param includeInactive query bool false "Include inactive postings (authenticated only)"
// @Param page query int false "Page number (1-based)" default(1)
// @Param limit query int false "Page size (default 10, max 100)" default(10)
// @Success 200 {object} dto.PaginatedResponse
// @Router /jobs [get]
func (c *JobController) ListJobs(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)

	filter := dto.JobFilter{
		JobType:  ctx.Query("jobType"),
		Location: ctx.Query("location"),
		Search:   ctx.Query("search"),
		Page:     page,
		Limit:    limit,
	}
	// Inactive postings stay hidden from anonymous callers no matter
	// what the query string says.
	if ctx.Query("includeInactive") == "true" && middleware.IsAuthenticated(ctx) {
		filter.IncludeInactive = true
	}

	response, err := c.jobService.ListJobs(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetJob handles retrieving a single posting by slug
// @Summary Get a job posting
// @Tags jobs
// @Produce json
// @Param slug path string true "Job slug"
// @Success 200 {object} models.Job
// @Failure 404 {object} dto.ErrorResponse
// @Router /jobs/{slug} [get]
func (c *JobController) GetJob(ctx *gin.Context) {
	job, err := c.jobService.GetJob(ctx.Request.Context(), ctx.Param("slug"), middleware.IsAuthenticated(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, job)
}

// CreateJob handles creating a posting
// @Summary Create a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param job body dto.CreateJobRequest true "Job payload"
// @Success 201 {object} models.Job
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /jobs [post]
func (c *JobController) CreateJob(ctx *gin.Context) {
	var req dto.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	job, err := c.jobService.CreateJob(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, job)
}

// UpdateJob handles a partial posting update (PUT and PATCH share it)
// @Summary Update a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Job slug"
// @Param job body dto.UpdateJobRequest true "Fields to update"
// @Success 200 {object} models.Job
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /jobs/{slug} [put]
func (c *JobController) UpdateJob(ctx *gin.Context) {
	var req dto.UpdateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	job, err := c.jobService.UpdateJob(ctx.Request.Context(), ctx.Param("slug"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, job)
}

// DeleteJob handles deleting a posting; its applications are preserved
// @Summary Delete a job posting
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Job slug"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /jobs/{slug} [delete]
func (c *JobController) DeleteJob(ctx *gin.Context) {
	if err := c.jobService.DeleteJob(ctx.Request.Context(), ctx.Param("slug")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Job deleted. All applications will be preserved."})
}
