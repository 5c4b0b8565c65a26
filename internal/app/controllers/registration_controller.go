package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ets-hub/etshub-backend/internal/app/models/dto"
	"github.com/ets-hub/etshub-backend/internal/app/services"
	"github.com/ets-hub/etshub-backend/internal/middleware"
	"github.com/ets-hub/etshub-backend/internal/pkg/helpers"
)

// RegistrationController handles the public sign-up forms and the
// dashboard's registration listings
type RegistrationController struct {
	registrationService *services.RegistrationService
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService *services.RegistrationService) *RegistrationController {
	return &RegistrationController{registrationService: registrationService}
}

// RegisterCommunityMember handles the "join the community" form
// @Summary Register as a community member
// @Tags registrations
// @Accept json
// @Produce json
// @Param registration body dto.RegisterCommunityMemberRequest true "Registration payload"
// @Success 201 {object} models.CommunityMember
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /register/community [post]
func (c *RegistrationController) RegisterCommunityMember(ctx *gin.Context) {
	var req dto.RegisterCommunityMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	member, err := c.registrationService.RegisterCommunityMember(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, member)
}

// RegisterVolunteer handles the "volunteer with us" form
// @Summary Register as a volunteer
// @Tags registrations
// @Accept json
// @Produce json
// @Param registration body dto.RegisterVolunteerRequest true "Registration payload"
// @Success 201 {object} models.VolunteerApplication
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /register/volunteer [post]
func (c *RegistrationController) RegisterVolunteer(ctx *gin.Context) {
	var req dto.RegisterVolunteerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	app, err := c.registrationService.RegisterVolunteer(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, app)
}

// ListCommunityMembers handles the dashboard's community registrations table
// @Summary List community registrations
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Param limit query int false "Page size (default 100, max 100)" default(100)
// @Success 200 {object} dto.PaginatedResponse
// @Router /register/community [get]
func (c *RegistrationController) ListCommunityMembers(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParamsWithDefault(ctx, services.CommunityRegistrationsDefaultLimit)

	response, err := c.registrationService.ListCommunityMembers(ctx.Request.Context(), dto.RegistrationFilter{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListVolunteerApplications handles the dashboard's volunteer sign-ups table
// @Summary List volunteer registrations
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Param limit query int false "Page size (default 10, max 100)" default(10)
// @Success 200 {object} dto.PaginatedResponse
// @Router /register/volunteer [get]
func (c *RegistrationController) ListVolunteerApplications(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)

	response, err := c.registrationService.ListVolunteerApplications(ctx.Request.Context(), dto.RegistrationFilter{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
