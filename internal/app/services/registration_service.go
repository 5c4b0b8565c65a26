package services

import (
	"context"
	"fmt"

	"github.com/ets-hub/etshub-backend/internal/app/models"
	"github.com/ets-hub/etshub-backend/internal/app/models/dto"
	"github.com/ets-hub/etshub-backend/internal/pkg/apperrors"
	"github.com/ets-hub/etshub-backend/internal/pkg/formrelay"
	"github.com/ets-hub/etshub-backend/internal/pkg/helpers"
	"github.com/ets-hub/etshub-backend/internal/pkg/validation"
)

// communityMemberStore is the repository surface for community sign-ups.
type communityMemberStore interface {
	List(ctx context.Context, offset uint64, limit int) ([]models.CommunityMember, int64, error)
	Create(ctx context.Context, m *models.CommunityMember) error
}

// volunteerApplicationStore is the repository surface for volunteer sign-ups.
type volunteerApplicationStore interface {
	List(ctx context.Context, offset uint64, limit int) ([]models.VolunteerApplication, int64, error)
	Create(ctx context.Context, a *models.VolunteerApplication) error
}

// CommunityRegistrationsDefaultLimit is the page size the dashboard's
// registrations table expects when none is given.
const CommunityRegistrationsDefaultLimit = 100

// RegistrationService handles the public sign-up forms
type RegistrationService struct {
	communityRepo communityMemberStore
	volunteerRepo volunteerApplicationStore
	relay         *formrelay.Relay
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(communityRepo communityMemberStore, volunteerRepo volunteerApplicationStore, relay *formrelay.Relay) *RegistrationService {
	return &RegistrationService{
		communityRepo: communityRepo,
		volunteerRepo: volunteerRepo,
		relay:         relay,
	}
}

// RegisterCommunityMember validates and stores a community sign-up,
// then forwards a copy to the configured form relay if one is set.
func (s *RegistrationService) RegisterCommunityMember(ctx context.Context, req *dto.RegisterCommunityMemberRequest) (*models.CommunityMember, error) {
	missing := validation.FirstMissing([]validation.Field{
		{Name: "fullName", Value: req.FullName},
		{Name: "email", Value: req.Email},
	})
	if missing != "" {
		return nil, apperrors.NewMissingFieldError(missing)
	}
	if !validation.IsValidEmail(req.Email) {
		return nil, apperrors.NewInvalidEmailError("email")
	}

	member := &models.CommunityMember{
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Occupation: req.Occupation,
		Motivation: req.Motivation,
	}

	if err := s.communityRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	if s.relay.Enabled() {
		s.relay.SendAsync("community", map[string]string{
			"fullName":   member.FullName,
			"email":      member.Email,
			"phone":      member.Phone,
			"occupation": member.Occupation,
			"motivation": member.Motivation,
		})
	}

	return member, nil
}

// RegisterVolunteer validates and stores a volunteer sign-up, then
// forwards a copy to the configured form relay if one is set.
func (s *RegistrationService) RegisterVolunteer(ctx context.Context, req *dto.RegisterVolunteerRequest) (*models.VolunteerApplication, error) {
	missing := validation.FirstMissing([]validation.Field{
		{Name: "fullName", Value: req.FullName},
		{Name: "email", Value: req.Email},
		{Name: "areaOfInterest", Value: req.AreaOfInterest},
	})
	if missing != "" {
		return nil, apperrors.NewMissingFieldError(missing)
	}
	if !validation.IsValidEmail(req.Email) {
		return nil, apperrors.NewInvalidEmailError("email")
	}

	app := &models.VolunteerApplication{
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		AreaOfInterest: req.AreaOfInterest,
		Experience:     req.Experience,
		Motivation:     req.Motivation,
	}

	if err := s.volunteerRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	if s.relay.Enabled() {
		s.relay.SendAsync("volunteer", map[string]string{
			"fullName":       app.FullName,
			"email":          app.Email,
			"phone":          app.Phone,
			"areaOfInterest": app.AreaOfInterest,
			"experience":     app.Experience,
			"motivation":     app.Motivation,
		})
	}

	return app, nil
}

// ListCommunityMembers returns one page of community sign-ups for the
// dashboard, newest first.
func (s *RegistrationService) ListCommunityMembers(ctx context.Context, filter dto.RegistrationFilter) (*dto.PaginatedResponse, error) {
	limit := helpers.NormalizeLimit(filter.Limit, CommunityRegistrationsDefaultLimit)
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, limit)

	members, total, err := s.communityRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list community members: %w", err)
	}

	resp := dto.NewPaginatedResponse(members, helpers.NewPaginationInfo(total, filter.Page, limit))
	return &resp, nil
}

// ListVolunteerApplications returns one page of volunteer sign-ups for
// the dashboard, newest first.
func (s *RegistrationService) ListVolunteerApplications(ctx context.Context, filter dto.RegistrationFilter) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Limit)

	apps, total, err := s.volunteerRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list volunteer applications: %w", err)
	}

	resp := dto.NewPaginatedResponse(apps, helpers.NewPaginationInfo(total, filter.Page, limit))
	return &resp, nil
}
