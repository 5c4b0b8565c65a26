package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ets-hub/etshub-backend/internal/app/models"
	"github.com/ets-hub/etshub-backend/internal/app/models/dto"
	"github.com/ets-hub/etshub-backend/internal/pkg/apperrors"
	"github.com/ets-hub/etshub-backend/internal/pkg/helpers"
	"github.com/ets-hub/etshub-backend/internal/pkg/slug"
	"github.com/ets-hub/etshub-backend/internal/pkg/validation"
)

// volunteerStore is the repository surface the volunteer service needs.
type volunteerStore interface {
	List(ctx context.Context, filter dto.VolunteerFilter, offset uint64, limit int) ([]models.Volunteer, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Volunteer, error)
	GetBySlug(ctx context.Context, slug string) (*models.Volunteer, error)
	Create(ctx context.Context, v *models.Volunteer) error
	Update(ctx context.Context, v *models.Volunteer) error
	Delete(ctx context.Context, id int64) error
	Appreciate(ctx context.Context, id int64) (int64, error)
}

// VolunteerService handles volunteer profile operations
type VolunteerService struct {
	volunteerRepo volunteerStore
}

// NewVolunteerService creates a new volunteer service instance
func NewVolunteerService(volunteerRepo volunteerStore) *VolunteerService {
	return &VolunteerService{volunteerRepo: volunteerRepo}
}

// ListVolunteers returns one page of volunteer profiles.
func (s *VolunteerService) ListVolunteers(ctx context.Context, filter dto.VolunteerFilter) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Limit)

	volunteers, total, err := s.volunteerRepo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list volunteers: %w", err)
	}

	resp := dto.NewPaginatedResponse(volunteers, helpers.NewPaginationInfo(total, filter.Page, limit))
	return &resp, nil
}

// GetVolunteer resolves a profile by numeric ID or slug. Profile URLs
// on the public site carry slugs; the dashboard uses IDs.
func (s *VolunteerService) GetVolunteer(ctx context.Context, idOrSlug string) (*models.Volunteer, error) {
	if id, err := strconv.ParseInt(idOrSlug, 10, 64); err == nil {
		return s.volunteerRepo.GetByID(ctx, id)
	}
	return s.volunteerRepo.GetBySlug(ctx, idOrSlug)
}

// CreateVolunteer validates the form, derives the slug, and stores the
// profile.
func (s *VolunteerService) CreateVolunteer(ctx context.Context, req *dto.CreateVolunteerRequest) (*models.Volunteer, error) {
	missing := validation.FirstMissing([]validation.Field{
		{Name: "name", Value: req.Name},
		{Name: "role", Value: req.Role},
		{Name: "specialty", Value: req.Specialty},
	})
	if missing != "" {
		return nil, apperrors.NewMissingFieldError(missing)
	}

	v := &models.Volunteer{
		Name:              req.Name,
		Slug:              slug.Make(req.Name),
		Role:              req.Role,
		Specialty:         req.Specialty,
		Bio:               req.Bio,
		ImageURL:          req.ImageURL,
		LinkedinURL:       req.LinkedinURL,
		TwitterURL:        req.TwitterURL,
		GithubURL:         req.GithubURL,
		YearsOfExperience: req.YearsOfExperience,
		PassionateAbout:   emptyIfNil(req.PassionateAbout),
		CoreStrengths:     emptyIfNil(req.CoreStrengths),
	}

	if err := s.volunteerRepo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// UpdateVolunteer applies the fields present in the request. Renaming
// re-derives the slug; the old slug stops resolving.
func (s *VolunteerService) UpdateVolunteer(ctx context.Context, idOrSlug string, req *dto.UpdateVolunteerRequest) (*models.Volunteer, error) {
	v, err := s.GetVolunteer(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if missing := validation.FirstMissing([]validation.Field{{Name: "name", Value: *req.Name}}); missing != "" {
			return nil, apperrors.NewMissingFieldError(missing)
		}
		v.Name = *req.Name
		v.Slug = slug.Make(*req.Name)
	}
	if req.Role != nil {
		v.Role = *req.Role
	}
	if req.Specialty != nil {
		v.Specialty = *req.Specialty
	}
	if req.Bio != nil {
		v.Bio = *req.Bio
	}
	if req.ImageURL != nil {
		v.ImageURL = *req.ImageURL
	}
	if req.LinkedinURL != nil {
		v.LinkedinURL = *req.LinkedinURL
	}
	if req.TwitterURL != nil {
		v.TwitterURL = *req.TwitterURL
	}
	if req.GithubURL != nil {
		v.GithubURL = *req.GithubURL
	}
	if req.YearsOfExperience != nil {
		v.YearsOfExperience = *req.YearsOfExperience
	}
	if req.PassionateAbout != nil {
		v.PassionateAbout = *req.PassionateAbout
	}
	if req.CoreStrengths != nil {
		v.CoreStrengths = *req.CoreStrengths
	}

	if err := s.volunteerRepo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// DeleteVolunteer removes a profile permanently.
func (s *VolunteerService) DeleteVolunteer(ctx context.Context, idOrSlug string) error {
	v, err := s.GetVolunteer(ctx, idOrSlug)
	if err != nil {
		return err
	}
	return s.volunteerRepo.Delete(ctx, v.ID)
}

// Appreciate bumps a profile's appreciation counter and returns the new
// value. The endpoint is public and unthrottled.
func (s *VolunteerService) Appreciate(ctx context.Context, idOrSlug string) (int64, error) {
	if id, err := strconv.ParseInt(idOrSlug, 10, 64); err == nil {
		return s.volunteerRepo.Appreciate(ctx, id)
	}

	v, err := s.volunteerRepo.GetBySlug(ctx, idOrSlug)
	if err != nil {
		return 0, err
	}
	return s.volunteerRepo.Appreciate(ctx, v.ID)
}
