package services

import (
	"context"
	"fmt"

	"github.com/ets-hub/etshub-backend/internal/app/models"
	"github.com/ets-hub/etshub-backend/internal/app/models/dto"
	"github.com/ets-hub/etshub-backend/internal/pkg/apperrors"
	"github.com/ets-hub/etshub-backend/internal/pkg/helpers"
	"github.com/ets-hub/etshub-backend/internal/pkg/validation"
)

// applicationStore is the repository surface the application service needs.
type applicationStore interface {
	ListByJob(ctx context.Context, jobID int64, filter dto.ApplicationFilter, offset uint64, limit int) ([]models.JobApplication, int64, error)
	Create(ctx context.Context, app *models.JobApplication) error
	UpdateStatus(ctx context.Context, jobID, applicationID int64, status models.ApplicationStatus) (*models.JobApplication, error)
	Delete(ctx context.Context, jobID, applicationID int64) error
}

// applicationJobStore resolves the parent posting by slug.
type applicationJobStore interface {
	GetBySlug(ctx context.Context, slug string, activeOnly bool) (*models.Job, error)
}

// ApplicationService handles job application operations
type ApplicationService struct {
	applicationRepo applicationStore
	jobRepo         applicationJobStore
}

// NewApplicationService creates a new application service instance
func NewApplicationService(applicationRepo applicationStore, jobRepo applicationJobStore) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
	}
}

// ListApplications returns one page of a posting's applications.
func (s *ApplicationService) ListApplications(ctx context.Context, jobSlug string, filter dto.ApplicationFilter) (*dto.PaginatedResponse, error) {
	if filter.Status != "" && !models.ValidApplicationStatus(filter.Status) {
		return nil, apperrors.NewValidationError("Invalid status filter")
	}

	job, err := s.jobRepo.GetBySlug(ctx, jobSlug, false)
	if err != nil {
		return nil, err
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Limit)

	apps, total, err := s.applicationRepo.ListByJob(ctx, job.ID, filter, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	resp := dto.NewPaginatedResponse(apps, helpers.NewPaginationInfo(total, filter.Page, limit))
	return &resp, nil
}

// Apply validates the public application form and stores it against the
// posting. One application per email per posting; repeats get a conflict.
func (s *ApplicationService) Apply(ctx context.Context, jobSlug string, req *dto.CreateJobApplicationRequest) (*models.JobApplication, error) {
	missing := validation.FirstMissing([]validation.Field{
		{Name: "fullName", Value: req.FullName},
		{Name: "email", Value: req.Email},
		{Name: "phone", Value: req.Phone},
	})
	if missing != "" {
		return nil, apperrors.NewMissingFieldError(missing)
	}
	if !validation.IsValidEmail(req.Email) {
		return nil, apperrors.NewInvalidEmailError("email")
	}

	// Applications only land on live postings.
	job, err := s.jobRepo.GetBySlug(ctx, jobSlug, true)
	if err != nil {
		return nil, err
	}

	app := &models.JobApplication{
		JobID:        job.ID,
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		Location:     req.Location,
		University:   req.University,
		PortfolioURL: req.PortfolioURL,
		CoverLetter:  req.CoverLetter,
		Status:       models.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// UpdateStatus sets the review label on an application. Any status may
// replace any other; there is no workflow ordering.
func (s *ApplicationService) UpdateStatus(ctx context.Context, jobSlug string, applicationID int64, req *dto.UpdateApplicationStatusRequest) (*models.JobApplication, error) {
	if req.Status == "" {
		return nil, apperrors.NewMissingFieldError("status")
	}
	if !models.ValidApplicationStatus(req.Status) {
		return nil, apperrors.NewValidationError("Invalid status, expected one of: pending, reviewed, accepted, rejected")
	}

	job, err := s.jobRepo.GetBySlug(ctx, jobSlug, false)
	if err != nil {
		return nil, err
	}

	return s.applicationRepo.UpdateStatus(ctx, job.ID, applicationID, models.ApplicationStatus(req.Status))
}

// DeleteApplication removes a single application permanently.
func (s *ApplicationService) DeleteApplication(ctx context.Context, jobSlug string, applicationID int64) error {
	job, err := s.jobRepo.GetBySlug(ctx, jobSlug, false)
	if err != nil {
		return err
	}
	return s.applicationRepo.Delete(ctx, job.ID, applicationID)
}
