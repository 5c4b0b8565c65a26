package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ets-hub/etshub-backend/internal/app/models"
	"github.com/ets-hub/etshub-backend/internal/app/models/dto"
	"github.com/ets-hub/etshub-backend/internal/pkg/apperrors"
	"github.com/ets-hub/etshub-backend/internal/pkg/helpers"
	"github.com/ets-hub/etshub-backend/internal/pkg/slug"
	"github.com/ets-hub/etshub-backend/internal/pkg/validation"
)

// jobStore is the repository surface the job service needs.
type jobStore interface {
	List(ctx context.Context, filter dto.JobFilter, offset uint64, limit int) ([]models.Job, int64, error)
	GetBySlug(ctx context.Context, slug string, activeOnly bool) (*models.Job, error)
	Create(ctx context.Context, job *models.Job) error
	Update(ctx context.Context, currentSlug string, job *models.Job) error
	Delete(ctx context.Context, slug string) error
}

// JobService handles job posting operations
type JobService struct {
	jobRepo jobStore
}

// NewJobService creates a new job service instance
func NewJobService(jobRepo jobStore) *JobService {
	return &JobService{jobRepo: jobRepo}
}

// ListJobs returns one page of job postings. Inactive postings are only
// included when the caller is authenticated and asked for them.
func (s *JobService) ListJobs(ctx context.Context, filter dto.JobFilter) (*dto.PaginatedResponse, error) {
	if filter.JobType != "" && !models.ValidJobType(filter.JobType) {
		return nil, apperrors.NewValidationError("Invalid jobType filter")
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Limit)

	jobs, total, err := s.jobRepo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	resp := dto.NewPaginatedResponse(jobs, helpers.NewPaginationInfo(total, filter.Page, limit))
	return &resp, nil
}

// GetJob returns a single posting by slug. Public callers only see
// active postings; the dashboard sees everything.
func (s *JobService) GetJob(ctx context.Context, jobSlug string, includeInactive bool) (*models.Job, error) {
	return s.jobRepo.GetBySlug(ctx, jobSlug, !includeInactive)
}

// CreateJob validates the form, derives the slug, and stores the posting.
func (s *JobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	missing := validation.FirstMissing([]validation.Field{
		{Name: "title", Value: req.Title},
		{Name: "company", Value: req.Company},
		{Name: "location", Value: req.Location},
		{Name: "jobType", Value: req.JobType},
		{Name: "description", Value: req.Description},
	})
	if missing != "" {
		return nil, apperrors.NewMissingFieldError(missing)
	}

	if !models.ValidJobType(req.JobType) {
		return nil, apperrors.NewValidationError("Invalid jobType, expected one of: Internship, Full-time, Part-time, Contract")
	}

	deadline, err := parseOptionalDate(req.ApplicationDeadline)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid applicationDeadline, expected YYYY-MM-DD")
	}

	job := &models.Job{
		Title:               req.Title,
		Company:             req.Company,
		CompanyLogo:         req.CompanyLogo,
		Location:            req.Location,
		JobType:             models.JobType(req.JobType),
		Duration:            req.Duration,
		Description:         req.Description,
		Responsibilities:    emptyIfNil(req.Responsibilities),
		Requirements:        emptyIfNil(req.Requirements),
		Benefits:            emptyIfNil(req.Benefits),
		ApplicationDeadline: deadline,
		IsActive:            true,
		Slug:                slug.ForJob(req.Title, req.Company),
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// UpdateJob applies the fields present in the request. A title or
// company change re-derives the slug; the previous slug stops resolving.
func (s *JobService) UpdateJob(ctx context.Context, currentSlug string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.jobRepo.GetBySlug(ctx, currentSlug, false)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.JobType != nil {
		if !models.ValidJobType(*req.JobType) {
			return nil, apperrors.NewValidationError("Invalid jobType, expected one of: Internship, Full-time, Part-time, Contract")
		}
		job.JobType = models.JobType(*req.JobType)
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.CompanyLogo != nil {
		job.CompanyLogo = *req.CompanyLogo
	}
	if req.Duration != nil {
		job.Duration = *req.Duration
	}
	if req.Responsibilities != nil {
		job.Responsibilities = *req.Responsibilities
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Benefits != nil {
		job.Benefits = *req.Benefits
	}
	if req.ApplicationDeadline != nil {
		deadline, err := parseOptionalDate(*req.ApplicationDeadline)
		if err != nil {
			return nil, apperrors.NewValidationError("Invalid applicationDeadline, expected YYYY-MM-DD")
		}
		job.ApplicationDeadline = deadline
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}

	if req.Title != nil || req.Company != nil {
		job.Slug = slug.ForJob(job.Title, job.Company)
	}

	if err := s.jobRepo.Update(ctx, currentSlug, job); err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJob removes a posting permanently. Its applications stay.
func (s *JobService) DeleteJob(ctx context.Context, jobSlug string) error {
	return s.jobRepo.Delete(ctx, jobSlug)
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := helpers.ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
