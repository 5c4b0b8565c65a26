package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ets-hub/etshub-backend/internal/app/models"
	"github.com/ets-hub/etshub-backend/internal/app/models/dto"
	"github.com/ets-hub/etshub-backend/internal/pkg/apperrors"
	"github.com/ets-hub/etshub-backend/internal/pkg/dberrors"
)

// Unique constraint backing the job slug.
const jobSlugConstraint = "uq_jobs_slug"

const jobColumns = "id, title, company, company_logo, location, job_type, duration, description, responsibilities, requirements, benefits, application_deadline, is_active, slug, created_at, updated_at"

// JobRepository handles database operations for job postings
type JobRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func jobListConditions(filter dto.JobFilter) squirrel.And {
	cond := squirrel.And{}

	if !filter.IncludeInactive {
		cond = append(cond, squirrel.Eq{"j.is_active": true})
	}
	if filter.JobType != "" {
		cond = append(cond, squirrel.Eq{"j.job_type": filter.JobType})
	}
	if filter.Location != "" {
		cond = append(cond, squirrel.ILike{"j.location": "%" + filter.Location + "%"})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		cond = append(cond, squirrel.Or{
			squirrel.ILike{"j.title": pattern},
			squirrel.ILike{"j.company": pattern},
			squirrel.ILike{"j.description": pattern},
		})
	}

	return cond
}

// listQuery builds the paginated select. The application count per
// posting rides along via a grouped LEFT JOIN so the admin table needs
// no per-row count queries.
func (r *JobRepository) listQuery(filter dto.JobFilter, offset uint64, limit int) (string, []interface{}, error) {
	return r.sb.Select(
		"j.id", "j.title", "j.company", "j.company_logo", "j.location",
		"j.job_type", "j.duration", "j.description", "j.responsibilities",
		"j.requirements", "j.benefits", "j.application_deadline",
		"j.is_active", "j.slug", "j.created_at", "j.updated_at",
		"COUNT(a.id) AS applications_count",
	).
		From("jobs j").
		LeftJoin("job_applications a ON a.job_id = j.id").
		Where(jobListConditions(filter)).
		GroupBy("j.id").
		OrderBy("j.created_at DESC", "j.id DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
}

// List retrieves one page of job postings plus the unpaginated total.
func (r *JobRepository) List(ctx context.Context, filter dto.JobFilter, offset uint64, limit int) ([]models.Job, int64, error) {
	countSql, countArgs, err := r.sb.Select("COUNT(*)").
		From("jobs j").
		Where(jobListConditions(filter)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count jobs query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	listSql, listArgs, err := r.listQuery(filter, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list jobs query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSql, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		var j models.Job
		err := rows.Scan(
			&j.ID, &j.Title, &j.Company, &j.CompanyLogo, &j.Location,
			&j.JobType, &j.Duration, &j.Description, &j.Responsibilities,
			&j.Requirements, &j.Benefits, &j.ApplicationDeadline,
			&j.IsActive, &j.Slug, &j.CreatedAt, &j.UpdatedAt,
			&j.ApplicationsCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate job rows: %w", err)
	}

	return jobs, total, nil
}

// GetBySlug retrieves a job posting by slug. When activeOnly is set,
// inactive postings present as not found.
func (r *JobRepository) GetBySlug(ctx context.Context, slug string, activeOnly bool) (*models.Job, error) {
	query := fmt.Sprintf("SELECT %s FROM jobs WHERE slug = $1", jobColumns)
	if activeOnly {
		query += " AND is_active = TRUE"
	}

	var j models.Job
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&j.ID, &j.Title, &j.Company, &j.CompanyLogo, &j.Location,
		&j.JobType, &j.Duration, &j.Description, &j.Responsibilities,
		&j.Requirements, &j.Benefits, &j.ApplicationDeadline,
		&j.IsActive, &j.Slug, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("Job not found")
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &j, nil
}

// Create inserts a new job posting. A slug collision maps to conflict.
func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	query := `
		INSERT INTO jobs (title, company, company_logo, location, job_type, duration,
			description, responsibilities, requirements, benefits,
			application_deadline, is_active, slug)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		job.Title, job.Company, job.CompanyLogo, job.Location, job.JobType,
		job.Duration, job.Description, job.Responsibilities, job.Requirements,
		job.Benefits, job.ApplicationDeadline, job.IsActive, job.Slug,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, jobSlugConstraint) {
			return apperrors.NewConflictError("A job with this title and company already exists")
		}
		return fmt.Errorf("failed to insert job: %w", err)
	}
	return nil
}

// Update replaces the stored row with the merged posting, keyed by the
// slug it was fetched under.
func (r *JobRepository) Update(ctx context.Context, currentSlug string, job *models.Job) error {
	query := `
		UPDATE jobs
		SET title = $1, company = $2, company_logo = $3, location = $4,
			job_type = $5, duration = $6, description = $7,
			responsibilities = $8, requirements = $9, benefits = $10,
			application_deadline = $11, is_active = $12, slug = $13, updated_at = NOW()
		WHERE slug = $14
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query,
		job.Title, job.Company, job.CompanyLogo, job.Location, job.JobType,
		job.Duration, job.Description, job.Responsibilities, job.Requirements,
		job.Benefits, job.ApplicationDeadline, job.IsActive, job.Slug, currentSlug,
	).Scan(&job.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("Job not found")
		}
		if dberrors.IsDuplicateConstraintError(err, jobSlugConstraint) {
			return apperrors.NewConflictError("A job with this title and company already exists")
		}
		return fmt.Errorf("failed to update job: %w", err)
	}
	return nil
}

// Delete removes a job posting by slug. Its applications are left in
// place on purpose; nothing cascades.
func (r *JobRepository) Delete(ctx context.Context, slug string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM jobs WHERE slug = $1", slug)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("Job not found")
	}
	return nil
}
