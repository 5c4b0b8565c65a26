package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ets-hub/etshub-backend/internal/app/models"
	"github.com/ets-hub/etshub-backend/internal/app/models/dto"
	"github.com/ets-hub/etshub-backend/internal/pkg/apperrors"
	"github.com/ets-hub/etshub-backend/internal/pkg/dberrors"
)

// Unique index on (job_id, email): one application per applicant per
// posting, enforced by the store rather than a racy pre-read.
const applicationEmailConstraint = "uq_job_applications_job_email"

const applicationColumns = "id, job_id, full_name, email, phone, location, university, portfolio_url, cover_letter, status, created_at"

// ApplicationRepository handles database operations for job applications
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func applicationListConditions(jobID int64, filter dto.ApplicationFilter) squirrel.And {
	cond := squirrel.And{squirrel.Eq{"job_id": jobID}}
	if filter.Status != "" {
		cond = append(cond, squirrel.Eq{"status": filter.Status})
	}
	return cond
}

// ListByJob retrieves one page of a posting's applications plus the
// unpaginated total, newest first.
func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID int64, filter dto.ApplicationFilter, offset uint64, limit int) ([]models.JobApplication, int64, error) {
	countSql, countArgs, err := r.sb.Select("COUNT(*)").
		From("job_applications").
		Where(applicationListConditions(jobID, filter)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count applications query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	listSql, listArgs, err := r.sb.Select(applicationColumns).
		From("job_applications").
		Where(applicationListConditions(jobID, filter)).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSql, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	applications := []models.JobApplication{}
	for rows.Next() {
		var a models.JobApplication
		err := rows.Scan(
			&a.ID, &a.JobID, &a.FullName, &a.Email, &a.Phone, &a.Location,
			&a.University, &a.PortfolioURL, &a.CoverLetter, &a.Status, &a.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan application row: %w", err)
		}
		applications = append(applications, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate application rows: %w", err)
	}

	return applications, total, nil
}

// Create inserts a new application. A second submission with the same
// email for the same posting maps to conflict.
func (r *ApplicationRepository) Create(ctx context.Context, application *models.JobApplication) error {
	query := `
		INSERT INTO job_applications (job_id, full_name, email, phone, location,
			university, portfolio_url, cover_letter, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		application.JobID, application.FullName, application.Email,
		application.Phone, application.Location, application.University,
		application.PortfolioURL, application.CoverLetter, application.Status,
	).Scan(&application.ID, &application.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, applicationEmailConstraint) {
			return apperrors.NewConflictError("You have already applied for this position")
		}
		return fmt.Errorf("failed to insert application: %w", err)
	}
	return nil
}

// UpdateStatus sets the review label on one of a posting's applications.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, jobID, applicationID int64, status models.ApplicationStatus) (*models.JobApplication, error) {
	query := fmt.Sprintf(`
		UPDATE job_applications
		SET status = $1
		WHERE id = $2 AND job_id = $3
		RETURNING %s
	`, applicationColumns)

	var a models.JobApplication
	err := r.db.QueryRow(ctx, query, status, applicationID, jobID).Scan(
		&a.ID, &a.JobID, &a.FullName, &a.Email, &a.Phone, &a.Location,
		&a.University, &a.PortfolioURL, &a.CoverLetter, &a.Status, &a.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.NewNotFoundError("Application not found")
		}
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	return &a, nil
}

// Delete removes one of a posting's applications.
func (r *ApplicationRepository) Delete(ctx context.Context, jobID, applicationID int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM job_applications WHERE id = $1 AND job_id = $2", applicationID, jobID)
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("Application not found")
	}
	return nil
}
