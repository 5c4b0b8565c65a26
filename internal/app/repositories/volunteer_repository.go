package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ets-hub/etshub-backend/internal/app/models"
	"github.com/ets-hub/etshub-backend/internal/app/models/dto"
	"github.com/ets-hub/etshub-backend/internal/pkg/apperrors"
	"github.com/ets-hub/etshub-backend/internal/pkg/dberrors"
)

// Unique constraint backing the volunteer slug.
const volunteerSlugConstraint = "uq_volunteers_slug"

const volunteerColumns = "id, name, slug, role, specialty, bio, image_url, linkedin_url, twitter_url, github_url, years_of_experience, passionate_about, core_strengths, appreciation_count, created_at, updated_at"

// VolunteerRepository handles database operations for volunteers
type VolunteerRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewVolunteerRepository creates a new VolunteerRepository
func NewVolunteerRepository(db *pgxpool.Pool) *VolunteerRepository {
	return &VolunteerRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func volunteerListConditions(filter dto.VolunteerFilter) squirrel.And {
	cond := squirrel.And{}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		cond = append(cond, squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"role": pattern},
			squirrel.ILike{"specialty": pattern},
		})
	}
	if filter.Role != "" {
		cond = append(cond, squirrel.Eq{"role": filter.Role})
	}

	return cond
}

// List retrieves one page of volunteers plus the unpaginated total.
func (r *VolunteerRepository) List(ctx context.Context, filter dto.VolunteerFilter, offset uint64, limit int) ([]models.Volunteer, int64, error) {
	countSql, countArgs, err := r.sb.Select("COUNT(*)").
		From("volunteers").
		Where(volunteerListConditions(filter)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count volunteers query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count volunteers: %w", err)
	}

	listSql, listArgs, err := r.sb.Select(volunteerColumns).
		From("volunteers").
		Where(volunteerListConditions(filter)).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list volunteers query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSql, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query volunteers: %w", err)
	}
	defer rows.Close()

	volunteers := []models.Volunteer{}
	for rows.Next() {
		var v models.Volunteer
		if err := scanVolunteer(rows, &v); err != nil {
			return nil, 0, fmt.Errorf("failed to scan volunteer row: %w", err)
		}
		volunteers = append(volunteers, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate volunteer rows: %w", err)
	}

	return volunteers, total, nil
}

// GetByID retrieves a volunteer by primary key.
func (r *VolunteerRepository) GetByID(ctx context.Context, id int64) (*models.Volunteer, error) {
	query := fmt.Sprintf("SELECT %s FROM volunteers WHERE id = $1", volunteerColumns)

	var v models.Volunteer
	if err := scanVolunteer(r.db.QueryRow(ctx, query, id), &v); err != nil {
		if isNoRows(err) {
			return nil, apperrors.NewNotFoundError("Volunteer not found")
		}
		return nil, fmt.Errorf("failed to get volunteer: %w", err)
	}
	return &v, nil
}

// GetBySlug retrieves a volunteer by slug.
func (r *VolunteerRepository) GetBySlug(ctx context.Context, slug string) (*models.Volunteer, error) {
	query := fmt.Sprintf("SELECT %s FROM volunteers WHERE slug = $1", volunteerColumns)

	var v models.Volunteer
	if err := scanVolunteer(r.db.QueryRow(ctx, query, slug), &v); err != nil {
		if isNoRows(err) {
			return nil, apperrors.NewNotFoundError("Volunteer not found")
		}
		return nil, fmt.Errorf("failed to get volunteer: %w", err)
	}
	return &v, nil
}

// Create inserts a new volunteer profile.
func (r *VolunteerRepository) Create(ctx context.Context, v *models.Volunteer) error {
	query := `
		INSERT INTO volunteers (name, slug, role, specialty, bio, image_url,
			linkedin_url, twitter_url, github_url, years_of_experience,
			passionate_about, core_strengths)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, appreciation_count, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		v.Name, v.Slug, v.Role, v.Specialty, v.Bio, v.ImageURL,
		v.LinkedinURL, v.TwitterURL, v.GithubURL, v.YearsOfExperience,
		v.PassionateAbout, v.CoreStrengths,
	).Scan(&v.ID, &v.AppreciationCount, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, volunteerSlugConstraint) {
			return apperrors.NewConflictError("A volunteer with this name already exists")
		}
		return fmt.Errorf("failed to insert volunteer: %w", err)
	}
	return nil
}

// Update replaces the stored row with the merged profile.
func (r *VolunteerRepository) Update(ctx context.Context, v *models.Volunteer) error {
	query := `
		UPDATE volunteers
		SET name = $1, slug = $2, role = $3, specialty = $4, bio = $5,
			image_url = $6, linkedin_url = $7, twitter_url = $8, github_url = $9,
			years_of_experience = $10, passionate_about = $11, core_strengths = $12,
			updated_at = NOW()
		WHERE id = $13
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query,
		v.Name, v.Slug, v.Role, v.Specialty, v.Bio, v.ImageURL,
		v.LinkedinURL, v.TwitterURL, v.GithubURL, v.YearsOfExperience,
		v.PassionateAbout, v.CoreStrengths, v.ID,
	).Scan(&v.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return apperrors.NewNotFoundError("Volunteer not found")
		}
		if dberrors.IsDuplicateConstraintError(err, volunteerSlugConstraint) {
			return apperrors.NewConflictError("A volunteer with this name already exists")
		}
		return fmt.Errorf("failed to update volunteer: %w", err)
	}
	return nil
}

// Delete removes a volunteer profile.
func (r *VolunteerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM volunteers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete volunteer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("Volunteer not found")
	}
	return nil
}

// appreciateQuery increments store-side in a single statement, so
// concurrent calls never lose updates.
const appreciateQuery = "UPDATE volunteers SET appreciation_count = appreciation_count + 1 WHERE id = $1 RETURNING appreciation_count"

// Appreciate bumps the appreciation counter by one and returns the new
// value.
func (r *VolunteerRepository) Appreciate(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, appreciateQuery, id).Scan(&count)
	if err != nil {
		if isNoRows(err) {
			return 0, apperrors.NewNotFoundError("Volunteer not found")
		}
		return 0, fmt.Errorf("failed to increment appreciation: %w", err)
	}
	return count, nil
}

func scanVolunteer(row pgx.Row, v *models.Volunteer) error {
	return row.Scan(
		&v.ID,
		&v.Name,
		&v.Slug,
		&v.Role,
		&v.Specialty,
		&v.Bio,
		&v.ImageURL,
		&v.LinkedinURL,
		&v.TwitterURL,
		&v.GithubURL,
		&v.YearsOfExperience,
		&v.PassionateAbout,
		&v.CoreStrengths,
		&v.AppreciationCount,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
}
