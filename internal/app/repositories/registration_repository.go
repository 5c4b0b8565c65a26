package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ets-hub/etshub-backend/internal/app/models"
	"github.com/ets-hub/etshub-backend/internal/pkg/apperrors"
	"github.com/ets-hub/etshub-backend/internal/pkg/dberrors"
)

// Unique constraints backing registration deduplication.
const (
	communityEmailConstraint   = "uq_community_members_email"
	volunteerAppEmailConstraint = "uq_volunteer_applications_email"
)

// CommunityMemberRepository handles database operations for community registrations
type CommunityMemberRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCommunityMemberRepository creates a new CommunityMemberRepository
func NewCommunityMemberRepository(db *pgxpool.Pool) *CommunityMemberRepository {
	return &CommunityMemberRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List retrieves one page of community members, newest first.
func (r *CommunityMemberRepository) List(ctx context.Context, offset uint64, limit int) ([]models.CommunityMember, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM community_members").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count community members: %w", err)
	}

	listSql, listArgs, err := r.sb.Select("id, full_name, email, phone, occupation, motivation, created_at").
		From("community_members").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list community members query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSql, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query community members: %w", err)
	}
	defer rows.Close()

	members := []models.CommunityMember{}
	for rows.Next() {
		var m models.CommunityMember
		if err := rows.Scan(&m.ID, &m.FullName, &m.Email, &m.Phone, &m.Occupation, &m.Motivation, &m.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan community member row: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate community member rows: %w", err)
	}

	return members, total, nil
}

// Create inserts a community registration. A repeated email maps to a
// conflict error off the unique constraint rather than a lookup first.
func (r *CommunityMemberRepository) Create(ctx context.Context, m *models.CommunityMember) error {
	query := `
		INSERT INTO community_members (full_name, email, phone, occupation, motivation)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, m.FullName, m.Email, m.Phone, m.Occupation, m.Motivation).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, communityEmailConstraint) {
			return apperrors.NewConflictError("This email is already registered")
		}
		return fmt.Errorf("failed to insert community member: %w", err)
	}
	return nil
}

// VolunteerApplicationRepository handles database operations for volunteer sign-ups
type VolunteerApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewVolunteerApplicationRepository creates a new VolunteerApplicationRepository
func NewVolunteerApplicationRepository(db *pgxpool.Pool) *VolunteerApplicationRepository {
	return &VolunteerApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List retrieves one page of volunteer applications, newest first.
func (r *VolunteerApplicationRepository) List(ctx context.Context, offset uint64, limit int) ([]models.VolunteerApplication, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM volunteer_applications").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count volunteer applications: %w", err)
	}

	listSql, listArgs, err := r.sb.Select("id, full_name, email, phone, area_of_interest, experience, motivation, created_at").
		From("volunteer_applications").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list volunteer applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSql, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query volunteer applications: %w", err)
	}
	defer rows.Close()

	apps := []models.VolunteerApplication{}
	for rows.Next() {
		var a models.VolunteerApplication
		if err := rows.Scan(&a.ID, &a.FullName, &a.Email, &a.Phone, &a.AreaOfInterest, &a.Experience, &a.Motivation, &a.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan volunteer application row: %w", err)
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate volunteer application rows: %w", err)
	}

	return apps, total, nil
}

// Create inserts a volunteer application, rejecting repeated emails.
func (r *VolunteerApplicationRepository) Create(ctx context.Context, a *models.VolunteerApplication) error {
	query := `
		INSERT INTO volunteer_applications (full_name, email, phone, area_of_interest, experience, motivation)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, a.FullName, a.Email, a.Phone, a.AreaOfInterest, a.Experience, a.Motivation).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, volunteerAppEmailConstraint) {
			return apperrors.NewConflictError("You have already applied to volunteer")
		}
		return fmt.Errorf("failed to insert volunteer application: %w", err)
	}
	return nil
}
