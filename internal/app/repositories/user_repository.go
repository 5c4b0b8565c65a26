package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ets-hub/etshub-backend/internal/app/models"
	"github.com/ets-hub/etshub-backend/internal/pkg/apperrors"
)

// AdminUserRepository handles database operations for admin accounts
type AdminUserRepository struct {
	db *pgxpool.Pool
}

// NewAdminUserRepository creates a new AdminUserRepository
func NewAdminUserRepository(db *pgxpool.Pool) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

const adminUserColumns = "id, email, password_hash, full_name, created_at"

// FindByEmail looks up an admin account by its login email.
func (r *AdminUserRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	query := fmt.Sprintf("SELECT %s FROM admin_users WHERE email = $1", adminUserColumns)

	var u models.AdminUser
	err := r.db.QueryRow(ctx, query, email).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}
	return &u, nil
}

// FindByID looks up an admin account by primary key.
func (r *AdminUserRepository) FindByID(ctx context.Context, id int64) (*models.AdminUser, error) {
	query := fmt.Sprintf("SELECT %s FROM admin_users WHERE id = $1", adminUserColumns)

	var u models.AdminUser
	err := r.db.QueryRow(ctx, query, id).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}
	return &u, nil
}

// Create inserts a new admin account.
func (r *AdminUserRepository) Create(ctx context.Context, u *models.AdminUser) error {
	query := `
		INSERT INTO admin_users (email, password_hash, full_name)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	if err := r.db.QueryRow(ctx, query, u.Email, u.PasswordHash, u.FullName).Scan(&u.ID, &u.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert admin user: %w", err)
	}
	return nil
}

// ExistsByEmail reports whether an admin with the given email exists.
// Used by the seeder so a restart never duplicates the bootstrap account.
func (r *AdminUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM admin_users WHERE email = $1)", email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check admin user existence: %w", err)
	}
	return exists, nil
}
