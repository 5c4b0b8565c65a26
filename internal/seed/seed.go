package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/ets-hub/etshub-backend/internal/app/models"
	"github.com/ets-hub/etshub-backend/internal/app/repositories"
	"github.com/ets-hub/etshub-backend/internal/config"
	"github.com/ets-hub/etshub-backend/internal/pkg/auth"
)

// CreateDefaultAdmin ensures the bootstrap dashboard account exists.
// It is a no-op when seeding is not configured or the account is
// already present, so restarts are safe.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg config.SeedConfig, lgr zerolog.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		lgr.Info().Msg("Admin seeding not configured, skipping")
		return nil
	}

	adminRepo := repositories.NewAdminUserRepository(dbPool)

	exists, err := adminRepo.ExistsByEmail(ctx, cfg.AdminEmail)
	if err != nil {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}
	if exists {
		lgr.Debug().Str("email", cfg.AdminEmail).Msg("Admin account already exists, skipping seed")
		return nil
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.AdminUser{
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		FullName:     cfg.AdminName,
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	lgr.Info().Str("email", admin.Email).Msg("Seeded default admin account")
	return nil
}
