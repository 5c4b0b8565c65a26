package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ets-hub/etshub-backend/internal/app/models"
	"github.com/ets-hub/etshub-backend/internal/app/models/dto"
	"github.com/ets-hub/etshub-backend/internal/pkg/apperrors"
	"github.com/ets-hub/etshub-backend/internal/pkg/auth"
	"github.com/ets-hub/etshub-backend/internal/pkg/logger"
)

// adminUserStore is the repository surface the auth service needs.
type adminUserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id int64) (*models.AdminUser, error)
}

// AuthService handles dashboard authentication
type AuthService struct {
	adminRepo  adminUserStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(adminRepo adminUserStore, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Login verifies dashboard credentials and issues a session token.
// Unknown email and wrong password return the same error so the login
// form can't be used to probe accounts.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(admin.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(admin)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("email", admin.Email).Msg("Admin logged in")

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		Email:     admin.Email,
		FullName:  admin.FullName,
	}, nil
}

// Profile returns the authenticated admin's account details.
func (s *AuthService) Profile(ctx context.Context, adminID int64) (*dto.ProfileResponse, error) {
	admin, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	return &dto.ProfileResponse{
		ID:       admin.ID,
		Email:    admin.Email,
		FullName: admin.FullName,
	}, nil
}
