package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ets-hub/etshub-backend/internal/app/models"
	"github.com/ets-hub/etshub-backend/internal/app/models/dto"
	"github.com/ets-hub/etshub-backend/internal/pkg/apperrors"
	"github.com/ets-hub/etshub-backend/internal/pkg/auth"
)

type fakeAdminStore struct {
	admins map[string]*models.AdminUser
}

func (f *fakeAdminStore) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	if a, ok := f.admins[email]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, apperrors.ErrResourceNotFound
}

func (f *fakeAdminStore) FindByID(ctx context.Context, id int64) (*models.AdminUser, error) {
	for _, a := range f.admins {
		if a.ID == id {
			copied := *a
			return &copied, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func authTestService(t *testing.T) *AuthService {
	t.Helper()

	hash, err := auth.HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	store := &fakeAdminStore{admins: map[string]*models.AdminUser{
		"admin@etshub.app": {
			ID:           1,
			Email:        "admin@etshub.app",
			FullName:     "Site Admin",
			PasswordHash: hash,
		},
	}}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "etshub.test",
	})

	return NewAuthService(store, jwtService)
}

func TestLogin(t *testing.T) {
	svc := authTestService(t)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "  Admin@ETShub.app ",
		Password: "correct horse battery",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.Token == "" {
		t.Error("Login() returned an empty token")
	}
	if resp.ExpiresIn != 3600 {
		t.Errorf("ExpiresIn = %d, want 3600", resp.ExpiresIn)
	}
	if resp.Email != "admin@etshub.app" || resp.FullName != "Site Admin" {
		t.Errorf("account fields = %q/%q", resp.Email, resp.FullName)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := authTestService(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@etshub.app", "correct horse battery"},
		{"wrong password", "admin@etshub.app", "incorrect"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: tt.email, Password: tt.password})
			if !errors.Is(err, apperrors.ErrInvalidCredentials) {
				t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestProfile(t *testing.T) {
	svc := authTestService(t)

	profile, err := svc.Profile(context.Background(), 1)
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if profile.Email != "admin@etshub.app" {
		t.Errorf("Email = %q", profile.Email)
	}

	if _, err := svc.Profile(context.Background(), 99); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Errorf("Profile(99) error = %v, want ErrUnauthorized", err)
	}
}
