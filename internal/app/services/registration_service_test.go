package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ets-hub/etshub-backend/internal/app/models"
	"github.com/ets-hub/etshub-backend/internal/app/models/dto"
	"github.com/ets-hub/etshub-backend/internal/pkg/apperrors"
	"github.com/ets-hub/etshub-backend/internal/pkg/formrelay"
)

type fakeCommunityStore struct {
	members []models.CommunityMember
}

func (f *fakeCommunityStore) List(ctx context.Context, offset uint64, limit int) ([]models.CommunityMember, int64, error) {
	end := int(offset) + limit
	if end > len(f.members) {
		end = len(f.members)
	}
	start := int(offset)
	if start > len(f.members) {
		start = len(f.members)
	}
	return f.members[start:end], int64(len(f.members)), nil
}

func (f *fakeCommunityStore) Create(ctx context.Context, m *models.CommunityMember) error {
	for _, existing := range f.members {
		if existing.Email == m.Email {
			return apperrors.NewConflictError("This email is already registered")
		}
	}
	m.ID = int64(len(f.members) + 1)
	f.members = append(f.members, *m)
	return nil
}

type fakeVolunteerAppStore struct {
	apps []models.VolunteerApplication
}

func (f *fakeVolunteerAppStore) List(ctx context.Context, offset uint64, limit int) ([]models.VolunteerApplication, int64, error) {
	return f.apps, int64(len(f.apps)), nil
}

func (f *fakeVolunteerAppStore) Create(ctx context.Context, a *models.VolunteerApplication) error {
	for _, existing := range f.apps {
		if existing.Email == a.Email {
			return apperrors.NewConflictError("You have already applied to volunteer")
		}
	}
	a.ID = int64(len(f.apps) + 1)
	f.apps = append(f.apps, *a)
	return nil
}

func registrationTestService() (*RegistrationService, *fakeCommunityStore, *fakeVolunteerAppStore) {
	community := &fakeCommunityStore{}
	volunteers := &fakeVolunteerAppStore{}
	// Empty endpoint keeps the relay disabled in tests.
	return NewRegistrationService(community, volunteers, formrelay.New("")), community, volunteers
}

func TestRegisterCommunityMember(t *testing.T) {
	svc, store, _ := registrationTestService()

	member, err := svc.RegisterCommunityMember(context.Background(), &dto.RegisterCommunityMemberRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
	})
	if err != nil {
		t.Fatalf("RegisterCommunityMember() error = %v", err)
	}
	if member.ID == 0 {
		t.Error("ID not assigned")
	}
	if len(store.members) != 1 {
		t.Errorf("stored members = %d, want 1", len(store.members))
	}
}

func TestRegisterCommunityMemberDuplicateEmail(t *testing.T) {
	svc, _, _ := registrationTestService()

	req := &dto.RegisterCommunityMemberRequest{FullName: "Jane Doe", Email: "jane@example.com"}
	if _, err := svc.RegisterCommunityMember(context.Background(), req); err != nil {
		t.Fatalf("first registration error = %v", err)
	}

	_, err := svc.RegisterCommunityMember(context.Background(), req)
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("second registration error = %v, want ErrConflict", err)
	}
}

func TestRegisterCommunityMemberValidation(t *testing.T) {
	svc, _, _ := registrationTestService()

	_, err := svc.RegisterCommunityMember(context.Background(), &dto.RegisterCommunityMemberRequest{
		Email: "jane@example.com",
	})
	if got, want := err.Error(), "Missing required field: fullName"; got != want {
		t.Errorf("error message = %q, want %q", got, want)
	}

	_, err = svc.RegisterCommunityMember(context.Background(), &dto.RegisterCommunityMemberRequest{
		FullName: "Jane Doe",
		Email:    "jane@",
	})
	if !errors.Is(err, apperrors.ErrInvalidEmail) {
		t.Errorf("error = %v, want ErrInvalidEmail", err)
	}
}

func TestRegisterVolunteer(t *testing.T) {
	svc, _, store := registrationTestService()

	app, err := svc.RegisterVolunteer(context.Background(), &dto.RegisterVolunteerRequest{
		FullName:       "John Doe",
		Email:          "john@example.com",
		AreaOfInterest: "Events",
	})
	if err != nil {
		t.Fatalf("RegisterVolunteer() error = %v", err)
	}
	if app.ID == 0 || len(store.apps) != 1 {
		t.Errorf("application not stored: %+v", app)
	}

	_, err = svc.RegisterVolunteer(context.Background(), &dto.RegisterVolunteerRequest{
		FullName:       "John Doe",
		Email:          "john@example.com",
		AreaOfInterest: "Design",
	})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("duplicate registration error = %v, want ErrConflict", err)
	}
}

func TestListCommunityMembersDefaultLimit(t *testing.T) {
	svc, store, _ := registrationTestService()
	for i := 0; i < 120; i++ {
		store.members = append(store.members, models.CommunityMember{ID: int64(i + 1)})
	}

	resp, err := svc.ListCommunityMembers(context.Background(), dto.RegistrationFilter{Page: 1})
	if err != nil {
		t.Fatalf("ListCommunityMembers() error = %v", err)
	}

	members := resp.Data.([]models.CommunityMember)
	if len(members) != CommunityRegistrationsDefaultLimit {
		t.Errorf("page size = %d, want %d", len(members), CommunityRegistrationsDefaultLimit)
	}
	if resp.Pagination.Total != 120 {
		t.Errorf("Total = %d, want 120", resp.Pagination.Total)
	}
	if resp.Pagination.TotalPages != 2 {
		t.Errorf("TotalPages = %d, want 2", resp.Pagination.TotalPages)
	}
}
