package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ets-hub/etshub-backend/internal/app/models"
	"github.com/ets-hub/etshub-backend/internal/app/models/dto"
	"github.com/ets-hub/etshub-backend/internal/pkg/apperrors"
)

type fakeVolunteerStore struct {
	volunteers map[int64]*models.Volunteer
	nextID     int64
}

func newFakeVolunteerStore() *fakeVolunteerStore {
	return &fakeVolunteerStore{volunteers: map[int64]*models.Volunteer{}}
}

func (f *fakeVolunteerStore) List(ctx context.Context, filter dto.VolunteerFilter, offset uint64, limit int) ([]models.Volunteer, int64, error) {
	out := []models.Volunteer{}
	for _, v := range f.volunteers {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (f *fakeVolunteerStore) GetByID(ctx context.Context, id int64) (*models.Volunteer, error) {
	if v, ok := f.volunteers[id]; ok {
		copied := *v
		return &copied, nil
	}
	return nil, apperrors.NewNotFoundError("Volunteer not found")
}

func (f *fakeVolunteerStore) GetBySlug(ctx context.Context, slug string) (*models.Volunteer, error) {
	for _, v := range f.volunteers {
		if v.Slug == slug {
			copied := *v
			return &copied, nil
		}
	}
	return nil, apperrors.NewNotFoundError("Volunteer not found")
}

func (f *fakeVolunteerStore) Create(ctx context.Context, v *models.Volunteer) error {
	for _, existing := range f.volunteers {
		if existing.Slug == v.Slug {
			return apperrors.NewConflictError("A volunteer with this name already exists")
		}
	}
	f.nextID++
	v.ID = f.nextID
	stored := *v
	f.volunteers[v.ID] = &stored
	return nil
}

func (f *fakeVolunteerStore) Update(ctx context.Context, v *models.Volunteer) error {
	if _, ok := f.volunteers[v.ID]; !ok {
		return apperrors.NewNotFoundError("Volunteer not found")
	}
	stored := *v
	f.volunteers[v.ID] = &stored
	return nil
}

func (f *fakeVolunteerStore) Delete(ctx context.Context, id int64) error {
	if _, ok := f.volunteers[id]; !ok {
		return apperrors.NewNotFoundError("Volunteer not found")
	}
	delete(f.volunteers, id)
	return nil
}

func (f *fakeVolunteerStore) Appreciate(ctx context.Context, id int64) (int64, error) {
	v, ok := f.volunteers[id]
	if !ok {
		return 0, apperrors.NewNotFoundError("Volunteer not found")
	}
	v.AppreciationCount++
	return v.AppreciationCount, nil
}

func TestCreateVolunteerDerivesSlug(t *testing.T) {
	svc := NewVolunteerService(newFakeVolunteerStore())

	v, err := svc.CreateVolunteer(context.Background(), &dto.CreateVolunteerRequest{
		Name:      "Ada Lovelace!",
		Role:      "Mentor",
		Specialty: "Mathematics",
	})
	if err != nil {
		t.Fatalf("CreateVolunteer() error = %v", err)
	}
	if v.Slug != "ada-lovelace" {
		t.Errorf("Slug = %q, want %q", v.Slug, "ada-lovelace")
	}
}

func TestCreateVolunteerMissingFieldOrder(t *testing.T) {
	svc := NewVolunteerService(newFakeVolunteerStore())

	_, err := svc.CreateVolunteer(context.Background(), &dto.CreateVolunteerRequest{
		Specialty: "Mathematics",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("CreateVolunteer() error = %v, want ErrValidationFailed", err)
	}
	if got, want := err.Error(), "Missing required field: name"; got != want {
		t.Errorf("error message = %q, want %q", got, want)
	}
}

func TestUpdateVolunteerRenameRederivesSlug(t *testing.T) {
	store := newFakeVolunteerStore()
	svc := NewVolunteerService(store)

	created, err := svc.CreateVolunteer(context.Background(), &dto.CreateVolunteerRequest{
		Name: "Ada Lovelace", Role: "Mentor", Specialty: "Mathematics",
	})
	if err != nil {
		t.Fatalf("CreateVolunteer() error = %v", err)
	}

	newName := "Ada King"
	updated, err := svc.UpdateVolunteer(context.Background(), "ada-lovelace", &dto.UpdateVolunteerRequest{Name: &newName})
	if err != nil {
		t.Fatalf("UpdateVolunteer() error = %v", err)
	}
	if updated.Slug != "ada-king" {
		t.Errorf("Slug = %q, want %q", updated.Slug, "ada-king")
	}
	if updated.Role != created.Role {
		t.Errorf("Role changed to %q, want untouched %q", updated.Role, created.Role)
	}

	// The old slug no longer resolves; there is no alias.
	if _, err := svc.GetVolunteer(context.Background(), "ada-lovelace"); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("GetVolunteer(old slug) error = %v, want ErrResourceNotFound", err)
	}
}

func TestGetVolunteerByIDOrSlug(t *testing.T) {
	store := newFakeVolunteerStore()
	svc := NewVolunteerService(store)

	created, err := svc.CreateVolunteer(context.Background(), &dto.CreateVolunteerRequest{
		Name: "Grace Hopper", Role: "Advisor", Specialty: "Compilers",
	})
	if err != nil {
		t.Fatalf("CreateVolunteer() error = %v", err)
	}

	byID, err := svc.GetVolunteer(context.Background(), "1")
	if err != nil || byID.ID != created.ID {
		t.Errorf("GetVolunteer by ID = (%+v, %v), want the created profile", byID, err)
	}
	bySlug, err := svc.GetVolunteer(context.Background(), "grace-hopper")
	if err != nil || bySlug.ID != created.ID {
		t.Errorf("GetVolunteer by slug = (%+v, %v), want the created profile", bySlug, err)
	}
}

func TestAppreciateIncrements(t *testing.T) {
	store := newFakeVolunteerStore()
	svc := NewVolunteerService(store)

	if _, err := svc.CreateVolunteer(context.Background(), &dto.CreateVolunteerRequest{
		Name: "Grace Hopper", Role: "Advisor", Specialty: "Compilers",
	}); err != nil {
		t.Fatalf("CreateVolunteer() error = %v", err)
	}

	for want := int64(1); want <= 3; want++ {
		got, err := svc.Appreciate(context.Background(), "grace-hopper")
		if err != nil {
			t.Fatalf("Appreciate() error = %v", err)
		}
		if got != want {
			t.Errorf("Appreciate() = %d, want %d", got, want)
		}
	}
}

func TestAppreciateUnknownVolunteer(t *testing.T) {
	svc := NewVolunteerService(newFakeVolunteerStore())

	_, err := svc.Appreciate(context.Background(), "nobody")
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("Appreciate() error = %v, want ErrResourceNotFound", err)
	}
}
