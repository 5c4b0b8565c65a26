package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ets-hub/etshub-backend/internal/app/models"
	"github.com/ets-hub/etshub-backend/internal/app/models/dto"
	"github.com/ets-hub/etshub-backend/internal/pkg/apperrors"
)

type fakeApplicationStore struct {
	apps   []models.JobApplication
	nextID int64
}

func (f *fakeApplicationStore) ListByJob(ctx context.Context, jobID int64, filter dto.ApplicationFilter, offset uint64, limit int) ([]models.JobApplication, int64, error) {
	out := []models.JobApplication{}
	for _, a := range f.apps {
		if a.JobID != jobID {
			continue
		}
		if filter.Status != "" && string(a.Status) != filter.Status {
			continue
		}
		out = append(out, a)
	}
	return out, int64(len(out)), nil
}

func (f *fakeApplicationStore) Create(ctx context.Context, app *models.JobApplication) error {
	for _, existing := range f.apps {
		if existing.JobID == app.JobID && existing.Email == app.Email {
			return apperrors.NewConflictError("You have already applied for this position")
		}
	}
	f.nextID++
	app.ID = f.nextID
	f.apps = append(f.apps, *app)
	return nil
}

func (f *fakeApplicationStore) UpdateStatus(ctx context.Context, jobID, applicationID int64, status models.ApplicationStatus) (*models.JobApplication, error) {
	for i := range f.apps {
		if f.apps[i].ID == applicationID && f.apps[i].JobID == jobID {
			f.apps[i].Status = status
			copied := f.apps[i]
			return &copied, nil
		}
	}
	return nil, apperrors.NewNotFoundError("Application not found")
}

func (f *fakeApplicationStore) Delete(ctx context.Context, jobID, applicationID int64) error {
	for i := range f.apps {
		if f.apps[i].ID == applicationID && f.apps[i].JobID == jobID {
			f.apps = append(f.apps[:i], f.apps[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError("Application not found")
}

func applicationTestFixture(t *testing.T) (*ApplicationService, *fakeJobStore, *fakeApplicationStore) {
	t.Helper()
	jobs := newFakeJobStore()
	jobs.jobs["backend-engineer-acme-corp"] = &models.Job{
		ID:       1,
		Title:    "Backend Engineer",
		Company:  "ACME Corp",
		Slug:     "backend-engineer-acme-corp",
		IsActive: true,
	}
	apps := &fakeApplicationStore{}
	return NewApplicationService(apps, jobs), jobs, apps
}

func validApplicationRequest() *dto.CreateJobApplicationRequest {
	return &dto.CreateJobApplicationRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+15550101",
	}
}

func TestApplyHappyPath(t *testing.T) {
	svc, _, _ := applicationTestFixture(t)

	app, err := svc.Apply(context.Background(), "backend-engineer-acme-corp", validApplicationRequest())
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if app.JobID != 1 {
		t.Errorf("JobID = %d, want 1", app.JobID)
	}
	if app.Status != models.ApplicationStatusPending {
		t.Errorf("Status = %q, want pending", app.Status)
	}
}

func TestApplyDuplicateEmailConflict(t *testing.T) {
	svc, _, _ := applicationTestFixture(t)

	if _, err := svc.Apply(context.Background(), "backend-engineer-acme-corp", validApplicationRequest()); err != nil {
		t.Fatalf("first Apply() error = %v", err)
	}

	_, err := svc.Apply(context.Background(), "backend-engineer-acme-corp", validApplicationRequest())
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("second Apply() error = %v, want ErrConflict", err)
	}
}

func TestApplyValidation(t *testing.T) {
	svc, _, _ := applicationTestFixture(t)

	tests := []struct {
		name    string
		mutate  func(*dto.CreateJobApplicationRequest)
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing fullName reported first",
			mutate:  func(r *dto.CreateJobApplicationRequest) { r.FullName = ""; r.Phone = "" },
			wantErr: apperrors.ErrValidationFailed,
			wantMsg: "Missing required field: fullName",
		},
		{
			name:    "missing email",
			mutate:  func(r *dto.CreateJobApplicationRequest) { r.Email = "" },
			wantErr: apperrors.ErrValidationFailed,
			wantMsg: "Missing required field: email",
		},
		{
			name:    "malformed email is a distinct error",
			mutate:  func(r *dto.CreateJobApplicationRequest) { r.Email = "not-an-email" },
			wantErr: apperrors.ErrInvalidEmail,
			wantMsg: "Invalid email format: email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validApplicationRequest()
			tt.mutate(req)

			_, err := svc.Apply(context.Background(), "backend-engineer-acme-corp", req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Apply() error = %v, want %v", err, tt.wantErr)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Apply() error message = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestApplyRejectedForInactivePosting(t *testing.T) {
	svc, jobs, _ := applicationTestFixture(t)
	jobs.jobs["backend-engineer-acme-corp"].IsActive = false

	_, err := svc.Apply(context.Background(), "backend-engineer-acme-corp", validApplicationRequest())
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("Apply() error = %v, want ErrResourceNotFound", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	svc, _, _ := applicationTestFixture(t)

	created, err := svc.Apply(context.Background(), "backend-engineer-acme-corp", validApplicationRequest())
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	// Any status may replace any other, including going backwards.
	for _, status := range []string{"accepted", "pending", "rejected"} {
		updated, err := svc.UpdateStatus(context.Background(), "backend-engineer-acme-corp", created.ID,
			&dto.UpdateApplicationStatusRequest{Status: status})
		if err != nil {
			t.Fatalf("UpdateStatus(%q) error = %v", status, err)
		}
		if string(updated.Status) != status {
			t.Errorf("Status = %q, want %q", updated.Status, status)
		}
	}
}

func TestUpdateStatusRejectsUnknownLabel(t *testing.T) {
	svc, _, _ := applicationTestFixture(t)

	_, err := svc.UpdateStatus(context.Background(), "backend-engineer-acme-corp", 1,
		&dto.UpdateApplicationStatusRequest{Status: "archived"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("UpdateStatus() error = %v, want ErrValidationFailed", err)
	}
}

func TestListApplicationsStatusFilter(t *testing.T) {
	svc, _, store := applicationTestFixture(t)

	first, _ := svc.Apply(context.Background(), "backend-engineer-acme-corp", validApplicationRequest())
	second := validApplicationRequest()
	second.Email = "john@example.com"
	if _, err := svc.Apply(context.Background(), "backend-engineer-acme-corp", second); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), "backend-engineer-acme-corp", first.ID,
		&dto.UpdateApplicationStatusRequest{Status: "reviewed"}); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	resp, err := svc.ListApplications(context.Background(), "backend-engineer-acme-corp",
		dto.ApplicationFilter{Status: "reviewed", Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("ListApplications() error = %v", err)
	}

	apps, ok := resp.Data.([]models.JobApplication)
	if !ok {
		t.Fatalf("Data type = %T, want []models.JobApplication", resp.Data)
	}
	if len(apps) != 1 || apps[0].ID != first.ID {
		t.Errorf("filtered applications = %+v, want only the reviewed one", apps)
	}
	if store.apps[1].Status != models.ApplicationStatusPending {
		t.Errorf("unfiltered application status changed: %q", store.apps[1].Status)
	}
}

func TestDeleteApplicationNotFound(t *testing.T) {
	svc, _, _ := applicationTestFixture(t)

	err := svc.DeleteApplication(context.Background(), "backend-engineer-acme-corp", 99)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("DeleteApplication() error = %v, want ErrResourceNotFound", err)
	}
}
