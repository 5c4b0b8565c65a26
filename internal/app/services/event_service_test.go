package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ets-hub/etshub-backend/internal/app/models"
	"github.com/ets-hub/etshub-backend/internal/app/models/dto"
	"github.com/ets-hub/etshub-backend/internal/pkg/apperrors"
)

type fakeEventStore struct {
	events map[int64]*models.Event
	nextID int64
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{events: map[int64]*models.Event{}}
}

func (f *fakeEventStore) List(ctx context.Context, filter dto.EventFilter, offset uint64, limit int) ([]models.Event, int64, error) {
	out := []models.Event{}
	for _, e := range f.events {
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEventStore) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	if e, ok := f.events[id]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, apperrors.NewNotFoundError("Event not found")
}

func (f *fakeEventStore) Create(ctx context.Context, event *models.Event) error {
	f.nextID++
	event.ID = f.nextID
	stored := *event
	f.events[event.ID] = &stored
	return nil
}

func (f *fakeEventStore) Update(ctx context.Context, event *models.Event) error {
	if _, ok := f.events[event.ID]; !ok {
		return apperrors.NewNotFoundError("Event not found")
	}
	stored := *event
	f.events[event.ID] = &stored
	return nil
}

func (f *fakeEventStore) Delete(ctx context.Context, id int64) error {
	if _, ok := f.events[id]; !ok {
		return apperrors.NewNotFoundError("Event not found")
	}
	delete(f.events, id)
	return nil
}

func TestCreateEvent(t *testing.T) {
	svc := NewEventService(newFakeEventStore())

	event, err := svc.CreateEvent(context.Background(), &dto.CreateEventRequest{
		Title:       "Monthly Meetup",
		Description: "Talks and networking",
		Location:    "Lagos",
		EventDate:   "2026-09-12",
	})
	if err != nil {
		t.Fatalf("CreateEvent() error = %v", err)
	}
	if event.EventDate.Format("2006-01-02") != "2026-09-12" {
		t.Errorf("EventDate = %v, want 2026-09-12", event.EventDate)
	}
	if event.Tags == nil {
		t.Error("Tags should be an empty slice, not nil")
	}
}

func TestCreateEventValidation(t *testing.T) {
	svc := NewEventService(newFakeEventStore())

	// title and eventDate both missing: title is reported.
	_, err := svc.CreateEvent(context.Background(), &dto.CreateEventRequest{
		Description: "x",
		Location:    "y",
	})
	if got, want := err.Error(), "Missing required field: title"; got != want {
		t.Errorf("error message = %q, want %q", got, want)
	}

	_, err = svc.CreateEvent(context.Background(), &dto.CreateEventRequest{
		Title:       "Meetup",
		Description: "x",
		Location:    "y",
		EventDate:   "12/09/2026",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("malformed date error = %v, want ErrValidationFailed", err)
	}
}

func TestListEventsEmpty(t *testing.T) {
	svc := NewEventService(newFakeEventStore())

	resp, err := svc.ListEvents(context.Background(), dto.EventFilter{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("ListEvents() error = %v", err)
	}
	if resp.Pagination.TotalPages != 0 {
		t.Errorf("TotalPages = %d, want 0 for an empty result", resp.Pagination.TotalPages)
	}
	if resp.Pagination.HasNextPage || resp.Pagination.HasPreviousPage {
		t.Error("empty result should have no next or previous page")
	}
}

func TestUpdateEventPartial(t *testing.T) {
	store := newFakeEventStore()
	svc := NewEventService(store)

	created, err := svc.CreateEvent(context.Background(), &dto.CreateEventRequest{
		Title:       "Monthly Meetup",
		Description: "Talks",
		Location:    "Lagos",
		EventDate:   "2026-09-12",
		Tags:        []string{"tech"},
	})
	if err != nil {
		t.Fatalf("CreateEvent() error = %v", err)
	}

	newTitle := "Quarterly Meetup"
	updated, err := svc.UpdateEvent(context.Background(), created.ID, &dto.UpdateEventRequest{Title: &newTitle})
	if err != nil {
		t.Fatalf("UpdateEvent() error = %v", err)
	}
	if updated.Title != "Quarterly Meetup" {
		t.Errorf("Title = %q, want %q", updated.Title, "Quarterly Meetup")
	}
	if updated.Location != "Lagos" || len(updated.Tags) != 1 {
		t.Errorf("untouched fields were modified: %+v", updated)
	}
}

func TestDeleteEventNotFound(t *testing.T) {
	svc := NewEventService(newFakeEventStore())

	err := svc.DeleteEvent(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("DeleteEvent() error = %v, want ErrResourceNotFound", err)
	}
}
