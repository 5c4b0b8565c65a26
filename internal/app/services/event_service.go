package services

import (
	"context"
	"fmt"

	"github.com/ets-hub/etshub-backend/internal/app/models"
	"github.com/ets-hub/etshub-backend/internal/app/models/dto"
	"github.com/ets-hub/etshub-backend/internal/pkg/apperrors"
	"github.com/ets-hub/etshub-backend/internal/pkg/helpers"
	"github.com/ets-hub/etshub-backend/internal/pkg/validation"
)

// eventStore is the repository surface the event service needs.
type eventStore interface {
	List(ctx context.Context, filter dto.EventFilter, offset uint64, limit int) ([]models.Event, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int64) error
}

// EventService handles event-related operations
type EventService struct {
	eventRepo eventStore
}

// NewEventService creates a new event service instance
func NewEventService(eventRepo eventStore) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// ListEvents returns one page of events matching the filter.
func (s *EventService) ListEvents(ctx context.Context, filter dto.EventFilter) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Limit)

	events, total, err := s.eventRepo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	resp := dto.NewPaginatedResponse(events, helpers.NewPaginationInfo(total, filter.Page, limit))
	return &resp, nil
}

// GetEvent returns a single event by ID.
func (s *EventService) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

// CreateEvent validates the form and stores a new event.
func (s *EventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error) {
	missing := validation.FirstMissing([]validation.Field{
		{Name: "title", Value: req.Title},
		{Name: "description", Value: req.Description},
		{Name: "location", Value: req.Location},
		{Name: "eventDate", Value: req.EventDate},
	})
	if missing != "" {
		return nil, apperrors.NewMissingFieldError(missing)
	}

	eventDate, err := helpers.ParseDate(req.EventDate)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid eventDate, expected YYYY-MM-DD")
	}

	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		EventDate:   eventDate,
		DayOfWeek:   req.DayOfWeek,
		ImageURL:    req.ImageURL,
		Tags:        req.Tags,
		Link:        req.Link,
	}
	if event.Tags == nil {
		event.Tags = []string{}
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// UpdateEvent applies the fields present in the request to the stored
// event and returns the merged result.
func (s *EventService) UpdateEvent(ctx context.Context, id int64, req *dto.UpdateEventRequest) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.EventDate != nil {
		eventDate, err := helpers.ParseDate(*req.EventDate)
		if err != nil {
			return nil, apperrors.NewValidationError("Invalid eventDate, expected YYYY-MM-DD")
		}
		event.EventDate = eventDate
	}
	if req.DayOfWeek != nil {
		event.DayOfWeek = *req.DayOfWeek
	}
	if req.ImageURL != nil {
		event.ImageURL = *req.ImageURL
	}
	if req.Tags != nil {
		event.Tags = *req.Tags
	}
	if req.Link != nil {
		event.Link = *req.Link
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent removes an event permanently.
func (s *EventService) DeleteEvent(ctx context.Context, id int64) error {
	return s.eventRepo.Delete(ctx, id)
}
