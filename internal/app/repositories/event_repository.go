package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ets-hub/etshub-backend/internal/app/models"
	"github.com/ets-hub/etshub-backend/internal/app/models/dto"
	"github.com/ets-hub/etshub-backend/internal/pkg/apperrors"
)

const eventColumns = "id, title, description, location, event_date, day_of_week, image_url, tags, link, created_at, updated_at"

// EventRepository handles database operations for events
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// eventListConditions translates the filter into WHERE conditions
// shared by the select and count queries.
func eventListConditions(filter dto.EventFilter) squirrel.And {
	cond := squirrel.And{}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		cond = append(cond, squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"description": pattern},
			squirrel.ILike{"location": pattern},
		})
	}
	// Tag filtering is array containment: the literal tag must be an
	// element of tags, matched case-sensitively.
	if filter.Tag != "" {
		cond = append(cond, squirrel.Expr("tags @> ARRAY[?]::text[]", filter.Tag))
	}
	if filter.Month >= 1 && filter.Month <= 12 {
		cond = append(cond, squirrel.Expr("EXTRACT(MONTH FROM event_date) = ?", filter.Month))
	}

	return cond
}

// listQuery builds the paginated select. Events are ordered by
// event_date then id so pages stay stable across requests.
func (r *EventRepository) listQuery(filter dto.EventFilter, offset uint64, limit int) (string, []interface{}, error) {
	return r.sb.Select(eventColumns).
		From("events").
		Where(eventListConditions(filter)).
		OrderBy("event_date ASC", "id ASC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
}

// List retrieves one page of events plus the unpaginated total.
func (r *EventRepository) List(ctx context.Context, filter dto.EventFilter, offset uint64, limit int) ([]models.Event, int64, error) {
	countSql, countArgs, err := r.sb.Select("COUNT(*)").
		From("events").
		Where(eventListConditions(filter)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count events query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	listSql, listArgs, err := r.listQuery(filter, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list events query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSql, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := scanEvent(rows, &e); err != nil {
			return nil, 0, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate event rows: %w", err)
	}

	return events, total, nil
}

// GetByID retrieves an event by its primary key.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := fmt.Sprintf("SELECT %s FROM events WHERE id = $1", eventColumns)

	var e models.Event
	if err := scanEvent(r.db.QueryRow(ctx, query, id), &e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("Event not found")
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &e, nil
}

// Create inserts a new event and fills the generated fields.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (title, description, location, event_date, day_of_week, image_url, tags, link)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		event.Title, event.Description, event.Location, event.EventDate,
		event.DayOfWeek, event.ImageURL, event.Tags, event.Link,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// Update replaces the stored row with the merged event.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE events
		SET title = $1, description = $2, location = $3, event_date = $4,
			day_of_week = $5, image_url = $6, tags = $7, link = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query,
		event.Title, event.Description, event.Location, event.EventDate,
		event.DayOfWeek, event.ImageURL, event.Tags, event.Link, event.ID,
	).Scan(&event.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("Event not found")
		}
		return fmt.Errorf("failed to update event: %w", err)
	}
	return nil
}

// Delete removes an event. Zero affected rows is a not-found.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM events WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("Event not found")
	}
	return nil
}

func scanEvent(row pgx.Row, e *models.Event) error {
	return row.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.Location,
		&e.EventDate,
		&e.DayOfWeek,
		&e.ImageURL,
		&e.Tags,
		&e.Link,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
}
