package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/preskool/school/internal/app/models"
)

// EventRepository handles database operations for campus events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

// Create creates a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (title, description, date, location)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, event.Title, event.Description, event.Date, event.Location).Scan(&event.ID)
	if err != nil {
		return err
	}

	return nil
}

// GetAll retrieves all events ordered by date
func (r *EventRepository) GetAll(ctx context.Context) ([]*models.Event, error) {
	query := `
		SELECT id, title, description, date, location
		FROM events
		ORDER BY date
	`

	return r.queryEvents(ctx, query)
}

// GetUpcoming retrieves events on or after the given day ordered by date. The
// cast drops the time of day from the cutoff so an event dated today still
// qualifies.
func (r *EventRepository) GetUpcoming(ctx context.Context, from time.Time) ([]*models.Event, error) {
	query := `
		SELECT id, title, description, date, location
		FROM events
		WHERE date >= $1::date
		ORDER BY date
	`

	return r.queryEvents(ctx, query, from)
}

func (r *EventRepository) queryEvents(ctx context.Context, query string, args ...interface{}) ([]*models.Event, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Date,
			&event.Location,
		); err != nil {
			return nil, err
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
