package postgres

import (
	"context"
	"database/sql"

	"campuscal/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository returns the Postgres-backed EventRepository.
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Insert(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, date, start_time, end_time, location, description, event_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Title, e.Date, e.StartTime, e.EndTime, e.Location, e.Description, e.EventType,
	).Scan(&e.ID)
}

func (r *eventRepository) ListAll(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT id, title, date, start_time, end_time, location, description, event_type
		FROM events
		ORDER BY id DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		var startNull, endNull, locNull, descNull sql.NullString
		if err := rows.Scan(&e.ID, &e.Title, &e.Date, &startNull, &endNull, &locNull, &descNull, &e.EventType); err != nil {
			return nil, err
		}
		if startNull.Valid {
			e.StartTime = &startNull.String
		}
		if endNull.Valid {
			e.EndTime = &endNull.String
		}
		if locNull.Valid {
			e.Location = &locNull.String
		}
		if descNull.Valid {
			e.Description = &descNull.String
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Update overwrites every mutable field. An id with no row is a silent
// no-op: the statement succeeds and affects nothing.
func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET title = $1, date = $2, start_time = $3, end_time = $4,
			location = $5, description = $6, event_type = $7
		WHERE id = $8
	`
	_, err := r.DB.ExecContext(ctx, query,
		e.Title, e.Date, e.StartTime, e.EndTime, e.Location, e.Description, e.EventType, e.ID,
	)
	return err
}

// Delete removes the row if present. An id with no row is a silent no-op.
func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM events WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}
