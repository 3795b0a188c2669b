package repository

import (
	"context"
	"database/sql"

	"github.com/venuehub/ticketbooking/internal/model"
)

// EventRepo provides CRUD access to the events table.  Event identity
// is immutable once created; Update never touches the primary key.
type EventRepo struct{ DB *sql.DB }

// NewEventRepo returns an EventRepo bound to the given database.
func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{DB: db} }

// List returns all events in insertion order.  An empty slice is
// returned when the table is empty.
func (r *EventRepo) List(ctx context.Context) ([]model.Event, error) {
	const q = `SELECT id, title, genre, description, duration_minutes, start_date, end_date FROM events`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]model.Event, 0)
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Genre, &e.Description, &e.DurationMinutes, &e.StartDate, &e.EndDate); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// ListByStartDateDesc returns all events ordered by start date, newest
// run first.  Used by the administrative overview.
func (r *EventRepo) ListByStartDateDesc(ctx context.Context) ([]model.Event, error) {
	const q = `SELECT id, title, genre, description, duration_minutes, start_date, end_date
	           FROM events ORDER BY start_date DESC`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]model.Event, 0)
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Genre, &e.Description, &e.DurationMinutes, &e.StartDate, &e.EndDate); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetByID fetches a single event.  It returns ErrEventNotFound when no
// row matches.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (model.Event, error) {
	const q = `SELECT id, title, genre, description, duration_minutes, start_date, end_date
	           FROM events WHERE id = ? LIMIT 1`
	var e model.Event
	err := r.DB.QueryRowContext(ctx, q, id).
		Scan(&e.ID, &e.Title, &e.Genre, &e.Description, &e.DurationMinutes, &e.StartDate, &e.EndDate)
	if err == sql.ErrNoRows {
		return model.Event{}, ErrEventNotFound
	}
	if err != nil {
		return model.Event{}, err
	}
	return e, nil
}

// Create inserts a new event and returns its generated ID.
func (r *EventRepo) Create(ctx context.Context, e model.Event) (uint64, error) {
	const q = `INSERT INTO events (title, genre, description, duration_minutes, start_date, end_date)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.DB.ExecContext(ctx, q, e.Title, e.Genre, e.Description, e.DurationMinutes, e.StartDate, e.EndDate)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update rewrites every mutable column of an event.  Matching zero
// rows is not an error; the update simply has no effect.
func (r *EventRepo) Update(ctx context.Context, id uint64, e model.Event) error {
	const q = `UPDATE events
	           SET title = ?, genre = ?, description = ?, duration_minutes = ?, start_date = ?, end_date = ?
	           WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, q, e.Title, e.Genre, e.Description, e.DurationMinutes, e.StartDate, e.EndDate, id)
	return err
}
