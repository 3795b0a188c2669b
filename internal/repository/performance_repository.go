package repository

import (
	"context"
	"database/sql"

	"github.com/venuehub/ticketbooking/internal/model"
)

// PerformanceRepo provides CRUD access to the performances table.
// Each performance belongs to exactly one event; the repository does
// not verify the parent event still exists on update, matching the
// rest of the catalog surface.
type PerformanceRepo struct{ DB *sql.DB }

// NewPerformanceRepo returns a PerformanceRepo bound to the given database.
func NewPerformanceRepo(db *sql.DB) *PerformanceRepo { return &PerformanceRepo{DB: db} }

// List returns all performances across all events.
func (r *PerformanceRepo) List(ctx context.Context) ([]model.Performance, error) {
	const q = `SELECT id, event_id, performance_date, start_time, end_time,
	                  band1_price, band2_price, band3_price, capacity
	           FROM performances`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	perfs := make([]model.Performance, 0)
	for rows.Next() {
		var p model.Performance
		if err := rows.Scan(&p.ID, &p.EventID, &p.PerformanceDate, &p.StartTime, &p.EndTime,
			&p.Band1Price, &p.Band2Price, &p.Band3Price, &p.Capacity); err != nil {
			return nil, err
		}
		perfs = append(perfs, p)
	}
	return perfs, rows.Err()
}

// ListByEvent returns all performances of one event.  When the event
// has none (or does not exist) ErrPerformanceNotFound is returned so
// handlers can answer 404, matching the behaviour callers rely on.
func (r *PerformanceRepo) ListByEvent(ctx context.Context, eventID uint64) ([]model.Performance, error) {
	const q = `SELECT id, event_id, performance_date, start_time, end_time,
	                  band1_price, band2_price, band3_price, capacity
	           FROM performances WHERE event_id = ?`
	rows, err := r.DB.QueryContext(ctx, q, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	perfs := make([]model.Performance, 0)
	for rows.Next() {
		var p model.Performance
		if err := rows.Scan(&p.ID, &p.EventID, &p.PerformanceDate, &p.StartTime, &p.EndTime,
			&p.Band1Price, &p.Band2Price, &p.Band3Price, &p.Capacity); err != nil {
			return nil, err
		}
		perfs = append(perfs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(perfs) == 0 {
		return nil, ErrPerformanceNotFound
	}
	return perfs, nil
}

// GetByID fetches a single performance.  It returns
// ErrPerformanceNotFound when no row matches.
func (r *PerformanceRepo) GetByID(ctx context.Context, id uint64) (model.Performance, error) {
	const q = `SELECT id, event_id, performance_date, start_time, end_time,
	                  band1_price, band2_price, band3_price, capacity
	           FROM performances WHERE id = ? LIMIT 1`
	var p model.Performance
	err := r.DB.QueryRowContext(ctx, q, id).
		Scan(&p.ID, &p.EventID, &p.PerformanceDate, &p.StartTime, &p.EndTime,
			&p.Band1Price, &p.Band2Price, &p.Band3Price, &p.Capacity)
	if err == sql.ErrNoRows {
		return model.Performance{}, ErrPerformanceNotFound
	}
	if err != nil {
		return model.Performance{}, err
	}
	return p, nil
}

// Create inserts a new performance and returns its generated ID.
func (r *PerformanceRepo) Create(ctx context.Context, p model.Performance) (uint64, error) {
	const q = `INSERT INTO performances
	           (event_id, performance_date, start_time, end_time, band1_price, band2_price, band3_price, capacity)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.DB.ExecContext(ctx, q, p.EventID, p.PerformanceDate, p.StartTime, p.EndTime,
		p.Band1Price, p.Band2Price, p.Band3Price, p.Capacity)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update rewrites the schedule and pricing columns of a performance.
// The parent event reference is not changed.  Matching zero rows is
// not an error.
func (r *PerformanceRepo) Update(ctx context.Context, id uint64, p model.Performance) error {
	const q = `UPDATE performances
	           SET performance_date = ?, start_time = ?, end_time = ?,
	               band1_price = ?, band2_price = ?, band3_price = ?, capacity = ?
	           WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, q, p.PerformanceDate, p.StartTime, p.EndTime,
		p.Band1Price, p.Band2Price, p.Band3Price, p.Capacity, id)
	return err
}
