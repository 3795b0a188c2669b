package repository

import (
	"context"
	"database/sql"

	"github.com/venuehub/ticketbooking/internal/model"
)

// TicketRepo provides access to the tickets table.  Tickets are
// created in bulk inside the checkout transaction and read back when
// rendering booking details.
type TicketRepo struct{ DB *sql.DB }

// NewTicketRepo returns a TicketRepo bound to the given database.
func NewTicketRepo(db *sql.DB) *TicketRepo { return &TicketRepo{DB: db} }

// CreateBulkTx inserts all given tickets in a single statement within
// an existing transaction.  Passing an empty slice has no effect and
// returns nil.
func (r *TicketRepo) CreateBulkTx(ctx context.Context, tx *sql.Tx, tickets []model.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}
	query := `INSERT INTO tickets (booking_id, seat_info, price) VALUES `
	args := make([]interface{}, 0, len(tickets)*3)
	for i, t := range tickets {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?)"
		args = append(args, t.BookingID, t.SeatInfo, t.Price)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// ListByBooking returns all tickets sold under one booking in
// insertion order.
func (r *TicketRepo) ListByBooking(ctx context.Context, bookingID uint64) ([]model.Ticket, error) {
	const q = `SELECT id, booking_id, seat_info, price FROM tickets WHERE booking_id = ? ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, q, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]model.Ticket, 0)
	for rows.Next() {
		var t model.Ticket
		if err := rows.Scan(&t.ID, &t.BookingID, &t.SeatInfo, &t.Price); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}
