package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/venuehub/ticketbooking/internal/model"
)

// BookingRepo provides access to the bookings table.  Checkout writes
// go through the Tx variants so the booking, payment and ticket rows
// commit together; reads run against the pool directly.
type BookingRepo struct{ DB *sql.DB }

// NewBookingRepo returns a BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// CreateTx inserts a booking row within an existing transaction and
// returns the generated ID.  The payment reference is left null; it
// is attached by AttachPaymentTx once the payment row exists.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) (uint64, error) {
	const q = `INSERT INTO bookings (user_id, event_id, performance_id, booking_date, discount_applied, total_amount)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, b.UserID, b.EventID, b.PerformanceID, b.BookingDate,
		b.DiscountApplied, b.TotalAmount)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	b.ID = uint64(id)
	return b.ID, nil
}

// AttachPaymentTx backfills the payment reference onto an existing
// booking row within the same transaction that created it.
func (r *BookingRepo) AttachPaymentTx(ctx context.Context, tx *sql.Tx, bookingID, paymentID uint64) error {
	_, err := tx.ExecContext(ctx, `UPDATE bookings SET payment_id = ? WHERE id = ?`, paymentID, bookingID)
	return err
}

// BookingDetail is a booking joined with its event title, performance
// date and the tickets sold under it.  It is the shape returned to a
// customer viewing a confirmation page.
type BookingDetail struct {
	BookingID       uint64         `json:"booking_id"`
	EventTitle      string         `json:"event_title"`
	PerformanceDate time.Time      `json:"performance_date"`
	DiscountApplied float64        `json:"discount_applied"`
	TotalAmount     float64        `json:"total_amount"`
	Tickets         []model.Ticket `json:"tickets"`
}

// GetDetail loads a booking together with its event title, performance
// date and ticket list.  It returns ErrBookingNotFound when the
// booking does not exist.
func (r *BookingRepo) GetDetail(ctx context.Context, bookingID uint64) (*BookingDetail, error) {
	const q = `SELECT b.id, b.discount_applied, b.total_amount, e.title, p.performance_date
	           FROM bookings b
	           JOIN events e ON e.id = b.event_id
	           JOIN performances p ON p.id = b.performance_id
	           WHERE b.id = ?`
	var det BookingDetail
	err := r.DB.QueryRowContext(ctx, q, bookingID).
		Scan(&det.BookingID, &det.DiscountApplied, &det.TotalAmount, &det.EventTitle, &det.PerformanceDate)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	const ticketQ = `SELECT id, booking_id, seat_info, price FROM tickets WHERE booking_id = ? ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, ticketQ, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	det.Tickets = make([]model.Ticket, 0)
	for rows.Next() {
		var t model.Ticket
		if err := rows.Scan(&t.ID, &t.BookingID, &t.SeatInfo, &t.Price); err != nil {
			return nil, err
		}
		det.Tickets = append(det.Tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &det, nil
}

// UserBooking is one row of a user's booking history: the booking's
// totals joined with the event title and performance date.
type UserBooking struct {
	BookingID       uint64    `json:"booking_id"`
	EventTitle      string    `json:"event_title"`
	PerformanceDate time.Time `json:"performance_date"`
	BookingDate     time.Time `json:"booking_date"`
	TotalAmount     float64   `json:"total_amount"`
}

// ListByUser returns a user's bookings newest first.  An empty slice
// is returned when the user has no bookings.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]UserBooking, error) {
	const q = `SELECT b.id, e.title, p.performance_date, b.booking_date, b.total_amount
	           FROM bookings b
	           JOIN events e ON e.id = b.event_id
	           JOIN performances p ON p.id = b.performance_id
	           WHERE b.user_id = ?
	           ORDER BY b.booking_date DESC`
	rows, err := r.DB.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]UserBooking, 0)
	for rows.Next() {
		var ub UserBooking
		if err := rows.Scan(&ub.BookingID, &ub.EventTitle, &ub.PerformanceDate, &ub.BookingDate, &ub.TotalAmount); err != nil {
			return nil, err
		}
		list = append(list, ub)
	}
	return list, rows.Err()
}

// EventBookingRow is one joined row of the per-event admin view: a
// booking, one of its tickets, and the buyer's name.  The join fans
// out per ticket, so a booking with three tickets appears three times,
// matching the shape the admin UI consumes.
type EventBookingRow struct {
	BookingID       uint64    `json:"booking_id"`
	UserID          uint64    `json:"user_id"`
	UserName        string    `json:"user_name"`
	TotalAmount     float64   `json:"total_amount"`
	DiscountApplied float64   `json:"discount_applied"`
	BookingDate     time.Time `json:"booking_date"`
	TicketID        uint64    `json:"ticket_id"`
	SeatInfo        string    `json:"seat_info"`
	Price           float64   `json:"price"`
}

// ListByEvent returns the booking+ticket+user join for one event,
// newest bookings first.  Bookings without tickets do not appear
// (inner join), matching the administrative report this feeds.
func (r *BookingRepo) ListByEvent(ctx context.Context, eventID uint64) ([]EventBookingRow, error) {
	const q = `SELECT b.id, b.user_id, u.name, b.total_amount, b.discount_applied, b.booking_date,
	                  t.id, t.seat_info, t.price
	           FROM bookings b
	           JOIN tickets t ON t.booking_id = b.id
	           JOIN users u ON u.id = b.user_id
	           WHERE b.event_id = ?
	           ORDER BY b.booking_date DESC, t.id`
	rows, err := r.DB.QueryContext(ctx, q, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]EventBookingRow, 0)
	for rows.Next() {
		var row EventBookingRow
		if err := rows.Scan(&row.BookingID, &row.UserID, &row.UserName, &row.TotalAmount,
			&row.DiscountApplied, &row.BookingDate, &row.TicketID, &row.SeatInfo, &row.Price); err != nil {
			return nil, err
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
