package repository

import (
	"context"
	"database/sql"

	"github.com/venuehub/ticketbooking/internal/model"
)

// CheckoutStore adapts the booking, payment and ticket repositories to
// the booking.Store interface over a single transaction.  Every write
// issued through it lands in the same transaction, so the checkout
// sequence commits atomically or not at all.
type CheckoutStore struct {
	tx       *sql.Tx
	bookings *BookingRepo
	payments *PaymentRepo
	tickets  *TicketRepo
}

// NewCheckoutStore binds the repositories to one open transaction.
// The caller owns the transaction lifecycle: the store never commits
// or rolls back.
func NewCheckoutStore(tx *sql.Tx, bookings *BookingRepo, payments *PaymentRepo, tickets *TicketRepo) *CheckoutStore {
	if tx == nil || bookings == nil || payments == nil || tickets == nil {
		panic("nil dependency passed to NewCheckoutStore")
	}
	return &CheckoutStore{tx: tx, bookings: bookings, payments: payments, tickets: tickets}
}

// CreateBooking inserts the booking row inside the transaction.
func (s *CheckoutStore) CreateBooking(ctx context.Context, b *model.Booking) (uint64, error) {
	return s.bookings.CreateTx(ctx, s.tx, b)
}

// CreatePayment inserts the payment row inside the transaction.
func (s *CheckoutStore) CreatePayment(ctx context.Context, p *model.Payment) (uint64, error) {
	return s.payments.CreateTx(ctx, s.tx, p)
}

// AttachPayment backfills the payment reference inside the transaction.
func (s *CheckoutStore) AttachPayment(ctx context.Context, bookingID, paymentID uint64) error {
	return s.bookings.AttachPaymentTx(ctx, s.tx, bookingID, paymentID)
}

// CreateTickets bulk-inserts the ticket rows inside the transaction.
func (s *CheckoutStore) CreateTickets(ctx context.Context, tickets []model.Ticket) error {
	return s.tickets.CreateBulkTx(ctx, s.tx, tickets)
}
