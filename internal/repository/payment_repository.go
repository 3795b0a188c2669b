package repository

import (
	"context"
	"database/sql"

	"github.com/venuehub/ticketbooking/internal/model"
)

// PaymentRepo writes payment rows.  Payments are only ever created
// inside the checkout transaction, one per booking, so only a Tx
// variant exists.
type PaymentRepo struct{ DB *sql.DB }

// NewPaymentRepo returns a PaymentRepo bound to the given database.
func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{DB: db} }

// CreateTx inserts a payment row within an existing transaction and
// returns the generated ID.  Card fields are stored as given.
func (r *PaymentRepo) CreateTx(ctx context.Context, tx *sql.Tx, p *model.Payment) (uint64, error) {
	const q = `INSERT INTO payments (booking_id, card_number, expiry, cvv, card_holder_name, payment_date, amount)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, p.BookingID, p.CardNumber, p.Expiry, p.CVV,
		p.CardHolderName, p.PaymentDate, p.Amount)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	p.ID = uint64(id)
	return p.ID, nil
}
