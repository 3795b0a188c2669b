// Package booking orchestrates checkout: pricing a set of category
// selections and persisting the booking, payment and ticket rows as
// one ordered sequence.  Persistence is abstracted behind the Store
// interface so the sequence can run against a SQL transaction in
// production and an in-memory fake in tests.
package booking

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/venuehub/ticketbooking/internal/model"
	"github.com/venuehub/ticketbooking/internal/pricing"
)

// seatPoolSize is the size of the numbered seat label pool.  Labels
// are drawn uniformly with replacement, so two tickets may carry the
// same label, even within one booking.  Seat uniqueness and capacity
// enforcement are known gaps kept for compatibility with the existing
// schema and data.
const seatPoolSize = 100

// Store is the persistence surface the sequencer writes through.  A
// production Store wraps a single SQL transaction; every method's
// writes become visible together on commit or not at all.
type Store interface {
	// CreateBooking inserts a booking row and returns its generated ID.
	CreateBooking(ctx context.Context, b *model.Booking) (uint64, error)
	// CreatePayment inserts a payment row and returns its generated ID.
	CreatePayment(ctx context.Context, p *model.Payment) (uint64, error)
	// AttachPayment backfills the payment reference onto the booking.
	AttachPayment(ctx context.Context, bookingID, paymentID uint64) error
	// CreateTickets bulk-inserts ticket rows.  Called only with a
	// non-empty slice.
	CreateTickets(ctx context.Context, tickets []model.Ticket) error
}

// CardDetails carries the payment card fields from the checkout
// request.  They are persisted as given.
type CardDetails struct {
	CardNumber     string `json:"card_number"`
	Expiry         string `json:"expiry"`
	CVV            string `json:"cvv"`
	CardHolderName string `json:"card_holder_name"`
}

// CheckoutRequest is one checkout to complete.  The client may declare
// its own totals but they play no part here: the sequencer reprices
// the selections from the band prices and discount rules.
type CheckoutRequest struct {
	UserID        uint64
	EventID       uint64
	PerformanceID uint64
	Selections    map[string]pricing.Selection
	BandPrices    pricing.BandPrices
	Card          CardDetails
}

// Result reports a completed checkout.
type Result struct {
	BookingID   uint64
	PaymentID   uint64
	Discount    float64
	TotalAmount float64
	SeatLabels  []string
}

// Sequencer completes checkouts.  It holds the discount source used by
// the pricing engine; per-request persistence arrives through the
// Store argument of Complete.
type Sequencer struct {
	discounts pricing.DiscountSource
}

// NewSequencer returns a Sequencer pricing against the given discount
// source.
func NewSequencer(discounts pricing.DiscountSource) *Sequencer {
	if discounts == nil {
		panic("nil discount source passed to NewSequencer")
	}
	return &Sequencer{discounts: discounts}
}

// Complete runs the checkout sequence against the store:
//
//  1. price the selections (authoritative discount and total),
//  2. insert the booking row,
//  3. insert the payment row for the discounted total,
//  4. backfill the payment reference onto the booking,
//  5. generate one ticket per purchased seat at the undiscounted band
//     price and bulk-insert them (skipped when nothing was purchased).
//
// The first store error aborts the sequence and is returned as-is;
// the caller owns the surrounding transaction and must roll back.
func (s *Sequencer) Complete(ctx context.Context, store Store, req CheckoutRequest) (Result, error) {
	quote, err := pricing.Compute(ctx, s.discounts, req.Selections, req.BandPrices)
	if err != nil {
		return Result{}, fmt.Errorf("price checkout: %w", err)
	}

	now := time.Now().UTC()
	bookingID, err := store.CreateBooking(ctx, &model.Booking{
		UserID:          req.UserID,
		EventID:         req.EventID,
		PerformanceID:   req.PerformanceID,
		BookingDate:     now,
		DiscountApplied: quote.Discount,
		TotalAmount:     quote.Total,
	})
	if err != nil {
		return Result{}, fmt.Errorf("insert booking: %w", err)
	}

	paymentID, err := store.CreatePayment(ctx, &model.Payment{
		BookingID:      bookingID,
		CardNumber:     req.Card.CardNumber,
		Expiry:         req.Card.Expiry,
		CVV:            req.Card.CVV,
		CardHolderName: req.Card.CardHolderName,
		PaymentDate:    now,
		Amount:         quote.Total,
	})
	if err != nil {
		return Result{}, fmt.Errorf("insert payment: %w", err)
	}

	if err := store.AttachPayment(ctx, bookingID, paymentID); err != nil {
		return Result{}, fmt.Errorf("attach payment: %w", err)
	}

	tickets := generateTickets(bookingID, req.Selections, req.BandPrices)
	if len(tickets) > 0 {
		if err := store.CreateTickets(ctx, tickets); err != nil {
			return Result{}, fmt.Errorf("insert tickets: %w", err)
		}
	}

	res := Result{
		BookingID:   bookingID,
		PaymentID:   paymentID,
		Discount:    quote.Discount,
		TotalAmount: quote.Total,
		SeatLabels:  make([]string, 0, len(tickets)),
	}
	for _, t := range tickets {
		res.SeatLabels = append(res.SeatLabels, t.SeatInfo)
	}
	return res, nil
}

// generateTickets expands each purchased selection into qty ticket
// rows priced at the undiscounted band price, each with a seat label
// drawn from the numbered pool.
func generateTickets(bookingID uint64, selections map[string]pricing.Selection, bands pricing.BandPrices) []model.Ticket {
	var tickets []model.Ticket
	for _, cat := range []string{pricing.CategoryAdults, pricing.CategoryChildren, pricing.CategoryOAP, pricing.CategorySocial} {
		sel, ok := selections[cat]
		if !ok || sel.Band == "" || sel.Qty <= 0 {
			continue
		}
		price := bands[sel.Band]
		for i := 0; i < sel.Qty; i++ {
			tickets = append(tickets, model.Ticket{
				BookingID: bookingID,
				SeatInfo:  randomSeatLabel(),
				Price:     price,
			})
		}
	}
	return tickets
}

// randomSeatLabel picks a label uniformly from the pool.  Collisions
// are permitted.
func randomSeatLabel() string {
	return fmt.Sprintf("Seat %d", rand.Intn(seatPoolSize)+1)
}
