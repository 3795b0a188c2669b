package model

import "time"

// Booking records one completed checkout: a user buying tickets for a
// single performance of a single event.  The discount and total are
// computed server-side by the pricing engine at checkout time; the
// payment reference is attached in a second step after the payment row
// has been written.  Bookings are never deleted by the booking path.
//
// Fields:
//  ID              – primary key identifier.
//  UserID          – user who made the booking.
//  EventID         – booked event.
//  PerformanceID   – booked performance.
//  BookingDate     – creation timestamp.
//  DiscountApplied – total discount taken off the base amount.
//  TotalAmount     – discounted grand total actually charged.
//  PaymentID       – reference to the payment row (null until attached).
type Booking struct {
	ID              uint64    // bookings.id
	UserID          uint64    // bookings.user_id
	EventID         uint64    // bookings.event_id
	PerformanceID   uint64    // bookings.performance_id
	BookingDate     time.Time // bookings.booking_date
	DiscountApplied float64   // bookings.discount_applied
	TotalAmount     float64   // bookings.total_amount
	PaymentID       *uint64   // bookings.payment_id (nullable)
}

// Payment stores the card details and charged amount for a booking.
// One payment belongs to exactly one booking.  Card fields are stored
// as given by the client.
//
// Fields:
//  ID             – primary key identifier.
//  BookingID      – booking this payment settles.
//  CardNumber     – card number as entered.
//  Expiry         – card expiry (MM/YY).
//  CVV            – card verification value.
//  CardHolderName – name on the card.
//  PaymentDate    – timestamp of the charge.
//  Amount         – charged amount, equal to the booking's TotalAmount.
type Payment struct {
	ID             uint64    // payments.id
	BookingID      uint64    // payments.booking_id
	CardNumber     string    // payments.card_number
	Expiry         string    // payments.expiry
	CVV            string    // payments.cvv
	CardHolderName string    // payments.card_holder_name
	PaymentDate    time.Time // payments.payment_date
	Amount         float64   // payments.amount
}

// Ticket is one seat sold under a booking.  The price stored here is
// the undiscounted band price, so the sum of ticket prices for a
// booking generally exceeds the booking's discounted TotalAmount.
// That asymmetry is intentional and must not be "fixed" by reconciling
// the two.
//
// Fields:
//  ID        – primary key identifier.
//  BookingID – owning booking.
//  SeatInfo  – generated seat label (e.g. "Seat 42").
//  Price     – undiscounted per-band price of this seat.
type Ticket struct {
	ID        uint64  `json:"id"`         // tickets.id
	BookingID uint64  `json:"booking_id"` // tickets.booking_id
	SeatInfo  string  `json:"seat_info"`  // tickets.seat_info
	Price     float64 `json:"price"`      // tickets.price
}
