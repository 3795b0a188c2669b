// Package queue defines message payloads exchanged over the message
// broker and the background consumer that processes them.
package queue

// BookingCompletedEvent is published after a checkout transaction
// commits.  It carries enough detail for downstream consumers to log,
// notify or feed analytics without querying the primary database.
type BookingCompletedEvent struct {
	BookingID       uint64   `json:"booking_id"`
	PaymentID       uint64   `json:"payment_id"`
	UserID          uint64   `json:"user_id"`
	EventID         uint64   `json:"event_id"`
	PerformanceID   uint64   `json:"performance_id"`
	EventTitle      string   `json:"event_title"`
	PerformanceDate string   `json:"performance_date"`
	SeatLabels      []string `json:"seats"`
	DiscountApplied float64  `json:"discount_applied"`
	TotalAmount     float64  `json:"total_amount"`
	CompletedAt     string   `json:"completed_at"`
}
