package handler

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/venuehub/ticketbooking/internal/booking"
	"github.com/venuehub/ticketbooking/internal/pricing"
	"github.com/venuehub/ticketbooking/internal/queue"
	"github.com/venuehub/ticketbooking/internal/repository"
	queue_publisher "github.com/venuehub/ticketbooking/internal/service"
)

// BookingHandler completes checkouts and serves booking details.  The
// checkout path owns the transaction: it begins one, runs the
// sequencer through a CheckoutStore bound to it, and commits before
// anything is reported back to the client.
type BookingHandler struct {
	DB        *sql.DB
	Sequencer *booking.Sequencer
	Bookings  *repository.BookingRepo
	Payments  *repository.PaymentRepo
	Tickets   *repository.TicketRepo
	Events    *repository.EventRepo
	Perfs     *repository.PerformanceRepo
}

// NewBookingHandler constructs a BookingHandler with the provided
// dependencies.  All of them must be non-nil.
func NewBookingHandler(db *sql.DB, seq *booking.Sequencer, bookings *repository.BookingRepo,
	payments *repository.PaymentRepo, tickets *repository.TicketRepo,
	events *repository.EventRepo, perfs *repository.PerformanceRepo) *BookingHandler {
	if db == nil || seq == nil || bookings == nil || payments == nil || tickets == nil || events == nil || perfs == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{
		DB:        db,
		Sequencer: seq,
		Bookings:  bookings,
		Payments:  payments,
		Tickets:   tickets,
		Events:    events,
		Perfs:     perfs,
	}
}

// completeBookingReq is the checkout body.  The client sends its own
// total and discount preview for display purposes; both are recomputed
// server-side and the client figures are never persisted.
type completeBookingReq struct {
	EventID            uint64                       `json:"event_id"`
	PerformanceID      uint64                       `json:"performance_id"`
	TotalAmount        float64                      `json:"total_amount"`      // client preview, ignored
	DiscountApplied    float64                      `json:"discount_applied"`  // client preview, ignored
	Categories         map[string]pricing.Selection `json:"categories"`
	Payment            booking.CardDetails          `json:"payment"`
	PerformanceDetails map[string]float64           `json:"performance_details"` // band -> price, ignored when the performance is known
}

// Complete handles POST /v1/bookings.  The authenticated user books
// the given performance; band prices are read from the performance row
// so a tampered client cannot price its own tickets.  All writes run
// in one transaction and either all land or none do.
func (h *BookingHandler) Complete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req completeBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.EventID == 0 || req.PerformanceID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "event_id and performance_id required"})
	}
	if len(req.Categories) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "categories required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	perf, err := h.Perfs.GetByID(ctx, req.PerformanceID)
	if err != nil {
		if err == repository.ErrPerformanceNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "performance not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	bands := pricing.BandPrices{
		pricing.Band1: perf.Band1Price,
		pricing.Band2: perf.Band2Price,
		pricing.Band3: perf.Band3Price,
	}

	tx, err := h.DB.BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "error completing booking"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	store := repository.NewCheckoutStore(tx, h.Bookings, h.Payments, h.Tickets)
	res, err := h.Sequencer.Complete(ctx, store, booking.CheckoutRequest{
		UserID:        userID,
		EventID:       req.EventID,
		PerformanceID: req.PerformanceID,
		Selections:    req.Categories,
		BandPrices:    bands,
		Card:          req.Payment,
	})
	if err != nil {
		log.Printf("checkout: booking for user %d failed: %v", userID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "error completing booking"})
	}
	if err := tx.Commit(); err != nil {
		log.Printf("checkout: commit for user %d failed: %v", userID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "error completing booking"})
	}
	committed = true

	// Best-effort event publish; the booking is already committed and a
	// broker outage must not fail the request.
	go h.publishCompleted(userID, req.EventID, req.PerformanceID, perf.PerformanceDate, res)

	return c.JSON(http.StatusOK, echo.Map{
		"message":    "booking completed successfully",
		"booking_id": res.BookingID,
		"payment_id": res.PaymentID,
	})
}

// publishCompleted assembles and publishes the BookingCompletedEvent.
func (h *BookingHandler) publishCompleted(userID, eventID, performanceID uint64, perfDate time.Time, res booking.Result) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	title := ""
	if ev, err := h.Events.GetByID(ctx, eventID); err == nil {
		title = ev.Title
	}
	_ = queue_publisher.PublishBookingCompleted(ctx, queue.BookingCompletedEvent{
		BookingID:       res.BookingID,
		PaymentID:       res.PaymentID,
		UserID:          userID,
		EventID:         eventID,
		PerformanceID:   performanceID,
		EventTitle:      title,
		PerformanceDate: perfDate.UTC().Format("2006-01-02"),
		SeatLabels:      res.SeatLabels,
		DiscountApplied: res.Discount,
		TotalAmount:     res.TotalAmount,
		CompletedAt:     time.Now().UTC().Format(time.RFC3339),
	})
}

// GetByID handles GET /v1/bookings/:id and returns the booking with
// its event title, performance date and ticket list.
func (h *BookingHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	det, err := h.Bookings.GetDetail(ctx, id)
	if err != nil {
		if err == repository.ErrBookingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, det)
}
