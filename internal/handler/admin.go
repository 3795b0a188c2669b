package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/venuehub/ticketbooking/internal/repository"
)

// AdminHandler serves the administrative reporting views.  Routes
// mounting it must sit behind the ADMIN role guard.
type AdminHandler struct {
	Events   *repository.EventRepo
	Bookings *repository.BookingRepo
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(events *repository.EventRepo, bookings *repository.BookingRepo) *AdminHandler {
	if events == nil || bookings == nil {
		panic("nil dependency passed to NewAdminHandler")
	}
	return &AdminHandler{Events: events, Bookings: bookings}
}

// ListEvents handles GET /v1/admin/events: every event, newest run
// first, for the management dashboard.
func (h *AdminHandler) ListEvents(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	events, err := h.Events.ListByStartDateDesc(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, events)
}

// ListEventBookings handles GET /v1/admin/events/:id/bookings: the
// booking/ticket/buyer join for one event.  The event must exist; an
// event with no bookings yields an empty list.
func (h *AdminHandler) ListEventBookings(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	if _, err := h.Events.GetByID(ctx, id); err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	rows, err := h.Bookings.ListByEvent(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, rows)
}
