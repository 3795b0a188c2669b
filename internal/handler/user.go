package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/venuehub/ticketbooking/internal/repository"
)

// UserHandler serves customer profiles and booking history.
type UserHandler struct {
	Users    *repository.UserRepo
	Bookings *repository.BookingRepo
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(users *repository.UserRepo, bookings *repository.BookingRepo) *UserHandler {
	if users == nil || bookings == nil {
		panic("nil dependency passed to NewUserHandler")
	}
	return &UserHandler{Users: users, Bookings: bookings}
}

// GetByID handles GET /v1/users/:id and returns the user's profile.
func (h *UserHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, u)
}

// ListBookings handles GET /v1/users/:id/bookings and returns the
// user's booking history newest first.  A user with no bookings gets
// an empty list, not a 404.
func (h *UserHandler) ListBookings(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	list, err := h.Bookings.ListByUser(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, list)
}
