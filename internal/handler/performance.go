package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/venuehub/ticketbooking/internal/model"
	"github.com/venuehub/ticketbooking/internal/repository"
)

// PerformanceHandler exposes the performances catalog: public reads
// plus admin-gated create and update.
type PerformanceHandler struct {
	Performances *repository.PerformanceRepo
}

// NewPerformanceHandler constructs a PerformanceHandler.
func NewPerformanceHandler(performances *repository.PerformanceRepo) *PerformanceHandler {
	if performances == nil {
		panic("nil repository passed to NewPerformanceHandler")
	}
	return &PerformanceHandler{Performances: performances}
}

type performanceReq struct {
	EventID         uint64    `json:"event_id"`
	PerformanceDate time.Time `json:"performance_date"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	Band1Price      float64   `json:"band1_price"`
	Band2Price      float64   `json:"band2_price"`
	Band3Price      float64   `json:"band3_price"`
	Capacity        int       `json:"capacity"`
}

// List handles GET /v1/performances across all events.
func (h *PerformanceHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	perfs, err := h.Performances.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, perfs)
}

// GetByID handles GET /v1/performances/:id.
func (h *PerformanceHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid performance id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	perf, err := h.Performances.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrPerformanceNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "performance not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, perf)
}

// ListByEvent handles GET /v1/events/:id/performances.  An event with
// no performances answers 404, which the booking page relies on to
// hide dates that cannot be bought.
func (h *PerformanceHandler) ListByEvent(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	perfs, err := h.Performances.ListByEvent(ctx, eventID)
	if err != nil {
		if err == repository.ErrPerformanceNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no performances found for this event"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, perfs)
}

// Create handles POST /v1/performances and returns the generated ID.
func (h *PerformanceHandler) Create(c echo.Context) error {
	var req performanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.EventID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "event_id required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	id, err := h.Performances.Create(ctx, model.Performance{
		EventID:         req.EventID,
		PerformanceDate: req.PerformanceDate,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Band1Price:      req.Band1Price,
		Band2Price:      req.Band2Price,
		Band3Price:      req.Band3Price,
		Capacity:        req.Capacity,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create performance failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"performance_id": id})
}

// Update handles PUT /v1/performances/:id.  The parent event is never
// re-validated here; cross-entity checks are out of scope for the
// catalog surface.
func (h *PerformanceHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid performance id"})
	}
	var req performanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	err = h.Performances.Update(ctx, id, model.Performance{
		PerformanceDate: req.PerformanceDate,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Band1Price:      req.Band1Price,
		Band2Price:      req.Band2Price,
		Band3Price:      req.Band3Price,
		Capacity:        req.Capacity,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update performance failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "performance updated"})
}
