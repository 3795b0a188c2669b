// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/venuehub/ticketbooking/internal/config"
	"github.com/venuehub/ticketbooking/internal/handler"
	"github.com/venuehub/ticketbooking/internal/middleware"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	Events       *handler.EventHandler
	Performances *handler.PerformanceHandler
	Bookings     *handler.BookingHandler
	Users        *handler.UserHandler
	Admin        *handler.AdminHandler
}

// Register mounts every route on the Echo instance.  The surface is
// split in three tiers: unauthenticated browse endpoints, JWT-protected
// customer endpoints, and ADMIN-gated management endpoints.  When rdb
// is non-nil the browse tier is served through the Redis response
// cache and every route sits behind the token-bucket rate limiter.
func Register(e *echo.Echo, h Handlers, cfg config.Config, rdb *redis.Client) {
	if rdb != nil {
		rl := config.LoadRateLimitConfig()
		if rl.Enabled {
			e.Use(middleware.NewTokenBucket(rl, rdb))
		}
	}

	e.GET("/healthz", handler.Health)

	// Session endpoints need no existing session.
	auth := e.Group("/v1/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)
	auth.POST("/logout", h.Auth.Logout)

	// Catalog browsing is public; responses are cacheable.
	browse := e.Group("/v1")
	if rdb != nil {
		cc := config.LoadCacheConfig()
		if cc.Enabled {
			browse.Use(middleware.NewRedisCache(cc, rdb))
		}
	}
	browse.GET("/events", h.Events.List)
	browse.GET("/events/:id", h.Events.GetByID)
	browse.GET("/events/:id/performances", h.Performances.ListByEvent)
	browse.GET("/performances", h.Performances.List)
	browse.GET("/performances/:id", h.Performances.GetByID)

	// Everything past this point requires a valid access token.
	protected := e.Group("/v1")
	protected.Use(middleware.JWTAuth(cfg.JWTSecret))

	protected.GET("/auth/me", h.Auth.Me)
	protected.POST("/bookings", h.Bookings.Complete)
	protected.GET("/bookings/:id", h.Bookings.GetByID)
	protected.GET("/users/:id", h.Users.GetByID)
	protected.GET("/users/:id/bookings", h.Users.ListBookings)

	// Catalog writes and reporting are management-only.
	admin := e.Group("/v1")
	admin.Use(middleware.JWTAuth(cfg.JWTSecret))
	admin.Use(middleware.RequireRole("ADMIN"))

	admin.POST("/events", h.Events.Create)
	admin.PUT("/events/:id", h.Events.Update)
	admin.POST("/performances", h.Performances.Create)
	admin.PUT("/performances/:id", h.Performances.Update)
	admin.GET("/admin/events", h.Admin.ListEvents)
	admin.GET("/admin/events/:id/bookings", h.Admin.ListEventBookings)
}
