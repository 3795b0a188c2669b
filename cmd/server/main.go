package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/venuehub/ticketbooking/internal/booking"
	"github.com/venuehub/ticketbooking/internal/config"
	"github.com/venuehub/ticketbooking/internal/database"
	"github.com/venuehub/ticketbooking/internal/handler"
	"github.com/venuehub/ticketbooking/internal/queue"
	"github.com/venuehub/ticketbooking/internal/repository"
	"github.com/venuehub/ticketbooking/internal/router"
)

func main() {
	// .env is a development convenience; in production configuration
	// arrives through real environment variables.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db, cfg.MigrationsDir); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	rdb := config.NewRedisClient() // nil when Redis is unreachable; caching and limits degrade off

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	events := repository.NewEventRepo(db)
	performances := repository.NewPerformanceRepo(db)
	discounts := repository.NewDiscountRepo(db)
	bookings := repository.NewBookingRepo(db)
	payments := repository.NewPaymentRepo(db)
	tickets := repository.NewTicketRepo(db)

	seq := booking.NewSequencer(discounts)

	h := router.Handlers{
		Auth:         handler.NewAuthHandler(cfg, users, tokens),
		Events:       handler.NewEventHandler(events),
		Performances: handler.NewPerformanceHandler(performances),
		Bookings:     handler.NewBookingHandler(db, seq, bookings, payments, tickets, events, performances),
		Users:        handler.NewUserHandler(users, bookings),
		Admin:        handler.NewAdminHandler(events, bookings),
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, h, cfg, rdb)

	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
