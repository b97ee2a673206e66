package main

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/eco-rental-booking/internal/config"
	"github.com/iliyamo/eco-rental-booking/internal/handler"
	"github.com/iliyamo/eco-rental-booking/internal/logger"
	appmw "github.com/iliyamo/eco-rental-booking/internal/middleware"
	"github.com/iliyamo/eco-rental-booking/internal/queue"
	"github.com/iliyamo/eco-rental-booking/internal/repository"
	"github.com/iliyamo/eco-rental-booking/internal/router"
	"github.com/iliyamo/eco-rental-booking/internal/seed"
	"github.com/iliyamo/eco-rental-booking/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	cfg := config.Load()
	log := logger.New()

	directory := repository.NewPropertyDirectory()
	if cfg.SeedDemoProperties {
		seed.Demo(directory, log)
	}

	var publisher service.EventPublisher
	if cfg.EventsEnabled {
		publisher = service.NewAMQPPublisher()
		go queue.StartBookingConsumer(log)
	}
	bookings := service.NewBookingService(directory, publisher, log)

	// Redis is optional: without it the cache and rate limiter are no-ops.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn("redis unavailable, response cache and rate limiting disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(appmw.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e,
		handler.NewPropertyHandler(directory),
		handler.NewCalendarHandler(directory),
		handler.NewBookingHandler(bookings),
		appmw.NewResponseCache(config.LoadCacheConfig(), rdb),
	)

	addr := ":" + cfg.Port
	log.Infof("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
