package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightdesk/api"
	"flightdesk/config"
	"flightdesk/internal/auth"
	"flightdesk/internal/bootstrap"
	"flightdesk/internal/cache"
	"flightdesk/internal/kafka"
	"flightdesk/internal/notify"
	"flightdesk/internal/repository"
	"flightdesk/internal/service/admins"
	"flightdesk/internal/service/airports"
	"flightdesk/internal/service/booking"
	"flightdesk/internal/service/flights"
	"flightdesk/internal/service/users"
	"flightdesk/pkg/logger"
	"flightdesk/pkg/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	log := logger.NewLogger()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal("load config", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal("connect postgres", "error", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis,
		time.Duration(cfg.Cache.FlightsTTLSeconds)*time.Second,
		time.Duration(cfg.Cache.IATATTLSeconds)*time.Second)

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	m := metrics.NewMetrics("flightdesk")
	hub := notify.NewHub()
	notifier := notify.NewNotifier(hub, log,
		notify.WithProducer(producer, cfg.Kafka.NotificationsTopic),
		notify.WithMetrics(m),
	)
	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.SessionTTLMinutes)*time.Minute)

	flightRepo := repository.NewFlightRepository(pool)
	iataRepo := repository.NewIATARepository(pool)
	userRepo := repository.NewUserRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	stateRepo := repository.NewStateRepository(pool)

	handlers := bootstrap.Handlers{
		Flights:  api.NewFlightHandler(flights.NewFlightService(flightRepo, redisCache, notifier)),
		Airports: api.NewAirportHandler(airports.NewAirportService(iataRepo, redisCache)),
		Users:    api.NewUserHandler(users.NewUserService(userRepo, notifier, tokens)),
		Admins:   api.NewAdminHandler(admins.NewAdminService(adminRepo, notifier, tokens)),
		Bookings: api.NewBookingHandler(booking.NewBookingService(bookingRepo, flightRepo, notifier)),
		States:   api.NewStateHandler(stateRepo),
		Events:   api.NewEventHandler(hub),
	}

	log.Info("starting flightdesk API", "address", cfg.HTTP.Address)
	if err := bootstrap.Run(ctx, cfg, log, m, handlers); err != nil {
		log.Fatal("server error", "error", err)
	}
}
