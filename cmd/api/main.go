package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/travelwise/travelwise-api/internal/clock"
	"github.com/travelwise/travelwise-api/internal/http/handlers"
	"github.com/travelwise/travelwise-api/internal/platform/auth"
	"github.com/travelwise/travelwise-api/internal/service"
	"github.com/travelwise/travelwise-api/internal/session"
	"github.com/travelwise/travelwise-api/internal/store/memory"
	"github.com/travelwise/travelwise-api/pkg/config"
	"github.com/travelwise/travelwise-api/pkg/events"
	"github.com/travelwise/travelwise-api/pkg/logger"
	mw "github.com/travelwise/travelwise-api/pkg/middleware"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// Event bus: NATS when configured, in-process otherwise.
	var bus events.Bus
	if cfg.NATS.URL != "" {
		natsBus, err := events.NewNATSBus(cfg.NATS.URL)
		if err != nil {
			logger.Error("Failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		bus = natsBus
	} else {
		bus = events.NewMemoryBus()
	}
	defer bus.Close()

	// Sessions and rate limiting: Redis when configured, memory otherwise.
	var sessions session.Store = session.NewMemoryStore()
	var authLimiter func(http.Handler) http.Handler
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			logger.Error("Invalid REDIS_URL", "error", err)
			os.Exit(1)
		}
		client := redis.NewClient(opts)
		defer client.Close()

		sessions = session.NewRedisStore(client)
		authLimiter = mw.NewRateLimiter(client, mw.RateLimitConfig{
			Requests: cfg.RateLimit.Requests,
			Window:   cfg.RateLimit.Window,
		}).Middleware()
	}

	// Credential policy: shared constant by default, argon2id when opted in.
	var verifier auth.CredentialVerifier = auth.SharedPasswordVerifier{Password: cfg.Auth.SharedPassword}
	if cfg.Auth.PasswordMode == "argon2id" {
		verifier = auth.Argon2idVerifier{}
	}

	// In-memory stores, seeded with the fixture catalog and accounts.
	destinationStore := memory.NewDestinationStore(nil)
	destinationStore.Seed(memory.SeedDestinations()...)
	hotelStore := memory.NewHotelStore(nil)
	hotelStore.Seed(memory.SeedHotels()...)
	bookingStore := memory.NewBookingStore(nil, clock.NewSystem())
	userStore := memory.NewUserStore(nil)
	userStore.Seed(memory.SeedUsers()...)

	catalogService := service.NewCatalogService(destinationStore, hotelStore, bus)
	bookingService := service.NewBookingService(bookingStore, bus)
	authService := service.NewAuthService(userStore, sessions, verifier, bus, cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)

	h := handlers.New(catalogService, bookingService, authService)
	router := h.Router(handlers.RouterOptions{AuthLimiter: authLimiter})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down API...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("API shutdown error", "error", err)
		}
	}()

	logger.Info("Starting API", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("API server error", "error", err)
		os.Exit(1)
	}
}
