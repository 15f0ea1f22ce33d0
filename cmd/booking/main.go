package main

import (
	"cemdon/internal/bookings/handler"
	"cemdon/internal/bookings/repository"
	"cemdon/internal/bookings/service"
	"cemdon/internal/bookings/validator"
	"cemdon/pkg/app"
	"cemdon/pkg/config"
	"cemdon/pkg/events"
	"cemdon/pkg/metrics"
	"cemdon/pkg/sealer"
)

const ServiceName = "booking"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetStoreClient()

	cfg.Log.Info("Starting Booking service")
	serverApp := app.NewApplication(cfg)

	repo := repository.New(cfg)
	if stopper, ok := repo.(repository.Stopper); ok {
		serverApp.OnShutdown(stopper)
	}

	publisher, err := events.New(cfg, cfg.BookingTopic, ServiceName, metrics.NewEventMetrics(serverApp.Registry()))
	if err != nil {
		cfg.Log.Fatal("Failed to create event publisher", "error", err)
	}
	serverApp.OnClose(func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	})

	bookingService := service.NewBookingService(
		repo,
		validator.NewBookingValidator(cfg.Log),
		newSealer(cfg),
		publisher,
		metrics.NewBookingMetrics(serverApp.Registry()),
		cfg,
	)
	cfg.Log.Info("Booking service initialized", "store", cfg.SessionStore)

	serverApp.SetApp(handler.NewBookingHandler(bookingService, cfg.Log), repo, cfg.SessionStore)
	serverApp.Run()
}

// newSealer uses the configured key, or a random one that invalidates all
// tokens on restart.
func newSealer(cfg *config.Config) *sealer.Sealer {
	if key := cfg.SealKey(); key != nil {
		s, err := sealer.New(key)
		if err != nil {
			cfg.Log.Fatal("Invalid session seal key", "error", err)
		}
		return s
	}

	cfg.Log.Warn("SESSION_SEAL_KEY not set, using an ephemeral key")
	s, err := sealer.NewRandom()
	if err != nil {
		cfg.Log.Fatal("Failed to generate session seal key", "error", err)
	}
	return s
}
