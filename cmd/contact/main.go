package main

import (
	"cemdon/internal/contact/handler"
	"cemdon/internal/contact/service"
	"cemdon/internal/contact/submitter"
	"cemdon/internal/contact/validator"
	"cemdon/pkg/app"
	"cemdon/pkg/config"
	"cemdon/pkg/events"
	"cemdon/pkg/metrics"
)

const ServiceName = "contact"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Contact service")
	serverApp := app.NewApplication(cfg)

	publisher, err := events.New(cfg, cfg.ContactTopic, ServiceName, metrics.NewEventMetrics(serverApp.Registry()))
	if err != nil {
		cfg.Log.Fatal("Failed to create event publisher", "error", err)
	}
	serverApp.OnClose(func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	})

	sub := submitter.New(cfg.ContactDelay)
	serverApp.OnShutdown(sub)

	contactService := service.NewContactService(
		sub,
		validator.NewContactValidator(cfg.Log),
		publisher,
		metrics.NewContactMetrics(serverApp.Registry()),
		cfg,
	)
	cfg.Log.Info("Contact service initialized", "delay", cfg.ContactDelay)

	serverApp.SetApp(handler.NewContactHandler(contactService, cfg.Log), nil, "")
	serverApp.Run()
}
