package main

import (
	"cemdon/internal/content"
	"cemdon/internal/content/handler"
	"cemdon/pkg/app"
	"cemdon/pkg/config"
)

const ServiceName = "site"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Site content service")
	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewContentHandler(content.NewCatalog(), cfg.Log), nil, "")
	serverApp.Run()
}
