package main

import (
	"ordering/cmd"

	"github.com/labstack/gommon/log"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, err := cmd.NewLogger(configs.LogLevel)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app := cmd.NewCompositionRoot(configs, logger)
	startWebServer(app)
}

func startWebServer(app cmd.CompositionRoot) {
	e := app.CreateRouter()
	e.Logger.Fatal(e.Start(app.Address()))
}
