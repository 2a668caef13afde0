package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dravis-client/internal/adapter"
	"github.com/MKhiriev/dravis-client/internal/client"
	"github.com/MKhiriev/dravis-client/internal/config"
	"github.com/MKhiriev/dravis-client/internal/logger"
	"github.com/MKhiriev/dravis-client/internal/orchestrator"
	"github.com/MKhiriev/dravis-client/internal/service"
	"github.com/MKhiriev/dravis-client/internal/store"
	"github.com/MKhiriev/dravis-client/internal/tui"
	"github.com/MKhiriev/dravis-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("dravis-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("dravis-client", logger.FileOptions{Path: cfg.App.LogFile})

	backendAdapter, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(storages, backendAdapter, cfg.App, log)
	orch := orchestrator.New(services, log)

	ui, err := tui.New(orch, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, storages, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
