package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/dravis-client/internal/config"
	"github.com/MKhiriev/dravis-client/internal/logger"
	"github.com/MKhiriev/dravis-client/internal/service"
	"github.com/MKhiriev/dravis-client/internal/workers"
)

// App owns the process lifecycle of the client.
type App struct {
	ui      UI
	workers *workers.Workers
	closer  io.Closer
	logger  *logger.Logger
}

// NewApp wires the health worker to ui. closer, typically the client
// storages, is closed when Run returns.
func NewApp(services *service.ClientServices, ui UI, workersCfg config.ClientWorkers, closer io.Closer, logger *logger.Logger) (*App, error) {
	if services == nil || services.HealthJob == nil {
		return nil, errors.New("client services are not initialised")
	}
	if ui == nil {
		return nil, errors.New("ui is nil")
	}

	health := workers.NewHealthWorker(services.HealthJob, workersCfg.HealthInterval, ui.ApplyHealth)

	return &App{
		ui:      ui,
		workers: workers.NewWorkers(health),
		closer:  closer,
		logger:  logger,
	}, nil
}

// Run starts background workers and blocks in the UI until the user quits or
// the process receives SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Str("func", "App.Run").Msg("client starting")

	a.workers.Start(ctx)
	defer a.workers.Stop()

	defer func() {
		if a.closer == nil {
			return
		}
		if err := a.closer.Close(); err != nil {
			a.logger.Err(err).Str("func", "App.Run").Msg("failed to close storages")
		}
	}()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().Str("func", "App.Run").Msg("client stopped")
	return nil
}
