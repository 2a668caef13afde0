package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/dravis-client/internal/adapter"
	"github.com/MKhiriev/dravis-client/internal/app"
	"github.com/MKhiriev/dravis-client/internal/logger"
	"github.com/MKhiriev/dravis-client/models"
)

type healthService struct {
	backend adapter.BackendAdapter
	logger  *logger.Logger
}

// NewHealthService returns a [HealthService] probing backend.
func NewHealthService(backend adapter.BackendAdapter, logger *logger.Logger) HealthService {
	return &healthService{backend: backend, logger: logger.WithComponent("health")}
}

// Probe implements [HealthService]. A 2xx with an undecodable body is online
// but degraded; any other failure is offline.
func (h *healthService) Probe(ctx context.Context) models.Health {
	info, err := h.backend.Probe(ctx)
	switch {
	case err == nil:
		model := info.Model
		if model == "" {
			model = app.MsgUnknownModel
		}
		return models.Health{Status: models.HealthOnline, Model: model}

	case errors.Is(err, adapter.ErrParse):
		h.logger.Warn().Err(err).
			Str("func", "healthService.Probe").
			Msg("backend is up but answered with an unexpected body")
		return models.Health{Status: models.HealthOnline, Model: app.MsgUnknownModel, Degraded: true}

	default:
		h.logger.Warn().Err(err).
			Str("func", "healthService.Probe").
			Msg("backend is offline")
		return models.Health{Status: models.HealthOffline, Model: app.MsgModelPlaceholder}
	}
}
