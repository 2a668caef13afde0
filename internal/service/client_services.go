package service

import (
	"github.com/MKhiriev/dravis-client/internal/adapter"
	"github.com/MKhiriev/dravis-client/internal/config"
	"github.com/MKhiriev/dravis-client/internal/logger"
	"github.com/MKhiriev/dravis-client/internal/store"
)

// ClientServices groups every client-side service consumed by the
// orchestrator.
type ClientServices struct {
	Conversation ConversationSession
	Documents    DocumentStore
	Export       ExportService
	Health       HealthService
	HealthJob    HealthJob
	Theme        ThemeService
	Quiz         QuizGenerator
	Auth         Authenticator
}

// NewClientServices wires the services on top of the storages and the
// backend adapter. With appCfg.RemoteDocuments the startup document listing
// is fetched from the backend instead of starting empty.
func NewClientServices(storages *store.ClientStorages, backend adapter.BackendAdapter, appCfg config.ClientApp, logger *logger.Logger) *ClientServices {
	lister := NewEmptyDocumentLister()
	if appCfg.RemoteDocuments {
		lister = NewRemoteDocumentLister(backend)
	}

	healthSvc := NewHealthService(backend, logger)

	return &ClientServices{
		Conversation: NewConversationSession(backend, logger),
		Documents:    NewDocumentStore(backend, lister, logger),
		Export:       NewExportService(backend, storages.Artifacts, logger),
		Health:       healthSvc,
		HealthJob:    NewHealthJob(healthSvc),
		Theme:        NewThemeService(storages.Preferences, logger),
		Quiz:         NewUnavailableQuizGenerator(),
		Auth:         NewStaticAuthenticator(true),
	}
}
