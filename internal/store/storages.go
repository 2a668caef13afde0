package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dravis-client/internal/config"
	"github.com/MKhiriev/dravis-client/internal/logger"
)

// ClientStorages groups all client-side storage components into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// Preferences is the SQLite-backed key-value preference store.
	Preferences PreferenceRepository
	// Artifacts delivers exported transcripts to the export directory.
	Artifacts ArtifactWriter

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs the preference repository and the artifact writer rooted at
//     cfg.ExportDir.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Preferences: NewPreferenceRepository(db, logger),
		Artifacts:   NewFileArtifactWriter(cfg.ExportDir, logger),
		db:          db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
