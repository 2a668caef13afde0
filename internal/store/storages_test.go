package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/dravis-client/internal/config"
	"github.com/MKhiriev/dravis-client/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientStorages_SQLiteRoundTrip(t *testing.T) {
	root := t.TempDir()
	cfg := config.ClientStorage{
		DB:        config.ClientDB{DSN: filepath.Join(root, "cfg", "client.db")},
		ExportDir: filepath.Join(root, "exports"),
	}
	ctx := context.Background()

	s, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)

	_, err = s.Preferences.GetPreference(ctx, "darkMode")
	assert.ErrorIs(t, err, ErrPreferenceNotFound)

	require.NoError(t, s.Preferences.SetPreference(ctx, "darkMode", "true"))
	require.NoError(t, s.Preferences.SetPreference(ctx, "darkMode", "false"))
	require.NoError(t, s.Close())

	reopened, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Preferences.GetPreference(ctx, "darkMode")
	require.NoError(t, err)
	assert.Equal(t, "false", got)

	path, err := reopened.Artifacts.WriteArtifact(ctx, "conversation_x.md", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.ExportDir, "conversation_x.md"), path)
}

func TestClientStorages_CloseWithoutDB(t *testing.T) {
	assert.NoError(t, (&ClientStorages{}).Close())
}
