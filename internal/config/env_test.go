// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_REMOTE_DOCUMENTS": "true",
		"APP_LOG_FILE":         "/var/log/dravis.log",

		"ADAPTER_ADDRESS":         "http://localhost:8000",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		// Storage has nested prefixes: STORAGE_ + DB_ / EXPORTS_
		"STORAGE_DB_DSN":      "/home/user/.config/dravis/client.db",
		"STORAGE_EXPORTS_DIR": "/home/user/Downloads",

		"WORKERS_HEALTH_INTERVAL": "15s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.True(t, cfg.App.RemoteDocuments)
	assert.Equal(t, "/var/log/dravis.log", cfg.App.LogFile)

	assert.Equal(t, "http://localhost:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "/home/user/.config/dravis/client.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/home/user/Downloads", cfg.Storage.Exports.Dir)

	assert.Equal(t, 15*time.Second, cfg.Workers.HealthInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"ADAPTER_ADDRESS": "http://backend:8000",
		"APP_LOG_FILE":    "client.log",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.False(t, cfg.App.RemoteDocuments)
	assert.Equal(t, "client.log", cfg.App.LogFile)
	assert.Equal(t, "http://backend:8000", cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Storage.Exports.Dir)
	assert.Zero(t, cfg.Workers.HealthInterval)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_OnlyStorage(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"STORAGE_DB_DSN":      "prefs.db",
		"STORAGE_EXPORTS_DIR": "exports",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "prefs.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "exports", cfg.Storage.Exports.Dir)
	assert.Empty(t, cfg.Adapter.HTTPAddress)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "not-a-duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	assert.Error(t, err)
}

func TestParseEnv_InvalidBool(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"APP_REMOTE_DOCUMENTS": "maybe",
	})

	// Act
	err := parseEnv(&StructuredConfig{})

	// Assert
	assert.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{name: "seconds", value: "45s", expected: 45 * time.Second},
		{name: "minutes", value: "2m", expected: 2 * time.Minute},
		{name: "mixed", value: "1m30s", expected: 90 * time.Second},
		{name: "milliseconds", value: "500ms", expected: 500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": tt.value})

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Adapter.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_REMOTE_DOCUMENTS",
		"APP_LOG_FILE",

		"ADAPTER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",

		"STORAGE_DB_DSN",
		"STORAGE_EXPORTS_DIR",

		"WORKERS_HEALTH_INTERVAL",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
