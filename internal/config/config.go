// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the dravis
// client. It aggregates all sub-configurations and is populated by merging
// values from command-line flags, environment variables, an optional JSON
// file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level feature switches and the log location.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local preferences database and
	// the directory exported transcripts are written to.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the backend address and the outbound request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// RemoteDocuments switches the startup document listing from the empty
	// stub to GET /documents on the backend.
	// Env: APP_REMOTE_DOCUMENTS
	RemoteDocuments bool `env:"REMOTE_DOCUMENTS"`

	// LogFile is the path of the rotating client log file.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for all local storage backends.
type Storage struct {
	// DB holds the local preferences database settings.
	DB DB `envPrefix:"DB_"`

	// Exports holds the destination of exported conversation transcripts.
	Exports Exports `envPrefix:"EXPORTS_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Exports holds settings for delivered transcript files.
type Exports struct {
	// Dir is the directory transcripts are written to.
	// Env: STORAGE_EXPORTS_DIR
	Dir string `env:"DIR"`
}

// Adapter holds settings of the outbound backend connection.
type Adapter struct {
	// HTTPAddress is the backend base URL or host:port
	// (e.g. "http://localhost:8000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single backend request
	// (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// HealthInterval is the period of the backend liveness re-probe.
	// Env: WORKERS_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the client configuration
// from all available sources in the following priority order (earlier
// sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
