package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultHTTPAddress    = "http://localhost:8000"
	defaultRequestTimeout = 60 * time.Second
	defaultHealthInterval = 30 * time.Second
	defaultDBFileName     = "client.db"
	appDirName            = "dravis"
)

// defaultConfig returns the lowest-priority configuration layer. Paths are
// placed under the user's config and home directories when those can be
// resolved, otherwise under the working directory.
func defaultConfig() *StructuredConfig {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = "."
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return &StructuredConfig{
		Storage: Storage{
			DB:      DB{DSN: filepath.Join(configDir, appDirName, defaultDBFileName)},
			Exports: Exports{Dir: filepath.Join(homeDir, "Downloads")},
		},
		Adapter: Adapter{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{
			HealthInterval: defaultHealthInterval,
		},
	}
}
