package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a backend address (URL or host:port)
//	-request-timeout backend request timeout (e.g., "30s", "1m")
//	-d preferences database file
//	-export-dir directory for exported transcripts
//	-remote-documents list documents from the backend at startup
//	-log-file client log file
//	-health-interval backend re-probe interval (e.g., "30s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var backendAddress string
	var requestTimeout time.Duration
	var databaseDSN string
	var exportDir string
	var remoteDocuments bool
	var logFile string
	var healthInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&backendAddress, "a", "", "Backend address (URL or host:port)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&databaseDSN, "d", "", "Preferences database file")
	flag.StringVar(&exportDir, "export-dir", "", "Directory for exported transcripts")
	flag.BoolVar(&remoteDocuments, "remote-documents", false, "List documents from the backend at startup")
	flag.StringVar(&logFile, "log-file", "", "Client log file")
	flag.DurationVar(&healthInterval, "health-interval", 0, "Backend re-probe interval (e.g., 30s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			RemoteDocuments: remoteDocuments,
			LogFile:         logFile,
		},
		Storage: Storage{
			DB:      DB{DSN: databaseDSN},
			Exports: Exports{Dir: exportDir},
		},
		Adapter: Adapter{
			HTTPAddress:    backendAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			HealthInterval: healthInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
