package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN, unsupported in-memory DSN or no export dir).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero health interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrNegativeDuration indicates a timeout or interval below zero.
	ErrNegativeDuration = errors.New("durations must not be negative")
)
