// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PreferenceRepository is a durable key-value store for client preferences.
type PreferenceRepository interface {
	// GetPreference returns the stored value for key, or
	// [ErrPreferenceNotFound] when the key was never written.
	GetPreference(ctx context.Context, key string) (string, error)
	// SetPreference inserts or replaces the value stored under key.
	SetPreference(ctx context.Context, key, value string) error
}

// ArtifactWriter delivers downloaded artifacts to the user's file system.
type ArtifactWriter interface {
	// WriteArtifact stores data under name and returns the final path. name
	// must be a bare file name without directory components.
	WriteArtifact(ctx context.Context, name string, data []byte) (string, error)
}
