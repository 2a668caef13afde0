// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/dravis-client/internal/adapter"
)

// UserMessage returns the text shown to the user for a failed operation: the
// backend-supplied detail when present, otherwise fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if detail, ok := adapter.DetailOf(err); ok {
		return detail
	}
	return fallback
}
