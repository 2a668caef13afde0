// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DocumentMetadata describes an uploaded reference document as acknowledged
// by the backend.
type DocumentMetadata struct {
	Filename   string    `json:"filename"`
	FileSizeMB float64   `json:"file_size_mb"`
	UploadTime Timestamp `json:"upload_time"`
}

// DocumentEntry pairs a document id with its metadata. Registry listings are
// returned as ordered slices of entries.
type DocumentEntry struct {
	DocID    string           `json:"doc_id"`
	Metadata DocumentMetadata `json:"metadata"`
}

// UploadResponse is the success body of POST /documents/upload.
type UploadResponse struct {
	DocID    string           `json:"doc_id"`
	Metadata DocumentMetadata `json:"metadata"`
}

// DocumentListResponse is the success body of GET /documents.
type DocumentListResponse struct {
	Documents []DocumentEntry `json:"documents"`
	Total     int             `json:"total"`
}

// ExplanationResult is the ephemeral outcome of an explain request. It is
// rendered once and never stored in the registry.
type ExplanationResult struct {
	Filename    string `json:"filename"`
	Explanation string `json:"explanation"`
}

// Timestamp is a [time.Time] that accepts both RFC 3339 values and the
// zone-less ISO-8601 form produced by Python's datetime.isoformat.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// UnmarshalJSON implements [json.Unmarshaler]. Zone-less values are
// interpreted as UTC. An empty string or null leaves the zero time.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}

	return fmt.Errorf("unsupported timestamp format %q", raw)
}

// MarshalJSON implements [json.Marshaler] using RFC 3339.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}
