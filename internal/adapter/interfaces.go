// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// DRAVIS assistant backend.
//
// The primary abstraction is [BackendAdapter], which decouples the service
// layer from HTTP. The package ships a resty-based implementation
// ([NewHTTPBackendAdapter]).
//
// Every failure is classified into the taxonomy defined in errors.go so that
// callers can use [errors.Is] for transport-agnostic handling: [ErrNetwork]
// when no response arrived, [ErrBackend] (and [ErrNotFound] for 404) for
// non-2xx responses and [ErrParse] for undecodable 2xx bodies.
package adapter

import (
	"context"

	"github.com/MKhiriev/dravis-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines communication with the DRAVIS backend. Implementations
// are responsible for serialisation, request correlation headers and mapping
// transport-level failures to the sentinel values defined in this package.
type BackendAdapter interface {
	// Probe performs the liveness check (GET /) and returns the backend
	// description. A 2xx response with an undecodable body returns [ErrParse].
	Probe(ctx context.Context) (models.BackendInfo, error)

	// Chat sends one user message (POST /chat) and returns the assistant
	// reply together with the conversation id assigned by the backend.
	Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)

	// ListDocuments returns every document the backend currently holds
	// (GET /documents).
	ListDocuments(ctx context.Context) ([]models.DocumentEntry, error)

	// UploadDocument sends file content as the multipart field "file"
	// (POST /documents/upload) and returns the acknowledged id and metadata.
	UploadDocument(ctx context.Context, filename string, content []byte) (models.UploadResponse, error)

	// ExplainDocument requests an explanation of the document identified by
	// docID (GET /documents/{doc_id}/explain).
	ExplainDocument(ctx context.Context, docID string) (models.ExplanationResult, error)

	// DeleteDocument removes the document identified by docID
	// (DELETE /documents/{doc_id}). A 404 matches [ErrNotFound].
	DeleteDocument(ctx context.Context, docID string) error

	// ExportConversation requests the transcript artifact of a conversation
	// (POST /chat/{conversation_id}/export) and returns its raw bytes.
	ExportConversation(ctx context.Context, conversationID string) ([]byte, error)
}
