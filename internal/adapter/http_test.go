// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/dravis-client/internal/config"
	"github.com/MKhiriev/dravis-client/internal/logger"
	"github.com/MKhiriev/dravis-client/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpBackendAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpBackendAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPBackendAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpBackendAdapter)
}

func newTestServer(t *testing.T, r chi.Router) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── NewHTTPBackendAdapter ────────────────────────────────────────────────────

func TestNewHTTPBackendAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPBackendAdapter(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8000", want: "http://localhost:8000"},
		{name: "full url", raw: "https://dravis.example.com/", want: "https://dravis.example.com"},
		{name: "trimmed", raw: "  http://127.0.0.1:8000  ", want: "http://127.0.0.1:8000"},
		{name: "empty", raw: "", wantErr: true},
		{name: "scheme only", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Request correlation ──────────────────────────────────────────────────────

func TestRequests_CarryRequestID(t *testing.T) {
	seen := make(chan string, 2)
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		seen <- r.Header.Get(RequestIDHeader)
		writeJSON(t, w, http.StatusOK, map[string]string{"model": "m"})
	})
	srv := newTestServer(t, r)

	a := newTestAdapter(t, srv.URL)
	_, err := a.Probe(context.Background())
	require.NoError(t, err)
	_, err = a.Probe(context.Background())
	require.NoError(t, err)

	first, second := <-seen, <-seen
	assert.NotEqual(t, first, second)
	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

// ── Probe ─────────────────────────────────────────────────────────────────────

func TestProbe_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]string{"model": "gemini-2.0-flash", "status": "running"})
	})
	srv := newTestServer(t, r)

	info, err := newTestAdapter(t, srv.URL).Probe(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash", info.Model)
	assert.Equal(t, "running", info.Status)
}

func TestProbe_MalformedBody(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>ok</html>"))
	})
	srv := newTestServer(t, r)

	_, err := newTestAdapter(t, srv.URL).Probe(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
	assert.NotErrorIs(t, err, ErrNetwork)
}

func TestProbe_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Probe(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestProbe_ServerError(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	srv := newTestServer(t, r)

	_, err := newTestAdapter(t, srv.URL).Probe(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBackend)
	assert.NotErrorIs(t, err, ErrNotFound)
}

// ── Chat ──────────────────────────────────────────────────────────────────────

func TestChat_SendsNullConversationID(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/chat", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		assert.Equal(t, "hello", body["message"])
		v, ok := body["conversation_id"]
		assert.True(t, ok, "conversation_id must be present")
		assert.Nil(t, v)
		assert.Equal(t, "exam_prep", body["mode"])
		assert.Equal(t, true, body["use_documents"])

		writeJSON(t, w, http.StatusOK, models.ChatResponse{Response: "hi", ConversationID: "c-1"})
	})
	srv := newTestServer(t, r)

	got, err := newTestAdapter(t, srv.URL).Chat(context.Background(), models.ChatRequest{
		Message:      "hello",
		Mode:         models.ChatModeExamPrep,
		UseDocuments: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "hi", got.Response)
	assert.Equal(t, "c-1", got.ConversationID)
}

func TestChat_SendsExistingConversationID(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/chat", func(w http.ResponseWriter, r *http.Request) {
		var req models.ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.ConversationID)
		assert.Equal(t, "c-9", *req.ConversationID)
		writeJSON(t, w, http.StatusOK, models.ChatResponse{Response: "again"})
	})
	srv := newTestServer(t, r)

	id := "c-9"
	got, err := newTestAdapter(t, srv.URL).Chat(context.Background(), models.ChatRequest{
		Message:        "more",
		ConversationID: &id,
	})

	require.NoError(t, err)
	assert.Equal(t, "again", got.Response)
}

func TestChat_BackendDetail(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/chat", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, map[string]string{"detail": "Gemini quota exceeded"})
	})
	srv := newTestServer(t, r)

	_, err := newTestAdapter(t, srv.URL).Chat(context.Background(), models.ChatRequest{Message: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBackend)

	var be *BackendError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, http.StatusInternalServerError, be.StatusCode)
	assert.Equal(t, "Gemini quota exceeded", be.Detail)
}

func TestChat_MalformedBody(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/chat", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response": 42`))
	})
	srv := newTestServer(t, r)

	_, err := newTestAdapter(t, srv.URL).Chat(context.Background(), models.ChatRequest{Message: "x"})

	assert.ErrorIs(t, err, ErrParse)
}

// ── ListDocuments ─────────────────────────────────────────────────────────────

func TestListDocuments_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/documents", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"documents":[
			{"doc_id":"d1","metadata":{"filename":"a.pdf","file_size_mb":1.5,"upload_time":"2025-01-02T03:04:05.123456"}}
		],"total":1}`))
	})
	srv := newTestServer(t, r)

	docs, err := newTestAdapter(t, srv.URL).ListDocuments(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "d1", docs[0].DocID)
	assert.Equal(t, "a.pdf", docs[0].Metadata.Filename)
	assert.InDelta(t, 1.5, docs[0].Metadata.FileSizeMB, 0.0001)
	assert.Equal(t, 2025, docs[0].Metadata.UploadTime.Year())
}

// ── UploadDocument ────────────────────────────────────────────────────────────

func TestUploadDocument_SendsMultipartFile(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/documents/upload", func(w http.ResponseWriter, r *http.Request) {
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		content, err := io.ReadAll(f)
		require.NoError(t, err)

		assert.Equal(t, "notes.pdf", hdr.Filename)
		assert.Equal(t, "%PDF-1.4", string(content))

		writeJSON(t, w, http.StatusOK, map[string]any{
			"doc_id": "doc-42",
			"metadata": map[string]any{
				"filename":     "notes.pdf",
				"file_size_mb": 0.01,
				"upload_time":  "2025-03-01T10:00:00",
			},
		})
	})
	srv := newTestServer(t, r)

	got, err := newTestAdapter(t, srv.URL).UploadDocument(context.Background(), "notes.pdf", []byte("%PDF-1.4"))

	require.NoError(t, err)
	assert.Equal(t, "doc-42", got.DocID)
	assert.Equal(t, "notes.pdf", got.Metadata.Filename)
}

func TestUploadDocument_UnsupportedType(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/documents/upload", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]string{"detail": "Unsupported file type"})
	})
	srv := newTestServer(t, r)

	_, err := newTestAdapter(t, srv.URL).UploadDocument(context.Background(), "x.exe", []byte{1})

	detail, ok := DetailOf(err)
	assert.True(t, ok)
	assert.Equal(t, "Unsupported file type", detail)
}

func TestUploadDocument_MissingDocID(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/documents/upload", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"metadata": map[string]any{}})
	})
	srv := newTestServer(t, r)

	_, err := newTestAdapter(t, srv.URL).UploadDocument(context.Background(), "a.txt", []byte("a"))

	assert.ErrorIs(t, err, ErrParse)
}

// ── ExplainDocument ───────────────────────────────────────────────────────────

func TestExplainDocument_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/documents/{docID}/explain", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "doc-1", chi.URLParam(r, "docID"))
		writeJSON(t, w, http.StatusOK, models.ExplanationResult{Filename: "a.pdf", Explanation: "**summary**"})
	})
	srv := newTestServer(t, r)

	got, err := newTestAdapter(t, srv.URL).ExplainDocument(context.Background(), "doc-1")

	require.NoError(t, err)
	assert.Equal(t, "a.pdf", got.Filename)
	assert.Equal(t, "**summary**", got.Explanation)
}

func TestExplainDocument_NotFound(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/documents/{docID}/explain", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]string{"detail": "Document not found"})
	})
	srv := newTestServer(t, r)

	_, err := newTestAdapter(t, srv.URL).ExplainDocument(context.Background(), "gone")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, ErrBackend)
}

// ── DeleteDocument ────────────────────────────────────────────────────────────

func TestDeleteDocument_Success(t *testing.T) {
	var called atomic.Bool
	r := chi.NewRouter()
	r.Delete("/documents/{docID}", func(w http.ResponseWriter, r *http.Request) {
		called.Store(true)
		assert.Equal(t, "doc-7", chi.URLParam(r, "docID"))
		writeJSON(t, w, http.StatusOK, map[string]string{"message": "Document deleted successfully"})
	})
	srv := newTestServer(t, r)

	err := newTestAdapter(t, srv.URL).DeleteDocument(context.Background(), "doc-7")

	require.NoError(t, err)
	assert.True(t, called.Load())
}

func TestDeleteDocument_EscapesID(t *testing.T) {
	r := chi.NewRouter()
	r.Delete("/documents/{docID}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/documents/a%2Fb", r.URL.EscapedPath())
		w.WriteHeader(http.StatusNoContent)
	})
	srv := newTestServer(t, r)

	err := newTestAdapter(t, srv.URL).DeleteDocument(context.Background(), "a/b")

	require.NoError(t, err)
}

func TestDeleteDocument_NotFound(t *testing.T) {
	r := chi.NewRouter()
	srv := newTestServer(t, r)

	err := newTestAdapter(t, srv.URL).DeleteDocument(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

// ── ExportConversation ────────────────────────────────────────────────────────

func TestExportConversation_ReturnsBytes(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/chat/{conversationID}/export", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "c-1", chi.URLParam(r, "conversationID"))
		w.Header().Set("Content-Type", "text/markdown")
		_, _ = w.Write([]byte("# Conversation\n\nhello"))
	})
	srv := newTestServer(t, r)

	got, err := newTestAdapter(t, srv.URL).ExportConversation(context.Background(), "c-1")

	require.NoError(t, err)
	assert.Equal(t, "# Conversation\n\nhello", string(got))
}

func TestExportConversation_BackendError(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/chat/{conversationID}/export", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := newTestServer(t, r)

	got, err := newTestAdapter(t, srv.URL).ExportConversation(context.Background(), "c-1")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrBackend)
}
