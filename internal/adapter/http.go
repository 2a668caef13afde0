package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/dravis-client/internal/config"
	"github.com/MKhiriev/dravis-client/internal/logger"
	"github.com/MKhiriev/dravis-client/internal/utils"
	"github.com/MKhiriev/dravis-client/models"
	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries a per-request UUIDv7 for backend log correlation.
const RequestIDHeader = "X-Request-ID"

type httpBackendAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs an HTTP/REST implementation of
// [BackendAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout. Every outgoing request is stamped
// with a fresh [RequestIDHeader].
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPBackendAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (BackendAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	h := &httpBackendAdapter{
		client: client,
		ids:    utils.NewUUIDGenerator(),
		logger: logger.WithComponent("backend_adapter"),
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		OnBeforeRequest(h.stampRequestID)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBackendAdapter) stampRequestID(_ *resty.Client, r *resty.Request) error {
	id := h.ids.Generate()
	r.SetHeader(RequestIDHeader, id)
	h.logger.Debug().
		Str("func", "httpBackendAdapter.stampRequestID").
		Str("request_id", id).
		Str("method", r.Method).
		Str("url", r.URL).
		Msg("backend request")
	return nil
}

// Probe implements [BackendAdapter]. It issues GET / and decodes the backend
// description.
func (h *httpBackendAdapter) Probe(ctx context.Context) (models.BackendInfo, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get("/")
	if err != nil {
		return models.BackendInfo{}, mapTransportError("probe request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BackendInfo{}, err
	}

	var info models.BackendInfo
	if err = decodeBody("decode probe response", resp, &info); err != nil {
		return models.BackendInfo{}, err
	}
	return info, nil
}

// Chat implements [BackendAdapter]. It POSTs the message envelope to /chat.
// A nil ConversationID is serialised as JSON null.
func (h *httpBackendAdapter) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/chat")
	if err != nil {
		return models.ChatResponse{}, mapTransportError("chat request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChatResponse{}, err
	}

	var cr models.ChatResponse
	if err = decodeBody("decode chat response", resp, &cr); err != nil {
		return models.ChatResponse{}, err
	}
	return cr, nil
}

// ListDocuments implements [BackendAdapter]. It GETs /documents.
func (h *httpBackendAdapter) ListDocuments(ctx context.Context) ([]models.DocumentEntry, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get("/documents")
	if err != nil {
		return nil, mapTransportError("list documents request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var lr models.DocumentListResponse
	if err = decodeBody("decode document list", resp, &lr); err != nil {
		return nil, err
	}
	return lr.Documents, nil
}

// UploadDocument implements [BackendAdapter]. The content is sent as the
// multipart form field "file" with filename as the part's file name.
func (h *httpBackendAdapter) UploadDocument(ctx context.Context, filename string, content []byte) (models.UploadResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFileReader("file", filename, bytes.NewReader(content)).
		Post("/documents/upload")
	if err != nil {
		return models.UploadResponse{}, mapTransportError("upload document request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResponse{}, err
	}

	var ur models.UploadResponse
	if err = decodeBody("decode upload response", resp, &ur); err != nil {
		return models.UploadResponse{}, err
	}
	if ur.DocID == "" {
		return models.UploadResponse{}, fmt.Errorf("decode upload response: %w: empty doc_id", ErrParse)
	}
	return ur, nil
}

// ExplainDocument implements [BackendAdapter]. It GETs
// /documents/{doc_id}/explain with docID path-escaped.
func (h *httpBackendAdapter) ExplainDocument(ctx context.Context, docID string) (models.ExplanationResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetPathParam("docID", docID).
		Get("/documents/{docID}/explain")
	if err != nil {
		return models.ExplanationResult{}, mapTransportError("explain document request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ExplanationResult{}, err
	}

	var er models.ExplanationResult
	if err = decodeBody("decode explanation", resp, &er); err != nil {
		return models.ExplanationResult{}, err
	}
	return er, nil
}

// DeleteDocument implements [BackendAdapter]. It sends DELETE
// /documents/{doc_id}; the response body is ignored on success.
func (h *httpBackendAdapter) DeleteDocument(ctx context.Context, docID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("docID", docID).
		Delete("/documents/{docID}")
	if err != nil {
		return mapTransportError("delete document request", err)
	}
	return mapHTTPError(resp)
}

// ExportConversation implements [BackendAdapter]. It POSTs to
// /chat/{conversation_id}/export and returns the body bytes untouched.
func (h *httpBackendAdapter) ExportConversation(ctx context.Context, conversationID string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("conversationID", conversationID).
		Post("/chat/{conversationID}/export")
	if err != nil {
		return nil, mapTransportError("export conversation request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}
