package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/dravis-client/internal/adapter"
	"github.com/MKhiriev/dravis-client/internal/logger"
	"github.com/MKhiriev/dravis-client/internal/store"
)

var unsafeFileNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

type exportService struct {
	backend   adapter.BackendAdapter
	artifacts store.ArtifactWriter
	logger    *logger.Logger
}

// NewExportService returns an [ExportService] delivering transcripts through
// artifacts.
func NewExportService(backend adapter.BackendAdapter, artifacts store.ArtifactWriter, logger *logger.Logger) ExportService {
	return &exportService{
		backend:   backend,
		artifacts: artifacts,
		logger:    logger.WithComponent("export"),
	}
}

func (e *exportService) Export(ctx context.Context, conversationID string) (string, error) {
	if strings.TrimSpace(conversationID) == "" {
		return "", ErrNoConversation
	}

	data, err := e.backend.ExportConversation(ctx, conversationID)
	if err != nil {
		e.logger.Err(err).
			Str("func", "exportService.Export").
			Str("conversation_id", conversationID).
			Msg("export request failed")
		return "", fmt.Errorf("export conversation: %w", err)
	}

	path, err := e.artifacts.WriteArtifact(ctx, ExportFileName(conversationID), data)
	if err != nil {
		e.logger.Err(err).
			Str("func", "exportService.Export").
			Str("conversation_id", conversationID).
			Msg("failed to deliver transcript")
		return "", fmt.Errorf("deliver transcript: %w", err)
	}

	e.logger.Info().
		Str("func", "exportService.Export").
		Str("path", path).
		Msg("transcript exported")
	return path, nil
}

// ExportFileName returns the file name a transcript of conversationID is
// delivered under. Characters outside [A-Za-z0-9._-] are replaced with "_".
func ExportFileName(conversationID string) string {
	return "conversation_" + unsafeFileNameChars.ReplaceAllString(conversationID, "_") + ".md"
}
