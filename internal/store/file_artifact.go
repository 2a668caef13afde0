package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/dravis-client/internal/logger"
)

// fileArtifactWriter is the filesystem implementation of [ArtifactWriter].
// Files are written to a temporary sibling first and renamed into place, so
// a failed write never leaves a partial artifact behind.
type fileArtifactWriter struct {
	dir    string
	logger *logger.Logger
}

// NewFileArtifactWriter returns an [ArtifactWriter] rooted at dir. The
// directory is created on first write.
func NewFileArtifactWriter(dir string, logger *logger.Logger) ArtifactWriter {
	return &fileArtifactWriter{dir: dir, logger: logger}
}

func (f *fileArtifactWriter) WriteArtifact(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidArtifactName, name)
	}

	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingArtifact, err)
	}

	tmp, err := os.CreateTemp(f.dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingArtifact, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("%w: %w", ErrWritingArtifact, err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("%w: %w", ErrWritingArtifact, err)
	}

	path := filepath.Join(f.dir, name)
	if err = os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("%w: %w", ErrWritingArtifact, err)
	}

	f.logger.Debug().
		Str("func", "fileArtifactWriter.WriteArtifact").
		Str("path", path).
		Int("bytes", len(data)).
		Msg("artifact written")

	return path, nil
}
