package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/MKhiriev/dravis-client/internal/adapter"
	"github.com/MKhiriev/dravis-client/internal/logger"
	"github.com/MKhiriev/dravis-client/internal/utils"
	"github.com/MKhiriev/dravis-client/models"
)

type documentRecord struct {
	metadata models.DocumentMetadata
	seq      uint64
}

type listedDocument struct {
	id string
	documentRecord
}

type documentStore struct {
	backend adapter.BackendAdapter
	lister  DocumentLister
	logger  *logger.Logger

	// docLocks serialises backend calls and registry mutations per doc id.
	docLocks *utils.KeyedMutex

	mu      sync.RWMutex
	entries map[string]documentRecord
	nextSeq uint64
	loaded  bool
}

// NewDocumentStore returns an empty [DocumentStore] whose startup contents
// come from lister.
func NewDocumentStore(backend adapter.BackendAdapter, lister DocumentLister, logger *logger.Logger) DocumentStore {
	return &documentStore{
		backend:  backend,
		lister:   lister,
		logger:   logger.WithComponent("documents"),
		docLocks: utils.NewKeyedMutex(),
		entries:  make(map[string]documentRecord),
	}
}

func (d *documentStore) Load(ctx context.Context) error {
	docs, err := d.lister.ListDocuments(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.loaded = true

	if err != nil {
		d.logger.Err(err).
			Str("func", "documentStore.Load").
			Msg("failed to list documents")
		return fmt.Errorf("load documents: %w", err)
	}

	for _, doc := range docs {
		if doc.DocID == "" {
			continue
		}
		if _, ok := d.entries[doc.DocID]; ok {
			continue
		}
		d.insertLocked(doc.DocID, doc.Metadata)
	}

	d.logger.Debug().
		Str("func", "documentStore.Load").
		Int("count", len(d.entries)).
		Msg("documents loaded")
	return nil
}

func (d *documentStore) Loaded() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.loaded
}

func (d *documentStore) List() []models.DocumentEntry {
	d.mu.RLock()
	records := make([]listedDocument, 0, len(d.entries))
	for id, rec := range d.entries {
		records = append(records, listedDocument{id: id, documentRecord: rec})
	}
	d.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool {
		ti, tj := records[i].metadata.UploadTime.Time, records[j].metadata.UploadTime.Time
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return records[i].seq < records[j].seq
	})

	out := make([]models.DocumentEntry, len(records))
	for i, rec := range records {
		out[i] = models.DocumentEntry{DocID: rec.id, Metadata: rec.metadata}
	}
	return out
}

func (d *documentStore) Upload(ctx context.Context, content []byte, filename string) (string, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return "", ErrEmptyFilename
	}

	resp, err := d.backend.UploadDocument(ctx, filename, content)
	if err != nil {
		d.logger.Err(err).
			Str("func", "documentStore.Upload").
			Str("filename", filename).
			Msg("upload failed")
		return "", fmt.Errorf("upload document: %w", err)
	}

	unlock := d.docLocks.Lock(resp.DocID)
	defer unlock()

	meta := resp.Metadata
	if meta.Filename == "" {
		meta.Filename = filename
	}

	d.mu.Lock()
	d.insertLocked(resp.DocID, meta)
	d.mu.Unlock()

	d.logger.Info().
		Str("func", "documentStore.Upload").
		Str("doc_id", resp.DocID).
		Str("filename", meta.Filename).
		Msg("document uploaded")
	return resp.DocID, nil
}

func (d *documentStore) Explain(ctx context.Context, docID string) (models.ExplanationResult, error) {
	unlock := d.docLocks.Lock(docID)
	defer unlock()

	if !d.has(docID) {
		return models.ExplanationResult{}, ErrDocumentNotFound
	}

	result, err := d.backend.ExplainDocument(ctx, docID)
	if err != nil {
		d.logger.Err(err).
			Str("func", "documentStore.Explain").
			Str("doc_id", docID).
			Msg("explain failed")
		return models.ExplanationResult{}, fmt.Errorf("explain document: %w", err)
	}
	return result, nil
}

func (d *documentStore) Delete(ctx context.Context, docID string, confirmed bool) error {
	if !confirmed {
		return ErrDeleteNotConfirmed
	}

	unlock := d.docLocks.Lock(docID)
	defer unlock()

	if !d.has(docID) {
		return ErrDocumentNotFound
	}

	err := d.backend.DeleteDocument(ctx, docID)
	switch {
	case err == nil:
	case errors.Is(err, adapter.ErrNotFound):
		d.logger.Warn().
			Str("func", "documentStore.Delete").
			Str("doc_id", docID).
			Msg("document already gone on the backend, removing locally")
	default:
		d.logger.Err(err).
			Str("func", "documentStore.Delete").
			Str("doc_id", docID).
			Msg("delete failed")
		return fmt.Errorf("delete document: %w", err)
	}

	d.mu.Lock()
	delete(d.entries, docID)
	d.mu.Unlock()
	return nil
}

func (d *documentStore) has(docID string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.entries[docID]
	return ok
}

// insertLocked adds or replaces an entry. d.mu must be held for writing.
func (d *documentStore) insertLocked(docID string, meta models.DocumentMetadata) {
	rec, ok := d.entries[docID]
	if !ok {
		rec.seq = d.nextSeq
		d.nextSeq++
	}
	rec.metadata = meta
	d.entries[docID] = rec
}

type emptyDocumentLister struct{}

// NewEmptyDocumentLister returns a [DocumentLister] that always reports an
// empty set.
func NewEmptyDocumentLister() DocumentLister {
	return emptyDocumentLister{}
}

func (emptyDocumentLister) ListDocuments(context.Context) ([]models.DocumentEntry, error) {
	return nil, nil
}

type remoteDocumentLister struct {
	backend adapter.BackendAdapter
}

// NewRemoteDocumentLister returns a [DocumentLister] backed by GET /documents.
func NewRemoteDocumentLister(backend adapter.BackendAdapter) DocumentLister {
	return &remoteDocumentLister{backend: backend}
}

func (r *remoteDocumentLister) ListDocuments(ctx context.Context) ([]models.DocumentEntry, error) {
	return r.backend.ListDocuments(ctx)
}
