package extractor

import (
	"path/filepath"
	"strings"

	"doc-text-extractor/internal/domain"
	apperrors "doc-text-extractor/pkg/errors"
)

// Registry maps normalized file extensions to extraction strategies.
// The extension is authoritative: file contents are never sniffed.
type Registry struct {
	extractors map[string]domain.Extractor
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		extractors: make(map[string]domain.Extractor),
	}
}

// Register binds an extractor to a file extension (".pdf", ".txt", ...).
// The extension is lowercased on registration and on lookup.
func (r *Registry) Register(ext string, e domain.Extractor) {
	r.extractors[strings.ToLower(ext)] = e
}

// Extract dispatches the descriptor's path to the strategy for its extension.
// An extension outside the registered set fails with an error naming it.
func (r *Registry) Extract(fd domain.FileDescriptor) (string, error) {
	ext := strings.ToLower(filepath.Ext(fd.Path))
	e, ok := r.extractors[ext]
	if !ok {
		return "", apperrors.NewUnsupportedFormatError(ext)
	}
	return e.Extract(fd.Path)
}
