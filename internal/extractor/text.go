package extractor

import (
	"os"
	"strings"

	"doc-text-extractor/internal/domain"
	apperrors "doc-text-extractor/pkg/errors"
)

// PlainTextExtractor handles formats that are read verbatim (.txt, .md).
// The two differ only in their error label and empty-file placeholder.
type PlainTextExtractor struct {
	format      string
	placeholder string
	logger      domain.Logger
}

// NewTextExtractor creates the extractor for plain-text files
func NewTextExtractor(logger domain.Logger) *PlainTextExtractor {
	return &PlainTextExtractor{
		format:      "Text",
		placeholder: domain.PlaceholderEmptyText,
		logger:      logger,
	}
}

// NewMarkdownExtractor creates the extractor for Markdown files
func NewMarkdownExtractor(logger domain.Logger) *PlainTextExtractor {
	return &PlainTextExtractor{
		format:      "Markdown",
		placeholder: domain.PlaceholderEmptyMarkdown,
		logger:      logger,
	}
}

// Extract reads the whole file, drops invalid UTF-8 sequences and trims
// surrounding whitespace. A file that trims to nothing yields the
// format-specific placeholder instead of an empty string.
func (e *PlainTextExtractor) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", apperrors.NewExtractionError(e.format, err)
	}

	content := strings.TrimSpace(strings.ToValidUTF8(string(data), ""))
	if content == "" {
		e.logger.Debug("File extracted but empty", "path", path, "format", e.format)
		return e.placeholder, nil
	}
	return content, nil
}
