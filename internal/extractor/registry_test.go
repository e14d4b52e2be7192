package extractor

import (
	"strings"
	"testing"

	"doc-text-extractor/internal/domain"
	apperrors "doc-text-extractor/pkg/errors"
)

// stubExtractor returns a fixed result regardless of path
type stubExtractor struct {
	text string
}

func (s *stubExtractor) Extract(path string) (string, error) {
	return s.text, nil
}

func TestRegistry_DispatchesByExtension(t *testing.T) {
	reg := NewRegistry()
	reg.Register(".txt", &stubExtractor{text: "plain"})
	reg.Register(".md", &stubExtractor{text: "markdown"})

	text, err := reg.Extract(domain.FileDescriptor{Path: "notes.md", Name: "notes"})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if text != "markdown" {
		t.Fatalf("expected markdown strategy, got %q", text)
	}
}

func TestRegistry_ExtensionIsCaseInsensitive(t *testing.T) {
	reg := NewRegistry()
	reg.Register(".txt", &stubExtractor{text: "plain"})

	text, err := reg.Extract(domain.FileDescriptor{Path: "REPORT.TXT", Name: "report"})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if text != "plain" {
		t.Fatalf("expected case-insensitive match, got %q", text)
	}
}

func TestRegistry_UnsupportedExtensionNamesIt(t *testing.T) {
	reg := NewRegistry()
	reg.Register(".txt", &stubExtractor{text: "plain"})

	_, err := reg.Extract(domain.FileDescriptor{Path: "letter.docx", Name: "letter"})
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if !strings.Contains(err.Error(), ".docx") {
		t.Errorf("expected error to name .docx, got %q", err.Error())
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeUnsupportedFormat) {
		t.Errorf("expected unsupported_format error type")
	}
	if apperrors.IsFatal(err) {
		t.Errorf("unsupported extension must be a per-file error, not fatal")
	}
}

func TestRegistry_NoExtension(t *testing.T) {
	reg := NewRegistry()
	reg.Register(".txt", &stubExtractor{text: "plain"})

	_, err := reg.Extract(domain.FileDescriptor{Path: "Makefile", Name: "Makefile"})
	if err == nil {
		t.Fatal("expected error for file without extension")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeUnsupportedFormat) {
		t.Errorf("expected unsupported_format error type")
	}
}
