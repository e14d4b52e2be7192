package extractor

import (
	"path/filepath"
	"strings"
	"testing"

	apperrors "doc-text-extractor/pkg/errors"
)

func TestPDFExtractor_MissingFile(t *testing.T) {
	_, err := NewPDFExtractor(NewMockExtractorLogger()).Extract(filepath.Join(t.TempDir(), "nope.pdf"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.HasPrefix(err.Error(), "PDF error:") {
		t.Errorf("expected PDF error prefix, got %q", err.Error())
	}
}

func TestPDFExtractor_CorruptFile(t *testing.T) {
	path := writeFile(t, "garbage.pdf", []byte("this is not a pdf"))

	_, err := NewPDFExtractor(NewMockExtractorLogger()).Extract(path)
	if err == nil {
		t.Fatal("expected error for corrupt PDF")
	}
	if !strings.HasPrefix(err.Error(), "PDF error:") {
		t.Errorf("expected PDF error prefix, got %q", err.Error())
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeExtraction) {
		t.Errorf("expected extraction error type")
	}
	if apperrors.IsFatal(err) {
		t.Errorf("a corrupt PDF must be a per-file error, not fatal")
	}
}
