package extractor

import (
	"os"
	"strings"

	"doc-text-extractor/internal/domain"
	apperrors "doc-text-extractor/pkg/errors"

	"github.com/gen2brain/go-fitz"
)

// PDFExtractor extracts text from PDF files via go-fitz. Parsing and layout
// analysis live entirely in the library; this type only concatenates pages.
type PDFExtractor struct {
	logger domain.Logger
}

// NewPDFExtractor creates a new PDF extractor
func NewPDFExtractor(logger domain.Logger) *PDFExtractor {
	return &PDFExtractor{
		logger: logger,
	}
}

// Extract opens the PDF and concatenates the text of every page in order.
// A page without text contributes nothing; any parser failure (corrupt,
// encrypted, truncated) fails the whole file.
func (e *PDFExtractor) Extract(path string) (string, error) {
	pdfBytes, err := os.ReadFile(path)
	if err != nil {
		return "", apperrors.NewExtractionError("PDF", err)
	}

	doc, err := fitz.NewFromMemory(pdfBytes)
	if err != nil {
		return "", apperrors.NewExtractionError("PDF", err)
	}
	defer doc.Close()

	var sb strings.Builder
	numPages := doc.NumPage()
	for pageNum := 0; pageNum < numPages; pageNum++ {
		e.logger.Debug("PDF processing page", "page", pageNum+1, "total", numPages)
		pageText, err := doc.Text(pageNum)
		if err != nil {
			return "", apperrors.NewExtractionError("PDF", err)
		}
		sb.WriteString(pageText)
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		e.logger.Debug("PDF extracted but empty", "path", path, "pages", numPages)
		return domain.PlaceholderEmptyPDF, nil
	}
	return text, nil
}
