package reporter

import (
	"bufio"
	"encoding/json"
	"io"

	"doc-text-extractor/internal/domain"
)

// JSONReporter writes one JSON object per line and flushes after every
// message, so a parent process reading the stream incrementally sees each
// file's outcome as soon as it is known.
type JSONReporter struct {
	w   *bufio.Writer
	enc *json.Encoder
}

// NewJSONReporter creates a reporter writing newline-delimited JSON to out
func NewJSONReporter(out io.Writer) *JSONReporter {
	w := bufio.NewWriter(out)
	return &JSONReporter{
		w:   w,
		enc: json.NewEncoder(w),
	}
}

// Progress emits one per-file status line
func (r *JSONReporter) Progress(update domain.ProgressUpdate) error {
	return r.emit(update)
}

// Complete emits the final marker of a successful run
func (r *JSONReporter) Complete() error {
	return r.emit(domain.CompleteMessage{Type: domain.MessageTypeComplete})
}

// Fatal emits the single whole-run failure line
func (r *JSONReporter) Fatal(err error) error {
	return r.emit(domain.FatalMessage{Type: domain.MessageTypeError, Error: err.Error()})
}

func (r *JSONReporter) emit(msg interface{}) error {
	if err := r.enc.Encode(msg); err != nil {
		return err
	}
	return r.w.Flush()
}
