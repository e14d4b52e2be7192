package domain

// FileStatus represents the outcome of processing one file
type FileStatus string

const (
	FileStatusSuccess FileStatus = "success"
	FileStatusError   FileStatus = "error"
)

// Message type discriminators used on the output stream
const (
	MessageTypeProgress = "progress"
	MessageTypeComplete = "complete"
	MessageTypeError    = "error"
)

// Placeholder text returned when a file extracts to nothing.
// Distinguishes "processed, empty" from an unprocessed state downstream.
const (
	PlaceholderEmptyPDF      = "[PDF extracted but empty]"
	PlaceholderEmptyText     = "[Empty file]"
	PlaceholderEmptyMarkdown = "[Empty markdown]"
)

// FileDescriptor identifies one file to process
type FileDescriptor struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

// BatchRequest is the single JSON document read from standard input
type BatchRequest struct {
	Files []FileDescriptor `json:"files"`
}

// ProgressUpdate is emitted once per processed file, success or failure
type ProgressUpdate struct {
	Type     string     `json:"type"`
	FileName string     `json:"fileName"`
	Status   FileStatus `json:"status"`
	Current  int        `json:"current"`
	Total    int        `json:"total"`
	Text     string     `json:"text,omitempty"`
	Error    string     `json:"error,omitempty"`
}

// CompleteMessage marks the end of a successful run
type CompleteMessage struct {
	Type string `json:"type"`
}

// FatalMessage reports a whole-run failure; no further messages follow it
type FatalMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// NewSuccessUpdate builds the progress message for a successfully extracted file
func NewSuccessUpdate(name, text string, current, total int) ProgressUpdate {
	return ProgressUpdate{
		Type:     MessageTypeProgress,
		FileName: name,
		Status:   FileStatusSuccess,
		Current:  current,
		Total:    total,
		Text:     text,
	}
}

// NewErrorUpdate builds the progress message for a file that failed to extract
func NewErrorUpdate(name string, err error, current, total int) ProgressUpdate {
	return ProgressUpdate{
		Type:     MessageTypeProgress,
		FileName: name,
		Status:   FileStatusError,
		Current:  current,
		Total:    total,
		Error:    err.Error(),
	}
}
