package errors

import "fmt"

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeUnsupportedFormat ErrorType = "unsupported_format"
	ErrorTypeExtraction        ErrorType = "extraction"
	ErrorTypeInput             ErrorType = "input"
)

// AppError represents a structured application error.
// Message is the exact text surfaced on the output stream, so constructors
// own the wording; Type and Fatal exist for classification only.
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Fatal   bool      `json:"-"`
	Cause   error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewUnsupportedFormatError creates an error for a file extension outside the
// supported set. The message names the offending extension.
func NewUnsupportedFormatError(ext string) *AppError {
	return &AppError{
		Type:    ErrorTypeUnsupportedFormat,
		Message: fmt.Sprintf("Unsupported: %s", ext),
	}
}

// NewExtractionError creates a per-file extraction failure. The format label
// ("PDF", "Text", "Markdown") prefixes the message so parent processes can
// keep matching on it.
func NewExtractionError(format string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeExtraction,
		Message: fmt.Sprintf("%s error: %v", format, cause),
		Cause:   cause,
	}
}

// NewInputError creates a fatal whole-run failure (unreadable or malformed
// standard input).
func NewInputError(message string, cause error) *AppError {
	msg := message
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", message, cause)
	}
	return &AppError{
		Type:    ErrorTypeInput,
		Message: msg,
		Fatal:   true,
		Cause:   cause,
	}
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == errorType
	}
	return false
}

// IsFatal reports whether the error aborts the whole run rather than a
// single file.
func IsFatal(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Fatal
	}
	return false
}
