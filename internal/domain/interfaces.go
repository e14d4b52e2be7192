package domain

// Extractor defines the strategy interface for per-format text extraction.
// Implementations read the file at path and return trimmed text; an empty
// result is replaced with a format-specific placeholder, never returned as "".
type Extractor interface {
	Extract(path string) (string, error)
}

// Reporter defines the interface for streaming progress to the caller.
// Every method must leave its message fully written and flushed before
// returning, so a parent process can observe progress incrementally.
type Reporter interface {
	Progress(update ProgressUpdate) error
	Complete() error
	Fatal(err error) error
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetLogLevel() string
}
