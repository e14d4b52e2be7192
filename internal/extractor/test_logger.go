package extractor

import "doc-text-extractor/internal/domain"

// Mock logger used by extractor package tests.
type MockExtractorLogger struct{}

func NewMockExtractorLogger() domain.Logger {
	return &MockExtractorLogger{}
}

func (l *MockExtractorLogger) Info(msg string, fields ...interface{})             {}
func (l *MockExtractorLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *MockExtractorLogger) Debug(msg string, fields ...interface{})            {}
func (l *MockExtractorLogger) Warn(msg string, fields ...interface{})             {}
