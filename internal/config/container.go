package config

import (
	"os"

	"doc-text-extractor/internal/domain"
	"doc-text-extractor/internal/extractor"
	"doc-text-extractor/internal/reporter"
	"doc-text-extractor/internal/service"
	"doc-text-extractor/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config       domain.Config
	Logger       domain.Logger
	Registry     *extractor.Registry
	Reporter     domain.Reporter
	BatchService *service.BatchService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	// Extraction strategies, keyed by extension
	registry := extractor.NewRegistry()
	registry.Register(".pdf", extractor.NewPDFExtractor(appLogger))
	registry.Register(".txt", extractor.NewTextExtractor(appLogger))
	registry.Register(".md", extractor.NewMarkdownExtractor(appLogger))

	jsonReporter := reporter.NewJSONReporter(os.Stdout)
	batchService := service.NewBatchService(registry, jsonReporter, appLogger)

	return &Container{
		Config:       config,
		Logger:       appLogger,
		Registry:     registry,
		Reporter:     jsonReporter,
		BatchService: batchService,
	}
}
