package main

import (
	"encoding/json"
	"io"
	"log"
	"os"

	"doc-text-extractor/internal/config"
	"doc-text-extractor/internal/domain"
	apperrors "doc-text-extractor/pkg/errors"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}
	// Wiring
	container := config.NewContainer()

	// The whole request arrives as one JSON document on stdin. Anything wrong
	// with it is fatal: one error line, non-zero exit, no completion marker.
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal(container, apperrors.NewInputError("failed to read standard input", err))
	}

	var req domain.BatchRequest
	if err := json.Unmarshal(data, &req); err != nil {
		fatal(container, apperrors.NewInputError("invalid input document", err))
	}

	if err := container.BatchService.Run(req); err != nil {
		// Output stream is gone; the error line would not arrive either.
		container.Logger.Error("Failed to write progress stream", err)
		os.Exit(1)
	}
}

func fatal(c *config.Container, err error) {
	c.Logger.Error("Run aborted", err)
	if rerr := c.Reporter.Fatal(err); rerr != nil {
		c.Logger.Error("Failed to write fatal message", rerr)
	}
	os.Exit(1)
}
