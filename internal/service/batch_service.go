package service

import (
	"doc-text-extractor/internal/domain"
)

// Dispatcher selects and runs the extraction strategy for one descriptor
type Dispatcher interface {
	Extract(fd domain.FileDescriptor) (string, error)
}

// BatchService processes the files of one request strictly in order.
// A failing file is reported and skipped; only input-level failures, handled
// before Run is called, abort the batch.
type BatchService struct {
	dispatcher Dispatcher
	reporter   domain.Reporter
	logger     domain.Logger
}

// NewBatchService creates a new batch service
func NewBatchService(dispatcher Dispatcher, reporter domain.Reporter, logger domain.Logger) *BatchService {
	return &BatchService{
		dispatcher: dispatcher,
		reporter:   reporter,
		logger:     logger,
	}
}

// Run processes every descriptor, emitting exactly one progress message per
// file in input order and one completion marker afterwards. The returned
// error is only ever a reporter write failure.
func (s *BatchService) Run(req domain.BatchRequest) error {
	total := len(req.Files)
	failed := 0

	for i, fd := range req.Files {
		s.logger.Debug("Processing file", "name", fd.Name, "path", fd.Path, "current", i+1, "total", total)

		text, err := s.dispatcher.Extract(fd)
		if err != nil {
			failed++
			s.logger.Warn("File failed", "name", fd.Name, "error", err)
			if rerr := s.reporter.Progress(domain.NewErrorUpdate(fd.Name, err, i+1, total)); rerr != nil {
				return rerr
			}
			continue
		}

		if rerr := s.reporter.Progress(domain.NewSuccessUpdate(fd.Name, text, i+1, total)); rerr != nil {
			return rerr
		}
	}

	s.logger.Info("Batch finished", "total", total, "failed", failed)
	return s.reporter.Complete()
}
