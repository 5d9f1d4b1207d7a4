package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ponchorolls/rfcli"
)

// Ensure LoggingDocumentService implements rfcli.DocumentService.
var _ rfcli.DocumentService = (*LoggingDocumentService)(nil)

// LoggingDocumentService wraps a DocumentService with logging.
type LoggingDocumentService struct {
	next   rfcli.DocumentService
	logger *slog.Logger
}

// NewLoggingDocumentService creates a new LoggingDocumentService.
func NewLoggingDocumentService(next rfcli.DocumentService, logger *slog.Logger) *LoggingDocumentService {
	return &LoggingDocumentService{next: next, logger: logger}
}

// Document delegates to the wrapped service and logs the lookup.
func (s *LoggingDocumentService) Document(ctx context.Context, number int) (text string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("document",
			"rfc", number,
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Document(ctx, number)
}

// Ensure LoggingIndexService implements rfcli.IndexService.
var _ rfcli.IndexService = (*LoggingIndexService)(nil)

// LoggingIndexService wraps an IndexService with logging.
type LoggingIndexService struct {
	next   rfcli.IndexService
	logger *slog.Logger
}

// NewLoggingIndexService creates a new LoggingIndexService.
func NewLoggingIndexService(next rfcli.IndexService, logger *slog.Logger) *LoggingIndexService {
	return &LoggingIndexService{next: next, logger: logger}
}

// Index delegates to the wrapped service and logs the load.
func (s *LoggingIndexService) Index(ctx context.Context, forceRefresh bool) (text string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("index",
			"refresh", forceRefresh,
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Index(ctx, forceRefresh)
}
