package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ponchorolls/rfcli"
)

// Ensure LoggingPager implements rfcli.Pager.
var _ rfcli.Pager = (*LoggingPager)(nil)

// LoggingPager wraps a Pager with logging.
type LoggingPager struct {
	next   rfcli.Pager
	logger *slog.Logger
}

// NewLoggingPager creates a new LoggingPager.
func NewLoggingPager(next rfcli.Pager, logger *slog.Logger) *LoggingPager {
	return &LoggingPager{next: next, logger: logger}
}

// Page delegates to the wrapped pager and logs how long it was open.
func (p *LoggingPager) Page(ctx context.Context, text string) (err error) {
	defer func(begin time.Time) {
		p.logger.Info("page",
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Page(ctx, text)
}

// Ensure LoggingSummaryBackend implements rfcli.SummaryBackend.
var _ rfcli.SummaryBackend = (*LoggingSummaryBackend)(nil)

// LoggingSummaryBackend wraps a SummaryBackend with logging.
type LoggingSummaryBackend struct {
	next   rfcli.SummaryBackend
	logger *slog.Logger
}

// NewLoggingSummaryBackend creates a new LoggingSummaryBackend.
func NewLoggingSummaryBackend(next rfcli.SummaryBackend, logger *slog.Logger) *LoggingSummaryBackend {
	return &LoggingSummaryBackend{next: next, logger: logger}
}

// Name returns the wrapped backend's name.
func (b *LoggingSummaryBackend) Name() string {
	return b.next.Name()
}

// Summarize delegates to the wrapped backend and logs the call. The raw
// response of a malformed reply is logged at debug level.
func (b *LoggingSummaryBackend) Summarize(ctx context.Context, req rfcli.SummaryRequest) (summary string, err error) {
	defer func(begin time.Time) {
		b.logger.Info("summarize",
			"backend", b.next.Name(),
			"model", req.Model,
			"rfc", req.Number,
			"prompt_bytes", len(req.Prompt),
			"bytes", len(summary),
			"duration", time.Since(begin),
			"err", err,
		)
		if detail := rfcli.ErrorDetail(err); detail != "" {
			b.logger.Debug("summarize response", "body", detail)
		}
	}(time.Now())
	return b.next.Summarize(ctx, req)
}
