package reader

import (
	"context"

	"github.com/ponchorolls/rfcli"
)

// Summarizer turns a normalized RFC into a short summary.
type Summarizer struct {
	Backend rfcli.SummaryBackend
	Model   string

	// Options bounds the excerpt sent to the backend.
	// The zero value uses rfcli.DefaultExcerptOptions.
	Options rfcli.ExcerptOptions
}

// Request builds the summary request for a normalized document.
func (s *Summarizer) Request(number int, text string) rfcli.SummaryRequest {
	opts := s.Options
	if opts == (rfcli.ExcerptOptions{}) {
		opts = rfcli.DefaultExcerptOptions()
	}

	return rfcli.SummaryRequest{
		Number: number,
		Model:  s.Model,
		System: rfcli.SummarySystemPrompt,
		Prompt: rfcli.BuildSummaryPrompt(number, rfcli.ExtractExcerpt(text, opts)),
	}
}

// Summarize makes a single backend call for the RFC. Errors from the
// backend are returned unchanged.
func (s *Summarizer) Summarize(ctx context.Context, number int, text string) (string, error) {
	if number <= 0 {
		return "", rfcli.Errorf(rfcli.EINVALID, "invalid RFC number %d", number)
	}
	return s.Backend.Summarize(ctx, s.Request(number, text))
}
