package mock

import (
	"context"

	"github.com/ponchorolls/rfcli"
)

var _ rfcli.SummaryBackend = (*SummaryBackend)(nil)

// SummaryBackend is a mock implementation of rfcli.SummaryBackend.
type SummaryBackend struct {
	SummarizeFn func(ctx context.Context, req rfcli.SummaryRequest) (string, error)
	NameFn      func() string
}

func (b *SummaryBackend) Summarize(ctx context.Context, req rfcli.SummaryRequest) (string, error) {
	return b.SummarizeFn(ctx, req)
}

func (b *SummaryBackend) Name() string {
	if b.NameFn == nil {
		return "mock"
	}
	return b.NameFn()
}
