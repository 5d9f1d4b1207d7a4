package mock

import (
	"context"

	"github.com/ponchorolls/rfcli"
)

var _ rfcli.Picker = (*Picker)(nil)

// Picker is a mock implementation of rfcli.Picker.
type Picker struct {
	PickFn func(ctx context.Context, candidates []string, query string) (rfcli.Pick, error)
}

func (p *Picker) Pick(ctx context.Context, candidates []string, query string) (rfcli.Pick, error) {
	return p.PickFn(ctx, candidates, query)
}

var _ rfcli.Pager = (*Pager)(nil)

// Pager is a mock implementation of rfcli.Pager.
type Pager struct {
	PageFn func(ctx context.Context, text string) error
}

func (p *Pager) Page(ctx context.Context, text string) error {
	return p.PageFn(ctx, text)
}
