package mock

import (
	"context"

	"github.com/ponchorolls/rfcli"
)

var _ rfcli.IndexService = (*IndexService)(nil)

// IndexService is a mock implementation of rfcli.IndexService.
type IndexService struct {
	IndexFn func(ctx context.Context, forceRefresh bool) (string, error)
}

func (s *IndexService) Index(ctx context.Context, forceRefresh bool) (string, error) {
	return s.IndexFn(ctx, forceRefresh)
}
