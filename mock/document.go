package mock

import (
	"context"

	"github.com/ponchorolls/rfcli"
)

var _ rfcli.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of rfcli.DocumentService.
type DocumentService struct {
	DocumentFn func(ctx context.Context, number int) (string, error)
}

func (s *DocumentService) Document(ctx context.Context, number int) (string, error) {
	return s.DocumentFn(ctx, number)
}
