// Package reader orchestrates interactive RFC reading: choosing an RFC
// from the index, fetching and displaying it, and producing summaries.
package reader

import (
	"context"

	"github.com/ponchorolls/rfcli"
)

// Selector lets the user choose one RFC from the index.
type Selector struct {
	Index  rfcli.IndexService
	Picker rfcli.Picker
}

// Select loads the index and asks the picker for one entry.
// An aborted picker is SelectionCancelled, a pick without a leading RFC
// number is SelectionNone. Failures to load the index or run the picker
// are returned as errors.
func (s *Selector) Select(ctx context.Context, forceRefresh bool, query string) (rfcli.Selection, error) {
	text, err := s.Index.Index(ctx, forceRefresh)
	if err != nil {
		return rfcli.NoSelection(), err
	}

	pick, err := s.Picker.Pick(ctx, rfcli.Candidates(text), query)
	if err != nil {
		return rfcli.NoSelection(), err
	}
	if pick.Aborted {
		return rfcli.Cancelled(), nil
	}

	n, ok := rfcli.ParseNumber(pick.Line)
	if !ok {
		return rfcli.NoSelection(), nil
	}
	return rfcli.Chosen(n), nil
}
