package reader

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ponchorolls/rfcli"
)

// DefaultRetryDelay is the pause after a failed step before selecting again.
const DefaultRetryDelay = 2 * time.Second

// Session runs the select, fetch and display loop until the user aborts
// the selector or the context is cancelled.
type Session struct {
	Selector  *Selector
	Documents rfcli.DocumentService
	Pager     rfcli.Pager

	// Stdout receives progress messages, Stderr receives failures.
	Stdout io.Writer
	Stderr io.Writer

	// RetryDelay is the pause after a failure. Zero means no pause.
	RetryDelay time.Duration
}

// Run starts the loop. The refresh flag and query apply only to the
// first selection. It returns nil when the user aborts the selector and
// ctx.Err() when the context is cancelled; per-RFC failures are printed
// and the loop continues.
func (s *Session) Run(ctx context.Context, forceRefresh bool, query string) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		sel, err := s.Selector.Select(ctx, forceRefresh, query)
		forceRefresh, query = false, ""
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if err := s.fail(ctx, err); err != nil {
				return err
			}
			continue
		}

		switch sel.Kind {
		case rfcli.SelectionCancelled:
			fmt.Fprintln(s.Stdout, "Exiting rfcli...")
			return nil
		case rfcli.SelectionNone:
			continue
		}

		if err := s.show(ctx, sel.Number); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if err := s.fail(ctx, err); err != nil {
				return err
			}
		}
	}
}

// show fetches, normalizes and pages one RFC.
func (s *Session) show(ctx context.Context, number int) error {
	fmt.Fprintf(s.Stdout, "Fetching RFC %d...\n", number)

	raw, err := s.Documents.Document(ctx, number)
	if err != nil {
		return err
	}

	return s.Pager.Page(ctx, rfcli.Normalize(raw))
}

// fail reports err and waits RetryDelay. It returns ctx.Err() if the
// context ends during the pause.
func (s *Session) fail(ctx context.Context, err error) error {
	fmt.Fprintf(s.Stderr, "Error: %s\n", rfcli.ErrorMessage(err))

	if s.RetryDelay <= 0 {
		return nil
	}
	t := time.NewTimer(s.RetryDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
