package rfcli

import "context"

// Fetcher retrieves plain-text resources from the RFC host.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body.
	// Returns ENOTFOUND for a missing resource and EUNAVAILABLE for
	// transport failures or other non-success statuses.
	// The context controls cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases transport resources.
	Close() error
}
