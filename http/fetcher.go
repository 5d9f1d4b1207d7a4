// Package http provides an HTTP-based implementation of rfcli.Fetcher
// for retrieving RFC documents and the RFC index from the RFC host.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/ponchorolls/rfcli"
	"golang.org/x/time/rate"
)

// DefaultUserAgent identifies the client to the RFC host.
const DefaultUserAgent = "rfcli/1.0 (+https://github.com/ponchorolls/rfcli)"

// Ensure Fetcher implements rfcli.Fetcher at compile time.
var _ rfcli.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves plain-text content from URLs using HTTP requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	limiter   *rate.Limiter
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// The default of zero leaves requests bounded only by the context.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit limits requests to rps per second with a burst of 1.
// A non-positive rps disables limiting.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps <= 0 {
			f.limiter = nil
			return
		}
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithClient replaces the underlying HTTP client. A WithTimeout option
// still applies and overrides the client's Timeout.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	switch {
	case f.client == nil:
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	case f.timeout > 0:
		// Copy so the caller's client keeps its own timeout.
		c := *f.client
		c.Timeout = f.timeout
		f.client = &c
	}

	return f
}

// Fetch retrieves the body of the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", rfcli.WrapError(rfcli.EUNAVAILABLE, err, "fetch %s", url)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", rfcli.WrapError(rfcli.EINVALID, err, "build request for %s", url)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", rfcli.WrapError(rfcli.EUNAVAILABLE, err, "fetch %s", url)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", rfcli.Errorf(rfcli.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	case resp.StatusCode != http.StatusOK:
		return "", rfcli.Errorf(rfcli.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", rfcli.WrapError(rfcli.EUNAVAILABLE, err, "read body of %s", url)
	}

	return string(body), nil
}

// Close releases idle connections held by the client.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
