package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ponchorolls/rfcli"
	rfchttp "github.com/ponchorolls/rfcli/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rfc/rfc791.txt", r.URL.Path)
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write([]byte("INTERNET PROTOCOL"))
		}))
		defer server.Close()

		fetcher := rfchttp.NewFetcher()
		defer fetcher.Close()

		body, err := fetcher.Fetch(context.Background(), rfcli.DocumentURL(server.URL, 791))
		require.NoError(t, err)
		assert.Equal(t, "INTERNET PROTOCOL", body)
	})

	t.Run("sends user agent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(r.UserAgent()))
		}))
		defer server.Close()

		fetcher := rfchttp.NewFetcher(rfchttp.WithUserAgent("rfcli-test"))
		defer fetcher.Close()

		body, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "rfcli-test", body)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := rfchttp.NewFetcher(rfchttp.WithTimeout(10 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, rfcli.EUNAVAILABLE, rfcli.ErrorCode(err))
	})

	t.Run("applies timeout to injected client", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		client := server.Client()
		fetcher := rfchttp.NewFetcher(rfchttp.WithClient(client), rfchttp.WithTimeout(10*time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, rfcli.EUNAVAILABLE, rfcli.ErrorCode(err))
		assert.Zero(t, client.Timeout)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := rfchttp.NewFetcher()
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("returns unavailable for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := rfchttp.NewFetcher(rfchttp.WithTimeout(100 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/rfc/rfc1.txt")
		require.Error(t, err)
		assert.Equal(t, rfcli.EUNAVAILABLE, rfcli.ErrorCode(err))
	})

	t.Run("returns not found for 404", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("404 Not Found"))
		}))
		defer server.Close()

		fetcher := rfchttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, rfcli.ENOTFOUND, rfcli.ErrorCode(err))
		assert.Contains(t, rfcli.ErrorMessage(err), "404")
	})

	t.Run("returns unavailable for server errors", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		fetcher := rfchttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, rfcli.EUNAVAILABLE, rfcli.ErrorCode(err))
		assert.Contains(t, rfcli.ErrorMessage(err), "503")
	})

	t.Run("rate limit waits between requests", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := rfchttp.NewFetcher(rfchttp.WithRateLimit(20))
		defer fetcher.Close()

		begin := time.Now()
		for range 3 {
			_, err := fetcher.Fetch(context.Background(), server.URL)
			require.NoError(t, err)
		}

		assert.Equal(t, int32(3), hits.Load())
		assert.GreaterOrEqual(t, time.Since(begin), 90*time.Millisecond)
	})

	t.Run("rate limit honors cancelled context", func(t *testing.T) {
		t.Parallel()

		fetcher := rfchttp.NewFetcher(rfchttp.WithRateLimit(0.001))
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fetcher.Fetch(ctx, "http://127.0.0.1:0/")
		require.Error(t, err)
		assert.Equal(t, rfcli.EUNAVAILABLE, rfcli.ErrorCode(err))
	})
}

// Compile-time verification that Fetcher implements rfcli.Fetcher
var _ rfcli.Fetcher = (*rfchttp.Fetcher)(nil)
