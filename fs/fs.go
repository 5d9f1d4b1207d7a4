// Package fs provides file-based caches for RFC documents and the RFC index.
package fs

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ponchorolls/rfcli"
)

// config holds settings shared by the caches.
type config struct {
	baseURL string
	logger  *slog.Logger
}

func newConfig(opts []Option) config {
	cfg := config{
		baseURL: rfcli.DefaultBaseURL,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures a DocumentCache or an IndexCache.
type Option func(*config)

// WithBaseURL sets the RFC host content is fetched from.
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithLogger sets the logger used to report cache write failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// writeFileAtomic writes data to a temporary file in the destination
// directory and renames it into place, so readers never observe a
// partially written file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Chmod(tmpPath, 0644); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	return nil
}
