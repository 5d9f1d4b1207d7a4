package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/ponchorolls/rfcli"
)

// Ensure DocumentCache implements rfcli.DocumentService at compile time.
var _ rfcli.DocumentService = (*DocumentCache)(nil)

// DocumentCache is a read-through cache of RFC documents on disk.
// Entries are never refreshed once written.
type DocumentCache struct {
	locations rfcli.CacheLocations
	fetcher   rfcli.Fetcher
	cfg       config
}

// NewDocumentCache creates a new DocumentCache.
func NewDocumentCache(locations rfcli.CacheLocations, fetcher rfcli.Fetcher, opts ...Option) *DocumentCache {
	return &DocumentCache{
		locations: locations,
		fetcher:   fetcher,
		cfg:       newConfig(opts),
	}
}

// Document returns the cached text of an RFC, fetching and caching it on a miss.
func (c *DocumentCache) Document(ctx context.Context, number int) (string, error) {
	if number <= 0 {
		return "", rfcli.Errorf(rfcli.EINVALID, "invalid RFC number %d", number)
	}

	if err := os.MkdirAll(c.locations.DocumentDir, 0755); err != nil {
		return "", rfcli.WrapError(rfcli.ECACHE, err, "create cache directory")
	}

	path := c.locations.DocumentPath(number)
	data, err := os.ReadFile(path)
	if err == nil {
		return string(data), nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", rfcli.WrapError(rfcli.ECACHE, err, "read cached RFC %d", number)
	}

	text, err := c.fetcher.Fetch(ctx, rfcli.DocumentURL(c.cfg.baseURL, number))
	if err != nil {
		return "", err
	}

	// Caching is best effort; the fetched text is usable either way.
	if err := writeFileAtomic(path, []byte(text)); err != nil {
		c.cfg.logger.Warn("cache write failed", "rfc", number, "path", path, "err", err)
	}

	return text, nil
}
