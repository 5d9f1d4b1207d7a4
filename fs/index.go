package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ponchorolls/rfcli"
)

// Ensure IndexCache implements rfcli.IndexService at compile time.
var _ rfcli.IndexService = (*IndexCache)(nil)

// IndexCache keeps a single local copy of the master RFC index.
type IndexCache struct {
	path    string
	fetcher rfcli.Fetcher
	cfg     config

	// OnRefresh is called before the index is downloaded.
	OnRefresh func()

	// OnRefreshed is called after the index has been downloaded.
	OnRefreshed func()
}

// NewIndexCache creates a new IndexCache storing the index at locations.IndexPath.
func NewIndexCache(locations rfcli.CacheLocations, fetcher rfcli.Fetcher, opts ...Option) *IndexCache {
	return &IndexCache{
		path:    locations.IndexPath,
		fetcher: fetcher,
		cfg:     newConfig(opts),
	}
}

// Index returns the local index, downloading it first when absent or when
// forceRefresh is set. A failed download leaves the local copy unchanged.
func (c *IndexCache) Index(ctx context.Context, forceRefresh bool) (string, error) {
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return "", rfcli.WrapError(rfcli.ECACHE, err, "create cache directory")
	}

	if !forceRefresh {
		data, err := os.ReadFile(c.path)
		if err == nil {
			return string(data), nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", rfcli.WrapError(rfcli.ECACHE, err, "read cached index")
		}
	}

	if c.OnRefresh != nil {
		c.OnRefresh()
	}

	text, err := c.fetcher.Fetch(ctx, rfcli.IndexURL(c.cfg.baseURL))
	if err != nil {
		return "", err
	}

	// The whole index replaces the old copy in one rename, or not at all.
	if err := writeFileAtomic(c.path, []byte(text)); err != nil {
		c.cfg.logger.Warn("index write failed", "path", c.path, "err", err)
	}

	if c.OnRefreshed != nil {
		c.OnRefreshed()
	}

	return text, nil
}
