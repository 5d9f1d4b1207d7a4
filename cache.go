package rfcli

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

// IndexFileName is the file name of the cached master index.
const IndexFileName = "rfc-index.txt"

// documentFileRe matches the file names used for cached documents.
var documentFileRe = regexp.MustCompile(`^rfc[0-9]+\.txt$`)

// CacheLocations describes where the index and documents are cached.
type CacheLocations struct {
	// IndexPath is the path of the single cached index file.
	IndexPath string

	// DocumentDir holds one file per cached document.
	DocumentDir string
}

// NewCacheLocations returns locations rooted at dir, with the index and
// documents stored side by side.
func NewCacheLocations(dir string) CacheLocations {
	return CacheLocations{
		IndexPath:   filepath.Join(dir, IndexFileName),
		DocumentDir: dir,
	}
}

// DefaultCacheLocations returns locations under the user cache directory.
func DefaultCacheLocations() (CacheLocations, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return CacheLocations{}, WrapError(ECACHE, err, "cannot determine cache directory")
	}
	return NewCacheLocations(filepath.Join(dir, "rfcli")), nil
}

// DocumentPath returns the cache file path for the RFC with the given number.
func (l CacheLocations) DocumentPath(number int) string {
	return filepath.Join(l.DocumentDir, "rfc"+strconv.Itoa(number)+".txt")
}

// Validate returns an error if the locations are incomplete or if the
// index file would collide with a document entry.
func (l CacheLocations) Validate() error {
	if l.IndexPath == "" {
		return Errorf(EINVALID, "index path required")
	}
	if l.DocumentDir == "" {
		return Errorf(EINVALID, "document directory required")
	}
	if filepath.Clean(filepath.Dir(l.IndexPath)) == filepath.Clean(l.DocumentDir) &&
		documentFileRe.MatchString(filepath.Base(l.IndexPath)) {
		return Errorf(EINVALID, "index path %q collides with document cache entries", l.IndexPath)
	}
	return nil
}
