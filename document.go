package rfcli

import (
	"context"
	"strconv"
	"strings"
)

// DefaultBaseURL is the canonical host serving RFC text files.
const DefaultBaseURL = "https://www.rfc-editor.org"

// DocumentURL returns the canonical URL of the plain-text RFC with the given number.
func DocumentURL(baseURL string, number int) string {
	return strings.TrimSuffix(baseURL, "/") + "/rfc/rfc" + strconv.Itoa(number) + ".txt"
}

// DocumentService resolves the raw text of an RFC.
type DocumentService interface {
	// Document returns the raw text of the RFC with the given number.
	// Cached text is returned as-is; otherwise the document is fetched
	// from the remote source and cached on a best-effort basis.
	// Returns EINVALID for a non-positive number.
	Document(ctx context.Context, number int) (string, error)
}
