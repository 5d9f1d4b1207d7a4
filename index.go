package rfcli

import (
	"context"
	"strconv"
	"strings"
)

// IndexURL returns the canonical URL of the master RFC index.
func IndexURL(baseURL string) string {
	return strings.TrimSuffix(baseURL, "/") + "/rfc/rfc-index.txt"
}

// IndexService provides the master RFC index text.
type IndexService interface {
	// Index returns the index text. The index is downloaded when no local
	// copy exists or forceRefresh is true; a failed download leaves any
	// existing copy untouched and returns the error.
	Index(ctx context.Context, forceRefresh bool) (string, error)
}

// Candidates returns the index lines that can be offered for selection:
// lines whose first non-whitespace character is an ASCII digit.
func Candidates(indexText string) []string {
	var lines []string
	for _, line := range strings.Split(indexText, "\n") {
		line = strings.TrimRight(line, "\r")
		if isCandidate(line) {
			lines = append(lines, line)
		}
	}
	return lines
}

func isCandidate(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed != "" && trimmed[0] >= '0' && trimmed[0] <= '9'
}

// ParseNumber parses the leading whitespace-delimited token of an index
// line as an RFC number. It reports false unless the token is a positive
// decimal integer.
func ParseNumber(line string) (int, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, false
	}
	token := fields[0]
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(token)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
