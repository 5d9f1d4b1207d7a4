package rfcli

import (
	"regexp"
	"strings"
)

var (
	// paginationRe matches page-number footers and running headers.
	paginationRe = regexp.MustCompile(`(?m)^.*\[Page \d+\].*$|^RFC \d+.*$`)

	// blankRunRe matches runs of two or more blank lines.
	blankRunRe = regexp.MustCompile(`\n{3,}`)
)

// Normalize strips pagination artifacts from raw RFC text for terminal
// display. Form feeds are removed, footer lines containing "[Page N]" and
// header lines starting with "RFC N" are blanked, and runs of three or
// more newlines collapse to two. Normalize is idempotent.
func Normalize(raw string) string {
	s := strings.ReplaceAll(raw, "\f", "")
	s = paginationRe.ReplaceAllString(s, "")
	return blankRunRe.ReplaceAllString(s, "\n\n")
}
