package rfcli

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Excerpt defaults.
const (
	DefaultPrefixLines  = 300
	DefaultSectionLines = 80
	DefaultSection      = "Security Considerations"
)

// SummarySystemPrompt instructs the model to produce terminal-friendly output.
const SummarySystemPrompt = "You are a Senior Systems Engineer. Summarize the RFC for a terminal UI. " +
	"DO NOT use Markdown bolding (no asterisks). Use a simple 'TITLE: description' format for bullets. " +
	"Keep the elevator pitch at the top."

// SummaryRequest is a single request to a summarization backend.
type SummaryRequest struct {
	Number int
	Model  string
	System string
	Prompt string
}

// Validate returns an error if the request is incomplete.
func (r *SummaryRequest) Validate() error {
	if r.Model == "" {
		return Errorf(EINVALID, "model required")
	}
	if r.Prompt == "" {
		return Errorf(EINVALID, "prompt required")
	}
	return nil
}

// SummaryBackend submits summary requests to a language model.
type SummaryBackend interface {
	// Summarize makes exactly one attempt and returns the summary text.
	// Transport and credential failures return EUNAVAILABLE or
	// EUNAUTHORIZED; a response without a summary returns EMALFORMED
	// with the raw response in the error detail.
	Summarize(ctx context.Context, req SummaryRequest) (string, error)

	// Name identifies the backend, e.g. "groq".
	Name() string
}

// ExcerptOptions bounds the context extracted from a document.
type ExcerptOptions struct {
	// PrefixLines is the number of leading lines always included.
	PrefixLines int

	// Section is a heading located case-insensitively. Empty disables it.
	Section string

	// SectionLines is the number of lines taken from the section heading on.
	SectionLines int
}

// DefaultExcerptOptions returns the options used for summaries.
func DefaultExcerptOptions() ExcerptOptions {
	return ExcerptOptions{
		PrefixLines:  DefaultPrefixLines,
		Section:      DefaultSection,
		SectionLines: DefaultSectionLines,
	}
}

// Excerpt is the bounded context sent to a summarization backend.
type Excerpt struct {
	// Prefix holds the leading lines of the document.
	Prefix string

	// SectionName is the heading that was searched for.
	SectionName string

	// Section holds lines from the located heading that are not already
	// part of Prefix. Empty if the heading was not found.
	Section string
}

// sectionNumberRe matches leading section numbering such as "9.", "9.1." or "A.1".
var sectionNumberRe = regexp.MustCompile(`^(?:[0-9]+|[A-Z])(?:\.[0-9]+)*\.?\s+`)

// ExtractExcerpt returns the bounded excerpt of normalized text.
func ExtractExcerpt(text string, opts ExcerptOptions) Excerpt {
	lines := strings.Split(text, "\n")

	prefixEnd := min(max(opts.PrefixLines, 0), len(lines))
	ex := Excerpt{
		Prefix:      strings.Join(lines[:prefixEnd], "\n"),
		SectionName: opts.Section,
	}

	if opts.Section == "" || opts.SectionLines <= 0 {
		return ex
	}

	at := findHeading(lines, opts.Section)
	if at < 0 {
		return ex
	}

	start := max(at, prefixEnd)
	end := min(at+opts.SectionLines, len(lines))
	if start < end {
		ex.Section = strings.Join(lines[start:end], "\n")
	}
	return ex
}

// findHeading returns the index of the first line that is exactly the
// heading, ignoring case, surrounding whitespace, and section numbering.
func findHeading(lines []string, heading string) int {
	for i, line := range lines {
		title := sectionNumberRe.ReplaceAllString(strings.TrimSpace(line), "")
		title = strings.TrimSuffix(strings.TrimSpace(title), ".")
		if strings.EqualFold(title, heading) {
			return i
		}
	}
	return -1
}

// BuildSummaryPrompt builds the user prompt for summarizing an RFC.
func BuildSummaryPrompt(number int, ex Excerpt) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Summarize RFC %d:\n\n", number)
	sb.WriteString("<document>\n")
	sb.WriteString(ex.Prefix)
	sb.WriteString("\n</document>\n")
	if ex.Section != "" {
		fmt.Fprintf(&sb, "\n<section name=%q>\n", ex.SectionName)
		sb.WriteString(ex.Section)
		sb.WriteString("\n</section>\n")
	}
	return sb.String()
}
