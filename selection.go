package rfcli

import "context"

// SelectionKind identifies the outcome of an interactive selection.
type SelectionKind int

// SelectionKind constants.
const (
	// SelectionNone means nothing usable was chosen: the pick was empty
	// or its leading token is not an RFC number.
	SelectionNone SelectionKind = iota

	// SelectionChosen means the user chose the RFC in Selection.Number.
	SelectionChosen

	// SelectionCancelled means the user aborted the selector.
	SelectionCancelled
)

// String returns the name of the kind.
func (k SelectionKind) String() string {
	switch k {
	case SelectionChosen:
		return "chosen"
	case SelectionCancelled:
		return "cancelled"
	default:
		return "none"
	}
}

// Selection is the result of choosing an RFC from the index.
type Selection struct {
	Kind   SelectionKind
	Number int
}

// Chosen returns a selection of the RFC with the given number.
func Chosen(number int) Selection {
	return Selection{Kind: SelectionChosen, Number: number}
}

// Cancelled returns a selection marking a user abort.
func Cancelled() Selection {
	return Selection{Kind: SelectionCancelled}
}

// NoSelection returns a selection marking that nothing usable was chosen.
func NoSelection() Selection {
	return Selection{Kind: SelectionNone}
}

// Pick is the raw outcome of a fuzzy picker.
type Pick struct {
	// Line is the chosen candidate, or empty if nothing was chosen.
	Line string

	// Aborted is true when the user cancelled the picker.
	Aborted bool
}

// Picker presents candidate lines for ranked interactive matching.
type Picker interface {
	// Pick blocks until the user chooses at most one candidate or aborts.
	// The query pre-fills the search input when non-empty.
	Pick(ctx context.Context, candidates []string, query string) (Pick, error)
}

// Pager displays text interactively.
type Pager interface {
	// Page blocks until the pager exits. The pager's exit status is not
	// reported; an error means the pager could not be run at all.
	Page(ctx context.Context, text string) error
}
