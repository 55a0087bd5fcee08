package lint

import (
	"fmt"

	"github.com/yaklabco/goharper/pkg/document"
	"github.com/yaklabco/goharper/pkg/fix"
)

// SuggestionKind is the action a suggestion performs on the lint's span.
type SuggestionKind uint8

const (
	// ReplaceWith replaces the span with Text.
	ReplaceWith SuggestionKind = iota

	// Remove deletes the span.
	Remove

	// InsertAfter inserts Text at the end of the span.
	InsertAfter
)

// Suggestion is one proposed correction for a lint.
type Suggestion struct {
	Kind SuggestionKind
	Text string
}

// Replacement returns a suggestion replacing the span with text.
func Replacement(text string) Suggestion {
	return Suggestion{Kind: ReplaceWith, Text: text}
}

// Removal returns a suggestion deleting the span.
func Removal() Suggestion {
	return Suggestion{Kind: Remove}
}

// Insertion returns a suggestion inserting text after the span.
func Insertion(text string) Suggestion {
	return Suggestion{Kind: InsertAfter, Text: text}
}

// String renders the suggestion for display.
func (s Suggestion) String() string {
	switch s.Kind {
	case ReplaceWith:
		return fmt.Sprintf("Replace with: “%s”", s.Text)
	case Remove:
		return "Remove error"
	case InsertAfter:
		return fmt.Sprintf("Insert “%s”", s.Text)
	default:
		return ""
	}
}

// Edit converts the suggestion into a text edit on span.
func (s Suggestion) Edit(span document.Span) fix.TextEdit {
	switch s.Kind {
	case Remove:
		return fix.Delete(span.Start, span.End)
	case InsertAfter:
		return fix.Insert(span.End, s.Text)
	default:
		return fix.Replace(span.Start, span.End, s.Text)
	}
}

// FirstSuggestionEdits returns one edit per lint that has suggestions, using
// its first suggestion. The edits are unsorted; prepare them with fix.Prepare.
func FirstSuggestionEdits(lints []Lint) []fix.TextEdit {
	var edits []fix.TextEdit
	for idx := range lints {
		if lints[idx].HasSuggestions() {
			edits = append(edits, lints[idx].Suggestions[0].Edit(lints[idx].Span))
		}
	}
	return edits
}
