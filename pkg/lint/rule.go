// Package lint provides the rule engine, findings and registry for goharper.
package lint

import (
	"github.com/yaklabco/goharper/pkg/document"
)

// Kind categorises a finding.
type Kind uint8

// Lint kinds.
const (
	KindSpelling Kind = iota
	KindRepetition
	KindCapitalization
	KindWordChoice
	KindFormatting
	KindPunctuation
	KindReadability
	KindMiscellaneous
)

//nolint:gochecknoglobals // Read-only lookup table.
var kindNames = [...]string{
	KindSpelling:       "Spelling",
	KindRepetition:     "Repetition",
	KindCapitalization: "Capitalization",
	KindWordChoice:     "Word Choice",
	KindFormatting:     "Formatting",
	KindPunctuation:    "Punctuation",
	KindReadability:    "Readability",
	KindMiscellaneous:  "Miscellaneous",
}

// String returns the display name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// DefaultPriority is used for findings that do not set one.
const DefaultPriority = 127

// Lint is a single finding produced by applying a rule to a document.
type Lint struct {
	// Span is the byte range of the document the finding covers.
	Span document.Span

	// Kind categorises the finding.
	Kind Kind

	// Rule is the ID of the rule that produced the finding.
	Rule string

	// Message is the human-readable description of the issue.
	Message string

	// Suggestions are the proposed corrections, best first.
	Suggestions []Suggestion

	// Priority orders competing findings; lower is more important.
	Priority uint8
}

// HasSuggestions returns true if the lint proposes at least one correction.
func (l *Lint) HasSuggestions() bool {
	return len(l.Suggestions) > 0
}

// Rule defines the interface that all lint rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "SpellCheck").
	ID() string

	// Name returns the kebab-case alias of the rule (e.g., "spell-check").
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// Kind returns the kind of the findings the rule produces.
	Kind() Kind

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// Apply executes the rule against the given context and returns findings.
	//
	// Rules must:
	//   - Return findings whose spans lie within the document.
	//   - Skip unlintable tokens.
	//   - Respect context cancellation.
	//   - Return error only for internal failures, not findings.
	Apply(ctx *RuleContext) ([]Lint, error)
}

// Optioned is implemented by rules that accept options; the returned map
// holds each option's default value.
type Optioned interface {
	DefaultOptions() map[string]any
}
