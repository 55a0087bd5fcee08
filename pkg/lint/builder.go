package lint

import "github.com/yaklabco/goharper/pkg/document"

// Builder helps construct Lint values.
type Builder struct {
	lint Lint
}

// NewLintAt starts building a finding for the given rule over [start, end).
func NewLintAt(ruleID string, kind Kind, start, end int, message string) *Builder {
	return &Builder{
		lint: Lint{
			Span:     document.Span{Start: start, End: end},
			Kind:     kind,
			Rule:     ruleID,
			Message:  message,
			Priority: DefaultPriority,
		},
	}
}

// WithKind overrides the kind.
func (b *Builder) WithKind(kind Kind) *Builder {
	b.lint.Kind = kind
	return b
}

// WithPriority sets the priority.
func (b *Builder) WithPriority(priority uint8) *Builder {
	b.lint.Priority = priority
	return b
}

// WithSuggestion appends a suggestion.
func (b *Builder) WithSuggestion(s Suggestion) *Builder {
	b.lint.Suggestions = append(b.lint.Suggestions, s)
	return b
}

// WithReplacements appends one ReplaceWith suggestion per text.
func (b *Builder) WithReplacements(texts ...string) *Builder {
	for _, text := range texts {
		b.lint.Suggestions = append(b.lint.Suggestions, Replacement(text))
	}
	return b
}

// Build returns the constructed Lint.
func (b *Builder) Build() Lint {
	return b.lint
}
