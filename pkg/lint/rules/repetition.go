package rules

import (
	"fmt"

	"github.com/yaklabco/goharper/pkg/document"
	"github.com/yaklabco/goharper/pkg/lint"
)

// allowedRepeats are words that are grammatical when doubled.
//
//nolint:gochecknoglobals // Read-only lookup table.
var allowedRepeats = map[string]struct{}{
	"had":  {},
	"that": {},
	"is":   {},
}

// RepeatedWordsRule flags a word that appears twice in a row.
type RepeatedWordsRule struct {
	lint.BaseRule
}

// NewRepeatedWordsRule creates a new repeated words rule.
func NewRepeatedWordsRule() *RepeatedWordsRule {
	return &RepeatedWordsRule{
		BaseRule: lint.NewBaseRule(
			"RepeatedWords",
			"repeated-words",
			"Looks for words repeated back to back, such as \"the the\"",
			lint.KindRepetition,
		),
	}
}

// Apply compares each word with the next word on the same line.
func (r *RepeatedWordsRule) Apply(ctx *lint.RuleContext) ([]lint.Lint, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	tokens := ctx.Doc.Tokens()
	var lints []lint.Lint

	for idx, tok := range tokens {
		if tok.Kind != document.TokWord {
			continue
		}
		if _, ok := allowedRepeats[tok.Norm]; ok {
			continue
		}

		next := nextIndex(tokens, idx, false)
		if next < 0 || tokens[next].Kind != document.TokWord || tokens[next].Norm != tok.Norm {
			continue
		}

		text := ctx.Doc.TokenText(tok)
		lints = append(lints, r.NewLint(tok.Span.Start, tokens[next].Span.End,
			fmt.Sprintf("Did you mean to repeat “%s”?", text)).
			WithReplacements(text).
			Build())
	}

	return lints, nil
}
