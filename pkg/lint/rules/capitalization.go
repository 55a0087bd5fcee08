package rules

import (
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/goharper/pkg/dictionary"
	"github.com/yaklabco/goharper/pkg/document"
	"github.com/yaklabco/goharper/pkg/lint"
)

// SentenceCapitalizationRule flags sentences whose first word starts with a
// lowercase letter.
type SentenceCapitalizationRule struct {
	lint.BaseRule
}

// NewSentenceCapitalizationRule creates a new sentence capitalization rule.
func NewSentenceCapitalizationRule() *SentenceCapitalizationRule {
	return &SentenceCapitalizationRule{
		BaseRule: lint.NewBaseRule(
			"SentenceCapitalization",
			"sentence-capitalization",
			"Sentences should start with a capital letter",
			lint.KindCapitalization,
		),
	}
}

// Apply checks the first token of every sentence.
func (r *SentenceCapitalizationRule) Apply(ctx *lint.RuleContext) ([]lint.Lint, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	tokens := ctx.Doc.Tokens()
	var lints []lint.Lint

	for _, sentence := range ctx.Doc.Sentences() {
		first := tokens[sentence.Start]
		if first.Kind != document.TokWord {
			continue
		}

		text := ctx.Doc.TokenText(first)
		lead, _ := utf8.DecodeRuneInString(text)
		if !unicode.IsLower(lead) || hasInnerUpper(text) {
			continue
		}

		lints = append(lints, r.NewLint(first.Span.Start, first.Span.End,
			"This sentence does not start with a capital letter.").
			WithReplacements(dictionary.MatchCase("A", text)).
			Build())
	}

	return lints, nil
}
