package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/goharper/pkg/document"
	"github.com/yaklabco/goharper/pkg/lint"
)

// maxSpellingSuggestions caps the suggestions attached to one lint.
const maxSpellingSuggestions = 3

// spellingPriority ranks spelling findings ahead of style findings.
const spellingPriority = 63

// SpellCheckRule flags words that the dictionary does not know for the
// group's dialect.
type SpellCheckRule struct {
	lint.BaseRule
}

// NewSpellCheckRule creates a new spell check rule.
func NewSpellCheckRule() *SpellCheckRule {
	return &SpellCheckRule{
		BaseRule: lint.NewBaseRule(
			"SpellCheck",
			"spell-check",
			"Looks for words that are not in the dictionary and suggests close matches",
			lint.KindSpelling,
		),
	}
}

// Apply checks every word token against the dictionary.
func (r *SpellCheckRule) Apply(ctx *lint.RuleContext) ([]lint.Lint, error) {
	if ctx.Doc == nil || ctx.Dict == nil {
		return nil, nil
	}

	var lints []lint.Lint
	for _, tok := range ctx.Doc.Tokens() {
		if ctx.Cancelled() {
			return lints, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}
		if tok.Kind != document.TokWord {
			continue
		}

		text := ctx.Doc.TokenText(tok)
		if skipSpelling(text) || ctx.Dict.Contains(tok.Norm, ctx.Dialect) {
			continue
		}

		builder := r.NewLint(tok.Span.Start, tok.Span.End, r.message(ctx, text, tok.Norm)).
			WithPriority(spellingPriority).
			WithReplacements(ctx.Dict.Suggest(text, ctx.Dialect, maxSpellingSuggestions)...)
		lints = append(lints, builder.Build())
	}

	return lints, nil
}

func (r *SpellCheckRule) message(ctx *lint.RuleContext, text, norm string) string {
	entry, known := ctx.Dict.Known(norm)
	if known && !entry.ValidIn(ctx.Dialect) {
		names := make([]string, 0, len(entry.Dialects()))
		for _, d := range entry.Dialects() {
			names = append(names, d.String())
		}
		return fmt.Sprintf("“%s” is the %s spelling, not the %s one.", text, strings.Join(names, "/"), ctx.Dialect)
	}
	return fmt.Sprintf("Did you mean to spell “%s” this way?", text)
}

// skipSpelling excludes acronyms, identifiers and dotted names.
func skipSpelling(text string) bool {
	return isAllUpper(text) ||
		containsDigit(text) ||
		strings.ContainsAny(text, "._")
}
