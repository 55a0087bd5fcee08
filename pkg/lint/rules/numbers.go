package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/goharper/pkg/dictionary"
	"github.com/yaklabco/goharper/pkg/document"
	"github.com/yaklabco/goharper/pkg/lint"
)

// CorrectNumberSuffixRule flags ordinals with the wrong suffix, such as
// "2th" or "11st".
type CorrectNumberSuffixRule struct {
	lint.BaseRule
}

// NewCorrectNumberSuffixRule creates a new ordinal suffix rule.
func NewCorrectNumberSuffixRule() *CorrectNumberSuffixRule {
	return &CorrectNumberSuffixRule{
		BaseRule: lint.NewBaseRule(
			"CorrectNumberSuffix",
			"correct-number-suffix",
			"Ordinal numbers should use the matching suffix: 1st, 2nd, 3rd, 4th",
			lint.KindMiscellaneous,
		),
	}
}

// Apply checks number tokens that end in an ordinal suffix. Word
// segmentation keeps "2nd" together as one number token.
func (r *CorrectNumberSuffixRule) Apply(ctx *lint.RuleContext) ([]lint.Lint, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	var lints []lint.Lint
	for _, tok := range ctx.Doc.Tokens() {
		if tok.Kind != document.TokNumber {
			continue
		}

		text := ctx.Doc.TokenText(tok)
		digits := len(text) - len(strings.TrimLeft(text, "0123456789"))
		suffix := text[digits:]
		switch strings.ToLower(suffix) {
		case "st", "nd", "rd", "th":
		default:
			continue
		}

		want := ordinalSuffix(text[:digits])
		if strings.EqualFold(suffix, want) {
			continue
		}

		replacement := dictionary.MatchCase(suffix, want)
		start := tok.Span.Start + digits
		lints = append(lints, r.NewLint(start, tok.Span.End,
			fmt.Sprintf("This number should end in “%s”.", replacement)).
			WithReplacements(replacement).
			Build())
	}

	return lints, nil
}

// ordinalSuffix returns the English ordinal suffix for a decimal number.
func ordinalSuffix(digits string) string {
	n := len(digits)
	if n >= 2 && digits[n-2] == '1' {
		return "th"
	}
	switch digits[n-1] {
	case '1':
		return "st"
	case '2':
		return "nd"
	case '3':
		return "rd"
	default:
		return "th"
	}
}
