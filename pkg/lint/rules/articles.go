package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/goharper/pkg/dictionary"
	"github.com/yaklabco/goharper/pkg/document"
	"github.com/yaklabco/goharper/pkg/lint"
)

// Words spelled with a vowel but pronounced with a consonant sound, and the
// reverse. Matched as prefixes of the normalized word.
//
//nolint:gochecknoglobals // Read-only lookup tables.
var (
	consonantSoundPrefixes = []string{
		"uni", "use", "usu", "uti", "ura", "ure", "euro", "eu", "one", "once", "ewe",
	}
	vowelSoundPrefixes = []string{
		"hour", "honest", "honor", "honour", "heir", "herb",
	}
)

// AnARule flags "a" before a vowel sound and "an" before a consonant sound.
type AnARule struct {
	lint.BaseRule
}

// NewAnARule creates a new indefinite article rule.
func NewAnARule() *AnARule {
	return &AnARule{
		BaseRule: lint.NewBaseRule(
			"AnA",
			"an-a",
			"Use \"an\" before a vowel sound and \"a\" before a consonant sound",
			lint.KindMiscellaneous,
		),
	}
}

// Apply checks every "a" and "an" against the following word.
func (r *AnARule) Apply(ctx *lint.RuleContext) ([]lint.Lint, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	tokens := ctx.Doc.Tokens()
	var lints []lint.Lint

	for idx, tok := range tokens {
		if tok.Kind != document.TokWord || (tok.Norm != "a" && tok.Norm != "an") {
			continue
		}
		next := nextIndex(tokens, idx, false)
		if next < 0 || next == idx+1 || tokens[next].Kind != document.TokWord {
			continue
		}

		want := "a"
		if startsWithVowelSound(ctx.Doc.TokenText(tokens[next]), tokens[next].Norm) {
			want = "an"
		}
		if tok.Norm == want {
			continue
		}

		article := ctx.Doc.TokenText(tok)
		replacement := dictionary.MatchCase(article, want)
		lints = append(lints, r.NewLint(tok.Span.Start, tok.Span.End,
			fmt.Sprintf("Incorrect indefinite article. Use “%s” here.", replacement)).
			WithReplacements(replacement).
			Build())
	}

	return lints, nil
}

// startsWithVowelSound guesses the leading sound of a word from its spelling.
// Acronyms are read letter by letter.
func startsWithVowelSound(text, norm string) bool {
	if norm == "" {
		return false
	}

	if isAllUpper(text) {
		return strings.ContainsRune("aefhilmnorsx", rune(norm[0]))
	}

	for _, prefix := range vowelSoundPrefixes {
		if strings.HasPrefix(norm, prefix) {
			return true
		}
	}
	for _, prefix := range consonantSoundPrefixes {
		if strings.HasPrefix(norm, prefix) {
			return false
		}
	}

	return strings.ContainsRune("aeiou", rune(norm[0]))
}
