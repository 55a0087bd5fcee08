package rules

import (
	"fmt"

	"github.com/yaklabco/goharper/pkg/document"
	"github.com/yaklabco/goharper/pkg/lint"
)

// defaultMaxWords is the default sentence length limit.
const defaultMaxWords = 40

// LongSentencesRule flags sentences with more than max_words words.
type LongSentencesRule struct {
	lint.BaseRule
}

// NewLongSentencesRule creates a new long sentences rule.
func NewLongSentencesRule() *LongSentencesRule {
	return &LongSentencesRule{
		BaseRule: lint.NewBaseRule(
			"LongSentences",
			"long-sentences",
			"Sentences should be short enough to read in one breath",
			lint.KindReadability,
		),
	}
}

// DefaultOptions implements lint.Optioned.
func (r *LongSentencesRule) DefaultOptions() map[string]any {
	return map[string]any{"max_words": defaultMaxWords}
}

// Apply counts the words of every sentence.
func (r *LongSentencesRule) Apply(ctx *lint.RuleContext) ([]lint.Lint, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	maxWords := ctx.OptionInt("max_words", defaultMaxWords)
	if maxWords <= 0 {
		return nil, fmt.Errorf("max_words must be positive, got %d", maxWords)
	}

	tokens := ctx.Doc.Tokens()
	var lints []lint.Lint

	for _, sentence := range ctx.Doc.Sentences() {
		words := 0
		for _, tok := range tokens[sentence.Start:sentence.End] {
			if tok.Kind == document.TokWord {
				words++
			}
		}
		if words <= maxWords {
			continue
		}

		start := tokens[sentence.Start].Span.Start
		end := tokens[sentence.End-1].Span.End
		lints = append(lints, r.NewLint(start, end,
			fmt.Sprintf("This sentence is %d words long.", words)).
			Build())
	}

	return lints, nil
}
