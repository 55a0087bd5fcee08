package rules

import (
	"fmt"

	"github.com/yaklabco/goharper/pkg/document"
	"github.com/yaklabco/goharper/pkg/lint"
)

// SpacesRule flags runs of two or more spaces between words.
type SpacesRule struct {
	lint.BaseRule
}

// NewSpacesRule creates a new spaces rule.
func NewSpacesRule() *SpacesRule {
	return &SpacesRule{
		BaseRule: lint.NewBaseRule(
			"Spaces",
			"spaces",
			"Words should be separated by exactly one space",
			lint.KindFormatting,
		),
	}
}

// Apply checks every space token that sits between two lintable tokens.
// Indentation and trailing space are left alone.
func (r *SpacesRule) Apply(ctx *lint.RuleContext) ([]lint.Lint, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	tokens := ctx.Doc.Tokens()
	var lints []lint.Lint

	for idx := 1; idx < len(tokens)-1; idx++ {
		tok := tokens[idx]
		if tok.Kind != document.TokSpace || tok.Span.Len() < 2 {
			continue
		}
		if !betweenText(tokens, idx) || !onlySpaces(ctx.Doc.TokenText(tok)) {
			continue
		}

		lints = append(lints, r.NewLint(tok.Span.Start, tok.Span.End,
			fmt.Sprintf("There are %d spaces where there should be only 1.", tok.Span.Len())).
			WithReplacements(" ").
			Build())
	}

	return lints, nil
}

// betweenText reports whether the tokens on both sides of idx are words,
// numbers or punctuation.
func betweenText(tokens []document.Token, idx int) bool {
	if idx == 0 || idx == len(tokens)-1 {
		return false
	}
	for _, kind := range []document.TokenKind{tokens[idx-1].Kind, tokens[idx+1].Kind} {
		switch kind {
		case document.TokWord, document.TokNumber, document.TokPunctuation:
		default:
			return false
		}
	}
	return true
}

// isClosingPunctuation reports whether text is punctuation that attaches to
// the preceding word.
func isClosingPunctuation(text string) bool {
	switch text {
	case ",", ".", "!", "?", ";", ":":
		return true
	default:
		return false
	}
}

// SpaceBeforePunctuationRule flags a space between a word and the
// punctuation that should follow it directly.
type SpaceBeforePunctuationRule struct {
	lint.BaseRule
}

// NewSpaceBeforePunctuationRule creates a new space-before-punctuation rule.
func NewSpaceBeforePunctuationRule() *SpaceBeforePunctuationRule {
	return &SpaceBeforePunctuationRule{
		BaseRule: lint.NewBaseRule(
			"SpaceBeforePunctuation",
			"space-before-punctuation",
			"There should be no space before a comma, period, colon or similar",
			lint.KindPunctuation,
		),
	}
}

// Apply checks spaces followed by closing punctuation.
func (r *SpaceBeforePunctuationRule) Apply(ctx *lint.RuleContext) ([]lint.Lint, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	tokens := ctx.Doc.Tokens()
	var lints []lint.Lint

	for idx := 1; idx < len(tokens)-1; idx++ {
		tok := tokens[idx]
		if tok.Kind != document.TokSpace {
			continue
		}
		prev, next := tokens[idx-1], tokens[idx+1]
		if prev.Kind != document.TokWord && prev.Kind != document.TokNumber {
			continue
		}
		if next.Kind != document.TokPunctuation || !isClosingPunctuation(ctx.Doc.TokenText(next)) {
			continue
		}
		// "etc ..." style ellipses.
		if idx+2 < len(tokens) && ctx.Doc.TokenText(tokens[idx+2]) == "." {
			continue
		}

		lints = append(lints, r.NewLint(tok.Span.Start, tok.Span.End,
			fmt.Sprintf("Remove the space before “%s”.", ctx.Doc.TokenText(next))).
			WithSuggestion(lint.Removal()).
			Build())
	}

	return lints, nil
}

// MissingSpaceAfterPunctuationRule flags a word glued to the comma or
// similar mark before it.
type MissingSpaceAfterPunctuationRule struct {
	lint.BaseRule
}

// NewMissingSpaceAfterPunctuationRule creates a new missing-space rule.
func NewMissingSpaceAfterPunctuationRule() *MissingSpaceAfterPunctuationRule {
	return &MissingSpaceAfterPunctuationRule{
		BaseRule: lint.NewBaseRule(
			"MissingSpaceAfterPunctuation",
			"missing-space-after-punctuation",
			"A comma, semicolon, exclamation or question mark should be followed by a space",
			lint.KindPunctuation,
		),
	}
}

// Apply checks punctuation immediately followed by a word.
func (r *MissingSpaceAfterPunctuationRule) Apply(ctx *lint.RuleContext) ([]lint.Lint, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	tokens := ctx.Doc.Tokens()
	var lints []lint.Lint

	for idx := 1; idx < len(tokens)-1; idx++ {
		tok := tokens[idx]
		if tok.Kind != document.TokPunctuation {
			continue
		}
		mark := ctx.Doc.TokenText(tok)
		switch mark {
		case ",", ";", "!", "?":
		default:
			continue
		}
		if tokens[idx-1].Kind != document.TokWord || tokens[idx+1].Kind != document.TokWord {
			continue
		}

		lints = append(lints, r.NewLint(tok.Span.Start, tok.Span.End,
			fmt.Sprintf("Add a space after “%s”.", mark)).
			WithSuggestion(lint.Insertion(" ")).
			Build())
	}

	return lints, nil
}
