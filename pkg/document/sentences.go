package document

import "strings"

// Sentence is a run of token indexes [Start, End) into Document.Tokens.
type Sentence struct {
	Start int
	End   int
}

// Len returns the number of tokens in the sentence.
func (s Sentence) Len() int {
	return s.End - s.Start
}

// abbreviations never end a sentence when followed by a period.
//
//nolint:gochecknoglobals // Read-only lookup table.
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "st": {}, "jr": {}, "sr": {},
	"vs": {}, "etc": {}, "inc": {}, "ltd": {}, "co": {}, "no": {}, "fig": {}, "approx": {},
}

// Sentences splits the token stream into sentences. A sentence ends after a
// terminating '.', '!' or '?', at a paragraph break (two newlines with only
// spaces between them). Unlintable content such as inline code never starts
// a sentence. Sentences never contain leading whitespace tokens.
func (d *Document) Sentences() []Sentence {
	var sentences []Sentence

	start := -1
	newlines := 0
	flush := func(end int) {
		if start >= 0 && end > start {
			sentences = append(sentences, Sentence{Start: start, End: end})
		}
		start = -1
	}

	for idx, tok := range d.tokens {
		switch tok.Kind {
		case TokNewline:
			newlines++
			if newlines >= 2 {
				flush(idx)
			}
			continue
		case TokSpace:
			continue
		case TokUnlintable:
			newlines = 0
			continue
		case TokWord, TokPunctuation, TokNumber:
		}

		newlines = 0
		if start < 0 {
			start = idx
		}
		if tok.Kind == TokPunctuation && d.endsSentence(idx) {
			flush(idx + 1)
		}
	}
	flush(len(d.tokens))

	return trimTrailingWhitespace(d.tokens, sentences)
}

// endsSentence reports whether the punctuation token at idx terminates a sentence.
func (d *Document) endsSentence(idx int) bool {
	switch d.TokenText(d.tokens[idx]) {
	case "!", "?":
		return true
	case ".":
	default:
		return false
	}

	if idx == 0 {
		return true
	}
	prev := d.tokens[idx-1]
	if prev.Kind != TokWord {
		return true
	}
	if len([]rune(prev.Norm)) == 1 || strings.Contains(prev.Norm, ".") {
		// Initials and dotted abbreviations such as "e.g.".
		return false
	}
	_, abbrev := abbreviations[prev.Norm]
	return !abbrev
}

func trimTrailingWhitespace(tokens []Token, sentences []Sentence) []Sentence {
	for i := range sentences {
		for sentences[i].End > sentences[i].Start && tokens[sentences[i].End-1].Kind.IsWhitespace() {
			sentences[i].End--
		}
	}
	return sentences
}
