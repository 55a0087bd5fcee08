package document

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Tokenize splits source into tokens along Unicode (UAX #29) word
// boundaries. The result covers the source contiguously, so concatenating
// every token's text reproduces it byte for byte.
func Tokenize(source string) []Token {
	if source == "" {
		return []Token{}
	}

	tokens := make([]Token, 0, len(source)/3+1)
	folder := cases.Fold()

	rest := source
	state := -1
	offset := 0
	for len(rest) > 0 {
		var segment string
		segment, rest, state = uniseg.FirstWordInString(rest, state)

		tok := Token{
			Span: Span{Start: offset, End: offset + len(segment)},
			Kind: classify(segment),
		}
		if tok.Kind == TokWord {
			tok.Norm = normalizeWith(folder, segment)
		}
		tokens = append(tokens, tok)
		offset += len(segment)
	}

	return tokens
}

// apostrophes maps typographic apostrophes to ASCII.
//
//nolint:gochecknoglobals // Read-only replacer, safe for concurrent use.
var apostrophes = strings.NewReplacer("\u2019", "'", "\u02bc", "'")

// Normalize returns the lookup form of a word: NFC, case folded, with
// typographic apostrophes replaced by ASCII ones.
func Normalize(word string) string {
	return normalizeWith(cases.Fold(), word)
}

// normalizeWith is Normalize with a caller-owned folder. A cases.Caser is
// stateful and must not be shared between goroutines.
func normalizeWith(folder cases.Caser, word string) string {
	normalized := apostrophes.Replace(norm.NFC.String(word))
	return folder.String(normalized)
}

// classify assigns a kind to one word-boundary segment.
func classify(segment string) TokenKind {
	first, _ := utf8.DecodeRuneInString(segment)

	switch {
	case unicode.IsDigit(first):
		return TokNumber
	case isNewline(segment):
		return TokNewline
	case isSpace(segment):
		return TokSpace
	}

	for _, r := range segment {
		if unicode.IsLetter(r) {
			return TokWord
		}
	}
	return TokPunctuation
}

func isSpace(segment string) bool {
	for _, r := range segment {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func isNewline(segment string) bool {
	switch segment {
	case "\n", "\r", "\r\n", "\u0085", "\u2028", "\u2029":
		return true
	default:
		return false
	}
}
