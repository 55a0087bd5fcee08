package rules

import (
	"strings"
	"unicode"

	"github.com/yaklabco/goharper/pkg/document"
)

// nextIndex returns the index of the first token after idx that is not a
// space, or -1. Newlines stop the search when stopAtNewline is set.
func nextIndex(tokens []document.Token, idx int, stopAtNewline bool) int {
	for i := idx + 1; i < len(tokens); i++ {
		switch tokens[i].Kind {
		case document.TokSpace:
			continue
		case document.TokNewline:
			if stopAtNewline {
				return -1
			}
			continue
		default:
			return i
		}
	}
	return -1
}

// hasInnerUpper reports whether any letter after the first is upper case,
// as in "iPhone" or "eBay".
func hasInnerUpper(word string) bool {
	for i, r := range word {
		if i > 0 && unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// isAllUpper reports whether word has at least two letters, all upper case.
func isAllUpper(word string) bool {
	letters := 0
	for _, r := range word {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters > 1
}

func containsDigit(word string) bool {
	return strings.IndexFunc(word, unicode.IsDigit) >= 0
}

func onlySpaces(text string) bool {
	return text != "" && strings.Trim(text, " ") == ""
}
