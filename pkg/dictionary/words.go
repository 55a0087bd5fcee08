package dictionary

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/yaklabco/goharper/pkg/document"
)

// Normalize returns the lookup form of word, matching document token norms.
func Normalize(word string) string {
	return document.Normalize(strings.TrimSpace(word))
}

// MatchCase returns word with the capitalisation pattern of template:
// all caps, leading capital, or unchanged.
func MatchCase(template, word string) string {
	if word == "" {
		return word
	}

	letters, upper := 0, 0
	for _, r := range template {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}

	switch {
	case letters > 1 && upper == letters:
		return cases.Upper(language.English).String(word)
	case startsUpper(template):
		first, size := utf8.DecodeRuneInString(word)
		return cases.Upper(language.English).String(string(first)) + word[size:]
	default:
		return word
	}
}

func startsUpper(s string) bool {
	first, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(first)
}

// suffixRule strips a suffix and proposes base forms.
type suffixRule struct {
	suffix  string
	replace []string
	doubled bool
}

//nolint:gochecknoglobals // Read-only inflection table.
var suffixRules = []suffixRule{
	{suffix: "'s", replace: []string{""}},
	{suffix: "s'", replace: []string{""}},
	{suffix: "ies", replace: []string{"y"}},
	{suffix: "es", replace: []string{"", "e"}},
	{suffix: "s", replace: []string{""}},
	{suffix: "ied", replace: []string{"y"}},
	{suffix: "ed", replace: []string{"", "e"}, doubled: true},
	{suffix: "ing", replace: []string{"", "e"}, doubled: true},
	{suffix: "ier", replace: []string{"y"}},
	{suffix: "iest", replace: []string{"y"}},
	{suffix: "er", replace: []string{"", "e"}, doubled: true},
	{suffix: "est", replace: []string{"", "e"}, doubled: true},
	{suffix: "ily", replace: []string{"y"}},
	{suffix: "ly", replace: []string{""}},
	{suffix: "ness", replace: []string{""}},
	{suffix: "ment", replace: []string{""}},
	{suffix: "ful", replace: []string{""}},
	{suffix: "less", replace: []string{""}},
}

//nolint:gochecknoglobals // Read-only inflection table.
var prefixes = []string{"un", "re", "non", "pre"}

// minStem keeps affix stripping from reducing words to fragments.
const minStem = 2

// baseForms returns word followed by the candidate base forms obtained by
// stripping one prefix and at most two suffixes ("kindnesses" -> "kindness" -> "kind").
func baseForms(word string) []string {
	forms := []string{word}
	forms = appendStems(forms, word)
	for _, stem := range forms[1:] {
		forms = appendStems(forms, stem)
	}

	for _, prefix := range prefixes {
		rest, ok := strings.CutPrefix(word, prefix)
		if !ok || len(rest) <= minStem+1 {
			continue
		}
		forms = append(forms, rest)
		forms = appendStems(forms, rest)
	}
	return forms
}

func appendStems(forms []string, word string) []string {
	for _, rule := range suffixRules {
		stem, ok := strings.CutSuffix(word, rule.suffix)
		if !ok || len(stem) < minStem {
			continue
		}
		for _, repl := range rule.replace {
			forms = append(forms, stem+repl)
		}
		if rule.doubled && len(stem) > minStem && stem[len(stem)-1] == stem[len(stem)-2] {
			forms = append(forms, stem[:len(stem)-1])
		}
	}
	return forms
}

// Distance returns the optimal string alignment distance between a and b:
// insertions, deletions, substitutions and adjacent transpositions each cost one.
func Distance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Three rolling rows: two back, previous, current.
	prev2 := make([]int, len(b)+1)
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				curr[j] = min(curr[j], prev2[j-2]+1)
			}
		}
		prev2, prev, curr = prev, curr, prev2
	}

	return prev[len(b)]
}
