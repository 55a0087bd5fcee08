// Package langdetect chooses the document front end for a file. It uses
// go-enry to recognise Markdown by file name and, for unnamed input such as
// stdin, by content.
package langdetect

import (
	"bytes"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Frontend names the parser a document is built with.
type Frontend string

// Supported front ends.
const (
	FrontendPlain    Frontend = "plain"
	FrontendMarkdown Frontend = "markdown"
)

const (
	langMarkdown = "Markdown"
	langText     = "Text"
)

// ParseFrontend parses a front end name. The empty string and "auto" yield
// ok=true with an empty Frontend, meaning detection should be used.
func ParseFrontend(name string) (Frontend, bool) {
	switch strings.ToLower(name) {
	case "", "auto":
		return "", true
	case "plain", "text", "txt":
		return FrontendPlain, true
	case "markdown", "md":
		return FrontendMarkdown, true
	default:
		return "", false
	}
}

// Detect returns the front end for a file named filename with the given
// content. filename may be empty.
func Detect(filename string, content []byte) Frontend {
	if filename != "" {
		if lang, ok := byName(filename); ok {
			if lang == langMarkdown {
				return FrontendMarkdown
			}
			return FrontendPlain
		}
	}

	if looksLikeMarkdown(content) {
		return FrontendMarkdown
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return FrontendPlain
	}

	// The classifier orders every candidate by probability.
	if lang, _ := enry.GetLanguageByClassifier(content, []string{langMarkdown, langText}); lang == langMarkdown {
		return FrontendMarkdown
	}
	return FrontendPlain
}

// IsProse reports whether a file name belongs to a prose language that the
// linter should pick up during directory discovery.
func IsProse(filename string) bool {
	lang, ok := byName(filename)
	return ok && (lang == langMarkdown || lang == langText)
}

// IsVendored reports whether path lies in a vendored or generated tree,
// such as node_modules or vendor.
func IsVendored(path string) bool {
	return enry.IsVendor(filepath.ToSlash(path))
}

// byName resolves a language from a file name alone. Extensions shared by
// several languages resolve to Markdown or Text when either is a candidate.
func byName(filename string) (string, bool) {
	base := filepath.Base(filename)
	if lang, safe := enry.GetLanguageByFilename(base); safe && lang != "" {
		return lang, true
	}

	langs := enry.GetLanguagesByExtension(base, nil, nil)
	switch {
	case slices.Contains(langs, langMarkdown):
		return langMarkdown, true
	case slices.Contains(langs, langText):
		return langText, true
	case len(langs) > 0:
		return langs[0], true
	default:
		return "", false
	}
}

// looksLikeMarkdown checks for block constructs that plain prose rarely
// contains: ATX headings, fences and list markers followed by links.
func looksLikeMarkdown(content []byte) bool {
	score := 0
	for line := range bytes.Lines(content) {
		line = bytes.TrimRight(line, "\r\n")
		switch {
		case bytes.HasPrefix(line, []byte("```")), bytes.HasPrefix(line, []byte("~~~")):
			score += 2
		case atxHeading(line):
			score += 2
		case bytes.HasPrefix(line, []byte("- ")), bytes.HasPrefix(line, []byte("* ")):
			score++
		}
		if bytes.Contains(line, []byte("](")) {
			score++
		}
		if score >= 2 {
			return true
		}
	}
	return false
}

func atxHeading(line []byte) bool {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	return level >= 1 && level <= 6 && level < len(line) && line[level] == ' '
}
