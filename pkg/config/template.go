package config

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes every rule with its documentation.
	// If false, generates a minimal template.
	Full bool

	// Dialect is written as the configured dialect. Empty means american.
	Dialect string
}

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Kind        string
	Enabled     bool
	Options     map[string]any
}

// GenerateTemplate creates a .goharper.yml template. Rules are supplied by
// the caller so that this package stays independent of the lint engine.
func GenerateTemplate(opts TemplateOptions, rules []RuleInfo) []byte {
	var buf bytes.Buffer

	dialect := cmp.Or(opts.Dialect, DialectAmerican)

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n\n")
	fmt.Fprintf(&buf, `# Spelling dialect: american, british, australian or canadian
dialect: %s

# Log level: debug, info, warn or error
log_level: warn

# Markdown flavor for .md files: commonmark or gfm
flavor: gfm

# File patterns to ignore (glob patterns)
# ignore:
#   - "vendor/**"

# Shared library settings
bridge:
  # Report use of released handles as use-after-release
  poison_released: false
  # Reject documents larger than this many bytes (0 = unlimited)
  max_document_bytes: 0
`, dialect)

	if !opts.Full {
		buf.WriteString(`
# Rule-specific configuration
# rules:
#   SpellCheck:
#     enabled: true
#   LongSentences:
#     options:
#       max_words: 40
`)
		return buf.Bytes()
	}

	sorted := slices.Clone(rules)
	slices.SortFunc(sorted, func(a, b RuleInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})

	buf.WriteString("\n# Rule-specific configuration\nrules:\n")
	for _, rule := range sorted {
		fmt.Fprintf(&buf, "\n  # %s (%s)\n", rule.Name, rule.Kind)
		fmt.Fprintf(&buf, "  # %s\n", wrapComment(rule.Description, commentWrapWidth))
		fmt.Fprintf(&buf, "  %s:\n", rule.ID)
		fmt.Fprintf(&buf, "    enabled: %t\n", rule.Enabled)
		if len(rule.Options) == 0 {
			continue
		}
		buf.WriteString("    options:\n")
		keys := make([]string, 0, len(rule.Options))
		for key := range rule.Options {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			fmt.Fprintf(&buf, "      %s: %v\n", key, rule.Options[key])
		}
	}

	return buf.Bytes()
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(text) {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n  # ")
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# goharper configuration
# See: https://github.com/yaklabco/goharper`
}
