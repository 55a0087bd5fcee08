// Package pretty provides Lipgloss-based styled terminal output.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/goharper/pkg/lint"
)

// Styles contains the styled renderers for CLI output.
type Styles struct {
	// Kind groups
	Spelling    lipgloss.Style
	Grammar     lipgloss.Style
	Readability lipgloss.Style

	// Lint components
	FilePath   lipgloss.Style
	Location   lipgloss.Style
	Rule       lipgloss.Style
	Message    lipgloss.Style
	Suggestion lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style

	// Summary
	Success lipgloss.Style
	Failure lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates Styles with or without color.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			Spelling: plain, Grammar: plain, Readability: plain,
			FilePath: plain, Location: plain, Rule: plain, Message: plain,
			Suggestion: plain, SourceLine: plain, Caret: plain,
			Success: plain, Failure: plain, Dim: plain, Bold: plain,
		}
	}

	return &Styles{
		Spelling:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Grammar:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Readability: lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),

		FilePath:   lipgloss.NewStyle().Bold(true),
		Location:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Rule:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Message:    lipgloss.NewStyle(),
		Suggestion: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Italic(true),
		SourceLine: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Caret:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// Kind returns the style for a lint kind.
func (s *Styles) Kind(kind lint.Kind) lipgloss.Style {
	switch kind {
	case lint.KindSpelling:
		return s.Spelling
	case lint.KindReadability, lint.KindWordChoice, lint.KindMiscellaneous:
		return s.Readability
	default:
		return s.Grammar
	}
}

// IsColorEnabled decides whether to color output. Mode is "auto" (default),
// "always" or "never". Auto colors only a terminal, and only when NO_COLOR
// is unset.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
