package pretty

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/yaklabco/goharper/pkg/document"
	"github.com/yaklabco/goharper/pkg/lint"
)

const contextIndent = "        "

// FormatLint formats one finding as
//
//	path:line:col  Kind  message  (Rule)
//
// followed, when showContext is set, by the source line with carets under
// the span, and by the first suggestion.
func (s *Styles) FormatLint(path string, doc *document.Document, l *lint.Lint, showContext bool) string {
	var b strings.Builder

	line, col := doc.Position(l.Span.Start)
	fmt.Fprintf(&b, "  %s%s  %s  %s  %s\n",
		s.FilePath.Render(path),
		s.Location.Render(fmt.Sprintf(":%d:%d", line, col)),
		s.Kind(l.Kind).Render(l.Kind.String()),
		s.Message.Render(l.Message),
		s.Rule.Render("("+l.Rule+")"),
	)

	if showContext {
		b.WriteString(s.FormatSourceContext(doc, l.Span))
	}

	if l.HasSuggestions() {
		b.WriteString("    " + s.Dim.Render("Suggestion:") + " " +
			s.Suggestion.Render(l.Suggestions[0].String()) + "\n")
	}

	return b.String()
}

// FormatSourceContext renders the line containing span.Start with carets
// under the span. Carets are aligned by grapheme cluster width, and a span
// running past the line is cut at its end.
func (s *Styles) FormatSourceContext(doc *document.Document, span document.Span) string {
	lineNum, col := doc.Position(span.Start)
	text := doc.LineText(lineNum)
	if lineNum == 0 || text == "" {
		return ""
	}

	start := min(col-1, len(text))
	end := min(start+span.Len(), len(text))
	carets := max(uniseg.StringWidth(text[start:end]), 1)

	var b strings.Builder
	b.WriteString(contextIndent + s.SourceLine.Render(strings.ReplaceAll(text, "\t", " ")) + "\n")
	b.WriteString(contextIndent + strings.Repeat(" ", uniseg.StringWidth(text[:start])))
	b.WriteString(s.Caret.Render(strings.Repeat("^", carets)) + "\n")
	return b.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, count int) string {
	header := s.FilePath.Render(path)
	if count > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", count, plural(count, "lint", "lints")))
	}
	return header
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
