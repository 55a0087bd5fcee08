// Package goldmark provides a Markdown front end for documents using the
// goldmark library. Prose is tokenized like plain English; Markdown syntax,
// code, HTML and link destinations become unlintable tokens.
package goldmark

import (
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/goharper/pkg/document"
)

// Flavor identifies the Markdown flavor supported by the parser.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Compile-time interface check.
var _ document.Parser = (*Parser)(nil)

// Parser implements document.Parser for Markdown.
type Parser struct {
	flavor string
	md     goldmark.Markdown
}

// New creates a new goldmark-based parser for the given flavor.
// Invalid flavors default to GFM, whose autolinking keeps bare URLs out of
// the spell checker.
func New(flavor string) *Parser {
	f := flavorOrDefault(flavor)
	return &Parser{
		flavor: f,
		md:     newGoldmarkInstance(f),
	}
}

// Flavor returns the configured Markdown flavor.
func (p *Parser) Flavor() string {
	return p.flavor
}

// Parse tokenizes source and masks every non-whitespace token that is not
// entirely inside a prose text segment.
func (p *Parser) Parse(source string) ([]document.Token, error) {
	src := []byte(source)
	root := p.md.Parser().Parse(text.NewReader(src))

	prose, err := collectProse(root)
	if err != nil {
		return nil, err
	}

	tokens := document.Tokenize(source)
	for idx := range tokens {
		tok := &tokens[idx]
		if tok.Kind.IsWhitespace() || covered(prose, tok.Span) {
			continue
		}
		tok.Kind = document.TokUnlintable
		tok.Norm = ""
	}

	return tokens, nil
}

// collectProse returns the sorted, non-overlapping spans of text nodes that
// are not inside code spans.
func collectProse(root ast.Node) ([]document.Span, error) {
	var spans []document.Span

	err := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := node.(type) {
		case *ast.CodeSpan:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			if n.Segment.Len() > 0 {
				spans = append(spans, document.Span{Start: n.Segment.Start, End: n.Segment.Stop})
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(spans, func(i, j int) bool {
		return spans[i].Start < spans[j].Start
	})
	return mergeAdjacent(spans), nil
}

// mergeAdjacent joins spans that touch or overlap so that a word split
// across two text nodes (e.g., around an escaped character) stays lintable.
func mergeAdjacent(spans []document.Span) []document.Span {
	if len(spans) == 0 {
		return spans
	}
	merged := spans[:1]
	for _, span := range spans[1:] {
		last := &merged[len(merged)-1]
		if span.Start <= last.End {
			last.End = max(last.End, span.End)
			continue
		}
		merged = append(merged, span)
	}
	return merged
}

// covered reports whether span lies inside one of the sorted prose spans.
func covered(prose []document.Span, span document.Span) bool {
	idx := sort.Search(len(prose), func(i int) bool {
		return prose[i].End >= span.End
	})
	return idx < len(prose) && prose[idx].Contains(span)
}

// flavorOrDefault returns the flavor if valid, otherwise defaults to GFM.
func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorGFM
	}
}

// newGoldmarkInstance creates a configured goldmark.Markdown instance.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option

	switch flavor {
	case FlavorGFM:
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	case FlavorCommonMark:
		// No extensions for pure CommonMark.
	}

	return goldmark.New(opts...)
}
