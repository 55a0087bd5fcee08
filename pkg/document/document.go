// Package document provides the document model consumed by the lint engine:
// an immutable source text together with a token stream that covers every
// byte of it.
package document

import (
	"errors"
	"fmt"
)

// ErrInvalidTokens indicates a parser produced tokens that do not cover the source.
var ErrInvalidTokens = errors.New("invalid token stream")

// Parser turns source text into a token stream.
//
// Implementations must return tokens that satisfy ValidateTokens for the
// given source and must not retain or mutate it.
type Parser interface {
	Parse(source string) ([]Token, error)
}

// PlainEnglish is the curated plain-text front end: Unicode word
// segmentation with normalized word forms.
type PlainEnglish struct{}

// Parse implements Parser.
func (PlainEnglish) Parse(source string) ([]Token, error) {
	return Tokenize(source), nil
}

// Document is an immutable text and its tokens. A Document is safe for
// concurrent reads.
type Document struct {
	source string
	tokens []Token
	lines  []Line
}

// New parses source with p.
func New(p Parser, source string) (*Document, error) {
	tokens, err := p.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if !ValidateTokens(tokens, len(source)) {
		return nil, ErrInvalidTokens
	}

	return &Document{
		source: source,
		tokens: tokens,
		lines:  BuildLines(source),
	}, nil
}

// NewPlainEnglish builds a document with the PlainEnglish front end.
func NewPlainEnglish(source string) *Document {
	tokens := Tokenize(source)
	return &Document{
		source: source,
		tokens: tokens,
		lines:  BuildLines(source),
	}
}

// FullText returns the document text, reconstructed from its tokens.
func (d *Document) FullText() string {
	if len(d.tokens) == 0 {
		return ""
	}
	return d.source[d.tokens[0].Span.Start:d.tokens[len(d.tokens)-1].Span.End]
}

// Tokens returns the token stream. The slice is shared and must not be modified.
func (d *Document) Tokens() []Token {
	return d.tokens
}

// TokenCount returns the number of tokens.
func (d *Document) TokenCount() int {
	return len(d.tokens)
}

// Token returns the token at index.
func (d *Document) Token(index int) (Token, bool) {
	if index < 0 || index >= len(d.tokens) {
		return Token{}, false
	}
	return d.tokens[index], true
}

// SpanText returns the source text covered by span.
func (d *Document) SpanText(span Span) string {
	if span.Start < 0 || span.End > len(d.source) || span.Start > span.End {
		return ""
	}
	return d.source[span.Start:span.End]
}

// TokenText returns the source text of tok.
func (d *Document) TokenText(tok Token) string {
	return d.SpanText(tok.Span)
}

// Len returns the document length in bytes.
func (d *Document) Len() int {
	return len(d.source)
}
