package document

// TokenKind classifies a token.
type TokenKind uint8

// Token kinds. Every byte of a document belongs to exactly one token.
const (
	TokWord TokenKind = iota
	TokSpace
	TokNewline
	TokPunctuation
	TokNumber

	// TokUnlintable covers source that no rule may inspect, such as
	// Markdown syntax or code.
	TokUnlintable
)

// tokenKindNames maps kinds to the names used across the C boundary.
//
//nolint:gochecknoglobals // Read-only lookup table.
var tokenKindNames = [...]string{
	TokWord:        "word",
	TokSpace:       "space",
	TokNewline:     "newline",
	TokPunctuation: "punctuation",
	TokNumber:      "number",
	TokUnlintable:  "unlintable",
}

// String returns the lower-case kind name.
func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "unknown"
}

// IsWhitespace reports whether the kind is a space or a newline.
func (k TokenKind) IsWhitespace() bool {
	return k == TokSpace || k == TokNewline
}

// Span is a half-open byte range [Start, End) into a document's text.
type Span struct {
	Start int
	End   int
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// Token is a classified span of the source.
type Token struct {
	// Span is the byte range this token covers.
	Span Span

	// Kind classifies the token.
	Kind TokenKind

	// Norm is the case-folded, NFC-normalized form of a word token, used for
	// dictionary lookups. Empty for other kinds.
	Norm string
}

// Text returns the token's source text.
func (t Token) Text(source string) string {
	if t.Span.Start < 0 || t.Span.End > len(source) || t.Span.Start > t.Span.End {
		return ""
	}
	return source[t.Span.Start:t.Span.End]
}

// ValidateTokens checks that tokens are contiguous, non-overlapping and
// cover [0, sourceLen) exactly.
func ValidateTokens(tokens []Token, sourceLen int) bool {
	if len(tokens) == 0 {
		return sourceLen == 0
	}
	if tokens[0].Span.Start != 0 {
		return false
	}
	for i, tok := range tokens {
		if tok.Span.End <= tok.Span.Start {
			return false
		}
		if i > 0 && tok.Span.Start != tokens[i-1].Span.End {
			return false
		}
	}
	return tokens[len(tokens)-1].Span.End == sourceLen
}
