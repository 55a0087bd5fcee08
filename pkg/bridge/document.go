package bridge

import (
	"fmt"

	"github.com/yaklabco/goharper/internal/logging"
	"github.com/yaklabco/goharper/pkg/document"
	"github.com/yaklabco/goharper/pkg/handle"
	"github.com/yaklabco/goharper/pkg/marshal"
)

// CreateDocument builds a plain-English document from text. A nil slice
// stands for a NULL pointer. The handle is registered only after the
// document is complete.
func (b *Bridge) CreateDocument(text []byte) (handle.Handle, error) {
	source, err := b.inDocument(text)
	if err != nil {
		return handle.Null, err
	}
	return b.registerDocument(document.NewPlainEnglish(source), "plain")
}

// CreateMarkdownDocument builds a document whose Markdown syntax, code and
// link destinations are unlintable.
func (b *Bridge) CreateMarkdownDocument(text []byte) (handle.Handle, error) {
	source, err := b.inDocument(text)
	if err != nil {
		return handle.Null, err
	}
	doc, err := document.New(b.markdown, source)
	if err != nil {
		return handle.Null, fmt.Errorf("parse markdown: %w", err)
	}
	return b.registerDocument(doc, "markdown")
}

func (b *Bridge) inDocument(text []byte) (string, error) {
	if text != nil && len(text) > b.maxBytes {
		return "", fmt.Errorf("document of %d bytes exceeds limit of %d: %w",
			len(text), b.maxBytes, marshal.ErrOutOfBounds)
	}
	return inString(text)
}

func (b *Bridge) registerDocument(doc *document.Document, parser string) (handle.Handle, error) {
	h := b.documents.Register(doc)
	b.logger.Debug("document created",
		logging.FieldHandle, uintptr(h),
		logging.FieldParser, parser,
		logging.FieldBytes, doc.Len(),
		logging.FieldTokens, doc.TokenCount(),
	)
	return h, nil
}

// FreeDocument releases a document handle. Releasing Null is a no-op.
func (b *Bridge) FreeDocument(h handle.Handle) error {
	if h == handle.Null {
		return nil
	}
	if _, err := b.documents.Release(h); err != nil {
		return err
	}
	b.logger.Debug("document released", logging.FieldHandle, uintptr(h))
	return nil
}

func (b *Bridge) document(h handle.Handle) (*document.Document, error) {
	return b.documents.Lookup(h)
}

// DocumentText returns the full text of the document.
func (b *Bridge) DocumentText(h handle.Handle) ([]byte, error) {
	doc, err := b.document(h)
	if err != nil {
		return nil, err
	}
	return outString(doc.FullText())
}

// TokenCount returns the number of tokens in the document.
func (b *Bridge) TokenCount(h handle.Handle) (int32, error) {
	doc, err := b.document(h)
	if err != nil {
		return -1, err
	}
	return toInt32(doc.TokenCount())
}

// TokenText returns the source text spanned by the token at index.
func (b *Bridge) TokenText(h handle.Handle, index int32) ([]byte, error) {
	doc, tok, err := b.token(h, index)
	if err != nil {
		return nil, err
	}
	return outString(doc.TokenText(tok))
}

// TokenKind returns the kind name of the token at index.
func (b *Bridge) TokenKind(h handle.Handle, index int32) ([]byte, error) {
	_, tok, err := b.token(h, index)
	if err != nil {
		return nil, err
	}
	return outString(tok.Kind.String())
}

func (b *Bridge) token(h handle.Handle, index int32) (*document.Document, document.Token, error) {
	doc, err := b.document(h)
	if err != nil {
		return nil, document.Token{}, err
	}
	if err := checkIndex(index, doc.TokenCount()); err != nil {
		return nil, document.Token{}, err
	}
	tok, ok := doc.Token(int(index))
	if !ok {
		return nil, document.Token{}, fmt.Errorf("token %d: %w", index, marshal.ErrOutOfBounds)
	}
	return doc, tok, nil
}
