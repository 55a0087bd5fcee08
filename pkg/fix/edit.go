// Package fix turns lint suggestions into byte-range text edits and applies
// them to a document's source.
package fix

// TextEdit replaces bytes [StartOffset, EndOffset) of a source text.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// Replace returns an edit that replaces [start, end) with text.
func Replace(start, end int, text string) TextEdit {
	return TextEdit{StartOffset: start, EndOffset: end, NewText: text}
}

// Insert returns an edit that inserts text at offset.
func Insert(offset int, text string) TextEdit {
	return Replace(offset, offset, text)
}

// Delete returns an edit that removes [start, end).
func Delete(start, end int) TextEdit {
	return Replace(start, end, "")
}

// IsDeletion reports whether the edit only removes text.
func (e TextEdit) IsDeletion() bool {
	return e.NewText == "" && e.EndOffset > e.StartOffset
}

// Delta is the change in length the edit causes.
func (e TextEdit) Delta() int {
	return len(e.NewText) - (e.EndOffset - e.StartOffset)
}
