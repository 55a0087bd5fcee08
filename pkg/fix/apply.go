package fix

import "strings"

// Apply applies a sorted, validated slice of edits to source.
// Edits must be prepared with Prepare before calling.
func Apply(source string, edits []TextEdit) string {
	if len(edits) == 0 {
		return source
	}

	delta := 0
	for _, e := range edits {
		delta += e.Delta()
	}

	var out strings.Builder
	out.Grow(max(len(source)+delta, 0))

	cursor := 0
	for _, e := range edits {
		out.WriteString(source[cursor:e.StartOffset])
		out.WriteString(e.NewText)
		cursor = e.EndOffset
	}
	out.WriteString(source[cursor:])

	return out.String()
}
