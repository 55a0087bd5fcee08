package fix

import (
	"cmp"
	"fmt"
	"slices"
)

// ValidationError describes an edit whose range does not fit the source.
type ValidationError struct {
	Edit    TextEdit
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.StartOffset, e.Edit.EndOffset, e.Message)
}

// Validate checks that every edit lies within a source of sourceLen bytes.
func Validate(edits []TextEdit, sourceLen int) error {
	for _, edit := range edits {
		switch {
		case edit.StartOffset < 0:
			return &ValidationError{Edit: edit, Message: "start offset is negative"}
		case edit.EndOffset < edit.StartOffset:
			return &ValidationError{Edit: edit, Message: "end offset is before start offset"}
		case edit.EndOffset > sourceLen:
			return &ValidationError{
				Edit:    edit,
				Message: fmt.Sprintf("end offset %d exceeds source length %d", edit.EndOffset, sourceLen),
			}
		}
	}
	return nil
}

// Sort orders edits by start offset, then end offset.
func Sort(edits []TextEdit) {
	slices.SortStableFunc(edits, func(a, b TextEdit) int {
		if c := cmp.Compare(a.StartOffset, b.StartOffset); c != 0 {
			return c
		}
		return cmp.Compare(a.EndOffset, b.EndOffset)
	})
}

// Resolve walks sorted edits and drops the ones that overlap an earlier
// accepted edit. Overlapping deletions are merged into one covering their
// union. Returns the accepted edits, the skipped edits and the number of merges.
func Resolve(edits []TextEdit) ([]TextEdit, []TextEdit, int) {
	if len(edits) == 0 {
		return nil, nil, 0
	}

	accepted := make([]TextEdit, 0, len(edits))
	var skipped []TextEdit
	merged := 0

	current := edits[0]
	for _, edit := range edits[1:] {
		switch {
		case !conflicts(current, edit):
			accepted = append(accepted, current)
			current = edit
		case current.IsDeletion() && edit.IsDeletion():
			current = Delete(min(current.StartOffset, edit.StartOffset), max(current.EndOffset, edit.EndOffset))
			merged++
		default:
			skipped = append(skipped, edit)
		}
	}
	accepted = append(accepted, current)

	return accepted, skipped, merged
}

// conflicts reports whether next, sorted after prev, cannot be applied
// together with it. Two insertions at one offset conflict because their
// order is ambiguous.
func conflicts(prev, next TextEdit) bool {
	if next.StartOffset < prev.EndOffset {
		return true
	}
	return prev.StartOffset == prev.EndOffset &&
		next.StartOffset == next.EndOffset &&
		prev.StartOffset == next.StartOffset
}

// Prepare validates, sorts and resolves conflicting edits. The input slice is
// not modified. The error is only for out-of-range edits; conflicts are
// reported through the skipped slice.
func Prepare(edits []TextEdit, sourceLen int) ([]TextEdit, []TextEdit, int, error) {
	if len(edits) == 0 {
		return nil, nil, 0, nil
	}

	if err := Validate(edits, sourceLen); err != nil {
		return nil, nil, 0, err
	}

	sorted := slices.Clone(edits)
	Sort(sorted)

	accepted, skipped, merged := Resolve(sorted)
	return accepted, skipped, merged, nil
}
