// Package marshal converts text between the C boundary representation
// (NUL-terminated byte buffers) and the engine's Go strings.
//
// Inbound text must be valid UTF-8. Outbound text must not contain an
// embedded NUL byte, since the C side could not tell it apart from the
// terminator. Both directions always copy: a converted value never aliases
// the buffer it came from.
package marshal

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Boundary error taxonomy.
var (
	// ErrNullInput indicates a required pointer argument was NULL.
	ErrNullInput = errors.New("null input")

	// ErrInvalidUTF8 indicates inbound text failed UTF-8 validation.
	ErrInvalidUTF8 = errors.New("invalid utf-8")

	// ErrInteriorNul indicates outbound text contains a NUL byte.
	ErrInteriorNul = errors.New("interior nul byte")

	// ErrOutOfBounds indicates an index or size outside the permitted range.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrAllocationFailure indicates the output buffer could not be allocated.
	ErrAllocationFailure = errors.New("allocation failure")
)

// Direction names used in Error.Op.
const (
	OpInbound  = "inbound"
	OpOutbound = "outbound"
)

// Error describes a marshalling failure at a specific byte offset.
type Error struct {
	// Op is OpInbound or OpOutbound.
	Op string

	// Offset is the byte offset of the offending sequence.
	Offset int

	// Err is the underlying sentinel error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s marshal at byte %d: %v", e.Op, e.Offset, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ToInternal validates caller-provided bytes and returns them as a string.
// A nil slice is treated as a NULL pointer; an empty, non-nil slice is the
// empty string.
func ToInternal(b []byte) (string, error) {
	if b == nil {
		return "", ErrNullInput
	}
	if offset := invalidUTF8Offset(b); offset >= 0 {
		return "", &Error{Op: OpInbound, Offset: offset, Err: ErrInvalidUTF8}
	}
	return string(b), nil
}

// FromInternal returns a fresh copy of s suitable for a NUL-terminated
// buffer. The terminator itself is added by the allocator on the C side.
func FromInternal(s string) ([]byte, error) {
	if idx := strings.IndexByte(s, 0); idx >= 0 {
		return nil, &Error{Op: OpOutbound, Offset: idx, Err: ErrInteriorNul}
	}
	out := make([]byte, len(s))
	copy(out, s)
	return out, nil
}

// invalidUTF8Offset returns the offset of the first invalid sequence, or -1.
func invalidUTF8Offset(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}
	for offset := 0; offset < len(b); {
		r, size := utf8.DecodeRune(b[offset:])
		if r == utf8.RuneError && size <= 1 {
			return offset
		}
		offset += size
	}
	return -1
}
