// Package handle provides typed handle tables for Go values that are owned
// by code on the other side of the C boundary.
//
// C code may not retain Go pointers, so every object handed across the
// boundary is registered in a Table and represented by an integer Handle.
// Handle values come from a single process-wide counter: a value is never
// reused, and a handle registered in one table is never valid in another.
//
// A Table guards only its own map. It does not synchronize access to the
// values it stores; callers that share a value between goroutines must
// coordinate themselves.
package handle

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// Handle is an opaque reference to a registered value. Zero is the null handle.
type Handle uintptr

// Null is the null handle.
const Null Handle = 0

// Lookup and release errors.
var (
	// ErrNullHandle indicates the null handle was passed.
	ErrNullHandle = errors.New("null handle")

	// ErrInvalidHandle indicates the handle is not registered in the table.
	ErrInvalidHandle = errors.New("invalid handle")

	// ErrReleasedHandle indicates the handle was registered and then released.
	// Only reported by tables with poisoning enabled.
	ErrReleasedHandle = errors.New("handle used after release")
)

//nolint:gochecknoglobals // Process-wide counter keeps handle values unique across tables.
var nextHandle atomic.Uintptr

func allocate() Handle {
	return Handle(nextHandle.Add(1))
}

// Options configures a Table.
type Options struct {
	// Name identifies the table in error messages (e.g., "document").
	Name string

	// Poison records released handles as tombstones so that later use is
	// reported as ErrReleasedHandle instead of ErrInvalidHandle.
	Poison bool
}

// Table maps handles to values of a single type.
type Table[T any] struct {
	name    string
	poison  bool
	mu      sync.RWMutex
	entries map[Handle]T
	dead    map[Handle]struct{}
}

// NewTable creates an empty table.
func NewTable[T any](opts Options) *Table[T] {
	t := &Table[T]{
		name:    opts.Name,
		poison:  opts.Poison,
		entries: make(map[Handle]T),
	}
	if opts.Poison {
		t.dead = make(map[Handle]struct{})
	}
	return t
}

// Name returns the table name.
func (t *Table[T]) Name() string {
	return t.name
}

// Register stores v and returns its new handle. Registration is the last
// step of constructing a boundary object, so a handle is never observed
// before its value is complete.
func (t *Table[T]) Register(v T) Handle {
	h := allocate()

	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[h] = v
	return h
}

// Lookup returns the value registered under h.
func (t *Table[T]) Lookup(h Handle) (T, error) {
	var zero T
	if h == Null {
		return zero, t.wrap(h, ErrNullHandle)
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	if v, ok := t.entries[h]; ok {
		return v, nil
	}
	return zero, t.wrap(h, t.missing(h))
}

// Release removes h from the table and returns the value it referenced.
// Releasing Null is reported as ErrNullHandle so callers can treat it as a no-op.
func (t *Table[T]) Release(h Handle) (T, error) {
	var zero T
	if h == Null {
		return zero, t.wrap(h, ErrNullHandle)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	v, ok := t.entries[h]
	if !ok {
		return zero, t.wrap(h, t.missing(h))
	}
	delete(t.entries, h)
	if t.poison {
		t.dead[h] = struct{}{}
	}
	return v, nil
}

// Len returns the number of live handles.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// missing classifies an unknown handle. Must be called with the lock held.
func (t *Table[T]) missing(h Handle) error {
	if t.poison {
		if _, ok := t.dead[h]; ok {
			return ErrReleasedHandle
		}
	}
	return ErrInvalidHandle
}

func (t *Table[T]) wrap(h Handle, err error) error {
	return fmt.Errorf("%s handle %#x: %w", t.name, uintptr(h), err)
}
