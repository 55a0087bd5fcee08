package bridge

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/goharper/internal/logging"
	"github.com/yaklabco/goharper/pkg/handle"
	"github.com/yaklabco/goharper/pkg/lint"
)

// Lints runs the group's rules against the document and registers every
// finding as its own lint handle, in engine order. No findings yields a
// non-nil empty slice.
//
// A failing rule does not fail the call: its error is logged and the
// findings of the other rules are returned. Cancellation does fail it, and
// then no handle is registered.
func (b *Bridge) Lints(ctx context.Context, docHandle, groupHandle handle.Handle) ([]handle.Handle, error) {
	doc, err := b.document(docHandle)
	if err != nil {
		return nil, err
	}
	group, err := b.group(groupHandle)
	if err != nil {
		return nil, err
	}

	found, err := group.Lint(ctx, doc)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("lint: %w", ctxErr)
	}
	if err != nil {
		b.logger.Warn("some rules failed", logging.FieldError, err)
	}
	if _, err := toInt32(len(found)); err != nil {
		return nil, fmt.Errorf("lint count: %w", err)
	}

	handles := make([]handle.Handle, 0, len(found))
	for _, l := range found {
		handles = append(handles, b.lints.Register(l))
	}

	b.logger.Debug("document linted",
		logging.FieldHandle, uintptr(docHandle),
		logging.FieldLints, len(handles),
	)
	return handles, nil
}

// FreeLints releases every non-null lint handle. All handles are attempted
// even when some fail; the failures are joined.
func (b *Bridge) FreeLints(handles []handle.Handle) error {
	var errs []error
	for _, h := range handles {
		if h == handle.Null {
			continue
		}
		if _, err := b.lints.Release(h); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (b *Bridge) lint(h handle.Handle) (lint.Lint, error) {
	return b.lints.Lookup(h)
}

// LintMessage returns the message of a lint.
func (b *Bridge) LintMessage(h handle.Handle) ([]byte, error) {
	l, err := b.lint(h)
	if err != nil {
		return nil, err
	}
	return outString(l.Message)
}

// LintRange returns the half-open byte span of a lint.
func (b *Bridge) LintRange(h handle.Handle) (int32, int32, error) {
	l, err := b.lint(h)
	if err != nil {
		return -1, -1, err
	}
	start, err := toInt32(l.Span.Start)
	if err != nil {
		return -1, -1, err
	}
	end, err := toInt32(l.Span.End)
	if err != nil {
		return -1, -1, err
	}
	return start, end, nil
}

// LintStart returns the first byte offset of a lint.
func (b *Bridge) LintStart(h handle.Handle) (int32, error) {
	start, _, err := b.LintRange(h)
	return start, err
}

// LintEnd returns the byte offset just past a lint.
func (b *Bridge) LintEnd(h handle.Handle) (int32, error) {
	_, end, err := b.LintRange(h)
	return end, err
}

// LintKind returns the kind name of a lint, such as "Spelling".
func (b *Bridge) LintKind(h handle.Handle) ([]byte, error) {
	l, err := b.lint(h)
	if err != nil {
		return nil, err
	}
	return outString(l.Kind.String())
}

// LintRule returns the ID of the rule that produced a lint.
func (b *Bridge) LintRule(h handle.Handle) ([]byte, error) {
	l, err := b.lint(h)
	if err != nil {
		return nil, err
	}
	return outString(l.Rule)
}

// SuggestionCount returns the number of suggestions attached to a lint.
func (b *Bridge) SuggestionCount(h handle.Handle) (int32, error) {
	l, err := b.lint(h)
	if err != nil {
		return -1, err
	}
	return toInt32(len(l.Suggestions))
}

// SuggestionText renders the suggestion at index, such as
// `Replace with: “The”`.
func (b *Bridge) SuggestionText(h handle.Handle, index int32) ([]byte, error) {
	l, err := b.lint(h)
	if err != nil {
		return nil, err
	}
	if err := checkIndex(index, len(l.Suggestions)); err != nil {
		return nil, err
	}
	return outString(l.Suggestions[index].String())
}
