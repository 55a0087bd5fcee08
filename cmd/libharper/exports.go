package main

/*
#include <stdint.h>
*/
import "C"

import (
	"context"
	"fmt"

	"github.com/yaklabco/goharper/internal/logging"
	"github.com/yaklabco/goharper/pkg/handle"
	"github.com/yaklabco/goharper/pkg/marshal"
)

//nolint:gochecknoglobals // Sentinel error.
var errNullOutput = fmt.Errorf("output pointer: %w", marshal.ErrNullInput)

// recoverTo keeps a Go panic from unwinding into C. The panic is logged
// and out is set to the call's sentinel. It must be deferred directly.
func recoverTo[T any](op string, out *T, sentinel T) {
	if r := recover(); r != nil {
		logging.Default().Error("recovered panic", logging.FieldOp, op, logging.FieldPanic, r)
		*out = sentinel
	}
}

// recovered is recoverTo for functions without a result.
func recovered(op string) {
	if r := recover(); r != nil {
		logging.Default().Error("recovered panic", logging.FieldOp, op, logging.FieldPanic, r)
	}
}

func fail(op string, err error) {
	lib().Logger().Debug("call failed", logging.FieldOp, op, logging.FieldError, err)
}

func stringResult(op string, b []byte, err error) *C.char {
	if err != nil {
		fail(op, err)
		return nil
	}
	p, err := cString(b)
	if err != nil {
		fail(op, err)
		return nil
	}
	return p
}

func int32Result(op string, n int32, err error) C.int32_t {
	if err != nil {
		fail(op, err)
		return -1
	}
	return C.int32_t(n)
}

func statusResult(op string, err error) C.int32_t {
	if err != nil {
		fail(op, err)
		return -1
	}
	return 0
}

func handleResult(op string, h handle.Handle, err error) C.uintptr_t {
	if err != nil {
		fail(op, err)
		return 0
	}
	return C.uintptr_t(h)
}

// Documents

//export harper_create_document
func harper_create_document(text *C.char) (doc C.uintptr_t) {
	const op = "harper_create_document"
	defer recoverTo(op, &doc, 0)

	h, err := lib().CreateDocument(goBytes(text))
	return handleResult(op, h, err)
}

//export harper_create_markdown_document
func harper_create_markdown_document(text *C.char) (doc C.uintptr_t) {
	const op = "harper_create_markdown_document"
	defer recoverTo(op, &doc, 0)

	h, err := lib().CreateMarkdownDocument(goBytes(text))
	return handleResult(op, h, err)
}

//export harper_free_document
func harper_free_document(doc C.uintptr_t) {
	const op = "harper_free_document"
	defer recovered(op)

	if err := lib().FreeDocument(handle.Handle(doc)); err != nil {
		fail(op, err)
	}
}

//export harper_get_document_text
func harper_get_document_text(doc C.uintptr_t) (text *C.char) {
	const op = "harper_get_document_text"
	defer recoverTo(op, &text, nil)

	b, err := lib().DocumentText(handle.Handle(doc))
	return stringResult(op, b, err)
}

//export harper_get_token_count
func harper_get_token_count(doc C.uintptr_t) (count C.int32_t) {
	const op = "harper_get_token_count"
	defer recoverTo(op, &count, -1)

	n, err := lib().TokenCount(handle.Handle(doc))
	return int32Result(op, n, err)
}

//export harper_get_token_text
func harper_get_token_text(doc C.uintptr_t, index C.int32_t) (text *C.char) {
	const op = "harper_get_token_text"
	defer recoverTo(op, &text, nil)

	b, err := lib().TokenText(handle.Handle(doc), int32(index))
	return stringResult(op, b, err)
}

//export harper_get_token_kind
func harper_get_token_kind(doc C.uintptr_t, index C.int32_t) (kind *C.char) {
	const op = "harper_get_token_kind"
	defer recoverTo(op, &kind, nil)

	b, err := lib().TokenKind(handle.Handle(doc), int32(index))
	return stringResult(op, b, err)
}

// Lint groups

//export harper_create_lint_group
func harper_create_lint_group() (group C.uintptr_t) {
	const op = "harper_create_lint_group"
	defer recoverTo(op, &group, 0)

	h, err := lib().CreateLintGroup()
	return handleResult(op, h, err)
}

//export harper_free_lint_group
func harper_free_lint_group(group C.uintptr_t) {
	const op = "harper_free_lint_group"
	defer recovered(op)

	if err := lib().FreeLintGroup(handle.Handle(group)); err != nil {
		fail(op, err)
	}
}

//export harper_lint_group_set_rule_enabled
func harper_lint_group_set_rule_enabled(group C.uintptr_t, rule *C.char, enabled C.int32_t) (status C.int32_t) {
	const op = "harper_lint_group_set_rule_enabled"
	defer recoverTo(op, &status, -1)

	return statusResult(op, lib().SetRuleEnabled(handle.Handle(group), goBytes(rule), enabled != 0))
}

//export harper_lint_group_get_rule_enabled
func harper_lint_group_get_rule_enabled(group C.uintptr_t, rule *C.char) (enabled C.int32_t) {
	const op = "harper_lint_group_get_rule_enabled"
	defer recoverTo(op, &enabled, -1)

	on, err := lib().RuleEnabled(handle.Handle(group), goBytes(rule))
	if err != nil {
		fail(op, err)
		return -1
	}
	if on {
		return 1
	}
	return 0
}

//export harper_lint_group_set_dialect
func harper_lint_group_set_dialect(group C.uintptr_t, dialect *C.char) (status C.int32_t) {
	const op = "harper_lint_group_set_dialect"
	defer recoverTo(op, &status, -1)

	return statusResult(op, lib().SetDialect(handle.Handle(group), goBytes(dialect)))
}

//export harper_lint_group_get_dialect
func harper_lint_group_get_dialect(group C.uintptr_t) (dialect *C.char) {
	const op = "harper_lint_group_get_dialect"
	defer recoverTo(op, &dialect, nil)

	b, err := lib().Dialect(handle.Handle(group))
	return stringResult(op, b, err)
}

// Lints

//export harper_get_lints
func harper_get_lints(doc, group C.uintptr_t, count *C.int32_t) (lints *C.uintptr_t) {
	const op = "harper_get_lints"
	defer recoverTo(op, &lints, nil)

	if count == nil {
		fail(op, errNullOutput)
		return nil
	}
	*count = 0

	b := lib()
	handles, err := b.Lints(context.Background(), handle.Handle(doc), handle.Handle(group))
	if err != nil {
		fail(op, err)
		return nil
	}

	arr, err := allocLints(handles)
	if err != nil {
		fail(op, err)
		if freeErr := b.FreeLints(handles); freeErr != nil {
			fail(op, freeErr)
		}
		return nil
	}

	*count = C.int32_t(len(handles))
	return arr
}

//export harper_free_lints
func harper_free_lints(lints *C.uintptr_t, count C.int32_t) {
	const op = "harper_free_lints"
	defer recovered(op)

	if lints == nil || count <= 0 {
		return
	}
	if err := lib().FreeLints(lintHandles(lints, count)); err != nil {
		fail(op, err)
	}
	freeLintArray(lints)
}

//export harper_get_lint_message
func harper_get_lint_message(lint C.uintptr_t) (message *C.char) {
	const op = "harper_get_lint_message"
	defer recoverTo(op, &message, nil)

	b, err := lib().LintMessage(handle.Handle(lint))
	return stringResult(op, b, err)
}

//export harper_get_lint_start
func harper_get_lint_start(lint C.uintptr_t) (start C.int32_t) {
	const op = "harper_get_lint_start"
	defer recoverTo(op, &start, -1)

	n, err := lib().LintStart(handle.Handle(lint))
	return int32Result(op, n, err)
}

//export harper_get_lint_end
func harper_get_lint_end(lint C.uintptr_t) (end C.int32_t) {
	const op = "harper_get_lint_end"
	defer recoverTo(op, &end, -1)

	n, err := lib().LintEnd(handle.Handle(lint))
	return int32Result(op, n, err)
}

// harper_get_lint_range writes both offsets, or neither on failure.
//
//export harper_get_lint_range
func harper_get_lint_range(lint C.uintptr_t, start, end *C.int32_t) (status C.int32_t) {
	const op = "harper_get_lint_range"
	defer recoverTo(op, &status, -1)

	if start == nil || end == nil {
		fail(op, errNullOutput)
		return -1
	}
	s, e, err := lib().LintRange(handle.Handle(lint))
	if err != nil {
		fail(op, err)
		return -1
	}
	*start, *end = C.int32_t(s), C.int32_t(e)
	return 0
}

//export harper_get_lint_kind
func harper_get_lint_kind(lint C.uintptr_t) (kind *C.char) {
	const op = "harper_get_lint_kind"
	defer recoverTo(op, &kind, nil)

	b, err := lib().LintKind(handle.Handle(lint))
	return stringResult(op, b, err)
}

//export harper_get_lint_rule
func harper_get_lint_rule(lint C.uintptr_t) (rule *C.char) {
	const op = "harper_get_lint_rule"
	defer recoverTo(op, &rule, nil)

	b, err := lib().LintRule(handle.Handle(lint))
	return stringResult(op, b, err)
}

//export harper_get_suggestion_count
func harper_get_suggestion_count(lint C.uintptr_t) (count C.int32_t) {
	const op = "harper_get_suggestion_count"
	defer recoverTo(op, &count, -1)

	n, err := lib().SuggestionCount(handle.Handle(lint))
	return int32Result(op, n, err)
}

//export harper_get_suggestion_text
func harper_get_suggestion_text(lint C.uintptr_t, index C.int32_t) (text *C.char) {
	const op = "harper_get_suggestion_text"
	defer recoverTo(op, &text, nil)

	b, err := lib().SuggestionText(handle.Handle(lint), int32(index))
	return stringResult(op, b, err)
}

// Versions

//export harper_get_lib_version
func harper_get_lib_version() (v *C.char) {
	const op = "harper_get_lib_version"
	defer recoverTo(op, &v, nil)

	b, err := lib().LibVersion()
	return stringResult(op, b, err)
}

//export harper_get_core_version
func harper_get_core_version() (v *C.char) {
	const op = "harper_get_core_version"
	defer recoverTo(op, &v, nil)

	b, err := lib().CoreVersion()
	return stringResult(op, b, err)
}

//export harper_get_version
func harper_get_version() (v *C.char) {
	const op = "harper_get_version"
	defer recoverTo(op, &v, nil)

	b, err := lib().CoreVersion()
	return stringResult(op, b, err)
}

//export harper_version
func harper_version() (v C.int32_t) {
	defer recoverTo("harper_version", &v, -1)

	return C.int32_t(lib().VersionCode())
}
