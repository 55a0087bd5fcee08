package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goharper/pkg/bridge"
	"github.com/yaklabco/goharper/pkg/version"
)

// Tests in this package share the process-wide library and buffer count,
// so none of them run in parallel.

type liveState struct {
	handles bridge.Stats
	buffers int64
}

func currentState() liveState {
	return liveState{handles: lib().Live(), buffers: liveBuffers.Load()}
}

func text(t *testing.T, s string) cText {
	t.Helper()

	p := hostString(s)
	t.Cleanup(func() { freeHostString(p) })
	return p
}

func newDocument(t *testing.T, s string) cHandle {
	t.Helper()

	doc := harper_create_document(text(t, s))
	require.NotZero(t, doc)
	return doc
}

func newGroup(t *testing.T) cHandle {
	t.Helper()

	group := harper_create_lint_group()
	require.NotZero(t, group)
	return group
}

func mustString(t *testing.T, p cText) string {
	t.Helper()

	s, ok := takeString(p)
	require.True(t, ok, "NULL string")
	return s
}

//nolint:paralleltest // shared library state
func TestDocumentExports(t *testing.T) {
	tests := []struct {
		name   string
		create func(cText) cHandle
	}{
		{"plain", func(p cText) cHandle { return harper_create_document(p) }},
		{"markdown", func(p cText) cHandle { return harper_create_markdown_document(p) }},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			before := currentState()

			doc := testCase.create(text(t, "The cat sat."))
			require.NotZero(t, doc)

			assert.Equal(t, "The cat sat.", mustString(t, harper_get_document_text(doc)))
			count := harper_get_token_count(doc)
			require.Positive(t, int32(count))
			assert.Equal(t, "The", mustString(t, harper_get_token_text(doc, 0)))
			assert.Equal(t, "word", mustString(t, harper_get_token_kind(doc, 0)))
			assert.Equal(t, ".", mustString(t, harper_get_token_text(doc, count-1)))

			assert.Nil(t, harper_get_token_text(doc, count))
			assert.Nil(t, harper_get_token_kind(doc, -1))

			harper_free_document(doc)
			assert.Nil(t, harper_get_document_text(doc), "released handle")
			assert.Equal(t, before, currentState())
		})
	}
}

//nolint:paralleltest // shared library state
func TestCreateDocument_Rejected(t *testing.T) {
	tests := []struct {
		name string
		text func(t *testing.T) cText
	}{
		{"null text", func(*testing.T) cText { return nil }},
		{"invalid UTF-8", func(t *testing.T) cText { return text(t, "caf\xe9") }},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			before := currentState()

			assert.Zero(t, harper_create_document(testCase.text(t)))
			assert.Zero(t, harper_create_markdown_document(testCase.text(t)))
			assert.Equal(t, before, currentState())
		})
	}
}

//nolint:paralleltest // shared library state
func TestExports_NullHandle(t *testing.T) {
	before := currentState()

	stringCalls := []struct {
		name string
		call func() cText
	}{
		{"document text", func() cText { return harper_get_document_text(0) }},
		{"token text", func() cText { return harper_get_token_text(0, 0) }},
		{"token kind", func() cText { return harper_get_token_kind(0, 0) }},
		{"dialect", func() cText { return harper_lint_group_get_dialect(0) }},
		{"lint message", func() cText { return harper_get_lint_message(0) }},
		{"lint kind", func() cText { return harper_get_lint_kind(0) }},
		{"lint rule", func() cText { return harper_get_lint_rule(0) }},
		{"suggestion text", func() cText { return harper_get_suggestion_text(0, 0) }},
	}
	for _, testCase := range stringCalls {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Nil(t, testCase.call())
		})
	}

	rule := text(t, "SpellCheck")
	intCalls := []struct {
		name string
		call func() cInt32
	}{
		{"token count", func() cInt32 { return harper_get_token_count(0) }},
		{"set rule enabled", func() cInt32 { return harper_lint_group_set_rule_enabled(0, rule, 1) }},
		{"get rule enabled", func() cInt32 { return harper_lint_group_get_rule_enabled(0, rule) }},
		{"set dialect", func() cInt32 { return harper_lint_group_set_dialect(0, text(t, "GB")) }},
		{"lint start", func() cInt32 { return harper_get_lint_start(0) }},
		{"lint end", func() cInt32 { return harper_get_lint_end(0) }},
		{"suggestion count", func() cInt32 { return harper_get_suggestion_count(0) }},
	}
	for _, testCase := range intCalls {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, cInt32(-1), testCase.call())
		})
	}

	assert.NotPanics(t, func() {
		harper_free_document(0)
		harper_free_lint_group(0)
	})
	assert.Equal(t, before, currentState())
}

//nolint:paralleltest // shared library state
func TestLintGroupExports(t *testing.T) {
	before := currentState()
	group := newGroup(t)

	assert.Equal(t, "american", mustString(t, harper_lint_group_get_dialect(group)))

	spell := text(t, "SpellCheck")
	assert.Equal(t, cInt32(1), harper_lint_group_get_rule_enabled(group, spell))
	assert.Equal(t, cInt32(0), harper_lint_group_set_rule_enabled(group, text(t, "spell-check"), 0))
	assert.Equal(t, cInt32(0), harper_lint_group_get_rule_enabled(group, spell))

	unknown := text(t, "NoSuchRule")
	assert.Equal(t, cInt32(-1), harper_lint_group_set_rule_enabled(group, unknown, 1))
	assert.Equal(t, cInt32(-1), harper_lint_group_get_rule_enabled(group, unknown))
	assert.Equal(t, cInt32(-1), harper_lint_group_get_rule_enabled(group, nil))

	assert.Equal(t, cInt32(0), harper_lint_group_set_dialect(group, text(t, "GB")))
	assert.Equal(t, "british", mustString(t, harper_lint_group_get_dialect(group)))
	assert.Equal(t, cInt32(-1), harper_lint_group_set_dialect(group, text(t, "martian")))
	assert.Equal(t, "british", mustString(t, harper_lint_group_get_dialect(group)), "failed set keeps dialect")

	harper_free_lint_group(group)
	assert.Nil(t, harper_lint_group_get_dialect(group), "released handle")
	assert.Equal(t, before, currentState())
}

//nolint:paralleltest // shared library state
func TestLintLifecycle(t *testing.T) {
	before := currentState()

	doc := newDocument(t, "Teh cat sat.")
	group := newGroup(t)

	var count cInt32
	lints := harper_get_lints(doc, group, &count)
	require.NotNil(t, lints)
	require.Equal(t, cInt32(1), count)
	assert.False(t, isEmptyLintArray(lints))
	assert.Equal(t, before.buffers+1, liveBuffers.Load(), "lint array is a fresh buffer")

	lint := lintAt(lints, 0)
	var start, end cInt32
	require.Equal(t, cInt32(0), harper_get_lint_range(lint, &start, &end))
	assert.Equal(t, cInt32(0), start)
	assert.Equal(t, cInt32(3), end)
	assert.Equal(t, cInt32(0), harper_get_lint_start(lint))
	assert.Equal(t, cInt32(3), harper_get_lint_end(lint))
	assert.Equal(t, cInt32(-1), harper_get_lint_range(lint, nil, &end))

	assert.NotEmpty(t, mustString(t, harper_get_lint_message(lint)))
	assert.Equal(t, "Spelling", mustString(t, harper_get_lint_kind(lint)))
	assert.Equal(t, "SpellCheck", mustString(t, harper_get_lint_rule(lint)))

	n := harper_get_suggestion_count(lint)
	require.Positive(t, int32(n))
	first := harper_get_suggestion_text(lint, 0)
	second := harper_get_suggestion_text(lint, 0)
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotSame(t, first, second, "each call returns a new buffer")
	assert.Equal(t, "Replace with: “The”", mustString(t, first))
	assert.Equal(t, "Replace with: “The”", mustString(t, second))
	assert.Nil(t, harper_get_suggestion_text(lint, n))
	assert.Nil(t, harper_get_suggestion_text(lint, -1))

	harper_free_lints(lints, count)
	assert.Nil(t, harper_get_lint_message(lint), "released lint")
	assert.Equal(t, cInt32(-1), harper_get_lint_start(lint))

	harper_free_lint_group(group)
	harper_free_document(doc)
	assert.Equal(t, before, currentState())
}

//nolint:paralleltest // shared library state
func TestGetLints_NoFindings(t *testing.T) {
	before := currentState()

	doc := newDocument(t, "The cat sat.")
	group := newGroup(t)

	count := cInt32(7)
	lints := harper_get_lints(doc, group, &count)
	require.NotNil(t, lints, "zero findings still yield an array")
	assert.True(t, isEmptyLintArray(lints))
	assert.Equal(t, cInt32(0), count)
	assert.Equal(t, before.buffers, liveBuffers.Load(), "no buffer for zero findings")

	assert.NotPanics(t, func() { harper_free_lints(lints, 0) })
	assert.NotPanics(t, func() { harper_free_lints(lints, count) })

	harper_free_lint_group(group)
	harper_free_document(doc)
	assert.Equal(t, before, currentState())
}

//nolint:paralleltest // shared library state
func TestGetLints_Failures(t *testing.T) {
	doc := newDocument(t, "Teh cat sat.")
	group := newGroup(t)
	t.Cleanup(func() {
		harper_free_lint_group(group)
		harper_free_document(doc)
	})

	released := newDocument(t, "Teh cat sat.")
	harper_free_document(released)

	tests := []struct {
		name  string
		doc   cHandle
		group cHandle
	}{
		{"null document", 0, group},
		{"null group", doc, 0},
		{"released document", released, group},
		{"unknown group", doc, group + 1<<20},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			before := currentState()

			count := cInt32(7)
			assert.Nil(t, harper_get_lints(testCase.doc, testCase.group, &count))
			assert.Equal(t, cInt32(0), count)
			assert.Equal(t, before, currentState())
		})
	}

	t.Run("null count", func(t *testing.T) {
		before := currentState()

		assert.Nil(t, harper_get_lints(doc, group, nil))
		assert.Equal(t, before, currentState())
	})
}

//nolint:paralleltest // shared library state
func TestFreeLints_Ignored(t *testing.T) {
	before := currentState()

	assert.NotPanics(t, func() {
		harper_free_lints(nil, 0)
		harper_free_lints(nil, 3)
	})
	assert.Equal(t, before, currentState())
}

//nolint:paralleltest // shared library state
func TestVersionExports(t *testing.T) {
	before := currentState()

	assert.Equal(t, version.Library(), mustString(t, harper_get_lib_version()))
	assert.Equal(t, version.CoreVersion(), mustString(t, harper_get_core_version()))
	assert.Equal(t, version.CoreVersion(), mustString(t, harper_get_version()))
	assert.Equal(t, cInt32(version.Encoded()), harper_version())
	assert.Positive(t, int32(harper_version()))

	assert.Equal(t, before, currentState())
}

func panicsWith[T any](start, sentinel T) (out T) {
	defer recoverTo("test", &out, sentinel)
	out = start
	panic("boom")
}

func TestRecoverTo(t *testing.T) {
	t.Parallel()

	start := text(t, "partial")
	tests := []struct {
		name string
		run  func() any
		want any
	}{
		{"int32 sentinel", func() any { return panicsWith[cInt32](5, -1) }, cInt32(-1)},
		{"handle sentinel", func() any { return panicsWith[cHandle](42, 0) }, cHandle(0)},
		{"string sentinel", func() any { return panicsWith[cText](start, nil) }, cText(nil)},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var got any
			require.NotPanics(t, func() { got = testCase.run() })
			assert.Equal(t, testCase.want, got)
		})
	}

	assert.NotPanics(t, func() {
		defer recovered("test")
		panic("boom")
	})
}
