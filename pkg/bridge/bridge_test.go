package bridge_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goharper/pkg/bridge"
	"github.com/yaklabco/goharper/pkg/config"
	"github.com/yaklabco/goharper/pkg/dictionary"
	"github.com/yaklabco/goharper/pkg/handle"
	"github.com/yaklabco/goharper/pkg/lint"
	"github.com/yaklabco/goharper/pkg/marshal"
)

func newBridge(t *testing.T, cfg *config.Config) *bridge.Bridge {
	t.Helper()

	b, err := bridge.New(cfg, nil)
	require.NoError(t, err)
	return b
}

func createDocument(t *testing.T, b *bridge.Bridge, text string) handle.Handle {
	t.Helper()

	h, err := b.CreateDocument([]byte(text))
	require.NoError(t, err)
	require.NotEqual(t, handle.Null, h)
	return h
}

func createGroup(t *testing.T, b *bridge.Bridge) handle.Handle {
	t.Helper()

	h, err := b.CreateLintGroup()
	require.NoError(t, err)
	require.NotEqual(t, handle.Null, h)
	return h
}

func TestDocument_RoundTrip(t *testing.T) {
	t.Parallel()

	b := newBridge(t, nil)
	doc := createDocument(t, b, "The cat sat.")
	defer func() { require.NoError(t, b.FreeDocument(doc)) }()

	text, err := b.DocumentText(doc)
	require.NoError(t, err)
	assert.Equal(t, "The cat sat.", string(text))

	count, err := b.TokenCount(doc)
	require.NoError(t, err)
	assert.Equal(t, int32(6), count)

	var rebuilt strings.Builder
	for i := range count {
		tok, err := b.TokenText(doc, i)
		require.NoError(t, err)
		rebuilt.Write(tok)
	}
	assert.Equal(t, "The cat sat.", rebuilt.String())

	first, err := b.TokenText(doc, 0)
	require.NoError(t, err)
	assert.Equal(t, "The", string(first))

	kind, err := b.TokenKind(doc, 5)
	require.NoError(t, err)
	assert.Equal(t, "punctuation", string(kind))
}

func TestDocument_Empty(t *testing.T) {
	t.Parallel()

	b := newBridge(t, nil)
	doc := createDocument(t, b, "")

	count, err := b.TokenCount(doc)
	require.NoError(t, err)
	assert.Equal(t, int32(0), count)

	text, err := b.DocumentText(doc)
	require.NoError(t, err)
	assert.Empty(t, text)

	_, err = b.TokenText(doc, 0)
	require.ErrorIs(t, err, marshal.ErrOutOfBounds)
}

func TestDocument_InvalidInput(t *testing.T) {
	t.Parallel()

	b := newBridge(t, nil)

	h, err := b.CreateDocument(nil)
	require.ErrorIs(t, err, marshal.ErrNullInput)
	assert.Equal(t, handle.Null, h)

	h, err = b.CreateDocument([]byte("bad \xff byte"))
	require.ErrorIs(t, err, marshal.ErrInvalidUTF8)
	assert.Equal(t, handle.Null, h)

	var merr *marshal.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, 4, merr.Offset)

	h, err = b.CreateMarkdownDocument(nil)
	require.ErrorIs(t, err, marshal.ErrNullInput)
	assert.Equal(t, handle.Null, h)

	assert.Zero(t, b.Live().Documents)
}

func TestDocument_MaxBytes(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Bridge.MaxDocumentBytes = 8
	b := newBridge(t, cfg)

	_, err := b.CreateDocument([]byte("The cat sat."))
	require.ErrorIs(t, err, marshal.ErrOutOfBounds)

	doc := createDocument(t, b, "The cat")
	require.NoError(t, b.FreeDocument(doc))
}

func TestDocument_Sentinels(t *testing.T) {
	t.Parallel()

	b := newBridge(t, nil)
	doc := createDocument(t, b, "The cat sat.")

	count, err := b.TokenCount(handle.Null)
	require.ErrorIs(t, err, handle.ErrNullHandle)
	assert.Equal(t, int32(-1), count)

	text, err := b.DocumentText(handle.Null)
	require.ErrorIs(t, err, handle.ErrNullHandle)
	assert.Nil(t, text)

	for _, index := range []int32{-1, 6, 1 << 30} {
		tok, err := b.TokenText(doc, index)
		require.ErrorIs(t, err, marshal.ErrOutOfBounds, "index %d", index)
		assert.Nil(t, tok)

		kind, err := b.TokenKind(doc, index)
		require.ErrorIs(t, err, marshal.ErrOutOfBounds, "index %d", index)
		assert.Nil(t, kind)
	}

	_, err = b.TokenText(handle.Null, 0)
	require.ErrorIs(t, err, handle.ErrNullHandle)

	// Freeing the null handle is a no-op.
	require.NoError(t, b.FreeDocument(handle.Null))
	require.NoError(t, b.FreeLintGroup(handle.Null))
}

func TestDocument_Markdown(t *testing.T) {
	t.Parallel()

	b := newBridge(t, nil)
	doc, err := b.CreateMarkdownDocument([]byte("Run `teh` now."))
	require.NoError(t, err)

	text, err := b.DocumentText(doc)
	require.NoError(t, err)
	assert.Equal(t, "Run `teh` now.", string(text))

	count, err := b.TokenCount(doc)
	require.NoError(t, err)

	kinds := map[string]string{}
	for i := range count {
		tok, err := b.TokenText(doc, i)
		require.NoError(t, err)
		kind, err := b.TokenKind(doc, i)
		require.NoError(t, err)
		kinds[string(tok)] = string(kind)
	}
	assert.Equal(t, "unlintable", kinds["teh"])
	assert.Equal(t, "word", kinds["Run"])

	group := createGroup(t, b)
	lints, err := b.Lints(context.Background(), doc, group)
	require.NoError(t, err)
	assert.Empty(t, lints)
}

func TestHandles_WrongKind(t *testing.T) {
	t.Parallel()

	b := newBridge(t, nil)
	doc := createDocument(t, b, "The cat sat.")
	group := createGroup(t, b)

	_, err := b.TokenCount(group)
	require.ErrorIs(t, err, handle.ErrInvalidHandle)

	_, err = b.Lints(context.Background(), group, doc)
	require.ErrorIs(t, err, handle.ErrInvalidHandle)

	_, err = b.LintMessage(doc)
	require.ErrorIs(t, err, handle.ErrInvalidHandle)

	require.ErrorIs(t, b.FreeLintGroup(doc), handle.ErrInvalidHandle)
	assert.Equal(t, 1, b.Live().Documents)
	assert.Equal(t, 1, b.Live().LintGroups)
}

func TestHandles_DoubleFree(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		poison bool
		want   error
	}{
		{"plain", false, handle.ErrInvalidHandle},
		{"poisoned", true, handle.ErrReleasedHandle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			cfg.Bridge.PoisonReleased = tt.poison
			b := newBridge(t, cfg)

			doc := createDocument(t, b, "The cat sat.")
			require.NoError(t, b.FreeDocument(doc))
			require.ErrorIs(t, b.FreeDocument(doc), tt.want)

			_, err := b.DocumentText(doc)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLints_Spelling(t *testing.T) {
	t.Parallel()

	b := newBridge(t, nil)
	doc := createDocument(t, b, "Teh cat sat.")
	group := createGroup(t, b)

	lints, err := b.Lints(context.Background(), doc, group)
	require.NoError(t, err)
	require.Len(t, lints, 1)

	l := lints[0]
	start, end, err := b.LintRange(l)
	require.NoError(t, err)
	assert.Equal(t, int32(0), start)
	assert.Equal(t, int32(3), end)

	start, err = b.LintStart(l)
	require.NoError(t, err)
	assert.Equal(t, int32(0), start)
	end, err = b.LintEnd(l)
	require.NoError(t, err)
	assert.Equal(t, int32(3), end)

	msg, err := b.LintMessage(l)
	require.NoError(t, err)
	assert.NotEmpty(t, msg)

	kind, err := b.LintKind(l)
	require.NoError(t, err)
	assert.Equal(t, "Spelling", string(kind))

	rule, err := b.LintRule(l)
	require.NoError(t, err)
	assert.Equal(t, "SpellCheck", string(rule))

	n, err := b.SuggestionCount(l)
	require.NoError(t, err)
	require.Positive(t, n)

	suggestion, err := b.SuggestionText(l, 0)
	require.NoError(t, err)
	assert.Equal(t, "Replace with: “The”", string(suggestion))

	_, err = b.SuggestionText(l, n)
	require.ErrorIs(t, err, marshal.ErrOutOfBounds)
	_, err = b.SuggestionText(l, -1)
	require.ErrorIs(t, err, marshal.ErrOutOfBounds)

	require.NoError(t, b.FreeLints(lints))
}

func TestLints_NoFindings(t *testing.T) {
	t.Parallel()

	b := newBridge(t, nil)
	doc := createDocument(t, b, "The cat sat.")
	group := createGroup(t, b)

	lints, err := b.Lints(context.Background(), doc, group)
	require.NoError(t, err)
	assert.NotNil(t, lints)
	assert.Empty(t, lints)
	assert.Zero(t, b.Live().Lints)
}

func TestLints_Sentinels(t *testing.T) {
	t.Parallel()

	b := newBridge(t, nil)
	doc := createDocument(t, b, "The cat sat.")
	group := createGroup(t, b)

	_, err := b.Lints(context.Background(), handle.Null, group)
	require.ErrorIs(t, err, handle.ErrNullHandle)
	_, err = b.Lints(context.Background(), doc, handle.Null)
	require.ErrorIs(t, err, handle.ErrNullHandle)

	start, end, err := b.LintRange(handle.Null)
	require.ErrorIs(t, err, handle.ErrNullHandle)
	assert.Equal(t, int32(-1), start)
	assert.Equal(t, int32(-1), end)

	n, err := b.SuggestionCount(handle.Null)
	require.ErrorIs(t, err, handle.ErrNullHandle)
	assert.Equal(t, int32(-1), n)

	msg, err := b.LintMessage(handle.Null)
	require.ErrorIs(t, err, handle.ErrNullHandle)
	assert.Nil(t, msg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	lints, err := b.Lints(ctx, doc, group)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, lints)
	assert.Zero(t, b.Live().Lints)
}

func TestLints_OrderAndFree(t *testing.T) {
	t.Parallel()

	b := newBridge(t, nil)
	doc := createDocument(t, b, "the the cat sat on a apple.")
	group := createGroup(t, b)

	lints, err := b.Lints(context.Background(), doc, group)
	require.NoError(t, err)
	require.NotEmpty(t, lints)

	// Engine order: rules by ID, then by position.
	var rules []string
	for _, l := range lints {
		rule, err := b.LintRule(l)
		require.NoError(t, err)
		rules = append(rules, string(rule))
	}
	assert.IsNonDecreasing(t, rules)

	// Null elements are skipped; every other element is released once.
	withNull := append([]handle.Handle{handle.Null}, lints...)
	require.NoError(t, b.FreeLints(withNull))
	assert.Zero(t, b.Live().Lints)

	err = b.FreeLints(lints[:1])
	require.ErrorIs(t, err, handle.ErrInvalidHandle)
	require.NoError(t, b.FreeLints(nil))
}

func TestLintGroup_Mutation(t *testing.T) {
	t.Parallel()

	b := newBridge(t, nil)
	doc := createDocument(t, b, "Teh colour.")
	group := createGroup(t, b)

	enabled, err := b.RuleEnabled(group, []byte("SpellCheck"))
	require.NoError(t, err)
	assert.True(t, enabled)

	require.NoError(t, b.SetRuleEnabled(group, []byte("spelling"), false))
	enabled, err = b.RuleEnabled(group, []byte("SpellCheck"))
	require.NoError(t, err)
	assert.False(t, enabled)

	lints, err := b.Lints(context.Background(), doc, group)
	require.NoError(t, err)
	assert.Empty(t, lints)

	require.ErrorIs(t, b.SetRuleEnabled(group, []byte("NoSuchRule"), true), lint.ErrUnknownRule)
	_, err = b.RuleEnabled(group, []byte("NoSuchRule"))
	require.ErrorIs(t, err, lint.ErrUnknownRule)
	require.ErrorIs(t, b.SetRuleEnabled(group, nil, true), marshal.ErrNullInput)

	require.NoError(t, b.SetRuleEnabled(group, []byte("SpellCheck"), true))
	require.NoError(t, b.SetDialect(group, []byte("GB")))
	dialect, err := b.Dialect(group)
	require.NoError(t, err)
	assert.Equal(t, "british", string(dialect))

	lints, err = b.Lints(context.Background(), doc, group)
	require.NoError(t, err)
	require.Len(t, lints, 1, "only Teh is misspelled in British English")
	require.NoError(t, b.FreeLints(lints))

	require.ErrorIs(t, b.SetDialect(group, []byte("martian")), dictionary.ErrUnknownDialect)
	require.ErrorIs(t, b.SetDialect(handle.Null, []byte("GB")), handle.ErrNullHandle)
}

func TestLintGroup_Config(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Dialect = "british"
	cfg.DisableRules = []string{"SentenceCapitalization"}
	b := newBridge(t, cfg)

	group := createGroup(t, b)
	dialect, err := b.Dialect(group)
	require.NoError(t, err)
	assert.Equal(t, "british", string(dialect))

	enabled, err := b.RuleEnabled(group, []byte("SentenceCapitalization"))
	require.NoError(t, err)
	assert.False(t, enabled)

	cfg.Dialect = "klingon"
	_, err = bridge.New(cfg, nil)
	require.ErrorIs(t, err, dictionary.ErrUnknownDialect)
}

func TestAccessors_Idempotent(t *testing.T) {
	t.Parallel()

	b := newBridge(t, nil)
	doc := createDocument(t, b, "Teh cat sat.")
	group := createGroup(t, b)
	lints, err := b.Lints(context.Background(), doc, group)
	require.NoError(t, err)
	require.NotEmpty(t, lints)

	for range 3 {
		text, err := b.DocumentText(doc)
		require.NoError(t, err)
		assert.Equal(t, "Teh cat sat.", string(text))

		msg1, err := b.LintMessage(lints[0])
		require.NoError(t, err)
		msg2, err := b.LintMessage(lints[0])
		require.NoError(t, err)
		assert.Equal(t, msg1, msg2)

		// Each call returns a fresh buffer.
		if len(msg1) > 0 {
			msg1[0] = 'X'
			assert.NotEqual(t, msg1, msg2)
		}
	}

	// Linting twice yields equal findings under distinct handles.
	again, err := b.Lints(context.Background(), doc, group)
	require.NoError(t, err)
	require.Len(t, again, len(lints))
	assert.NotEqual(t, lints[0], again[0])
	require.NoError(t, b.FreeLints(again))
	require.NoError(t, b.FreeLints(lints))
}

func TestVersions(t *testing.T) {
	t.Parallel()

	b := newBridge(t, nil)

	lib, err := b.LibVersion()
	require.NoError(t, err)
	assert.NotEmpty(t, lib)

	core, err := b.CoreVersion()
	require.NoError(t, err)
	assert.NotEmpty(t, core)
	assert.Positive(t, b.VersionCode())
}

// TestLive_ReturnsToBaseline runs the full create, lint and release
// sequence and checks that nothing is left behind. Not parallel: the
// dictionary reference count is process-wide.
func TestLive_ReturnsToBaseline(t *testing.T) {
	b := newBridge(t, nil)
	baseline := b.Live()

	docs := make([]handle.Handle, 0, 3)
	for _, text := range []string{"Teh cat sat.", "The the cat.", "an cat sat  here"} {
		docs = append(docs, createDocument(t, b, text))
	}
	groups := []handle.Handle{createGroup(t, b), createGroup(t, b)}

	live := b.Live()
	assert.Equal(t, baseline.Documents+3, live.Documents)
	assert.Equal(t, baseline.LintGroups+2, live.LintGroups)
	assert.Equal(t, baseline.DictionaryRefs+2, live.DictionaryRefs)

	var batches [][]handle.Handle
	total := 0
	for _, doc := range docs {
		for _, group := range groups {
			lints, err := b.Lints(context.Background(), doc, group)
			require.NoError(t, err)
			batches = append(batches, lints)
			total += len(lints)
		}
	}
	assert.Positive(t, total)
	assert.Equal(t, baseline.Lints+total, b.Live().Lints)

	for _, batch := range batches {
		require.NoError(t, b.FreeLints(batch))
	}
	for _, doc := range docs {
		require.NoError(t, b.FreeDocument(doc))
	}
	for _, group := range groups {
		require.NoError(t, b.FreeLintGroup(group))
	}

	assert.Equal(t, baseline, b.Live())
}
