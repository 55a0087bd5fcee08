package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goharper/pkg/document"
)

// mockRule for testing. It reports a finding over every occurrence of word.
type mockRule struct {
	id      string
	name    string
	word    string
	err     error
	enabled bool
	spans   []document.Span
}

func newMockRule(id, name string) *mockRule {
	return &mockRule{id: id, name: name, enabled: true}
}

func (m *mockRule) ID() string           { return m.id }
func (m *mockRule) Name() string         { return m.name }
func (m *mockRule) Description() string  { return "mock" }
func (m *mockRule) Kind() Kind           { return KindMiscellaneous }
func (m *mockRule) DefaultEnabled() bool { return m.enabled }

func (m *mockRule) Apply(ctx *RuleContext) ([]Lint, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []Lint
	for _, span := range m.spans {
		out = append(out, Lint{Span: span, Message: "span"})
	}
	if m.word == "" {
		return out, nil
	}
	for _, tok := range ctx.Doc.Tokens() {
		if tok.Norm == m.word {
			out = append(out, NewLintAt("", KindMiscellaneous, tok.Span.Start, tok.Span.End, "found "+m.word).Build())
		}
	}
	return out, nil
}

func TestRegistry_Resolve(t *testing.T) {
	reg := NewRegistry()
	reg.Register(newMockRule("SpellCheck", "spell-check"))
	reg.RegisterAlias("spelling", "SpellCheck")

	tests := []struct {
		key    string
		wantID string
		wantOK bool
	}{
		{"SpellCheck", "SpellCheck", true},
		{"spell-check", "SpellCheck", true},
		{"spellcheck", "SpellCheck", true},
		{"SPELLING", "SpellCheck", true},
		{" spelling ", "SpellCheck", true},
		{"Grammar", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			id, rule, ok := reg.Resolve(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
			if tt.wantOK {
				require.NotNil(t, rule)
				assert.Equal(t, tt.wantID, rule.ID())
			}
		})
	}
}

func TestRegistry_Lookup_Unknown(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Lookup("nope")
	require.ErrorIs(t, err, ErrUnknownRule)
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestRegistry_RulesSorted(t *testing.T) {
	reg := NewRegistry()
	reg.Register(newMockRule("Spaces", "spaces"))
	reg.Register(newMockRule("AnA", "an-a"))
	reg.Register(newMockRule("LongSentences", "long-sentences"))

	assert.Equal(t, []string{"AnA", "LongSentences", "Spaces"}, reg.IDs())
	assert.Equal(t, 3, reg.Len())

	rules := reg.Rules()
	require.Len(t, rules, 3)
	assert.Equal(t, "AnA", rules[0].ID())
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	reg := NewRegistry()
	first := newMockRule("SpellCheck", "spell-check")
	second := newMockRule("SpellCheck", "spell-check")
	reg.Register(first)
	reg.Register(second)

	got, ok := reg.Get("SpellCheck")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, 1, reg.Len())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Spelling", KindSpelling.String())
	assert.Equal(t, "Word Choice", KindWordChoice.String())
	assert.Equal(t, "Unknown", Kind(200).String())
}
