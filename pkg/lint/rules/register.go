package rules

import (
	"sync"

	"github.com/yaklabco/goharper/pkg/lint"
)

// RegisterAll registers all curated rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	registry.Register(NewSpellCheckRule())
	registry.Register(NewRepeatedWordsRule())
	registry.Register(NewSentenceCapitalizationRule())
	registry.Register(NewAnARule())
	registry.Register(NewSpacesRule())
	registry.Register(NewSpaceBeforePunctuationRule())
	registry.Register(NewMissingSpaceAfterPunctuationRule())
	registry.Register(NewCorrectNumberSuffixRule())
	registry.Register(NewLongSentencesRule())
}

// RegisterAliases registers alternate names users commonly reach for.
func RegisterAliases(registry *lint.Registry) {
	registry.RegisterAlias("spelling", "SpellCheck")
	registry.RegisterAlias("repetition", "RepeatedWords")
	registry.RegisterAlias("capitalization", "SentenceCapitalization")
	registry.RegisterAlias("articles", "AnA")
}

//nolint:gochecknoglobals // Shared immutable registry.
var curated = sync.OnceValue(func() *lint.Registry {
	registry := lint.NewRegistry()
	RegisterAll(registry)
	RegisterAliases(registry)
	return registry
})

// Curated returns the process-wide registry of curated rules. Rules are
// stateless, so one registry is shared by every lint group.
func Curated() *lint.Registry {
	return curated()
}

// Infos describes every curated rule for listings and config templates.
func Infos(registry *lint.Registry) []Info {
	rules := registry.Rules()
	infos := make([]Info, 0, len(rules))
	for _, rule := range rules {
		info := Info{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Kind:        rule.Kind().String(),
			Enabled:     rule.DefaultEnabled(),
		}
		if opt, ok := rule.(lint.Optioned); ok {
			info.Options = opt.DefaultOptions()
		}
		infos = append(infos, info)
	}
	return infos
}

// Info is the metadata of one rule.
type Info struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Kind        string         `json:"kind"`
	Enabled     bool           `json:"enabled"`
	Options     map[string]any `json:"options,omitempty"`
}
