package lint

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/yaklabco/goharper/pkg/config"
	"github.com/yaklabco/goharper/pkg/dictionary"
	"github.com/yaklabco/goharper/pkg/document"
)

// ErrInvalidSpan indicates a rule produced a finding outside the document.
var ErrInvalidSpan = errors.New("lint span outside document")

// Group is a configured set of rules bound to a dictionary and a dialect.
// A Group may be applied to many documents. It is not safe for concurrent
// mutation; concurrent calls to Lint are safe while no setter runs.
type Group struct {
	registry *Registry
	dict     *dictionary.Dictionary
	dialect  dictionary.Dialect
	rules    []ResolvedRule
	index    map[string]int
}

// NewGroup creates a group with every registered rule at its default state.
func NewGroup(registry *Registry, dict *dictionary.Dictionary, dialect dictionary.Dialect) *Group {
	// ResolveRules cannot fail without a config.
	rules, _ := ResolveRules(registry, nil)
	return newGroup(registry, dict, dialect, rules)
}

// NewGroupFromConfig creates a group whose dialect and rule states come from cfg.
func NewGroupFromConfig(registry *Registry, dict *dictionary.Dictionary, cfg *config.Config) (*Group, error) {
	dialect := dictionary.American
	if cfg != nil && cfg.Dialect != "" {
		var err error
		if dialect, err = dictionary.ParseDialect(cfg.Dialect); err != nil {
			return nil, err
		}
	}

	rules, err := ResolveRules(registry, cfg)
	if err != nil {
		return nil, err
	}
	return newGroup(registry, dict, dialect, rules), nil
}

func newGroup(registry *Registry, dict *dictionary.Dictionary, dialect dictionary.Dialect, rules []ResolvedRule) *Group {
	index := make(map[string]int, len(rules))
	for idx, rr := range rules {
		index[rr.Rule.ID()] = idx
	}
	return &Group{
		registry: registry,
		dict:     dict,
		dialect:  dialect,
		rules:    rules,
		index:    index,
	}
}

// Dictionary returns the dictionary the group checks against.
func (g *Group) Dictionary() *dictionary.Dictionary {
	return g.dict
}

// Dialect returns the group's dialect.
func (g *Group) Dialect() dictionary.Dialect {
	return g.dialect
}

// SetDialect changes the group's dialect.
func (g *Group) SetDialect(dialect dictionary.Dialect) {
	g.dialect = dialect
}

// SetRuleEnabled enables or disables the rule matching key.
func (g *Group) SetRuleEnabled(key string, enabled bool) error {
	rr, err := g.lookup(key)
	if err != nil {
		return err
	}
	rr.Enabled = enabled
	return nil
}

// IsRuleEnabled reports whether the rule matching key is enabled.
func (g *Group) IsRuleEnabled(key string) (bool, error) {
	rr, err := g.lookup(key)
	if err != nil {
		return false, err
	}
	return rr.Enabled, nil
}

// Rules returns the group's rules with their current state, sorted by ID.
func (g *Group) Rules() []ResolvedRule {
	return slices.Clone(g.rules)
}

func (g *Group) lookup(key string) (*ResolvedRule, error) {
	rule, err := g.registry.Lookup(key)
	if err != nil {
		return nil, err
	}
	idx, ok := g.index[rule.ID()]
	if !ok {
		// Registered after the group was created.
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, key)
	}
	return &g.rules[idx], nil
}

// Lint runs every enabled rule against doc. Findings are grouped by rule in
// rule order and sorted by position within each rule. The result is never
// nil. If some rules fail, the findings of the others are still returned
// together with the joined rule errors.
func (g *Group) Lint(ctx context.Context, doc *document.Document) ([]Lint, error) {
	lints := make([]Lint, 0)
	var errs []error

	for _, rr := range g.rules {
		if !rr.Enabled {
			continue
		}

		select {
		case <-ctx.Done():
			return lints, fmt.Errorf("linting cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, doc, g.dict, g.dialect, rr.Config)
		found, err := rr.Rule.Apply(ruleCtx)
		if err != nil {
			errs = append(errs, fmt.Errorf("rule %s: %w", rr.Rule.ID(), err))
			continue
		}

		if err := validateSpans(found, doc.Len()); err != nil {
			errs = append(errs, fmt.Errorf("rule %s: %w", rr.Rule.ID(), err))
			continue
		}

		for idx := range found {
			if found[idx].Rule == "" {
				found[idx].Rule = rr.Rule.ID()
			}
		}
		slices.SortStableFunc(found, func(a, b Lint) int {
			if c := cmp.Compare(a.Span.Start, b.Span.Start); c != 0 {
				return c
			}
			return cmp.Compare(a.Span.End, b.Span.End)
		})

		lints = append(lints, found...)
	}

	return lints, errors.Join(errs...)
}

func validateSpans(lints []Lint, docLen int) error {
	for _, l := range lints {
		if l.Span.Start < 0 || l.Span.End < l.Span.Start || l.Span.End > docLen {
			return fmt.Errorf("%w: [%d, %d) in %d bytes", ErrInvalidSpan, l.Span.Start, l.Span.End, docLen)
		}
	}
	return nil
}
