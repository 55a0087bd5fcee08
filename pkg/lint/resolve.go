package lint

import (
	"errors"
	"fmt"

	"github.com/yaklabco/goharper/pkg/config"
)

// ResolvedRule pairs a Rule with its resolved configuration.
type ResolvedRule struct {
	// Rule is the underlying rule implementation.
	Rule Rule

	// Enabled indicates whether the rule should be run.
	Enabled bool

	// Config is the rule-specific configuration (may be nil).
	Config *config.RuleConfig
}

// ResolveRules determines the state of every registered rule from its
// default, the config file's rules section and the CLI enable/disable lists,
// in that order. Rule keys may be IDs, names or aliases. Unknown keys are
// reported as ErrUnknownRule after every known key has been applied.
func ResolveRules(registry *Registry, cfg *config.Config) ([]ResolvedRule, error) {
	rules := registry.Rules()
	resolved := make([]ResolvedRule, len(rules))
	index := make(map[string]int, len(rules))
	for idx, rule := range rules {
		resolved[idx] = ResolvedRule{Rule: rule, Enabled: rule.DefaultEnabled()}
		index[rule.ID()] = idx
	}

	if cfg == nil {
		return resolved, nil
	}

	var errs []error
	lookup := func(key string) (*ResolvedRule, bool) {
		id, _, ok := registry.Resolve(key)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownRule, key))
			return nil, false
		}
		return &resolved[index[id]], true
	}

	for key, ruleCfg := range cfg.Rules {
		rr, ok := lookup(key)
		if !ok {
			continue
		}
		rr.Config = &ruleCfg
		if ruleCfg.Enabled != nil {
			rr.Enabled = *ruleCfg.Enabled
		}
	}

	for _, key := range cfg.EnableRules {
		if rr, ok := lookup(key); ok {
			rr.Enabled = true
		}
	}
	for _, key := range cfg.DisableRules {
		if rr, ok := lookup(key); ok {
			rr.Enabled = false
		}
	}

	return resolved, errors.Join(errs...)
}
