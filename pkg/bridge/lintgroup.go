package bridge

import (
	"fmt"

	"github.com/yaklabco/goharper/internal/logging"
	"github.com/yaklabco/goharper/pkg/dictionary"
	"github.com/yaklabco/goharper/pkg/handle"
	"github.com/yaklabco/goharper/pkg/lint"
)

// CreateLintGroup creates a lint group with the curated rules, the shared
// dictionary and the configured dialect and rule states.
func (b *Bridge) CreateLintGroup() (handle.Handle, error) {
	group, err := lint.NewGroupFromConfig(b.registry, b.dict.Acquire(), b.cfg)
	if err != nil {
		b.dict.Release()
		return handle.Null, fmt.Errorf("create lint group: %w", err)
	}

	h := b.groups.Register(group)
	b.logger.Debug("lint group created",
		logging.FieldHandle, uintptr(h),
		logging.FieldDialect, group.Dialect(),
		logging.FieldRefs, b.dict.Refs(),
	)
	return h, nil
}

// FreeLintGroup releases a lint group and its dictionary reference.
// Releasing Null is a no-op.
func (b *Bridge) FreeLintGroup(h handle.Handle) error {
	if h == handle.Null {
		return nil
	}
	group, err := b.groups.Release(h)
	if err != nil {
		return err
	}
	group.Dictionary().Release()
	b.logger.Debug("lint group released", logging.FieldHandle, uintptr(h))
	return nil
}

func (b *Bridge) group(h handle.Handle) (*lint.Group, error) {
	return b.groups.Lookup(h)
}

// SetRuleEnabled turns one rule of the group on or off. The rule may be
// named by ID, name or alias.
func (b *Bridge) SetRuleEnabled(h handle.Handle, rule []byte, enabled bool) error {
	group, err := b.group(h)
	if err != nil {
		return err
	}
	key, err := inString(rule)
	if err != nil {
		return err
	}
	if err := group.SetRuleEnabled(key, enabled); err != nil {
		return err
	}
	b.logger.Debug("rule toggled", logging.FieldHandle, uintptr(h), logging.FieldRule, key, logging.FieldEnabled, enabled)
	return nil
}

// RuleEnabled reports whether a rule of the group is enabled.
func (b *Bridge) RuleEnabled(h handle.Handle, rule []byte) (bool, error) {
	group, err := b.group(h)
	if err != nil {
		return false, err
	}
	key, err := inString(rule)
	if err != nil {
		return false, err
	}
	return group.IsRuleEnabled(key)
}

// SetDialect changes the spelling dialect of the group.
func (b *Bridge) SetDialect(h handle.Handle, name []byte) error {
	group, err := b.group(h)
	if err != nil {
		return err
	}
	text, err := inString(name)
	if err != nil {
		return err
	}
	dialect, err := dictionary.ParseDialect(text)
	if err != nil {
		return err
	}
	group.SetDialect(dialect)
	return nil
}

// Dialect returns the dialect name of the group.
func (b *Bridge) Dialect(h handle.Handle) ([]byte, error) {
	group, err := b.group(h)
	if err != nil {
		return nil, err
	}
	return outString(group.Dialect().String())
}
