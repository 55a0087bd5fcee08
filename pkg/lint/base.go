package lint

// BaseRule provides a default implementation of the Rule interface.
// Embed this in rule implementations and override methods as needed.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
// Use the NewBaseRule constructor.
type BaseRule struct {
	id   string // Unique identifier (e.g., "SpellCheck")
	name string // Kebab-case alias
	desc string // Detailed description
	kind Kind   // Kind of findings produced
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, kind Kind) BaseRule {
	return BaseRule{
		id:   id,
		name: name,
		desc: desc,
		kind: kind,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the kebab-case alias of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// Kind returns the kind of the findings the rule produces.
func (r *BaseRule) Kind() Kind {
	return r.kind
}

// DefaultEnabled returns whether the rule is enabled by default.
// Override this method to change the default.
func (r *BaseRule) DefaultEnabled() bool {
	return true
}

// Apply must be overridden by concrete rule implementations.
// The default implementation returns no findings.
func (r *BaseRule) Apply(_ *RuleContext) ([]Lint, error) {
	return nil, nil
}

// NewLint starts a finding from this rule over span.
func (r *BaseRule) NewLint(start, end int, message string) *Builder {
	return NewLintAt(r.id, r.kind, start, end, message)
}
