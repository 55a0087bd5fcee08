// Package config defines core configuration types for goharper.
// These types are pure data structures; loading and precedence live in
// internal/configloader.
package config

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled *bool          `yaml:"enabled,omitempty"`
	Options map[string]any `yaml:"options,omitempty"`
}

// BridgeConfig tunes the C boundary layer of the shared library.
type BridgeConfig struct {
	// PoisonReleased remembers released handles so that later use is
	// reported as use-after-release instead of an unknown handle.
	PoisonReleased bool `yaml:"poison_released"`

	// MaxDocumentBytes rejects larger inputs. Zero means unlimited.
	MaxDocumentBytes int `yaml:"max_document_bytes"`
}

// OutputFormat specifies the output format for lints.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Flavor specifies the Markdown flavor used for Markdown files.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// Dialect names accepted in configuration. Region codes such as "GB" are
// accepted as well.
const (
	DialectAmerican   = "american"
	DialectBritish    = "british"
	DialectAustralian = "australian"
	DialectCanadian   = "canadian"
)

// Config is the root configuration structure for goharper.
type Config struct {
	// Dialect selects regional spelling ("american", "british", ...).
	Dialect string `yaml:"dialect"`

	// LogLevel is the minimum level logged ("debug", "info", "warn", "error").
	LogLevel string `yaml:"log_level"`

	// Flavor specifies the Markdown flavor ("commonmark" or "gfm").
	Flavor Flavor `yaml:"flavor"`

	// Rules contains per-rule configuration keyed by rule ID or name.
	Rules map[string]RuleConfig `yaml:"rules,omitempty"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore,omitempty"`

	// Bridge configures the shared library.
	Bridge BridgeConfig `yaml:"bridge"`

	// CLI-level options (not persisted to config files).

	// Fix applies the first suggestion of every lint.
	Fix bool `yaml:"-"`

	// Write rewrites fixed files in place instead of printing them.
	Write bool `yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `yaml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Dialect:  DialectAmerican,
		LogLevel: "warn",
		Flavor:   FlavorGFM,
		Rules:    make(map[string]RuleConfig),
		Format:   FormatText,
		Jobs:     0, // 0 means use GOMAXPROCS
	}
}

// RuleEnabled returns the configured enable state for key, if any.
func (c *Config) RuleEnabled(key string) (bool, bool) {
	if c == nil {
		return false, false
	}
	rc, ok := c.Rules[key]
	if !ok || rc.Enabled == nil {
		return false, false
	}
	return *rc.Enabled, true
}
