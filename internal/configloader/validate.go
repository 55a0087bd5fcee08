package configloader

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/goharper/internal/logging"
	"github.com/yaklabco/goharper/pkg/config"
	"github.com/yaklabco/goharper/pkg/dictionary"
	"github.com/yaklabco/goharper/pkg/lint"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "rules.LongSentences").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) fail(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// Validate checks a configuration for errors and warnings. Rule keys are
// checked against registry when it is non-nil.
func Validate(cfg *config.Config, registry *lint.Registry) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Dialect != "" {
		if _, err := dictionary.ParseDialect(cfg.Dialect); err != nil {
			result.fail("dialect", cfg.Dialect,
				"invalid dialect %q; must be one of: american, british, australian, canadian", cfg.Dialect)
		}
	}

	if cfg.LogLevel != "" && !logging.ValidLevel(cfg.LogLevel) {
		result.fail("log_level", cfg.LogLevel,
			"invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel)
	}

	if cfg.Flavor != "" && cfg.Flavor != config.FlavorCommonMark && cfg.Flavor != config.FlavorGFM {
		result.fail("flavor", cfg.Flavor, "invalid flavor %q; must be one of: commonmark, gfm", cfg.Flavor)
	}

	if cfg.Format != "" && cfg.Format != config.FormatText && cfg.Format != config.FormatJSON {
		result.fail("format", cfg.Format, "invalid format %q; must be one of: text, json", cfg.Format)
	}

	if cfg.Jobs < 0 {
		result.fail("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	if cfg.Bridge.MaxDocumentBytes < 0 {
		result.fail("bridge.max_document_bytes", cfg.Bridge.MaxDocumentBytes,
			"max_document_bytes must be >= 0 (0 means unlimited)")
	}
	if cfg.Bridge.MaxDocumentBytes > math.MaxInt32 {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "bridge.max_document_bytes",
			Value:   cfg.Bridge.MaxDocumentBytes,
			Message: fmt.Sprintf("offsets are 32-bit; documents over %d bytes are always rejected", math.MaxInt32),
		})
	}

	for i, pattern := range cfg.Ignore {
		if _, err := glob.Compile(filepath.ToSlash(pattern), '/'); err != nil {
			result.fail(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}

	if registry != nil {
		validateRules(cfg, registry, result)
	}

	return result
}

// validateRules resolves the rule configuration the same way a lint group
// will, so that a config that loads always builds a group.
func validateRules(cfg *config.Config, registry *lint.Registry, result *ValidationResult) {
	if _, err := lint.ResolveRules(registry, cfg); err != nil {
		result.fail("rules", nil, "%s", strings.ReplaceAll(err.Error(), "\n", "; "))
	}
}

// ValidateWithFile validates configuration and includes file path in findings.
func ValidateWithFile(cfg *config.Config, registry *lint.Registry, filePath string) *ValidationResult {
	result := Validate(cfg, registry)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}
