// Package configloader provides configuration loading and resolution for
// the goharper CLI and the shared library.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/goharper/pkg/config"
	"github.com/yaklabco/goharper/pkg/lint"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// Registry resolves rule names and aliases. Rule keys are not
	// normalized or checked when nil.
	Registry *lint.Registry

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (GOHARPER_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.goharper.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/goharper/config.yaml)
//  6. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	layers := []struct {
		name string
		path string
		skip bool
	}{
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig || opts.ExplicitPath != ""},
		{"explicit", paths.Explicit, false},
	}
	for _, layer := range layers {
		if layer.skip || layer.path == "" {
			continue
		}
		fileCfg, err := loadConfigFile(layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	return finish(cfg, opts.Registry, result)
}

// LoadLibrary resolves the configuration of the shared library: defaults,
// then the file named by $GOHARPER_CONFIG, then GOHARPER_* variables.
// There is no discovery because a C host has no meaningful working tree.
func LoadLibrary(registry *lint.Registry) (*LoadResult, error) {
	result := &LoadResult{Paths: &ConfigPaths{}}
	cfg := config.NewConfig()

	if path := os.Getenv(EnvConfigPath); path != "" {
		fileCfg, err := loadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", EnvConfigPath, err)
		}
		cfg = merge(cfg, fileCfg)
		result.Paths.Explicit = path
		result.LoadedFrom = append(result.LoadedFrom, path)
	}

	if err := LoadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	return finish(cfg, registry, result)
}

func finish(cfg *config.Config, registry *lint.Registry, result *LoadResult) (*LoadResult, error) {
	if registry != nil {
		normalizeRuleKeys(cfg, registry, result)
	}

	validation := Validate(cfg, registry)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration from a YAML file. Unknown keys are
// rejected.
func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Rules == nil {
		cfg.Rules = make(map[string]config.RuleConfig)
	}
	return cfg, nil
}

// normalizeRuleKeys converts rule names and aliases to canonical IDs.
// If a rule is configured under two keys the later key wins and a warning
// is recorded.
func normalizeRuleKeys(cfg *config.Config, registry *lint.Registry, result *LoadResult) {
	if len(cfg.Rules) == 0 {
		return
	}

	normalized := make(map[string]config.RuleConfig, len(cfg.Rules))
	seenIDs := make(map[string]string)

	for key, ruleCfg := range cfg.Rules {
		canonicalID, _, found := registry.Resolve(key)
		if !found {
			normalized[key] = ruleCfg
			continue
		}

		if originalKey, exists := seenIDs[canonicalID]; exists {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("duplicate rule configuration: %q and %q both refer to %s; using last value",
					originalKey, key, canonicalID))
		}
		seenIDs[canonicalID] = key
		normalized[canonicalID] = ruleCfg
	}

	cfg.Rules = normalized
}
