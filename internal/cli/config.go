package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goharper/internal/configloader"
	"github.com/yaklabco/goharper/internal/logging"
	"github.com/yaklabco/goharper/pkg/config"
	"github.com/yaklabco/goharper/pkg/dictionary"
	"github.com/yaklabco/goharper/pkg/lint"
	"github.com/yaklabco/goharper/pkg/lint/rules"
)

// commandContext returns the command's context or a background one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadConfig resolves the configuration for a command, with cliCfg as the
// highest precedence layer. The configured log level applies unless
// --debug was given.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, string, error) {
	logger := logging.Default()

	configPath, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(commandContext(cmd), configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		Registry:     rules.Curated(),
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, "", fmt.Errorf("load configuration: %w", err)
	}

	if debug, _ := cmd.Flags().GetBool(flagDebug); !debug {
		logging.SetLevel(result.Config.LogLevel)
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("configuration loaded", logging.FieldPaths, result.LoadedFrom)
	}

	return result.Config, workDir, nil
}

// newGroup builds a lint group from cfg with the curated rules.
func newGroup(cfg *config.Config) (*lint.Group, error) {
	dict, err := dictionary.Curated()
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	group, err := lint.NewGroupFromConfig(rules.Curated(), dict, cfg)
	if err != nil {
		return nil, fmt.Errorf("configure rules: %w", err)
	}
	return group, nil
}
