package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goharper/internal/configloader"
	"github.com/yaklabco/goharper/internal/logging"
	"github.com/yaklabco/goharper/pkg/config"
	"github.com/yaklabco/goharper/pkg/dictionary"
	"github.com/yaklabco/goharper/pkg/fsutil"
	"github.com/yaklabco/goharper/pkg/lint/rules"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force   bool
	full    bool
	output  string
	dialect string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a goharper configuration file",
		Long: `Create a .goharper.yml configuration file in the current directory.

Examples:
  goharper init                      Create a minimal .goharper.yml
  goharper init --full               Document every rule and its options
  goharper init --dialect british    Preselect British spelling
  goharper init --output cfg.yml     Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "document every rule in the template")
	cmd.Flags().StringVarP(&flags.output, "output", "o", configloader.ProjectConfigName, "output file path")
	cmd.Flags().StringVar(&flags.dialect, "dialect", config.DialectAmerican, "dialect written to the template")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewWriter(cmd.OutOrStdout(), "info")

	if _, err := dictionary.ParseDialect(flags.dialect); err != nil {
		return err
	}

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	_, err = os.Stat(absPath)
	switch {
	case err == nil && !flags.force:
		return fmt.Errorf("file %q already exists; use --force to overwrite", flags.output)
	case err == nil:
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("stat %s: %w", flags.output, err)
	}

	infos := rules.Infos(rules.Curated())
	ruleInfos := make([]config.RuleInfo, 0, len(infos))
	for _, info := range infos {
		ruleInfos = append(ruleInfos, config.RuleInfo(info))
	}

	content := config.GenerateTemplate(config.TemplateOptions{
		Full:    flags.full,
		Dialect: flags.dialect,
	}, ruleInfos)

	if err := fsutil.WriteAtomic(commandContext(cmd), absPath, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	logger.Info("run 'goharper rules' to see all available rules")
	return nil
}
