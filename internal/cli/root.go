// Package cli provides the Cobra commands of the goharper developer tool.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goharper/internal/logging"
	"github.com/yaklabco/goharper/pkg/version"
)

// Persistent flag names.
const (
	flagDebug  = "debug"
	flagConfig = "config"
	flagColor  = "color"
)

// NewRootCommand creates the goharper command with all subcommands.
func NewRootCommand() *cobra.Command {
	var debug bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "goharper",
		Short: "A grammar checker for English prose",
		Long: `goharper checks English prose for spelling, grammar and style problems.

It lints plain text and Markdown, skipping code, and can apply the
suggested fixes in place. The same engine is available to C programs
through the libharper shared library.`,
		Version: version.Library(),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, flagDebug, false, "enable debug logging")
	rootCmd.PersistentFlags().String(flagConfig, "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, flagColor, "auto", "colorize output: auto, always, never")

	rootCmd.AddCommand(newLintCommand())
	rootCmd.AddCommand(newTokensCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand())

	NewHelpFormatter(color, os.Stdout).ApplyToCommand(rootCmd)

	return rootCmd
}
