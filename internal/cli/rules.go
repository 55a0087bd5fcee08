package cli

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goharper/internal/logging"
	"github.com/yaklabco/goharper/pkg/lint/rules"
	"github.com/yaklabco/goharper/pkg/reporter"
)

func newRulesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available lint rules",
		Long: `List the curated rules with their kind, default state and options.
Rules can be referred to by ID or name in configuration and flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := reporter.ParseFormat(format)
			if err != nil {
				return err
			}

			infos := rules.Infos(rules.Curated())
			if f == reporter.FormatJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(infos); err != nil {
					return fmt.Errorf("encoding rules: %w", err)
				}
				return nil
			}

			logger := logging.NewWriter(cmd.OutOrStdout(), "info")
			logger.Info("available rules", logging.FieldCount, len(infos))
			for _, info := range infos {
				keyvals := []any{
					logging.FieldRule, info.Name,
					logging.FieldKind, info.Kind,
					logging.FieldEnabled, info.Enabled,
					logging.FieldDescription, info.Description,
				}
				if len(info.Options) > 0 {
					keyvals = append(keyvals, logging.FieldOptions, formatOptions(info.Options))
				}
				logger.Info(info.ID, keyvals...)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

// formatOptions renders options as sorted key=value pairs.
func formatOptions(options map[string]any) string {
	pairs := make([]string, 0, len(options))
	for _, key := range slices.Sorted(maps.Keys(options)) {
		pairs = append(pairs, fmt.Sprintf("%s=%v", key, options[key]))
	}
	return strings.Join(pairs, " ")
}
