package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goharper/internal/logging"
	"github.com/yaklabco/goharper/pkg/config"
	"github.com/yaklabco/goharper/pkg/langdetect"
	"github.com/yaklabco/goharper/pkg/parser/goldmark"
	"github.com/yaklabco/goharper/pkg/reporter"
	"github.com/yaklabco/goharper/pkg/runner"
)

// errWriteStdin is returned for --write on standard input.
var errWriteStdin = errors.New("--write cannot be used with standard input")

type lintFlags struct {
	format     string
	dialect    string
	flavor     string
	frontend   string
	extensions []string
	ignore     []string
	enable     []string
	disable    []string
	jobs       int
	fix        bool
	write      bool
	noContext  bool
	compact    bool
}

func newLintCommand() *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Check prose for spelling and grammar problems",
		Long: `Lint plain text and Markdown files.

Directories are searched recursively for prose files. When no path is given
and standard input is piped, the input is linted instead; "-" reads standard
input explicitly.

Examples:
  goharper lint                      # Lint the current directory
  goharper lint README.md docs/      # Lint a file and a directory
  cat notes.txt | goharper lint      # Lint standard input
  goharper lint --fix README.md      # Print README.md with fixes applied
  goharper lint --fix --write docs/  # Fix files in place
  goharper lint --format json        # Machine-readable output`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.format, "format", "text", "output format: text, json")
	f.StringVar(&flags.dialect, "dialect", "", "English dialect: american, british, australian, canadian")
	f.StringVar(&flags.flavor, "flavor", "", "Markdown flavor: gfm, commonmark")
	f.StringVar(&flags.frontend, "frontend", "auto", "document front end: auto, plain, markdown")
	f.StringSliceVar(&flags.extensions, "ext", nil, "only discover files with these extensions (e.g. .md,.txt)")
	f.StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns of files to skip")
	f.StringSliceVar(&flags.enable, "enable", nil, "rules to enable")
	f.StringSliceVar(&flags.disable, "disable", nil, "rules to disable")
	f.IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = number of CPUs)")
	f.BoolVar(&flags.fix, "fix", false, "apply the first suggestion of every lint")
	f.BoolVarP(&flags.write, "write", "w", false, "with --fix, rewrite files in place")
	f.BoolVar(&flags.noContext, "no-context", false, "do not print source lines under lints")
	f.BoolVar(&flags.compact, "compact", false, "compact JSON output")

	return cmd
}

// cliConfig builds the configuration layer of the flags the user set.
func (flags *lintFlags) cliConfig(cmd *cobra.Command) *config.Config {
	changed := cmd.Flags().Changed
	cfg := &config.Config{
		Fix:   flags.fix,
		Write: flags.write,
	}
	if changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if changed("dialect") {
		cfg.Dialect = flags.dialect
	}
	if changed("flavor") {
		cfg.Flavor = config.Flavor(flags.flavor)
	}
	if changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	if changed("ignore") {
		cfg.Ignore = flags.ignore
	}
	if changed("enable") {
		cfg.EnableRules = flags.enable
	}
	if changed("disable") {
		cfg.DisableRules = flags.disable
	}
	return cfg
}

func runLint(cmd *cobra.Command, args []string, flags *lintFlags) error {
	frontend, ok := langdetect.ParseFrontend(flags.frontend)
	if !ok {
		return fmt.Errorf("unknown front end %q; valid: auto, plain, markdown", flags.frontend)
	}
	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	cfg, workDir, err := loadConfig(cmd, flags.cliConfig(cmd))
	if err != nil {
		return err
	}
	if cfg.Format != "" {
		format = reporter.Format(cfg.Format)
	}

	logger := logging.Default()
	logger.Debug("configuration resolved",
		logging.FieldDialect, cfg.Dialect,
		logging.FieldFlavor, cfg.Flavor,
		logging.FieldFix, cfg.Fix,
		logging.FieldJobs, cfg.Jobs,
	)

	group, err := newGroup(cfg)
	if err != nil {
		return err
	}

	ctx := logging.WithLogger(commandContext(cmd), logger)
	run := runner.New(group, goldmark.New(string(cfg.Flavor)))
	opts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   normalizeExtensions(flags.extensions),
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		Frontend:     frontend,
		Fix:          cfg.Fix,
		Write:        cfg.Write,
	}

	var result *runner.Result
	if useStdin(cmd.InOrStdin(), args) {
		result, err = lintStdin(cmd, run, opts)
	} else {
		result, err = run.Run(ctx, opts)
	}
	if err != nil {
		return err
	}

	logger.Debug("lint complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesWithLints, result.Stats.FilesWithLints,
		logging.FieldFilesModified, result.Stats.FilesModified,
		logging.FieldLintsTotal, result.Stats.LintsTotal,
	)

	// A fix preview owns stdout; the report moves to stderr.
	reportTo := cmd.OutOrStdout()
	if opts.Fix && !opts.Write {
		if err := writeFixed(cmd.OutOrStdout(), result, workDir); err != nil {
			return err
		}
		reportTo = cmd.ErrOrStderr()
	}

	color, _ := cmd.Flags().GetString(flagColor)
	rep, err := reporter.New(reporter.Options{
		Writer:      reportTo,
		Format:      format,
		Color:       color,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return err
	}
	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return resultError(result)
}

func lintStdin(cmd *cobra.Command, run *runner.Runner, opts runner.Options) (*runner.Result, error) {
	if opts.Write {
		return nil, errWriteStdin
	}

	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read standard input: %w", err)
	}

	ctx := logging.WithLogger(commandContext(cmd), logging.Default())
	ctx = logging.WithFields(ctx, logging.FieldInput, stdinArg)
	fr, err := run.LintSource(ctx, "", content, opts)

	result := runner.NewResult()
	result.Stats.FilesDiscovered = 1
	result.Add(runner.FileOutcome{Result: fr, Error: err})
	return result, nil
}

// writeFixed prints the fixed text of every processed file. Several files
// are separated by a header line naming each one.
func writeFixed(w io.Writer, result *runner.Result, workDir string) error {
	var fixed []runner.FileOutcome
	for _, file := range result.Files {
		if file.Error == nil && file.Result != nil && file.Result.Fixed != nil {
			fixed = append(fixed, file)
		}
	}

	for _, file := range fixed {
		if len(fixed) > 1 {
			if _, err := fmt.Fprintf(w, "==> %s <==\n", relPath(file.Path, workDir)); err != nil {
				return fmt.Errorf("write fixed text: %w", err)
			}
		}
		if _, err := w.Write(file.Result.Fixed); err != nil {
			return fmt.Errorf("write fixed text: %w", err)
		}
	}
	return nil
}

func normalizeExtensions(exts []string) []string {
	if len(exts) == 0 {
		return nil
	}
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

func relPath(path, workDir string) string {
	if rel, err := filepath.Rel(workDir, path); err == nil && filepath.IsLocal(rel) {
		return rel
	}
	return path
}
