package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/goharper/internal/logging"
	"github.com/yaklabco/goharper/pkg/document"
	"github.com/yaklabco/goharper/pkg/fix"
	"github.com/yaklabco/goharper/pkg/fsutil"
	"github.com/yaklabco/goharper/pkg/langdetect"
	"github.com/yaklabco/goharper/pkg/lint"
)

// ErrWriteWithoutFix is returned when Write is requested without Fix.
var ErrWriteWithoutFix = errors.New("write requires fix")

// Runner lints files with one group. Lint groups are safe for concurrent
// linting, so every worker shares it.
type Runner struct {
	Group    *lint.Group
	Markdown document.Parser
}

// New creates a runner. markdown builds documents for Markdown files.
func New(group *lint.Group, markdown document.Parser) *Runner {
	return &Runner{Group: group, Markdown: markdown}
}

// Run discovers files under opts.Paths and lints them with a worker pool.
// The result lists files in path order regardless of completion order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Write && !opts.Fix {
		return nil, ErrWriteWithoutFix
	}

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := NewResult()
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	logging.FromContext(ctx).Debug("linting files",
		logging.FieldFilesDiscovered, len(files),
		logging.FieldJobs, jobs,
	)

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Go(func() {
			r.worker(ctx, opts, workCh, outCh)
		})
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.Add(outcome)
		}
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}
	return result, nil
}

func (r *Runner) worker(ctx context.Context, opts Options, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		if ctx.Err() != nil {
			return
		}

		outcome := FileOutcome{Path: path}
		outcome.Result, outcome.Error = r.ProcessFile(ctx, path, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// ProcessFile lints one file and, when requested, fixes and rewrites it.
// The file is only rewritten if it has not changed since it was read.
func (r *Runner) ProcessFile(ctx context.Context, path string, opts Options) (*FileResult, error) {
	ctx = logging.WithFields(ctx, logging.FieldPath, path)

	content, snap, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	result, err := r.LintSource(ctx, path, content, opts)
	if err != nil {
		return nil, err
	}

	if opts.Write && result.Fixed != nil {
		written, err := fsutil.Rewrite(ctx, snap, content, result.Fixed)
		if err != nil {
			return nil, fmt.Errorf("write fixes: %w", err)
		}
		result.Written = written
		if written {
			logging.FromContext(ctx).Debug("file fixed", logging.FieldFix, result.FixesApplied)
		}
	}

	return result, nil
}

// LintSource lints content read from name. name selects the front end and
// may be empty for unnamed input such as stdin.
func (r *Runner) LintSource(ctx context.Context, name string, content []byte, opts Options) (*FileResult, error) {
	frontend := opts.Frontend
	if frontend == "" {
		frontend = langdetect.Detect(name, content)
	}

	doc, err := r.document(frontend, string(content))
	if err != nil {
		return nil, fmt.Errorf("build document: %w", err)
	}

	lints, err := r.Group.Lint(ctx, doc)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("lint: %w", ctxErr)
	}
	if err != nil {
		logging.FromContext(ctx).Warn("some rules failed", logging.FieldError, err)
	}

	result := &FileResult{Document: doc, Frontend: frontend, Lints: lints}
	if opts.Fix {
		if err := applyFixes(result, content); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (r *Runner) document(frontend langdetect.Frontend, source string) (*document.Document, error) {
	if frontend == langdetect.FrontendMarkdown && r.Markdown != nil {
		return document.New(r.Markdown, source)
	}
	return document.NewPlainEnglish(source), nil
}

// applyFixes applies the first suggestion of every lint. Overlapping fixes
// after the first are skipped.
func applyFixes(result *FileResult, content []byte) error {
	edits := lint.FirstSuggestionEdits(result.Lints)
	accepted, skipped, _, err := fix.Prepare(edits, len(content))
	if err != nil {
		return fmt.Errorf("prepare fixes: %w", err)
	}

	result.Fixed = []byte(fix.Apply(string(content), accepted))
	result.FixesApplied = len(edits) - len(skipped)
	result.FixesSkipped = len(skipped)
	return nil
}
