package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/goharper/pkg/runner"
	"github.com/yaklabco/goharper/pkg/version"
)

// JSONOutput is the top-level JSON document.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult is one file's results.
type JSONFileResult struct {
	Path     string     `json:"path"`
	Frontend string     `json:"frontend,omitempty"`
	Lints    []JSONLint `json:"lints"`
	Modified bool       `json:"modified,omitempty"`
	Error    string     `json:"error,omitempty"`
}

// JSONLint is one finding. Offsets are bytes; the span is [start, end).
type JSONLint struct {
	Rule        string   `json:"rule"`
	Kind        string   `json:"kind"`
	Message     string   `json:"message"`
	Start       int      `json:"start"`
	End         int      `json:"end"`
	Line        int      `json:"line"`
	Column      int      `json:"column"`
	Suggestions []string `json:"suggestions"`
}

// JSONSummary holds aggregate counts.
type JSONSummary struct {
	FilesChecked   int            `json:"filesChecked"`
	FilesWithLints int            `json:"filesWithLints"`
	FilesModified  int            `json:"filesModified"`
	FilesErrored   int            `json:"filesErrored"`
	TotalLints     int            `json:"totalLints"`
	Fixable        int            `json:"fixable"`
	Fixed          int            `json:"fixed"`
	ByKind         map[string]int `json:"byKind"`
}

// JSONReporter writes results as one JSON document.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}
	return output.Summary.TotalLints, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: version.Library(),
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{ByKind: make(map[string]int)},
	}
	if result == nil {
		return output
	}

	for _, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)
		if path == "" {
			path = stdinName
		}
		fileResult := JSONFileResult{Path: path, Lints: make([]JSONLint, 0)}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		}

		if fr := file.Result; fr != nil {
			fileResult.Frontend = string(fr.Frontend)
			fileResult.Modified = fr.Written
			for _, l := range fr.Lints {
				line, col := fr.Document.Position(l.Span.Start)
				suggestions := make([]string, 0, len(l.Suggestions))
				for _, s := range l.Suggestions {
					suggestions = append(suggestions, s.String())
				}
				fileResult.Lints = append(fileResult.Lints, JSONLint{
					Rule:        l.Rule,
					Kind:        l.Kind.String(),
					Message:     l.Message,
					Start:       l.Span.Start,
					End:         l.Span.End,
					Line:        line,
					Column:      col,
					Suggestions: suggestions,
				})
			}
		}

		output.Files = append(output.Files, fileResult)
	}

	stats := result.Stats
	output.Summary = JSONSummary{
		FilesChecked:   stats.FilesProcessed,
		FilesWithLints: stats.FilesWithLints,
		FilesModified:  stats.FilesModified,
		FilesErrored:   stats.FilesErrored,
		TotalLints:     stats.LintsTotal,
		Fixable:        stats.LintsFixable,
		Fixed:          stats.LintsFixed,
		ByKind:         stats.LintsByKind,
	}
	if output.Summary.ByKind == nil {
		output.Summary.ByKind = make(map[string]int)
	}
	return output
}
