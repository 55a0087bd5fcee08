package runner

import (
	"github.com/yaklabco/goharper/pkg/document"
	"github.com/yaklabco/goharper/pkg/langdetect"
	"github.com/yaklabco/goharper/pkg/lint"
)

// FileResult is the outcome of linting one file or one input stream.
type FileResult struct {
	// Document is the linted document; it maps offsets to lines.
	Document *document.Document

	// Frontend is the parser the document was built with.
	Frontend langdetect.Frontend

	// Lints are the findings in group order.
	Lints []lint.Lint

	// Fixed is the text with fixes applied. Nil unless fixing was requested.
	Fixed []byte

	// FixesApplied counts the lints whose first suggestion was applied.
	FixesApplied int

	// FixesSkipped counts fixes dropped because they overlapped another.
	FixesSkipped int

	// Written reports whether the file was rewritten in place.
	Written bool
}

// Fixable returns the number of lints that carry at least one suggestion.
func (r *FileResult) Fixable() int {
	n := 0
	for idx := range r.Lints {
		if r.Lints[idx].HasSuggestions() {
			n++
		}
	}
	return n
}

// FileOutcome pairs a path with its result or error.
type FileOutcome struct {
	Path   string
	Result *FileResult
	Error  error
}

// Stats aggregates a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesErrored    int
	FilesWithLints  int
	FilesModified   int

	LintsTotal   int
	LintsFixable int
	LintsFixed   int

	// LintsByKind counts findings per kind name.
	LintsByKind map[string]int
}

// Result is the outcome of a run. Files are in path order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// NewResult creates an empty result.
func NewResult() *Result {
	return &Result{Stats: Stats{LintsByKind: make(map[string]int)}}
}

// Remaining returns the number of lints not resolved by a fix.
func (r *Result) Remaining() int {
	if r == nil {
		return 0
	}
	return r.Stats.LintsTotal - r.Stats.LintsFixed
}

// HasLints reports whether any lint remains unfixed.
func (r *Result) HasLints() bool {
	return r.Remaining() > 0
}

// HasErrors reports whether any file could not be processed.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// Add records the outcome of one file.
func (r *Result) Add(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	fr := outcome.Result
	if fr == nil {
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.LintsTotal += len(fr.Lints)
	r.Stats.LintsFixable += fr.Fixable()
	r.Stats.LintsFixed += fr.FixesApplied
	if len(fr.Lints) > 0 {
		r.Stats.FilesWithLints++
	}
	if fr.Written {
		r.Stats.FilesModified++
	}
	for idx := range fr.Lints {
		r.Stats.LintsByKind[fr.Lints[idx].Kind.String()]++
	}
}
