// Package runner lints many files concurrently with one lint group.
package runner

import "github.com/yaklabco/goharper/pkg/langdetect"

// Options controls a multi-file run.
type Options struct {
	// Paths are the files or directories to process. Defaults to ".".
	Paths []string

	// WorkingDir resolves relative Paths and ignore patterns.
	// Defaults to the process working directory.
	WorkingDir string

	// Extensions limits directory discovery to these lowercase extensions
	// (with leading dot). When empty, any file go-enry recognises as
	// Markdown or Text is picked up. Files named explicitly are always
	// processed.
	Extensions []string

	// ExcludeGlobs skip matching files and directories.
	ExcludeGlobs []string

	// FollowSymlinks traverses directory symlinks.
	FollowSymlinks bool

	// Jobs is the number of workers. 0 or negative means runtime.NumCPU().
	Jobs int

	// Frontend forces a front end. Empty means detect per file.
	Frontend langdetect.Frontend

	// Fix computes the fixed text of each file from the first suggestion
	// of every lint.
	Fix bool

	// Write rewrites fixed files in place. Requires Fix.
	Write bool
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
