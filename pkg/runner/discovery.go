package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/goharper/pkg/langdetect"
)

// Discover returns the sorted, deduplicated absolute paths of the files to
// lint. Directories are walked recursively, skipping hidden and vendored
// trees. Files named explicitly are kept unless an exclude pattern matches.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	excludes, err := CompileGlobs(opts.ExcludeGlobs)
	if err != nil {
		return nil, err
	}

	d := &discoverer{
		opts:     opts,
		workDir:  workDir,
		excludes: excludes,
		seen:     make(map[string]struct{}),
	}

	for _, input := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		abs := input
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(workDir, abs)
		}
		abs = filepath.Clean(abs)

		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", input, err)
		}

		if info.IsDir() {
			if err := d.walk(ctx, abs); err != nil {
				return nil, err
			}
			continue
		}
		if !d.excluded(abs) {
			d.add(abs)
		}
	}

	slices.Sort(d.files)
	return d.files, nil
}

// CompileGlobs compiles ignore patterns. "*" stops at a path separator and
// "**" spans directories.
func CompileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(filepath.ToSlash(pattern), '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

type discoverer struct {
	opts     Options
	workDir  string
	excludes []glob.Glob
	seen     map[string]struct{}
	files    []string
}

func (d *discoverer) add(path string) {
	if _, ok := d.seen[path]; ok {
		return
	}
	d.seen[path] = struct{}{}
	d.files = append(d.files, path)
}

func (d *discoverer) walk(ctx context.Context, root string) error {
	err := filepath.WalkDir(root, func(p string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		hidden := p != root && strings.HasPrefix(entry.Name(), ".")

		if entry.IsDir() {
			if p != root && (hidden || d.excluded(p) || langdetect.IsVendored(d.rel(p)+"/")) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			return d.symlink(ctx, p)
		}

		if !hidden && d.wanted(p) && !d.excluded(p) {
			d.add(p)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

// symlink adds a linked file or, with FollowSymlinks, walks a linked
// directory. Broken links are skipped.
func (d *discoverer) symlink(ctx context.Context, p string) error {
	target, err := filepath.EvalSymlinks(p)
	if err != nil {
		return nil //nolint:nilerr // Broken symlinks are skipped.
	}
	info, err := os.Stat(target)
	if err != nil {
		return nil //nolint:nilerr // Unreadable targets are skipped.
	}
	if info.IsDir() {
		if !d.opts.FollowSymlinks {
			return nil
		}
		// Walk the target; WalkDir does not follow a symlinked root.
		return d.walk(ctx, target)
	}
	if !strings.HasPrefix(filepath.Base(p), ".") && d.wanted(p) && !d.excluded(p) {
		d.add(p)
	}
	return nil
}

// wanted reports whether a discovered file is prose.
func (d *discoverer) wanted(p string) bool {
	if len(d.opts.Extensions) == 0 {
		return langdetect.IsProse(p)
	}
	ext := strings.ToLower(filepath.Ext(p))
	return slices.ContainsFunc(d.opts.Extensions, func(e string) bool {
		return strings.ToLower(e) == ext
	})
}

// excluded matches the working-directory relative path and, for patterns
// without a separator, the base name.
func (d *discoverer) excluded(p string) bool {
	rel := d.rel(p)
	base := path.Base(rel)
	for _, g := range d.excludes {
		if g.Match(rel) || g.Match(base) {
			return true
		}
	}
	return false
}

func (d *discoverer) rel(p string) string {
	rel, err := filepath.Rel(d.workDir, p)
	if err != nil {
		rel = p
	}
	return filepath.ToSlash(rel)
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		return os.Getwd()
	}
	return filepath.Abs(workDir)
}
