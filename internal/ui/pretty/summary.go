package pretty

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/yaklabco/goharper/pkg/runner"
)

// FormatSummaryOneLine formats run statistics as a single line, such as
// "3 lints (2 Spelling, 1 Repetition) in 2 files, 3 fixable".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.LintsTotal == 0 {
		return s.Success.Render("No lints found") +
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesProcessed, plural(stats.FilesProcessed, "file", "files"))) +
			s.errored(stats) + "\n"
	}

	kinds := slices.Sorted(maps.Keys(stats.LintsByKind))
	byKind := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		byKind = append(byKind, fmt.Sprintf("%d %s", stats.LintsByKind[kind], kind))
	}

	parts := []string{
		s.Failure.Render(fmt.Sprintf("%d %s", stats.LintsTotal, plural(stats.LintsTotal, "lint", "lints"))) +
			" (" + strings.Join(byKind, ", ") + ")" +
			fmt.Sprintf(" in %d %s", stats.FilesWithLints, plural(stats.FilesWithLints, "file", "files")),
	}
	if stats.LintsFixable > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d fixable", stats.LintsFixable)))
	}
	if stats.LintsFixed > 0 {
		fixed := fmt.Sprintf("%d fixed", stats.LintsFixed)
		if stats.FilesModified > 0 {
			fixed += fmt.Sprintf(" in %d %s", stats.FilesModified, plural(stats.FilesModified, "file", "files"))
		}
		parts = append(parts, s.Success.Render(fixed))
	}

	return strings.Join(parts, ", ") + s.errored(stats) + "\n"
}

func (s *Styles) errored(stats runner.Stats) string {
	if stats.FilesErrored == 0 {
		return ""
	}
	return ", " + s.Failure.Render(fmt.Sprintf("%d %s failed", stats.FilesErrored, plural(stats.FilesErrored, "file", "files")))
}
