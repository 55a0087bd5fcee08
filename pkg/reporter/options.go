package reporter

import (
	"io"
	"os"
)

// bufWriterSize is the buffer size for output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures a reporter.
type Options struct {
	// Writer receives the report. Defaults to os.Stdout.
	Writer io.Writer

	// Format selects the output format.
	Format Format

	// Color is "auto" (default), "always" or "never". Text only.
	Color string

	// ShowContext prints the source line under each lint. Text only.
	ShowContext bool

	// ShowSummary prints the one-line summary. Text only.
	ShowSummary bool

	// Compact disables JSON indentation.
	Compact bool

	// WorkingDir makes reported paths relative to it when set.
	WorkingDir string
}

// DefaultOptions returns the options used by the lint command.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       "auto",
		ShowContext: true,
		ShowSummary: true,
	}
}
