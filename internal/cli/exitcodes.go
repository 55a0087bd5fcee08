package cli

import (
	"errors"

	"github.com/yaklabco/goharper/internal/configloader"
	"github.com/yaklabco/goharper/pkg/runner"
)

// Exit codes for goharper.
const (
	// ExitSuccess indicates no lints remain.
	ExitSuccess = 0

	// ExitLintsFound indicates the run completed with unfixed lints.
	ExitLintsFound = 1

	// ExitFailure indicates a usage or internal error.
	ExitFailure = 2

	// ExitConfigError indicates an invalid configuration.
	ExitConfigError = 65

	// ExitIOError indicates some files could not be read or written.
	ExitIOError = 74
)

var (
	// ErrLintsFound signals that lints remain after the run.
	ErrLintsFound = errors.New("lints found")

	// ErrFilesFailed signals that some files could not be processed.
	ErrFilesFailed = errors.New("some files could not be processed")
)

// ExitCodeFromResult returns the exit code of a completed run. Unfixed
// lints take precedence over file errors.
func ExitCodeFromResult(result *runner.Result) int {
	switch {
	case result.HasLints():
		return ExitLintsFound
	case result.HasErrors():
		return ExitIOError
	default:
		return ExitSuccess
	}
}

// resultError converts a run result to the error RunE returns.
func resultError(result *runner.Result) error {
	switch ExitCodeFromResult(result) {
	case ExitLintsFound:
		return ErrLintsFound
	case ExitIOError:
		return ErrFilesFailed
	default:
		return nil
	}
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var validation *configloader.ValidationError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrLintsFound):
		return ExitLintsFound
	case errors.Is(err, ErrFilesFailed):
		return ExitIOError
	case errors.As(err, &validation):
		return ExitConfigError
	default:
		return ExitFailure
	}
}

// Quiet reports whether err only signals an exit status and needs no log line.
func Quiet(err error) bool {
	return errors.Is(err, ErrLintsFound) || errors.Is(err, ErrFilesFailed)
}
