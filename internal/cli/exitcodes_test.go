package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/goharper/internal/configloader"
	"github.com/yaklabco/goharper/pkg/document"
	"github.com/yaklabco/goharper/pkg/lint"
	"github.com/yaklabco/goharper/pkg/runner"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	validation := &configloader.ValidationError{Field: "dialect", Message: "invalid"}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"lints", ErrLintsFound, ExitLintsFound},
		{"files", fmt.Errorf("run: %w", ErrFilesFailed), ExitIOError},
		{"config", fmt.Errorf("load configuration: %w", validation), ExitConfigError},
		{"other", errors.New("boom"), ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}

	assert.True(t, Quiet(ErrLintsFound))
	assert.False(t, Quiet(errors.New("boom")))
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	withLints := func(fixed int) *runner.FileResult {
		l := lint.NewLintAt("SpellCheck", lint.KindSpelling, 0, 3, "x").Build()
		return &runner.FileResult{Document: document.NewPlainEnglish("Teh"), Lints: []lint.Lint{l}, FixesApplied: fixed}
	}

	clean := runner.NewResult()
	clean.Add(runner.FileOutcome{Path: "a", Result: &runner.FileResult{}})
	assert.Equal(t, ExitSuccess, ExitCodeFromResult(clean))
	assert.NoError(t, resultError(clean))

	linted := runner.NewResult()
	linted.Add(runner.FileOutcome{Path: "a", Result: withLints(0)})
	linted.Add(runner.FileOutcome{Path: "b", Error: errors.New("denied")})
	assert.Equal(t, ExitLintsFound, ExitCodeFromResult(linted))

	fixed := runner.NewResult()
	fixed.Add(runner.FileOutcome{Path: "a", Result: withLints(1)})
	assert.Equal(t, ExitSuccess, ExitCodeFromResult(fixed))

	failed := runner.NewResult()
	failed.Add(runner.FileOutcome{Path: "b", Error: errors.New("denied")})
	assert.Equal(t, ExitIOError, ExitCodeFromResult(failed))
	assert.ErrorIs(t, resultError(failed), ErrFilesFailed)
}
