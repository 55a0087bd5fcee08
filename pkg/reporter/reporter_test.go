package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goharper/pkg/document"
	"github.com/yaklabco/goharper/pkg/langdetect"
	"github.com/yaklabco/goharper/pkg/lint"
	"github.com/yaklabco/goharper/pkg/reporter"
	"github.com/yaklabco/goharper/pkg/runner"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{input: "", want: reporter.FormatText},
		{input: "text", want: reporter.FormatText},
		{input: "json", want: reporter.FormatJSON},
		{input: "sarif", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}

	assert.False(t, reporter.Format("xml").IsValid())
}

func TestNew_UnsupportedFormat(t *testing.T) {
	_, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: "xml"})
	require.Error(t, err)
}

// sampleResult is one file with a spelling lint and one failed file.
func sampleResult(dir string) *runner.Result {
	doc := document.NewPlainEnglish("Teh cat sat.\n")
	l := lint.NewLintAt("SpellCheck", lint.KindSpelling, 0, 3, "Did you mean to spell “Teh” this way?").
		WithReplacements("The", "Ten").
		Build()

	result := runner.NewResult()
	result.Add(runner.FileOutcome{
		Path: filepath.Join(dir, "docs", "a.txt"),
		Result: &runner.FileResult{
			Document: doc,
			Frontend: langdetect.FrontendPlain,
			Lints:    []lint.Lint{l},
		},
	})
	result.Add(runner.FileOutcome{
		Path:  filepath.Join(dir, "b.md"),
		Error: errors.New("permission denied"),
	})
	return result
}

func TestTextReporter(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer:      &buf,
		Format:      reporter.FormatText,
		Color:       "never",
		ShowContext: true,
		ShowSummary: true,
		WorkingDir:  dir,
	})
	require.NoError(t, err)

	n, err := rep.Report(context.Background(), sampleResult(dir))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	out := buf.String()
	assert.Contains(t, out, filepath.Join("docs", "a.txt")+" (1 lint)")
	assert.Contains(t, out, filepath.Join("docs", "a.txt")+":1:1  Spelling  Did you mean to spell “Teh” this way?  (SpellCheck)")
	assert.Contains(t, out, "        ^^^\n")
	assert.Contains(t, out, "Suggestion: Replace with: “The”")
	assert.Contains(t, out, "b.md: error: permission denied")
	assert.Contains(t, out, "1 lint (1 Spelling) in 1 file, 1 fixable, 1 file failed")
}

func TestTextReporter_Empty(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never", ShowSummary: true})

	n, err := rep.Report(context.Background(), runner.NewResult())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, "No files to check.\n", buf.String())
}

func TestTextReporter_Stdin(t *testing.T) {
	doc := document.NewPlainEnglish("the cat")
	result := runner.NewResult()
	result.Add(runner.FileOutcome{Result: &runner.FileResult{
		Document: doc,
		Lints:    []lint.Lint{lint.NewLintAt("SentenceCapitalization", lint.KindCapitalization, 0, 3, "Capitalize.").Build()},
	}})

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never"})
	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<stdin>:1:1  Capitalization  Capitalize.  (SentenceCapitalization)")
}

func TestJSONReporter(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{Writer: &buf, Format: reporter.FormatJSON, WorkingDir: dir})
	require.NoError(t, err)

	n, err := rep.Report(context.Background(), sampleResult(dir))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	require.Len(t, out.Files, 2)
	assert.NotEmpty(t, out.Version)

	first := out.Files[0]
	assert.Equal(t, filepath.Join("docs", "a.txt"), first.Path)
	assert.Equal(t, "plain", first.Frontend)
	require.Len(t, first.Lints, 1)
	assert.Equal(t, reporter.JSONLint{
		Rule:        "SpellCheck",
		Kind:        "Spelling",
		Message:     "Did you mean to spell “Teh” this way?",
		Start:       0,
		End:         3,
		Line:        1,
		Column:      1,
		Suggestions: []string{"Replace with: “The”", "Replace with: “Ten”"},
	}, first.Lints[0])

	assert.Equal(t, "permission denied", out.Files[1].Error)
	assert.Empty(t, out.Files[1].Lints)
	assert.NotNil(t, out.Files[1].Lints)

	assert.Equal(t, reporter.JSONSummary{
		FilesChecked:   1,
		FilesWithLints: 1,
		FilesErrored:   1,
		TotalLints:     1,
		Fixable:        1,
		ByKind:         map[string]int{"Spelling": 1},
	}, out.Summary)
}

func TestJSONReporter_Compact(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, Compact: true})

	_, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
	assert.Contains(t, buf.String(), `"files":[]`)
}
