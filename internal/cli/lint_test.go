package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goharper/internal/cli"
	"github.com/yaklabco/goharper/pkg/reporter"
	"github.com/yaklabco/goharper/pkg/runner"
)

func TestLintCommand_Files(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.txt", "Teh cat sat.\n")
	good := writeFile(t, dir, "good.md", "# Title\n\nThe cat sat.\n")

	stdout, _, err := execute(t, nil, "lint", bad, good)
	require.ErrorIs(t, err, cli.ErrLintsFound)
	assert.Equal(t, cli.ExitLintsFound, cli.ExitCode(err))
	assert.True(t, cli.Quiet(err))

	assert.Contains(t, stdout, "bad.txt:1:1")
	assert.Contains(t, stdout, "(SpellCheck)")
	assert.Contains(t, stdout, "Replace with: “The”")
	assert.NotContains(t, stdout, "good.md")
}

func TestLintCommand_Clean(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.md", "The cat sat.\n")
	writeFile(t, dir, "sub/b.txt", "Hello, world!\n")
	writeFile(t, dir, "main.go", "package teh\n")

	stdout, _, err := execute(t, nil, "lint", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No lints found (2 files checked)")
}

func TestLintCommand_Disable(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "a.txt", "Teh cat sat.\n")

	_, _, err := execute(t, nil, "lint", "--disable", "spelling", path)
	require.NoError(t, err)

	_, _, err = execute(t, nil, "lint", "--disable", "NoSuchRule", path)
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
}

func TestLintCommand_JSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "a.txt", "Teh cat sat.\n")

	stdout, _, err := execute(t, nil, "lint", "--format", "json", path)
	require.ErrorIs(t, err, cli.ErrLintsFound)

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Len(t, out.Files, 1)
	require.Len(t, out.Files[0].Lints, 1)

	l := out.Files[0].Lints[0]
	assert.Equal(t, "SpellCheck", l.Rule)
	assert.Equal(t, "Spelling", l.Kind)
	assert.Equal(t, 0, l.Start)
	assert.Equal(t, 3, l.End)
	assert.Equal(t, 1, l.Line)
	assert.Equal(t, 1, l.Column)
	assert.Equal(t, 1, out.Summary.TotalLints)
}

func TestLintCommand_FixPreview(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "a.txt", "Teh cat sat.\n")

	stdout, stderr, err := execute(t, nil, "lint", "--fix", path)
	require.NoError(t, err)
	assert.Equal(t, "The cat sat.\n", stdout)
	assert.Contains(t, stderr, "(SpellCheck)")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Teh cat sat.\n", string(content))
}

func TestLintCommand_FixWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "Teh cat sat.\n")
	clean := writeFile(t, dir, "b.txt", "The cat sat.\n")

	stdout, _, err := execute(t, nil, "lint", "--fix", "--write", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 fixed in 1 file")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "The cat sat.\n", string(content))

	content, err = os.ReadFile(clean)
	require.NoError(t, err)
	assert.Equal(t, "The cat sat.\n", string(content))
}

func TestLintCommand_WriteRequiresFix(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "a.txt", "Teh cat sat.\n")

	_, _, err := execute(t, nil, "lint", "--write", path)
	require.ErrorIs(t, err, runner.ErrWriteWithoutFix)
	assert.Equal(t, cli.ExitFailure, cli.ExitCode(err))
}

func TestLintCommand_Stdin(t *testing.T) {
	t.Parallel()

	t.Run("piped", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, strings.NewReader("The the cat sat.\n"), "lint")
		require.ErrorIs(t, err, cli.ErrLintsFound)
		assert.Contains(t, stdout, "<stdin>:1:1")
		assert.Contains(t, stdout, "(RepeatedWords)")
	})

	t.Run("dash", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, strings.NewReader("Teh cat sat.\n"), "lint", "--fix", "-")
		require.NoError(t, err)
		assert.Equal(t, "The cat sat.\n", stdout)
	})

	t.Run("write rejected", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, strings.NewReader("Teh cat sat.\n"), "lint", "--fix", "--write", "-")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "standard input")
	})
}

func TestLintCommand_ConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "What a colour.\n")

	british := writeFile(t, dir, "british.yml", "dialect: british\n")
	_, _, err := execute(t, nil, "--config", british, "lint", path)
	require.NoError(t, err)

	_, _, err = execute(t, nil, "lint", path)
	require.ErrorIs(t, err, cli.ErrLintsFound)

	invalid := writeFile(t, dir, "invalid.yml", "dialect: klingon\n")
	_, _, err = execute(t, nil, "--config", invalid, "lint", path)
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
}

func TestLintCommand_MissingPath(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, nil, "lint", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitFailure, cli.ExitCode(err))
}
