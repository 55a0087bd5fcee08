package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseStdin(t *testing.T) {
	t.Parallel()

	reader := strings.NewReader("text")
	assert.True(t, useStdin(reader, nil))
	assert.True(t, useStdin(reader, []string{"-"}))
	assert.False(t, useStdin(reader, []string{"a.txt"}))
	assert.False(t, useStdin(reader, []string{"-", "a.txt"}))

	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("text"), 0o644))
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	assert.True(t, useStdin(f, nil))

	null, err := os.Open(os.DevNull)
	require.NoError(t, err)
	t.Cleanup(func() { _ = null.Close() })
	assert.False(t, useStdin(null, nil))
}
