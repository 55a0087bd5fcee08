package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yaklabco/goharper/pkg/fsutil"
)

func writeFile(t *testing.T, content string, mode os.FileMode) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("returns content and snapshot", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "Teh cat sat.", 0o600)
		content, snap, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(content) != "Teh cat sat." {
			t.Errorf("content = %q", content)
		}
		if snap.Size != int64(len(content)) {
			t.Errorf("Size = %d, want %d", snap.Size, len(content))
		}
		if snap.Mode != 0o600 {
			t.Errorf("Mode = %v, want 0600", snap.Mode)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "nope.md"))
		if !errors.Is(err, fsutil.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())
		if !errors.Is(err, fsutil.ErrIsDirectory) {
			t.Errorf("error = %v, want ErrIsDirectory", err)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err := fsutil.ReadFile(ctx, writeFile(t, "x", 0o644))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}

func TestChanged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("unchanged", func(t *testing.T) {
		t.Parallel()

		_, snap, err := fsutil.ReadFile(ctx, writeFile(t, "same", 0o644))
		if err != nil {
			t.Fatal(err)
		}
		changed, err := fsutil.Changed(ctx, snap)
		if err != nil || changed {
			t.Errorf("Changed() = %v, %v; want false, nil", changed, err)
		}
	})

	t.Run("content differs with same size and time", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "aaaa", 0o644)
		_, snap, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("bbbb"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := os.Chtimes(path, time.Time{}, snap.ModTime); err != nil {
			t.Fatal(err)
		}
		changed, err := fsutil.Changed(ctx, snap)
		if err != nil || !changed {
			t.Errorf("Changed() = %v, %v; want true, nil", changed, err)
		}
	})

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "gone", 0o644)
		_, snap, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			t.Fatal(err)
		}
		if err := os.Remove(path); err != nil {
			t.Fatal(err)
		}
		changed, err := fsutil.Changed(ctx, snap)
		if err != nil || !changed {
			t.Errorf("Changed() = %v, %v; want true, nil", changed, err)
		}
	})

	t.Run("nil snapshot", func(t *testing.T) {
		t.Parallel()

		if _, err := fsutil.Changed(ctx, nil); !errors.Is(err, fsutil.ErrNilSnapshot) {
			t.Errorf("error = %v, want ErrNilSnapshot", err)
		}
	})
}
