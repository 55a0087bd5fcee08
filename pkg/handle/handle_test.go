package handle_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/yaklabco/goharper/pkg/handle"
)

func TestTable_RegisterLookupRelease(t *testing.T) {
	t.Parallel()

	table := handle.NewTable[string](handle.Options{Name: "test"})

	h := table.Register("value")
	if h == handle.Null {
		t.Fatal("Register returned the null handle")
	}
	if table.Len() != 1 {
		t.Fatalf("Len = %d, want 1", table.Len())
	}

	got, err := table.Lookup(h)
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if got != "value" {
		t.Errorf("Lookup = %q, want value", got)
	}

	released, err := table.Release(h)
	if err != nil {
		t.Fatalf("Release error: %v", err)
	}
	if released != "value" {
		t.Errorf("Release returned %q", released)
	}
	if table.Len() != 0 {
		t.Errorf("Len after release = %d, want 0", table.Len())
	}
}

func TestTable_Null(t *testing.T) {
	t.Parallel()

	table := handle.NewTable[int](handle.Options{Name: "test"})

	if _, err := table.Lookup(handle.Null); !errors.Is(err, handle.ErrNullHandle) {
		t.Errorf("Lookup(Null) error = %v, want ErrNullHandle", err)
	}
	if _, err := table.Release(handle.Null); !errors.Is(err, handle.ErrNullHandle) {
		t.Errorf("Release(Null) error = %v, want ErrNullHandle", err)
	}
}

func TestTable_DoubleRelease(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		poison  bool
		wantErr error
	}{
		{"without poison", false, handle.ErrInvalidHandle},
		{"with poison", true, handle.ErrReleasedHandle},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			table := handle.NewTable[int](handle.Options{Name: "test", Poison: tc.poison})
			h := table.Register(42)

			if _, err := table.Release(h); err != nil {
				t.Fatalf("first Release error: %v", err)
			}
			if _, err := table.Release(h); !errors.Is(err, tc.wantErr) {
				t.Errorf("second Release error = %v, want %v", err, tc.wantErr)
			}
			if _, err := table.Lookup(h); !errors.Is(err, tc.wantErr) {
				t.Errorf("Lookup after release error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestTable_HandlesAreNotSharedAcrossTables(t *testing.T) {
	t.Parallel()

	docs := handle.NewTable[string](handle.Options{Name: "document"})
	groups := handle.NewTable[string](handle.Options{Name: "group"})

	doc := docs.Register("doc")
	group := groups.Register("group")

	if doc == group {
		t.Fatal("two tables produced the same handle value")
	}
	if _, err := groups.Lookup(doc); !errors.Is(err, handle.ErrInvalidHandle) {
		t.Errorf("foreign handle lookup error = %v, want ErrInvalidHandle", err)
	}
}

func TestTable_ErrorNamesTable(t *testing.T) {
	t.Parallel()

	table := handle.NewTable[int](handle.Options{Name: "lint"})
	_, err := table.Lookup(handle.Handle(1 << 40))
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got == "" || got[:4] != "lint" {
		t.Errorf("error %q does not start with the table name", got)
	}
}

func TestTable_ConcurrentDistinctHandles(t *testing.T) {
	t.Parallel()

	table := handle.NewTable[int](handle.Options{Name: "test"})

	const workers = 16
	const perWorker = 200

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWorker {
				h := table.Register(w*perWorker + i)
				v, err := table.Lookup(h)
				if err != nil || v != w*perWorker+i {
					t.Errorf("Lookup(%d) = %d, %v", h, v, err)
					return
				}
				if _, err := table.Release(h); err != nil {
					t.Errorf("Release(%d): %v", h, err)
					return
				}
			}
		}()
	}
	wg.Wait()

	if table.Len() != 0 {
		t.Errorf("Len = %d after all releases, want 0", table.Len())
	}
}
