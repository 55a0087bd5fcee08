package fix_test

import (
	"testing"

	"github.com/yaklabco/goharper/pkg/fix"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		edits  []fix.TextEdit
		want   string
	}{
		{
			name:   "empty edits returns original",
			source: "Teh cat sat.",
			edits:  nil,
			want:   "Teh cat sat.",
		},
		{
			name:   "single replacement",
			source: "Teh cat sat.",
			edits:  []fix.TextEdit{fix.Replace(0, 3, "The")},
			want:   "The cat sat.",
		},
		{
			name:   "single insertion",
			source: "Hello,world",
			edits:  []fix.TextEdit{fix.Insert(6, " ")},
			want:   "Hello, world",
		},
		{
			name:   "single deletion",
			source: "the the cat",
			edits:  []fix.TextEdit{fix.Delete(3, 7)},
			want:   "the cat",
		},
		{
			name:   "multiple non-overlapping edits",
			source: "a apple and a orange",
			edits: []fix.TextEdit{
				fix.Replace(0, 1, "an"),
				fix.Replace(12, 13, "an"),
			},
			want: "an apple and an orange",
		},
		{
			name:   "multibyte source",
			source: "naïve  café",
			edits:  []fix.TextEdit{fix.Replace(6, 8, " ")},
			want:   "naïve café",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fix.Apply(tt.source, tt.edits)
			if got != tt.want {
				t.Errorf("Apply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextEdit_Delta(t *testing.T) {
	t.Parallel()

	if got := fix.Replace(0, 3, "The").Delta(); got != 0 {
		t.Errorf("Delta() = %d, want 0", got)
	}
	if got := fix.Insert(2, "abc").Delta(); got != 3 {
		t.Errorf("Delta() = %d, want 3", got)
	}
	if got := fix.Delete(2, 6).Delta(); got != -4 {
		t.Errorf("Delta() = %d, want -4", got)
	}
	if fix.Insert(2, "").IsDeletion() {
		t.Error("empty insertion must not count as a deletion")
	}
}
