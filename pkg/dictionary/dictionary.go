// Package dictionary provides the English word list used by the spell
// checker: dialect-aware lookups, inflection handling and edit-distance
// suggestions. The curated dictionary is loaded once per process and shared
// read-only by every lint group.
package dictionary

import (
	"bufio"
	"cmp"
	_ "embed"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
)

//go:embed words.txt
var curatedWords string

// MaxDistance is the largest edit distance considered for suggestions.
const MaxDistance = 2

// Entry describes one word of the list.
type Entry struct {
	// Word is the lowercase word.
	Word string

	// Rank is the position in the list; lower is more frequent.
	Rank int

	dialects dialectSet
}

// ValidIn reports whether the entry is a valid spelling in dialect d.
func (e Entry) ValidIn(d Dialect) bool {
	return e.dialects.has(d)
}

// Dialects returns the dialects the entry is restricted to, or nil if it is
// valid everywhere.
func (e Entry) Dialects() []Dialect {
	return e.dialects.dialects()
}

// Dictionary is an immutable word list. It is safe for concurrent use.
type Dictionary struct {
	entries map[string]Entry
	ranked  []Entry

	refs atomic.Int64
}

// Parse reads a word list: one word per line, most frequent first, optionally
// followed by "|" and a comma separated list of region codes. Blank lines and
// lines starting with '#' are ignored.
func Parse(r io.Reader) (*Dictionary, error) {
	dict := &Dictionary{entries: make(map[string]Entry)}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		word, codes, restricted := strings.Cut(line, "|")
		word = Normalize(word)
		if word == "" {
			return nil, fmt.Errorf("line %d: empty word", lineNum)
		}

		var set dialectSet
		if restricted {
			var err error
			if set, err = parseDialectSet(codes); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
		}

		if _, dup := dict.entries[word]; dup {
			continue
		}
		entry := Entry{Word: word, Rank: len(dict.ranked), dialects: set}
		dict.entries[word] = entry
		dict.ranked = append(dict.ranked, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}

	return dict, nil
}

//nolint:gochecknoglobals // Process-wide shared dictionary.
var loadCurated = sync.OnceValues(func() (*Dictionary, error) {
	return Parse(strings.NewReader(curatedWords))
})

// Curated returns the process-wide curated dictionary. It is parsed on first
// use; later calls return the same instance.
func Curated() (*Dictionary, error) {
	return loadCurated()
}

// Acquire records a new holder of d and returns d.
func (d *Dictionary) Acquire() *Dictionary {
	d.refs.Add(1)
	return d
}

// Release drops a reference taken with Acquire. Releasing more often than
// acquiring is ignored.
func (d *Dictionary) Release() {
	for {
		current := d.refs.Load()
		if current <= 0 || d.refs.CompareAndSwap(current, current-1) {
			return
		}
	}
}

// Refs returns the number of outstanding references.
func (d *Dictionary) Refs() int64 {
	return d.refs.Load()
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return len(d.ranked)
}

// Lookup returns the entry for an exact (normalized) word.
func (d *Dictionary) Lookup(word string) (Entry, bool) {
	entry, ok := d.entries[Normalize(word)]
	return entry, ok
}

// Contains reports whether word, or a base form of it, is valid in dialect.
func (d *Dictionary) Contains(word string, dialect Dialect) bool {
	word = Normalize(word)
	if word == "" {
		return false
	}
	for _, base := range baseForms(word) {
		if entry, ok := d.entries[base]; ok && entry.ValidIn(dialect) {
			return true
		}
	}
	return false
}

// Known reports whether word, or a base form of it, is in the list for any
// dialect. It returns the first matching entry.
func (d *Dictionary) Known(word string) (Entry, bool) {
	word = Normalize(word)
	for _, base := range baseForms(word) {
		if entry, ok := d.entries[base]; ok {
			return entry, true
		}
	}
	return Entry{}, false
}

type candidate struct {
	entry    Entry
	distance int
}

// Suggest returns up to limit words valid in dialect that are within
// MaxDistance edits of word, closest first and then most frequent first.
// Suggestions keep the capitalisation of word.
func (d *Dictionary) Suggest(word string, dialect Dialect, limit int) []string {
	norm := Normalize(word)
	if norm == "" || limit <= 0 {
		return nil
	}

	target := []rune(norm)
	var found []candidate
	for _, entry := range d.ranked {
		if !entry.ValidIn(dialect) || entry.Word == norm {
			continue
		}
		other := []rune(entry.Word)
		if abs(len(other)-len(target)) > MaxDistance {
			continue
		}
		dist := Distance(target, other)
		if dist <= MaxDistance {
			found = append(found, candidate{entry: entry, distance: dist})
		}
	}

	slices.SortFunc(found, func(a, b candidate) int {
		if c := cmp.Compare(a.distance, b.distance); c != 0 {
			return c
		}
		return cmp.Compare(a.entry.Rank, b.entry.Rank)
	})

	out := make([]string, 0, min(limit, len(found)))
	for _, c := range found[:min(limit, len(found))] {
		out = append(out, MatchCase(word, c.entry.Word))
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
