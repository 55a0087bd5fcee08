// Package bridge implements the ownership protocol of the C library on
// plain Go types. Every object handed to C lives in a handle table until C
// releases it; every string handed to C is produced by the marshal package.
//
// The cgo layer in cmd/libharper is a thin translation over this package:
// it converts C arguments to Go values, calls one Bridge method and turns
// errors into the C sentinels (NULL or -1).
package bridge

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/goharper/pkg/config"
	"github.com/yaklabco/goharper/pkg/dictionary"
	"github.com/yaklabco/goharper/pkg/document"
	"github.com/yaklabco/goharper/pkg/handle"
	"github.com/yaklabco/goharper/pkg/lint"
	"github.com/yaklabco/goharper/pkg/lint/rules"
	"github.com/yaklabco/goharper/pkg/marshal"
	"github.com/yaklabco/goharper/pkg/parser/goldmark"
)

// maxDocumentBytes bounds every document: lint offsets cross the boundary
// as int32_t.
const maxDocumentBytes = math.MaxInt32

// Bridge owns the handle tables of one library instance.
type Bridge struct {
	cfg      *config.Config
	logger   *log.Logger
	registry *lint.Registry
	dict     *dictionary.Dictionary
	markdown document.Parser
	maxBytes int

	documents *handle.Table[*document.Document]
	groups    *handle.Table[*lint.Group]
	lints     *handle.Table[lint.Lint]
}

// Stats counts live handles.
type Stats struct {
	Documents      int
	LintGroups     int
	Lints          int
	DictionaryRefs int64
}

// New creates a bridge over the curated rule set and dictionary. A nil cfg
// means defaults; a nil logger discards output.
func New(cfg *config.Config, logger *log.Logger) (*Bridge, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	cfg = cfg.Clone()
	if logger == nil {
		logger = log.New(io.Discard)
	}

	dict, err := dictionary.Curated()
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}

	registry := rules.Curated()
	// Fail here rather than on every harper_create_lint_group.
	if _, err := lint.NewGroupFromConfig(registry, dict, cfg); err != nil {
		return nil, fmt.Errorf("invalid lint configuration: %w", err)
	}

	maxBytes := maxDocumentBytes
	if cfg.Bridge.MaxDocumentBytes > 0 && cfg.Bridge.MaxDocumentBytes < maxBytes {
		maxBytes = cfg.Bridge.MaxDocumentBytes
	}

	poison := cfg.Bridge.PoisonReleased
	return &Bridge{
		cfg:       cfg,
		logger:    logger,
		registry:  registry,
		dict:      dict,
		markdown:  goldmark.New(string(cfg.Flavor)),
		maxBytes:  maxBytes,
		documents: handle.NewTable[*document.Document](handle.Options{Name: "document", Poison: poison}),
		groups:    handle.NewTable[*lint.Group](handle.Options{Name: "lint group", Poison: poison}),
		lints:     handle.NewTable[lint.Lint](handle.Options{Name: "lint", Poison: poison}),
	}, nil
}

// Logger returns the bridge logger.
func (b *Bridge) Logger() *log.Logger {
	return b.logger
}

// Live reports the number of live handles of each kind and the references
// held on the shared dictionary.
func (b *Bridge) Live() Stats {
	return Stats{
		Documents:      b.documents.Len(),
		LintGroups:     b.groups.Len(),
		Lints:          b.lints.Len(),
		DictionaryRefs: b.dict.Refs(),
	}
}

// inString converts an inbound C string argument.
func inString(b []byte) (string, error) {
	return marshal.ToInternal(b)
}

// outString converts an outbound string for the C side.
func outString(s string) ([]byte, error) {
	return marshal.FromInternal(s)
}

// checkIndex rejects indexes outside [0, n).
func checkIndex(index int32, n int) error {
	if index < 0 || int(index) >= n {
		return fmt.Errorf("index %d of %d: %w", index, n, marshal.ErrOutOfBounds)
	}
	return nil
}

// toInt32 narrows a count or offset that crosses the boundary.
func toInt32(n int) (int32, error) {
	if n < 0 || n > math.MaxInt32 {
		return -1, fmt.Errorf("value %d: %w", n, marshal.ErrOutOfBounds)
	}
	return int32(n), nil
}
