// Command libharper builds the goharper C library:
//
//	go build -buildmode=c-shared -o libharper.so ./cmd/libharper
//
// The generated libharper.h declares every exported function; harper.h in
// this directory documents the ownership rules. Configuration is read once,
// at the first call, from $GOHARPER_CONFIG and GOHARPER_* variables.
package main

import (
	"sync"

	"github.com/yaklabco/goharper/internal/configloader"
	"github.com/yaklabco/goharper/internal/logging"
	"github.com/yaklabco/goharper/pkg/bridge"
	"github.com/yaklabco/goharper/pkg/config"
	"github.com/yaklabco/goharper/pkg/lint/rules"
)

// lib returns the process-wide bridge, creating it on first use. A broken
// configuration is reported and replaced by defaults so that the host still
// gets a working library.
//
//nolint:gochecknoglobals // One bridge per loaded library.
var lib = sync.OnceValue(func() *bridge.Bridge {
	cfg := config.NewConfig()
	var warnings []string
	var path string

	result, loadErr := configloader.LoadLibrary(rules.Curated())
	if loadErr == nil {
		cfg = result.Config
		warnings = result.Warnings
		path = result.Paths.Explicit
	}

	logger := logging.New(cfg.LogLevel)
	if loadErr != nil {
		logger.Warn("ignoring library configuration", logging.FieldError, loadErr)
	}
	for _, w := range warnings {
		logger.Warn(w)
	}

	b, err := bridge.New(cfg, logger)
	if err != nil {
		panic(err)
	}
	logger.Debug("library loaded",
		logging.FieldDialect, cfg.Dialect,
		logging.FieldConfig, path,
	)
	return b
})

func main() {}
