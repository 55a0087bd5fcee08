// Package version reports the library build version and the engine version.
package version

import (
	"runtime/debug"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Core is the version of the document and lint engine.
const Core = "v0.4.1"

// Lib is the library build version, set at link time:
//
//	-ldflags "-X github.com/yaklabco/goharper/pkg/version.Lib=v1.2.3"
//
//nolint:gochecknoglobals // Must be package-level for ldflags injection.
var Lib = ""

// Library returns the build version of the library. It falls back to the
// main module version recorded by the Go toolchain, then to "dev".
func Library() string {
	if Lib != "" {
		return Lib
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "dev"
}

// CoreVersion returns Core without the leading "v".
func CoreVersion() string {
	return strings.TrimPrefix(Core, "v")
}

// Encoded returns the core version as major*10000 + minor*100 + patch, or
// -1 when Core is not a valid semantic version.
func Encoded() int32 {
	return Encode(Core)
}

// Encode packs a semantic version as major*10000 + minor*100 + patch.
// Minor and patch must be below 100. Pre-release and build suffixes are
// ignored. Invalid versions yield -1.
func Encode(v string) int32 {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return -1
	}

	canonical := strings.TrimPrefix(semver.Canonical(v), "v")
	if idx := strings.IndexAny(canonical, "-+"); idx >= 0 {
		canonical = canonical[:idx]
	}

	parts := strings.Split(canonical, ".")
	if len(parts) != 3 {
		return -1
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return -1
		}
		if i > 0 && n > 99 {
			return -1
		}
		nums[i] = n
	}
	if nums[0] > 200_000 {
		return -1
	}

	return int32(nums[0]*10000 + nums[1]*100 + nums[2])
}
