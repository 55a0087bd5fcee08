//go:build stave

package main

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

// Default target builds the CLI.
var Default = Build

// Aliases for common targets.
var Aliases = map[string]any{
	"b":   Build,
	"lib": Lib.Default,
	"t":   Test.Default,
	"l":   Lint.Default,
	"c":   Check,
	"i":   Install,
	"fmt": Lint.Fmt,
}

// Namespace types group related targets.
type (
	Lib   st.Namespace
	Test  st.Namespace
	Lint  st.Namespace
	CI    st.Namespace
	Bench st.Namespace
)

const (
	cliBinary  = "bin/goharper"
	exampleBin = "bin/florb"
	versionVar = "github.com/yaklabco/goharper/pkg/version.Lib"
)

var sources = []string{"cmd/", "pkg/", "internal/", "go.mod", "go.sum"}

// Build compiles the goharper binary when its sources changed.
func Build() error {
	rebuild, err := target.Dir(cliBinary, sources...)
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println(cliBinary, "is up to date")
		return nil
	}
	fmt.Println("Building goharper...")
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", cliBinary, "./cmd/goharper")
}

// Check runs format, lint, and test sequentially.
func Check() {
	st.SerialDeps(Lint.Fmt, Lint.Default, Test.Default)
}

// Clean removes build artifacts.
func Clean() error {
	fmt.Println("Cleaning build artifacts...")
	for _, path := range []string{"bin", "coverage.out", "coverage.html"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}

// Install installs goharper to $GOBIN or $GOPATH/bin.
func Install() error {
	fmt.Println("Installing goharper...")
	return sh.RunV("go", "install", "-ldflags", ldflags(), "./cmd/goharper")
}

// Uninstall removes goharper from $GOBIN or $GOPATH/bin.
func Uninstall() error {
	binPath, err := installedBinary("goharper")
	if err != nil {
		return err
	}
	if err := os.Remove(binPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Println("goharper is not installed")
			return nil
		}
		return fmt.Errorf("remove binary: %w", err)
	}
	fmt.Printf("Removed %s\n", binPath)
	return nil
}

// Deps downloads and tidies dependencies.
func Deps() error {
	if err := sh.RunV("go", "mod", "download"); err != nil {
		return err
	}
	return sh.RunV("go", "mod", "tidy")
}

// Coverage writes an HTML coverage report.
func Coverage() error {
	st.Deps(Test.Default)
	return sh.RunV("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
}

// Default builds the shared library and its generated header into bin/.
func (Lib) Default() error {
	out := filepath.Join("bin", libName())
	rebuild, err := target.Dir(out, sources...)
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println(out, "is up to date")
		return nil
	}
	fmt.Println("Building libharper...")
	return sh.RunWithV(map[string]string{"CGO_ENABLED": "1"},
		"go", "build", "-buildmode=c-shared", "-ldflags", ldflags(), "-o", out, "./cmd/libharper")
}

// Example compiles the C example against the shared library and runs it.
func (Lib) Example() error {
	st.Deps(Lib.Default)
	cc := cmp.Or(os.Getenv("CC"), "cc")
	if err := sh.RunV(cc, "-I", "cmd/libharper", "-o", exampleBin,
		"cmd/libharper/examples/florb.c", "-L", "bin", "-lharper"); err != nil {
		return fmt.Errorf("compile example: %w", err)
	}
	return sh.RunWithV(map[string]string{libPathVar(): "bin"}, exampleBin, "Teh cat sat on a apple.")
}

// Default runs all tests using gotestsum with race detection and coverage.
func (Test) Default() error {
	return gotestsum("pkgname-and-test-fails")
}

// Verbose runs all tests with standard-verbose output.
func (Test) Verbose() error {
	return gotestsum("standard-verbose")
}

// Default runs golangci-lint with auto-fix.
func (Lint) Default() error {
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// CI runs golangci-lint without auto-fix.
func (Lint) CI() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Fmt formats all Go code.
func (Lint) Fmt() error {
	return sh.RunV("gofmt", "-w", ".")
}

// FmtCheck verifies code formatting without modifying files.
func (Lint) FmtCheck() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return fmt.Errorf("gofmt check failed: %w", err)
	}
	if out != "" {
		return fmt.Errorf("unformatted files:\n%s\nRun 'stave lint:fmt' to fix", out)
	}
	return nil
}

// Vet runs go vet.
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Gate runs all CI checks.
func (CI) Gate() error {
	st.SerialDeps(
		Lint.FmtCheck,
		Lint.Vet,
		Lint.CI,
		Build,
		Lib.Default,
		Test.Default,
		CI.ModTidy,
		CI.Cross,
	)
	fmt.Println("All CI gate checks passed")
	return nil
}

// ModTidy checks that go.mod and go.sum are tidy.
func (CI) ModTidy() error {
	before, err := readModFiles()
	if err != nil {
		return err
	}
	if err := sh.RunV("go", "mod", "tidy"); err != nil {
		return err
	}
	after, err := readModFiles()
	if err != nil {
		return err
	}
	if before != after {
		return errors.New("go.mod or go.sum changed after 'go mod tidy'; please commit the changes")
	}
	return nil
}

// Cross builds the CLI for the release platforms. The shared library
// needs a C toolchain per target and is only built natively.
func (CI) Cross() error {
	platforms := []struct{ goos, goarch string }{
		{"linux", "amd64"},
		{"linux", "arm64"},
		{"darwin", "amd64"},
		{"darwin", "arm64"},
		{"windows", "amd64"},
		{"freebsd", "amd64"},
	}
	for _, p := range platforms {
		fmt.Printf("  Building %s/%s...\n", p.goos, p.goarch)
		env := map[string]string{"GOOS": p.goos, "GOARCH": p.goarch, "CGO_ENABLED": "0"}
		if err := sh.RunWith(env, "go", "build", "-o", os.DevNull, "./cmd/goharper"); err != nil {
			return fmt.Errorf("build failed for %s/%s: %w", p.goos, p.goarch, err)
		}
	}
	return nil
}

// Default runs the Go benchmarks.
func (Bench) Default() error {
	return sh.RunV("go", "test", "-run=^$", "-bench=.", "-benchmem", "./...")
}

func gotestsum(format string) error {
	nCores := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	return sh.RunWithV(map[string]string{"CGO_ENABLED": "1"},
		"go", "tool", "gotestsum",
		"-f", format,
		"--",
		"-race",
		"-p", nCores,
		"-parallel", nCores,
		"./...",
		"-coverprofile=coverage.out",
		"-covermode=atomic",
	)
}

func readModFiles() (string, error) {
	var b strings.Builder
	for _, name := range []string{"go.mod", "go.sum"} {
		data, err := os.ReadFile(name)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", name, err)
		}
		b.Write(data)
	}
	return b.String(), nil
}

// ldflags injects the library version from git.
func ldflags() string {
	version := "dev"
	if out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty"); err == nil {
		version = cmp.Or(strings.TrimSpace(out), version)
	}
	return fmt.Sprintf("-X %s=%s", versionVar, version)
}

func libName() string {
	switch runtime.GOOS {
	case "darwin":
		return "libharper.dylib"
	case "windows":
		return "harper.dll"
	default:
		return "libharper.so"
	}
}

func libPathVar() string {
	if runtime.GOOS == "darwin" {
		return "DYLD_LIBRARY_PATH"
	}
	return "LD_LIBRARY_PATH"
}

func installedBinary(name string) (string, error) {
	if gobin := os.Getenv("GOBIN"); gobin != "" {
		return filepath.Join(gobin, name), nil
	}
	gopath := os.Getenv("GOPATH")
	if gopath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home directory: %w", err)
		}
		gopath = filepath.Join(home, "go")
	}
	return filepath.Join(gopath, "bin", name), nil
}
