// Package main contains Mage build targets for the diary CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	modulePath = "github.com/gorewood/diary"

	binDir  = "bin"
	binName = "diary"
	cmdPkg  = "./cmd/diary"
)

// tools maps the names passed to "go tool" to the packages pinned in go.mod.
var tools = map[string]string{
	"golangci-lint": "github.com/golangci/golangci-lint/v2/cmd/golangci-lint",
	"goimports":     "golang.org/x/tools/cmd/goimports",
	"govulncheck":   "golang.org/x/vuln/cmd/govulncheck",
}

// formatDirs are the source roots goimports checks.
var formatDirs = []string{"cmd", "internal", "magefiles"}

// Default target when mage runs without arguments.
var Default = Build

// Build compiles the CLI binary into bin/, stamping the version from git.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-ldflags", ldflags(), "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs every package's tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Fmt rewrites imports and formatting in place with goimports.
func Fmt() error {
	return goTool("goimports", append([]string{"-w", "-local", modulePath}, formatDirs...)...)
}

// Lint fails on unformatted files, then runs go vet and golangci-lint.
// The linters are pinned by the tool block in go.mod.
func Lint() error {
	out, err := sh.Output("go", append([]string{"tool", "goimports", "-l", "-local", modulePath}, formatDirs...)...)
	if err != nil {
		return fmt.Errorf("goimports: %w", err)
	}
	if out != "" {
		return fmt.Errorf("files need goimports (run mage fmt):\n%s", out)
	}
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	return goTool("golangci-lint", "run", "./...")
}

// Vuln reports known vulnerabilities in reachable dependencies.
func Vuln() error {
	return goTool("govulncheck", "./...")
}

// Check runs Lint, Vuln and Test in order.
func Check() {
	mg.SerialDeps(Lint, Vuln, Test)
}

// Generate builds the CLI and runs it against the entries directory
// given by DIARY_ENTRIES_DIR, or ./entries.
func Generate() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "generate")
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}

// goTool runs one of the pinned tools with output streamed.
func goTool(name string, args ...string) error {
	if _, ok := tools[name]; !ok {
		return fmt.Errorf("%s is not a pinned tool", name)
	}
	return sh.RunV("go", append([]string{"tool", name}, args...)...)
}

// ldflags sets main.version, main.commit and main.date for the binary.
func ldflags() string {
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || version == "" {
		version = "dev"
	}
	commit, err := sh.Output("git", "rev-parse", "HEAD")
	if err != nil || commit == "" {
		commit = "none"
	}
	date := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s", version, commit, date)
}
