// Package envfile applies diary settings from .env files to the process
// environment, where the config loader picks them up. Variables that are
// already set always win.
package envfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/subosito/gotenv"
)

// Prefix selects the variables taken from env files. DEBUG is also taken.
const Prefix = "DIARY_"

// Paths returns the env files consulted, highest priority first:
// .env.local and .env in the working directory, then <configDir>/env.
func Paths(configDir string) []string {
	paths := []string{".env.local", ".env"}
	if configDir != "" {
		paths = append(paths, filepath.Join(configDir, "env"))
	}
	return paths
}

// Load applies the diary variables of each file in order and returns the
// names it set. A variable that is non-empty in the environment, or was
// set by an earlier file, is left alone. Missing files are skipped.
func Load(fs afero.Fs, paths ...string) ([]string, error) {
	var applied []string
	for _, path := range paths {
		env, err := read(fs, path)
		if err != nil {
			return applied, err
		}

		keys := lo.Filter(lo.Keys(env), func(key string, _ int) bool { return wanted(key) })
		slices.Sort(keys)
		for _, key := range keys {
			if os.Getenv(key) != "" {
				continue
			}
			if err := os.Setenv(key, env[key]); err != nil {
				return applied, fmt.Errorf("setting %s from %s: %w", key, path, err)
			}
			applied = append(applied, key)
		}
	}
	return applied, nil
}

func read(fs afero.Fs, path string) (gotenv.Env, error) {
	file, err := fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	env, err := gotenv.StrictParse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing env file %s: %w", path, err)
	}
	return env, nil
}

func wanted(key string) bool {
	return strings.HasPrefix(key, Prefix) || key == "DEBUG"
}
