// Package config holds the diary generator configuration and its loading.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// ConfigHomeEnv names the variable that overrides Dir.
const ConfigHomeEnv = "DIARY_CONFIG_HOME"

const appDir = "diary"

// Dir returns the directory searched for diary.yaml after the working
// directory, or "" when there is no home directory to put it in.
//
// $DIARY_CONFIG_HOME is used as is. Otherwise the diary subdirectory of
// $XDG_CONFIG_HOME, %AppData% (Windows only) or ~/.config is used, in that order.
func Dir() string {
	if dir := os.Getenv(ConfigHomeEnv); dir != "" {
		return dir
	}

	root := os.Getenv("XDG_CONFIG_HOME")
	if root == "" && runtime.GOOS == "windows" {
		root = os.Getenv("APPDATA")
	}
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		root = filepath.Join(home, ".config")
	}
	return filepath.Join(root, appDir)
}
