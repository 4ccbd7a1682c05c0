// Package paths decides where the inspector keeps config.yaml and the edit
// journal for one invocation.
package paths

import (
	"cmp"
	"os"
	"path/filepath"
	"runtime"
)

// Working-directory defaults, used when nothing else names a directory.
const (
	DefaultConfigDirName = ".inspector"
	DefaultDataDirName   = ".inspector-data"
)

// Environment overrides.
const (
	EnvConfigDir = "INSPECTOR_CONFIG_DIR"
	EnvDataDir   = "INSPECTOR_DATA_DIR"
)

const appDir = "inspector"

// Overridden in tests.
var (
	userHome   = os.UserHomeDir
	userConfig = os.UserConfigDir
)

// Where carries the directory choices made on the command line.
type Where struct {
	ConfigFlag string
	DataFlag   string
	// User selects the per-user directories instead of the working directory.
	User bool
}

// ConfigDir resolves the directory holding config.yaml:
// --config-dir, then INSPECTOR_CONFIG_DIR, then the per-user config
// directory when User is set, then ./.inspector.
func (w Where) ConfigDir() (string, error) {
	dir := cmp.Or(w.ConfigFlag, os.Getenv(EnvConfigDir))
	if dir == "" && w.User {
		var err error
		if dir, err = UserConfigDir(); err != nil {
			return "", err
		}
	}
	return filepath.Abs(cmp.Or(dir, DefaultConfigDirName))
}

// DataDir resolves the directory holding the journal. fromConfig is the
// data_dir value read from config.yaml and ranks below --data-dir only:
// --data-dir, data_dir, INSPECTOR_DATA_DIR, the per-user data directory when
// User is set, then ./.inspector-data.
func (w Where) DataDir(fromConfig string) (string, error) {
	dir := cmp.Or(w.DataFlag, fromConfig, os.Getenv(EnvDataDir))
	if dir == "" && w.User {
		var err error
		if dir, err = UserDataDir(); err != nil {
			return "", err
		}
	}
	return filepath.Abs(cmp.Or(dir, DefaultDataDirName))
}

// UserConfigDir is os.UserConfigDir/inspector: $XDG_CONFIG_HOME or ~/.config
// on Linux, ~/Library/Application Support on macOS, %AppData% on Windows.
func UserConfigDir() (string, error) {
	dir, err := userConfig()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir), nil
}

// UserDataDir is $XDG_DATA_HOME/inspector on Linux, falling back to
// ~/.local/share/inspector. Other platforms keep data beside the config.
func UserDataDir() (string, error) {
	if runtime.GOOS != "linux" {
		return UserConfigDir()
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appDir), nil
	}
	home, err := userHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appDir), nil
}
