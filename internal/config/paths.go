package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// GetGlobalConfigDir returns the path to the global directory (~/.todolist).
// It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ConfigName), nil
}

// DataFilePath returns the task file configured on v. Relative paths are
// kept relative so they resolve against the working directory.
func DataFilePath(v *viper.Viper) string {
	if path := v.GetString(KeyDataFile); path != "" {
		return path
	}
	return DefaultDataFile
}

// CrashLogBasePath returns where crash logs are written.
// Resolution order (first match wins):
// 1. Local project directory ./.todolist (if exists)
// 2. XDG_STATE_HOME/todolist (if XDG_STATE_HOME is set)
// 3. Global fallback ~/.todolist
func CrashLogBasePath() string {
	if info, err := os.Stat(ConfigName); err == nil && info.IsDir() {
		return ConfigName
	}
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return ConfigName
	}
	return dir
}
