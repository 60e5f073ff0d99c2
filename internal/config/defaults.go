// Package config provides centralized configuration constants and path
// resolution for todolist. All default values are defined here.
package config

import "github.com/spf13/viper"

const (
	// AppName is used for the config file name, env prefix and data directories.
	AppName = "todolist"

	// ConfigName is the config file base name searched in $HOME and the working directory.
	ConfigName = ".todolist"

	// EnvPrefix prefixes environment overrides, e.g. TODOLIST_DATA_FILE.
	EnvPrefix = "TODOLIST"

	// DefaultDataFile is the task file used when nothing else is configured.
	DefaultDataFile = "todo.json"

	// DefaultLogLevel keeps diagnostics quiet unless asked for.
	DefaultLogLevel = "warn"
)

// Keys shared by flags, config files and environment variables.
const (
	KeyDataFile = "data.file"
	KeyLogLevel = "log.level"
	KeyColor    = "ui.color"
	KeyVerbose  = "verbose"
	KeyConfig   = "config"
)

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDataFile, DefaultDataFile)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyColor, true)
}
