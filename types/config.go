/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool       `mapstructure:"verbose"`
	Config  string     `mapstructure:"config"`
	Data    DataConfig `mapstructure:"data" validate:"required"`
	Log     LogConfig  `mapstructure:"log" validate:"required"`
	UI      UIConfig   `mapstructure:"ui"`
}

// DataConfig holds data storage configuration
type DataConfig struct {
	// File is the task file. Relative paths resolve against the working directory.
	File string `mapstructure:"file" validate:"required"`
}

// LogConfig holds diagnostics settings
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error DEBUG INFO WARN ERROR"`
}

// UIConfig holds terminal rendering settings
type UIConfig struct {
	Color bool `mapstructure:"color"`
}
