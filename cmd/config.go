package cmd

import (
	"os"

	"github.com/josephgoksu/todolist/internal/config"
	"github.com/josephgoksu/todolist/internal/logger"
	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/josephgoksu/todolist/types"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// InitConfig reads in config file and ENV variables if set, then sets up
// logging, colors and the crash context from the result.
func InitConfig() {
	cfg, err := config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		HandleFatalError("❌ Invalid configuration.", err)
	}

	level := cfg.Log.Level
	if cfg.Verbose {
		level = "debug"
	}
	if _, err := logger.Setup(os.Stderr, level); err != nil {
		HandleFatalError("❌ Invalid log level.", err)
	}

	ui.SetColor(colorEnabled(cfg))

	logger.SetBasePath(config.CrashLogBasePath())
	logger.SetVersion(version)
	logger.SetDataFile(dataPath())
}

// dataPath returns the task file for this invocation. The --file flag wins
// over TODOLIST_DATA_FILE, which wins over the config file.
func dataPath() string {
	return config.DataFilePath(viper.GetViper())
}

// colorEnabled reports whether output should carry ANSI styling.
func colorEnabled(cfg types.AppConfig) bool {
	if noColor || !cfg.UI.Color {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
