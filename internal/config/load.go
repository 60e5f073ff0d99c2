package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/todolist/types"
	"github.com/spf13/viper"
)

var envKeyReplacer = strings.NewReplacer(".", "_")

// validate is a single instance of Validate, it caches struct info
var validate = validator.New()

// Load assembles the configuration on v from, in increasing priority:
// defaults, the config file, a .env file, TODOLIST_* environment variables
// and any flags already bound to v. cfgFile, when set, must exist.
func Load(v *viper.Viper, cfgFile string) (types.AppConfig, error) {
	// .env is optional; a missing file is not an error.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Debug("ignoring unreadable .env file", "error", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(envKeyReplacer)
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(ConfigName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return types.AppConfig{}, fmt.Errorf("read config %s: %w", v.ConfigFileUsed(), err)
		}
	} else {
		slog.Debug("using config file", "path", v.ConfigFileUsed())
	}

	var cfg types.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return types.AppConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return types.AppConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
