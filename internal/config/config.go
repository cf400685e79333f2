package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API APIConfig
	UI  UIConfig
	Log LogConfig
}

// APIConfig holds remote endpoint settings.
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat string `mapstructure:"date_format"`
}

// LogConfig holds the debug log location. The TUI owns the terminal, so logs
// go to a file.
type LogConfig struct {
	Path string `mapstructure:"path"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// SOWA_ADMIN_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("api.base_url", "http://localhost:8000")
	v.SetDefault("api.timeout_seconds", 15)
	v.SetDefault("ui.date_format", "2006-01-02")
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "sowa-admin", "debug.log"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SOWA_ADMIN_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "sowa-admin"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SOWA_ADMIN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
