// Package config provides runtime configuration for shopfront.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds application configuration.
type Config struct {
	API APIConfig `mapstructure:"api"`
	UI  UIConfig  `mapstructure:"ui"`
	Log LogConfig `mapstructure:"log"`
}

// APIConfig holds remote storefront service settings.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencyLabel string `mapstructure:"currency_label"`
	PricelessText string `mapstructure:"priceless_text"`
}

// LogConfig holds logging settings. An empty path disables file logging.
type LogConfig struct {
	Path string `mapstructure:"path"`
}

// Load reads configuration from file and env. Env var overrides use
// prefix SHOPFRONT_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("api.base_url", "http://localhost:3000/api")
	v.SetDefault("ui.currency_label", "synapses")
	v.SetDefault("ui.priceless_text", "priceless")
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "shopfront", "shopfront.log"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SHOPFRONT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "shopfront"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SHOPFRONT")
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

// NewLogger opens a zap logger appending to path, creating parent
// directories as needed. The TUI owns the terminal, so logs never go to
// stdout; an empty path returns a nop logger.
func NewLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
