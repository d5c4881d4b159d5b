// Package config loads swatch settings from defaults, an optional config
// file, SWATCH_* environment variables and command-line flags.
//
// Precedence (highest first): flag > environment > config file > default.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// EnvPrefix is prepended to every environment variable, so "log.level" is
// read from SWATCH_LOG_LEVEL.
const EnvPrefix = "SWATCH"

var (
	validLevels  = []string{"debug", "info", "warn", "warning", "error"}
	validFormats = []string{"text", "json"}
)

// Config is the full set of swatch settings.
type Config struct {
	Log             LogConfig       `mapstructure:"log"`
	Templates       TemplatesConfig `mapstructure:"templates"`
	Addr            string          `mapstructure:"addr"`   // Listen address for serve
	Server          string          `mapstructure:"server"` // Base URL used by client commands
	Client          ClientConfig    `mapstructure:"client"`
	ShutdownTimeout time.Duration   `mapstructure:"shutdown_timeout"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TemplatesConfig selects where HTML templates come from.
// An empty Dir means the templates compiled into the binary.
type TemplatesConfig struct {
	Dir string `mapstructure:"dir"`
}

// ClientConfig controls the HTTP client used by CLI subcommands.
type ClientConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("server", "http://127.0.0.1:8080")
	v.SetDefault("shutdown_timeout", 5*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("templates.dir", "")
	v.SetDefault("client.timeout", 5*time.Second)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file (if any) into v and decodes the result.
// When file is empty, swatch.{yaml,toml,json} is looked up in the working
// directory and $HOME/.config/swatch; not finding one is not an error.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("swatch")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/swatch")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if !slices.Contains(validLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	if !slices.Contains(validFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive, got %s", c.ShutdownTimeout)
	}
	if c.Client.Timeout <= 0 {
		return fmt.Errorf("client.timeout must be positive, got %s", c.Client.Timeout)
	}
	return nil
}
