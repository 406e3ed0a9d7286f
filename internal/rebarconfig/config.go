// Package rebarconfig loads process-level defaults for the rebar CLI
// and its optional servers (listen address, log level, color,
// maximum accepted source size). None of this reaches the three core
// subsystems, which take no configuration beyond their constructor
// arguments.
package rebarconfig

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the CLI/server-level configuration, loaded from (in
// increasing priority) built-in defaults, an optional rebar.yaml, and
// REBAR_-prefixed environment variables.
type Config struct {
	Server   ServerConfig `mapstructure:"server"`
	Log      LogConfig    `mapstructure:"log"`
	NoColor  bool         `mapstructure:"no_color"`
	MaxBytes int          `mapstructure:"max_source_bytes"`
}

// ServerConfig configures the playground HTTP+WebSocket server.
type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// LogConfig configures the debug event logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads rebar.yaml from the working directory or path (if
// non-empty), overlaying built-in defaults and REBAR_-prefixed
// environment variables, and returns the resolved Config.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.address", ":4621")
	v.SetDefault("log.level", "info")
	v.SetDefault("no_color", false)
	v.SetDefault("max_source_bytes", 1<<20)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("rebar")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("REBAR")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("rebarconfig: reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("rebarconfig: unmarshaling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.MaxBytes <= 0 {
		return fmt.Errorf("rebarconfig: max_source_bytes must be positive, got %d", c.MaxBytes)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("rebarconfig: unknown log.level %q", c.Log.Level)
	}
	return nil
}
