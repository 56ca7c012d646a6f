// Package config loads this module's layered configuration (file,
// environment, defaults) via viper, the same library and layering order
// the reference service in this corpus uses for its own config package.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds every tunable the CLI and engine read at startup.
type Config struct {
	Engine EngineConfig `mapstructure:"engine"`
	Ledger LedgerConfig `mapstructure:"ledger"`
	Log    LogConfig    `mapstructure:"log"`
}

// EngineConfig controls package engine's default parallelism and the
// graph the CLI loads when no path is given on the command line.
type EngineConfig struct {
	ThreadCount      int    `mapstructure:"thread_count"`
	DefaultGraphPath string `mapstructure:"default_graph_path"`
}

// LedgerConfig controls the run-history store.
type LedgerConfig struct {
	DSN string `mapstructure:"dsn"`
}

// LogConfig controls applog's verbosity.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from configPath if non-empty, otherwise
// searches the standard locations, falling back to defaults when no file
// is found. Environment variables (SUBMATCH_*) override file values.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("submatch")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/submatch")
	}

	v.SetEnvPrefix("submatch")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// no config file; defaults + env only
		} else if os.IsNotExist(err) {
			// explicit path given but missing; defaults + env only
		} else {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("engine.thread_count", 4)
	v.SetDefault("engine.default_graph_path", "")
	v.SetDefault("ledger.dsn", "submatch.db")
	v.SetDefault("log.level", "info")
}

// Validate rejects configurations the engine cannot run with.
func (c *Config) Validate() error {
	if c.Engine.ThreadCount < 1 {
		return fmt.Errorf("engine.thread_count must be at least 1, got %d", c.Engine.ThreadCount)
	}
	if c.Ledger.DSN == "" {
		return fmt.Errorf("ledger.dsn must not be empty")
	}
	return nil
}
