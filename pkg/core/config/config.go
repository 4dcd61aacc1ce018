package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds the complete application configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Machine MachineConfig `toml:"machine"`
	History HistoryConfig `toml:"history"`
}

// GeneralConfig holds general application settings.
type GeneralConfig struct {
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// MachineConfig holds simulator defaults.
type MachineConfig struct {
	// DefaultFormat is used when neither flag nor file extension decide.
	DefaultFormat string `toml:"default_format"`
	// MaxSteps bounds a run; 0 means unbounded.
	MaxSteps int `toml:"max_steps"`
}

// HistoryConfig holds run-journal settings.
type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		General: GeneralConfig{
			LogLevel:  "info",
			LogFormat: "text",
		},
		Machine: MachineConfig{
			DefaultFormat: "toml",
			MaxSteps:      0,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    "./data/history.db",
		},
	}
}

// Load reads a TOML configuration file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	cfg.applyEnv()
	return cfg, nil
}

// Resolve loads the configuration from an explicit path, from TMS_CONFIG, or
// from ./configs/config.toml, falling back to the defaults when no file
// exists. Environment overrides are applied in every case.
func Resolve(path string) (Config, error) {
	if path == "" {
		path = os.Getenv("TMS_CONFIG")
	}
	if path == "" {
		path = "configs/config.toml"
		if _, err := os.Stat(path); err != nil {
			cfg := Default()
			cfg.applyEnv()
			return cfg, nil
		}
	}
	return Load(path)
}

// applyEnv overrides individual settings from the environment.
func (c *Config) applyEnv() {
	if v := os.Getenv("TMS_LOG_LEVEL"); v != "" {
		c.General.LogLevel = v
	}
	if v := os.Getenv("TMS_LOG_FORMAT"); v != "" {
		c.General.LogFormat = v
	}
	if v := os.Getenv("TMS_DEFAULT_FORMAT"); v != "" {
		c.Machine.DefaultFormat = v
	}
	if v := os.Getenv("TMS_MAX_STEPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Machine.MaxSteps = n
		}
	}
	if v := os.Getenv("TMS_HISTORY_PATH"); v != "" {
		c.History.Path = v
	}
	if v := os.Getenv("TMS_HISTORY_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.History.Enabled = b
		}
	}
}
