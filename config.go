package tui

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the optional settings an App is built with, set either
// directly via Builder.Config or from a TOML file via Builder.ConfigFile
// or LoadConfig. Every field has a safe zero value so a missing
// or partial config file degrades gracefully rather than failing the
// build.
type Config struct {
	FrameQueueSize int    `toml:"frame_queue_size"`
	ShutdownTimeoutMS int `toml:"shutdown_timeout_ms"`
	LogLevel       string `toml:"log_level"`
}

// DefaultConfig returns the built-in defaults, used when no config file
// is present.
func DefaultConfig() Config {
	return Config{
		FrameQueueSize:    64,
		ShutdownTimeoutMS: 2000,
		LogLevel:          "warn",
	}
}

// LoadConfig reads a TOML config file at path, merging it over
// DefaultConfig. A missing file is not an error: it simply returns the
// defaults, favoring graceful fallback over required configuration.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
