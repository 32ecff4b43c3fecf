package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			FPS:  60,
			Seed: 0,
		},
		Log: LogConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
