// Package config provides YAML-based runtime configuration loading for the
// game's terminal and SSH drivers.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config contains all runtime configuration.
// Gameplay constants are fixed and deliberately absent.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
}

// DisplayConfig defines how the driver paces the game.
type DisplayConfig struct {
	FPS  int   `yaml:"fps"`
	Seed int64 `yaml:"seed"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	if c.Display.FPS <= 0 || c.Display.FPS > 1000 {
		return fmt.Errorf("%w: display.fps must be in 1..1000, got %d", ErrInvalid, c.Display.FPS)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	if c.Server.Address == "" {
		return fmt.Errorf("%w: server.address is empty", ErrInvalid)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("%w: server.idle_timeout must not be negative", ErrInvalid)
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
