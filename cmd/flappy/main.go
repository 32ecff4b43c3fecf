// flappy is a Flappy Bird-style game for the terminal.
//
// Usage:
//
//	flappy                   - Play in this terminal (same as "flappy play")
//	flappy play              - Play in this terminal
//	flappy serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.flappy/config.yaml, ./configs/flappy.yaml)
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible obstacles
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flippity/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flippity Flappity - flap through the gaps in your terminal",
	Long: `Flippity Flappity is a Flappy Bird-style game for the terminal.

Fall under gravity, press Space to flap, and fly through the gap in each
wall. Every wall you pass scores a point and makes the next gap smaller.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play

Examples:
  flappy
  flappy play --seed 42
  flappy serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the config file and applies any flags set on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Display.FPS = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Display.Seed = flagSeed
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("ssh") {
		cfg.Server.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.Server.HostKey = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		cfg.Server.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
