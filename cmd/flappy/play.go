package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flippity/internal/core"
	"github.com/vovakirdan/flippity/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in the current terminal.

The play field is 80x50 cells; use a terminal at least that large.

Controls:
  P          - Play / play again
  Space      - Flap
  Q          - Quit (menu and game over screens)
  Ctrl+C     - Exit at any time

Examples:
  flappy play
  flappy play --seed 1234
  flappy play --log-file flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// No terminal, no game
	width, height, err := tui.CheckTerminal(os.Stdout)
	if err != nil {
		return err
	}
	if !tui.FitsScreen(width, height) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the play field needs %dx%d\n",
			width, height, core.ScreenWidth, core.ScreenHeight)
	}

	logOut, err := tui.OpenLogFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer logOut.Close()

	logger := tui.NewLogger(logOut, cfg.LogLevel(), "flappy")

	return tui.Run(core.RuntimeConfig{
		TickRate: cfg.Display.FPS,
		Seed:     cfg.Display.Seed,
	}, logger)
}
