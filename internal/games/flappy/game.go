// Package flappy implements a Flappy Bird-style game.
// The player falls under gravity, flaps upward, and must fly through the gap
// in each wall. Walls get tighter as the score goes up.
package flappy

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/flippity/internal/core"
)

// FrameDuration is the real time, in milliseconds, that must accumulate
// before the next physics step runs.
const FrameDuration = 20.0

// Title is the display name of the game.
const Title = "Flippity Flappity"

// Mode is the screen the game is currently on.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeDead
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeDead:
		return "dead"
	default:
		return "unknown"
	}
}

// State is everything preserved between ticks.
type State struct {
	player    Player
	obstacle  Obstacle
	score     int
	frameTime float64 // Milliseconds since the last physics step
	mode      Mode
	rng       *rand.Rand
}

// New creates a game on the menu screen with a generator seeded by seed.
func New(seed int64) *State {
	return NewWithRand(rand.New(rand.NewSource(seed)))
}

// NewWithRand creates a game on the menu screen that draws obstacle gaps
// from rng.
func NewWithRand(rng *rand.Rand) *State {
	return &State{
		player:   NewPlayer(StartX, StartY),
		obstacle: NewObstacle(core.ScreenWidth, 0, rng),
		mode:     ModeMenu,
		rng:      rng,
	}
}

// Mode returns the current screen.
func (s *State) Mode() Mode {
	return s.mode
}

// Score returns the number of obstacles passed this run.
func (s *State) Score() int {
	return s.score
}

// Player returns a copy of the player.
func (s *State) Player() Player {
	return s.player
}

// Obstacle returns a copy of the current obstacle.
func (s *State) Obstacle() Obstacle {
	return s.obstacle
}

// FrameTime returns the time accumulated toward the next physics step.
func (s *State) FrameTime() float64 {
	return s.frameTime
}

// Tick runs the handler for the current mode. Called once per frame.
func (s *State) Tick(ctx core.Context) {
	switch s.mode {
	case ModeMenu:
		s.mainMenu(ctx)
	case ModePlaying:
		s.play(ctx)
	case ModeDead:
		s.dead(ctx)
	}
}

// Restart begins a fresh run.
func (s *State) Restart() {
	s.player = NewPlayer(StartX, StartY)
	s.frameTime = 0
	s.obstacle = NewObstacle(core.ScreenWidth, 0, s.rng)
	s.mode = ModePlaying
	s.score = 0
}

func (s *State) mainMenu(ctx core.Context) {
	ctx.Cls()
	ctx.PrintCentered(5, "Welcome to flippity flappity")
	ctx.PrintCentered(8, "(P) Play Game")
	ctx.PrintCentered(9, "(Q) Quit Game")

	s.handleMenuKey(ctx)
}

func (s *State) play(ctx core.Context) {
	ctx.ClsBg(core.ColorNavy)
	s.frameTime += ctx.FrameTimeMs()
	ctx.Print(0, 0, "Press SPACE to flap")
	ctx.Print(0, 1, fmt.Sprintf("Score: %d", s.score))

	// Gravity is gated by accumulated time; input is not
	if s.frameTime >= FrameDuration {
		s.frameTime = 0
		s.player.GravityAndMove()
	}

	if ctx.Key() == core.KeySpace {
		s.player.Flap()
	}

	s.player.Render(ctx)

	if s.player.Y > core.ScreenHeight {
		s.mode = ModeDead
	}

	s.obstacle.Render(ctx, s.player.X)

	if s.player.X > s.obstacle.X {
		s.score++
		s.obstacle = NewObstacle(s.player.X+core.ScreenWidth, s.score, s.rng)
	}

	if s.player.Y > core.ScreenHeight || s.obstacle.HitObstacle(s.player) {
		s.mode = ModeDead
	}
}

func (s *State) dead(ctx core.Context) {
	ctx.Cls()
	ctx.PrintCentered(5, "You are dead!")
	ctx.PrintCentered(7, fmt.Sprintf("You earned %d points", s.score))
	ctx.PrintCentered(9, "(P) Play Again")
	ctx.PrintCentered(10, "(Q) Quit Game")

	s.handleMenuKey(ctx)
}

// handleMenuKey handles the P/Q choice shared by the menu and death screens.
func (s *State) handleMenuKey(ctx core.Context) {
	switch ctx.Key() {
	case core.KeyP:
		s.Restart()
	case core.KeyQ:
		ctx.Quit()
	}
}
