package flappy

import (
	"math"

	"github.com/vovakirdan/flippity/internal/core"
)

// Physics constants, in rows per physics step.
const (
	Gravity       = 0.2  // Velocity gained per step while falling
	TerminalSpeed = 2.0  // Gravity stops accumulating at this velocity
	FlapVelocity  = -2.0 // Velocity after a flap (negative = up)
)

// Spawn position and glyph.
const (
	StartX     = 5
	StartY     = 25
	PlayerChar = '@'
)

// Player is the flapping character. X only counts progress; the player is
// always drawn in column 0.
type Player struct {
	X        int     // World-space progress, one per physics step
	Y        int     // Screen row, 0 at the top
	Velocity float64 // Vertical speed, negative is upward
}

// NewPlayer creates a player at (x, y) at rest.
func NewPlayer(x, y int) Player {
	return Player{X: x, Y: y}
}

// GravityAndMove runs one physics step.
func (p *Player) GravityAndMove() {
	if p.Velocity < TerminalSpeed {
		p.Velocity = math.Min(p.Velocity+Gravity, TerminalSpeed)
	}

	p.Y += int(p.Velocity)
	p.X++

	// Can't fly above the top of the screen
	if p.Y < 0 {
		p.Y = 0
	}
}

// Flap replaces the current velocity with an upward impulse.
func (p *Player) Flap() {
	p.Velocity = FlapVelocity
}

// Render draws the player in column 0.
func (p Player) Render(ctx core.Context) {
	ctx.Set(0, p.Y, core.ColorYellow, core.ColorBlack, PlayerChar)
}
