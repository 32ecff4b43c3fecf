package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flippity/internal/core"
)

// Gap generation constants.
const (
	GapMinY    = 10 // Lowest gap center row (inclusive)
	GapMaxY    = 40 // Highest gap center row (exclusive)
	MaxGapSize = 20 // Gap size at score 0
	MinGapSize = 2  // Gap never shrinks below this
)

// ObstacleChar is the glyph used for both walls.
const ObstacleChar = '|'

// GapSize returns the gap size for an obstacle spawned at the given score.
// The gap shrinks by one row per point until it reaches MinGapSize.
func GapSize(score int) int {
	return core.Max(MinGapSize, MaxGapSize-score)
}

// RandomGap picks a gap center uniformly from [GapMinY, GapMaxY) and
// pairs it with the score-dependent gap size.
func RandomGap(rng *rand.Rand, score int) (gapY, size int) {
	return GapMinY + rng.Intn(GapMaxY-GapMinY), GapSize(score)
}

// Obstacle is a vertical wall with a single gap the player must fly through.
type Obstacle struct {
	X    int // World-space column
	GapY int // Row of the gap center
	Size int // Gap height in rows
}

// NewObstacle creates an obstacle at world column x with a random gap
// sized for the given score.
func NewObstacle(x, score int, rng *rand.Rand) Obstacle {
	gapY, size := RandomGap(rng, score)
	return Obstacle{
		X:    x,
		GapY: gapY,
		Size: size,
	}
}

// Render draws both walls, scrolled by the player's world position.
func (o Obstacle) Render(ctx core.Context, playerX int) {
	screenX := o.X - playerX
	halfSize := o.Size / 2

	// Top wall
	for y := 0; y < o.GapY-halfSize; y++ {
		ctx.Set(screenX, y, core.ColorRed, core.ColorBlack, ObstacleChar)
	}

	// Bottom wall
	for y := o.GapY + halfSize; y < core.ScreenHeight; y++ {
		ctx.Set(screenX, y, core.ColorRed, core.ColorBlack, ObstacleChar)
	}
}

// HitObstacle reports whether the player is in the obstacle's column and
// outside its gap.
//
// The column test is exact equality. That only works because GravityAndMove
// advances X by exactly one; a larger step would need a crossing test.
func (o Obstacle) HitObstacle(p Player) bool {
	halfSize := o.Size / 2

	sameColumn := p.X == o.X
	aboveGap := p.Y < o.GapY-halfSize
	belowGap := p.Y > o.GapY+halfSize

	return sameColumn && (aboveGap || belowGap)
}
