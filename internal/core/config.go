package core

// Fixed display geometry in character cells.
const (
	ScreenWidth  = 80
	ScreenHeight = 50
)

// RuntimeConfig contains configuration passed to a game session at startup.
type RuntimeConfig struct {
	TickRate int   // Driver ticks per second (default 60)
	Seed     int64 // RNG seed for obstacle gaps
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
