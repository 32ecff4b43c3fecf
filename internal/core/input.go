package core

// Key is a key press reported by the driver for a single tick.
// Only the keys the game reacts to are distinguished; everything else
// arrives as KeyOther.
type Key int

const (
	KeyNone  Key = iota // No key pressed this tick
	KeyP                // Play / play again
	KeyQ                // Quit
	KeySpace            // Flap
	KeyOther            // Any other key, ignored by the game
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyP:
		return "P"
	case KeyQ:
		return "Q"
	case KeySpace:
		return "Space"
	case KeyOther:
		return "Other"
	default:
		return "Unknown"
	}
}
