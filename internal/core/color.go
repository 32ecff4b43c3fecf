package core

// Color represents a foreground or background color for a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

// Palette used by the game screens.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorYellow
	ColorNavy
	ColorWhite
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorNavy:
		return "navy"
	case ColorWhite:
		return "white"
	default:
		return "unknown"
	}
}
