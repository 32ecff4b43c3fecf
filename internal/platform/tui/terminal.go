package tui

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/flippity/internal/core"
)

// ErrNoTerminal is returned when the game is started without a terminal to draw on.
var ErrNoTerminal = errors.New("tui: stdout is not a terminal")

// CheckTerminal verifies that f is a terminal and returns its size.
func CheckTerminal(f *os.File) (width, height int, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, ErrNoTerminal
	}

	width, height, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("tui: cannot read terminal size: %w", err)
	}
	return width, height, nil
}

// FitsScreen reports whether a terminal of the given size shows the whole play field.
func FitsScreen(width, height int) bool {
	return width >= core.ScreenWidth && height >= core.ScreenHeight
}
