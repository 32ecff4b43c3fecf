package core

// Context is the render/input capability a driver hands to the game on
// every tick. The game draws into it, reads the tick's key and elapsed
// time from it, and may ask it to stop the program.
type Context interface {
	// Cls clears the drawing surface to a black background.
	Cls()

	// ClsBg clears the drawing surface to the given background color.
	ClsBg(bg Color)

	// Set draws a single glyph with colors at (x, y).
	// Off-surface coordinates are ignored.
	Set(x, y int, fg, bg Color, glyph rune)

	// Print writes text starting at (x, y).
	Print(x, y int, text string)

	// PrintCentered writes text horizontally centered on row y.
	PrintCentered(y int, text string)

	// Key returns the most recent key pressed during this tick, or KeyNone.
	Key() Key

	// FrameTimeMs returns the real time elapsed since the previous tick.
	FrameTimeMs() float64

	// Quit asks the driver to terminate after the current tick.
	Quit()
}

var _ Context = (*Frame)(nil)

// Frame is the Context for one tick, backed by a Screen.
// Drivers build a fresh Frame per tick and inspect Quitting afterwards.
type Frame struct {
	screen    *Screen
	key       Key
	elapsedMs float64
	quitting  bool
}

// NewFrame creates a frame that draws into screen and reports the given
// key and elapsed time.
func NewFrame(screen *Screen, key Key, elapsedMs float64) *Frame {
	return &Frame{
		screen:    screen,
		key:       key,
		elapsedMs: elapsedMs,
	}
}

func (f *Frame) Cls() {
	f.screen.Clear()
}

func (f *Frame) ClsBg(bg Color) {
	f.screen.ClearBg(bg)
}

func (f *Frame) Set(x, y int, fg, bg Color, glyph rune) {
	f.screen.Set(x, y, fg, bg, glyph)
}

func (f *Frame) Print(x, y int, text string) {
	f.screen.DrawText(x, y, text)
}

func (f *Frame) PrintCentered(y int, text string) {
	f.screen.DrawTextCentered(y, text)
}

func (f *Frame) Key() Key {
	return f.key
}

func (f *Frame) FrameTimeMs() float64 {
	return f.elapsedMs
}

func (f *Frame) Quit() {
	f.quitting = true
}

// Quitting reports whether Quit was called during this frame.
func (f *Frame) Quitting() bool {
	return f.quitting
}

// Screen returns the backing screen buffer.
func (f *Frame) Screen() *Screen {
	return f.screen
}
