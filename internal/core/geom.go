// Package core provides fundamental types for the game and its drivers.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
