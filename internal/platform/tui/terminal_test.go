package tui

import (
	"errors"
	"os"
	"testing"
)

func TestFitsScreen(t *testing.T) {
	tests := []struct {
		w, h     int
		expected bool
	}{
		{80, 50, true},
		{200, 60, true},
		{79, 50, false},
		{80, 49, false},
		{80, 24, false},
	}

	for _, tc := range tests {
		if got := FitsScreen(tc.w, tc.h); got != tc.expected {
			t.Errorf("FitsScreen(%d, %d) = %v, expected %v", tc.w, tc.h, got, tc.expected)
		}
	}
}

func TestCheckTerminalRejectsFiles(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "not-a-tty")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, _, err := CheckTerminal(f); !errors.Is(err, ErrNoTerminal) {
		t.Errorf("CheckTerminal on a regular file = %v, expected ErrNoTerminal", err)
	}
}
