package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(ScreenWidth, ScreenHeight)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 50 {
		t.Errorf("Height() = %d, expected 50", s.Height())
	}

	// Check that it's initialized with blank black cells
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || c.BG != ColorBlack {
				t.Fatalf("New screen should be blank on black, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, ColorYellow, ColorBlack, '@')
	c := s.GetCell(5, 5)
	if c.Rune != '@' || c.FG != ColorYellow || c.BG != ColorBlack {
		t.Errorf("GetCell(5, 5) = %+v, expected yellow '@' on black", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, ColorRed, ColorBlack, 'A')
	s.Set(100, 0, ColorRed, ColorBlack, 'A')
	s.Set(0, -1, ColorRed, ColorBlack, 'A')
	s.Set(0, 100, ColorRed, ColorBlack, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClearBg(t *testing.T) {
	s := NewScreen(4, 3)
	s.Set(1, 1, ColorRed, ColorBlack, '|')

	s.ClearBg(ColorNavy)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || c.BG != ColorNavy {
				t.Errorf("After ClearBg, expected blank navy at (%d, %d), got %+v", x, y, c)
			}
		}
	}

	s.Clear()
	if s.GetCell(0, 0).BG != ColorBlack {
		t.Errorf("Clear should reset background to black, got %v", s.GetCell(0, 0).BG)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}
	if s.GetCell(2, 1).FG != ColorWhite {
		t.Errorf("DrawText should use white foreground, got %v", s.GetCell(2, 1).FG)
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	if s.Row(-1) != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", s.Row(-1))
	}
}
