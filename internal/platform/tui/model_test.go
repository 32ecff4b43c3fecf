package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flippity/internal/core"
	"github.com/vovakirdan/flippity/internal/games/flappy"
)

func newTestModel(buf *bytes.Buffer) Model {
	logger := NewLogger(buf, log.DebugLevel, "test")
	return NewModel(core.RuntimeConfig{TickRate: 60, Seed: 42}, NewPainter(nil), logger)
}

// send feeds a message to the model and returns the updated model.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func TestModelStartsInMenu(t *testing.T) {
	m := newTestModel(&bytes.Buffer{})

	if m.Game().Mode() != flappy.ModeMenu {
		t.Errorf("model should start in menu, got %v", m.Game().Mode())
	}
	if m.Init() == nil {
		t.Error("Init should start the tick loop")
	}
}

func TestModelKeyAppliesOnNextTick(t *testing.T) {
	m := newTestModel(&bytes.Buffer{})
	start := time.Now()

	m, _ = send(t, m, runeKey('p'))
	if m.Game().Mode() != flappy.ModeMenu {
		t.Fatal("key should not apply before the tick")
	}

	m, cmd := send(t, m, TickMsg(start))
	if m.Game().Mode() != flappy.ModePlaying {
		t.Errorf("P then tick should start the game, got %v", m.Game().Mode())
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	// The key is consumed
	m, _ = send(t, m, TickMsg(start.Add(time.Millisecond)))
	if m.Game().Score() != 0 || m.Game().Mode() != flappy.ModePlaying {
		t.Error("consumed key should not be replayed")
	}
}

func TestModelLatestKeyWins(t *testing.T) {
	m := newTestModel(&bytes.Buffer{})

	m, _ = send(t, m, runeKey('q'))
	m, _ = send(t, m, runeKey('p'))
	m, _ = send(t, m, TickMsg(time.Now()))

	if m.Quitting() {
		t.Error("earlier Q should be replaced by the later P")
	}
	if m.Game().Mode() != flappy.ModePlaying {
		t.Errorf("mode = %v, expected playing", m.Game().Mode())
	}
}

func TestModelElapsedTimeDrivesPhysics(t *testing.T) {
	m := newTestModel(&bytes.Buffer{})
	start := time.Now()

	m, _ = send(t, m, runeKey('p'))
	m, _ = send(t, m, TickMsg(start))
	x := m.Game().Player().X

	// 10ms is below the physics threshold
	m, _ = send(t, m, TickMsg(start.Add(10*time.Millisecond)))
	if m.Game().Player().X != x {
		t.Errorf("no step expected after 10ms, X = %d", m.Game().Player().X)
	}

	// Another 10ms reaches it
	m, _ = send(t, m, TickMsg(start.Add(20*time.Millisecond)))
	if m.Game().Player().X != x+1 {
		t.Errorf("one step expected after 20ms, X = %d", m.Game().Player().X)
	}
}

func TestModelQuitFromMenu(t *testing.T) {
	var buf bytes.Buffer
	m := newTestModel(&buf)

	m, _ = send(t, m, runeKey('q'))
	m, cmd := send(t, m, TickMsg(time.Now()))

	if !m.Quitting() {
		t.Error("Q in menu should quit")
	}
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
	if !strings.Contains(buf.String(), "quit") {
		t.Errorf("quit should be logged, got %q", buf.String())
	}
}

func TestModelForceQuit(t *testing.T) {
	m := newTestModel(&bytes.Buffer{})

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	if !m.Quitting() || cmd == nil {
		t.Error("ctrl+c should quit immediately")
	}
}

func TestModelLogsGameOver(t *testing.T) {
	var buf bytes.Buffer
	m := newTestModel(&buf)
	start := time.Now()

	m, _ = send(t, m, runeKey('p'))
	for i := 0; i < 200 && m.Game().Mode() != flappy.ModeDead; i++ {
		m, _ = send(t, m, TickMsg(start.Add(time.Duration(i)*20*time.Millisecond)))
	}

	if m.Game().Mode() != flappy.ModeDead {
		t.Fatalf("player should eventually fall, mode = %v", m.Game().Mode())
	}
	if !strings.Contains(buf.String(), "game over") {
		t.Errorf("game over should be logged, got %q", buf.String())
	}

	// The death screen is drawn on the tick after the crash
	m, _ = send(t, m, TickMsg(start.Add(time.Hour)))
	if !strings.Contains(m.View(), "You are dead!") {
		t.Error("View should show the death screen")
	}
}

func TestOpenLogFile(t *testing.T) {
	w, err := OpenLogFile("")
	if err != nil {
		t.Fatalf("empty path should discard, got %v", err)
	}
	w.Close()

	path := filepath.Join(t.TempDir(), "flappy.log")
	w, err = OpenLogFile(path)
	if err != nil {
		t.Fatalf("OpenLogFile: %v", err)
	}
	NewLogger(w, log.InfoLevel, "test").Info("hello")
	w.Close()

	if _, err := OpenLogFile(filepath.Join(t.TempDir(), "missing", "dir", "x.log")); err == nil {
		t.Error("unwritable path should fail")
	}
}
