package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flippity/internal/core"
	"github.com/vovakirdan/flippity/internal/games/flappy"
)

// Model is the Bubble Tea model that drives one game.
// It implements the game's render/input driver: it collects the latest key
// between ticks, measures the real time between ticks, and paints the
// screen buffer the game draws into.
type Model struct {
	game     *flappy.State
	screen   *core.Screen
	painter  *Painter
	keys     KeyMap
	logger   *log.Logger
	tickRate int
	pending  core.Key  // Most recent key since the last tick
	lastTick time.Time // Zero until the first tick
	quitting bool
}

// NewModel creates a model with a fresh game on the menu screen.
// A nil painter uses the default renderer and a nil logger discards output.
func NewModel(cfg core.RuntimeConfig, painter *Painter, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if painter == nil {
		painter = NewPainter(nil)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	logger.Debug("new game", "seed", cfg.Seed, "fps", cfg.TickRate)

	return Model{
		game:     flappy.New(cfg.Seed),
		screen:   core.NewScreen(core.ScreenWidth, core.ScreenHeight),
		painter:  painter,
		keys:     DefaultKeyMap(),
		logger:   logger,
		tickRate: cfg.TickRate,
	}
}

// Init sets the window title and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(flappy.Title),
		tickCmd(m.tickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		if !FitsScreen(msg.Width, msg.Height) {
			m.logger.Warn("terminal smaller than play field",
				"width", msg.Width, "height", msg.Height,
				"need", fmt.Sprintf("%dx%d", core.ScreenWidth, core.ScreenHeight))
		}
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the key for the next tick. Only the latest key counts.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.logger.Info("interrupted", "mode", m.game.Mode(), "score", m.game.Score())
		m.quitting = true
		return m, tea.Quit
	}

	m.pending = m.keys.MapKey(msg)
	return m, nil
}

// handleTick runs one game tick with the pending key and elapsed time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := 0.0
	if !m.lastTick.IsZero() {
		elapsed = float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
		if elapsed < 0 {
			elapsed = 0
		}
	}
	m.lastTick = now

	from := m.game.Mode()
	frame := core.NewFrame(m.screen, m.pending, elapsed)
	m.game.Tick(frame)
	m.pending = core.KeyNone

	if to := m.game.Mode(); to != from {
		m.logger.Debug("mode change", "from", from, "to", to, "score", m.game.Score())
		if to == flappy.ModeDead {
			m.logger.Info("game over", "score", m.game.Score())
		}
	}

	if frame.Quitting() {
		m.logger.Info("quit", "mode", m.game.Mode(), "score", m.game.Score())
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.tickRate)
}

// View renders the current screen buffer to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.painter.Paint(m.screen)
}

// Game returns the game being driven.
func (m Model) Game() *flappy.State {
	return m.game
}

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program on the local terminal.
func Run(cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, NewPainter(nil), logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
