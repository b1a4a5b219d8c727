package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/zombie-survival/internal/core"
	"github.com/vovakirdan/zombie-survival/internal/loop"
	"github.com/vovakirdan/zombie-survival/internal/render"
)

// helpRows is the height of the footer below the game screen.
const helpRows = 1

// Game is what the platform drives. Games hold pure logic with no Bubble Tea
// dependency; the platform handles input, timing and terminal output.
type Game interface {
	// ID returns a unique identifier, used in logs.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new run. Called once at start and again on restart
	// after game over. The RuntimeConfig carries the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by elapsed time with the given keys held.
	Step(held core.Keys, elapsed time.Duration) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current score and whether the run is over.
	State() core.GameState
}

// Options tune the terminal front end.
type Options struct {
	HoldWindow time.Duration    // how long a press keeps a direction held
	Logger     *log.Logger      // nil discards
	Clock      func() time.Time // nil uses time.Now
}

var pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

// Model is the Bubble Tea model for running the game.
type Model struct {
	game     Game
	screen   *core.Screen
	config   core.RuntimeConfig
	pacer    *loop.Pacer
	held     *HeldKeys
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	base     *log.Logger
	clock    func() time.Time
	state    core.GameState
	paused   bool
	quitting bool
}

// NewModel creates a new Bubble Tea model and starts the first run.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = opts.Clock().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultTickInterval
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		config: cfg,
		pacer:  loop.NewPacer(cfg.TickInterval),
		held:   NewHeldKeys(opts.HoldWindow),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		base:   opts.Logger,
		clock:  opts.Clock,
	}
	m.help.Width = cfg.ScreenW
	m.startRun()
	return m
}

// startRun resets the game under a fresh run ID.
func (m *Model) startRun() {
	m.logger = m.base.With("run", uuid.NewString())
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.held.Release()
	m.pacer.Start(m.clock())
	m.logger.Info("run started", "game", m.game.ID(), "seed", m.config.Seed)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("quit", "score", m.state.Score)
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		if m.state.GameOver {
			m.config.Seed = m.clock().UnixNano()
			m.startRun()
		}
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		if !m.state.GameOver {
			m.paused = !m.paused
			m.held.Release()
			m.logger.Debug("pause toggled", "paused", m.paused)
		}
		return m, nil
	}

	if dir, ok := m.keys.Direction(msg); ok && !m.paused {
		m.held.Press(dir, m.clock())
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the game when the pacer says a tick is due.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.paused {
		// Time spent paused never reaches the game.
		m.pacer.Start(now)
		return m, tickCmd(m.config.TickInterval)
	}

	elapsed, ok := m.pacer.Due(now)
	if !ok {
		return m, tickCmd(m.pacer.Wait(now))
	}

	if !m.state.GameOver {
		res := m.game.Step(m.held.Keys(now), elapsed)
		for _, e := range res.Events {
			m.logger.Info(e.Message(), e.KeyVals()...)
		}
		m.state = res.State
	}

	return m, tickCmd(m.config.TickInterval)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.paused {
		footer = pausedStyle.Render(m.game.Title()+" PAUSED") + "  " + footer
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program for game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("%w: %w", render.ErrPresentation, err)
	}
	return nil
}
