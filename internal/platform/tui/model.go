package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// Session summarizes a finished run of the program.
type Session struct {
	Final    core.GameState // State of the last game when the program exited
	Best     int            // Highest score across restarts
	Games    int            // Games started, including restarts
	Duration time.Duration
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool

	started time.Time
	best    int
	games   int
	ended   bool // Game over already logged for the current game
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards all output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		config:     cfg,
		keys:       NewKeyMapper(DefaultKeyMap()),
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		started:    time.Now(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())
	m.startGame()
	return m
}

// gameHeight returns the rows left for the game once the help footer is drawn.
func (m Model) gameHeight() int {
	return core.Max(m.config.ScreenH-lipgloss.Height(m.helpView()), 0)
}

func (m Model) helpView() string {
	return m.help.View(m.keys.Keys())
}

// startGame resets the game with the current config and seed.
func (m *Model) startGame() {
	cfg := m.config
	cfg.ScreenH = m.gameHeight()
	m.game.Reset(cfg)
	if r, ok := m.game.(registry.ConfigReporter); ok {
		if err := r.ConfigError(); err != nil {
			m.logger.Warn("config not loaded, keeping previous settings", "game", m.game.ID(), "error", err)
		}
	}
	m.gameState = m.game.State()
	m.games++
	m.ended = false
	m.logger.Debug("game started", "game", m.game.ID(), "seed", cfg.Seed, "screen", [2]int{cfg.ScreenW, cfg.ScreenH})
}

// Init starts the tick loop. The game itself is reset in NewModel.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Debug("quit requested", "score", m.gameState.Score)
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Keys().Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.applySize()
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.applySize()
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// applySize propagates the current screen size to the buffer and the game.
// Games that can't resize in place are restarted unless they already ended.
func (m *Model) applySize() {
	h := m.gameHeight()
	m.screen.Resize(m.config.ScreenW, h)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, h)
		m.gameState = m.game.State()
		return
	}
	if !m.gameState.GameOver {
		m.startGame()
	}
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.startGame()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.best = core.Max(m.best, m.gameState.Score)

	if m.gameState.GameOver && !m.ended {
		m.ended = true
		m.logger.Info("game over", "score", m.gameState.Score, "level", m.gameState.Level)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.helpView()
}

// Session returns a summary of the run so far.
func (m Model) Session() Session {
	return Session{
		Final:    m.gameState,
		Best:     core.Max(m.best, m.gameState.Score),
		Games:    m.games,
		Duration: time.Since(m.started),
	}
}

// Run starts the Bubble Tea program for a game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (Session, error) {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		return m.Session(), err
	}
	return model.Session(), err
}
