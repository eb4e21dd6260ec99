package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/topsy-trex/internal/core"
	"github.com/vovakirdan/topsy-trex/internal/games/trex"
)

// helpRows is the number of rows reserved under the play field.
const helpRows = 1

// Model is the Bubble Tea model that hosts one runner game.
// It is the game's Clock, InputSampler and Renderer.
type Model struct {
	game       *trex.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	clock      *Clock
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	quitting   bool
}

// NewModel resets the game and wraps it in a model.
// maxDelta bounds the delta time handed to the simulation.
func NewModel(game *trex.Game, cfg core.RuntimeConfig, maxDelta float64) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		config:     cfg,
		clock:      NewClock(cfg.TickSeconds(), maxDelta),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the pressed action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleTick runs one simulation step with the actions pressed since the last one.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Delta(now)
	m.game.Step(m.inputFrame, dt)
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the game.
func Run(game *trex.Game, cfg core.RuntimeConfig, maxDelta float64) error {
	p := tea.NewProgram(
		NewModel(game, cfg, maxDelta),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
