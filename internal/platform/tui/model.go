package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tapcount/internal/core"
	"github.com/vovakirdan/tapcount/internal/games/count"
)

// helpHeight is the number of rows reserved below the game for the key help.
const helpHeight = 1

// Muter is a celebration cue that can be switched on and off.
type Muter interface {
	ToggleMute() bool
}

// Model is the Bubble Tea model running one counting game.
type Model struct {
	game       *count.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keys       KeyMap
	help       help.Model
	muter      Muter
	soundOn    bool
	logger     *log.Logger
	lastStatus count.Status
	quitting   bool
}

// NewModel creates a model for the given game and starts its first round.
// muter may be nil when the cue cannot be toggled.
func NewModel(game *count.Game, cfg core.RuntimeConfig, muter Muter, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	gameH := max(cfg.ScreenH-helpHeight, 1)
	game.Reset(core.RuntimeConfig{
		ScreenW:  cfg.ScreenW,
		ScreenH:  gameH,
		TickRate: cfg.TickRate,
		Seed:     cfg.Seed,
	})

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		muter:      muter,
		soundOn:    true,
		logger:     logger,
		lastStatus: game.State().Status,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("round started", "target", m.game.State().Target)
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

// handleKey processes keyboard input. Taps are queued for the next tick
// so they reach the controller in the order they were pressed.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionMute:
		if m.muter != nil {
			m.soundOn = m.muter.ToggleMute()
			m.logger.Debug("sound toggled", "on", m.soundOn)
		}

	case core.ActionTap:
		m.inputFrame.Push(core.ActionTap)
	}

	return m, nil
}

// handleResize processes window resize events. The round in progress is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	gameH := max(msg.Height-helpHeight, 1)
	m.screen.Resize(msg.Width, gameH)
	m.game.Resize(msg.Width, gameH)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	state := m.game.Step(m.inputFrame)
	if state.Status != m.lastStatus {
		m.logger.Debug("round status changed",
			"from", m.lastStatus,
			"to", state.Status,
			"target", state.Target,
			"taps", state.TapCount,
		)
		m.lastStatus = state.Status
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// State returns the current round state.
func (m Model) State() count.RoundState {
	return m.game.State()
}

// WithSoundOn returns a copy of the model showing the given sound state.
// It does not touch the muter.
func (m Model) WithSoundOn(on bool) Model {
	m.soundOn = on
	return m
}

// SoundOn reports whether the celebration cue is enabled.
func (m Model) SoundOn() bool {
	return m.soundOn
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	status := "sound on"
	if !m.soundOn {
		status = "sound off"
	}
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys) + "  " + status
}

// RunModel starts the Bubble Tea program with a prepared model.
func RunModel(model Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
