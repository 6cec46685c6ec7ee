package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crawler/internal/core"
	"github.com/vovakirdan/tui-crawler/internal/registry"
)

// dirtyTracker is implemented by games that know when their view changed.
type dirtyTracker interface {
	Dirty() bool
	ClearDirty()
}

// statusReporter is implemented by games with announcements worth flashing.
type statusReporter interface {
	Status() string
}

// viewCache holds the last rendered body. It lives behind a pointer because
// Bubble Tea calls View on a copy of the model.
type viewCache struct {
	body  string
	valid bool
}

// Model is the Bubble Tea model for running a game. The game is stepped once
// per key press; there is no simulation tick.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	mapper   *KeyMapper
	help     help.Model
	state    core.GameState
	cache    *viewCache
	logger   *log.Logger
	width    int
	height   int
	flash    string
	flashID  int
	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger for UI events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewModel creates a model for game and resets it with cfg.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ...Option) Model {
	keys := DefaultKeyMap()
	m := Model{
		game:   game,
		config: cfg,
		keys:   keys,
		mapper: NewKeyMapper(keys),
		help:   help.New(),
		cache:  &viewCache{},
		logger: log.New(io.Discard),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.screen = core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	m.layout()

	game.Reset(cfg)
	m.state = game.State()
	m.logger.Info("game started", "game", game.ID(), "seed", cfg.Seed)
	return m
}

// Init implements tea.Model. Nothing runs until the first key press.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FlashExpiredMsg:
		if msg.ID == m.flashID {
			m.flash = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey applies one key press to the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mapper.IsHelp(msg) {
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	frame := core.NewInputFrame()
	if m.mapper.MapKeyToFrame(msg, &frame) {
		m.quitting = true
		m.logger.Info("quit", "score", m.state.Score)
		return m, tea.Quit
	}

	res := m.game.Step(frame)
	m.state = res.State
	if res.Changed && !m.isTracked() {
		m.cache.valid = false
	}

	switch {
	case frame.Has(core.ActionPause):
		if m.state.Paused {
			return m, m.setFlash("Paused")
		}
		return m, m.setFlash("Resumed")
	case frame.Has(core.ActionRestart):
		m.logger.Info("game restarted", "game", m.game.ID())
		return m, m.setFlash("New dungeon")
	}

	if sr, ok := m.game.(statusReporter); ok && res.Changed {
		if status := sr.Status(); status != "" {
			m.logger.Debug("status", "game", m.game.ID(), "msg", status, "score", m.state.Score)
			return m, m.setFlash(status)
		}
	}
	return m, nil
}

// handleResize keeps the game running and only resizes the buffer.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layout()
	return m, nil
}

// layout sizes the screen buffer to the space left above the footer.
func (m *Model) layout() {
	m.help.Width = m.width
	footer := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(m.width, max(0, m.height-footer))
	m.cache.valid = false
}

// setFlash shows msg in the footer until its timer expires.
func (m *Model) setFlash(msg string) tea.Cmd {
	m.flashID++
	m.flash = msg
	return flashCmd(m.flashID, flashDuration)
}

func (m Model) isTracked() bool {
	_, ok := m.game.(dirtyTracker)
	return ok
}

// body renders the game, reusing the cached string while nothing changed.
func (m Model) body() string {
	tracker, tracked := m.game.(dirtyTracker)
	if m.cache.valid && (!tracked || !tracker.Dirty()) {
		return m.cache.body
	}

	m.game.Render(m.screen)
	m.cache.body = RenderScreen(m.screen)
	m.cache.valid = true
	if tracked {
		tracker.ClearDirty()
	}
	return m.cache.body
}

// footer shows the flash message over the short help, or the full help.
func (m Model) footer() string {
	if m.flash != "" && !m.help.ShowAll {
		return renderFlash(m.flash)
	}
	return m.help.View(m.keys)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.body() + "\n" + m.footer()
}

// State returns the last game state the model saw.
func (m Model) State() core.GameState {
	return m.state
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
