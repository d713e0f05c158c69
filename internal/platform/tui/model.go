package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/doodle-jump/internal/core"
	"github.com/vovakirdan/doodle-jump/internal/loop"
	"github.com/vovakirdan/doodle-jump/internal/storage"
)

// footerRows is the number of terminal rows reserved below the playfield.
const footerRows = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running one game loop in the terminal.
type Model struct {
	loop     *loop.Loop
	window   *Window
	store    *storage.Store
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewModel creates a model playing cfg on a width x height terminal.
// store and logger may be nil.
func NewModel(cfg core.GameConfig, store *storage.Store, logger *log.Logger, width, height int) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	window := NewWindow(cfg, width, height-footerRows)
	if err := window.LoadBackground(cfg.BackgroundText); err != nil {
		logger.Debug("background text not loaded", "path", cfg.BackgroundText, "error", err)
	}

	l, err := loop.New(cfg, window, loop.WithLogger(logger))
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	return newModel(l, window, store, logger, width), nil
}

func newModel(l *loop.Loop, window *Window, store *storage.Store, logger *log.Logger, width int) Model {
	h := help.New()
	h.Width = width

	return Model{
		loop:   l,
		window: window,
		store:  store,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   h,
	}
}

// Init starts the frame tick.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.window.FPS())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.window.Resize(msg.Width, msg.Height-footerRows)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues keyboard input for the next frame. Quitting goes through
// the loop as a close event so the run ends like a closed window.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.window.Push(core.Closed())
	case k != core.KeyUnknown:
		m.window.PressKey(k)
	}
	return m, nil
}

// handleTick runs one loop frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.window.ExpireKeys()

	if !m.loop.Frame() {
		m.Finish()
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.window.FPS())
}

// View renders the last presented frame and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.window.Front()) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Finish closes the loop and records the run. It is called when the loop
// sees a close event and again once the program has exited, which covers
// programs that stop without one (a dropped SSH session). The run is
// stored once.
func (m Model) Finish() {
	m.loop.Close()
	if err := m.loop.SaveScore(m.store); err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// Loop returns the game loop driven by the model.
func (m Model) Loop() *loop.Loop {
	return m.loop
}

// Run plays one game in the current terminal until the player quits.
func Run(cfg core.GameConfig, store *storage.Store, logger *log.Logger, width, height int) error {
	model, err := NewModel(cfg, store, logger, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	// The final model shares this model's loop
	_, err = p.Run()
	model.Finish()
	return err
}
