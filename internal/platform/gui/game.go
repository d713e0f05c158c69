package gui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/doodle-jump/internal/core"
	"github.com/vovakirdan/doodle-jump/internal/loop"
	"github.com/vovakirdan/doodle-jump/internal/storage"
)

// Game adapts a loop to ebiten.Game. Every Ebiten tick runs one loop frame.
type Game struct {
	loop   *loop.Loop
	window *Window
}

// NewGame creates the window and loop for cfg.
func NewGame(cfg core.GameConfig, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	window := NewWindow(cfg, logger)
	l, err := loop.New(cfg, window, loop.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("gui: %w", err)
	}

	return &Game{loop: l, window: window}, nil
}

// Update polls input and runs one frame. It terminates the game once the
// loop has seen the window close.
func (g *Game) Update() error {
	g.window.PollInput()
	if !g.loop.Frame() {
		return ebiten.Termination
	}
	return nil
}

// Draw replays the last frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.window.Render(screen)
}

// Layout keeps the logical resolution regardless of the window size.
func (g *Game) Layout(_, _ int) (int, int) {
	cfg := g.loop.Config()
	return cfg.WindowWidth, cfg.WindowHeight
}

// Loop returns the game loop.
func (g *Game) Loop() *loop.Loop {
	return g.loop
}

// Run opens the window and plays until it is closed. The finished run is
// saved to store when store is not nil.
func Run(cfg core.GameConfig, store *storage.Store, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g, err := NewGame(cfg, logger)
	if err != nil {
		return err
	}
	g.window.LoadAssets()

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("gui: %w", err)
	}

	if err := g.loop.SaveScore(store); err != nil {
		logger.Warn("could not save score", "error", err)
	}
	return nil
}
