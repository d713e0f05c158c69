package headless

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/doodle-jump/internal/core"
	"github.com/vovakirdan/doodle-jump/internal/loop"
)

// Result summarizes a finished simulation.
type Result struct {
	Frames    uint64
	Score     float64
	ScoreText string
	Seed      int64
	DoodlerX  float64
	DoodlerY  float64
	Platforms int
}

// Simulate runs cfg for the given number of frames at a fixed 1/MaxFPS step
// and returns the final state. Equal configs with a non-zero seed produce
// equal results.
func Simulate(ctx context.Context, cfg core.GameConfig, frames int, script []Input, logger *log.Logger) (*loop.Loop, Result, error) {
	if frames <= 0 {
		return nil, Result{}, fmt.Errorf("headless: frames must be positive, got %d", frames)
	}

	window := NewWindow(frames, script...)
	opts := []loop.Option{loop.WithClock(loop.NewFixedClock(cfg.MaxFPS))}
	if logger != nil {
		opts = append(opts, loop.WithLogger(logger))
	}

	l, err := loop.New(cfg, window, opts...)
	if err != nil {
		return nil, Result{}, fmt.Errorf("headless: %w", err)
	}
	if err := l.Run(ctx); err != nil {
		return l, Result{}, fmt.Errorf("headless: %w", err)
	}

	pos := l.World().Doodler().Position()
	visible := 0
	for _, p := range l.World().Platforms() {
		if p.IsVisible() {
			visible++
		}
	}

	return l, Result{
		Frames:    l.Frames(),
		Score:     l.Score(),
		ScoreText: l.World().ScoreText(),
		Seed:      l.Config().Seed,
		DoodlerX:  pos.X,
		DoodlerY:  pos.Y,
		Platforms: visible,
	}, nil
}
