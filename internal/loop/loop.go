// Package loop drives a doodle World frame by frame against a rendering
// surface: poll events, update, score, redraw.
package loop

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/doodle-jump/internal/core"
	"github.com/vovakirdan/doodle-jump/internal/games/doodle"
	"github.com/vovakirdan/doodle-jump/internal/storage"
)

// MaxDeltaTime caps the measured frame time so a stalled surface does not
// launch the doodler through platforms.
const MaxDeltaTime = 0.25

// State is the loop's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateClosed
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Window is the rendering surface the loop draws into. Implementations own
// event delivery and the frame-rate cap.
type Window interface {
	doodle.Canvas

	// SetFramerateLimit caps how often frames are presented.
	SetFramerateLimit(fps int)

	// PollEvent returns the next pending event, or false when none is left.
	PollEvent() (core.Event, bool)

	// Clear starts a new frame.
	Clear()

	// Display presents the frame drawn since the last Clear.
	Display()
}

// Loop owns the window, the clock and the world.
type Loop struct {
	cfg       core.GameConfig
	window    Window
	clock     Clock
	world     *doodle.World
	logger    *log.Logger
	state     State
	deltaTime float64
	frames    uint64
	saved     bool
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock replaces the wall clock, typically with a FixedClock.
func WithClock(c Clock) Option {
	return func(l *Loop) {
		l.clock = c
	}
}

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

// New builds the world from cfg and prepares the window.
// A zero cfg.Seed is replaced with a time-based seed.
func New(cfg core.GameConfig, window Window, opts ...Option) (*Loop, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	world, err := doodle.NewWorld(cfg)
	if err != nil {
		return nil, fmt.Errorf("loop: cannot create world: %w", err)
	}

	l := &Loop{
		cfg:    cfg,
		window: window,
		world:  world,
		state:  StateRunning,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}
	if l.clock == nil {
		l.clock = NewWallClock()
	}

	window.SetFramerateLimit(cfg.MaxFPS)
	l.logger.Debug("loop created",
		"platforms", cfg.PlatformCount,
		"fps", cfg.MaxFPS,
		"seed", cfg.Seed,
	)

	return l, nil
}

// Frame runs one frame. It returns false once the window has been closed;
// the frame that observes the close event neither updates nor draws.
func (l *Loop) Frame() bool {
	if l.state == StateClosed {
		return false
	}

	l.pollEvents()
	if l.state == StateClosed {
		l.logger.Debug("window closed", "frames", l.frames, "score", l.world.Score())
		return false
	}

	l.update()
	l.updateScore()
	l.redrawFrame()
	l.frames++
	return true
}

// Close ends the run without waiting for a close event, for surfaces that
// go away on their own such as a dropped SSH session.
func (l *Loop) Close() {
	if l.state == StateClosed {
		return
	}
	l.state = StateClosed
	l.logger.Debug("loop closed", "frames", l.frames, "score", l.world.Score())
}

// Run calls Frame until the window closes or ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !l.Frame() {
			return nil
		}
	}
}

// pollEvents measures the frame time and drains pending events.
func (l *Loop) pollEvents() {
	l.deltaTime = core.ClampF(l.clock.Restart().Seconds(), 0, MaxDeltaTime)

	for {
		ev, ok := l.window.PollEvent()
		if !ok {
			return
		}
		if ev.Type == core.EventClosed {
			l.state = StateClosed
			return
		}
		l.world.HandleEvent(ev)
	}
}

func (l *Loop) update() {
	l.world.Update(l.deltaTime)
}

func (l *Loop) updateScore() {
	l.world.UpdateScore()
}

func (l *Loop) redrawFrame() {
	l.window.Clear()
	l.world.Draw(l.window)
	l.window.Display()
}

// State returns the lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// World returns the simulated world.
func (l *Loop) World() *doodle.World {
	return l.world
}

// Score returns the current score.
func (l *Loop) Score() float64 {
	return l.world.Score()
}

// Frames returns the number of completed frames.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// DeltaTime returns the clamped elapsed time of the last polled frame.
func (l *Loop) DeltaTime() float64 {
	return l.deltaTime
}

// Record returns the run summary stored in the score history.
func (l *Loop) Record() storage.ScoreEntry {
	return storage.ScoreEntry{
		GameID: doodle.GameID,
		Score:  int(l.world.Score()),
		Frames: int64(l.frames),
		Seed:   l.cfg.Seed,
	}
}

// SaveScore appends the finished run to store. Runs that never scored and a
// nil store are skipped. A run is stored at most once.
func (l *Loop) SaveScore(store *storage.Store) error {
	rec := l.Record()
	if l.saved || store == nil || rec.Score <= 0 {
		return nil
	}
	if _, err := store.SaveScore(rec); err != nil {
		return fmt.Errorf("loop: %w", err)
	}
	l.saved = true
	l.logger.Info("score saved", "score", rec.Score, "frames", rec.Frames)
	return nil
}

// Config returns the configuration the loop runs with, seed resolved.
func (l *Loop) Config() core.GameConfig {
	return l.cfg
}
