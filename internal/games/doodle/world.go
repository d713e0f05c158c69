// Package doodle implements a Doodle Jump-style platformer.
// The doodler bounces between drifting platforms; rising past the scroll
// line moves the camera and earns points.
package doodle

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/doodle-jump/internal/core"
)

// GameID identifies this game in the score store.
const GameID = "doodle"

// Scoring and camera constants.
const (
	// DoodlerHeight is the y coordinate the doodler is held at while the
	// camera scrolls upwards.
	DoodlerHeight = 200.0

	// ScoreVelocityThreshold separates a real climb from a bounce on the
	// same platform: scoring requires dy below it.
	ScoreVelocityThreshold = -1.62

	// ScoreStep is added on every qualifying frame.
	ScoreStep = 0.5
)

// Canvas receives draw calls for one frame in logical coordinates.
type Canvas interface {
	DrawBackground()
	DrawText(x, y float64, text string)
	DrawSprite(s core.Sprite, r core.RectF)
}

// World owns the doodler, the platforms and the score.
type World struct {
	cfg       core.GameConfig
	rng       *rand.Rand
	doodler   *Doodler
	platforms []Platform
	score     Score[float64]
	width     float64
	height    float64
}

// NewWorld creates a world with cfg.PlatformCount platforms spread evenly
// down the screen at seeded random x positions.
func NewWorld(cfg core.GameConfig) (*World, error) {
	if cfg.PlatformCount < 0 {
		return nil, fmt.Errorf("doodle: platform count must not be negative, got %d", cfg.PlatformCount)
	}
	if cfg.WindowWidth < PlatformWidth || cfg.WindowHeight <= DoodlerSpriteH {
		return nil, fmt.Errorf("doodle: window %dx%d too small", cfg.WindowWidth, cfg.WindowHeight)
	}

	w := &World{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		width:  float64(cfg.WindowWidth),
		height: float64(cfg.WindowHeight),
	}
	w.doodler = NewDoodler(w.width, w.height)
	w.score = NewScore(0.0)

	w.platforms = make([]Platform, 0, cfg.PlatformCount)
	spacing := 0.0
	if cfg.PlatformCount > 0 {
		spacing = w.height / float64(cfg.PlatformCount)
	}
	for i := 0; i < cfg.PlatformCount; i++ {
		p, err := NewPlatform(KindFor(i), w.randomX(), float64(i)*spacing, w.width)
		if err != nil {
			return nil, err
		}
		w.platforms = append(w.platforms, p)
	}

	return w, nil
}

// randomX picks a platform x that keeps it fully on screen.
func (w *World) randomX() float64 {
	span := w.width - PlatformWidth
	if span <= 0 {
		return 0
	}
	return w.rng.Float64() * span
}

// HandleEvent forwards an input event to the doodler.
func (w *World) HandleEvent(ev core.Event) {
	w.doodler.HandleKeyboardInput(ev)
}

// Update advances the doodler and every platform by one frame and resolves
// landings.
func (w *World) Update(dt float64) {
	w.doodler.UpdatePosition(dt)
	w.scroll()

	for _, p := range w.platforms {
		p.UpdatePosition()
	}

	w.resolveLandings()
}

// scroll keeps the doodler at the scroll line while it climbs, moving the
// platforms down instead. Platforms leaving the bottom re-enter at the top.
func (w *World) scroll() {
	y := w.doodler.Position().Y
	if y >= DoodlerHeight {
		return
	}

	shift := DoodlerHeight - y
	w.doodler.HoldAt(DoodlerHeight)

	for _, p := range w.platforms {
		p.Scroll(shift)
		if b := p.Bounds(); b.Y > w.height {
			p.Place(w.randomX(), b.Y-w.height)
		}
	}
}

// resolveLandings bounces a falling doodler whose feet crossed the top of a
// visible platform during this frame.
func (w *World) resolveLandings() {
	if w.doodler.DY() <= 0 {
		return
	}

	feet, prevFeet := w.doodler.Feet()
	db := w.doodler.Bounds()

	for _, p := range w.platforms {
		if !p.IsVisible() {
			continue
		}
		b := p.Bounds()
		if !db.OverlapsX(b) {
			continue
		}
		if prevFeet <= b.Y && feet >= b.Y {
			if p.Land() {
				w.doodler.LandOn(b.Y)
				return
			}
		}
	}
}

// UpdateScore applies the scoring rule for the current frame and reports
// whether it fired. Points accrue on every frame the doodler is held at the
// scroll line while still climbing fast.
func (w *World) UpdateScore() bool {
	if w.doodler.Position().Y == DoodlerHeight && w.doodler.DY() < ScoreVelocityThreshold {
		w.score = w.score.Add(NewScore(ScoreStep))
		return true
	}
	return false
}

// Draw composes the frame: background, score, doodler, then every visible
// platform.
func (w *World) Draw(c Canvas) {
	c.DrawBackground()
	c.DrawText(0, 0, w.ScoreText())
	c.DrawSprite(core.SpriteDoodler, w.doodler.Bounds())

	for _, p := range w.platforms {
		if !p.IsVisible() {
			continue
		}
		c.DrawSprite(p.Sprite(), p.Bounds())
	}
}

// ScoreText returns the HUD label for the truncated score.
func (w *World) ScoreText() string {
	return fmt.Sprintf("Score: %d", int(w.score.Value()))
}

// Score returns the accumulated score.
func (w *World) Score() float64 {
	return w.score.Value()
}

// Doodler returns the player character.
func (w *World) Doodler() *Doodler {
	return w.doodler
}

// Platforms returns all platforms, visible or not.
func (w *World) Platforms() []Platform {
	return w.platforms
}

// Config returns the configuration the world was built with.
func (w *World) Config() core.GameConfig {
	return w.cfg
}
