// Package gui runs the game loop in a graphical window using Ebiten.
package gui

import (
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/vovakirdan/doodle-jump/internal/core"
)

var (
	skyColor   = color.NRGBA{0xF5, 0xF0, 0xE1, 0xFF}
	textColor  = color.NRGBA{0x20, 0x20, 0x20, 0xFF}
	spriteFill = map[core.Sprite]color.NRGBA{
		core.SpriteDoodler:         {0x9A, 0xC8, 0x3C, 0xFF},
		core.SpriteRegularPlatform: {0x4C, 0xAF, 0x50, 0xFF},
		core.SpriteSlowPlatform:    {0x8D, 0x6E, 0x63, 0xFF},
		core.SpriteFastPlatform:    {0x42, 0x8B, 0xCA, 0xFF},
	}
)

type cmdKind int

const (
	cmdBackground cmdKind = iota
	cmdText
	cmdSprite
)

// drawCmd is one recorded draw call. Ebiten draws outside of Update, so a
// frame is recorded during the loop and replayed in Draw.
type drawCmd struct {
	kind   cmdKind
	x, y   float64
	text   string
	sprite core.Sprite
	rect   core.RectF
}

// Window is an Ebiten rendering surface for the game loop.
type Window struct {
	cfg        core.GameConfig
	logger     *log.Logger
	input      inputSource
	events     []core.Event
	back       []drawCmd
	front      []drawCmd
	background *ebiten.Image
	face       font.Face
	fps        int
}

// NewWindow creates a window for cfg. Assets are loaded by LoadAssets.
func NewWindow(cfg core.GameConfig, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Window{
		cfg:    cfg,
		logger: logger,
		input:  ebitenInput{},
		face:   fallbackFace(),
		fps:    cfg.MaxFPS,
	}
}

// LoadAssets loads the background image and score font. Missing assets are
// logged and skipped.
func (w *Window) LoadAssets() {
	if w.cfg.BackgroundImage != "" {
		img, _, err := ebitenutil.NewImageFromFile(w.cfg.BackgroundImage)
		if err != nil {
			w.logger.Debug("background image not loaded", "path", w.cfg.BackgroundImage, "error", err)
		} else {
			w.background = img
		}
	}

	if w.cfg.FontPath != "" {
		face, err := LoadFace(w.cfg.FontPath, ScoreFontSize)
		if err != nil {
			w.logger.Debug("font not loaded, using fallback", "path", w.cfg.FontPath, "error", err)
		} else {
			w.face = face
		}
	}
}

// SetFramerateLimit sets Ebiten's tick rate, which paces Update and so the
// loop's frames.
func (w *Window) SetFramerateLimit(fps int) {
	if fps <= 0 {
		return
	}
	w.fps = fps
	ebiten.SetTPS(fps)
}

// PollInput queues this tick's input transitions.
func (w *Window) PollInput() {
	w.events = append(w.events, pollInput(w.input)...)
}

// PollEvent returns queued events in arrival order.
func (w *Window) PollEvent() (core.Event, bool) {
	if len(w.events) == 0 {
		return core.Event{}, false
	}
	ev := w.events[0]
	w.events = w.events[1:]
	return ev, true
}

// Clear starts recording a new frame.
func (w *Window) Clear() {
	w.back = w.back[:0]
}

// DrawBackground records the background.
func (w *Window) DrawBackground() {
	w.back = append(w.back, drawCmd{kind: cmdBackground})
}

// DrawText records text at a logical position.
func (w *Window) DrawText(x, y float64, s string) {
	w.back = append(w.back, drawCmd{kind: cmdText, x: x, y: y, text: s})
}

// DrawSprite records a sprite.
func (w *Window) DrawSprite(s core.Sprite, r core.RectF) {
	w.back = append(w.back, drawCmd{kind: cmdSprite, sprite: s, rect: r})
}

// Display makes the recorded frame the one Render replays.
func (w *Window) Display() {
	w.front, w.back = w.back, w.front
}

// Render replays the last displayed frame onto screen.
func (w *Window) Render(screen *ebiten.Image) {
	for _, c := range w.front {
		switch c.kind {
		case cmdBackground:
			w.renderBackground(screen)
		case cmdText:
			ascent := w.face.Metrics().Ascent.Ceil()
			text.Draw(screen, c.text, w.face, int(c.x), int(c.y)+ascent, textColor)
		case cmdSprite:
			fill, ok := spriteFill[c.sprite]
			if !ok {
				fill = color.NRGBA{0xFF, 0x00, 0xFF, 0xFF}
			}
			ebitenutil.DrawRect(screen, c.rect.X, c.rect.Y, c.rect.W, c.rect.H, fill)
		}
	}
}

func (w *Window) renderBackground(screen *ebiten.Image) {
	if w.background == nil {
		screen.Fill(skyColor)
		return
	}
	bw, bh := w.background.Bounds().Dx(), w.background.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w.cfg.WindowWidth)/float64(bw), float64(w.cfg.WindowHeight)/float64(bh))
	screen.DrawImage(w.background, op)
}
