package tui

import (
	"math"
	"os"
	"strings"

	"github.com/vovakirdan/doodle-jump/internal/core"
)

// spriteStyle is how a sprite is painted into terminal cells.
type spriteStyle struct {
	fill  rune
	color core.Color
}

var spriteStyles = map[core.Sprite]spriteStyle{
	core.SpriteDoodler:         {fill: '█', color: core.ColorBrightYellow},
	core.SpriteRegularPlatform: {fill: '▀', color: core.ColorGreen},
	core.SpriteSlowPlatform:    {fill: '▀', color: core.ColorBrightRed},
	core.SpriteFastPlatform:    {fill: '▀', color: core.ColorCyan},
}

// Window is a terminal rendering surface for the game loop. Logical pixel
// coordinates are scaled onto the character grid. Drawing goes to a back
// buffer that Display copies to the front buffer shown by View.
//
// Window is not safe for concurrent use; the Bubble Tea event loop owns it.
type Window struct {
	logicalW   float64
	logicalH   float64
	back       *core.Screen
	front      *core.Screen
	background []string
	events     []core.Event
	keys       *KeyTracker
	fps        int
}

// NewWindow creates a window of cols x rows cells showing a logical area of
// cfg.WindowWidth x cfg.WindowHeight.
func NewWindow(cfg core.GameConfig, cols, rows int) *Window {
	cols = core.Max(cols, 1)
	rows = core.Max(rows, 1)
	return &Window{
		logicalW: float64(cfg.WindowWidth),
		logicalH: float64(cfg.WindowHeight),
		back:     core.NewScreen(cols, rows),
		front:    core.NewScreen(cols, rows),
		keys:     NewKeyTracker(),
		fps:      cfg.MaxFPS,
	}
}

// LoadBackground reads text art drawn behind every frame.
// A missing or unreadable file leaves the background blank.
func (w *Window) LoadBackground(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	w.background = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	return nil
}

// SetFramerateLimit sets the tick rate used by the model.
func (w *Window) SetFramerateLimit(fps int) {
	if fps > 0 {
		w.fps = fps
	}
}

// FPS returns the frame-rate limit.
func (w *Window) FPS() int {
	return w.fps
}

// Push queues an event for the next PollEvent calls.
func (w *Window) Push(ev core.Event) {
	w.events = append(w.events, ev)
}

// PressKey records a terminal key press and queues the resulting events.
func (w *Window) PressKey(k core.Key) {
	w.events = append(w.events, w.keys.Press(k)...)
}

// ExpireKeys queues releases for keys that stopped repeating.
func (w *Window) ExpireKeys() {
	w.events = append(w.events, w.keys.Expire()...)
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

// Resize changes the character grid.
func (w *Window) Resize(cols, rows int) {
	cols = core.Max(cols, 1)
	rows = core.Max(rows, 1)
	w.back.Resize(cols, rows)
	w.front.Resize(cols, rows)
}

// Clear starts a new frame in the back buffer.
func (w *Window) Clear() {
	w.back.Clear()
}

// DrawBackground paints the background text art.
func (w *Window) DrawBackground() {
	for y, line := range w.background {
		if y >= w.back.Height() {
			return
		}
		w.back.DrawTextColored(0, y, line, core.ColorGray)
	}
}

// DrawText writes text at the logical position.
func (w *Window) DrawText(x, y float64, text string) {
	cx, cy := w.toCell(x, y)
	w.back.DrawTextColored(cx, cy, text, core.ColorBrightWhite)
}

// DrawSprite fills the cells covered by r. Every sprite covers at least one
// cell so thin platforms stay visible on small terminals.
func (w *Window) DrawSprite(s core.Sprite, r core.RectF) {
	style, ok := spriteStyles[s]
	if !ok {
		style = spriteStyle{fill: '#', color: core.ColorDefault}
	}
	w.back.DrawRect(w.cellRect(r), style.fill, style.color)
}

// Display presents the back buffer.
func (w *Window) Display() {
	w.front.CopyFrom(w.back)
}

// Front returns the last presented frame.
func (w *Window) Front() *core.Screen {
	return w.front
}

func (w *Window) scale() (sx, sy float64) {
	return float64(w.back.Width()) / w.logicalW, float64(w.back.Height()) / w.logicalH
}

func (w *Window) toCell(x, y float64) (int, int) {
	sx, sy := w.scale()
	return int(math.Floor(x * sx)), int(math.Floor(y * sy))
}

func (w *Window) cellRect(r core.RectF) core.Rect {
	sx, sy := w.scale()
	x0 := int(math.Floor(r.X * sx))
	y0 := int(math.Floor(r.Y * sy))
	x1 := core.Max(int(math.Ceil(r.Right()*sx)), x0+1)
	y1 := core.Max(int(math.Ceil(r.Bottom()*sy)), y0+1)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}
