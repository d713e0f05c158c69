// Package headless provides a rendering surface without a display, used for
// simulations and tests.
package headless

import (
	"github.com/vovakirdan/doodle-jump/internal/core"
)

// Input scripts the events delivered at a given frame.
type Input struct {
	Frame  int
	Events []core.Event
}

// Window counts frames and closes itself after a fixed number of them.
// Draw calls are counted but not rendered.
type Window struct {
	maxFrames int
	frame     int
	script    []Input
	pending   []core.Event
	loaded    bool
	fps       int

	// Last presented frame
	Text    string
	Sprites int
}

// NewWindow creates a window that requests a close once maxFrames frames
// have been presented. A non-positive maxFrames never closes.
func NewWindow(maxFrames int, script ...Input) *Window {
	return &Window{maxFrames: maxFrames, script: script}
}

// SetFramerateLimit records the limit; headless frames are not paced.
func (w *Window) SetFramerateLimit(fps int) {
	w.fps = fps
}

// FPS returns the recorded frame-rate limit.
func (w *Window) FPS() int {
	return w.fps
}

// PollEvent delivers the scripted events of the current frame, then a close
// request once the frame budget is used up.
func (w *Window) PollEvent() (core.Event, bool) {
	if !w.loaded {
		w.loaded = true
		for _, in := range w.script {
			if in.Frame == w.frame {
				w.pending = append(w.pending, in.Events...)
			}
		}
		if w.maxFrames > 0 && w.frame >= w.maxFrames {
			w.pending = append(w.pending, core.Closed())
		}
	}
	if len(w.pending) == 0 {
		return core.Event{}, false
	}
	ev := w.pending[0]
	w.pending = w.pending[1:]
	return ev, true
}

// Clear starts a new frame.
func (w *Window) Clear() {
	w.Text = ""
	w.Sprites = 0
}

// DrawBackground is a no-op.
func (w *Window) DrawBackground() {}

// DrawText keeps the last text drawn.
func (w *Window) DrawText(_, _ float64, text string) {
	w.Text = text
}

// DrawSprite counts sprites.
func (w *Window) DrawSprite(_ core.Sprite, _ core.RectF) {
	w.Sprites++
}

// Display ends the frame.
func (w *Window) Display() {
	w.frame++
	w.loaded = false
}

// Frames returns the number of presented frames.
func (w *Window) Frames() int {
	return w.frame
}
