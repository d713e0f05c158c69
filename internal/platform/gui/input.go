package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/doodle-jump/internal/core"
)

// keyBindings maps physical keys to game keys.
var keyBindings = []struct {
	key  ebiten.Key
	game core.Key
}{
	{ebiten.KeyArrowLeft, core.KeyLeft},
	{ebiten.KeyA, core.KeyLeft},
	{ebiten.KeyArrowRight, core.KeyRight},
	{ebiten.KeyD, core.KeyRight},
}

// inputSource reports the key and window transitions of the current tick.
type inputSource interface {
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
	Closing() bool
}

// ebitenInput reads the live Ebiten input state.
type ebitenInput struct{}

func (ebitenInput) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenInput) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }
func (ebitenInput) Closing() bool                  { return ebiten.IsWindowBeingClosed() }

// pollInput converts this tick's input transitions into events.
func pollInput(in inputSource) []core.Event {
	var events []core.Event
	if in.Closing() {
		events = append(events, core.Closed())
	}
	for _, b := range keyBindings {
		if in.JustPressed(b.key) {
			events = append(events, core.Pressed(b.game))
		}
		if in.JustReleased(b.key) {
			events = append(events, core.Released(b.game))
		}
	}
	return events
}
