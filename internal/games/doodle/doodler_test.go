package doodle

import (
	"math"
	"testing"

	"github.com/vovakirdan/doodle-jump/internal/core"
)

const (
	testScreenH = 533.0
	frameDT     = 1.0 / 60.0
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDoodlerInputSetsIntentOnly(t *testing.T) {
	d := NewDoodler(testScreenW, testScreenH)
	start := d.Position()

	d.HandleKeyboardInput(core.Pressed(core.KeyLeft))

	if d.Position() != start {
		t.Error("HandleKeyboardInput should not move the doodler")
	}
	if d.DX() != -HorizontalSpeed {
		t.Errorf("DX() = %f, expected %f", d.DX(), -HorizontalSpeed)
	}

	d.HandleKeyboardInput(core.Pressed(core.KeyRight))
	if d.DX() != 0 {
		t.Errorf("Both directions held should cancel, DX() = %f", d.DX())
	}

	d.HandleKeyboardInput(core.Released(core.KeyLeft))
	if d.DX() != HorizontalSpeed {
		t.Errorf("DX() = %f, expected %f", d.DX(), HorizontalSpeed)
	}

	d.HandleKeyboardInput(core.Released(core.KeyRight))
	if d.DX() != 0 {
		t.Errorf("DX() = %f after releasing all keys", d.DX())
	}
}

func TestDoodlerIgnoresOtherEvents(t *testing.T) {
	d := NewDoodler(testScreenW, testScreenH)
	d.HandleKeyboardInput(core.Event{Type: core.EventKeyPressed, Key: core.KeyUnknown})
	d.HandleKeyboardInput(core.Closed())

	if d.DX() != 0 {
		t.Errorf("Unrelated events should not change intent, DX() = %f", d.DX())
	}
}

func TestDoodlerGravity(t *testing.T) {
	d := NewDoodler(testScreenW, testScreenH)
	y0 := d.Position().Y

	d.UpdatePosition(frameDT)

	if !approxEqual(d.DY(), Gravity) {
		t.Errorf("DY() = %f, expected %f after one frame", d.DY(), Gravity)
	}
	if !approxEqual(d.Position().Y, y0+Gravity) {
		t.Errorf("Y = %f, expected %f", d.Position().Y, y0+Gravity)
	}
}

func TestDoodlerDeltaTimeScaling(t *testing.T) {
	a := NewDoodler(testScreenW, testScreenH)
	b := NewDoodler(testScreenW, testScreenH)

	a.UpdatePosition(2 * frameDT)
	b.UpdatePosition(frameDT)

	if !approxEqual(a.DY(), 2*b.DY()) {
		t.Errorf("Velocity should scale with dt: %f vs %f", a.DY(), b.DY())
	}
}

func TestDoodlerHorizontalMovement(t *testing.T) {
	d := NewDoodler(testScreenW, testScreenH)
	x0 := d.Position().X

	d.HandleKeyboardInput(core.Pressed(core.KeyRight))
	d.UpdatePosition(frameDT)

	if !approxEqual(d.Position().X, x0+HorizontalSpeed) {
		t.Errorf("X = %f, expected %f", d.Position().X, x0+HorizontalSpeed)
	}
}

func TestDoodlerWrapsHorizontally(t *testing.T) {
	d := NewDoodler(testScreenW, testScreenH)
	d.pos.X = testScreenW - 1
	d.HandleKeyboardInput(core.Pressed(core.KeyRight))
	d.UpdatePosition(frameDT)

	if d.Position().X != -DoodlerWidth {
		t.Errorf("Leaving right edge should wrap to %d, got %f", -DoodlerWidth, d.Position().X)
	}

	d.HandleKeyboardInput(core.Released(core.KeyRight))
	d.HandleKeyboardInput(core.Pressed(core.KeyLeft))
	d.UpdatePosition(frameDT)

	if d.Position().X != testScreenW {
		t.Errorf("Leaving left edge should wrap to %f, got %f", testScreenW, d.Position().X)
	}
}

func TestDoodlerFloorBounce(t *testing.T) {
	d := NewDoodler(testScreenW, testScreenH)
	floor := testScreenH - DoodlerSpriteH
	d.pos.Y = floor - 1
	d.dy = 5

	d.UpdatePosition(frameDT)

	if d.Position().Y != floor {
		t.Errorf("Y = %f, expected clamp to floor %f", d.Position().Y, floor)
	}
	if d.DY() != JumpVelocity {
		t.Errorf("DY() = %f, expected bounce %f", d.DY(), JumpVelocity)
	}
}

func TestDoodlerFeetTrackPreviousFrame(t *testing.T) {
	d := NewDoodler(testScreenW, testScreenH)
	d.dy = 3
	y0 := d.Position().Y

	d.UpdatePosition(frameDT)

	now, prev := d.Feet()
	if !approxEqual(prev, y0+DoodlerSpriteH) {
		t.Errorf("prev feet = %f, expected %f", prev, y0+DoodlerSpriteH)
	}
	if now <= prev {
		t.Errorf("Falling doodler feet should move down: now %f, prev %f", now, prev)
	}
}
