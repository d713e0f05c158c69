package doodle

import "github.com/vovakirdan/doodle-jump/internal/core"

// Physics constants, tuned in pixels per frame at ReferenceFPS.
const (
	ReferenceFPS    = 60.0
	Gravity         = 0.2   // Downward acceleration per frame
	JumpVelocity    = -10.0 // Vertical velocity after a bounce (negative = up)
	HorizontalSpeed = 3.0   // Sideways speed while a direction key is held
	DoodlerWidth    = 50
	DoodlerSpriteH  = 70
)

// Doodler is the player character.
type Doodler struct {
	pos     core.Vec2 // Top-left corner of the sprite
	prevY   float64   // Y before the last UpdatePosition
	dy      float64   // Vertical velocity
	left    bool
	right   bool
	screenW float64
	screenH float64
}

// NewDoodler creates a doodler at rest in the horizontal center of the
// screen, level with the scroll line.
func NewDoodler(screenW, screenH float64) *Doodler {
	y := float64(DoodlerHeight)
	return &Doodler{
		pos:     core.Vec2{X: (screenW - DoodlerWidth) / 2, Y: y},
		prevY:   y,
		screenW: screenW,
		screenH: screenH,
	}
}

// HandleKeyboardInput records horizontal intent. It never moves the
// doodler; movement happens in UpdatePosition.
func (d *Doodler) HandleKeyboardInput(ev core.Event) {
	var held bool
	switch ev.Type {
	case core.EventKeyPressed:
		held = true
	case core.EventKeyReleased:
		held = false
	default:
		return
	}

	switch ev.Key {
	case core.KeyLeft:
		d.left = held
	case core.KeyRight:
		d.right = held
	}
}

// DX returns the horizontal velocity implied by the held keys.
func (d *Doodler) DX() float64 {
	dx := 0.0
	if d.left {
		dx -= HorizontalSpeed
	}
	if d.right {
		dx += HorizontalSpeed
	}
	return dx
}

// UpdatePosition integrates one frame of motion. dt is the elapsed time in
// seconds; velocities are scaled relative to ReferenceFPS.
func (d *Doodler) UpdatePosition(dt float64) {
	scale := dt * ReferenceFPS

	d.prevY = d.pos.Y
	d.dy += Gravity * scale
	d.pos.Y += d.dy * scale
	d.pos.X += d.DX() * scale

	// Wrap around the side edges
	if d.pos.X+DoodlerWidth < 0 {
		d.pos.X = d.screenW
	} else if d.pos.X > d.screenW {
		d.pos.X = -DoodlerWidth
	}

	// The floor always bounces
	if floor := d.screenH - DoodlerSpriteH; d.pos.Y >= floor {
		d.pos.Y = floor
		d.Bounce()
	}
}

// Bounce starts a new jump.
func (d *Doodler) Bounce() {
	d.dy = JumpVelocity
}

// HoldAt pins the doodler's y coordinate, used while the camera scrolls.
func (d *Doodler) HoldAt(y float64) {
	d.pos.Y = y
}

// LandOn puts the doodler's feet on top of a surface at y and bounces.
func (d *Doodler) LandOn(top float64) {
	d.pos.Y = top - DoodlerSpriteH
	d.Bounce()
}

// Position returns the top-left corner of the sprite.
func (d *Doodler) Position() core.Vec2 {
	return d.pos
}

// DY returns the vertical velocity.
func (d *Doodler) DY() float64 {
	return d.dy
}

// Bounds returns the sprite rectangle.
func (d *Doodler) Bounds() core.RectF {
	return core.NewRectF(d.pos.X, d.pos.Y, DoodlerWidth, DoodlerSpriteH)
}

// Feet returns the current and previous y of the bottom edge.
func (d *Doodler) Feet() (now, prev float64) {
	return d.pos.Y + DoodlerSpriteH, d.prevY + DoodlerSpriteH
}
