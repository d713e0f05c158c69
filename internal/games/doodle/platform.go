package doodle

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/doodle-jump/internal/core"
)

// Platform dimensions and drift speeds in logical pixels.
const (
	PlatformWidth  = 68
	PlatformHeight = 14
	SlowSpeed      = 1.0 // Horizontal drift per frame for slow platforms
	FastSpeed      = 3.0 // Horizontal drift per frame for fast platforms
)

// ErrUnknownPlatform is returned by NewPlatform for an unrecognized kind code.
var ErrUnknownPlatform = errors.New("doodle: unknown platform kind")

// Kind is the platform type code.
type Kind int

const (
	KindRegular Kind = 1
	KindSlow    Kind = 2
	KindFast    Kind = 3
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindSlow:
		return "slow"
	case KindFast:
		return "fast"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// KindFor returns the kind assigned to the platform at index i.
// The cycle 0 1 2 3 -> 1 2 3 1 yields two regular platforms for every
// slow and fast one.
func KindFor(i int) Kind {
	return Kind((i%4)%3 + 1)
}

// Platform is a landing surface. All variants share one update capability
// so the world can advance them uniformly.
type Platform interface {
	Kind() Kind
	Bounds() core.RectF
	Sprite() core.Sprite

	// UpdatePosition advances the horizontal drift by one frame,
	// bouncing off the screen edges.
	UpdatePosition()

	// Scroll moves the platform down by dy as the camera rises.
	Scroll(dy float64)

	// Place moves the platform to an absolute position.
	Place(x, y float64)

	// IsVisible reports whether the platform is drawn and can be landed on.
	IsVisible() bool

	// Land records the doodler landing on the platform.
	// Returns false if the platform no longer accepts landings.
	Land() bool
}

// NewPlatform constructs the variant matching kind at (x, y).
// screenW bounds the horizontal drift.
func NewPlatform(kind Kind, x, y, screenW float64) (Platform, error) {
	b := body{x: x, y: y, dir: 1, screenW: screenW}
	switch kind {
	case KindRegular:
		return &RegularPlatform{body: b}, nil
	case KindSlow:
		b.speed = SlowSpeed
		return &SlowPlatform{body: b}, nil
	case KindFast:
		b.speed = FastSpeed
		return &FastPlatform{body: b}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlatform, int(kind))
	}
}

// body is the positioned, drifting rectangle shared by every variant.
type body struct {
	x, y    float64
	speed   float64 // Pixels per frame, 0 for stationary platforms
	dir     float64 // +1 right, -1 left
	screenW float64
}

func (b *body) Bounds() core.RectF {
	return core.NewRectF(b.x, b.y, PlatformWidth, PlatformHeight)
}

func (b *body) UpdatePosition() {
	if b.speed == 0 {
		return
	}
	b.x += b.speed * b.dir

	maxX := b.screenW - PlatformWidth
	if b.x <= 0 {
		b.x = 0
		b.dir = 1
	} else if b.x >= maxX {
		b.x = maxX
		b.dir = -1
	}
}

func (b *body) Scroll(dy float64) {
	b.y += dy
}

func (b *body) Place(x, y float64) {
	b.x = x
	b.y = y
}

// RegularPlatform never moves.
type RegularPlatform struct {
	body
}

func (p *RegularPlatform) Kind() Kind          { return KindRegular }
func (p *RegularPlatform) Sprite() core.Sprite { return core.SpriteRegularPlatform }
func (p *RegularPlatform) IsVisible() bool     { return true }
func (p *RegularPlatform) Land() bool          { return true }

// FastPlatform drifts sideways at FastSpeed.
type FastPlatform struct {
	body
}

func (p *FastPlatform) Kind() Kind          { return KindFast }
func (p *FastPlatform) Sprite() core.Sprite { return core.SpriteFastPlatform }
func (p *FastPlatform) IsVisible() bool     { return true }
func (p *FastPlatform) Land() bool          { return true }

// SlowPlatform drifts sideways at SlowSpeed and carries the doodler once.
// After the first landing it disappears for the rest of the run.
type SlowPlatform struct {
	body
	hasCollision bool
}

func (p *SlowPlatform) Kind() Kind          { return KindSlow }
func (p *SlowPlatform) Sprite() core.Sprite { return core.SpriteSlowPlatform }

// HasCollision reports whether the doodler has already landed here.
func (p *SlowPlatform) HasCollision() bool {
	return p.hasCollision
}

// SetCollision marks the platform as used. The flag is never cleared.
func (p *SlowPlatform) SetCollision() {
	p.hasCollision = true
}

// IsVisible is false once the platform has been landed on.
func (p *SlowPlatform) IsVisible() bool {
	return !p.hasCollision
}

// Land accepts the first landing only.
func (p *SlowPlatform) Land() bool {
	if p.hasCollision {
		return false
	}
	p.SetCollision()
	return true
}
