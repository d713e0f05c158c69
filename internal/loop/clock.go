package loop

import "time"

// Clock measures the time between frames.
type Clock interface {
	// Restart returns the time elapsed since the previous Restart (or since
	// the clock was created) and starts measuring again.
	Restart() time.Duration
}

// WallClock is a Clock backed by the system monotonic clock.
type WallClock struct {
	last time.Time
	now  func() time.Time
}

// NewWallClock creates a clock that starts measuring immediately.
func NewWallClock() *WallClock {
	return &WallClock{last: time.Now(), now: time.Now}
}

// Restart implements Clock.
func (c *WallClock) Restart() time.Duration {
	t := c.now()
	elapsed := t.Sub(c.last)
	c.last = t
	return elapsed
}

// FixedClock reports the same elapsed time on every frame. Used for
// headless simulation and tests.
type FixedClock struct {
	Step time.Duration
}

// NewFixedClock returns a clock that advances one frame at fps per Restart.
func NewFixedClock(fps int) *FixedClock {
	if fps <= 0 {
		fps = 60
	}
	return &FixedClock{Step: time.Second / time.Duration(fps)}
}

// Restart implements Clock.
func (c *FixedClock) Restart() time.Duration {
	return c.Step
}
