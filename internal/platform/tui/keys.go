package tui

import (
	"time"

	"github.com/vovakirdan/doodle-jump/internal/core"
)

// Terminals report key presses and auto-repeats but never releases. A held
// key is considered released once no repeat arrived within its hold window.
const (
	// InitialHoldWindow covers the delay before the terminal starts
	// auto-repeating a held key.
	InitialHoldWindow = 550 * time.Millisecond

	// RepeatHoldWindow covers the gap between two auto-repeats.
	RepeatHoldWindow = 120 * time.Millisecond
)

type heldKey struct {
	last     time.Time
	repeated bool
}

// KeyTracker turns a stream of terminal key presses into press and release
// events.
type KeyTracker struct {
	now  func() time.Time
	held map[core.Key]heldKey
}

// NewKeyTracker creates a tracker using the wall clock.
func NewKeyTracker() *KeyTracker {
	return newKeyTrackerWithClock(time.Now)
}

func newKeyTrackerWithClock(now func() time.Time) *KeyTracker {
	return &KeyTracker{
		now:  now,
		held: make(map[core.Key]heldKey),
	}
}

// Press records a key press or auto-repeat and returns the events it causes.
// Pressing a direction releases the opposite one, since terminals cannot
// report both held at once.
func (t *KeyTracker) Press(k core.Key) []core.Event {
	now := t.now()
	var events []core.Event

	if opp := opposite(k); opp != core.KeyUnknown {
		if _, ok := t.held[opp]; ok {
			delete(t.held, opp)
			events = append(events, core.Released(opp))
		}
	}

	if h, ok := t.held[k]; ok {
		h.last = now
		h.repeated = true
		t.held[k] = h
		return events
	}

	t.held[k] = heldKey{last: now}
	return append(events, core.Pressed(k))
}

// Expire returns release events for keys whose hold window has passed.
func (t *KeyTracker) Expire() []core.Event {
	now := t.now()
	var events []core.Event
	for _, k := range []core.Key{core.KeyLeft, core.KeyRight} {
		h, ok := t.held[k]
		if !ok {
			continue
		}
		window := InitialHoldWindow
		if h.repeated {
			window = RepeatHoldWindow
		}
		if now.Sub(h.last) > window {
			delete(t.held, k)
			events = append(events, core.Released(k))
		}
	}
	return events
}

// Held reports whether k is currently considered held.
func (t *KeyTracker) Held(k core.Key) bool {
	_, ok := t.held[k]
	return ok
}

func opposite(k core.Key) core.Key {
	switch k {
	case core.KeyLeft:
		return core.KeyRight
	case core.KeyRight:
		return core.KeyLeft
	default:
		return core.KeyUnknown
	}
}
