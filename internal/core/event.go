package core

// EventType classifies an input or window event.
type EventType int

const (
	EventNone EventType = iota
	EventKeyPressed
	EventKeyReleased
	EventClosed // Window close request; ends the frame loop
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventNone:
		return "None"
	case EventKeyPressed:
		return "KeyPressed"
	case EventKeyReleased:
		return "KeyReleased"
	case EventClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Key is a physical key abstracted from the input device.
// Only the keys the game reacts to are named.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Event is a single polled window or keyboard event.
type Event struct {
	Type EventType
	Key  Key
}

// Pressed builds a key-press event.
func Pressed(k Key) Event {
	return Event{Type: EventKeyPressed, Key: k}
}

// Released builds a key-release event.
func Released(k Key) Event {
	return Event{Type: EventKeyReleased, Key: k}
}

// Closed builds a window-close event.
func Closed() Event {
	return Event{Type: EventClosed}
}
