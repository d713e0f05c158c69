package headless

import (
	"context"
	"testing"

	"github.com/vovakirdan/doodle-jump/internal/core"
)

func simConfig(seed int64) core.GameConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func TestSimulateRunsExactFrames(t *testing.T) {
	_, res, err := Simulate(context.Background(), simConfig(1), 120, nil, nil)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	if res.Frames != 120 {
		t.Errorf("Frames = %d, want 120", res.Frames)
	}
	if res.Seed != 1 {
		t.Errorf("Seed = %d, want 1", res.Seed)
	}
}

func TestSimulateDeterministic(t *testing.T) {
	script := []Input{
		{Frame: 10, Events: []core.Event{core.Pressed(core.KeyRight)}},
		{Frame: 90, Events: []core.Event{core.Released(core.KeyRight), core.Pressed(core.KeyLeft)}},
		{Frame: 200, Events: []core.Event{core.Released(core.KeyLeft)}},
	}

	_, a, err := Simulate(context.Background(), simConfig(99), 600, script, nil)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	_, b, err := Simulate(context.Background(), simConfig(99), 600, script, nil)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}

	if a != b {
		t.Errorf("same seed and script gave different results:\n%+v\n%+v", a, b)
	}
}

func TestSimulateRejectsNonPositiveFrames(t *testing.T) {
	if _, _, err := Simulate(context.Background(), simConfig(1), 0, nil, nil); err == nil {
		t.Error("expected error for zero frames")
	}
}

func TestSimulateHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := Simulate(ctx, simConfig(1), 10, nil, nil); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestWindowScriptAndClose(t *testing.T) {
	w := NewWindow(2, Input{Frame: 1, Events: []core.Event{core.Pressed(core.KeyLeft)}})

	// frame 0: nothing scripted
	if _, ok := w.PollEvent(); ok {
		t.Fatal("frame 0 should have no events")
	}
	w.Display()

	ev, ok := w.PollEvent()
	if !ok || ev != core.Pressed(core.KeyLeft) {
		t.Fatalf("frame 1 event = %v, %v", ev, ok)
	}
	if _, ok := w.PollEvent(); ok {
		t.Fatal("frame 1 should have one event")
	}
	w.Display()

	ev, ok = w.PollEvent()
	if !ok || ev.Type != core.EventClosed {
		t.Fatalf("frame 2 event = %v, %v, want close", ev, ok)
	}
}

func TestWindowDrawCounters(t *testing.T) {
	w := NewWindow(1)
	w.Clear()
	w.DrawText(0, 0, "Score: 0")
	w.DrawSprite(core.SpriteDoodler, core.RectF{})
	w.DrawSprite(core.SpriteFastPlatform, core.RectF{})
	if w.Text != "Score: 0" || w.Sprites != 2 {
		t.Errorf("Text = %q, Sprites = %d", w.Text, w.Sprites)
	}
}
