package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/doodle-jump/internal/core"
	"github.com/vovakirdan/doodle-jump/internal/games/doodle"
	"github.com/vovakirdan/doodle-jump/internal/storage"
)

// scriptedWindow delivers script[i] as the events of frame i and records
// what was drawn.
type scriptedWindow struct {
	script   [][]core.Event
	frame    int
	loaded   bool
	pending  []core.Event
	fps      int
	clears   int
	displays int
	texts    []string
	sprites  []core.Sprite
}

func (w *scriptedWindow) SetFramerateLimit(fps int) { w.fps = fps }

func (w *scriptedWindow) PollEvent() (core.Event, bool) {
	if !w.loaded {
		if w.frame < len(w.script) {
			w.pending = append([]core.Event(nil), w.script[w.frame]...)
		}
		w.loaded = true
	}
	if len(w.pending) == 0 {
		return core.Event{}, false
	}
	ev := w.pending[0]
	w.pending = w.pending[1:]
	return ev, true
}

func (w *scriptedWindow) Clear() {
	w.clears++
	w.texts = w.texts[:0]
	w.sprites = w.sprites[:0]
}

func (w *scriptedWindow) DrawBackground() {}

func (w *scriptedWindow) DrawText(_, _ float64, text string) {
	w.texts = append(w.texts, text)
}

func (w *scriptedWindow) DrawSprite(s core.Sprite, _ core.RectF) {
	w.sprites = append(w.sprites, s)
}

func (w *scriptedWindow) Display() {
	w.displays++
	w.frame++
	w.loaded = false
}

func newTestLoop(t *testing.T, platforms int, win Window) *Loop {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.PlatformCount = platforms
	cfg.Seed = 7
	l, err := New(cfg, win, WithClock(NewFixedClock(60)))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return l
}

func TestNewAppliesFramerateLimit(t *testing.T) {
	win := &scriptedWindow{}
	l := newTestLoop(t, 12, win)

	if win.fps != core.DefaultMaxFPS {
		t.Errorf("framerate limit = %d, expected %d", win.fps, core.DefaultMaxFPS)
	}
	if l.State() != StateRunning {
		t.Errorf("initial state = %v, expected running", l.State())
	}
}

func TestNewResolvesZeroSeed(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 0
	l, err := New(cfg, &scriptedWindow{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if l.Config().Seed == 0 {
		t.Error("zero seed should be replaced")
	}
}

func TestFrameDrawsScorePlayerAndPlatforms(t *testing.T) {
	win := &scriptedWindow{}
	l := newTestLoop(t, 12, win)

	if !l.Frame() {
		t.Fatal("Frame() should keep running without a close event")
	}
	if win.clears != 1 || win.displays != 1 {
		t.Errorf("clears=%d displays=%d, expected one each", win.clears, win.displays)
	}
	if len(win.texts) != 1 || win.texts[0] != "Score: 0" {
		t.Errorf("texts = %v", win.texts)
	}
	if len(win.sprites) != 13 || win.sprites[0] != core.SpriteDoodler {
		t.Errorf("expected doodler first then 12 platforms, got %v", win.sprites)
	}
}

func TestCloseEventStopsWithoutUpdateOrDraw(t *testing.T) {
	win := &scriptedWindow{script: [][]core.Event{
		nil,
		{core.Pressed(core.KeyRight), core.Closed()},
	}}
	l := newTestLoop(t, 0, win)

	if !l.Frame() {
		t.Fatal("first frame should run")
	}
	before := l.World().Doodler().Position()

	if l.Frame() {
		t.Fatal("frame with a close event should stop the loop")
	}
	if l.State() != StateClosed {
		t.Errorf("state = %v, expected closed", l.State())
	}
	if win.displays != 1 {
		t.Errorf("no frame should be presented after close, displays = %d", win.displays)
	}
	if l.World().Doodler().Position() != before {
		t.Error("no update should happen after close")
	}
	if l.Frame() {
		t.Error("Frame() after close should keep returning false")
	}
}

func TestRunStopsOnClose(t *testing.T) {
	script := make([][]core.Event, 10)
	script[9] = []core.Event{core.Closed()}
	win := &scriptedWindow{script: script}
	l := newTestLoop(t, 12, win)

	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if l.Frames() != 9 {
		t.Errorf("Frames() = %d, expected 9", l.Frames())
	}
}

func TestRunHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := newTestLoop(t, 12, &scriptedWindow{})
	if err := l.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
}

func TestKeyEventsReachDoodler(t *testing.T) {
	win := &scriptedWindow{script: [][]core.Event{{core.Pressed(core.KeyRight)}}}
	l := newTestLoop(t, 0, win)
	x0 := l.World().Doodler().Position().X

	l.Frame()

	if x := l.World().Doodler().Position().X; x <= x0 {
		t.Errorf("holding right should move the doodler right: %f -> %f", x0, x)
	}
}

type stallClock struct{}

func (stallClock) Restart() time.Duration { return 5 * time.Second }

func TestDeltaTimeIsCapped(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	l, err := New(cfg, &scriptedWindow{}, WithClock(stallClock{}))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	l.Frame()
	if l.DeltaTime() != MaxDeltaTime {
		t.Errorf("DeltaTime() = %f, expected cap %f", l.DeltaTime(), MaxDeltaTime)
	}
}

func TestFreeFallUntilFloorBounce(t *testing.T) {
	l := newTestLoop(t, 0, &scriptedWindow{})
	d := l.World().Doodler()

	prevY := d.Position().Y
	bounced := false
	for i := 0; i < 600 && !bounced; i++ {
		l.Frame()
		y := d.Position().Y
		if d.DY() == doodle.JumpVelocity {
			bounced = true
			break
		}
		if y <= prevY {
			t.Fatalf("frame %d: y should grow under gravity, %f -> %f", i, prevY, y)
		}
		prevY = y
	}

	if !bounced {
		t.Fatal("doodler never reached the floor")
	}
	if l.Score() != 0 {
		t.Errorf("falling should not score, got %f", l.Score())
	}
}

func TestLongRunInvariants(t *testing.T) {
	l := newTestLoop(t, 12, &scriptedWindow{})
	w := l.World()
	width := float64(core.DefaultWindowWidth)

	prevScore := 0.0
	collided := make(map[int]bool)
	minX := make(map[int]float64)
	maxX := make(map[int]float64)

	for frame := 0; frame < 3000; frame++ {
		l.Frame()

		if l.Score() < prevScore {
			t.Fatalf("frame %d: score decreased %f -> %f", frame, prevScore, l.Score())
		}
		prevScore = l.Score()

		for i, p := range w.Platforms() {
			b := p.Bounds()
			if b.X < 0 || b.Right() > width {
				t.Fatalf("frame %d: platform %d off screen: %+v", frame, i, b)
			}
			if _, ok := minX[i]; !ok {
				minX[i], maxX[i] = b.X, b.X
			}
			minX[i] = min(minX[i], b.X)
			maxX[i] = max(maxX[i], b.X)

			if slow, ok := p.(*doodle.SlowPlatform); ok {
				if collided[i] && !slow.HasCollision() {
					t.Fatalf("frame %d: slow platform %d lost its collision flag", frame, i)
				}
				collided[i] = slow.HasCollision()
			}
		}
	}

	for i, p := range w.Platforms() {
		switch p.Kind() {
		case doodle.KindRegular:
			// Regular platforms only move when recycled, so no bound check.
		default:
			if maxX[i]-minX[i] < doodle.FastSpeed {
				t.Errorf("%v platform %d did not drift: [%f, %f]", p.Kind(), i, minX[i], maxX[i])
			}
		}
	}
}

func TestRecordDescribesRun(t *testing.T) {
	win := &scriptedWindow{}
	l := newTestLoop(t, 12, win)
	for i := 0; i < 5; i++ {
		l.Frame()
	}

	rec := l.Record()
	if rec.GameID != doodle.GameID {
		t.Errorf("GameID = %q, want %q", rec.GameID, doodle.GameID)
	}
	if rec.Frames != 5 {
		t.Errorf("Frames = %d, want 5", rec.Frames)
	}
	if rec.Seed != 7 {
		t.Errorf("Seed = %d, want 7", rec.Seed)
	}
	if rec.Score != int(l.Score()) {
		t.Errorf("Score = %d, want %d", rec.Score, int(l.Score()))
	}
}

func TestSaveScoreSkipsEmptyRuns(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/scores.db")
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	l := newTestLoop(t, 0, &scriptedWindow{})
	l.Frame()

	if err := l.SaveScore(nil); err != nil {
		t.Errorf("SaveScore(nil) = %v", err)
	}
	if err := l.SaveScore(store); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	scores, err := store.TopScores(doodle.GameID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("zero score run was stored: %+v", scores)
	}
}

func TestCloseEndsRun(t *testing.T) {
	win := &scriptedWindow{}
	l := newTestLoop(t, 12, win)
	l.Frame()

	l.Close()
	if l.State() != StateClosed {
		t.Errorf("State() = %v, want closed", l.State())
	}
	if l.Frame() {
		t.Error("Frame() should report false after Close")
	}
	if win.displays != 1 {
		t.Errorf("displays = %d, want 1", win.displays)
	}
}

func TestNewRejectsNegativePlatformCount(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.PlatformCount = -1
	if _, err := New(cfg, &scriptedWindow{}); err == nil {
		t.Error("New() should fail for a negative platform count")
	}
}
