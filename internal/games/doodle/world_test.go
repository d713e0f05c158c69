package doodle

import (
	"testing"

	"github.com/vovakirdan/doodle-jump/internal/core"
)

// recordingCanvas captures draw calls in order.
type recordingCanvas struct {
	backgrounds int
	texts       []string
	sprites     []core.Sprite
}

func (c *recordingCanvas) DrawBackground()                    { c.backgrounds++ }
func (c *recordingCanvas) DrawText(_, _ float64, text string) { c.texts = append(c.texts, text) }
func (c *recordingCanvas) DrawSprite(s core.Sprite, _ core.RectF) {
	c.sprites = append(c.sprites, s)
}

func testConfig(platforms int) core.GameConfig {
	cfg := core.DefaultConfig()
	cfg.PlatformCount = platforms
	cfg.Seed = 42
	return cfg
}

// newEmptyWorld returns a world without platforms so tests can place their own.
func newEmptyWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(testConfig(0))
	if err != nil {
		t.Fatalf("NewWorld() failed: %v", err)
	}
	return w
}

func addPlatform(t *testing.T, w *World, kind Kind, x, y float64) Platform {
	t.Helper()
	p, err := NewPlatform(kind, x, y, w.width)
	if err != nil {
		t.Fatalf("NewPlatform() failed: %v", err)
	}
	w.platforms = append(w.platforms, p)
	return p
}

func TestNewWorldPlatforms(t *testing.T) {
	w, err := NewWorld(testConfig(12))
	if err != nil {
		t.Fatalf("NewWorld() failed: %v", err)
	}

	if len(w.Platforms()) != 12 {
		t.Fatalf("expected 12 platforms, got %d", len(w.Platforms()))
	}

	counts := make(map[Kind]int)
	for i, p := range w.Platforms() {
		if p.Kind() != KindFor(i) {
			t.Errorf("platform %d kind = %v, expected %v", i, p.Kind(), KindFor(i))
		}
		b := p.Bounds()
		if b.X < 0 || b.Right() > w.width {
			t.Errorf("platform %d placed off screen: %+v", i, b)
		}
		counts[p.Kind()]++
	}
	if counts[KindRegular] != 6 || counts[KindSlow] != 3 || counts[KindFast] != 3 {
		t.Errorf("kind counts = %v, expected 6:3:3", counts)
	}
	if w.Score() != 0 {
		t.Errorf("initial score = %f, expected 0", w.Score())
	}
}

func TestNewWorldDeterministic(t *testing.T) {
	a, _ := NewWorld(testConfig(12))
	b, _ := NewWorld(testConfig(12))

	for i := range a.Platforms() {
		if a.Platforms()[i].Bounds() != b.Platforms()[i].Bounds() {
			t.Fatalf("platform %d differs for equal seeds", i)
		}
	}
}

func TestNewWorldRejectsUnplayableConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*core.GameConfig)
	}{
		{"negative platform count", func(c *core.GameConfig) { c.PlatformCount = -1 }},
		{"narrower than a platform", func(c *core.GameConfig) { c.WindowWidth = PlatformWidth - 1 }},
		{"no room above the floor", func(c *core.GameConfig) { c.WindowHeight = DoodlerSpriteH }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(12)
			tt.modify(&cfg)
			if _, err := NewWorld(cfg); err == nil {
				t.Error("NewWorld() should reject the config")
			}
		})
	}
}

func TestUpdateScoreQualifyingFrame(t *testing.T) {
	w := newEmptyWorld(t)
	w.doodler.pos.Y = DoodlerHeight
	w.doodler.dy = -5

	if !w.UpdateScore() {
		t.Fatal("UpdateScore should fire at the scroll line while climbing")
	}
	if w.Score() != ScoreStep {
		t.Errorf("Score() = %f, expected %f", w.Score(), ScoreStep)
	}
}

func TestUpdateScoreThreshold(t *testing.T) {
	tests := []struct {
		name  string
		y, dy float64
		fires bool
	}{
		{"just below threshold", DoodlerHeight, -1.63, true},
		{"at threshold", DoodlerHeight, ScoreVelocityThreshold, false},
		{"slow climb", DoodlerHeight, -1.0, false},
		{"falling", DoodlerHeight, 2.0, false},
		{"below scroll line", DoodlerHeight + 1, -5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newEmptyWorld(t)
			w.doodler.pos.Y = tc.y
			w.doodler.dy = tc.dy

			fired := w.UpdateScore()
			if fired != tc.fires {
				t.Errorf("UpdateScore() = %v, expected %v", fired, tc.fires)
			}
			want := 0.0
			if tc.fires {
				want = ScoreStep
			}
			if w.Score() != want {
				t.Errorf("Score() = %f, expected %f", w.Score(), want)
			}
		})
	}
}

func TestUpdateScoreAccumulatesPerFrame(t *testing.T) {
	w := newEmptyWorld(t)
	w.doodler.pos.Y = DoodlerHeight
	w.doodler.dy = -8

	prev := w.Score()
	for i := 0; i < 5; i++ {
		w.UpdateScore()
		if w.Score() < prev {
			t.Fatalf("score decreased from %f to %f", prev, w.Score())
		}
		prev = w.Score()
	}
	if w.Score() != 2.5 {
		t.Errorf("Score() = %f after 5 qualifying frames, expected 2.5", w.Score())
	}
	if w.ScoreText() != "Score: 2" {
		t.Errorf("ScoreText() = %q, expected truncated %q", w.ScoreText(), "Score: 2")
	}
}

func TestLandingOnRegularPlatform(t *testing.T) {
	w := newEmptyWorld(t)
	addPlatform(t, w, KindRegular, 150, 300)

	w.doodler.pos.X = 175
	w.doodler.pos.Y = 300 - DoodlerSpriteH - 1
	w.doodler.dy = 2

	w.Update(frameDT)

	if w.doodler.DY() != JumpVelocity {
		t.Errorf("DY() = %f, expected bounce %f", w.doodler.DY(), JumpVelocity)
	}
	if w.doodler.Position().Y != 300-DoodlerSpriteH {
		t.Errorf("doodler should stand on the platform, y = %f", w.doodler.Position().Y)
	}
}

func TestNoLandingWhileRising(t *testing.T) {
	w := newEmptyWorld(t)
	addPlatform(t, w, KindRegular, 150, 300)

	w.doodler.pos.X = 175
	w.doodler.pos.Y = 300 - DoodlerSpriteH + 2
	w.doodler.dy = -6

	w.Update(frameDT)

	if w.doodler.DY() == JumpVelocity {
		t.Error("a rising doodler should pass through platforms")
	}
}

func TestNoLandingWithoutHorizontalOverlap(t *testing.T) {
	w := newEmptyWorld(t)
	addPlatform(t, w, KindRegular, 0, 300)

	w.doodler.pos.X = 300
	w.doodler.pos.Y = 300 - DoodlerSpriteH - 1
	w.doodler.dy = 2

	w.Update(frameDT)

	if w.doodler.DY() == JumpVelocity {
		t.Error("doodler should miss a platform it does not overlap")
	}
}

func TestSlowPlatformLandsOnceThenDisappears(t *testing.T) {
	w := newEmptyWorld(t)
	p := addPlatform(t, w, KindSlow, 150, 300)

	drop := func() {
		w.doodler.pos.X = 175
		w.doodler.pos.Y = 300 - DoodlerSpriteH - 1
		w.doodler.dy = 2
		w.Update(frameDT)
	}

	drop()
	if w.doodler.DY() != JumpVelocity {
		t.Fatalf("first landing should bounce, DY() = %f", w.doodler.DY())
	}
	if !p.(*SlowPlatform).HasCollision() {
		t.Fatal("slow platform should be flagged after landing")
	}

	drop()
	if w.doodler.DY() == JumpVelocity {
		t.Error("a used slow platform must not be landed on again")
	}
}

func TestDrawOrderAndSlowVisibility(t *testing.T) {
	w := newEmptyWorld(t)
	addPlatform(t, w, KindRegular, 0, 100)
	slow := addPlatform(t, w, KindSlow, 0, 200)
	addPlatform(t, w, KindFast, 0, 300)

	var c recordingCanvas
	w.Draw(&c)

	if c.backgrounds != 1 {
		t.Errorf("background drawn %d times", c.backgrounds)
	}
	if len(c.texts) != 1 || c.texts[0] != "Score: 0" {
		t.Errorf("texts = %v, expected [Score: 0]", c.texts)
	}
	expected := []core.Sprite{core.SpriteDoodler, core.SpriteRegularPlatform, core.SpriteSlowPlatform, core.SpriteFastPlatform}
	if len(c.sprites) != len(expected) {
		t.Fatalf("sprites = %v, expected %v", c.sprites, expected)
	}
	for i := range expected {
		if c.sprites[i] != expected[i] {
			t.Errorf("sprite %d = %v, expected %v", i, c.sprites[i], expected[i])
		}
	}

	slow.(*SlowPlatform).SetCollision()
	c = recordingCanvas{}
	w.Draw(&c)

	for _, s := range c.sprites {
		if s == core.SpriteSlowPlatform {
			t.Error("a collided slow platform must not be drawn")
		}
	}
	if len(c.sprites) != 3 {
		t.Errorf("expected doodler and two platforms, got %v", c.sprites)
	}
}

func TestScrollHoldsDoodlerAndMovesPlatforms(t *testing.T) {
	w := newEmptyWorld(t)
	p := addPlatform(t, w, KindRegular, 10, 100)

	w.doodler.pos.Y = DoodlerHeight
	w.doodler.dy = -10
	w.Update(frameDT)

	if w.doodler.Position().Y != DoodlerHeight {
		t.Errorf("doodler should be held at the scroll line, y = %f", w.doodler.Position().Y)
	}
	if p.Bounds().Y <= 100 {
		t.Errorf("platform should scroll down, y = %f", p.Bounds().Y)
	}
	if !w.UpdateScore() {
		t.Error("climbing past the scroll line should score")
	}
}

func TestScrollWrapsPlatformsToTop(t *testing.T) {
	w := newEmptyWorld(t)
	p := addPlatform(t, w, KindRegular, 10, w.height-1)

	w.doodler.pos.Y = DoodlerHeight
	w.doodler.dy = -10
	w.Update(frameDT)

	b := p.Bounds()
	if b.Y < 0 || b.Y > w.height {
		t.Errorf("platform leaving the bottom should re-enter at the top, y = %f", b.Y)
	}
	if b.Y > 20 {
		t.Errorf("wrapped platform should be near the top, y = %f", b.Y)
	}
}
