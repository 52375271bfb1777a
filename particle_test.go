package sitefx

import (
	"math/rand/v2"
	"testing"
)

func TestStarCount(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
		want int
	}{
		{"density 50 clamps up", 1000, 600, MinStars},
		{"in range", 1200, 1000, 100},
		{"huge clamps down", 4000, 3000, MaxStars},
		{"zero area", 0, 0, MinStars},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StarCount(tt.w, tt.h); got != tt.want {
				t.Errorf("StarCount(%v, %v) = %d, want %d", tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestPixelScale(t *testing.T) {
	tests := []struct {
		dpr, want float64
	}{
		{0, 1}, {-1, 1}, {1, 1}, {1.5, 1.5}, {2, 2}, {3, 2},
	}
	for _, tt := range tests {
		if got := PixelScale(tt.dpr); got != tt.want {
			t.Errorf("PixelScale(%v) = %v, want %v", tt.dpr, got, tt.want)
		}
	}
}

func TestDriftStarWraps(t *testing.T) {
	s := Star{X: 101.99, Z: 1}
	driftStar(&s, 100)
	if s.X != -StarWrapPad {
		t.Errorf("X = %v, want %v", s.X, -StarWrapPad)
	}

	s = Star{X: 50, Z: 2}
	driftStar(&s, 100)
	if want := 50 + DriftSpeed*2; s.X != want {
		t.Errorf("X = %v, want %v", s.X, want)
	}
}

func TestStarWrapBandHolds(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	const width = 40.0
	stars := make([]Star, 50)
	for i := range stars {
		stars[i] = Star{X: Range{0, width}.RandomFrom(rng), Z: StarDepthRange.RandomFrom(rng)}
	}
	for range 5000 {
		for i := range stars {
			driftStar(&stars[i], width)
			if x := stars[i].X; x > width+StarWrapPad || x < -StarWrapPad {
				t.Fatalf("star %d escaped the wrap band: x=%v", i, x)
			}
		}
	}
}

func TestStarfieldGeneration(t *testing.T) {
	tp := newTestPage(t, landingMarkup, PageConfig{DevicePixelRatio: 3}, true)
	f := tp.ui.Starfield()
	if f == nil {
		t.Fatal("starfield not attached")
	}

	if n := len(f.Stars()); n != StarCount(1280, 600) {
		t.Errorf("stars = %d, want %d", n, StarCount(1280, 600))
	}
	for i, s := range f.Stars() {
		if s.Z < StarDepthRange.Min || s.Z >= StarDepthRange.Max ||
			s.R < StarRadiusRange.Min || s.R >= StarRadiusRange.Max ||
			s.A < StarAlphaRange.Min || s.A >= StarAlphaRange.Max {
			t.Fatalf("star %d out of range: %+v", i, s)
		}
		if s.Y < 0 || s.Y >= 600 {
			t.Fatalf("star %d y out of canvas: %v", i, s.Y)
		}
	}

	canvas := tp.Element("#starfield")
	if w, h := canvas.BackingSize(); w != 2560 || h != 1200 {
		t.Errorf("backing size = %dx%d, want 2560x1200 (dpr capped at 2)", w, h)
	}
	if tp.surface.scale != 2 {
		t.Errorf("surface scale = %v, want 2", tp.surface.scale)
	}
	if f.Frames() != 1 || tp.surface.circles != len(f.Stars()) {
		t.Errorf("initial frame: frames=%d circles=%d", f.Frames(), tp.surface.circles)
	}
}

const starfieldMarkup = `<canvas id="starfield" data-rect="0,0,1000,600"></canvas>`

func TestStarfieldVisibilityPauseResume(t *testing.T) {
	tp := newTestPage(t, starfieldMarkup, PageConfig{}, true)
	f := tp.ui.Starfield()

	tp.runFrames(5)
	if f.Frames() != 6 {
		t.Fatalf("frames = %d, want 6", f.Frames())
	}
	before := f.Stars()[0]

	tp.InjectVisibility(true)
	if f.Running() {
		t.Error("still running while hidden")
	}
	tp.runFrames(10)
	if f.Frames() != 6 {
		t.Errorf("drew %d frames while hidden", f.Frames()-6)
	}
	if tp.loop.Pending() != 0 {
		t.Errorf("Pending = %d while hidden", tp.loop.Pending())
	}

	tp.InjectVisibility(false)
	if !f.Running() {
		t.Error("not running after show")
	}
	after := f.Stars()[0]
	if after.Y != before.Y || after.Z != before.Z {
		t.Error("stars regenerated on resume")
	}

	// A second "visible" must not start a second loop.
	f.onVisibility(Event{Type: EventVisibilityChange})
	tp.runFrames(3)
	if got := f.Frames(); got != 6+1+1+3 {
		t.Errorf("frames = %d, want %d", got, 6+1+1+3)
	}
	if tp.loop.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", tp.loop.Pending())
	}
}

func TestStarfieldResizeRegenerates(t *testing.T) {
	tp := newTestPage(t, landingMarkup, PageConfig{}, true)
	f := tp.ui.Starfield()
	old := f.Stars()

	tp.InjectResize(tp.Element("#starfield"), 4000, 3000)
	if n := len(f.Stars()); n != MaxStars {
		t.Errorf("stars after resize = %d, want %d", n, MaxStars)
	}
	if &old[0] == &f.Stars()[0] {
		t.Error("star slice reused across resize")
	}
	if w, h, _ := f.Size(); w != 4000 || h != 3000 {
		t.Errorf("size = %vx%v", w, h)
	}
	if last := tp.surface.resizes[len(tp.surface.resizes)-1]; last != [2]int{4000, 3000} {
		t.Errorf("surface resized to %v", last)
	}
}

func TestStarfieldDisabled(t *testing.T) {
	t.Run("reduced motion", func(t *testing.T) {
		tp := newTestPage(t, landingMarkup, PageConfig{ReducedMotion: true}, true)
		if tp.ui.Starfield() != nil {
			t.Error("starfield attached under reduced motion")
		}
		if tp.surface != nil {
			t.Error("2d context requested under reduced motion")
		}
	})
	t.Run("no context", func(t *testing.T) {
		tp := newTestPage(t, landingMarkup, PageConfig{
			Surfaces: func(*PageElement) Surface { return nil },
		}, true)
		if tp.ui.Starfield() != nil {
			t.Error("starfield attached without a context")
		}
	})
	t.Run("no canvas", func(t *testing.T) {
		tp := newTestPage(t, counterMarkup, PageConfig{}, true)
		if tp.ui.Starfield() != nil {
			t.Error("starfield attached without a canvas")
		}
	})
}
