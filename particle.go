package sitefx

import (
	"math"
	"math/rand/v2"
	"time"
)

// Star is one particle of the starfield. X and Y are canvas-local CSS
// pixels, Z is the depth factor that scales drift speed.
type Star struct {
	X, Y float64
	Z    float64
	R    float64
	A    float64
}

// StarCount returns the number of stars for a canvas of the given CSS size:
// floor(area / StarDensity), clamped to [MinStars, MaxStars].
func StarCount(width, height float64) int {
	n := int(math.Floor(width * height / StarDensity))
	if n < MinStars {
		return MinStars
	}
	if n > MaxStars {
		return MaxStars
	}
	return n
}

// PixelScale caps a device pixel ratio at MaxPixelRatio. Unknown or
// non-positive ratios count as 1.
func PixelScale(dpr float64) float64 {
	if dpr <= 0 || math.IsNaN(dpr) {
		return 1
	}
	return math.Min(dpr, MaxPixelRatio)
}

// driftStar advances one star by a frame and wraps it to the left edge
// once it passes width+StarWrapPad.
func driftStar(s *Star, width float64) {
	s.X += DriftSpeed * s.Z
	if s.X > width+StarWrapPad {
		s.X = -StarWrapPad
	}
}

// Starfield owns a canvas of slowly drifting stars. The whole star set is
// regenerated on every resize; between resizes only X changes. The render
// loop runs only while the page is visible.
type Starfield struct {
	canvas  Canvas
	surface Surface
	sched   Scheduler
	rng     *rand.Rand
	dpr     float64

	stars  []Star
	width  float64
	height float64
	scale  float64

	handle  FrameHandle
	running bool
	frames  int
}

func newStarfield(c Canvas, surface Surface, s Scheduler, dpr float64, rng *rand.Rand) *Starfield {
	return &Starfield{
		canvas:  c,
		surface: surface,
		sched:   s,
		rng:     rng,
		dpr:     dpr,
	}
}

// Resize re-reads the canvas box, sets the backing store to the capped
// device resolution and regenerates every star.
func (f *Starfield) Resize() {
	b := f.canvas.Bounds()
	f.width = math.Max(b.Width, 0)
	f.height = math.Max(b.Height, 0)
	f.scale = PixelScale(f.dpr)

	f.canvas.SetBackingSize(int(f.width*f.scale), int(f.height*f.scale))
	f.surface.SetScale(f.scale)

	n := StarCount(f.width, f.height)
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			X: Range{0, f.width}.RandomFrom(f.rng),
			Y: Range{0, f.height}.RandomFrom(f.rng),
			Z: StarDepthRange.RandomFrom(f.rng),
			R: StarRadiusRange.RandomFrom(f.rng),
			A: StarAlphaRange.RandomFrom(f.rng),
		}
	}
	f.stars = stars
}

// Start draws one frame immediately and keeps drawing on every scheduled
// frame. Calling Start while running restarts the chain without doubling it.
func (f *Starfield) Start() {
	f.Stop()
	f.running = true
	f.render()
	f.handle = f.sched.RequestFrame(f.frame)
}

// Stop cancels the render loop. Star state is kept.
func (f *Starfield) Stop() {
	if f.handle != 0 {
		f.sched.CancelFrame(f.handle)
		f.handle = 0
	}
	f.running = false
}

func (f *Starfield) frame(time.Duration) {
	f.handle = 0
	if !f.running {
		return
	}
	f.render()
	f.handle = f.sched.RequestFrame(f.frame)
}

// render clears the surface, draws every star, then drifts it.
func (f *Starfield) render() {
	f.surface.Clear()
	for i := range f.stars {
		s := &f.stars[i]
		f.surface.FillCircle(s.X, s.Y, s.R, StarColor, s.A)
		driftStar(s, f.width)
	}
	f.frames++
}

func (f *Starfield) onVisibility(ev Event) {
	if ev.Hidden {
		f.Stop()
		return
	}
	f.Start()
}

// Stars returns the live star slice. Callers must not retain it across a
// resize.
func (f *Starfield) Stars() []Star { return f.stars }

// Running reports whether the render loop is scheduled.
func (f *Starfield) Running() bool { return f.running }

// Frames returns how many frames have been drawn.
func (f *Starfield) Frames() int { return f.frames }

// Size returns the canvas size in CSS pixels and the backing-store scale.
func (f *Starfield) Size() (width, height, scale float64) {
	return f.width, f.height, f.scale
}
