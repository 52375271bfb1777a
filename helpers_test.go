package sitefx

import (
	"math/rand/v2"
	"testing"
	"time"
)

// recordSurface is a Surface that counts calls instead of drawing.
type recordSurface struct {
	clears  int
	scale   float64
	circles int
	resizes [][2]int
}

func (s *recordSurface) Clear() { s.clears++ }

func (s *recordSurface) SetScale(f float64) { s.scale = f }

func (s *recordSurface) Resize(w, h int) error {
	s.resizes = append(s.resizes, [2]int{w, h})
	return nil
}

func (s *recordSurface) FillCircle(x, y, r float64, c Color, alpha float64) {
	s.circles++
}

// landingMarkup has one of every hook. The document is 2200px tall.
const landingMarkup = `<!doctype html>
<html><body>
<div class="scroll-progress" data-fixed data-rect="0,0,1280,4"><div class="bar" data-rect="0,0,1280,4"></div></div>
<section class="hero" data-rect="0,0,1280,600">
  <canvas id="starfield" data-rect="0,0,1280,600"></canvas>
  <div class="blob" data-rect="100,100,200,200"></div>
  <div class="blob" data-rect="600,100,200,200"></div>
  <div class="blob" data-rect="900,300,200,200"></div>
</section>
<section class="reveal" id="intro" data-rect="0,600,1280,300"></section>
<section class="reveal" id="stats" data-rect="0,1000,1280,300">
  <span class="counter" data-count-to="2500" data-rect="100,1100,200,50">0</span>
  <span class="counter" data-count-to="48" data-rect="400,1100,200,50">0</span>
</section>
<article class="card" data-tilt data-rect="100,1400,300,200"></article>
<article class="card" data-tilt data-rect="500,1400,300,200"></article>
<section id="roadmap" data-rect="0,1700,1280,500">
  <div class="timeline-wrap" data-rect="80,1750,1120,300">
    <div class="timeline" data-rect="100,1800,1000,12"><div class="progress" data-rect="100,1800,0,12"></div></div>
    <button class="milestone" data-pct="0" data-rect="80,1850,40,40">Alpha</button>
    <button class="milestone" data-pct="40" data-rect="480,1850,40,40">Beta</button>
    <button class="milestone" data-pct="100" data-rect="1080,1850,40,40">GA</button>
  </div>
</section>
</body></html>`

type testPage struct {
	*Page
	loop    *FrameLoop
	surface *recordSurface
	ui      *UIState
}

// newTestPage loads markup with a fresh frame loop and a recording canvas
// surface. attach controls whether Attach runs.
func newTestPage(t *testing.T, markup string, cfg PageConfig, attach bool) *testPage {
	t.Helper()
	tp := &testPage{loop: NewFrameLoop()}
	cfg.Scheduler = tp.loop
	if cfg.Surfaces == nil {
		cfg.Surfaces = func(*PageElement) Surface {
			tp.surface = &recordSurface{}
			return tp.surface
		}
	}
	p, err := ParsePage(markup, cfg)
	if err != nil {
		t.Fatalf("ParsePage: %v", err)
	}
	tp.Page = p
	if attach {
		tp.ui = Attach(p, WithRand(rand.New(rand.NewPCG(1, 2))))
	}
	return tp
}

// runFrames ticks the loop n times at the default frame interval.
func (tp *testPage) runFrames(n int) {
	for range n {
		tp.loop.Advance(DefaultFrameInterval)
	}
}

// runFor ticks the loop until d of virtual time has passed.
func (tp *testPage) runFor(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += DefaultFrameInterval {
		tp.loop.Advance(DefaultFrameInterval)
	}
}
