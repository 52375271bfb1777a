package sitefx

import "time"

// ParallaxOffset returns the translation for layer index i given the
// pointer's normalized offset from the hero center.
func ParallaxOffset(dx, dy float64, i int) Vec2 {
	depth := float64(i+1) * ParallaxDepthStep
	return Vec2{X: dx * depth, Y: dy * depth}
}

// TiltAngles converts a normalized in-card pointer position to rotations in
// degrees.
func TiltAngles(x, y float64) (rotateX, rotateY float64) {
	return (0.5 - y) * TiltRotateXScale, (x - 0.5) * TiltRotateYScale
}

func translateTransform(v Vec2) string {
	return "translate(" + cssNumber(v.X) + "px, " + cssNumber(v.Y) + "px)"
}

func tiltTransform(rx, ry float64) string {
	return "perspective(" + cssNumber(TiltPerspective) + "px) rotateX(" + cssNumber(rx) +
		"deg) rotateY(" + cssNumber(ry) + "deg) translateZ(0)"
}

// Parallax shifts background layers against pointer movement over the hero.
// Farther layers (higher index) move more. Writes happen synchronously on
// each move; one listener serves every layer.
type Parallax struct {
	hero   Element
	layers []Element
	last   []Vec2
	handle CallbackHandle
}

func newParallax(hero Element, layers []Element) *Parallax {
	return &Parallax{hero: hero, layers: layers, last: make([]Vec2, len(layers))}
}

func (p *Parallax) onMove(ev Event) {
	r := p.hero.Bounds()
	if r.Empty() {
		return
	}
	c := r.Center()
	dx := (ev.X - c.X) / r.Width
	dy := (ev.Y - c.Y) / r.Height
	for i, layer := range p.layers {
		off := ParallaxOffset(dx, dy, i)
		p.last[i] = off
		layer.SetStyle(StyleTransform, translateTransform(off))
	}
}

// Offsets returns the last translation applied to each layer.
func (p *Parallax) Offsets() []Vec2 { return p.last }

// TiltCard rotates a card toward the pointer. At most one transform write is
// pending per card; a newer move replaces it.
type TiltCard struct {
	el        Element
	sched     Scheduler
	pending   FrameHandle
	transform string
	writes    int
}

func newTiltCard(el Element, s Scheduler) *TiltCard {
	return &TiltCard{el: el, sched: s}
}

func (c *TiltCard) onMove(ev Event) {
	r := c.el.Bounds()
	if r.Empty() {
		return
	}
	x := (ev.X - r.X) / r.Width
	y := (ev.Y - r.Y) / r.Height
	value := tiltTransform(TiltAngles(x, y))

	c.cancelPending()
	c.pending = c.sched.RequestFrame(func(time.Duration) {
		c.pending = 0
		c.apply(value)
	})
}

func (c *TiltCard) onLeave(Event) {
	c.cancelPending()
	c.apply("")
}

func (c *TiltCard) cancelPending() {
	if c.pending != 0 {
		c.sched.CancelFrame(c.pending)
		c.pending = 0
	}
}

func (c *TiltCard) apply(value string) {
	c.transform = value
	c.writes++
	c.el.SetStyle(StyleTransform, value)
}

// Transform returns the last transform written, "" when flat.
func (c *TiltCard) Transform() string { return c.transform }

// Pending reports whether a write is waiting for the next frame.
func (c *TiltCard) Pending() bool { return c.pending != 0 }

// Writes returns how many transform writes reached the element.
func (c *TiltCard) Writes() int { return c.writes }

// Element returns the card element.
func (c *TiltCard) Element() Element { return c.el }
