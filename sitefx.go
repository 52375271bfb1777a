package sitefx

import (
	"math"
	"math/rand/v2"
	"strconv"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// StarColor is the fill used for every starfield particle (#0b1220).
var StarColor = Color{R: 11.0 / 255, G: 18.0 / 255, B: 32.0 / 255, A: 1}

// Vec2 is a 2D vector used for pointer positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Intersection returns the overlapping region of r and other. The result has
// zero size when the rectangles only touch, and ok is false when they are
// disjoint.
func (r Rect) Intersection(other Rect) (Rect, bool) {
	if !r.Intersects(other) {
		return Rect{}, false
	}
	x0 := math.Max(r.X, other.X)
	y0 := math.Max(r.Y, other.Y)
	x1 := math.Min(r.X+r.Width, other.X+other.Width)
	y1 := math.Min(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, true
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Area returns Width*Height.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Empty reports whether the rectangle has no positive extent on either axis.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Range is a half-open [Min, Max) range used for randomized star properties.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max) from the global source.
func (r Range) Random() float64 {
	return r.RandomFrom(nil)
}

// RandomFrom returns a random float64 in [Min, Max) drawn from rng. A nil
// rng uses the global source.
func (r Range) RandomFrom(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	var f float64
	if rng != nil {
		f = rng.Float64()
	} else {
		f = rand.Float64()
	}
	return r.Min + f*(r.Max-r.Min)
}

// EventType identifies a kind of host event.
type EventType uint8

const (
	EventPointerMove      EventType = iota // pointer moved over the window or an element
	EventPointerEnter                      // pointer entered an element's bounds
	EventPointerLeave                      // pointer left an element's bounds
	EventFocus                             // element gained keyboard focus
	EventBlur                              // element lost keyboard focus
	EventKeyDown                           // key pressed while the element has focus
	EventResize                            // element box changed size
	EventScroll                            // document scrolled
	EventVisibilityChange                  // tab became hidden or visible
	eventIntersect                         // internal: intersection re-evaluation
)

var eventTypeNames = [...]string{
	EventPointerMove:      "pointermove",
	EventPointerEnter:     "pointerenter",
	EventPointerLeave:     "pointerleave",
	EventFocus:            "focus",
	EventBlur:             "blur",
	EventKeyDown:          "keydown",
	EventResize:           "resize",
	EventScroll:           "scroll",
	EventVisibilityChange: "visibilitychange",
	eventIntersect:        "intersect",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "event(" + strconv.Itoa(int(t)) + ")"
}

// Event carries host event data to subscribed callbacks.
type Event struct {
	Type   EventType
	Target Element
	// X and Y are client (viewport) coordinates for pointer events.
	X, Y float64
	// Key is the key value for EventKeyDown ("Enter", " ", ...).
	Key string
	// Hidden is the new tab state for EventVisibilityChange.
	Hidden bool

	ratio        float64
	intersecting bool
}

// cssNumber formats v the way a browser stringifies a number in a style
// value: shortest round-trip form, no exponent for ordinary magnitudes.
func cssNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// clamp maps NaN to lo.
func clamp(v, lo, hi float64) float64 {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
