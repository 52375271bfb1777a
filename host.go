package sitefx

// Element is a host-page node. Components read geometry and attributes from
// it and write visual state (classes, text, inline styles) back.
type Element interface {
	// Attr returns the attribute value and whether it is present.
	Attr(name string) (string, bool)
	HasClass(name string) bool
	SetClass(name string, on bool)
	Text() string
	SetText(s string)
	Style(prop string) string
	// SetStyle sets an inline style property. An empty value removes it.
	SetStyle(prop, value string)
	// Bounds returns the element's box in client (viewport) coordinates.
	Bounds() Rect
	// Query returns the first descendant matching selector, or nil.
	Query(selector string) Element
	QueryAll(selector string) []Element
	// On subscribes fn to events of type t targeted at this element.
	On(t EventType, fn func(Event)) CallbackHandle
}

// Canvas is an Element that can host 2D drawing.
type Canvas interface {
	Element
	// SetBackingSize sets the backing-store resolution in device pixels.
	SetBackingSize(w, h int)
	// Context2D returns the drawing surface, or nil when the host cannot
	// provide one.
	Context2D() Surface
}

// Surface is the minimal 2D drawing capability the starfield needs.
type Surface interface {
	Clear()
	// SetScale sets a uniform transform from CSS pixels to device pixels.
	SetScale(s float64)
	FillCircle(x, y, r float64, c Color, alpha float64)
}

// ScrollMetrics describes the document's vertical scroll geometry.
type ScrollMetrics struct {
	ScrollTop    float64
	ScrollHeight float64
	ClientHeight float64
}

// Intersection is one visibility sample of an observed element.
type Intersection struct {
	Ratio        float64
	Intersecting bool
}

// IntersectionObserver reports when observed elements cross a visible-ratio
// threshold. Callbacks fire once right after Observe and again whenever the
// element crosses the threshold in either direction.
type IntersectionObserver interface {
	Observe(el Element, threshold float64, fn func(Intersection)) CallbackHandle
}

// Host is everything the subsystem needs from the embedding page.
type Host interface {
	Query(selector string) Element
	QueryAll(selector string) []Element
	ScrollMetrics() ScrollMetrics
	// ReducedMotion reports the accessibility preference. Read once.
	ReducedMotion() bool
	DevicePixelRatio() float64
	Scheduler() Scheduler
	// Observer returns nil when the host lacks intersection support.
	Observer() IntersectionObserver
	OnScroll(fn func(Event)) CallbackHandle
	OnPointerMove(fn func(Event)) CallbackHandle
	OnVisibilityChange(fn func(Event)) CallbackHandle
}
