package sitefx

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ErrInvalidRect is returned by LoadPage when a data-rect attribute cannot be
// parsed.
var ErrInvalidRect = errors.New("invalid data-rect")

// AttrRect carries an element's layout box in document coordinates:
// "x,y,width,height". The page host has no layout engine; markup states
// geometry directly.
const AttrRect = "data-rect"

// AttrFixed marks an element (and its subtree) as viewport-fixed: its box
// does not move when the document scrolls.
const AttrFixed = "data-fixed"

const (
	defaultViewportWidth  = 1280
	defaultViewportHeight = 800
)

// SurfaceFactory creates the drawing surface for a canvas element. Returning
// nil means the canvas has no 2D context.
type SurfaceFactory func(el *PageElement) Surface

// PageConfig controls the in-memory page host.
type PageConfig struct {
	ViewportWidth  float64
	ViewportHeight float64
	// ContentHeight is the document scroll height. Zero derives it from the
	// lowest element box.
	ContentHeight float64

	ReducedMotion    bool
	DevicePixelRatio float64
	// NoIntersectionObserver simulates a host without visibility support.
	NoIntersectionObserver bool

	Surfaces SurfaceFactory
	// Scheduler defaults to a new FrameLoop.
	Scheduler Scheduler
}

// Page is an in-memory Host built from HTML markup. It tracks scroll
// position, pointer hover, focus and tab visibility, and evaluates element
// intersections against the viewport. Events are fed in through the Inject
// methods.
type Page struct {
	cfg   PageConfig
	doc   *html.Node
	elems map[*html.Node]*PageElement
	order []*PageElement

	window handlerRegistry
	sched  Scheduler
	loop   *FrameLoop

	vw, vh        float64
	contentHeight float64
	scrollY       float64
	hidden        bool
	pointer       Vec2
	hover         map[*PageElement]bool
	focused       *PageElement
}

// LoadPage parses markup from r and builds a page host.
func LoadPage(r io.Reader, cfg PageConfig) (*Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("load page: %w", err)
	}
	p := &Page{
		cfg:     cfg,
		doc:     doc,
		elems:   make(map[*html.Node]*PageElement),
		hover:   make(map[*PageElement]bool),
		pointer: Vec2{X: -1, Y: -1},
		vw:      cfg.ViewportWidth,
		vh:      cfg.ViewportHeight,
	}
	if p.vw <= 0 {
		p.vw = defaultViewportWidth
	}
	if p.vh <= 0 {
		p.vh = defaultViewportHeight
	}
	p.sched = cfg.Scheduler
	if p.sched == nil {
		p.loop = NewFrameLoop()
		p.sched = p.loop
	}

	var walkErr error
	var walk func(n *html.Node, fixed bool)
	walk = func(n *html.Node, fixed bool) {
		if walkErr != nil {
			return
		}
		if n.Type == html.ElementNode {
			if _, ok := lookupAttr(n, AttrFixed); ok {
				fixed = true
			}
			el := &PageElement{page: p, node: n, fixed: fixed}
			if raw, ok := lookupAttr(n, AttrRect); ok {
				rect, err := parseRect(raw)
				if err != nil {
					walkErr = fmt.Errorf("load page: <%s> %s: %w", n.Data, describeNode(n), err)
					return
				}
				el.rect = rect
			}
			p.elems[n] = el
			p.order = append(p.order, el)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, fixed)
		}
	}
	walk(doc, false)
	if walkErr != nil {
		return nil, walkErr
	}

	p.updateContentHeight()
	return p, nil
}

// updateContentHeight derives the document height from the lowest
// non-fixed element box unless PageConfig.ContentHeight pins it.
func (p *Page) updateContentHeight() {
	if p.cfg.ContentHeight > 0 {
		p.contentHeight = p.cfg.ContentHeight
		return
	}
	p.contentHeight = 0
	for _, el := range p.order {
		if el.fixed {
			continue
		}
		if b := el.rect.Y + el.rect.Height; b > p.contentHeight {
			p.contentHeight = b
		}
	}
}

// ParsePage is LoadPage over a string.
func ParsePage(markup string, cfg PageConfig) (*Page, error) {
	return LoadPage(strings.NewReader(markup), cfg)
}

func parseRect(raw string) (Rect, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return Rect{}, fmt.Errorf("%w %q: want x,y,width,height", ErrInvalidRect, raw)
	}
	var v [4]float64
	for i, s := range parts {
		f, ok := parseCountTo(s)
		if !ok || strings.TrimSpace(s) == "" {
			return Rect{}, fmt.Errorf("%w %q: field %d is not a number", ErrInvalidRect, raw, i)
		}
		v[i] = f
	}
	if v[2] < 0 || v[3] < 0 {
		return Rect{}, fmt.Errorf("%w %q: negative size", ErrInvalidRect, raw)
	}
	return Rect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, nil
}

func describeNode(n *html.Node) string {
	if id := getAttr(n, "id"); id != "" {
		return "#" + id
	}
	if cls := getAttr(n, "class"); cls != "" {
		return "." + strings.Join(strings.Fields(cls), ".")
	}
	return ""
}

func (p *Page) wrap(nodes []*html.Node) []Element {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, p.elems[n])
	}
	return out
}

// Element returns the first element matching selector as a *PageElement,
// or nil.
func (p *Page) Element(selector string) *PageElement {
	nodes := queryAll(p.doc, selector, 1)
	if len(nodes) == 0 {
		return nil
	}
	return p.elems[nodes[0]]
}

// Query implements Host.
func (p *Page) Query(selector string) Element {
	if el := p.Element(selector); el != nil {
		return el
	}
	return nil
}

// QueryAll implements Host.
func (p *Page) QueryAll(selector string) []Element {
	return p.wrap(queryAll(p.doc, selector, 0))
}

// ScrollMetrics implements Host.
func (p *Page) ScrollMetrics() ScrollMetrics {
	return ScrollMetrics{
		ScrollTop:    p.scrollY,
		ScrollHeight: p.scrollHeight(),
		ClientHeight: p.vh,
	}
}

func (p *Page) scrollHeight() float64 {
	if p.contentHeight > p.vh {
		return p.contentHeight
	}
	return p.vh
}

// ReducedMotion implements Host.
func (p *Page) ReducedMotion() bool { return p.cfg.ReducedMotion }

// DevicePixelRatio implements Host. Unset means 1.
func (p *Page) DevicePixelRatio() float64 {
	if p.cfg.DevicePixelRatio <= 0 {
		return 1
	}
	return p.cfg.DevicePixelRatio
}

// Scheduler implements Host.
func (p *Page) Scheduler() Scheduler { return p.sched }

// Loop returns the page's own frame loop, or nil when PageConfig.Scheduler
// was supplied.
func (p *Page) Loop() *FrameLoop { return p.loop }

// Observer implements Host.
func (p *Page) Observer() IntersectionObserver {
	if p.cfg.NoIntersectionObserver {
		return nil
	}
	return p
}

// OnScroll implements Host.
func (p *Page) OnScroll(fn func(Event)) CallbackHandle {
	return p.window.add(EventScroll, fn)
}

// OnPointerMove implements Host.
func (p *Page) OnPointerMove(fn func(Event)) CallbackHandle {
	return p.window.add(EventPointerMove, fn)
}

// OnVisibilityChange implements Host.
func (p *Page) OnVisibilityChange(fn func(Event)) CallbackHandle {
	return p.window.add(EventVisibilityChange, fn)
}

// Observe implements IntersectionObserver. fn receives the current sample
// immediately, then again each time the element crosses threshold.
func (p *Page) Observe(el Element, threshold float64, fn func(Intersection)) CallbackHandle {
	pe, ok := el.(*PageElement)
	if !ok || pe.page != p || fn == nil {
		return CallbackHandle{}
	}
	first := true
	above := false
	h := pe.handlers.add(eventIntersect, func(ev Event) {
		now := ev.intersecting && ev.ratio >= threshold
		if !first && now == above {
			return
		}
		first = false
		above = now
		fn(Intersection{Ratio: ev.ratio, Intersecting: ev.intersecting})
	})
	p.evaluate(pe)
	return h
}

// intersection computes the visible fraction of pe within the viewport.
// Zero-area boxes inside the viewport count as fully visible.
func (p *Page) intersection(pe *PageElement) (ratio float64, intersecting bool) {
	b := pe.Bounds()
	inter, ok := b.Intersection(Rect{Width: p.vw, Height: p.vh})
	if !ok {
		return 0, false
	}
	if b.Area() <= 0 {
		return 1, true
	}
	return inter.Area() / b.Area(), true
}

func (p *Page) evaluate(pe *PageElement) {
	if pe.handlers.count(eventIntersect) == 0 {
		return
	}
	ratio, in := p.intersection(pe)
	pe.handlers.dispatch(Event{Type: eventIntersect, Target: pe, ratio: ratio, intersecting: in})
}

func (p *Page) evaluateIntersections() {
	if p.cfg.NoIntersectionObserver {
		return
	}
	for _, pe := range p.order {
		p.evaluate(pe)
	}
}

// ListenerCount returns the number of event subscriptions on the window and
// every element, not counting intersection observations.
func (p *Page) ListenerCount() int {
	n := p.window.total()
	for _, pe := range p.order {
		n += pe.handlers.total()
	}
	return n
}

// Viewport returns the viewport size.
func (p *Page) Viewport() (width, height float64) { return p.vw, p.vh }

// Hidden reports the current tab visibility.
func (p *Page) Hidden() bool { return p.hidden }

// Focused returns the element with keyboard focus, or nil.
func (p *Page) Focused() *PageElement { return p.focused }

// Elements returns every element in document order.
func (p *Page) Elements() []*PageElement { return p.order }

// Render writes the current document, including runtime classes, text and
// inline styles, as HTML.
func (p *Page) Render(w io.Writer) error {
	if err := html.Render(w, p.doc); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
