package sitefx

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// PageElement is one element of a Page. Runtime class, text and style
// changes are written through to the underlying markup node so Page.Render
// reflects them.
type PageElement struct {
	page     *Page
	node     *html.Node
	rect     Rect
	fixed    bool
	style    map[string]string
	handlers handlerRegistry

	surface        Surface
	surfaceCreated bool
	backingW       int
	backingH       int
}

var _ Canvas = (*PageElement)(nil)

// Tag returns the lower-case element name.
func (e *PageElement) Tag() string { return e.node.Data }

// Attr implements Element.
func (e *PageElement) Attr(name string) (string, bool) {
	return lookupAttr(e.node, name)
}

// HasClass implements Element.
func (e *PageElement) HasClass(name string) bool {
	return containsString(strings.Fields(getAttr(e.node, "class")), name)
}

// SetClass implements Element.
func (e *PageElement) SetClass(name string, on bool) {
	classes := strings.Fields(getAttr(e.node, "class"))
	has := containsString(classes, name)
	switch {
	case on && !has:
		classes = append(classes, name)
	case !on && has:
		classes = slices.DeleteFunc(classes, func(c string) bool { return c == name })
	default:
		return
	}
	setAttr(e.node, "class", strings.Join(classes, " "))
}

// Text implements Element.
func (e *PageElement) Text() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return b.String()
}

// SetText implements Element. Child elements are detached from the markup
// but stay registered with the page.
func (e *PageElement) SetText(s string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}

// Style implements Element.
func (e *PageElement) Style(prop string) string {
	return e.style[prop]
}

// SetStyle implements Element.
func (e *PageElement) SetStyle(prop, value string) {
	if value == "" {
		delete(e.style, prop)
	} else {
		if e.style == nil {
			e.style = make(map[string]string)
		}
		e.style[prop] = value
	}
	e.syncStyleAttr()
}

func (e *PageElement) syncStyleAttr() {
	if len(e.style) == 0 {
		e.node.Attr = slices.DeleteFunc(e.node.Attr, func(a html.Attribute) bool { return a.Key == "style" })
		return
	}
	var b strings.Builder
	for i, k := range slices.Sorted(maps.Keys(e.style)) {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.style[k])
		b.WriteString(";")
	}
	setAttr(e.node, "style", b.String())
}

// Rect returns the element's box in document coordinates.
func (e *PageElement) Rect() Rect { return e.rect }

// Bounds implements Element: the document box shifted by the scroll
// position, unless the element is fixed.
func (e *PageElement) Bounds() Rect {
	r := e.rect
	if !e.fixed {
		r.Y -= e.page.scrollY
	}
	return r
}

// Query implements Element.
func (e *PageElement) Query(selector string) Element {
	nodes := queryAll(e.node, selector, 1)
	if len(nodes) == 0 {
		return nil
	}
	return e.page.elems[nodes[0]]
}

// QueryAll implements Element.
func (e *PageElement) QueryAll(selector string) []Element {
	return e.page.wrap(queryAll(e.node, selector, 0))
}

// On implements Element.
func (e *PageElement) On(t EventType, fn func(Event)) CallbackHandle {
	return e.handlers.add(t, fn)
}

// SetBackingSize implements Canvas. Surfaces that can resize are resized to
// match.
func (e *PageElement) SetBackingSize(w, h int) {
	e.backingW, e.backingH = w, h
	setAttr(e.node, "width", strconv.Itoa(w))
	setAttr(e.node, "height", strconv.Itoa(h))
	if r, ok := e.surface.(interface{ Resize(w, h int) error }); ok {
		if err := r.Resize(w, h); err != nil {
			Logger().Warn("canvas resize failed", "width", w, "height", h, "err", err)
		}
	}
}

// BackingSize returns the last size passed to SetBackingSize.
func (e *PageElement) BackingSize() (w, h int) { return e.backingW, e.backingH }

// Context2D implements Canvas. Only <canvas> elements get a surface, and
// only when the page has a SurfaceFactory.
func (e *PageElement) Context2D() Surface {
	if !e.surfaceCreated {
		e.surfaceCreated = true
		if e.node.Data == "canvas" && e.page.cfg.Surfaces != nil {
			e.surface = e.page.cfg.Surfaces(e)
		}
	}
	if e.surface == nil {
		return nil
	}
	return e.surface
}

func (e *PageElement) focusable() bool {
	if v, ok := lookupAttr(e.node, "tabindex"); ok {
		return !strings.HasPrefix(strings.TrimSpace(v), "-")
	}
	switch e.node.Data {
	case "a", "button", "input", "select", "textarea":
		return true
	}
	return false
}

func (e *PageElement) String() string {
	return "<" + e.node.Data + ">" + describeNode(e.node)
}
