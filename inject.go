package sitefx

// The Inject methods feed synthetic host events into a Page. They run
// handlers synchronously, in the order a browser would dispatch them.

// InjectScroll scrolls the document to y, clamped to the scrollable range.
// Scroll listeners and intersection observers run only when the position
// actually changes.
func (p *Page) InjectScroll(y float64) {
	y = clamp(y, 0, max(p.scrollHeight()-p.vh, 0))
	if y == p.scrollY {
		return
	}
	p.scrollY = y
	p.window.dispatch(Event{Type: EventScroll})
	p.evaluateIntersections()
	p.updateHover()
}

// InjectScrollBy scrolls relative to the current position.
func (p *Page) InjectScrollBy(dy float64) {
	p.InjectScroll(p.scrollY + dy)
}

// InjectPointerMove moves the pointer to client coordinates (x, y). The
// window sees a move first, then every element under the pointer gets enter
// (if newly hovered) and move, and every element it left gets leave.
func (p *Page) InjectPointerMove(x, y float64) {
	p.pointer = Vec2{X: x, Y: y}
	p.window.dispatch(Event{Type: EventPointerMove, X: x, Y: y})
	p.updateHover()
	for _, el := range p.order {
		if p.hover[el] {
			el.handlers.dispatch(Event{Type: EventPointerMove, Target: el, X: x, Y: y})
		}
	}
}

// InjectPointerOut moves the pointer off the page. Hovered elements get
// leave events.
func (p *Page) InjectPointerOut() {
	for _, el := range p.order {
		if p.hover[el] {
			delete(p.hover, el)
			el.handlers.dispatch(Event{Type: EventPointerLeave, Target: el, X: p.pointer.X, Y: p.pointer.Y})
		}
	}
	p.pointer = Vec2{X: -1, Y: -1}
}

// updateHover recomputes which elements contain the pointer after it or the
// page moved, dispatching enter and leave.
func (p *Page) updateHover() {
	x, y := p.pointer.X, p.pointer.Y
	for _, el := range p.order {
		inside := x >= 0 && y >= 0 && el.Bounds().Contains(x, y) && !el.rect.Empty()
		was := p.hover[el]
		switch {
		case inside && !was:
			p.hover[el] = true
			el.handlers.dispatch(Event{Type: EventPointerEnter, Target: el, X: x, Y: y})
		case !inside && was:
			delete(p.hover, el)
			el.handlers.dispatch(Event{Type: EventPointerLeave, Target: el, X: x, Y: y})
		}
	}
}

// InjectFocus moves keyboard focus to el, blurring the previous element.
// Elements from another page are ignored.
func (p *Page) InjectFocus(el Element) {
	pe, ok := el.(*PageElement)
	if !ok || pe.page != p || pe == p.focused {
		return
	}
	p.InjectBlur()
	p.focused = pe
	pe.handlers.dispatch(Event{Type: EventFocus, Target: pe})
}

// InjectBlur removes keyboard focus.
func (p *Page) InjectBlur() {
	prev := p.focused
	if prev == nil {
		return
	}
	p.focused = nil
	prev.handlers.dispatch(Event{Type: EventBlur, Target: prev})
}

// InjectFocusNext moves focus to the next focusable element in document
// order, wrapping around, the way Tab does. It returns the new focus.
func (p *Page) InjectFocusNext() *PageElement {
	var list []*PageElement
	for _, el := range p.order {
		if el.focusable() {
			list = append(list, el)
		}
	}
	if len(list) == 0 {
		return nil
	}
	next := list[0]
	for i, el := range list {
		if el == p.focused {
			next = list[(i+1)%len(list)]
			break
		}
	}
	p.InjectFocus(next)
	return next
}

// InjectKey sends a key press to the focused element, if any.
func (p *Page) InjectKey(key string) {
	if p.focused == nil {
		return
	}
	p.focused.handlers.dispatch(Event{Type: EventKeyDown, Target: p.focused, Key: key})
}

// InjectVisibility switches the tab between hidden and visible. Repeating
// the current state does nothing.
func (p *Page) InjectVisibility(hidden bool) {
	if hidden == p.hidden {
		return
	}
	p.hidden = hidden
	p.window.dispatch(Event{Type: EventVisibilityChange, Hidden: hidden})
}

// InjectResize changes el's box size and notifies its resize observers.
func (p *Page) InjectResize(el Element, width, height float64) {
	pe, ok := el.(*PageElement)
	if !ok || pe.page != p {
		return
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if pe.rect.Width == width && pe.rect.Height == height {
		return
	}
	pe.rect.Width, pe.rect.Height = width, height
	p.updateContentHeight()
	if maxY := p.scrollHeight() - p.vh; p.scrollY > maxY {
		p.scrollY = maxY
		p.window.dispatch(Event{Type: EventScroll})
	}
	pe.handlers.dispatch(Event{Type: EventResize, Target: pe})
	p.evaluateIntersections()
}

// InjectViewport resizes the viewport. The scroll position is re-clamped.
func (p *Page) InjectViewport(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	p.vw, p.vh = width, height
	if maxY := p.scrollHeight() - p.vh; p.scrollY > maxY {
		p.scrollY = maxY
		p.window.dispatch(Event{Type: EventScroll})
	}
	p.evaluateIntersections()
	p.updateHover()
}
