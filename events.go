package sitefx

// --- Handler registry ---

type eventHandler struct {
	id uint32
	fn func(Event)
}

// handlerRegistry holds subscriptions per event type for one event target
// (the window or a single element).
type handlerRegistry struct {
	handlers map[EventType][]eventHandler
	nextID   uint32
}

// CallbackHandle allows removing a registered callback.
// The zero value is valid and Remove on it is a no-op.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. Safe to call from
// inside the callback itself and safe to call more than once.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.handlers[h.event] = removeHandler(h.reg.handlers[h.event], h.id)
}

// Active reports whether the callback is still registered.
func (h CallbackHandle) Active() bool {
	if h.reg == nil {
		return false
	}
	for _, e := range h.reg.handlers[h.event] {
		if e.id == h.id {
			return true
		}
	}
	return false
}

func removeHandler(s []eventHandler, id uint32) []eventHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) add(t EventType, fn func(Event)) CallbackHandle {
	if fn == nil {
		return CallbackHandle{}
	}
	if r.handlers == nil {
		r.handlers = make(map[EventType][]eventHandler)
	}
	r.nextID++
	id := r.nextID
	r.handlers[t] = append(r.handlers[t], eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r, event: t}
}

// dispatch calls every handler registered for ev.Type. Handlers added during
// dispatch do not see the current event; handlers removed during dispatch
// are skipped if they have not run yet.
func (r *handlerRegistry) dispatch(ev Event) {
	list := r.handlers[ev.Type]
	if len(list) == 0 {
		return
	}
	snapshot := make([]eventHandler, len(list))
	copy(snapshot, list)
	for _, h := range snapshot {
		if !r.has(ev.Type, h.id) {
			continue
		}
		h.fn(ev)
	}
}

func (r *handlerRegistry) has(t EventType, id uint32) bool {
	for _, e := range r.handlers[t] {
		if e.id == id {
			return true
		}
	}
	return false
}

func (r *handlerRegistry) count(t EventType) int {
	return len(r.handlers[t])
}

func (r *handlerRegistry) total() int {
	n := 0
	for t, list := range r.handlers {
		if t == eventIntersect {
			continue
		}
		n += len(list)
	}
	return n
}
