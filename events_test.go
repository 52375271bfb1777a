package sitefx

import "testing"

func TestHandlerRegistryRemoveDuringDispatch(t *testing.T) {
	var r handlerRegistry
	var order []string
	var second CallbackHandle

	r.add(EventScroll, func(Event) {
		order = append(order, "first")
		second.Remove()
	})
	second = r.add(EventScroll, func(Event) { order = append(order, "second") })
	r.add(EventScroll, func(Event) { order = append(order, "third") })

	r.dispatch(Event{Type: EventScroll})
	if len(order) != 2 || order[0] != "first" || order[1] != "third" {
		t.Errorf("order = %v, want [first third]", order)
	}
	if second.Active() {
		t.Error("removed handle still active")
	}
}

func TestHandlerRegistryAddDuringDispatch(t *testing.T) {
	var r handlerRegistry
	calls := 0
	r.add(EventFocus, func(Event) {
		r.add(EventFocus, func(Event) { calls++ })
	})
	r.dispatch(Event{Type: EventFocus})
	if calls != 0 {
		t.Errorf("handler added during dispatch ran %d times", calls)
	}
	r.dispatch(Event{Type: EventFocus})
	if calls != 1 {
		t.Errorf("calls = %d after second dispatch, want 1", calls)
	}
}

func TestCallbackHandleZeroValue(t *testing.T) {
	var h CallbackHandle
	h.Remove()
	if h.Active() {
		t.Error("zero handle reports active")
	}
	var r handlerRegistry
	if h := r.add(EventBlur, nil); h.Active() {
		t.Error("nil callback registered")
	}
}

func TestEventTypeString(t *testing.T) {
	if got := EventVisibilityChange.String(); got != "visibilitychange" {
		t.Errorf("String() = %q", got)
	}
	if got := EventType(200).String(); got == "" {
		t.Error("unknown event type has empty name")
	}
}
