package sitefx

// WatchOptions configures one Observe call.
type WatchOptions struct {
	// Threshold is the visible fraction in [0, 1] that counts as "entered".
	Threshold float64
	// Once stops observing after the first enter.
	Once bool
}

// Watcher fires callbacks when elements scroll into view. When the host has
// no intersection support, or motion is reduced, the watcher is bypassed:
// Observe applies the callback immediately instead of waiting.
type Watcher struct {
	obs    IntersectionObserver
	bypass bool
}

func newWatcher(obs IntersectionObserver, reducedMotion bool) *Watcher {
	return &Watcher{obs: obs, bypass: obs == nil || reducedMotion}
}

// Bypassed reports whether Observe runs callbacks synchronously.
func (w *Watcher) Bypassed() bool { return w.bypass }

// Observe calls onEnter when el's visible fraction reaches opts.Threshold.
// With opts.Once the observation is removed on first fire and can never
// fire again. The returned handle stops observation early.
func (w *Watcher) Observe(el Element, onEnter func(), opts WatchOptions) CallbackHandle {
	if w.bypass {
		onEnter()
		return CallbackHandle{}
	}

	var (
		handle CallbackHandle
		fired  bool
	)
	handle = w.obs.Observe(el, opts.Threshold, func(in Intersection) {
		if !in.Intersecting || in.Ratio < opts.Threshold {
			return
		}
		if opts.Once {
			if fired {
				return
			}
			fired = true
			handle.Remove()
		}
		onEnter()
	})
	// The observer may deliver its initial sample before returning.
	if opts.Once && fired {
		handle.Remove()
	}
	return handle
}

// RevealTarget is an element that fades in once it first becomes visible.
type RevealTarget struct {
	el       Element
	revealed bool
}

// Reveal marks the target visible. Later calls do nothing.
func (r *RevealTarget) Reveal() {
	if r.revealed {
		return
	}
	r.revealed = true
	r.el.SetClass(ClassRevealVisible, true)
}

// Revealed reports whether Reveal has run.
func (r *RevealTarget) Revealed() bool { return r.revealed }

// Element returns the underlying element.
func (r *RevealTarget) Element() Element { return r.el }
