package sitefx

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation is one running eased 0→1 progression driven by frame callbacks.
// It samples the frame timestamp once per callback, eases the linear
// fraction with a cubic ease-out and reports it to onProgress, rescheduling
// itself until the fraction reaches 1. The final sample is exactly 1.
//
// There is no global animation manager. Use a Track to keep at most one
// animation alive per subject.
type Animation struct {
	sched      Scheduler
	tween      *gween.Tween
	duration   time.Duration
	onProgress func(eased float64)

	handle    FrameHandle
	started   bool
	start     time.Duration
	last      float64
	samples   int
	done      bool
	cancelled bool
}

// Animate starts an animation of the given duration on s. The clock starts
// at the first frame callback. A non-positive duration completes on the
// first frame with a single sample of 1.
func Animate(s Scheduler, duration time.Duration, onProgress func(eased float64)) *Animation {
	a := &Animation{
		sched:      s,
		tween:      gween.New(0, 1, 1, ease.OutCubic),
		duration:   duration,
		onProgress: onProgress,
	}
	a.handle = s.RequestFrame(a.frame)
	return a
}

func (a *Animation) frame(now time.Duration) {
	a.handle = 0
	if a.cancelled {
		return
	}
	if !a.started {
		a.started = true
		a.start = now
	}

	p := 1.0
	if a.duration > 0 {
		p = clamp01(float64(now-a.start) / float64(a.duration))
	}
	eased := 1.0
	if p < 1 {
		v, _ := a.tween.Set(float32(p))
		eased = float64(v)
	}
	a.last = eased
	a.samples++
	if a.onProgress != nil {
		a.onProgress(eased)
	}

	if p >= 1 {
		a.done = true
		return
	}
	// onProgress may have cancelled us.
	if a.cancelled {
		return
	}
	a.handle = a.sched.RequestFrame(a.frame)
}

// Cancel stops the animation. No further onProgress calls happen, even if a
// frame was already queued. Cancelling a finished animation is a no-op.
func (a *Animation) Cancel() {
	if a == nil || a.done || a.cancelled {
		return
	}
	a.cancelled = true
	if a.handle != 0 {
		a.sched.CancelFrame(a.handle)
		a.handle = 0
	}
}

// Done reports whether the animation delivered its final sample.
func (a *Animation) Done() bool { return a.done }

// Cancelled reports whether Cancel stopped the animation before it finished.
func (a *Animation) Cancelled() bool { return a.cancelled }

// Progress returns the most recent eased sample.
func (a *Animation) Progress() float64 { return a.last }

// Samples returns how many times onProgress has been called.
func (a *Animation) Samples() int { return a.samples }

// Track owns the animation for one subject (a counter element, the timeline
// sweep). Starting a new animation cancels the previous one first.
type Track struct {
	current *Animation
}

// Start cancels any live animation and starts a new one.
func (t *Track) Start(s Scheduler, duration time.Duration, onProgress func(eased float64)) *Animation {
	t.Cancel()
	t.current = Animate(s, duration, onProgress)
	return t.current
}

// Cancel stops the live animation, if any.
func (t *Track) Cancel() {
	if t.current != nil {
		t.current.Cancel()
	}
}

// Active reports whether an animation is still running.
func (t *Track) Active() bool {
	return t.current != nil && !t.current.done && !t.current.cancelled
}

// Current returns the most recently started animation, or nil.
func (t *Track) Current() *Animation {
	return t.current
}
