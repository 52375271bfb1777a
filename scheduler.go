package sitefx

import "time"

// FrameHandle identifies one pending frame callback. Zero is never issued.
type FrameHandle uint64

// Scheduler queues callbacks for the next visual frame, the way a browser's
// requestAnimationFrame does. Callbacks receive the frame timestamp as an
// offset from an arbitrary, fixed origin.
type Scheduler interface {
	RequestFrame(fn func(now time.Duration)) FrameHandle
	// CancelFrame guarantees fn will not run, even if the frame it was
	// queued for is already being dispatched.
	CancelFrame(h FrameHandle)
}

type frameRequest struct {
	id FrameHandle
	fn func(now time.Duration)
}

// FrameLoop is a manually ticked Scheduler. A live host calls Tick once per
// display refresh; tests call it with synthetic timestamps.
//
// Callbacks requested while a tick is dispatching run on the following tick,
// never the current one.
type FrameLoop struct {
	nextID  FrameHandle
	pending []frameRequest
	spare   []frameRequest
	live    map[FrameHandle]struct{}
	now     time.Duration

	debug bool
	stats FrameStats
}

// NewFrameLoop creates an idle frame loop at timestamp zero.
func NewFrameLoop() *FrameLoop {
	return &FrameLoop{live: make(map[FrameHandle]struct{})}
}

// RequestFrame queues fn for the next Tick.
func (l *FrameLoop) RequestFrame(fn func(now time.Duration)) FrameHandle {
	l.nextID++
	id := l.nextID
	l.pending = append(l.pending, frameRequest{id: id, fn: fn})
	l.live[id] = struct{}{}
	l.stats.Requested++
	return id
}

// CancelFrame drops a queued callback. Unknown or already-run handles are
// ignored.
func (l *FrameLoop) CancelFrame(h FrameHandle) {
	if _, ok := l.live[h]; !ok {
		return
	}
	delete(l.live, h)
	l.stats.Cancelled++
}

// Tick runs every callback queued before this call with timestamp now and
// returns how many ran. Timestamps earlier than the previous tick are raised
// to it so frame time never goes backwards.
func (l *FrameLoop) Tick(now time.Duration) int {
	if now < l.now {
		now = l.now
	}
	l.now = now

	batch := l.pending
	l.pending = l.spare[:0]

	ran := 0
	for i := range batch {
		req := batch[i]
		batch[i] = frameRequest{}
		if _, ok := l.live[req.id]; !ok {
			continue
		}
		delete(l.live, req.id)
		req.fn(now)
		ran++
	}
	l.spare = batch[:0]

	l.stats.Ticks++
	l.stats.Ran += ran
	if l.debug {
		l.debugLog(ran)
	}
	return ran
}

// Advance ticks once at the current timestamp plus d.
func (l *FrameLoop) Advance(d time.Duration) int {
	return l.Tick(l.now + d)
}

// RunFor ticks every step until total has elapsed or nothing is pending.
// It returns the number of ticks performed.
func (l *FrameLoop) RunFor(total, step time.Duration) int {
	if step <= 0 {
		step = DefaultFrameInterval
	}
	ticks := 0
	for elapsed := time.Duration(0); elapsed < total; elapsed += step {
		if l.Pending() == 0 {
			break
		}
		l.Advance(step)
		ticks++
	}
	return ticks
}

// Now returns the timestamp of the most recent tick.
func (l *FrameLoop) Now() time.Duration {
	return l.now
}

// Pending returns the number of callbacks queued for the next tick.
func (l *FrameLoop) Pending() int {
	return len(l.live)
}

// Stats returns cumulative counters since the loop was created.
func (l *FrameLoop) Stats() FrameStats {
	return l.stats
}

// SetDebugMode enables per-tick stats logging at debug level.
func (l *FrameLoop) SetDebugMode(enabled bool) {
	l.debug = enabled
}

// DefaultFrameInterval is one frame at 60Hz, rounded to whole milliseconds.
const DefaultFrameInterval = 16 * time.Millisecond
