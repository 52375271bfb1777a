package sitefx

import (
	"log/slog"
	"math/rand/v2"

	"golang.org/x/text/message"
)

// Capabilities are host traits read once at attach time and never again.
type Capabilities struct {
	ReducedMotion bool
}

// DetectCapabilities queries the host's accessibility preference.
func DetectCapabilities(h Host) Capabilities {
	return Capabilities{ReducedMotion: h.ReducedMotion()}
}

// Option configures Attach.
type Option func(*attachOptions)

type attachOptions struct {
	rng     *rand.Rand
	log     *slog.Logger
	printer *message.Printer
}

// WithRand sets the random source used to generate stars.
func WithRand(r *rand.Rand) Option {
	return func(o *attachOptions) { o.rng = r }
}

// WithLogger overrides the package logger for this attachment.
func WithLogger(l *slog.Logger) Option {
	return func(o *attachOptions) { o.log = l }
}

// WithPrinter sets the locale printer used to format counters.
func WithPrinter(p *message.Printer) Option {
	return func(o *attachOptions) { o.printer = p }
}

// UIState owns every component attached to one page. Each component
// subscribes to host events on its own; there is no central dispatcher.
type UIState struct {
	host  Host
	caps  Capabilities
	sched Scheduler
	log   *slog.Logger

	watcher   *Watcher
	reveals   []*RevealTarget
	counters  []*Counter
	starfield *Starfield
	parallax  *Parallax
	tilts     []*TiltCard
	scroll    *ScrollProgress
	timeline  *Timeline
}

// Attach wires the whole subsystem to host. Missing hooks disable the
// matching feature; nothing here can fail.
func Attach(host Host, opts ...Option) *UIState {
	o := attachOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = Logger()
	}
	if o.printer == nil {
		o.printer = defaultPrinter()
	}

	ui := &UIState{
		host:  host,
		caps:  DetectCapabilities(host),
		sched: host.Scheduler(),
		log:   o.log,
	}
	ui.watcher = newWatcher(host.Observer(), ui.caps.ReducedMotion)

	ui.initReveal()
	ui.initCounters(o.printer)
	ui.initParallax()
	ui.initTilt()
	ui.initScrollProgress()
	ui.initStarfield(o.rng)
	ui.initTimeline()

	ui.log.Info("sitefx attached",
		"reducedMotion", ui.caps.ReducedMotion,
		"observer", !ui.watcher.Bypassed(),
		"reveals", len(ui.reveals),
		"counters", len(ui.counters),
		"tilts", len(ui.tilts),
		"starfield", ui.starfield != nil,
		"timeline", ui.timeline != nil,
	)
	return ui
}

func (ui *UIState) initReveal() {
	for _, el := range ui.host.QueryAll(SelectorReveal) {
		r := &RevealTarget{el: el}
		ui.reveals = append(ui.reveals, r)
		ui.watcher.Observe(el, r.Reveal, WatchOptions{Threshold: RevealThreshold, Once: true})
	}
}

func (ui *UIState) initCounters(p *message.Printer) {
	for _, el := range ui.host.QueryAll(SelectorCounter) {
		if ui.caps.ReducedMotion {
			raw, _ := el.Attr(AttrCountTo)
			el.SetText(raw)
			continue
		}
		c := newCounter(el, p)
		if c == nil {
			raw, _ := el.Attr(AttrCountTo)
			ui.log.Warn("counter skipped: data-count-to is not a number", "value", raw)
			continue
		}
		ui.counters = append(ui.counters, c)
		c.Start(ui.sched, CounterDuration)
	}
}

func (ui *UIState) initParallax() {
	hero := ui.host.Query(SelectorHero)
	if hero == nil || ui.caps.ReducedMotion {
		ui.log.Debug("parallax disabled", "hero", hero != nil, "reducedMotion", ui.caps.ReducedMotion)
		return
	}
	p := newParallax(hero, ui.host.QueryAll(SelectorBlob))
	p.handle = ui.host.OnPointerMove(p.onMove)
	ui.parallax = p
}

func (ui *UIState) initTilt() {
	if ui.caps.ReducedMotion {
		return
	}
	for _, el := range ui.host.QueryAll(SelectorTilt) {
		c := newTiltCard(el, ui.sched)
		el.On(EventPointerMove, c.onMove)
		el.On(EventPointerLeave, c.onLeave)
		ui.tilts = append(ui.tilts, c)
	}
}

func (ui *UIState) initScrollProgress() {
	bar := ui.host.Query(SelectorScrollBar)
	if bar == nil {
		return
	}
	s := &ScrollProgress{bar: bar, host: ui.host}
	ui.host.OnScroll(func(Event) { s.Update() })
	s.Update()
	ui.scroll = s
}

func (ui *UIState) initStarfield(rng *rand.Rand) {
	el := ui.host.Query(SelectorStarfield)
	if el == nil || ui.caps.ReducedMotion {
		ui.log.Debug("starfield disabled", "canvas", el != nil, "reducedMotion", ui.caps.ReducedMotion)
		return
	}
	canvas, ok := el.(Canvas)
	if !ok {
		ui.log.Debug("starfield disabled: element is not a canvas")
		return
	}
	surface := canvas.Context2D()
	if surface == nil {
		ui.log.Debug("starfield disabled: no 2d context")
		return
	}
	f := newStarfield(canvas, surface, ui.sched, ui.host.DevicePixelRatio(), rng)
	canvas.On(EventResize, func(Event) { f.Resize() })
	f.Resize()
	f.Start()
	ui.host.OnVisibilityChange(f.onVisibility)
	ui.starfield = f
}

func (ui *UIState) initTimeline() {
	wrap := ui.host.Query(SelectorTimelineWrap)
	if wrap == nil {
		return
	}
	t := newTimeline(wrap, ui.sched)
	ui.timeline = t

	switch {
	case t.line == nil || ui.watcher.Bypassed():
		t.settle()
	default:
		ui.watcher.Observe(t.line, t.startSweep, WatchOptions{Threshold: TimelineThreshold, Once: true})
	}

	for _, m := range t.milestones {
		t.bindMilestone(m)
	}
	if t.line != nil && !ui.caps.ReducedMotion {
		t.line.On(EventPointerMove, t.onScrub)
	}
}

// Capabilities returns the flags read at attach time.
func (ui *UIState) Capabilities() Capabilities { return ui.caps }

// Reveals returns every reveal target in document order.
func (ui *UIState) Reveals() []*RevealTarget { return ui.reveals }

// Counters returns the animated counters. Empty under reduced motion.
func (ui *UIState) Counters() []*Counter { return ui.counters }

// Starfield returns the particle field, or nil when disabled.
func (ui *UIState) Starfield() *Starfield { return ui.starfield }

// Parallax returns the hero parallax, or nil when disabled.
func (ui *UIState) Parallax() *Parallax { return ui.parallax }

// Tilts returns the tilt-enabled cards. Empty under reduced motion.
func (ui *UIState) Tilts() []*TiltCard { return ui.tilts }

// ScrollProgress returns the scroll tracker, or nil without a bar.
func (ui *UIState) ScrollProgress() *ScrollProgress { return ui.scroll }

// Timeline returns the roadmap scrubber, or nil without the markup.
func (ui *UIState) Timeline() *Timeline { return ui.timeline }
