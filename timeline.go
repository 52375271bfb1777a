package sitefx

// TimelineState is the lifecycle of the roadmap intro sweep.
type TimelineState uint8

const (
	TimelineIdle     TimelineState = iota // waiting for the track to scroll into view
	TimelineSweeping                      // eased 0→100 intro in progress
	TimelineSettled                       // sweep finished or skipped; terminal
)

func (s TimelineState) String() string {
	switch s {
	case TimelineIdle:
		return "idle"
	case TimelineSweeping:
		return "sweeping"
	case TimelineSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Milestone is a roadmap marker that snaps the progress fill to its
// percentage on hover, focus or keyboard activation.
type Milestone struct {
	el     Element
	pct    float64
	active bool
}

// Pct returns the milestone's stored percentage.
func (m *Milestone) Pct() float64 { return m.pct }

// Active reports whether the milestone is hovered or focused.
func (m *Milestone) Active() bool { return m.active }

// Element returns the milestone element.
func (m *Milestone) Element() Element { return m.el }

func (m *Milestone) setActive(on bool) {
	m.active = on
	m.el.SetClass(ClassActive, on)
}

// parsePct reads data-pct the way Number(x) || 0 does: anything non-numeric
// is 0.
func parsePct(el Element) float64 {
	raw, _ := el.Attr(AttrPct)
	v, ok := parseCountTo(raw)
	if !ok {
		return 0
	}
	return v
}

// Timeline drives the roadmap progress fill. The current percentage has a
// single slot shared by the sweep, milestone snaps and pointer scrubbing;
// the last write wins.
type Timeline struct {
	wrap       Element
	line       Element
	fill       Element
	milestones []*Milestone
	sched      Scheduler

	state TimelineState
	pct   float64
	sweep Track
}

func newTimeline(wrap Element, s Scheduler) *Timeline {
	t := &Timeline{
		wrap:  wrap,
		line:  wrap.Query(SelectorTimelineLine),
		fill:  wrap.Query(SelectorTimelineFill),
		sched: s,
	}
	for _, el := range wrap.QueryAll(SelectorMilestone) {
		t.milestones = append(t.milestones, &Milestone{el: el, pct: parsePct(el)})
	}
	return t
}

// SetProgress clamps pct to [0, 100], stores it and updates the fill width.
func (t *Timeline) SetProgress(pct float64) {
	t.pct = clamp(pct, 0, 100)
	if t.fill != nil {
		t.fill.SetStyle(StyleWidth, cssNumber(t.pct)+"%")
	}
}

// startSweep runs the one-shot intro. Only the first call from Idle has any
// effect.
func (t *Timeline) startSweep() {
	if t.state != TimelineIdle {
		return
	}
	t.state = TimelineSweeping
	t.sweep.Start(t.sched, TimelineSweepDuration, func(eased float64) {
		t.SetProgress(100 * eased)
		if eased >= 1 {
			t.state = TimelineSettled
		}
	})
}

func (t *Timeline) settle() {
	t.sweep.Cancel()
	t.state = TimelineSettled
}

func (t *Timeline) bindMilestone(m *Milestone) {
	activate := func(Event) {
		t.SetProgress(m.pct)
		m.setActive(true)
	}
	deactivate := func(Event) {
		m.setActive(false)
	}
	m.el.On(EventPointerEnter, activate)
	m.el.On(EventPointerLeave, deactivate)
	m.el.On(EventFocus, activate)
	m.el.On(EventBlur, deactivate)
	m.el.On(EventKeyDown, func(ev Event) {
		if isActivationKey(ev.Key) {
			t.SetProgress(m.pct)
		}
	})
}

func (t *Timeline) onScrub(ev Event) {
	r := t.line.Bounds()
	if r.Width <= 0 {
		return
	}
	t.SetProgress((ev.X - r.X) / r.Width * 100)
}

func isActivationKey(key string) bool {
	return key == "Enter" || key == " "
}

// State returns the sweep lifecycle state.
func (t *Timeline) State() TimelineState { return t.state }

// Progress returns the current clamped percentage.
func (t *Timeline) Progress() float64 { return t.pct }

// Milestones returns the roadmap markers in document order.
func (t *Timeline) Milestones() []*Milestone { return t.milestones }

// Line returns the timeline track element, or nil.
func (t *Timeline) Line() Element { return t.line }
