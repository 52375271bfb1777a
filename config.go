package sitefx

import "time"

// Fixed tuning constants. None of these are read from the environment.
const (
	RevealThreshold       = 0.12
	TimelineThreshold     = 0.3
	CounterDuration       = 1200 * time.Millisecond
	TimelineSweepDuration = 1500 * time.Millisecond

	MaxPixelRatio = 2.0
	MinStars      = 80
	MaxStars      = 180
	StarDensity   = 12000.0 // square CSS pixels per star
	DriftSpeed    = 0.04    // pixels per frame per unit of depth
	StarWrapPad   = 2.0

	ParallaxDepthStep = 8.0
	TiltRotateXScale  = 8.0  // degrees
	TiltRotateYScale  = 12.0 // degrees
	TiltPerspective   = 700  // pixels
)

// Markup hooks.
const (
	SelectorReveal       = ".reveal"
	SelectorCounter      = ".counter[data-count-to]"
	SelectorStarfield    = "#starfield"
	SelectorHero         = ".hero"
	SelectorBlob         = ".blob"
	SelectorTilt         = "[data-tilt]"
	SelectorScrollBar    = ".scroll-progress .bar"
	SelectorTimelineWrap = "#roadmap .timeline-wrap"
	SelectorTimelineLine = ".timeline"
	SelectorTimelineFill = ".timeline .progress"
	SelectorMilestone    = ".milestone"
	ClassRevealVisible   = "reveal-visible"
	ClassActive          = "active"
	AttrCountTo          = "data-count-to"
	AttrPct              = "data-pct"
	StyleTransform       = "transform"
	StyleWidth           = "width"
)

// Star property ranges.
var (
	StarDepthRange  = Range{Min: 0.5, Max: 2.0}
	StarRadiusRange = Range{Min: 0.6, Max: 1.8}
	StarAlphaRange  = Range{Min: 0.25, Max: 0.8}
)
