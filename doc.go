// Package sitefx is the client-side motion layer of a marketing landing page:
// scroll-reveal, animated counters, an ambient starfield canvas, pointer
// parallax and card tilt, a scroll progress bar and a scroll-triggered
// roadmap timeline.
//
// sitefx never touches a browser directly. It talks to a [Host], which
// supplies element queries, scroll metrics, the reduced-motion preference,
// the device pixel ratio, a frame [Scheduler] and (optionally) an
// [IntersectionObserver]. [Page] is an in-memory host built from HTML markup
// that the CLI, the live Ebitengine example and the tests all drive.
//
// # Quick start
//
//	page, err := sitefx.ParsePage(markup, sitefx.PageConfig{})
//	if err != nil {
//		return err
//	}
//	ui := sitefx.Attach(page)
//	page.InjectScroll(600)
//	page.Loop().Advance(2 * time.Second)
//	fmt.Println(ui.ScrollProgress().Percent())
//
// # Reduced motion
//
// When the host reports a reduced-motion preference, every effect degrades to
// its static end state: reveal targets show immediately, counters print their
// raw target, the starfield never starts, pointer effects attach no listeners
// and the timeline settles at zero.
//
// # Frames
//
// All animation runs on the host's [Scheduler]. [FrameLoop] is a manual
// scheduler: callbacks requested during a tick run on the next one, and
// [FrameLoop.Advance] steps virtual time in fixed frames. Easing goes through
// [gween] with an ease-out cubic curve.
//
// # Scenarios
//
// [LoadScenario] reads a scripted visit (YAML or JSON) of scrolls, pointer
// moves, focus changes, key presses, tab visibility flips and waits, and
// [Scenario.Run] plays it against a page.
//
// [gween]: https://github.com/tanema/gween
package sitefx
