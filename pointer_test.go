package sitefx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParallaxOffset(t *testing.T) {
	tests := []struct {
		dx, dy float64
		i      int
		want   Vec2
	}{
		{0.5, -0.5, 0, Vec2{4, -4}},
		{0.5, -0.5, 2, Vec2{12, -12}},
		{0, 0, 5, Vec2{0, 0}},
		{-0.25, 0.25, 1, Vec2{-4, 4}},
	}
	for _, tt := range tests {
		if got := ParallaxOffset(tt.dx, tt.dy, tt.i); got != tt.want {
			t.Errorf("ParallaxOffset(%v, %v, %d) = %v, want %v", tt.dx, tt.dy, tt.i, got, tt.want)
		}
	}
}

func TestTiltAngles(t *testing.T) {
	tests := []struct {
		x, y   float64
		rx, ry float64
	}{
		{0.5, 0.5, 0, 0},
		{0, 0, 4, -6},
		{1, 1, -4, 6},
		{1, 0, 4, 6},
	}
	for _, tt := range tests {
		rx, ry := TiltAngles(tt.x, tt.y)
		if rx != tt.rx || ry != tt.ry {
			t.Errorf("TiltAngles(%v, %v) = %v, %v; want %v, %v", tt.x, tt.y, rx, ry, tt.rx, tt.ry)
		}
	}
}

func TestParallaxMove(t *testing.T) {
	tp := newTestPage(t, landingMarkup, PageConfig{}, true)

	// Hero is 1280x600; its right-bottom corner is (+0.5, +0.5).
	tp.InjectPointerMove(1280, 600)

	want := []Vec2{{4, 4}, {8, 8}, {12, 12}}
	if diff := cmp.Diff(want, tp.ui.Parallax().Offsets()); diff != "" {
		t.Errorf("offsets mismatch (-want +got):\n%s", diff)
	}
	var got []string
	for _, el := range tp.QueryAll(SelectorBlob) {
		got = append(got, el.Style(StyleTransform))
	}
	wantCSS := []string{"translate(4px, 4px)", "translate(8px, 8px)", "translate(12px, 12px)"}
	if diff := cmp.Diff(wantCSS, got); diff != "" {
		t.Errorf("transforms mismatch (-want +got):\n%s", diff)
	}
}

func TestTiltCoalescesWrites(t *testing.T) {
	tp := newTestPage(t, landingMarkup, PageConfig{}, true)
	tp.InjectScroll(1000) // cards at client y 400..600
	card := tp.ui.Tilts()[0]

	tp.InjectPointerMove(110, 410)
	tp.InjectPointerMove(200, 450)
	tp.InjectPointerMove(250, 500) // card center
	if card.Writes() != 0 || !card.Pending() {
		t.Fatalf("writes=%d pending=%v before frame", card.Writes(), card.Pending())
	}

	tp.runFrames(1)
	if card.Writes() != 1 {
		t.Errorf("writes = %d, want 1 for three moves in one frame", card.Writes())
	}
	want := "perspective(700px) rotateX(0deg) rotateY(0deg) translateZ(0)"
	if got := card.Element().Style(StyleTransform); got != want {
		t.Errorf("transform = %q, want %q", got, want)
	}
}

func TestTiltLeaveResets(t *testing.T) {
	tp := newTestPage(t, landingMarkup, PageConfig{}, true)
	tp.InjectScroll(1000)
	card := tp.ui.Tilts()[0]

	tp.InjectPointerMove(100, 400) // top-left corner
	tp.runFrames(1)
	want := "perspective(700px) rotateX(4deg) rotateY(-6deg) translateZ(0)"
	if got := card.Transform(); got != want {
		t.Fatalf("transform = %q, want %q", got, want)
	}

	tp.InjectPointerMove(150, 450)
	tp.InjectPointerMove(450, 450) // gap between cards: leave
	if card.Pending() {
		t.Error("pending write survived leave")
	}
	if got := card.Element().Style(StyleTransform); got != "" {
		t.Errorf("transform after leave = %q, want empty", got)
	}
	tp.runFrames(2)
	if got := card.Transform(); got != "" {
		t.Errorf("stale write applied after leave: %q", got)
	}
}

func TestPointerReducedMotionAttachesNothing(t *testing.T) {
	tp := newTestPage(t, landingMarkup, PageConfig{ReducedMotion: true}, true)

	if n := tp.window.count(EventPointerMove); n != 0 {
		t.Errorf("window pointer listeners = %d, want 0", n)
	}
	for _, el := range tp.Elements() {
		for _, ev := range []EventType{EventPointerMove, EventPointerLeave} {
			if el.handlers.count(ev) != 0 && !el.HasClass("milestone") {
				t.Errorf("%v has %v listeners under reduced motion", el, ev)
			}
		}
	}

	tp.InjectPointerMove(640, 300)
	tp.InjectScroll(1000)
	tp.InjectPointerMove(250, 500)
	tp.runFrames(2)
	for _, el := range tp.Elements() {
		if el.Style(StyleTransform) != "" {
			t.Errorf("%v got a transform under reduced motion", el)
		}
	}
	if tp.ui.Parallax() != nil || len(tp.ui.Tilts()) != 0 {
		t.Error("pointer effects created under reduced motion")
	}
}
