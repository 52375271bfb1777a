package sitefx

import (
	"testing"
	"time"
)

func TestAnimateNonDecreasingEndsAtOne(t *testing.T) {
	for _, d := range []time.Duration{
		50 * time.Millisecond,
		CounterDuration,
		TimelineSweepDuration,
		1234567 * time.Microsecond,
	} {
		t.Run(d.String(), func(t *testing.T) {
			l := NewFrameLoop()
			var samples []float64
			a := Animate(l, d, func(e float64) { samples = append(samples, e) })
			l.RunFor(d+time.Second, 7*time.Millisecond)

			if !a.Done() {
				t.Fatal("animation did not finish")
			}
			if len(samples) < 2 {
				t.Fatalf("only %d samples", len(samples))
			}
			for i := 1; i < len(samples); i++ {
				if samples[i] < samples[i-1] {
					t.Fatalf("sample %d = %v < previous %v", i, samples[i], samples[i-1])
				}
			}
			if samples[0] != 0 {
				t.Errorf("first sample = %v, want 0", samples[0])
			}
			if last := samples[len(samples)-1]; last != 1 {
				t.Errorf("last sample = %v, want exactly 1", last)
			}
			if a.Samples() != len(samples) {
				t.Errorf("Samples() = %d, want %d", a.Samples(), len(samples))
			}
			if l.Pending() != 0 {
				t.Errorf("Pending = %d after finish", l.Pending())
			}
		})
	}
}

func TestAnimateEaseOut(t *testing.T) {
	l := NewFrameLoop()
	var last float64
	Animate(l, time.Second, func(e float64) { last = e })
	l.Tick(0)                      // clock starts
	l.Tick(500 * time.Millisecond) // halfway

	// cubic ease-out at t=0.5 is 1 - 0.5^3 = 0.875
	if last < 0.874 || last > 0.876 {
		t.Errorf("eased(0.5) = %v, want ~0.875", last)
	}
}

func TestAnimateZeroDuration(t *testing.T) {
	l := NewFrameLoop()
	var samples []float64
	a := Animate(l, 0, func(e float64) { samples = append(samples, e) })
	l.Advance(DefaultFrameInterval)

	if len(samples) != 1 || samples[0] != 1 {
		t.Errorf("samples = %v, want [1]", samples)
	}
	if !a.Done() {
		t.Error("zero-duration animation not done")
	}
}

func TestAnimationCancel(t *testing.T) {
	l := NewFrameLoop()
	calls := 0
	a := Animate(l, time.Second, func(float64) { calls++ })
	l.Advance(DefaultFrameInterval)
	l.Advance(DefaultFrameInterval)
	a.Cancel()
	l.RunFor(2*time.Second, DefaultFrameInterval)

	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if !a.Cancelled() || a.Done() {
		t.Errorf("Cancelled=%v Done=%v, want true/false", a.Cancelled(), a.Done())
	}
	if l.Pending() != 0 {
		t.Errorf("Pending = %d", l.Pending())
	}

	var nilAnim *Animation
	nilAnim.Cancel()
}

func TestAnimationCancelFromCallback(t *testing.T) {
	l := NewFrameLoop()
	var a *Animation
	calls := 0
	a = Animate(l, time.Second, func(float64) {
		calls++
		a.Cancel()
	})
	l.RunFor(time.Second, DefaultFrameInterval)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestTrackReplacesAnimation(t *testing.T) {
	l := NewFrameLoop()
	var tr Track
	firstCalls, secondCalls := 0, 0

	first := tr.Start(l, time.Second, func(float64) { firstCalls++ })
	l.Advance(DefaultFrameInterval)
	second := tr.Start(l, time.Second, func(float64) { secondCalls++ })
	l.Advance(DefaultFrameInterval)

	if !first.Cancelled() {
		t.Error("first animation not cancelled by Start")
	}
	if firstCalls != 1 {
		t.Errorf("first calls = %d, want 1", firstCalls)
	}
	if secondCalls != 1 {
		t.Errorf("second calls = %d, want 1", secondCalls)
	}
	if tr.Current() != second || !tr.Active() {
		t.Error("track does not hold the second animation")
	}
	if l.Pending() != 1 {
		t.Errorf("Pending = %d, want exactly one live chain", l.Pending())
	}

	l.RunFor(2*time.Second, DefaultFrameInterval)
	if tr.Active() {
		t.Error("track still active after finish")
	}
}
