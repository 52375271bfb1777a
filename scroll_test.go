package sitefx

import "testing"

func TestScrollPercent(t *testing.T) {
	tests := []struct {
		name string
		m    ScrollMetrics
		want float64
	}{
		{"halfway", ScrollMetrics{ScrollTop: 600, ScrollHeight: 2000, ClientHeight: 800}, 50},
		{"top", ScrollMetrics{ScrollTop: 0, ScrollHeight: 2000, ClientHeight: 800}, 0},
		{"bottom", ScrollMetrics{ScrollTop: 1200, ScrollHeight: 2000, ClientHeight: 800}, 100},
		{"no scroll", ScrollMetrics{ScrollTop: 0, ScrollHeight: 800, ClientHeight: 800}, 0},
		{"short page", ScrollMetrics{ScrollTop: 0, ScrollHeight: 500, ClientHeight: 800}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScrollPercent(tt.m); got != tt.want {
				t.Errorf("ScrollPercent(%+v) = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}

func TestScrollProgressBar(t *testing.T) {
	tp := newTestPage(t, landingMarkup, PageConfig{ContentHeight: 2000}, true)
	bar := tp.Element(SelectorScrollBar)

	if got := bar.Style(StyleWidth); got != "0%" {
		t.Errorf("initial width = %q, want 0%%", got)
	}
	tp.InjectScroll(600)
	if got := bar.Style(StyleWidth); got != "50%" {
		t.Errorf("width = %q, want 50%%", got)
	}
	tp.InjectScroll(5000)
	if got := bar.Style(StyleWidth); got != "100%" {
		t.Errorf("width past the end = %q, want 100%%", got)
	}
}

func TestScrollProgressIgnoresReducedMotion(t *testing.T) {
	tp := newTestPage(t, landingMarkup, PageConfig{ContentHeight: 2000, ReducedMotion: true}, true)
	tp.InjectScroll(300)
	if got := tp.ui.ScrollProgress().Percent(); got != 25 {
		t.Errorf("percent = %v, want 25", got)
	}
}
