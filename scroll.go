package sitefx

// ScrollPercent returns how far the document is scrolled, in [0, 100] for
// any in-range scroll position and 0 when the page does not scroll.
func ScrollPercent(m ScrollMetrics) float64 {
	height := m.ScrollHeight - m.ClientHeight
	if height <= 0 {
		return 0
	}
	return m.ScrollTop / height * 100
}

// ScrollProgress mirrors the document scroll position onto a bar's width.
type ScrollProgress struct {
	bar  Element
	host Host
	pct  float64
}

// Update recomputes the percentage and writes it to the bar.
func (s *ScrollProgress) Update() {
	s.pct = ScrollPercent(s.host.ScrollMetrics())
	s.bar.SetStyle(StyleWidth, cssNumber(s.pct)+"%")
}

// Percent returns the last rendered percentage.
func (s *ScrollProgress) Percent() float64 { return s.pct }
