package sitefx

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Counter animates an element's text from 0 up to its data-count-to value.
type Counter struct {
	el     Element
	target float64
	value  float64
	track  Track
	p      *message.Printer
}

// parseCountTo mirrors JavaScript Number() for the attribute: surrounding
// whitespace is ignored and an empty string is zero.
func parseCountTo(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// newCounter returns nil when the attribute is missing or not numeric.
func newCounter(el Element, p *message.Printer) *Counter {
	raw, ok := el.Attr(AttrCountTo)
	if !ok {
		return nil
	}
	target, ok := parseCountTo(raw)
	if !ok {
		return nil
	}
	return &Counter{el: el, target: target, p: p}
}

// Start animates from 0 to the target over d. Restarting cancels the run in
// progress.
func (c *Counter) Start(s Scheduler, d time.Duration) *Animation {
	return c.track.Start(s, d, c.render)
}

func (c *Counter) render(eased float64) {
	c.value = math.Floor(c.target * eased)
	c.el.SetText(c.p.Sprintf("%.0f", c.value))
}

// Value returns the last rendered whole number.
func (c *Counter) Value() float64 { return c.value }

// Target returns the parsed data-count-to value.
func (c *Counter) Target() float64 { return c.target }

// Element returns the counter's element.
func (c *Counter) Element() Element { return c.el }

func defaultPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}
