package sitefx

import (
	"context"
	"log/slog"
)

// FrameStats holds cumulative frame-loop counters.
type FrameStats struct {
	Ticks     int
	Requested int
	Ran       int
	Cancelled int
}

// debugLog reports the tick that just finished along with running totals.
func (l *FrameLoop) debugLog(ran int) {
	log := Logger()
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	log.Debug("frame",
		"now", l.now,
		"ran", ran,
		"pending", len(l.live),
		"ticks", l.stats.Ticks,
		"requested", l.stats.Requested,
		"cancelled", l.stats.Cancelled,
	)
}
