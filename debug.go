package starburst

import "time"

// debugStats accumulates per-tick metrics between debug log lines.
// Only populated when Sky.debug is true.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	culled     int
	frames     int
}

// debugLog writes the accumulated stats once every debugLogEvery ticks.
func (s *Sky) debugLog() {
	if !s.debug || s.ticks%debugLogEvery != 0 {
		return
	}
	st := s.stats
	s.log.Debug().
		Uint64("tick", s.ticks).
		Int("circles", len(s.circles)).
		Int("shards", len(s.shards)).
		Int("culled", st.culled).
		Int("frames", st.frames).
		Dur("update", st.updateTime/debugLogEvery).
		Dur("draw", avgDuration(st.drawTime, st.frames)).
		Int("tasks", s.scheduler.Len()).
		Msg("sky stats")
	s.stats = debugStats{}
}

// recordDraw adds one frame's draw time. Drivers call it around Sky.Draw.
func (s *Sky) recordDraw(d time.Duration) {
	if !s.debug {
		return
	}
	s.stats.drawTime += d
	s.stats.frames++
}

func avgDuration(total time.Duration, n int) time.Duration {
	if n == 0 {
		return 0
	}
	return total / time.Duration(n)
}
