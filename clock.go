package folio

import "time"

// Clock reports monotonic time elapsed since it was started.
type Clock interface {
	Elapsed() time.Duration
}

// SystemClock is a Clock backed by the wall clock's monotonic reading.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a SystemClock started now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Elapsed returns the time since the clock was created.
func (c *SystemClock) Elapsed() time.Duration {
	return time.Since(c.start)
}

// VirtualClock is a manually advanced Clock for tests and scripted runs.
type VirtualClock struct {
	now time.Duration
}

// Elapsed returns the accumulated virtual time.
func (c *VirtualClock) Elapsed() time.Duration {
	return c.now
}

// Advance moves the clock forward by d. Negative values are ignored so the
// clock stays monotonic.
func (c *VirtualClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// frameTimer turns successive Clock samples into per-frame deltas.
type frameTimer struct {
	clock   Clock
	last    time.Duration
	started bool
}

// tick samples the clock and returns the elapsed time and the delta since
// the previous tick, both in seconds. The first tick reports a zero delta.
func (ft *frameTimer) tick() (elapsed, dt float64) {
	now := ft.clock.Elapsed()
	if !ft.started {
		ft.started = true
		ft.last = now
		return now.Seconds(), 0
	}
	d := now - ft.last
	ft.last = now
	if d < 0 {
		d = 0
	}
	return now.Seconds(), d.Seconds()
}
