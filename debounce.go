package folio

import "time"

// DefaultWheelQuiet is the quiet period after the last wheel event before a
// section step is committed.
const DefaultWheelQuiet = 50 * time.Millisecond

// debounceState is the wheel debouncer's state.
type debounceState uint8

const (
	debounceIdle      debounceState = iota // no wheel gesture in flight
	debouncePending                        // waiting for the quiet period to elapse
	debounceCommitted                      // a step was emitted; next event restarts
)

func (s debounceState) String() string {
	switch s {
	case debounceIdle:
		return "idle"
	case debouncePending:
		return "pending"
	case debounceCommitted:
		return "committed"
	default:
		return "unknown"
	}
}

// WheelDebouncer coalesces a burst of wheel events into a single section
// step. Each event restarts the deadline and overwrites the direction; once
// the clock passes the deadline, Poll reports the direction of the last
// event exactly once. Time comes from the injected Clock so the behavior is
// testable without real timers.
type WheelDebouncer struct {
	clock    Clock
	quiet    time.Duration
	state    debounceState
	deadline time.Duration
	dir      int
}

// NewWheelDebouncer creates a debouncer. A non-positive quiet period uses
// DefaultWheelQuiet.
func NewWheelDebouncer(clock Clock, quiet time.Duration) *WheelDebouncer {
	if quiet <= 0 {
		quiet = DefaultWheelQuiet
	}
	return &WheelDebouncer{clock: clock, quiet: quiet}
}

// Wheel records a wheel event. Only the sign of deltaY matters: positive
// scrolls down the page (next section), anything else scrolls up, matching
// browser wheel semantics.
func (d *WheelDebouncer) Wheel(deltaY float64) {
	if deltaY > 0 {
		d.dir = 1
	} else {
		d.dir = -1
	}
	d.deadline = d.clock.Elapsed() + d.quiet
	d.state = debouncePending
}

// Poll returns the committed step (+1 or -1) once the quiet period has
// elapsed since the last event, and 0 otherwise.
func (d *WheelDebouncer) Poll() int {
	if d.state != debouncePending {
		return 0
	}
	if d.clock.Elapsed() < d.deadline {
		return 0
	}
	d.state = debounceCommitted
	return d.dir
}

// Pending reports whether a step is waiting for its quiet period.
func (d *WheelDebouncer) Pending() bool {
	return d.state == debouncePending
}

// Reset drops any pending step.
func (d *WheelDebouncer) Reset() {
	d.state = debounceIdle
	d.dir = 0
}

// SetQuiet changes the quiet period for subsequent events. A non-positive
// value restores DefaultWheelQuiet.
func (d *WheelDebouncer) SetQuiet(quiet time.Duration) {
	if quiet <= 0 {
		quiet = DefaultWheelQuiet
	}
	d.quiet = quiet
}
