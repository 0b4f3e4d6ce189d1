package components

// Timer is a count-up timer measured in seconds. Timers are advanced
// exactly once per tick by the timer pass; systems only read them.
type Timer struct {
	Elapsed  float64
	Duration float64
}

// NewTimer returns a timer that finishes after d seconds.
func NewTimer(d float64) Timer {
	return Timer{Duration: d}
}

// Tick advances the timer by dt seconds.
func (t *Timer) Tick(dt float64) {
	t.Elapsed += dt
}

// Finished reports whether the timer has reached its duration.
func (t *Timer) Finished() bool {
	return t.Elapsed >= t.Duration
}

// Remaining returns the seconds left, floored at zero.
func (t *Timer) Remaining() float64 {
	r := t.Duration - t.Elapsed
	if r < 0 {
		return 0
	}
	return r
}

// Reset restarts the timer with a new duration.
func (t *Timer) Reset(d float64) {
	t.Elapsed = 0
	t.Duration = d
}
