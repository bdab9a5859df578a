// Package timer implements the 60 Hz countdown timers of the machine.
package timer

import "time"

// Frequency is the decay rate of the timers in Hz.
const Frequency = 60

// Timer is a countdown counter that decays with wall-clock time,
// independent of how often Tick is called.
type Timer struct {
	frequency int
	now       func() time.Time

	value   byte      // value as last set
	current byte      // decayed value as of the last tick
	setAt   time.Time // instant of the last Set
}

// New returns a timer decaying at the given frequency. A nil clock uses time.Now.
func New(frequency int, now func() time.Time) *Timer {
	if now == nil {
		now = time.Now
	}
	if frequency <= 0 {
		frequency = Frequency
	}
	return &Timer{
		frequency: frequency,
		now:       now,
		setAt:     now(),
	}
}

// Set resets the value and the instant of the last write.
func (t *Timer) Set(value byte) {
	t.value = value
	t.current = value
	t.setAt = t.now()
}

// Tick updates the current value from the whole number of intervals that
// have elapsed since the last Set.
func (t *Timer) Tick() {
	if t.current == 0 {
		return
	}

	elapsed := t.now().Sub(t.setAt)
	if elapsed <= 0 {
		return
	}
	intervals := int64(elapsed) * int64(t.frequency) / int64(time.Second)
	if intervals >= int64(t.value) {
		t.current = 0
		return
	}
	t.current = t.value - byte(intervals)
}

// Current returns the value as of the last tick.
func (t *Timer) Current() byte {
	return t.current
}

// Active returns whether the timer has not yet reached zero.
func (t *Timer) Active() bool {
	return t.current > 0
}
