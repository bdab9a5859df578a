package timer

import (
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestTimer_DecaysToZeroAfterOneSecond(t *testing.T) {
	clock := newFakeClock()
	tm := New(Frequency, clock.Now)

	tm.Set(60)
	assert.True(t, tm.Active())

	clock.Advance(time.Second)
	tm.Tick()

	assert.Equal(t, byte(0), tm.Current())
	assert.False(t, tm.Active())
}

func TestTimer_Tick(t *testing.T) {
	tests := []struct {
		name    string
		value   byte
		elapsed time.Duration
		want    byte
	}{
		{"no time elapsed", 10, 0, 10},
		{"less than one interval", 10, 16 * time.Millisecond, 10},
		{"one interval", 10, 17 * time.Millisecond, 9},
		{"half a second", 60, 500 * time.Millisecond, 30},
		{"saturates at zero", 5, time.Second, 0},
		{"long elapsed time", 255, time.Hour, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newFakeClock()
			tm := New(Frequency, clock.Now)
			tm.Set(tt.value)

			clock.Advance(tt.elapsed)
			tm.Tick()
			assert.Equal(t, tt.want, tm.Current())
		})
	}
}

func TestTimer_TickIndependentOfCallCount(t *testing.T) {
	clock := newFakeClock()
	tm := New(Frequency, clock.Now)
	tm.Set(60)

	for range 100 {
		clock.Advance(5 * time.Millisecond)
		tm.Tick()
	}
	assert.Equal(t, byte(30), tm.Current())
}

func TestTimer_SetResetsInstant(t *testing.T) {
	clock := newFakeClock()
	tm := New(Frequency, clock.Now)

	tm.Set(10)
	clock.Advance(time.Second)
	tm.Set(20)
	tm.Tick()
	assert.Equal(t, byte(20), tm.Current())

	clock.Advance(170 * time.Millisecond)
	tm.Tick()
	assert.Equal(t, byte(10), tm.Current())
}

func TestTimer_ZeroIsInactive(t *testing.T) {
	tm := New(Frequency, nil)
	assert.False(t, tm.Active())
	tm.Tick()
	assert.Equal(t, byte(0), tm.Current())
}
