// Package cursor implements address registers that are confined to a memory range.
package cursor

import (
	"errors"
	"fmt"

	"github.com/retroenv/chip8vm/internal/memory"
)

// StepSize is the default step width, matching the instruction width.
const StepSize = 2

// ErrOutOfRange is returned when a cursor would leave its owning range.
var ErrOutOfRange = errors.New("address out of range")

// Cursor is an address that can only take values inside its range.
// An invalid move leaves the cursor unchanged and returns ErrOutOfRange,
// values are never wrapped or clamped.
type Cursor struct {
	name    string
	current uint16
	rng     memory.Range
	step    uint16
}

// New returns a cursor positioned at the start of the range.
func New(name string, rng memory.Range) *Cursor {
	return &Cursor{
		name:    name,
		current: rng.Start,
		rng:     rng,
		step:    StepSize,
	}
}

// Name returns the register name of the cursor.
func (c *Cursor) Name() string {
	return c.name
}

// Current returns the address the cursor points to.
func (c *Cursor) Current() uint16 {
	return c.current
}

// Range returns the owning range.
func (c *Cursor) Range() memory.Range {
	return c.rng
}

// Advance moves the cursor one step forward.
func (c *Cursor) Advance() error {
	return c.Set(uint16(int(c.current) + int(c.step)))
}

// Retreat moves the cursor one step backward.
func (c *Cursor) Retreat() error {
	if c.current < c.step {
		return c.rangeError(int(c.current) - int(c.step))
	}
	return c.Set(c.current - c.step)
}

// Set moves the cursor to an absolute address.
func (c *Cursor) Set(addr uint16) error {
	if !c.rng.Contains(addr) {
		return c.rangeError(int(addr))
	}
	c.current = addr
	return nil
}

// Check returns an error if n bytes starting at the cursor position do not
// fit into the owning range.
func (c *Cursor) Check(n int) error {
	if n <= 0 {
		return nil
	}
	last := int(c.current) + n - 1
	if last >= int(c.rng.End) {
		return c.rangeError(last)
	}
	return nil
}

func (c *Cursor) rangeError(addr int) error {
	return fmt.Errorf("%w: %s $%03X not in %s", ErrOutOfRange, c.name, addr, c.rng)
}

// String returns the cursor state for diagnostics.
func (c *Cursor) String() string {
	return fmt.Sprintf("%s=$%03X %s", c.name, c.current, c.rng)
}
