package cpu

import (
	"math/rand/v2"
	"time"

	"github.com/retroenv/chip8vm/internal/display"
)

// Options contains the configuration of the processor.
type Options struct {
	// Display is an external display sink. If nil, the framebuffer is kept
	// inline in the display region of the address space.
	Display display.Sink

	// Trace enables the per instruction debug log.
	Trace bool

	Quirks Quirks

	// Now is the clock the timers decay with.
	Now func() time.Time
	// Random returns the random bytes of the RND instruction.
	Random func() byte
}

// Quirks select behavior that differs between interpreter generations.
type Quirks struct {
	// ShiftUsesVx shifts Vx in place instead of shifting Vy into Vx.
	ShiftUsesVx bool
	// KeepIndex leaves I unchanged by the register block transfers.
	KeepIndex bool
}

// DefaultOptions returns the default options with an inline display,
// the system clock and a uniform random source.
func DefaultOptions() Options {
	return Options{
		Now:    time.Now,
		Random: randomByte,
	}
}

func randomByte() byte {
	return byte(rand.UintN(256))
}
