// Package display implements the 64x32 monochrome display surface.
package display

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Display dimensions.
const (
	Width    = 64
	Height   = 32
	RowBytes = Width / 8
	Size     = RowBytes * Height // bytes of a bit-packed framebuffer
)

// ErrInvalidBuffer is returned when a framebuffer view has the wrong size.
var ErrInvalidBuffer = errors.New("invalid framebuffer size")

// Sink is a monochrome bitmap surface. Coordinates are in range, callers
// are responsible for wrapping.
type Sink interface {
	// Pixel returns whether the pixel is set.
	Pixel(x, y int) bool
	// Flip toggles the pixel and returns true if it was turned off.
	Flip(x, y int) bool
	// Clear turns all pixels off.
	Clear()
}

// ByteSink is implemented by sinks that can XOR 8 horizontally adjacent,
// byte aligned pixels at once.
type ByteSink interface {
	Sink
	// XorByte composites b onto byte column col of row and returns true
	// if any pixel was turned off.
	XorByte(col, row int, b byte) bool
}

// Framebuffer is a bit-packed row-major framebuffer, the most significant
// bit of each byte is the leftmost pixel.
type Framebuffer struct {
	buf []byte
}

var _ ByteSink = (*Framebuffer)(nil)

// New returns a cleared framebuffer with its own backing storage.
func New() *Framebuffer {
	return &Framebuffer{buf: make([]byte, Size)}
}

// NewView returns a framebuffer over the given bytes, writes to the
// framebuffer are visible in buf.
func NewView(buf []byte) (*Framebuffer, error) {
	if len(buf) != Size {
		return nil, fmt.Errorf("%w: %d bytes, expected %d", ErrInvalidBuffer, len(buf), Size)
	}
	return &Framebuffer{buf: buf}, nil
}

// Pixel returns whether the pixel is set.
func (f *Framebuffer) Pixel(x, y int) bool {
	return f.buf[y*RowBytes+x/8]&(0x80>>(x%8)) != 0
}

// Flip toggles the pixel and returns true if it was turned off.
func (f *Framebuffer) Flip(x, y int) bool {
	return f.XorByte(x/8, y, 0x80>>(x%8))
}

// XorByte composites b onto byte column col of row and returns true if any
// pixel was turned off.
func (f *Framebuffer) XorByte(col, row int, b byte) bool {
	idx := row*RowBytes + col
	old := f.buf[idx]
	f.buf[idx] = old ^ b
	return old&b != 0
}

// Clear turns all pixels off.
func (f *Framebuffer) Clear() {
	clear(f.buf)
}

// Bytes returns the live bit-packed framebuffer.
func (f *Framebuffer) Bytes() []byte {
	return f.buf
}

// BlitByte XORs the 8 pixels of b onto the sink starting at pixel column x
// of row y. Pixels past the right edge wrap to the start of the row.
// It returns true if any pixel was turned off.
func BlitByte(sink Sink, x, y int, b byte) bool {
	x %= Width
	y %= Height

	if bs, ok := sink.(ByteSink); ok {
		col := x / 8
		shift := x % 8
		collision := bs.XorByte(col, y, b>>shift)
		if shift != 0 {
			if bs.XorByte((col+1)%RowBytes, y, b<<(8-shift)) {
				collision = true
			}
		}
		return collision
	}

	var collision bool
	for bit := range 8 {
		if b&(0x80>>bit) == 0 {
			continue
		}
		if sink.Flip((x+bit)%Width, y) {
			collision = true
		}
	}
	return collision
}

// Snapshot returns the pixels of the sink in row-major order.
func Snapshot(sink Sink) []bool {
	pixels := make([]bool, Width*Height)
	for y := range Height {
		for x := range Width {
			pixels[y*Width+x] = sink.Pixel(x, y)
		}
	}
	return pixels
}

// Render writes the sink as text, one line per row.
func Render(w io.Writer, sink Sink) error {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)
	for y := range Height {
		for x := range Width {
			if sink.Pixel(x, y) {
				sb.WriteRune('█')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}
