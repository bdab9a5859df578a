package display

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// pixelSink is a sink without the byte path.
type pixelSink struct {
	pixels [Width * Height]bool
}

func (s *pixelSink) Pixel(x, y int) bool {
	return s.pixels[y*Width+x]
}

func (s *pixelSink) Flip(x, y int) bool {
	idx := y*Width + x
	old := s.pixels[idx]
	s.pixels[idx] = !old
	return old
}

func (s *pixelSink) Clear() {
	s.pixels = [Width * Height]bool{}
}

func TestNewView(t *testing.T) {
	buf := make([]byte, Size)
	fb, err := NewView(buf)
	assert.NoError(t, err)

	fb.Flip(0, 0)
	assert.Equal(t, byte(0x80), buf[0])

	_, err = NewView(make([]byte, Size-1))
	assert.True(t, errors.Is(err, ErrInvalidBuffer))
}

func TestFramebuffer_Flip(t *testing.T) {
	fb := New()

	assert.False(t, fb.Flip(9, 1))
	assert.True(t, fb.Pixel(9, 1))
	assert.Equal(t, byte(0x40), fb.Bytes()[RowBytes+1])

	assert.True(t, fb.Flip(9, 1))
	assert.False(t, fb.Pixel(9, 1))
}

func TestFramebuffer_Clear(t *testing.T) {
	fb := New()
	fb.Flip(63, 31)
	fb.Clear()
	assert.False(t, fb.Pixel(63, 31))
}

func testSinks() map[string]func() Sink {
	return map[string]func() Sink{
		"framebuffer": func() Sink { return New() },
		"pixel sink":  func() Sink { return &pixelSink{} },
	}
}

func TestBlitByte_WrapsHorizontally(t *testing.T) {
	for name, newSink := range testSinks() {
		t.Run(name, func(t *testing.T) {
			sink := newSink()

			collision := BlitByte(sink, 60, 3, 0b11110000)
			assert.False(t, collision)

			for x := range Width {
				want := x >= 60
				assert.Equal(t, want, sink.Pixel(x, 3))
			}

			collision = BlitByte(sink, 60, 3, 0b11110000)
			assert.True(t, collision)
			for _, on := range Snapshot(sink) {
				assert.False(t, on)
			}
		})
	}
}

func TestBlitByte_Straddle(t *testing.T) {
	for name, newSink := range testSinks() {
		t.Run(name, func(t *testing.T) {
			sink := newSink()

			BlitByte(sink, 62, 0, 0xFF)
			for x := range Width {
				want := x >= 62 || x < 6
				assert.Equal(t, want, sink.Pixel(x, 0))
			}
		})
	}
}

func TestBlitByte_WrapsVertically(t *testing.T) {
	sink := New()
	BlitByte(sink, 0, Height+2, 0x80)
	assert.True(t, sink.Pixel(0, 2))
}

func TestBlitByte_CollisionOnlyOnTurnOff(t *testing.T) {
	sink := New()
	BlitByte(sink, 0, 0, 0b10100000)
	assert.False(t, BlitByte(sink, 0, 0, 0b01010000))
	assert.True(t, BlitByte(sink, 0, 0, 0b00010000))
}

func TestSnapshot_RowMajor(t *testing.T) {
	sink := New()
	sink.Flip(5, 2)

	pixels := Snapshot(sink)
	assert.Len(t, pixels, Width*Height)
	assert.True(t, pixels[2*Width+5])
	assert.False(t, pixels[5*Width+2])
}

func TestRender(t *testing.T) {
	sink := New()
	sink.Flip(0, 0)
	sink.Flip(63, 31)

	var buf bytes.Buffer
	assert.NoError(t, Render(&buf, sink))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, Height)
	assert.True(t, strings.HasPrefix(lines[0], "█"))
	assert.True(t, strings.HasSuffix(lines[Height-1], "█"))
	assert.Equal(t, strings.Repeat(" ", Width), lines[1])
}
