// Package memory implements the 4KB CHIP-8 address space and its region layout.
package memory

import (
	"errors"
	"fmt"
)

// Size is the number of addressable bytes.
const Size = 0x1000

var (
	// ErrOversizedLoad is returned when data does not fit into the target range.
	ErrOversizedLoad = errors.New("data exceeds memory range")
	// ErrInvalidLayout is returned when the regions are not contiguous and ordered.
	ErrInvalidLayout = errors.New("invalid memory layout")
)

// Range is a half-open address range [Start, End).
type Range struct {
	Start uint16
	End   uint16
}

// Contains returns whether the address lies within the range.
func (r Range) Contains(addr uint16) bool {
	return addr >= r.Start && addr < r.End
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return int(r.End - r.Start)
}

// String returns the range in [$start,$end) notation.
func (r Range) String() string {
	return fmt.Sprintf("[$%03X,$%03X)", r.Start, r.End)
}

// Layout partitions the address space into its four disjoint regions.
type Layout struct {
	Font    Range
	Program Range
	Stack   Range
	Display Range
}

// InlineDisplay keeps the 64x32 framebuffer inside the address space.
var InlineDisplay = Layout{
	Font:    Range{Start: 0x000, End: 0x200},
	Program: Range{Start: 0x200, End: 0xEA0},
	Stack:   Range{Start: 0xEA0, End: 0xF00},
	Display: Range{Start: 0xF00, End: Size},
}

// ExternalDisplay leaves the framebuffer to an external sink, the stack
// takes over the space of the display region.
var ExternalDisplay = Layout{
	Font:    Range{Start: 0x000, End: 0x200},
	Program: Range{Start: 0x200, End: 0xEA0},
	Stack:   Range{Start: 0xEA0, End: Size},
	Display: Range{Start: Size, End: Size},
}

// Validate checks that the regions are contiguous, ordered and inside the
// address space: Font.end = Program.start < Stack.start < Display.start <= Size.
func (l Layout) Validate() error {
	switch {
	case l.Font.Start != 0:
		return fmt.Errorf("%w: font region %s must start at $000", ErrInvalidLayout, l.Font)
	case l.Font.End != l.Program.Start:
		return fmt.Errorf("%w: font region %s must end at program start $%03X",
			ErrInvalidLayout, l.Font, l.Program.Start)
	case l.Program.Start >= l.Stack.Start || l.Program.End != l.Stack.Start:
		return fmt.Errorf("%w: program region %s must precede stack region %s",
			ErrInvalidLayout, l.Program, l.Stack)
	case l.Stack.Start >= l.Display.Start || l.Stack.End != l.Display.Start:
		return fmt.Errorf("%w: stack region %s must precede display region %s",
			ErrInvalidLayout, l.Stack, l.Display)
	case l.Display.Start > Size || l.Display.End != Size:
		return fmt.Errorf("%w: display region %s must end at $%03X", ErrInvalidLayout, l.Display, Size)
	}
	return nil
}

// Memory is the byte addressable memory of the machine.
// Accesses are not range checked at this layer, the cursors of the
// processor guard runtime addressing.
type Memory struct {
	layout Layout
	data   []byte
}

// New returns a zeroed address space for the given layout with the font
// glyphs preloaded.
func New(layout Layout) (*Memory, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	m := &Memory{
		layout: layout,
		data:   make([]byte, Size),
	}
	if err := m.Load(Font[:], layout.Font); err != nil {
		return nil, fmt.Errorf("loading font: %w", err)
	}
	return m, nil
}

// Layout returns the region layout of the address space.
func (m *Memory) Layout() Layout {
	return m.layout
}

// Read returns the byte at the address.
func (m *Memory) Read(addr uint16) byte {
	return m.data[addr]
}

// Write sets the byte at the address.
func (m *Memory) Write(addr uint16, value byte) {
	m.data[addr] = value
}

// ReadRange returns a copy of n bytes starting at the address.
func (m *Memory) ReadRange(addr uint16, n int) []byte {
	buf := make([]byte, n)
	copy(buf, m.data[int(addr):int(addr)+n])
	return buf
}

// Load copies data to the start of the range and zeroes the rest of it.
// Nothing is written if the data is larger than the range.
func (m *Memory) Load(data []byte, r Range) error {
	if len(data) > r.Len() {
		return fmt.Errorf("%w: %d bytes into %s (%d bytes)", ErrOversizedLoad, len(data), r, r.Len())
	}

	region := m.data[r.Start:r.End]
	n := copy(region, data)
	clear(region[n:])
	return nil
}

// Region returns the live backing bytes of a range. Writes to the returned
// slice are writes to memory.
func (m *Memory) Region(r Range) []byte {
	return m.data[r.Start:r.End:r.End]
}

// Dump returns a copy of the whole address space.
func (m *Memory) Dump() []byte {
	buf := make([]byte, Size)
	copy(buf, m.data)
	return buf
}
