// Package cpu implements the execution core: registers, cursors, timers,
// the instruction dispatcher and the instruction semantics.
package cpu

import (
	"errors"
	"fmt"

	"github.com/retroenv/chip8vm/internal/cursor"
	"github.com/retroenv/chip8vm/internal/disasm"
	"github.com/retroenv/chip8vm/internal/display"
	"github.com/retroenv/chip8vm/internal/memory"
	"github.com/retroenv/chip8vm/internal/opcode"
	"github.com/retroenv/chip8vm/internal/timer"
	"github.com/retroenv/retrogolib/log"
)

// RegisterCount is the number of general purpose registers.
const RegisterCount = 16

// flagRegister is VF, written as a side effect of arithmetic, shift and draw.
const flagRegister = 0xF

// ErrUnknownOpcode is returned for instruction words that do not encode a
// known instruction.
var ErrUnknownOpcode = errors.New("unknown opcode")

// Processor is the execution core of the machine.
type Processor struct {
	logger *log.Logger
	opts   Options

	mem    *memory.Memory
	layout memory.Layout
	sink   display.Sink

	pc *cursor.Cursor
	sp *cursor.Cursor
	i  *cursor.Cursor

	delay *timer.Timer
	sound *timer.Timer

	v [RegisterCount]byte

	exited bool
	err    error // sticky fatal error
	cycles uint64
	drawn  bool
}

// New returns a processor with the program image loaded at the start of
// the program region.
func New(logger *log.Logger, program []byte, opts Options) (*Processor, error) {
	defaults := DefaultOptions()
	if opts.Now == nil {
		opts.Now = defaults.Now
	}
	if opts.Random == nil {
		opts.Random = defaults.Random
	}

	layout := memory.InlineDisplay
	if opts.Display != nil {
		layout = memory.ExternalDisplay
	}

	mem, err := memory.New(layout)
	if err != nil {
		return nil, fmt.Errorf("creating memory: %w", err)
	}
	if err := mem.Load(program, layout.Program); err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}

	sink := opts.Display
	if sink == nil {
		sink, err = display.NewView(mem.Region(layout.Display))
		if err != nil {
			return nil, fmt.Errorf("creating inline display: %w", err)
		}
	}

	p := &Processor{
		logger: logger,
		opts:   opts,
		mem:    mem,
		layout: layout,
		sink:   sink,
		pc:     cursor.New("pc", layout.Program),
		sp:     cursor.New("sp", layout.Stack),
		i:      cursor.New("i", memory.Range{Start: 0, End: memory.Size}),
		delay:  timer.New(timer.Frequency, opts.Now),
		sound:  timer.New(timer.Frequency, opts.Now),
	}

	logger.Debug("Program loaded",
		log.Int("size", len(program)),
		log.Stringer("program", layout.Program),
		log.Stringer("stack", layout.Stack),
		log.Stringer("display", layout.Display))
	return p, nil
}

// Step executes a single instruction and ticks the timers.
// Once an error is returned the processor is halted and every further call
// returns the same error. After the exit signal is set, Step does nothing.
func (p *Processor) Step() error {
	if p.err != nil {
		return p.err
	}
	if p.exited {
		return nil
	}
	p.drawn = false

	pc := p.pc.Current()
	if err := p.pc.Check(opcode.Size); err != nil {
		return p.fail(fmt.Errorf("fetching instruction: %w", err))
	}
	op := opcode.FromBytes(p.mem.Read(pc), p.mem.Read(pc+1))

	if p.opts.Trace {
		p.logger.Debug("Executing instruction",
			log.Hex("pc", pc),
			log.Stringer("opcode", op),
			log.String("instruction", disasm.Format(uint16(op))))
	}

	operation := lookup(op)
	if err := operation(p, op); err != nil {
		return p.fail(fmt.Errorf("executing %s at $%03X: %w", op, pc, err))
	}

	p.delay.Tick()
	p.sound.Tick()
	p.cycles++
	return nil
}

func (p *Processor) fail(err error) error {
	p.err = err
	return err
}

// Err returns the fatal error that halted the processor, if any.
func (p *Processor) Err() error {
	return p.err
}

// Exited returns whether the program signaled its end by jumping to itself.
func (p *Processor) Exited() bool {
	return p.exited
}

// Beep returns whether the sound timer is active.
func (p *Processor) Beep() bool {
	return p.sound.Active()
}

// Drawn returns whether the last step changed the display.
func (p *Processor) Drawn() bool {
	return p.drawn
}

// Cycles returns the number of executed instructions.
func (p *Processor) Cycles() uint64 {
	return p.cycles
}

// Registers returns a copy of the general purpose registers.
func (p *Processor) Registers() [RegisterCount]byte {
	return p.v
}

// PC returns the program counter.
func (p *Processor) PC() uint16 {
	return p.pc.Current()
}

// SP returns the stack pointer.
func (p *Processor) SP() uint16 {
	return p.sp.Current()
}

// I returns the index register.
func (p *Processor) I() uint16 {
	return p.i.Current()
}

// DelayTimer returns the current value of the delay timer.
func (p *Processor) DelayTimer() byte {
	return p.delay.Current()
}

// SoundTimer returns the current value of the sound timer.
func (p *Processor) SoundTimer() byte {
	return p.sound.Current()
}

// Memory returns the address space.
func (p *Processor) Memory() *memory.Memory {
	return p.mem
}

// Display returns the display sink the processor draws to.
func (p *Processor) Display() display.Sink {
	return p.sink
}

// Frame returns the display pixels in row-major order.
func (p *Processor) Frame() []bool {
	return display.Snapshot(p.sink)
}
