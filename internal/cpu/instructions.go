package cpu

import (
	"github.com/retroenv/chip8vm/internal/display"
	"github.com/retroenv/chip8vm/internal/memory"
	"github.com/retroenv/chip8vm/internal/opcode"
)

// next advances the program counter to the following instruction.
func (p *Processor) next() error {
	return p.pc.Advance()
}

// skipIf advances the program counter by one or, if the condition holds,
// by two instructions.
func (p *Processor) skipIf(cond bool) error {
	if cond {
		if err := p.pc.Advance(); err != nil {
			return err
		}
	}
	return p.pc.Advance()
}

func (p *Processor) setFlag(b bool) {
	if b {
		p.v[flagRegister] = 1
	} else {
		p.v[flagRegister] = 0
	}
}

func (p *Processor) nop(opcode.Opcode) error {
	return p.next()
}

func (p *Processor) cls(opcode.Opcode) error {
	p.sink.Clear()
	p.drawn = true
	return p.next()
}

// push advances the stack pointer and writes the address there, high
// byte first. The slot at the start of the stack region stays unused.
func (p *Processor) push(addr uint16) error {
	if err := p.sp.Advance(); err != nil {
		return err
	}
	sp := p.sp.Current()
	p.mem.Write(sp, byte(addr>>8))
	p.mem.Write(sp+1, byte(addr))
	return nil
}

// pop reads the address at the stack pointer and retreats it.
func (p *Processor) pop() (uint16, error) {
	sp := p.sp.Current()
	if err := p.sp.Retreat(); err != nil {
		return 0, err
	}
	return uint16(p.mem.Read(sp))<<8 | uint16(p.mem.Read(sp+1)), nil
}

func (p *Processor) ret(opcode.Opcode) error {
	addr, err := p.pop()
	if err != nil {
		return err
	}
	if err := p.pc.Set(addr); err != nil {
		return err
	}
	return p.next()
}

func (p *Processor) jpAddr(op opcode.Opcode) error {
	addr := op.NNN()
	if addr == p.pc.Current() {
		p.exited = true
		return nil
	}
	return p.pc.Set(addr)
}

// call stores the address of the call instruction itself, ret resumes
// after it.
func (p *Processor) call(op opcode.Opcode) error {
	if err := p.push(p.pc.Current()); err != nil {
		return err
	}
	return p.pc.Set(op.NNN())
}

func (p *Processor) seVxByte(op opcode.Opcode) error {
	return p.skipIf(p.v[op.X()] == op.KK())
}

func (p *Processor) sneVxByte(op opcode.Opcode) error {
	return p.skipIf(p.v[op.X()] != op.KK())
}

func (p *Processor) seVxVy(op opcode.Opcode) error {
	return p.skipIf(p.v[op.X()] == p.v[op.Y()])
}

func (p *Processor) sneVxVy(op opcode.Opcode) error {
	return p.skipIf(p.v[op.X()] != p.v[op.Y()])
}

func (p *Processor) ldVxByte(op opcode.Opcode) error {
	p.v[op.X()] = op.KK()
	return p.next()
}

func (p *Processor) addVxByte(op opcode.Opcode) error {
	p.v[op.X()] += op.KK()
	return p.next()
}

func (p *Processor) ldVxVy(op opcode.Opcode) error {
	p.v[op.X()] = p.v[op.Y()]
	return p.next()
}

func (p *Processor) or(op opcode.Opcode) error {
	p.v[op.X()] |= p.v[op.Y()]
	return p.next()
}

func (p *Processor) and(op opcode.Opcode) error {
	p.v[op.X()] &= p.v[op.Y()]
	return p.next()
}

func (p *Processor) xor(op opcode.Opcode) error {
	p.v[op.X()] ^= p.v[op.Y()]
	return p.next()
}

func (p *Processor) addVxVy(op opcode.Opcode) error {
	vx, vy := p.v[op.X()], p.v[op.Y()]
	sum := uint16(vx) + uint16(vy)
	p.v[op.X()] = byte(sum)
	p.setFlag(sum > 0xFF)
	return p.next()
}

func (p *Processor) sub(op opcode.Opcode) error {
	vx, vy := p.v[op.X()], p.v[op.Y()]
	p.v[op.X()] = vx - vy
	p.setFlag(vx >= vy)
	return p.next()
}

func (p *Processor) subn(op opcode.Opcode) error {
	vx, vy := p.v[op.X()], p.v[op.Y()]
	p.v[op.X()] = vy - vx
	p.setFlag(vy >= vx)
	return p.next()
}

// shiftSource returns the register value that is shifted into Vx.
func (p *Processor) shiftSource(op opcode.Opcode) byte {
	if p.opts.Quirks.ShiftUsesVx {
		return p.v[op.X()]
	}
	return p.v[op.Y()]
}

func (p *Processor) shr(op opcode.Opcode) error {
	value := p.shiftSource(op)
	p.v[op.X()] = value >> 1
	p.setFlag(value&0x01 != 0)
	return p.next()
}

func (p *Processor) shl(op opcode.Opcode) error {
	value := p.shiftSource(op)
	p.v[op.X()] = value << 1
	p.setFlag(value&0x80 != 0)
	return p.next()
}

func (p *Processor) ldIAddr(op opcode.Opcode) error {
	if err := p.i.Set(op.NNN()); err != nil {
		return err
	}
	return p.next()
}

func (p *Processor) jpV0Addr(op opcode.Opcode) error {
	return p.pc.Set(op.NNN() + uint16(p.v[0]))
}

func (p *Processor) rnd(op opcode.Opcode) error {
	p.v[op.X()] = p.opts.Random() & op.KK()
	return p.next()
}

// drw XORs n sprite rows read from I onto the display at (Vx, Vy+row).
// VF is set if any pixel was turned off.
func (p *Processor) drw(op opcode.Opcode) error {
	n := int(op.N())
	if err := p.i.Check(n); err != nil {
		return err
	}
	sprite := p.mem.ReadRange(p.i.Current(), n)
	x := int(p.v[op.X()])
	y := int(p.v[op.Y()])

	var collision bool
	for row, b := range sprite {
		if b == 0 {
			continue
		}
		if display.BlitByte(p.sink, x, y+row, b) {
			collision = true
		}
		p.drawn = true
	}

	p.setFlag(collision)
	return p.next()
}

func (p *Processor) ldVxDT(op opcode.Opcode) error {
	p.v[op.X()] = p.delay.Current()
	return p.next()
}

func (p *Processor) ldDTVx(op opcode.Opcode) error {
	p.delay.Set(p.v[op.X()])
	return p.next()
}

func (p *Processor) ldSTVx(op opcode.Opcode) error {
	p.sound.Set(p.v[op.X()])
	return p.next()
}

func (p *Processor) addIVx(op opcode.Opcode) error {
	addr := (p.i.Current() + uint16(p.v[op.X()])) % memory.Size
	if err := p.i.Set(addr); err != nil {
		return err
	}
	return p.next()
}

func (p *Processor) ldFVx(op opcode.Opcode) error {
	addr := memory.GlyphAddress(p.layout.Font.Start, p.v[op.X()])
	if err := p.i.Set(addr); err != nil {
		return err
	}
	return p.next()
}

func (p *Processor) ldBVx(op opcode.Opcode) error {
	if err := p.i.Check(3); err != nil {
		return err
	}
	vx := p.v[op.X()]
	i := p.i.Current()
	p.mem.Write(i, vx/100)
	p.mem.Write(i+1, vx/10%10)
	p.mem.Write(i+2, vx%10)
	return p.next()
}

// storeRegisters copies V0..Vx to memory starting at I.
func (p *Processor) storeRegisters(op opcode.Opcode) error {
	count := int(op.X()) + 1
	if err := p.i.Check(count); err != nil {
		return err
	}
	i := p.i.Current()
	for r := range count {
		p.mem.Write(i+uint16(r), p.v[r])
	}
	return p.advanceIndex(count)
}

// loadRegisters copies memory starting at I to V0..Vx.
func (p *Processor) loadRegisters(op opcode.Opcode) error {
	count := int(op.X()) + 1
	if err := p.i.Check(count); err != nil {
		return err
	}
	i := p.i.Current()
	for r := range count {
		p.v[r] = p.mem.Read(i + uint16(r))
	}
	return p.advanceIndex(count)
}

func (p *Processor) advanceIndex(count int) error {
	if !p.opts.Quirks.KeepIndex {
		if err := p.i.Set(p.i.Current() + uint16(count)); err != nil {
			return err
		}
	}
	return p.next()
}
