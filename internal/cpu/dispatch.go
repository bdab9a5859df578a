package cpu

import (
	"fmt"

	"github.com/retroenv/chip8vm/internal/opcode"
)

// operation executes a decoded instruction.
type operation func(*Processor, opcode.Opcode) error

// lookup maps an instruction word to its operation. The families 0x0, 0x8,
// 0xE and 0xF are discriminated by a second level lookup.
func lookup(op opcode.Opcode) operation {
	switch op.Family() {
	case 0x0:
		switch op.KK() {
		case 0x00:
			return (*Processor).nop
		case 0xE0:
			return (*Processor).cls
		case 0xEE:
			return (*Processor).ret
		}
	case 0x1:
		return (*Processor).jpAddr
	case 0x2:
		return (*Processor).call
	case 0x3:
		return (*Processor).seVxByte
	case 0x4:
		return (*Processor).sneVxByte
	case 0x5:
		return (*Processor).seVxVy
	case 0x6:
		return (*Processor).ldVxByte
	case 0x7:
		return (*Processor).addVxByte
	case 0x8:
		return lookupArithmetic(op)
	case 0x9:
		return (*Processor).sneVxVy
	case 0xA:
		return (*Processor).ldIAddr
	case 0xB:
		return (*Processor).jpV0Addr
	case 0xC:
		return (*Processor).rnd
	case 0xD:
		return (*Processor).drw
	case 0xE:
		switch op.KK() {
		case 0x9E, 0xA1:
			return (*Processor).nop
		}
	case 0xF:
		return lookupMisc(op)
	}
	return (*Processor).unknown
}

func lookupArithmetic(op opcode.Opcode) operation {
	switch op.N() {
	case 0x0:
		return (*Processor).ldVxVy
	case 0x1:
		return (*Processor).or
	case 0x2:
		return (*Processor).and
	case 0x3:
		return (*Processor).xor
	case 0x4:
		return (*Processor).addVxVy
	case 0x5:
		return (*Processor).sub
	case 0x6:
		return (*Processor).shr
	case 0x7:
		return (*Processor).subn
	case 0xE:
		return (*Processor).shl
	}
	return (*Processor).unknown
}

func lookupMisc(op opcode.Opcode) operation {
	switch op.KK() {
	case 0x07:
		return (*Processor).ldVxDT
	case 0x0A:
		return (*Processor).nop
	case 0x15:
		return (*Processor).ldDTVx
	case 0x18:
		return (*Processor).ldSTVx
	case 0x1E:
		return (*Processor).addIVx
	case 0x29:
		return (*Processor).ldFVx
	case 0x33:
		return (*Processor).ldBVx
	case 0x55:
		return (*Processor).storeRegisters
	case 0x65:
		return (*Processor).loadRegisters
	}
	return (*Processor).unknown
}

func (p *Processor) unknown(op opcode.Opcode) error {
	return fmt.Errorf("%w: %s", ErrUnknownOpcode, op)
}
