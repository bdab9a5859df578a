// Package opcode implements decoding of the 16-bit instruction words.
package opcode

import "fmt"

// Size is the instruction width in bytes.
const Size = 2

// Opcode is a big-endian 16-bit instruction word.
type Opcode uint16

// FromBytes packs two bytes into an instruction word, high byte first.
func FromBytes(hi, lo byte) Opcode {
	return Opcode(uint16(hi)<<8 | uint16(lo))
}

// Family returns the instruction family nibble, bits 15-12.
func (o Opcode) Family() byte {
	return byte(o >> 12)
}

// X returns the first register index, bits 11-8.
func (o Opcode) X() byte {
	return byte(o>>8) & 0x0F
}

// Y returns the second register index, bits 7-4.
func (o Opcode) Y() byte {
	return byte(o>>4) & 0x0F
}

// N returns the immediate nibble, bits 3-0.
func (o Opcode) N() byte {
	return byte(o) & 0x0F
}

// KK returns the immediate byte, bits 7-0.
func (o Opcode) KK() byte {
	return byte(o)
}

// NNN returns the 12-bit address, bits 11-0.
func (o Opcode) NNN() uint16 {
	return uint16(o) & 0x0FFF
}

// Bytes returns the word in its big-endian wire format.
func (o Opcode) Bytes() (hi, lo byte) {
	return byte(o >> 8), byte(o)
}

// String returns the word as 4 hex digits.
func (o Opcode) String() string {
	return fmt.Sprintf("%04X", uint16(o))
}
