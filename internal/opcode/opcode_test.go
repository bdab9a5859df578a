package opcode

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestFromBytes(t *testing.T) {
	op := FromBytes(0xD1, 0x2F)
	assert.Equal(t, Opcode(0xD12F), op)

	hi, lo := op.Bytes()
	assert.Equal(t, byte(0xD1), hi)
	assert.Equal(t, byte(0x2F), lo)
}

func TestFields(t *testing.T) {
	tests := []struct {
		name   string
		op     Opcode
		family byte
		x      byte
		y      byte
		n      byte
		kk     byte
		nnn    uint16
	}{
		{"draw", 0xD12F, 0xD, 0x1, 0x2, 0xF, 0x2F, 0x12F},
		{"jump", 0x1ABC, 0x1, 0xA, 0xB, 0xC, 0xBC, 0xABC},
		{"zero", 0x0000, 0x0, 0x0, 0x0, 0x0, 0x00, 0x000},
		{"all bits", 0xFFFF, 0xF, 0xF, 0xF, 0xF, 0xFF, 0xFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.family, tt.op.Family())
			assert.Equal(t, tt.x, tt.op.X())
			assert.Equal(t, tt.y, tt.op.Y())
			assert.Equal(t, tt.n, tt.op.N())
			assert.Equal(t, tt.kk, tt.op.KK())
			assert.Equal(t, tt.nnn, tt.op.NNN())
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "00E0", Opcode(0x00E0).String())
	assert.Equal(t, "A2F0", Opcode(0xA2F0).String())
}
