package disasm

import "github.com/retroenv/retrogolib/arch/cpu/chip8"

// Instruction is a decoded instruction word with its opcode table entry.
type Instruction struct {
	word uint16
	op   chip8.Opcode
}

// Lookup matches the word against the opcode table of its family.
// It returns false for words that do not encode a known instruction.
func Lookup(word uint16) (Instruction, bool) {
	family := (word & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(family)] {
		if op.Info.Mask&word == op.Info.Value {
			return Instruction{word: word, op: op}, op.Instruction != nil
		}
	}
	return Instruction{word: word}, false
}

// Word returns the encoded instruction word.
func (i Instruction) Word() uint16 {
	return i.word
}

// Name returns the instruction mnemonic.
func (i Instruction) Name() string {
	if i.op.Instruction == nil {
		return ""
	}
	return i.op.Instruction.Name
}

// IsCall returns true if the instruction is a subroutine call.
func (i Instruction) IsCall() bool {
	return i.op.Instruction == chip8.CallInst
}

// IsJump returns true if the instruction is an unconditional jump.
func (i Instruction) IsJump() bool {
	return i.op.Instruction == chip8.JpInst
}

// IsReturn returns true if the instruction returns from a subroutine.
func (i Instruction) IsReturn() bool {
	return i.op.Instruction == chip8.RetInst
}

// IsSkip returns true if the instruction conditionally skips the next one.
func (i Instruction) IsSkip() bool {
	if i.op.Instruction == nil {
		return false
	}
	return chip8.SkipInstructions.Contains(i.op.Instruction.Name)
}

// String returns the instruction in assembler syntax.
func (i Instruction) String() string {
	name := i.Name()
	if name == "" {
		return dataWord(i.word)
	}
	if params := formatParams(name, i.word); params != "" {
		return name + " " + params
	}
	return name
}
