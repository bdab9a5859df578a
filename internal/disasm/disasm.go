// Package disasm renders instruction words as assembler text, for the
// execution trace and for program listings.
package disasm

import (
	"fmt"
	"io"
)

// Format returns the assembler text of an instruction word. Words that do
// not encode a known instruction are rendered as data.
func Format(word uint16) string {
	ins, _ := Lookup(word)
	return ins.String()
}

// Write writes a listing of the program image, one instruction word per
// line, addressed from base. A trailing odd byte is listed as data.
func Write(w io.Writer, image []byte, base uint16) error {
	for offset := 0; offset < len(image); offset += 2 {
		addr := int(base) + offset

		if offset+1 >= len(image) {
			if _, err := fmt.Fprintf(w, "$%03X  %02X    db $%02X\n", addr, image[offset], image[offset]); err != nil {
				return fmt.Errorf("writing listing: %w", err)
			}
			break
		}

		word := uint16(image[offset])<<8 | uint16(image[offset+1])
		ins, _ := Lookup(word)
		if _, err := fmt.Fprintf(w, "$%03X  %04X  %s\n", addr, word, ins); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}

		// separate blocks after unconditional control transfers
		if ins.IsJump() || ins.IsReturn() {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return fmt.Errorf("writing listing: %w", err)
			}
		}
	}
	return nil
}
