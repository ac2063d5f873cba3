package mos6502

import "fmt"

// Trace renders the state captured just before the most recently executed
// instruction in the nestest.log format:
//
//	C000  4C F5 C5  JMP                             A:00 X:00 Y:00 P:24 SP:FD
//
// Disassembly is limited to the raw opcode bytes and mnemonic; nestest's
// richer operand rendering (resolved addresses, loaded values) isn't
// reproduced since no comparator here depends on it.
func (c *CPU) Trace() string {
	s := c.last
	op := opcodeTable[s.opcode]

	var hex string
	switch s.nbytes {
	case 1:
		hex = fmt.Sprintf("%02X      ", s.opcode)
	case 2:
		hex = fmt.Sprintf("%02X %02X   ", s.opcode, s.op1)
	default:
		hex = fmt.Sprintf("%02X %02X %02X", s.opcode, s.op1, s.op2)
	}

	name := op.name
	if op.illegal {
		name = "???"
	}

	return fmt.Sprintf("%04X  %s  %-31s A:%02X X:%02X Y:%02X P:%02X SP:%02X",
		s.pc, hex, name, s.a, s.x, s.y, s.p, s.sp)
}
