package mos6502

// opcode is a single row of the static 256-entry decode table described
// in the Design Notes: a mnemonic, an addressing mode, the instruction's
// length in bytes (opcode included), the base cycle cost, whether it's one of the unimplemented
// "jam" bytes, and the function that executes it.
type opcode struct {
	name    string
	mode    uint8
	bytes   uint8
	cycles  int
	illegal bool
	exec    func(c *CPU, mode uint8)
}

func jam(name string) opcode {
	return opcode{name: name, mode: IMPLICIT, bytes: 1, cycles: 2, illegal: true}
}

// opcodeTable is indexed directly by opcode byte. It covers the 56
// official 6502 instructions plus the documented-unofficial subset named
// (DCP, ISC, LAX, SAX, SLO, RLA, SRE, RRA,
// unofficial NOPs, duplicate SBC). Every other byte decodes to a "jam"
// entry that Step() turns into a JamError -- the 6502 has no illegal-
// opcode trap, but this core doesn't need to model hardware lockup,
// only report it.
var opcodeTable = buildOpcodeTable()

func buildOpcodeTable() [256]opcode {
	var t [256]opcode
	for i := range t {
		t[i] = jam("???")
	}

	set := func(code uint8, name string, mode uint8, bytes uint8, cycles int, fn func(c *CPU, mode uint8)) {
		t[code] = opcode{name: name, mode: mode, bytes: bytes, cycles: cycles, exec: fn}
	}

	// ADC
	set(0x69, "ADC", IMMEDIATE, 2, 2, (*CPU).adc)
	set(0x65, "ADC", ZERO_PAGE, 2, 3, (*CPU).adc)
	set(0x75, "ADC", ZERO_PAGE_X, 2, 4, (*CPU).adc)
	set(0x6D, "ADC", ABSOLUTE, 3, 4, (*CPU).adc)
	set(0x7D, "ADC", ABSOLUTE_X, 3, 4, (*CPU).adc)
	set(0x79, "ADC", ABSOLUTE_Y, 3, 4, (*CPU).adc)
	set(0x61, "ADC", INDIRECT_X, 2, 6, (*CPU).adc)
	set(0x71, "ADC", INDIRECT_Y, 2, 5, (*CPU).adc)

	// AND
	set(0x29, "AND", IMMEDIATE, 2, 2, (*CPU).and)
	set(0x25, "AND", ZERO_PAGE, 2, 3, (*CPU).and)
	set(0x35, "AND", ZERO_PAGE_X, 2, 4, (*CPU).and)
	set(0x2D, "AND", ABSOLUTE, 3, 4, (*CPU).and)
	set(0x3D, "AND", ABSOLUTE_X, 3, 4, (*CPU).and)
	set(0x39, "AND", ABSOLUTE_Y, 3, 4, (*CPU).and)
	set(0x21, "AND", INDIRECT_X, 2, 6, (*CPU).and)
	set(0x31, "AND", INDIRECT_Y, 2, 5, (*CPU).and)

	// ASL
	set(0x0A, "ASL", ACCUMULATOR, 1, 2, (*CPU).asl)
	set(0x06, "ASL", ZERO_PAGE, 2, 5, (*CPU).asl)
	set(0x16, "ASL", ZERO_PAGE_X, 2, 6, (*CPU).asl)
	set(0x0E, "ASL", ABSOLUTE, 3, 6, (*CPU).asl)
	set(0x1E, "ASL", ABSOLUTE_X, 3, 7, (*CPU).asl)

	// Branches
	set(0x90, "BCC", RELATIVE, 2, 2, (*CPU).bcc)
	set(0xB0, "BCS", RELATIVE, 2, 2, (*CPU).bcs)
	set(0xF0, "BEQ", RELATIVE, 2, 2, (*CPU).beq)
	set(0x30, "BMI", RELATIVE, 2, 2, (*CPU).bmi)
	set(0xD0, "BNE", RELATIVE, 2, 2, (*CPU).bne)
	set(0x10, "BPL", RELATIVE, 2, 2, (*CPU).bpl)
	set(0x50, "BVC", RELATIVE, 2, 2, (*CPU).bvc)
	set(0x70, "BVS", RELATIVE, 2, 2, (*CPU).bvs)

	// BIT
	set(0x24, "BIT", ZERO_PAGE, 2, 3, (*CPU).bit)
	set(0x2C, "BIT", ABSOLUTE, 3, 4, (*CPU).bit)

	// BRK
	set(0x00, "BRK", IMPLICIT, 2, 7, (*CPU).brk)

	// Flag ops
	set(0x18, "CLC", IMPLICIT, 1, 2, func(c *CPU, _ uint8) { c.flagsOff(STATUS_FLAG_CARRY) })
	set(0xD8, "CLD", IMPLICIT, 1, 2, func(c *CPU, _ uint8) { c.flagsOff(STATUS_FLAG_DECIMAL) })
	set(0x58, "CLI", IMPLICIT, 1, 2, func(c *CPU, _ uint8) { c.flagsOff(STATUS_FLAG_INTERRUPT_DISABLE) })
	set(0xB8, "CLV", IMPLICIT, 1, 2, func(c *CPU, _ uint8) { c.flagsOff(STATUS_FLAG_OVERFLOW) })
	set(0x38, "SEC", IMPLICIT, 1, 2, func(c *CPU, _ uint8) { c.flagsOn(STATUS_FLAG_CARRY) })
	set(0xF8, "SED", IMPLICIT, 1, 2, func(c *CPU, _ uint8) { c.flagsOn(STATUS_FLAG_DECIMAL) })
	set(0x78, "SEI", IMPLICIT, 1, 2, func(c *CPU, _ uint8) { c.flagsOn(STATUS_FLAG_INTERRUPT_DISABLE) })

	// Compare
	set(0xC9, "CMP", IMMEDIATE, 2, 2, (*CPU).cmp)
	set(0xC5, "CMP", ZERO_PAGE, 2, 3, (*CPU).cmp)
	set(0xD5, "CMP", ZERO_PAGE_X, 2, 4, (*CPU).cmp)
	set(0xCD, "CMP", ABSOLUTE, 3, 4, (*CPU).cmp)
	set(0xDD, "CMP", ABSOLUTE_X, 3, 4, (*CPU).cmp)
	set(0xD9, "CMP", ABSOLUTE_Y, 3, 4, (*CPU).cmp)
	set(0xC1, "CMP", INDIRECT_X, 2, 6, (*CPU).cmp)
	set(0xD1, "CMP", INDIRECT_Y, 2, 5, (*CPU).cmp)
	set(0xE0, "CPX", IMMEDIATE, 2, 2, (*CPU).cpx)
	set(0xE4, "CPX", ZERO_PAGE, 2, 3, (*CPU).cpx)
	set(0xEC, "CPX", ABSOLUTE, 3, 4, (*CPU).cpx)
	set(0xC0, "CPY", IMMEDIATE, 2, 2, (*CPU).cpy)
	set(0xC4, "CPY", ZERO_PAGE, 2, 3, (*CPU).cpy)
	set(0xCC, "CPY", ABSOLUTE, 3, 4, (*CPU).cpy)

	// DEC/INC family
	set(0xC6, "DEC", ZERO_PAGE, 2, 5, (*CPU).dec)
	set(0xD6, "DEC", ZERO_PAGE_X, 2, 6, (*CPU).dec)
	set(0xCE, "DEC", ABSOLUTE, 3, 6, (*CPU).dec)
	set(0xDE, "DEC", ABSOLUTE_X, 3, 7, (*CPU).dec)
	set(0xCA, "DEX", IMPLICIT, 1, 2, (*CPU).dex)
	set(0x88, "DEY", IMPLICIT, 1, 2, (*CPU).dey)
	set(0xE6, "INC", ZERO_PAGE, 2, 5, (*CPU).inc)
	set(0xF6, "INC", ZERO_PAGE_X, 2, 6, (*CPU).inc)
	set(0xEE, "INC", ABSOLUTE, 3, 6, (*CPU).inc)
	set(0xFE, "INC", ABSOLUTE_X, 3, 7, (*CPU).inc)
	set(0xE8, "INX", IMPLICIT, 1, 2, (*CPU).inx)
	set(0xC8, "INY", IMPLICIT, 1, 2, (*CPU).iny)

	// EOR
	set(0x49, "EOR", IMMEDIATE, 2, 2, (*CPU).eor)
	set(0x45, "EOR", ZERO_PAGE, 2, 3, (*CPU).eor)
	set(0x55, "EOR", ZERO_PAGE_X, 2, 4, (*CPU).eor)
	set(0x4D, "EOR", ABSOLUTE, 3, 4, (*CPU).eor)
	set(0x5D, "EOR", ABSOLUTE_X, 3, 4, (*CPU).eor)
	set(0x59, "EOR", ABSOLUTE_Y, 3, 4, (*CPU).eor)
	set(0x41, "EOR", INDIRECT_X, 2, 6, (*CPU).eor)
	set(0x51, "EOR", INDIRECT_Y, 2, 5, (*CPU).eor)

	// Jumps/calls
	set(0x4C, "JMP", ABSOLUTE, 3, 3, (*CPU).jmp)
	set(0x6C, "JMP", INDIRECT, 3, 5, (*CPU).jmp)
	set(0x20, "JSR", ABSOLUTE, 3, 6, (*CPU).jsr)
	set(0x60, "RTS", IMPLICIT, 1, 6, (*CPU).rts)
	set(0x40, "RTI", IMPLICIT, 1, 6, (*CPU).rti)

	// Loads
	set(0xA9, "LDA", IMMEDIATE, 2, 2, (*CPU).lda)
	set(0xA5, "LDA", ZERO_PAGE, 2, 3, (*CPU).lda)
	set(0xB5, "LDA", ZERO_PAGE_X, 2, 4, (*CPU).lda)
	set(0xAD, "LDA", ABSOLUTE, 3, 4, (*CPU).lda)
	set(0xBD, "LDA", ABSOLUTE_X, 3, 4, (*CPU).lda)
	set(0xB9, "LDA", ABSOLUTE_Y, 3, 4, (*CPU).lda)
	set(0xA1, "LDA", INDIRECT_X, 2, 6, (*CPU).lda)
	set(0xB1, "LDA", INDIRECT_Y, 2, 5, (*CPU).lda)
	set(0xA2, "LDX", IMMEDIATE, 2, 2, (*CPU).ldx)
	set(0xA6, "LDX", ZERO_PAGE, 2, 3, (*CPU).ldx)
	set(0xB6, "LDX", ZERO_PAGE_Y, 2, 4, (*CPU).ldx)
	set(0xAE, "LDX", ABSOLUTE, 3, 4, (*CPU).ldx)
	set(0xBE, "LDX", ABSOLUTE_Y, 3, 4, (*CPU).ldx)
	set(0xA0, "LDY", IMMEDIATE, 2, 2, (*CPU).ldy)
	set(0xA4, "LDY", ZERO_PAGE, 2, 3, (*CPU).ldy)
	set(0xB4, "LDY", ZERO_PAGE_X, 2, 4, (*CPU).ldy)
	set(0xAC, "LDY", ABSOLUTE, 3, 4, (*CPU).ldy)
	set(0xBC, "LDY", ABSOLUTE_X, 3, 4, (*CPU).ldy)

	// Shifts
	set(0x4A, "LSR", ACCUMULATOR, 1, 2, (*CPU).lsr)
	set(0x46, "LSR", ZERO_PAGE, 2, 5, (*CPU).lsr)
	set(0x56, "LSR", ZERO_PAGE_X, 2, 6, (*CPU).lsr)
	set(0x4E, "LSR", ABSOLUTE, 3, 6, (*CPU).lsr)
	set(0x5E, "LSR", ABSOLUTE_X, 3, 7, (*CPU).lsr)
	set(0x2A, "ROL", ACCUMULATOR, 1, 2, (*CPU).rol)
	set(0x26, "ROL", ZERO_PAGE, 2, 5, (*CPU).rol)
	set(0x36, "ROL", ZERO_PAGE_X, 2, 6, (*CPU).rol)
	set(0x2E, "ROL", ABSOLUTE, 3, 6, (*CPU).rol)
	set(0x3E, "ROL", ABSOLUTE_X, 3, 7, (*CPU).rol)
	set(0x6A, "ROR", ACCUMULATOR, 1, 2, (*CPU).ror)
	set(0x66, "ROR", ZERO_PAGE, 2, 5, (*CPU).ror)
	set(0x76, "ROR", ZERO_PAGE_X, 2, 6, (*CPU).ror)
	set(0x6E, "ROR", ABSOLUTE, 3, 6, (*CPU).ror)
	set(0x7E, "ROR", ABSOLUTE_X, 3, 7, (*CPU).ror)

	// NOP (official, 1 byte)
	set(0xEA, "NOP", IMPLICIT, 1, 2, func(*CPU, uint8) {})

	// ORA
	set(0x09, "ORA", IMMEDIATE, 2, 2, (*CPU).ora)
	set(0x05, "ORA", ZERO_PAGE, 2, 3, (*CPU).ora)
	set(0x15, "ORA", ZERO_PAGE_X, 2, 4, (*CPU).ora)
	set(0x0D, "ORA", ABSOLUTE, 3, 4, (*CPU).ora)
	set(0x1D, "ORA", ABSOLUTE_X, 3, 4, (*CPU).ora)
	set(0x19, "ORA", ABSOLUTE_Y, 3, 4, (*CPU).ora)
	set(0x01, "ORA", INDIRECT_X, 2, 6, (*CPU).ora)
	set(0x11, "ORA", INDIRECT_Y, 2, 5, (*CPU).ora)

	// Stack
	set(0x48, "PHA", IMPLICIT, 1, 3, (*CPU).pha)
	set(0x08, "PHP", IMPLICIT, 1, 3, (*CPU).php)
	set(0x68, "PLA", IMPLICIT, 1, 4, (*CPU).pla)
	set(0x28, "PLP", IMPLICIT, 1, 4, (*CPU).plp)

	// SBC
	set(0xE9, "SBC", IMMEDIATE, 2, 2, (*CPU).sbc)
	set(0xE5, "SBC", ZERO_PAGE, 2, 3, (*CPU).sbc)
	set(0xF5, "SBC", ZERO_PAGE_X, 2, 4, (*CPU).sbc)
	set(0xED, "SBC", ABSOLUTE, 3, 4, (*CPU).sbc)
	set(0xFD, "SBC", ABSOLUTE_X, 3, 4, (*CPU).sbc)
	set(0xF9, "SBC", ABSOLUTE_Y, 3, 4, (*CPU).sbc)
	set(0xE1, "SBC", INDIRECT_X, 2, 6, (*CPU).sbc)
	set(0xF1, "SBC", INDIRECT_Y, 2, 5, (*CPU).sbc)
	set(0xEB, "SBC", IMMEDIATE, 2, 2, (*CPU).sbc) // duplicate/unofficial SBC

	// Stores
	set(0x85, "STA", ZERO_PAGE, 2, 3, (*CPU).sta)
	set(0x95, "STA", ZERO_PAGE_X, 2, 4, (*CPU).sta)
	set(0x8D, "STA", ABSOLUTE, 3, 4, (*CPU).sta)
	set(0x9D, "STA", ABSOLUTE_X, 3, 5, (*CPU).sta)
	set(0x99, "STA", ABSOLUTE_Y, 3, 5, (*CPU).sta)
	set(0x81, "STA", INDIRECT_X, 2, 6, (*CPU).sta)
	set(0x91, "STA", INDIRECT_Y, 2, 6, (*CPU).sta)
	set(0x86, "STX", ZERO_PAGE, 2, 3, (*CPU).stx)
	set(0x96, "STX", ZERO_PAGE_Y, 2, 4, (*CPU).stx)
	set(0x8E, "STX", ABSOLUTE, 3, 4, (*CPU).stx)
	set(0x84, "STY", ZERO_PAGE, 2, 3, (*CPU).sty)
	set(0x94, "STY", ZERO_PAGE_X, 2, 4, (*CPU).sty)
	set(0x8C, "STY", ABSOLUTE, 3, 4, (*CPU).sty)

	// Transfers
	set(0xAA, "TAX", IMPLICIT, 1, 2, (*CPU).tax)
	set(0xA8, "TAY", IMPLICIT, 1, 2, (*CPU).tay)
	set(0xBA, "TSX", IMPLICIT, 1, 2, (*CPU).tsx)
	set(0x8A, "TXA", IMPLICIT, 1, 2, (*CPU).txa)
	set(0x9A, "TXS", IMPLICIT, 1, 2, (*CPU).txs)
	set(0x98, "TYA", IMPLICIT, 1, 2, (*CPU).tya)

	// Documented unofficial opcodes required by nestest.
	set(0xA3, "LAX", INDIRECT_X, 2, 6, (*CPU).lax)
	set(0xA7, "LAX", ZERO_PAGE, 2, 3, (*CPU).lax)
	set(0xAF, "LAX", ABSOLUTE, 3, 4, (*CPU).lax)
	set(0xB3, "LAX", INDIRECT_Y, 2, 5, (*CPU).lax)
	set(0xB7, "LAX", ZERO_PAGE_Y, 2, 4, (*CPU).lax)
	set(0xBF, "LAX", ABSOLUTE_Y, 3, 4, (*CPU).lax)

	set(0x83, "SAX", INDIRECT_X, 2, 6, (*CPU).sax)
	set(0x87, "SAX", ZERO_PAGE, 2, 3, (*CPU).sax)
	set(0x8F, "SAX", ABSOLUTE, 3, 4, (*CPU).sax)
	set(0x97, "SAX", ZERO_PAGE_Y, 2, 4, (*CPU).sax)

	set(0xC3, "DCP", INDIRECT_X, 2, 8, (*CPU).dcp)
	set(0xC7, "DCP", ZERO_PAGE, 2, 5, (*CPU).dcp)
	set(0xCF, "DCP", ABSOLUTE, 3, 6, (*CPU).dcp)
	set(0xD3, "DCP", INDIRECT_Y, 2, 8, (*CPU).dcp)
	set(0xD7, "DCP", ZERO_PAGE_X, 2, 6, (*CPU).dcp)
	set(0xDB, "DCP", ABSOLUTE_Y, 3, 7, (*CPU).dcp)
	set(0xDF, "DCP", ABSOLUTE_X, 3, 7, (*CPU).dcp)

	set(0xE3, "ISC", INDIRECT_X, 2, 8, (*CPU).isc)
	set(0xE7, "ISC", ZERO_PAGE, 2, 5, (*CPU).isc)
	set(0xEF, "ISC", ABSOLUTE, 3, 6, (*CPU).isc)
	set(0xF3, "ISC", INDIRECT_Y, 2, 8, (*CPU).isc)
	set(0xF7, "ISC", ZERO_PAGE_X, 2, 6, (*CPU).isc)
	set(0xFB, "ISC", ABSOLUTE_Y, 3, 7, (*CPU).isc)
	set(0xFF, "ISC", ABSOLUTE_X, 3, 7, (*CPU).isc)

	set(0x03, "SLO", INDIRECT_X, 2, 8, (*CPU).slo)
	set(0x07, "SLO", ZERO_PAGE, 2, 5, (*CPU).slo)
	set(0x0F, "SLO", ABSOLUTE, 3, 6, (*CPU).slo)
	set(0x13, "SLO", INDIRECT_Y, 2, 8, (*CPU).slo)
	set(0x17, "SLO", ZERO_PAGE_X, 2, 6, (*CPU).slo)
	set(0x1B, "SLO", ABSOLUTE_Y, 3, 7, (*CPU).slo)
	set(0x1F, "SLO", ABSOLUTE_X, 3, 7, (*CPU).slo)

	set(0x23, "RLA", INDIRECT_X, 2, 8, (*CPU).rla)
	set(0x27, "RLA", ZERO_PAGE, 2, 5, (*CPU).rla)
	set(0x2F, "RLA", ABSOLUTE, 3, 6, (*CPU).rla)
	set(0x33, "RLA", INDIRECT_Y, 2, 8, (*CPU).rla)
	set(0x37, "RLA", ZERO_PAGE_X, 2, 6, (*CPU).rla)
	set(0x3B, "RLA", ABSOLUTE_Y, 3, 7, (*CPU).rla)
	set(0x3F, "RLA", ABSOLUTE_X, 3, 7, (*CPU).rla)

	set(0x43, "SRE", INDIRECT_X, 2, 8, (*CPU).sre)
	set(0x47, "SRE", ZERO_PAGE, 2, 5, (*CPU).sre)
	set(0x4F, "SRE", ABSOLUTE, 3, 6, (*CPU).sre)
	set(0x53, "SRE", INDIRECT_Y, 2, 8, (*CPU).sre)
	set(0x57, "SRE", ZERO_PAGE_X, 2, 6, (*CPU).sre)
	set(0x5B, "SRE", ABSOLUTE_Y, 3, 7, (*CPU).sre)
	set(0x5F, "SRE", ABSOLUTE_X, 3, 7, (*CPU).sre)

	set(0x63, "RRA", INDIRECT_X, 2, 8, (*CPU).rra)
	set(0x67, "RRA", ZERO_PAGE, 2, 5, (*CPU).rra)
	set(0x6F, "RRA", ABSOLUTE, 3, 6, (*CPU).rra)
	set(0x73, "RRA", INDIRECT_Y, 2, 8, (*CPU).rra)
	set(0x77, "RRA", ZERO_PAGE_X, 2, 6, (*CPU).rra)
	set(0x7B, "RRA", ABSOLUTE_Y, 3, 7, (*CPU).rra)
	set(0x7F, "RRA", ABSOLUTE_X, 3, 7, (*CPU).rra)

	// Unofficial NOPs: single-byte implied forms...
	for _, code := range []uint8{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		set(code, "NOP", IMPLICIT, 1, 2, func(*CPU, uint8) {})
	}
	// ...two-byte immediate/zero-page forms (operand fetched, discarded)...
	for _, code := range []uint8{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		set(code, "NOP", IMMEDIATE, 2, 2, (*CPU).nopRead)
	}
	for _, code := range []uint8{0x04, 0x44, 0x64} {
		set(code, "NOP", ZERO_PAGE, 2, 3, (*CPU).nopRead)
	}
	for _, code := range []uint8{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		set(code, "NOP", ZERO_PAGE_X, 2, 4, (*CPU).nopRead)
	}
	// ...and three-byte absolute/absolute,X forms (page-cross penalty
	// applies, since these behave like read instructions).
	set(0x0C, "NOP", ABSOLUTE, 3, 4, (*CPU).nopRead)
	for _, code := range []uint8{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		set(code, "NOP", ABSOLUTE_X, 3, 4, (*CPU).nopRead)
	}

	return t
}
