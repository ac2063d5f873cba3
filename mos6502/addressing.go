package mos6502

// Addressing modes, named and ordered to match nesdev's addressing mode
// section 4.3.
const (
	IMPLICIT = iota
	ACCUMULATOR
	IMMEDIATE
	ZERO_PAGE
	ZERO_PAGE_X
	ZERO_PAGE_Y
	RELATIVE
	ABSOLUTE
	ABSOLUTE_X
	ABSOLUTE_Y
	INDIRECT
	INDIRECT_X // Indexed Indirect: (zp,X)
	INDIRECT_Y // Indirect Indexed: (zp),Y
)

// operand resolves the addressing mode rooted at the byte(s) immediately
// following the opcode (c.PC at the time of the call) into an effective
// address, whether that address crosses a page boundary relative to its
// un-indexed base, and -- for Immediate -- the address to read the literal
// value from (same as addr for Immediate, since the operand IS the byte).
//
// This is the single place addressing-mode quirks live, shared by every
// instruction body and by Trace()'s disassembly.
type operand struct {
	addr        uint16
	pageCrossed bool
}

func (c *CPU) resolve(mode uint8) operand {
	switch mode {
	case IMMEDIATE:
		return operand{addr: c.PC}
	case ZERO_PAGE:
		return operand{addr: uint16(c.Read(c.PC))}
	case ZERO_PAGE_X:
		return operand{addr: uint16(c.Read(c.PC)+c.X) & 0xFF}
	case ZERO_PAGE_Y:
		return operand{addr: uint16(c.Read(c.PC)+c.Y) & 0xFF}
	case ABSOLUTE:
		return operand{addr: c.Read16(c.PC)}
	case ABSOLUTE_X:
		base := c.Read16(c.PC)
		addr := base + uint16(c.X)
		return operand{addr: addr, pageCrossed: pageCrossed(base, addr)}
	case ABSOLUTE_Y:
		base := c.Read16(c.PC)
		addr := base + uint16(c.Y)
		return operand{addr: addr, pageCrossed: pageCrossed(base, addr)}
	case INDIRECT:
		return operand{addr: c.resolveIndirect(c.Read16(c.PC))}
	case INDIRECT_X:
		ptr := uint16(c.Read(c.PC) + c.X)
		addr := uint16(c.Read(ptr&0xFF)) | uint16(c.Read((ptr+1)&0xFF))<<8
		return operand{addr: addr}
	case INDIRECT_Y:
		zp := uint16(c.Read(c.PC))
		base := uint16(c.Read(zp)) | uint16(c.Read((zp+1)&0xFF))<<8
		addr := base + uint16(c.Y)
		return operand{addr: addr, pageCrossed: pageCrossed(base, addr)}
	case RELATIVE:
		// PC here points at the one-byte signed offset; the target
		// is relative to the address of the byte *after* it.
		offset := int8(c.Read(c.PC))
		return operand{addr: uint16(int32(c.PC+1) + int32(offset))}
	default:
		panic("mos6502: resolve called with an addressing mode that takes no operand")
	}
}

// resolveIndirect implements JMP's indirect addressing, including the
// infamous page-wrap bug: when the low byte of the pointer is 0xFF, the
// high byte of the target is fetched from the start of the SAME page
// rather than the next one.
func (c *CPU) resolveIndirect(ptr uint16) uint16 {
	lo := uint16(c.Read(ptr))
	var hiAddr uint16
	if ptr&0xFF == 0xFF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hi := uint16(c.Read(hiAddr))
	return hi<<8 | lo
}

// readOperand loads the operand's value for mode: the accumulator itself for
// ACCUMULATOR mode, else the byte at the resolved address.
func (c *CPU) readOperand(mode uint8) (uint8, operand) {
	if mode == ACCUMULATOR {
		return c.A, operand{}
	}
	o := c.resolve(mode)
	return c.Read(o.addr), o
}

// addPageCrossPenalty adds the +1 cycle read-class indexed-addressing
// penalty for this instruction if o crossed a page. RMW and store
// instructions never call this -- their fixed cycle count already
// reflects the worst case.
func (c *CPU) addPageCrossPenalty(o operand) {
	if o.pageCrossed {
		c.extraCycles++
	}
}
