package mos6502

// Instruction bodies. Each receives the addressing mode it was decoded
// with and is responsible for resolving its own operand via resolve()/
// readOperand() -- the addressing layer stays ignorant of opcode
// semantics and vice versa. Read-class instructions that can land on an
// indexed address add the page-cross penalty themselves; store and RMW
// instructions never do, since their listed cycle cost already covers
// the worst case.

func (c *CPU) adc(mode uint8) {
	v, o := c.readOperand(mode)
	c.addPageCrossPenalty(o)
	c.addWithCarry(v)
}

func (c *CPU) sbc(mode uint8) {
	v, o := c.readOperand(mode)
	c.addPageCrossPenalty(o)
	c.addWithCarry(v ^ 0xFF)
}

// addWithCarry implements both ADC and SBC (SBC is ADC of the
// one's-complemented operand), including the binary-mode overflow rule.
// The 2A03 has no decimal mode, so D is tracked as a flag but never
// changes this arithmetic.
func (c *CPU) addWithCarry(v uint8) {
	carry := uint16(0)
	if c.flagSet(STATUS_FLAG_CARRY) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(v) + carry
	result := uint8(sum)

	c.setFlag(STATUS_FLAG_CARRY, sum > 0xFF)
	c.setFlag(STATUS_FLAG_OVERFLOW, (c.A^result)&(v^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) and(mode uint8) {
	v, o := c.readOperand(mode)
	c.addPageCrossPenalty(o)
	c.A &= v
	c.setZN(c.A)
}

func (c *CPU) ora(mode uint8) {
	v, o := c.readOperand(mode)
	c.addPageCrossPenalty(o)
	c.A |= v
	c.setZN(c.A)
}

func (c *CPU) eor(mode uint8) {
	v, o := c.readOperand(mode)
	c.addPageCrossPenalty(o)
	c.A ^= v
	c.setZN(c.A)
}

func (c *CPU) asl(mode uint8) {
	v, o := c.readOperand(mode)
	c.setFlag(STATUS_FLAG_CARRY, v&0x80 != 0)
	result := v << 1
	c.storeResult(mode, o, result)
	c.setZN(result)
}

func (c *CPU) lsr(mode uint8) {
	v, o := c.readOperand(mode)
	c.setFlag(STATUS_FLAG_CARRY, v&0x01 != 0)
	result := v >> 1
	c.storeResult(mode, o, result)
	c.setZN(result)
}

func (c *CPU) rol(mode uint8) {
	v, o := c.readOperand(mode)
	oldCarry := uint8(0)
	if c.flagSet(STATUS_FLAG_CARRY) {
		oldCarry = 1
	}
	c.setFlag(STATUS_FLAG_CARRY, v&0x80 != 0)
	result := v<<1 | oldCarry
	c.storeResult(mode, o, result)
	c.setZN(result)
}

func (c *CPU) ror(mode uint8) {
	v, o := c.readOperand(mode)
	oldCarry := uint8(0)
	if c.flagSet(STATUS_FLAG_CARRY) {
		oldCarry = 0x80
	}
	c.setFlag(STATUS_FLAG_CARRY, v&0x01 != 0)
	result := v>>1 | oldCarry
	c.storeResult(mode, o, result)
	c.setZN(result)
}

// storeResult writes an RMW instruction's result back to the accumulator
// or to memory depending on mode.
func (c *CPU) storeResult(mode uint8, o operand, v uint8) {
	if mode == ACCUMULATOR {
		c.A = v
		return
	}
	c.Write(o.addr, v)
}

func (c *CPU) bit(mode uint8) {
	v, _ := c.readOperand(mode)
	c.setFlag(STATUS_FLAG_ZERO, c.A&v == 0)
	c.setFlag(STATUS_FLAG_OVERFLOW, v&0x40 != 0)
	c.setFlag(STATUS_FLAG_NEGATIVE, v&0x80 != 0)
}

func (c *CPU) branch(mode uint8, cond bool) {
	o := c.resolve(mode)
	if !cond {
		return
	}
	from := c.PC + 1 // address of the next instruction if untaken
	c.extraCycles++
	if pageCrossed(from, o.addr) {
		c.extraCycles++
	}
	c.PC = o.addr
}

func (c *CPU) bcc(mode uint8) { c.branch(mode, !c.flagSet(STATUS_FLAG_CARRY)) }
func (c *CPU) bcs(mode uint8) { c.branch(mode, c.flagSet(STATUS_FLAG_CARRY)) }
func (c *CPU) beq(mode uint8) { c.branch(mode, c.flagSet(STATUS_FLAG_ZERO)) }
func (c *CPU) bne(mode uint8) { c.branch(mode, !c.flagSet(STATUS_FLAG_ZERO)) }
func (c *CPU) bmi(mode uint8) { c.branch(mode, c.flagSet(STATUS_FLAG_NEGATIVE)) }
func (c *CPU) bpl(mode uint8) { c.branch(mode, !c.flagSet(STATUS_FLAG_NEGATIVE)) }
func (c *CPU) bvs(mode uint8) { c.branch(mode, c.flagSet(STATUS_FLAG_OVERFLOW)) }
func (c *CPU) bvc(mode uint8) { c.branch(mode, !c.flagSet(STATUS_FLAG_OVERFLOW)) }

func (c *CPU) jmp(mode uint8) {
	o := c.resolve(mode)
	c.PC = o.addr
}

func (c *CPU) jsr(mode uint8) {
	o := c.resolve(mode)
	// JSR pushes the address of the last byte of itself, not the next
	// instruction -- RTS adds one back.
	c.pushAddress(c.PC + 1)
	c.PC = o.addr
}

func (c *CPU) rts(uint8) {
	c.PC = c.popAddress() + 1
}

func (c *CPU) rti(uint8) {
	c.P = (c.pop() | UNUSED_STATUS_FLAG) &^ STATUS_FLAG_BREAK
	c.PC = c.popAddress()
}

func (c *CPU) brk(uint8) {
	c.pushAddress(c.PC + 1)
	c.push(c.P | UNUSED_STATUS_FLAG | STATUS_FLAG_BREAK)
	c.flagsOn(STATUS_FLAG_INTERRUPT_DISABLE)
	c.PC = c.Read16(INT_BRK)
}

func (c *CPU) compare(reg uint8, mode uint8) {
	v, o := c.readOperand(mode)
	c.addPageCrossPenalty(o)
	result := reg - v
	c.setFlag(STATUS_FLAG_CARRY, reg >= v)
	c.setZN(result)
}

func (c *CPU) cmp(mode uint8) { c.compare(c.A, mode) }
func (c *CPU) cpx(mode uint8) { c.compare(c.X, mode) }
func (c *CPU) cpy(mode uint8) { c.compare(c.Y, mode) }

func (c *CPU) dec(mode uint8) {
	v, o := c.readOperand(mode)
	result := v - 1
	c.Write(o.addr, result)
	c.setZN(result)
}

func (c *CPU) inc(mode uint8) {
	v, o := c.readOperand(mode)
	result := v + 1
	c.Write(o.addr, result)
	c.setZN(result)
}

func (c *CPU) dex(uint8) { c.X--; c.setZN(c.X) }
func (c *CPU) dey(uint8) { c.Y--; c.setZN(c.Y) }
func (c *CPU) inx(uint8) { c.X++; c.setZN(c.X) }
func (c *CPU) iny(uint8) { c.Y++; c.setZN(c.Y) }

func (c *CPU) lda(mode uint8) {
	v, o := c.readOperand(mode)
	c.addPageCrossPenalty(o)
	c.A = v
	c.setZN(c.A)
}

func (c *CPU) ldx(mode uint8) {
	v, o := c.readOperand(mode)
	c.addPageCrossPenalty(o)
	c.X = v
	c.setZN(c.X)
}

func (c *CPU) ldy(mode uint8) {
	v, o := c.readOperand(mode)
	c.addPageCrossPenalty(o)
	c.Y = v
	c.setZN(c.Y)
}

func (c *CPU) sta(mode uint8) {
	o := c.resolve(mode)
	c.Write(o.addr, c.A)
}

func (c *CPU) stx(mode uint8) {
	o := c.resolve(mode)
	c.Write(o.addr, c.X)
}

func (c *CPU) sty(mode uint8) {
	o := c.resolve(mode)
	c.Write(o.addr, c.Y)
}

func (c *CPU) pha(uint8) { c.push(c.A) }
func (c *CPU) php(uint8) { c.push(c.P | UNUSED_STATUS_FLAG | STATUS_FLAG_BREAK) }
func (c *CPU) pla(uint8) { c.A = c.pop(); c.setZN(c.A) }
func (c *CPU) plp(uint8) { c.P = (c.pop() | UNUSED_STATUS_FLAG) &^ STATUS_FLAG_BREAK }

func (c *CPU) tax(uint8) { c.X = c.A; c.setZN(c.X) }
func (c *CPU) tay(uint8) { c.Y = c.A; c.setZN(c.Y) }
func (c *CPU) tsx(uint8) { c.X = c.SP; c.setZN(c.X) }
func (c *CPU) txa(uint8) { c.A = c.X; c.setZN(c.A) }
func (c *CPU) txs(uint8) { c.SP = c.X }
func (c *CPU) tya(uint8) { c.A = c.Y; c.setZN(c.A) }

// nopRead backs the unofficial NOPs that still fetch (and discard) an
// operand -- they incur the same page-cross penalty as a real load.
func (c *CPU) nopRead(mode uint8) {
	_, o := c.readOperand(mode)
	c.addPageCrossPenalty(o)
}

// Documented-unofficial combination opcodes. Each has the combined
// effect of the official instructions it fuses; the read-modify-write
// step is written out inline, and ISC and RRA finish through
// addWithCarry, the same arithmetic ADC and SBC use.

func (c *CPU) lax(mode uint8) {
	v, o := c.readOperand(mode)
	c.addPageCrossPenalty(o)
	c.A = v
	c.X = v
	c.setZN(v)
}

func (c *CPU) sax(mode uint8) {
	o := c.resolve(mode)
	c.Write(o.addr, c.A&c.X)
}

func (c *CPU) dcp(mode uint8) {
	o := c.resolve(mode)
	v := c.Read(o.addr) - 1
	c.Write(o.addr, v)
	c.setFlag(STATUS_FLAG_CARRY, c.A >= v)
	c.setZN(c.A - v)
}

func (c *CPU) isc(mode uint8) {
	o := c.resolve(mode)
	v := c.Read(o.addr) + 1
	c.Write(o.addr, v)
	c.addWithCarry(v ^ 0xFF)
}

func (c *CPU) slo(mode uint8) {
	o := c.resolve(mode)
	v := c.Read(o.addr)
	c.setFlag(STATUS_FLAG_CARRY, v&0x80 != 0)
	v <<= 1
	c.Write(o.addr, v)
	c.A |= v
	c.setZN(c.A)
}

func (c *CPU) rla(mode uint8) {
	o := c.resolve(mode)
	v := c.Read(o.addr)
	oldCarry := uint8(0)
	if c.flagSet(STATUS_FLAG_CARRY) {
		oldCarry = 1
	}
	c.setFlag(STATUS_FLAG_CARRY, v&0x80 != 0)
	v = v<<1 | oldCarry
	c.Write(o.addr, v)
	c.A &= v
	c.setZN(c.A)
}

func (c *CPU) sre(mode uint8) {
	o := c.resolve(mode)
	v := c.Read(o.addr)
	c.setFlag(STATUS_FLAG_CARRY, v&0x01 != 0)
	v >>= 1
	c.Write(o.addr, v)
	c.A ^= v
	c.setZN(c.A)
}

func (c *CPU) rra(mode uint8) {
	o := c.resolve(mode)
	v := c.Read(o.addr)
	oldCarry := uint8(0)
	if c.flagSet(STATUS_FLAG_CARRY) {
		oldCarry = 0x80
	}
	c.setFlag(STATUS_FLAG_CARRY, v&0x01 != 0)
	v = v>>1 | oldCarry
	c.Write(o.addr, v)
	c.addWithCarry(v)
}
