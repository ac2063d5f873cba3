// Package mos6502 implements the Ricoh 2A03's 6502-derived CPU core: the
// official and documented-unofficial opcode set, addressing-mode
// resolution, status-flag semantics and cycle accounting.
// https://www.nesdev.org/obelisk-6502-guide/reference.html
package mos6502

import (
	"fmt"
)

// 6502 Processor Status Flags
// https://www.nesdev.org/obelisk-6502-guide/registers.html
const (
	STATUS_FLAG_CARRY             = 1 << 0 // C
	STATUS_FLAG_ZERO              = 1 << 1 // Z
	STATUS_FLAG_INTERRUPT_DISABLE = 1 << 2 // I
	STATUS_FLAG_DECIMAL           = 1 << 3 // D - honored as a flag; arithmetic ignores it
	STATUS_FLAG_BREAK             = 1 << 4 // B
	UNUSED_STATUS_FLAG            = 1 << 5 // always reads as 1
	STATUS_FLAG_OVERFLOW          = 1 << 6 // V
	STATUS_FLAG_NEGATIVE          = 1 << 7 // N
)

// 6502 Interrupt Vectors
// https://en.wikipedia.org/wiki/Interrupts_in_65xx_processors
const (
	INT_NMI   = 0xFFFA
	INT_RESET = 0xFFFC
	INT_IRQ   = 0xFFFE
	INT_BRK   = INT_IRQ
)

const STACK_PAGE = 0x0100

// Power-on register values.
// https://www.nesdev.org/wiki/CPU_power_up_state
const (
	powerOnSP     = 0xFD
	powerOnStatus = UNUSED_STATUS_FLAG | STATUS_FLAG_INTERRUPT_DISABLE
)

// Bus is the CPU's view of the rest of the machine. console.Bus implements
// it; resolve() and the instruction bodies never see anything else.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
}

// JamError reports that the CPU decoded one of the 6502's undocumented
// "jam" opcodes (or an unofficial opcode this core doesn't implement).
// Real hardware locks up; this core treats it as fatal, per spec.
type JamError struct {
	PC     uint16
	Opcode uint8
}

func (e *JamError) Error() string {
	return fmt.Sprintf("jam opcode 0x%02x at PC=0x%04x", e.Opcode, e.PC)
}

// CPU holds all the architectural state of a single 2A03 core: the
// registers plus the bus handle used to
// resolve every addressing mode and to fetch/store operands.
type CPU struct {
	A, X, Y uint8
	P       uint8
	SP      uint8
	PC      uint16

	bus Bus

	// Cycles is the running total of CPU cycles since Reset, including
	// NMI entry. The orchestrator advances the PPU by Step's return
	// value, not by this counter.
	Cycles uint64

	// extraCycles accumulates page-crossing/branch/DMA penalties
	// during the execution of the in-flight instruction; Step() folds
	// it into the returned cycle count and into Cycles.
	extraCycles int

	// last holds a snapshot of registers taken before the
	// currently-executing instruction runs, used by Trace().
	last snapshot
}

type snapshot struct {
	pc             uint16
	a, x, y, p, sp uint8
	opcode         uint8
	op1, op2       uint8
	nbytes         uint8
}

// New constructs a CPU wired to bus and puts it in its post-reset state.
func New(bus Bus) *CPU {
	c := &CPU{bus: bus}
	c.Reset()
	return c
}

// Reset puts the CPU in its documented power-up/reset state: A, X, Y
// zeroed, P = 0x24, SP = 0xFD, PC loaded from the reset vector.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.P = powerOnStatus
	c.SP = powerOnSP
	c.PC = c.Read16(INT_RESET)
	c.Cycles = 0
}

// Read reads a single byte through the bus.
func (c *CPU) Read(addr uint16) uint8 {
	return c.bus.Read(addr)
}

// Write writes a single byte through the bus.
func (c *CPU) Write(addr uint16, val uint8) {
	c.bus.Write(addr, val)
}

// Read16 reads two bytes little-endian through the bus. Per
// section 4.2, this is never used for indirect-JMP resolution, which
// must reproduce the page-wrap bug instead (see resolveIndirect).
func (c *CPU) Read16(addr uint16) uint16 {
	lo := uint16(c.Read(addr))
	hi := uint16(c.Read(addr + 1))
	return hi<<8 | lo
}

func (c *CPU) stackAddr() uint16 {
	return STACK_PAGE | uint16(c.SP)
}

// StackAddr exposes the current top-of-stack address, $0100 | SP.
func (c *CPU) StackAddr() uint16 {
	return c.stackAddr()
}

func (c *CPU) push(val uint8) {
	c.Write(c.stackAddr(), val)
	c.SP--
}

func (c *CPU) pop() uint8 {
	c.SP++
	return c.Read(c.stackAddr())
}

func (c *CPU) pushAddress(addr uint16) {
	c.push(uint8(addr >> 8))
	c.push(uint8(addr & 0xFF))
}

func (c *CPU) popAddress() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}

func (c *CPU) flagsOn(mask uint8) {
	c.P |= mask
}

func (c *CPU) flagsOff(mask uint8) {
	c.P &^= mask
}

func (c *CPU) setFlag(mask uint8, on bool) {
	if on {
		c.flagsOn(mask)
	} else {
		c.flagsOff(mask)
	}
}

func (c *CPU) flagSet(mask uint8) bool {
	return c.P&mask != 0
}

// setZN updates the Z and N flags from the 8-bit result v; nearly every
// instruction in the set ends by calling this.
func (c *CPU) setZN(v uint8) {
	c.setFlag(STATUS_FLAG_ZERO, v == 0)
	c.setFlag(STATUS_FLAG_NEGATIVE, v&0x80 != 0)
}

// pageCrossed reports whether addr1 and addr2 fall on different 256-byte
// pages, the condition that triggers the +1 cycle penalty on read-class
// indexed addressing and on taken branches.
func pageCrossed(addr1, addr2 uint16) bool {
	return addr1&0xFF00 != addr2&0xFF00
}

// Step fetches, decodes and executes a single instruction, returning the
// total number of CPU cycles it consumed (base cost plus any
// page-crossing, branch or DMA penalty). A JamError is returned, with the
// instruction still "executed" for accounting purposes, when the decoded
// opcode is one of the 6502's undocumented jam/halt bytes.
func (c *CPU) Step() (int, error) {
	opcodePC := c.PC
	opByte := c.Read(c.PC)
	op := opcodeTable[opByte]

	c.last = snapshot{pc: opcodePC, a: c.A, x: c.X, y: c.Y, p: c.P, sp: c.SP, opcode: opByte, nbytes: op.bytes}
	if op.bytes >= 2 {
		c.last.op1 = c.Read(opcodePC + 1)
	}
	if op.bytes >= 3 {
		c.last.op2 = c.Read(opcodePC + 2)
	}

	c.PC++
	c.extraCycles = 0

	if op.illegal {
		c.Cycles += uint64(op.cycles)
		return op.cycles, &JamError{PC: opcodePC, Opcode: opByte}
	}

	operandPC := c.PC
	op.exec(c, op.mode)

	// If the instruction didn't itself redirect the PC (branch taken,
	// JMP, JSR, RTS, RTI, BRK), advance past the operand bytes it
	// consumed.
	if c.PC == operandPC {
		c.PC += uint16(op.bytes) - 1
	}

	total := op.cycles + c.extraCycles
	c.Cycles += uint64(total)
	return total, nil
}

// NMI services a non-maskable interrupt: push PC then P (B clear, U set),
// set I, load PC from the NMI vector. Costs 7 cycles.
func (c *CPU) NMI() int {
	c.pushAddress(c.PC)
	c.push((c.P | UNUSED_STATUS_FLAG) &^ STATUS_FLAG_BREAK)
	c.flagsOn(STATUS_FLAG_INTERRUPT_DISABLE)
	c.PC = c.Read16(INT_NMI)
	c.Cycles += 7
	return 7
}

// AddDMACycles accounts for an OAM DMA transfer triggered by a write to
// $4014; console.Bus calls this once the 256-byte copy is performed,
// from inside the STA/write instruction body that's still executing.
// Folding the stall into extraCycles, rather than bumping Cycles
// directly, means Step() includes it in the total it returns, so the
// orchestrator advances the PPU by the DMA's stalled dots too instead
// of only accounting for them in the running Cycles counter.
func (c *CPU) AddDMACycles(n int) {
	c.extraCycles += n
}
