// Package console wires the CPU, PPU and cartridge mapper together into
// a running machine: the shared address bus each chip sees, and the
// orchestrator loop that steps them in lockstep.
package console

import (
	"math"

	"github.com/arkvane/nescore/mappers"
	"github.com/arkvane/nescore/mos6502"
	"github.com/arkvane/nescore/ppu"
)

const (
	NES_BASE_MEMORY = 0x800 // 2KB built-in RAM

	MAX_ADDRESS          = math.MaxUint16
	MAX_NES_BASE_RAM     = 0x1FFF
	MAX_PPU_REG_MIRRORED = 0x3FFF
	MAX_IO_REG           = 0x4020
	MAX_EXPANSION_ROM    = 0x5FFF
	MAX_SRAM             = 0x7FFF
	PRG_ROM_BASE         = 0x8000
)

const OAMDMA = 0x4014 // triggers a 256-byte DMA transfer into OAM

// Bus is the CPU's view of NES memory: 2KB of work RAM mirrored four
// times, PPU registers mirrored every 8 bytes through $3FFF, the APU/IO
// page, cartridge SRAM, and the mapper's PRG ROM window.
// https://www.nesdev.org/wiki/CPU_memory_map
type Bus struct {
	cpu    *mos6502.CPU
	ppu    *ppu.PPU
	mapper mappers.Mapper
	ram    []uint8

	pendingNMI bool
}

// New wires up a Bus around a loaded cartridge. Its CPU and PPU aren't
// usable until the caller drives them via Run or Step.
func New(m mappers.Mapper) *Bus {
	b := &Bus{mapper: m, ram: make([]uint8, NES_BASE_MEMORY)}
	b.cpu = mos6502.New(b)
	b.ppu = ppu.New(b)
	b.ppu.SetMirroring(m.MirroringMode())
	return b
}

func (b *Bus) CPU() *mos6502.CPU { return b.cpu }
func (b *Bus) PPU() *ppu.PPU     { return b.ppu }

func (b *Bus) MirrorMode() uint8 {
	return b.mapper.MirroringMode()
}

// TriggerNMI is called by the PPU when it enters VBlank with NMI
// generation enabled. The orchestrator delivers it to the CPU once the
// in-flight instruction finishes, per the synchronous-NMI design.
func (b *Bus) TriggerNMI() {
	b.pendingNMI = true
}

// TakeNMI reports and clears whether an NMI is waiting to be delivered.
func (b *Bus) TakeNMI() bool {
	v := b.pendingNMI
	b.pendingNMI = false
	return v
}

// ChrRead/ChrWrite give the PPU access to the cartridge's pattern
// tables (CHR ROM or CHR RAM, depending on the board).
func (b *Bus) ChrRead(addr uint16) uint8        { return b.mapper.ChrRead(addr) }
func (b *Bus) ChrWrite(addr uint16, val uint8)  { b.mapper.ChrWrite(addr, val) }

func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= MAX_NES_BASE_RAM:
		return b.ram[addr&0x07FF]
	case addr <= MAX_PPU_REG_MIRRORED:
		return b.ppu.ReadReg(0x2000 + addr%8)
	case addr < MAX_IO_REG:
		// APU and controller ports: out of scope, reads as 0.
		return 0
	case addr <= MAX_EXPANSION_ROM:
		return 0
	case addr <= MAX_SRAM:
		// No NROM board carries cartridge SRAM.
		return 0
	default:
		return b.mapper.PrgRead(addr - PRG_ROM_BASE)
	}
}

func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr <= MAX_NES_BASE_RAM:
		b.ram[addr&0x07FF] = val
	case addr <= MAX_PPU_REG_MIRRORED:
		b.ppu.WriteReg(0x2000+addr%8, val)
	case addr < MAX_IO_REG:
		if addr == OAMDMA {
			b.startDMA(val)
		}
		// APU registers and controller strobe: out of scope, ignored.
	case addr <= MAX_EXPANSION_ROM:
		// Expansion ROM: unused by any mapper this core supports.
	case addr <= MAX_SRAM:
		// Cartridge SRAM: no NROM board carries it.
	default:
		b.mapper.PrgWrite(addr-PRG_ROM_BASE, val)
	}
}

// startDMA performs the 256-byte OAM DMA transfer from page val<<8 and
// accounts for its CPU stall: 513 cycles normally, 514 when it starts
// on an odd CPU cycle. https://www.nesdev.org/wiki/DMA
func (b *Bus) startDMA(page uint8) {
	oddCycle := b.cpu.Cycles%2 != 0
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		b.ppu.WriteOAMByte(b.Read(base + uint16(i)))
	}
	cycles := 513
	if oddCycle {
		cycles = 514
	}
	b.cpu.AddDMACycles(cycles)
}
