package mappers

import "github.com/arkvane/nescore/nesrom"

func init() {
	RegisterMapper(0, &mapper0{baseMapper: newBaseMapper(0, "NROM")})
}

// mapper0 implements NROM: https://www.nesdev.org/wiki/NROM
//
// $8000-$BFFF: first 16KB of PRG ROM.
// $C000-$FFFF: last 16KB of PRG ROM, which mirrors $8000-$BFFF on
// NROM-128 boards that carry only a single 16KB bank.
// PRG RAM at $6000-$7FFF is out of scope; no NROM cartridge uses it.
type mapper0 struct {
	*baseMapper
	chrRAM []uint8 // backs CHR access when the cartridge has no CHR ROM
}

func (m *mapper0) Init(r *nesrom.ROM) {
	m.baseMapper.Init(r)
	m.chrRAM = nil
	if r.NumChrBlocks() == 0 {
		m.chrRAM = make([]uint8, nesrom.CHR_BLOCK_SIZE)
	}
}

func (m *mapper0) PrgRead(addr uint16) uint8 {
	if m.rom.NumPrgBlocks() == 1 {
		return m.rom.PrgRead(addr & 0x3FFF)
	}
	return m.rom.PrgRead(addr & 0x7FFF)
}

func (m *mapper0) PrgWrite(addr uint16, val uint8) {
	// NROM PRG ROM is not writable; real hardware ignores the write.
}

func (m *mapper0) ChrRead(addr uint16) uint8 {
	if m.chrRAM != nil {
		return m.chrRAM[addr]
	}
	return m.rom.ChrRead(addr)
}

func (m *mapper0) ChrWrite(addr uint16, val uint8) {
	if m.chrRAM != nil {
		m.chrRAM[addr] = val
	}
}
