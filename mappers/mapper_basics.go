// Package mappers implements and registers mappers that are referenced
// numerically by iNES and NES2.0 ROM files.
package mappers

import (
	"fmt"

	"github.com/arkvane/nescore/nesrom"
)

// allMappers is a global registry keyed by mapper id, populated by each
// mapper's init().
var allMappers = map[uint16]Mapper{}

func RegisterMapper(id uint16, m Mapper) {
	if om, ok := allMappers[id]; ok {
		panic(fmt.Sprintf("mappers: can't re-register mapper id %d, already used by %q", id, om.Name()))
	}
	allMappers[id] = m
}

// UnsupportedError reports that a ROM declares a mapper id this core
// doesn't implement.
type UnsupportedError struct {
	ID uint16
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("mappers: unsupported mapper id %d", e.ID)
}

// Get returns a Mapper initialized against rom, or an UnsupportedError
// if rom declares a mapper id nothing is registered for.
func Get(rom *nesrom.ROM) (Mapper, error) {
	id := rom.MapperNum()
	m, ok := allMappers[id]
	if !ok {
		return nil, &UnsupportedError{ID: id}
	}
	m.Init(rom)
	return m, nil
}

// Mapper abstracts the address-decoding logic a cartridge board glues
// onto the CPU and PPU buses. console.Bus talks to the loaded cartridge
// exclusively through this interface.
type Mapper interface {
	ID() uint16
	Init(*nesrom.ROM)
	Name() string
	PrgRead(uint16) uint8   // Read PRG data, addr relative to $8000
	PrgWrite(uint16, uint8) // Write PRG data (SRAM-backed boards only)
	ChrRead(uint16) uint8   // Read CHR data, addr relative to $0000
	ChrWrite(uint16, uint8) // Write CHR data (CHR-RAM boards only)
	MirroringMode() uint8   // Which mirroring mode nametable data uses
	HasSaveRAM() bool       // Whether the cartridge exposes SRAM at $6000-$7FFF
}

type baseMapper struct {
	id   uint16
	rom  *nesrom.ROM
	name string
}

func newBaseMapper(id uint16, name string) *baseMapper {
	return &baseMapper{id: id, name: name}
}

func (bm *baseMapper) ID() uint16 {
	return bm.id
}

func (bm *baseMapper) String() string {
	return bm.name
}

func (bm *baseMapper) Name() string {
	return bm.name
}

func (bm *baseMapper) Init(r *nesrom.ROM) {
	bm.rom = r
}

func (bm *baseMapper) MirroringMode() uint8 {
	return bm.rom.MirroringMode()
}

func (bm *baseMapper) HasSaveRAM() bool {
	return bm.rom.HasSaveRAM()
}
