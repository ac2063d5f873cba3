package mappers

import (
	"math"

	"github.com/arkvane/nescore/nesrom"
)

// DummyMapper is a flat 64KB address space usable as a Mapper in tests
// that don't care about real bank switching.
type DummyMapper struct {
	memory []uint8
	MM     uint8 // mirroring mode; tests can set as needed
}

func NewDummyMapper() *DummyMapper {
	return &DummyMapper{memory: make([]uint8, math.MaxUint16+1)}
}

func (dm *DummyMapper) ID() uint16 { return 0 }

func (dm *DummyMapper) Init(r *nesrom.ROM) {}

func (dm *DummyMapper) Name() string { return "dummy mapper" }

func (dm *DummyMapper) PrgRead(addr uint16) uint8 { return dm.memory[addr] }

func (dm *DummyMapper) PrgWrite(addr uint16, val uint8) { dm.memory[addr] = val }

func (dm *DummyMapper) ChrRead(addr uint16) uint8 { return dm.memory[addr] }

func (dm *DummyMapper) ChrWrite(addr uint16, val uint8) { dm.memory[addr] = val }

func (dm *DummyMapper) MirroringMode() uint8 { return dm.MM }

func (dm *DummyMapper) HasSaveRAM() bool { return true }

// Dummy is a package-level instance kept for callers that just need a
// Mapper and don't need isolated state.
var Dummy = NewDummyMapper()
