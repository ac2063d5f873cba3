package mappers

import (
	"bytes"
	"testing"

	"github.com/arkvane/nescore/nesrom"
)

func loadROM(t *testing.T, prgBanks, chrBanks byte) *nesrom.ROM {
	t.Helper()
	var buf bytes.Buffer
	h := make([]byte, nesrom.HEADER_SIZE)
	copy(h, "NES\x1a")
	h[4] = prgBanks
	h[5] = chrBanks
	buf.Write(h)
	prg := make([]byte, int(prgBanks)*nesrom.PRG_BLOCK_SIZE)
	if len(prg) > 0 {
		prg[0] = 0xAA
		prg[len(prg)-1] = 0xBB
	}
	buf.Write(prg)
	buf.Write(make([]byte, int(chrBanks)*nesrom.CHR_BLOCK_SIZE))

	rom, err := nesrom.Load(&buf)
	if err != nil {
		t.Fatalf("nesrom.Load: %v", err)
	}
	return rom
}

func TestNROM128MirrorsBank(t *testing.T) {
	rom := loadROM(t, 1, 1)
	m, err := Get(rom)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got := m.PrgRead(0x0000); got != 0xAA {
		t.Errorf("PrgRead($8000) = %#02x, want 0xAA", got)
	}
	if got := m.PrgRead(0x7FFF); got != 0xBB {
		t.Errorf("PrgRead($FFFF) = %#02x, want 0xBB", got)
	}
	// NROM-128: $C000-$FFFF mirrors $8000-$BFFF.
	if got := m.PrgRead(0x4000); got != m.PrgRead(0x0000) {
		t.Errorf("NROM-128 should mirror its single 16KB bank at $C000")
	}
}

func TestNROM256DoesNotMirror(t *testing.T) {
	rom := loadROM(t, 2, 1)
	m, err := Get(rom)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got := m.PrgRead(0x7FFF); got != 0xBB {
		t.Errorf("PrgRead($FFFF) = %#02x, want 0xBB", got)
	}
}

func TestChrRAMUsedWhenNoChrBanks(t *testing.T) {
	rom := loadROM(t, 1, 0)
	m, err := Get(rom)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	m.ChrWrite(0x0010, 0x42)
	if got := m.ChrRead(0x0010); got != 0x42 {
		t.Errorf("ChrRead after ChrWrite = %#02x, want 0x42", got)
	}
}

func TestGetUnsupportedMapper(t *testing.T) {
	var buf bytes.Buffer
	h := make([]byte, nesrom.HEADER_SIZE)
	copy(h, "NES\x1a")
	h[4], h[5] = 1, 1
	h[6], h[7] = 0xF0, 0xF0 // mapper id 255, never registered
	buf.Write(h)
	buf.Write(make([]byte, nesrom.PRG_BLOCK_SIZE))
	buf.Write(make([]byte, nesrom.CHR_BLOCK_SIZE))

	rom, err := nesrom.Load(&buf)
	if err != nil {
		t.Fatalf("nesrom.Load: %v", err)
	}
	if _, err := Get(rom); err == nil {
		t.Fatal("expected UnsupportedError for an unregistered mapper id")
	}
}
