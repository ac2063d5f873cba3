package ppu

import "testing"

func TestDecodeSprite(t *testing.T) {
	e := decodeSprite([]uint8{0x3F, 0x12, 0b1010_0001, 0x80})
	if e.y != 0x3F {
		t.Errorf("y = %#02x, want 0x3f", e.y)
	}
	if e.tile != 0x12 {
		t.Errorf("tile = %#02x, want 0x12", e.tile)
	}
	if e.attr != 0b1010_0001 {
		t.Errorf("attr = %08b, want %08b", e.attr, 0b1010_0001)
	}
	if e.x != 0x80 {
		t.Errorf("x = %#02x, want 0x80", e.x)
	}
}

func TestDecodeSpriteReadsOnlyFirstFourBytes(t *testing.T) {
	e := decodeSprite([]uint8{0x01, 0x02, 0x03, 0x04, 0xFF, 0xFF})
	want := spriteEntry{y: 0x01, tile: 0x02, attr: 0x03, x: 0x04}
	if e != want {
		t.Errorf("decodeSprite = %+v, want %+v", e, want)
	}
}
