package ppu

import "testing"

func TestScrollRegFieldExtraction(t *testing.T) {
	cases := []struct {
		data                     uint16
		wantCoarseX, wantCoarseY uint16
		wantFineY                uint16
	}{
		{0b0000_0000_0000_0000, 0, 0, 0},
		{0b0111_1011_1001_1000, 0b11000, 0b11100, 0b111},
		{0b0011_0111_1001_0111, 0b10111, 0b11100, 0b011},
		{0b0011_0011_1011_0111, 0b10111, 0b11101, 0b011},
	}
	for i, tc := range cases {
		s := &scrollReg{tc.data}
		if cx, cy, fy := s.coarseX(), s.coarseY(), s.fineY(); cx != tc.wantCoarseX || cy != tc.wantCoarseY || fy != tc.wantFineY {
			t.Errorf("%d: got coarseX=%05b coarseY=%05b fineY=%03b, want %05b %05b %03b",
				i, cx, cy, fy, tc.wantCoarseX, tc.wantCoarseY, tc.wantFineY)
		}
	}
}

func TestIncrementCoarseXWithinRow(t *testing.T) {
	s := &scrollReg{0b0000_0100_0000_1100} // coarseX=12, nametableX=1
	s.incrementCoarseX()
	if got := s.coarseX(); got != 13 {
		t.Fatalf("coarseX = %d, want 13", got)
	}
	if got := (s.data & 0x0400) >> 10; got != 1 {
		t.Fatalf("nametable select bit flipped on a plain increment: got %d", got)
	}
}

func TestIncrementCoarseXWrapsAndFlipsNametable(t *testing.T) {
	s := &scrollReg{0b0000_0000_0001_1111} // coarseX=31, nametableX=0
	s.incrementCoarseX()
	if got := s.coarseX(); got != 0 {
		t.Fatalf("coarseX after wrap = %d, want 0", got)
	}
	if got := (s.data & 0x0400) >> 10; got != 1 {
		t.Fatalf("nametable select bit = %d, want 1 after wrap", got)
	}
	// Wrapping a second time should flip it back rather than carry
	// into coarse Y.
	s.data |= 0x001F
	s.incrementCoarseX()
	if got := (s.data & 0x0400) >> 10; got != 0 {
		t.Fatalf("nametable select bit = %d, want 0 after second wrap", got)
	}
	if got := s.coarseY(); got != 0 {
		t.Fatalf("coarseY = %d, want 0 (wrap must not carry into coarse Y)", got)
	}
}

func TestIncrementFineYWithinTile(t *testing.T) {
	s := &scrollReg{0b0010_0000_0000_0000} // fineY=2
	s.incrementFineY()
	if got := s.fineY(); got != 3 {
		t.Fatalf("fineY = %d, want 3", got)
	}
}

func TestIncrementFineYCarriesIntoCoarseY(t *testing.T) {
	s := &scrollReg{0b0111_0000_0110_0000} // fineY=7, coarseY=3
	s.incrementFineY()
	if got := s.fineY(); got != 0 {
		t.Fatalf("fineY after carry = %d, want 0", got)
	}
	if got := s.coarseY(); got != 4 {
		t.Fatalf("coarseY after carry = %d, want 4", got)
	}
}

func TestIncrementFineYWrapsAtRow29AndFlipsNametable(t *testing.T) {
	s := &scrollReg{0}
	s.data = 0x7000 | (29 << 5) // fineY=7, coarseY=29
	s.incrementFineY()
	if got := s.coarseY(); got != 0 {
		t.Fatalf("coarseY after row-29 wrap = %d, want 0", got)
	}
	if got := (s.data & 0x0800) >> 11; got != 1 {
		t.Fatalf("vertical nametable select = %d, want 1 after row-29 wrap", got)
	}
}

func TestIncrementFineYAtRow31WrapsWithoutFlippingNametable(t *testing.T) {
	s := &scrollReg{0x7000 | 0x0800 | (31 << 5)} // fineY=7, coarseY=31, nametableY=1
	before := s.data & 0x0800
	s.incrementFineY()
	if got := s.coarseY(); got != 0 {
		t.Fatalf("coarseY after row-31 wrap = %d, want 0", got)
	}
	if got := s.data & 0x0800; got != before {
		t.Fatalf("vertical nametable select changed on a row-31 wrap: got %d, want unchanged %d", got, before)
	}
}
