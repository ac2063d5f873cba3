package nesrom

import (
	"reflect"
	"testing"
)

func TestParseHeader(t *testing.T) {
	cases := []struct {
		bytes      []byte
		wantHeader *header
	}{
		{
			[]byte{0x4e, 0x45, 0x53, 0x1a, 0x02, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
			&header{constant: "NES\x1a", prgSize: 2, chrSize: 1, flags6: 1},
		},
	}
	for i, tc := range cases {
		h, err := parseHeader(tc.bytes)
		if err != nil {
			t.Fatalf("%d: parseHeader: %v", i, err)
		}
		if !reflect.DeepEqual(h, tc.wantHeader) {
			t.Errorf("%d: Got %+v, wanted %+v", i, h, tc.wantHeader)
		}
	}
}

func TestParseHeaderRejectsBadSignature(t *testing.T) {
	bytes := make([]byte, 16)
	copy(bytes, "BOB\x1a")
	if _, err := parseHeader(bytes); err == nil {
		t.Fatal("expected a HeaderError for a bad signature")
	}
}

func TestNES2Format(t *testing.T) {
	h := &header{}
	cases := []struct {
		constant           string
		flags7             uint8
		wantINES, wantNES2 bool
	}{
		{"NES\x1A", 0x08, true, true},
		{"NES\x1A", 0x0C, true, false},
		{"BOB\x1A", 0x10, false, false},
		{"BOB\x1A", 0x04, false, false},
		{"BOB\x1A", 0x08, false, false},
	}

	for i, tc := range cases {
		h.constant = tc.constant
		h.flags7 = tc.flags7
		if got := h.isINesFormat(); got != tc.wantINES {
			t.Errorf("%d: isINesFormat() = %v, want %v", i, got, tc.wantINES)
		}
		if got := h.isNES2Format(); got != tc.wantNES2 {
			t.Errorf("%d: isNES2Format() = %v, want %v", i, got, tc.wantNES2)
		}
	}
}

func TestMirroringMode(t *testing.T) {
	cases := []struct {
		flags6 uint8
		want   uint8
	}{
		{0x00, MIRROR_HORIZONTAL},
		{0x01, MIRROR_VERTICAL},
		{IGNORE_MIRRORING, MIRROR_FOUR_SCREEN},
		{IGNORE_MIRRORING | 0x01, MIRROR_FOUR_SCREEN},
	}
	for i, tc := range cases {
		h := &header{flags6: tc.flags6}
		if got := h.mirroringMode(); got != tc.want {
			t.Errorf("%d: mirroringMode() = %d, want %d", i, got, tc.want)
		}
	}
}

func TestMapperNum(t *testing.T) {
	cases := []struct {
		flags6, flags7 uint8
		want           uint16
	}{
		{0x10, 0x00, 1},  // low nibble only, from flags6
		{0x00, 0x10, 16}, // high nibble contributes when trailing bytes are zero
		{0xA0, 0x40, 74}, // 0x4|0xA -> 0x4A = 74
	}
	for i, tc := range cases {
		h := &header{flags6: tc.flags6, flags7: tc.flags7}
		if got := h.mapperNum(); got != tc.want {
			t.Errorf("%d: mapperNum() = %d, want %d", i, got, tc.want)
		}
	}
}

func TestIgnoreHighNibbleWhenTrailingBytesNonzero(t *testing.T) {
	h := &header{flags7: 0x00, flags11: 'D'}
	if !h.ignoreHighNibble() {
		t.Error("expected ignoreHighNibble true when trailing bytes carry ripper text")
	}

	h2 := &header{constant: "NES\x1A", flags7: 0x08, flags11: 'D'} // NES 2.0 header keeps the high nibble
	if h2.ignoreHighNibble() {
		t.Error("expected ignoreHighNibble false for a NES2.0 header")
	}
}
