package mos6502

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
	"testing"
)

// traceFields are the portion of a nestest.log line this package's Trace
// output can be checked against: PC, raw opcode bytes, and registers.
// nestest's richer operand disassembly and PPU/CYC columns aren't
// reproduced by Trace, so they're ignored by the comparison.
type traceFields struct {
	pc      string
	hexOps  string
	a, x, y string
	p, sp   string
}

var traceLineRE = regexp.MustCompile(
	`^([0-9A-F]{4})\s+([0-9A-F ]{2,8})\s+.*A:([0-9A-F]{2}) X:([0-9A-F]{2}) Y:([0-9A-F]{2}) P:([0-9A-F]{2}) SP:([0-9A-F]{2})`)

func parseTraceLine(line string) (traceFields, error) {
	m := traceLineRE.FindStringSubmatch(line)
	if m == nil {
		return traceFields{}, fmt.Errorf("line doesn't match trace format: %q", line)
	}
	return traceFields{
		pc:     m[1],
		hexOps: strings.TrimRight(m[2], " "),
		a:      m[3], x: m[4], y: m[5], p: m[6], sp: m[7],
	}, nil
}

// compareTraceLine reports an error describing the first field that
// differs between a reference log line and one produced by CPU.Trace.
func compareTraceLine(want, got string) error {
	w, err := parseTraceLine(want)
	if err != nil {
		return fmt.Errorf("reference: %w", err)
	}
	g, err := parseTraceLine(got)
	if err != nil {
		return fmt.Errorf("actual: %w", err)
	}
	switch {
	case w.pc != g.pc:
		return fmt.Errorf("PC: want %s, got %s", w.pc, g.pc)
	case w.hexOps != g.hexOps:
		return fmt.Errorf("opcode bytes: want %q, got %q", w.hexOps, g.hexOps)
	case w.a != g.a:
		return fmt.Errorf("A: want %s, got %s", w.a, g.a)
	case w.x != g.x:
		return fmt.Errorf("X: want %s, got %s", w.x, g.x)
	case w.y != g.y:
		return fmt.Errorf("Y: want %s, got %s", w.y, g.y)
	case w.p != g.p:
		return fmt.Errorf("P: want %s, got %s", w.p, g.p)
	case w.sp != g.sp:
		return fmt.Errorf("SP: want %s, got %s", w.sp, g.sp)
	}
	return nil
}

// TestNestestLog replays nestest.nes against testdata/nestest.log,
// nestest's own automated-mode reference trace. nestest.nes is a
// copyrighted test ROM not distributed with this repository, so the
// test skips when the fixtures aren't present on disk.
func TestNestestLog(t *testing.T) {
	const romPath = "testdata/nestest.nes"
	const logPath = "testdata/nestest.log"
	if _, err := os.Stat(romPath); err != nil {
		t.Skipf("nestest fixtures not present: %v", err)
	}

	bus := &flatBus{}
	rom, err := os.ReadFile(romPath)
	if err != nil {
		t.Fatalf("reading %s: %v", romPath, err)
	}
	// nestest.nes is NROM-128: PRG starts after the 16-byte header and
	// is mirrored into both halves of the cartridge window.
	const headerSize = 16
	const prgSize = 16384
	copy(bus.mem[0x8000:], rom[headerSize:headerSize+prgSize])
	copy(bus.mem[0xC000:], rom[headerSize:headerSize+prgSize])
	// nestest's automated mode starts execution at $C000 rather than
	// the reset vector.
	bus.mem[0xFFFC] = 0x00
	bus.mem[0xFFFD] = 0xC0

	c := New(bus)

	f, err := os.Open(logPath)
	if err != nil {
		t.Fatalf("opening %s: %v", logPath, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		want := sc.Text()
		if _, err := c.Step(); err != nil {
			t.Fatalf("line %d: Step: %v", line, err)
		}
		if err := compareTraceLine(want, c.Trace()); err != nil {
			t.Fatalf("line %d mismatch: %v\n want: %s\n got:  %s", line, err, want, c.Trace())
		}
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scanning %s: %v", logPath, err)
	}
}

// TestCompareTraceLineCatchesFieldMismatches exercises the comparator
// itself against a synthetic program, since the real nestest fixtures
// aren't distributed with this repository.
func TestCompareTraceLineCatchesFieldMismatches(t *testing.T) {
	c, _ := newTestCPU(t, []uint8{0xA9, 0x42, 0xA2, 0x07})

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	got := c.Trace()

	if err := compareTraceLine(got, got); err != nil {
		t.Fatalf("identical lines should compare equal: %v", err)
	}

	bad := "8000  A9 42      LDA #$42                        A:FF X:00 Y:00 P:24 SP:FD"
	if err := compareTraceLine(bad, got); err == nil {
		t.Fatalf("expected mismatch on A register, got nil error")
	}

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	got2 := c.Trace()
	if err := compareTraceLine(got, got2); err == nil {
		t.Fatalf("expected mismatch comparing two different instructions, got nil error")
	}
}
