package console

import (
	"context"
	"fmt"

	"github.com/arkvane/nescore/mappers"
	"github.com/golang/glog"
)

// System owns a Bus and steps the CPU and PPU together: one CPU
// instruction, then the PPU advanced 3 dots for every CPU cycle that
// instruction consumed, with any NMI the PPU raised along the way
// delivered synchronously once the instruction completes.
type System struct {
	bus *Bus

	// TraceFunc, when non-nil, is called once per Step, after the
	// instruction executes, with the CPU's nestest-style trace line for
	// it (the registers as they were before it ran).
	TraceFunc func(line string)
}

// NewSystem builds a System around a freshly loaded cartridge mapper.
func NewSystem(m mappers.Mapper) *System {
	return &System{bus: New(m)}
}

func (s *System) Bus() *Bus { return s.bus }

// Reset puts the CPU back in its post-reset state.
func (s *System) Reset() {
	s.bus.cpu.Reset()
}

// Step runs exactly one CPU instruction and its matching PPU dots,
// delivering any NMI the PPU raised once the instruction completes.
// It returns the CPU cycle count consumed, or the instruction's error
// (a *mos6502.JamError for an unimplemented opcode).
func (s *System) Step() (int, error) {
	cycles, err := s.bus.cpu.Step()

	if s.TraceFunc != nil {
		s.TraceFunc(s.bus.cpu.Trace())
	}

	s.bus.ppu.Step(cycles * 3)

	if s.bus.TakeNMI() {
		s.bus.cpu.NMI()
	}

	return cycles, err
}

// Run steps the system until ctx is canceled or the CPU hits a jam
// opcode, logging the jam and returning.
func (s *System) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if _, err := s.Step(); err != nil {
			glog.Errorf("cpu halted: %v", err)
			return
		}
	}
}

// RunFrames steps the system for exactly n PPU frames, for headless
// test/benchmark harnesses that don't want a wall-clock-driven Run.
func (s *System) RunFrames(ctx context.Context, n int) error {
	startFrame := s.bus.ppu.FrameCount()
	for s.bus.ppu.FrameCount() < startFrame+uint64(n) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if _, err := s.Step(); err != nil {
			return fmt.Errorf("cpu halted after %d frames: %w", s.bus.ppu.FrameCount()-startFrame, err)
		}
	}
	return nil
}
