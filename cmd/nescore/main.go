// Command nescore loads an iNES ROM and runs it, either in an ebiten
// window or headless for a fixed number of frames.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/arkvane/nescore/console"
	"github.com/arkvane/nescore/display"
	"github.com/arkvane/nescore/mappers"
	"github.com/arkvane/nescore/nesrom"
	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sqweek/dialog"
)

var (
	romFile   = flag.String("rom", "", "Path to an iNES ROM to run. If empty, a file picker is shown.")
	trace     = flag.Bool("trace", false, "Log a nestest-style CPU trace line for every instruction through glog's info log.")
	headless  = flag.Bool("headless", false, "Run without a window, for a fixed number of frames, then exit.")
	numFrames = flag.Int("frames", 60, "Number of frames to run in -headless mode.")
	hud       = flag.Bool("hud", true, "Overlay a frame-counter HUD on the display.")
	scale     = flag.Int("scale", 2, "Window scale factor, applied to the NES's 256x240 resolution.")
)

func pickROM() (string, error) {
	return dialog.File().Filter("iNES ROM", "nes").Title("Choose a ROM").Load()
}

func main() {
	flag.Parse()
	defer glog.Flush()

	path := *romFile
	if path == "" {
		p, err := pickROM()
		if err != nil {
			glog.Exitf("no ROM selected: %v", err)
		}
		path = p
	}

	rom, err := nesrom.Open(path)
	if err != nil {
		glog.Exitf("couldn't load %s: %v", path, err)
	}
	glog.Infof("loaded %s", rom)

	m, err := mappers.Get(rom)
	if err != nil {
		glog.Exitf("%v", err)
	}

	sys := console.NewSystem(m)
	sys.Reset()
	if *trace {
		sys.TraceFunc = func(line string) { glog.Info(line) }
	}

	if *headless {
		if err := display.RunHeadless(context.Background(), sys, *numFrames); err != nil {
			glog.Exitf("run failed: %v", err)
		}
		return
	}

	g := display.New(sys, *hud, *scale)
	defer g.Close()
	if err := ebiten.RunGame(g); err != nil {
		glog.Exitf("%v", err)
	}

	os.Exit(0)
}
