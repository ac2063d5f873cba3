// Package display wires a console.System into an ebiten.Game so it can
// be driven by a real window. Nothing in console, mos6502 or ppu knows
// ebiten exists; this package is the only place that presentation
// concern lives.
package display

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/arkvane/nescore/console"
	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Game adapts a *console.System to the ebiten.Game interface. The
// emulator runs on its own goroutine via System.Run; Game only reads
// the PPU's framebuffer and draws it, plus an optional HUD line.
type Game struct {
	sys    *console.System
	cancel context.CancelFunc

	showHUD bool
	frame   uint64

	img *image.RGBA
}

// New starts the system running on a background goroutine and returns
// a Game ready to be handed to ebiten.RunGame. scale sets the initial
// window size as a multiple of the NES's 256x240 resolution.
func New(sys *console.System, showHUD bool, scale int) *Game {
	if scale < 1 {
		scale = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	g := &Game{sys: sys, cancel: cancel, showHUD: showHUD}

	w, h := sys.Bus().PPU().GetResolution()
	g.img = image.NewRGBA(image.Rect(0, 0, w, h))
	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowTitle("nescore")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	go sys.Run(ctx)
	return g
}

// Close stops the background emulation goroutine.
func (g *Game) Close() {
	g.cancel()
}

// Layout returns the NES's fixed internal resolution so ebiten scales
// the window instead of the framebuffer changing size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.sys.Bus().PPU().GetResolution()
}

// Update only records the PPU's frame count for the HUD: the system
// steps on its own goroutine via System.Run, independent of ebiten's
// tick rate.
func (g *Game) Update() error {
	g.frame = g.sys.Bus().PPU().FrameCount()
	return nil
}

// Draw copies the PPU's current framebuffer onto the screen and, if
// enabled, overlays a one-line HUD with the frame counter.
func (g *Game) Draw(screen *ebiten.Image) {
	px := g.sys.Bus().PPU().GetPixels()
	w, h := g.sys.Bus().PPU().GetResolution()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := px[y*w+x]
			g.img.Set(x, y, color.RGBA{c[0], c[1], c[2], 0xff})
		}
	}
	screen.WritePixels(g.img.Pix)

	if g.showHUD {
		text.Draw(screen, fmt.Sprintf("frame %d", g.frame), basicfont.Face7x13, 4, 12, color.White)
	}
}

// RunHeadless drives sys without a window, for -headless mode: it
// steps the system for n frames and logs the outcome.
func RunHeadless(ctx context.Context, sys *console.System, frames int) error {
	if err := sys.RunFrames(ctx, frames); err != nil {
		return err
	}
	glog.Infof("ran %d frames headless", frames)
	return nil
}
