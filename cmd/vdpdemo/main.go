// Command vdpdemo is a small presentation host for the tms9918 core.
// It pokes a demonstration pattern into VRAM, drives the VDP one
// scanline at a time, and blits the result to a window with ebiten —
// exactly the kind of host loop spec.md §1 keeps out of the core
// package (cli/runner.go in the teacher repository is the model for
// this split between chip and presentation).
package main

import (
	"flag"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/user-none/go-chip-tms9918/internal/rgbconv"
	"github.com/user-none/go-chip-tms9918/tms9918"
)

type demo struct {
	vdp *tms9918.VDP
	img *ebiten.Image
	row [tms9918.ScreenWidth]byte
}

func (d *demo) Update() error {
	return nil
}

func (d *demo) Draw(screen *ebiten.Image) {
	for y := 0; y < tms9918.ScreenHeight; y++ {
		d.vdp.Scanline(y, &d.row)
		for x, idx := range d.row {
			d.img.Set(x, y, rgbconv.RGBA(idx))
		}
	}
	screen.DrawImage(d.img, nil)
}

func (d *demo) Layout(outsideWidth, outsideHeight int) (int, int) {
	return tms9918.ScreenWidth, tms9918.ScreenHeight
}

func main() {
	mode := flag.String("mode", "graphics1", "graphics1, graphics2, text, or multicolor")
	flag.Parse()

	vdp := tms9918.New()
	seedTables(vdp)
	seedSprite(vdp)
	setMode(vdp, *mode)

	d := &demo{
		vdp: vdp,
		img: ebiten.NewImage(tms9918.ScreenWidth, tms9918.ScreenHeight),
	}

	ebiten.SetWindowSize(tms9918.ScreenWidth*3, tms9918.ScreenHeight*3)
	ebiten.SetWindowTitle("tms9918 demo")
	if err := ebiten.RunGame(d); err != nil {
		log.Fatalf("vdpdemo: %v", err)
	}
}

func writeAddress(v *tms9918.VDP, addr uint16) {
	v.WriteAddress(byte(addr & 0xFF))
	v.WriteAddress(byte((addr >> 8) & 0x3F))
}

func writeRegister(v *tms9918.VDP, reg, value byte) {
	v.WriteAddress(value)
	v.WriteAddress(0x80 | (reg & 0x07))
}

// Table layout for this demo:
//
//	0x0000  name table      (32*24 bytes)
//	0x1000  pattern table   (2 patterns used, 8 bytes each)
//	0x1800  color table     (32 group bytes)
//	0x1B00  sprite attribute table
//	0x3800  sprite pattern table (1 pattern)
const (
	nameTableAddr    = 0x0000
	patternTableAddr = 0x1000
	colorTableAddr   = 0x1800
	spritePatAddr    = 0x3800
	spriteAttrAddr   = 0x1B00
)

func setMode(v *tms9918.VDP, mode string) {
	const displayEnable = 0x40
	var r0, r1 byte
	switch strings.ToLower(mode) {
	case "graphics2":
		r0 = 0x02
		r1 = displayEnable
	case "text":
		r1 = displayEnable | 0x10
	case "multicolor":
		r1 = displayEnable | 0x08
	default:
		r1 = displayEnable
	}
	writeRegister(v, 0, r0)
	writeRegister(v, 1, r1)
	writeRegister(v, 2, byte(nameTableAddr>>10))
	writeRegister(v, 3, byte(colorTableAddr>>6))
	writeRegister(v, 4, byte(patternTableAddr>>11))
	writeRegister(v, 5, byte(spriteAttrAddr>>7))
	writeRegister(v, 6, byte(spritePatAddr>>11))
	writeRegister(v, 7, 0xF1) // text fg white, backdrop black
}

// seedTables writes a simple two-tile checkerboard so the demo shows
// something other than a blank backdrop in every mode.
func seedTables(v *tms9918.VDP) {
	writeAddress(v, nameTableAddr)
	for i := 0; i < 32*24; i++ {
		v.WriteData(byte(i % 2))
	}

	writeAddress(v, patternTableAddr)
	for row := 0; row < 8; row++ {
		v.WriteData(0xAA) // pattern 0
	}
	for row := 0; row < 8; row++ {
		v.WriteData(0x55) // pattern 1
	}

	writeAddress(v, colorTableAddr)
	for i := 0; i < 32; i++ {
		v.WriteData(0x61) // fg dark red, bg black
	}
}

func seedSprite(v *tms9918.VDP) {
	writeAddress(v, spritePatAddr)
	for row := 0; row < 8; row++ {
		v.WriteData(0xFF) // solid square
	}

	writeAddress(v, spriteAttrAddr)
	v.WriteData(64)   // vPos
	v.WriteData(64)   // hPos
	v.WriteData(0)    // pattern name
	v.WriteData(9)    // color: light red
	v.WriteData(0xD0) // terminator
}
