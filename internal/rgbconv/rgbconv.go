// Package rgbconv converts TMS9918A color indices to RGB for the demo
// host (cmd/vdpdemo). It is deliberately not part of the public
// tms9918 API: the core emits indices only, and palette-to-RGB
// conversion is an external host concern (spec §1, §6).
//
// The table is adapted from the teacher's SMS-VDP cramToColor/
// paletteScale pattern (github.com/user-none/emkiii, emu/vdp.go),
// fixed here to the TMS9918A's constant 16-entry palette rather than a
// programmable CRAM.
package rgbconv

import (
	"image/color"

	"github.com/user-none/go-chip-tms9918/tms9918"
)

// table holds the canonical TMS9918A RGB values, as published in the
// datasheet and used by every faithful software implementation.
// Index 0 (transparent) is given black's RGB since callers are
// expected to have already substituted the backdrop for transparency
// before reaching here (the core does this itself in renderer output).
var table = [16]color.RGBA{
	{0, 0, 0, 0},         // 0 Transparent
	{0, 0, 0, 255},       // 1 Black
	{33, 200, 66, 255},   // 2 Medium green
	{94, 220, 120, 255},  // 3 Light green
	{84, 85, 237, 255},   // 4 Dark blue
	{125, 118, 252, 255}, // 5 Light blue
	{212, 82, 77, 255},   // 6 Dark red
	{66, 235, 245, 255},  // 7 Cyan
	{252, 85, 84, 255},   // 8 Medium red
	{255, 121, 120, 255}, // 9 Light red
	{212, 193, 84, 255},  // 10 Dark yellow
	{230, 206, 128, 255}, // 11 Light yellow
	{33, 176, 59, 255},   // 12 Dark green
	{201, 91, 186, 255},  // 13 Magenta
	{204, 204, 204, 255}, // 14 Gray
	{255, 255, 255, 255}, // 15 White
}

// RGBA converts a VDP color index (0..15) to its fixed RGBA value.
// Out-of-range indices are masked to 4 bits, matching the core's own
// masking conventions for out-of-range inputs (spec §7).
func RGBA(index byte) color.RGBA {
	return table[index&0x0F]
}

// Name returns the human-readable name of a color index, via
// tms9918.Color's String method.
func Name(index byte) string {
	return tms9918.Color(index & 0x0F).String()
}
