package tms9918

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanline_DisplayDisabledBlanksWithBlack(t *testing.T) {
	v := New()
	v.WriteAddress(0xF4)
	v.WriteAddress(0x87) // R7 = backdrop, but display stays disabled

	var out [ScreenWidth]byte
	v.Scanline(10, &out)

	for x, p := range out {
		require.Equal(t, byte(Black), p, "pixel %d", x)
	}
}

func TestScanline_OutOfRangeBlanks(t *testing.T) {
	v := New()
	v.WriteAddress(0x40)
	v.WriteAddress(0x81) // display enabled

	v.WriteAddress(0x04)
	v.WriteAddress(0x87) // R7 backdrop = 4

	var out [ScreenWidth]byte
	for _, y := range []int{192, 1000, -1} {
		v.Scanline(y, &out)
		for x, p := range out {
			require.Equal(t, byte(4), p, "y=%d pixel %d", y, x)
		}
	}
}

func TestScanline_SetsVBlankOnLastLine(t *testing.T) {
	v := New()
	v.WriteAddress(0x40)
	v.WriteAddress(0x81)

	var out [ScreenWidth]byte
	v.Scanline(191, &out)

	assert.NotZero(t, v.StatusPeek()&statusINT)
}

func TestScanline_Line0ClearsStatusBeforeSpriteEval(t *testing.T) {
	v := New()
	v.status = statusINT | statusCOL | statusS5 | 3
	v.WriteAddress(0x40)
	v.WriteAddress(0x81)
	placeSprite(v, 0, lastSpriteVPos, 0, 0, 0) // no sprites: terminator in slot 0

	var out [ScreenWidth]byte
	v.Scanline(0, &out)

	assert.Zero(t, v.StatusPeek())
}

// Text mode with R7 = 0xF4: the 8-pixel left margin and the 8-pixel
// right margin are the background color, and the 40 six-pixel cells in
// between come from the pattern table (all 0xFF here, so foreground).
func TestRenderText_BackdropAndMargins(t *testing.T) {
	v := New()
	v.WriteAddress(0x50) // display enabled (0x40) | text mode bits (0x10)
	v.WriteAddress(0x81)
	v.WriteAddress(0xF4)
	v.WriteAddress(0x87) // R7: fg=white(0xF), bg=dark blue(0x4)

	require.Equal(t, ModeText, v.Mode())

	// Pattern table defaults to base 0; VRAM is all 0xFF, so every
	// pattern byte has every bit set -> every emitted pixel is fg.
	var out [ScreenWidth]byte
	v.Scanline(0, &out)

	for x := 0; x < 8; x++ {
		assert.Equal(t, byte(0x04), out[x], "left margin pixel %d", x)
	}
	for x := 248; x < ScreenWidth; x++ {
		assert.Equal(t, byte(0x04), out[x], "right margin pixel %d", x)
	}
	// Interior pixels come from VRAM=0xFF patterns => all foreground.
	assert.Equal(t, byte(0x0F), out[8], "first interior pixel should be foreground")
}

func TestRenderGraphicsI_BasicTile(t *testing.T) {
	v := New()
	// name table at 0, pattern table at 0, color table at 0x200 (R3=8)
	setAddress(v, 0)
	v.WriteData(0x01) // tile 0 uses pattern/color index 1

	patternBase := uint16(0)
	setAddressRaw(v, patternBase+1*8)
	v.WriteData(0b10101010) // pattern row 0 of pattern 1

	v.WriteAddress(0x08)
	v.WriteAddress(0x83) // R3 = 8 -> color table base 0x200

	colorBase := uint16(0x200)
	setAddressRaw(v, colorBase+1/8)
	v.WriteData(0x21) // fg=2, bg=1

	v.WriteAddress(0x40)
	v.WriteAddress(0x81) // display enabled, Graphics I default

	var out [ScreenWidth]byte
	v.Scanline(0, &out)

	want := []byte{2, 1, 2, 1, 2, 1, 2, 1}
	for i, w := range want {
		assert.Equal(t, w, out[i], "pixel %d", i)
	}
}

func TestRenderMulticolor_FourPixelBlocks(t *testing.T) {
	v := New()
	v.WriteAddress(0x01)
	v.WriteAddress(0x82) // R2 = 1 -> name table base 0x400, away from pattern table

	setAddressRaw(v, 0x400)
	v.WriteData(0x00) // tile 0 -> pattern/color name 0

	setAddressRaw(v, 0) // pattern table base 0, name 0, row 0
	v.WriteData(0x53)   // fg=5, bg=3

	v.WriteAddress(0x48)
	v.WriteAddress(0x81) // display enabled (0x40) | multicolor mode bits (0x08)

	require.Equal(t, ModeMulticolor, v.Mode())

	var out [ScreenWidth]byte
	v.Scanline(0, &out)

	for x := 0; x < 4; x++ {
		assert.Equal(t, byte(5), out[x])
	}
	for x := 4; x < 8; x++ {
		assert.Equal(t, byte(3), out[x])
	}
}

func setAddressRaw(v *VDP, addr uint16) {
	setAddress(v, addr)
}
