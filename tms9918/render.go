package tms9918

const (
	graphicsCols  = 32
	graphicsRows  = 24
	charWidth8    = 8
	textCols      = 40
	charWidth6    = 6
	leftTextBlank = 8
)

// Scanline is the public scanline dispatcher (C6). It fills out[0:256]
// with indexed-color pixels for raster line y.
//
// If the display is disabled or y is outside the visible raster, the
// entire buffer is filled with the backdrop color (forced to black
// when the display is disabled). Otherwise the renderer for the
// current cached mode runs, and on the last visible line (y == 191)
// the V-blank interrupt flag is set in status.
func (v *VDP) Scanline(y int, out *[ScreenWidth]byte) {
	if !v.displayEnabled() || y < 0 || y >= ScreenHeight {
		bg := v.backdropColor()
		for i := range out {
			out[i] = bg
		}
		return
	}

	switch v.mode {
	case ModeGraphicsI:
		v.renderGraphicsI(y, out)
	case ModeGraphicsII:
		v.renderGraphicsII(y, out)
	case ModeText:
		v.renderText(y, out)
	case ModeMulticolor:
		v.renderMulticolor(y, out)
	}

	if y == ScreenHeight-1 {
		v.status |= statusINT
	}
}

// renderGraphicsI renders the 32x24 tile, 8 color-groups-of-8 Graphics
// I background, then invokes the sprite engine.
func (v *VDP) renderGraphicsI(y int, out *[ScreenWidth]byte) {
	textRow := y / 8
	patternRow := y % 8

	namesAddr := v.nameTableBase() + uint16(textRow*graphicsCols)
	patternBase := v.patternTableBase()
	colorBase := v.colorTableBase()

	px := 0
	for tileX := 0; tileX < graphicsCols; tileX++ {
		name := v.vram[(namesAddr+uint16(tileX))&0x3FFF]
		patternByte := v.vram[(patternBase+uint16(name)*8+uint16(patternRow))&0x3FFF]
		colorByte := v.vram[(colorBase+uint16(name)/8)&0x3FFF]
		fg, bg := v.splitColorByte(colorByte)

		for i := 0; i < charWidth8; i++ {
			if patternByte&0x80 != 0 {
				out[px] = fg
			} else {
				out[px] = bg
			}
			patternByte <<= 1
			px++
		}
	}

	v.renderSprites(y, out)
}

// renderGraphicsII renders the Graphics II background: same 32x24 tile
// layout as Graphics I, but with a per-pixel-row color table and a
// 3-page pattern/color bank selected by the tile row's third.
func (v *VDP) renderGraphicsII(y int, out *[ScreenWidth]byte) {
	textRow := y / 8
	patternRow := y % 8

	namesAddr := v.nameTableBase() + uint16(textRow*graphicsCols)

	pageThird := (textRow & 0x18) >> 3
	pageOffset := uint16(pageThird) << 11

	patternBase := v.patternTableBase() + pageOffset
	colorBase := v.colorTableBase() + pageOffset

	px := 0
	for tileX := 0; tileX < graphicsCols; tileX++ {
		name := v.vram[(namesAddr+uint16(tileX))&0x3FFF]
		patternByte := v.vram[(patternBase+uint16(name)*8+uint16(patternRow))&0x3FFF]
		colorByte := v.vram[(colorBase+uint16(name)*8+uint16(patternRow))&0x3FFF]
		fg, bg := v.splitColorByte(colorByte)

		for i := 0; i < charWidth8; i++ {
			if patternByte&0x80 != 0 {
				out[px] = fg
			} else {
				out[px] = bg
			}
			patternByte <<= 1
			px++
		}
	}

	v.renderSprites(y, out)
}

// renderText renders the 40x24, 6x8-pixel Text mode background: a
// global foreground/background pair from R7, an 8-pixel blank left
// margin, and the remainder blanked out to the right. Text mode has no
// sprites.
func (v *VDP) renderText(y int, out *[ScreenWidth]byte) {
	textRow := y / 8
	patternRow := y % 8

	namesAddr := v.nameTableBase() + uint16(textRow*textCols)
	patternBase := v.patternTableBase()

	fg := v.textForeground()
	bg := v.textBackground()

	px := 0
	for ; px < leftTextBlank; px++ {
		out[px] = bg
	}

	for tileX := 0; tileX < textCols; tileX++ {
		name := v.vram[(namesAddr+uint16(tileX))&0x3FFF]
		patternByte := v.vram[(patternBase+uint16(name)*8+uint16(patternRow))&0x3FFF]

		for i := 0; i < charWidth6; i++ {
			if patternByte&0x80 != 0 {
				out[px] = fg
			} else {
				out[px] = bg
			}
			patternByte <<= 1
			px++
		}
	}

	for ; px < ScreenWidth; px++ {
		out[px] = bg
	}
}

// renderMulticolor renders the 64x48 4x4-color-block Multicolor mode,
// packed in VRAM as 32x24 names with 8 rows of two color nibbles each.
func (v *VDP) renderMulticolor(y int, out *[ScreenWidth]byte) {
	textRow := y / 8
	patternRow := (y/4)%2 + (textRow%4)*2

	namesAddr := v.nameTableBase() + uint16(textRow*graphicsCols)
	patternBase := v.patternTableBase()

	px := 0
	for tileX := 0; tileX < graphicsCols; tileX++ {
		name := v.vram[(namesAddr+uint16(tileX))&0x3FFF]
		colorByte := v.vram[(patternBase+uint16(name)*8+uint16(patternRow))&0x3FFF]
		fg, bg := v.splitColorByte(colorByte)

		for i := 0; i < 4; i++ {
			out[px] = fg
			px++
		}
		for i := 0; i < 4; i++ {
			out[px] = bg
			px++
		}
	}

	v.renderSprites(y, out)
}
