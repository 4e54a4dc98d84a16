package tms9918

// renderSprites implements the C4 sprite scanline engine: it selects up
// to four visible sprites for line y, composites their pattern bits
// onto pixels (which already holds the rendered background), detects
// sprite-to-sprite collisions, and records the fifth-sprite overflow in
// the status register. Called by every mode renderer except Text.
func (v *VDP) renderSprites(y int, pixels *[ScreenWidth]byte) {
	if y == 0 {
		v.status = 0
	}

	sizePx := 8
	if v.spriteSize16() {
		sizePx = 16
	}
	mag := v.spriteMagnified()
	effectiveSize := sizePx
	if mag {
		effectiveSize *= 2
	}

	attrBase := v.spriteAttrTableBase()
	patternBase := v.spritePatternTableBase()

	spritesShown := 0

	for i := 0; i < maxSprites; i++ {
		attrAddr := attrBase + uint16(i*spriteAttrBytes)
		vPos := int(v.vram[attrAddr&0x3FFF])

		if vPos == lastSpriteVPos {
			if v.status&statusS5 == 0 {
				v.status = (v.status &^ 0x1F) | byte(i)
			}
			break
		}

		if vPos > 0xE0 {
			vPos -= 256
		}
		vPos++

		patternRow := y - vPos
		if mag {
			patternRow /= 2
		}
		if patternRow < 0 || patternRow >= sizePx {
			continue
		}

		if spritesShown == 0 {
			for i := range v.rowSpriteBits {
				v.rowSpriteBits[i] = false
			}
		}
		spritesShown++
		if spritesShown > maxLineSprites {
			if v.status&statusS5 == 0 {
				v.status = v.status | statusS5
				v.status = (v.status &^ 0x1F) | byte(i)
			}
			break
		}

		colorAndFlags := v.vram[(attrAddr+3)&0x3FFF]
		color := colorAndFlags & 0x0F

		hPos := int(v.vram[(attrAddr+1)&0x3FFF])
		if colorAndFlags&0x80 != 0 {
			hPos -= 32
		}

		patternName := v.vram[(attrAddr+2)&0x3FFF]
		patternAddr := patternBase + uint16(patternName)*8 + uint16(patternRow)
		patternByte := v.vram[patternAddr&0x3FFF]

		screenBit := 0
		patternBit := 0
		for screenX := hPos; screenX < hPos+effectiveSize; screenX++ {
			if screenX >= ScreenWidth {
				break
			}
			if screenX >= 0 {
				if patternByte&(0x80>>uint(patternBit)) != 0 {
					if Color(color) != Transparent {
						pixels[screenX] = color
					}
					if v.rowSpriteBits[screenX] {
						v.status |= statusCOL
					}
					v.rowSpriteBits[screenX] = true
				}
			}

			if !mag || screenBit&0x01 != 0 {
				patternBit++
				if patternBit == 8 {
					patternBit = 0
					patternByte = v.vram[(patternAddr+16)&0x3FFF]
				}
			}
			screenBit++
		}
	}
}
