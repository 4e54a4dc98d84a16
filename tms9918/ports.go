package tms9918

// WriteAddress feeds a byte to the address port (address-mode 1). The
// chip expects two consecutive writes: the first latches the low 8
// bits of the VRAM address, the second is interpreted either as a
// register write (bit 7 set, bits 0..2 select the register) or as the
// high 6 bits of the address.
//
// On a register write, the byte stored into the register is the low
// byte latched by the *first* write of the pair, not the byte that
// triggered the register write itself. This is the real chip's
// behavior (spec §4.1, §9) and software relies on it.
func (v *VDP) WriteAddress(b byte) {
	if !v.addrPhase2 {
		v.addrLatchLow = b
		v.addrPhase2 = true
		return
	}

	if b&0x80 != 0 {
		reg := b & 0x07
		v.registers[reg] = v.addrLatchLow
		v.recomputeMode()
	} else {
		v.address = (uint16(b&0x3F) << 8) | uint16(v.addrLatchLow)
	}
	v.addrPhase2 = false
}

// WriteData writes a byte to VRAM at the current address and
// post-increments the address pointer modulo 16384. It never touches
// the address-port latch phase (spec §4.1, §9).
func (v *VDP) WriteData(b byte) {
	v.vram[v.address&0x3FFF] = b
	v.address = (v.address + 1) & 0x3FFF
}

// ReadData returns the VRAM byte at the current address and
// post-increments the pointer modulo 16384.
func (v *VDP) ReadData() byte {
	b := v.vram[v.address&0x3FFF]
	v.address = (v.address + 1) & 0x3FFF
	return b
}

// ReadDataNoInc returns the VRAM byte at the current address without
// moving the pointer. Diagnostic accessor, not part of the real chip.
func (v *VDP) ReadDataNoInc() byte {
	return v.vram[v.address&0x3FFF]
}

// ReadStatus returns the status byte as it stood before the call, then
// clears the INT (bit 7) and COL (bit 5) flags. The 5S flag (bit 6) and
// the sprite-index bits (0..4) are left untouched; they are only
// cleared when scanline 0 next renders.
func (v *VDP) ReadStatus() byte {
	s := v.status
	v.status &^= statusINT | statusCOL
	return s
}
