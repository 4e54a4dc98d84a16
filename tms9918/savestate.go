package tms9918

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	saveStateMagic   = "T918"
	saveStateVersion = 1
	// magic(4) + version(1) + vram(16384) + registers(8) + status(1) +
	// address(2) + addrLatchLow(1) + addrPhase2(1)
	saveStateLen = 4 + 1 + VRAMSize + numRegisters + 1 + 2 + 1 + 1
)

// SaveState serializes the complete VDP state — VRAM, registers,
// status, address pointer, and address-latch phase — into a flat,
// versioned byte slice suitable for host-side snapshotting.
//
// This has no counterpart on the real chip; it is ambient host
// infrastructure, the way emulator save states are handled throughout
// the reference codebase, not part of the port protocol in spec §6.
func (v *VDP) SaveState() []byte {
	buf := make([]byte, saveStateLen)
	copy(buf[0:4], saveStateMagic)
	buf[4] = saveStateVersion

	off := 5
	copy(buf[off:off+VRAMSize], v.vram[:])
	off += VRAMSize
	copy(buf[off:off+numRegisters], v.registers[:])
	off += numRegisters
	buf[off] = v.status
	off++
	binary.LittleEndian.PutUint16(buf[off:off+2], v.address)
	off += 2
	buf[off] = v.addrLatchLow
	off++
	if v.addrPhase2 {
		buf[off] = 1
	} else {
		buf[off] = 0
	}

	return buf
}

// LoadState restores a VDP from a byte slice produced by SaveState. It
// validates the magic, version, and length before mutating the
// receiver; on any validation failure it returns an error and
// leaves the receiver unmodified, matching the teacher's
// save-state-too-short / invalid-magic / unsupported-version error
// family in emu/emulator.go.
func (v *VDP) LoadState(data []byte) error {
	if len(data) < 5 {
		return errors.New("tms9918: save state too short")
	}
	if string(data[0:4]) != saveStateMagic {
		return errors.New("tms9918: invalid save state magic")
	}
	if data[4] != saveStateVersion {
		return fmt.Errorf("tms9918: unsupported save state version %d", data[4])
	}
	if len(data) != saveStateLen {
		return fmt.Errorf("tms9918: save state has wrong length: got %d, want %d", len(data), saveStateLen)
	}

	off := 5
	var vram [VRAMSize]byte
	copy(vram[:], data[off:off+VRAMSize])
	off += VRAMSize
	var registers [numRegisters]byte
	copy(registers[:], data[off:off+numRegisters])
	off += numRegisters
	status := data[off]
	off++
	address := binary.LittleEndian.Uint16(data[off : off+2])
	off += 2
	addrLatchLow := data[off]
	off++
	addrPhase2 := data[off] != 0

	v.vram = vram
	v.registers = registers
	v.status = status
	v.address = address & 0x3FFF
	v.addrLatchLow = addrLatchLow
	v.addrPhase2 = addrPhase2
	v.recomputeMode()

	return nil
}
