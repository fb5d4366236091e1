// Package bus implements the address-decoding board that hosts the
// CPU: a 16-bit address space split between a RAM region and a ROM
// region, with the ROM region holding the three interrupt vectors.
package bus

import (
	"fmt"
	"log"

	"github.com/tarnovan/mos6502/memory"
)

const (
	// RAMSize is the size in bytes of the RAM region, mapped at $0000.
	RAMSize = 0x8000
	// ROMSize is the size in bytes of the ROM region, mapped at $8000.
	ROMSize = 0x8000
	// ROMBase is the first address of the ROM region.
	ROMBase = 0x8000
	// romFill is written into any bytes of a short ROM image.
	romFill = 0x00
)

// AccessViolation is returned (and, per the spec, treated as fatal by
// the host) when something attempts to write into the ROM region.
type AccessViolation struct {
	Addr uint16
}

func (e AccessViolation) Error() string {
	return fmt.Sprintf("bus: access violation writing ROM at $%04X", e.Addr)
}

// Bus owns the RAM and ROM regions and decodes a 16-bit address to the
// correct one. It implements cpu.Bus.
type Bus struct {
	ram memory.Bank
	rom memory.Bank

	// lastViolation records the most recent access violation so a host
	// loop can notice it happened without having to plumb an error
	// return through every single Write call site (stores inside the
	// CPU's opcode handlers have none to give).
	lastViolation *AccessViolation
}

// New constructs a board with a zeroed RAM region and a ROM region
// filled with romFill until LoadROM is called.
func New() *Bus {
	b := &Bus{
		ram: memory.NewRAM(RAMSize),
		rom: memory.NewROM(ROMSize, romFill),
	}
	b.ram.PowerOn()
	b.rom.PowerOn()
	return b
}

// Read returns the byte at addr, routing to RAM or ROM as appropriate.
func (b *Bus) Read(addr uint16) uint8 {
	if addr < RAMSize {
		return b.ram.Read(addr)
	}
	return b.rom.Read(addr - ROMBase)
}

// Write stores val at addr if it lands in RAM. A write into the ROM
// region is an access violation: per the spec this is fatal, so Write
// records the violation (retrievable via LastViolation) and leaves the
// byte unwritten rather than silently succeeding.
func (b *Bus) Write(addr uint16, val uint8) {
	if addr < RAMSize {
		b.ram.Write(addr, val)
		return
	}
	b.lastViolation = &AccessViolation{Addr: addr}
}

// LastViolation returns the most recently recorded access violation,
// if any, and clears it.
func (b *Bus) LastViolation() *AccessViolation {
	v := b.lastViolation
	b.lastViolation = nil
	return v
}

// LoadROM copies image into the ROM region starting at $8000. Images
// shorter than ROMSize are padded with romFill; a warning is logged
// exactly once per load since a short image usually means a missing
// reset/IRQ/NMI vector was never intended to be zero.
func (b *Bus) LoadROM(image []byte) error {
	if len(image) > ROMSize {
		return fmt.Errorf("bus: ROM image of %d bytes exceeds %d byte ROM region", len(image), ROMSize)
	}
	if len(image) < ROMSize {
		log.Printf("bus: ROM image is %d bytes, padding remaining %d bytes with 0x%02X", len(image), ROMSize-len(image), romFill)
	}
	loadable, ok := b.rom.(memory.Loadable)
	if !ok {
		return fmt.Errorf("bus: ROM bank does not support image loading")
	}
	return loadable.Load(image)
}
