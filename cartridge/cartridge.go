// Package cartridge loads a DMG ROM byte image. Bank switching (MBC1
// and friends) is deliberately out of scope for the core: a
// cartridge here is a flat, unbanked ROM plus a fixed external RAM
// window, which is all a no-MBC title needs.
package cartridge

import (
	"fmt"
	"os"
)

const (
	romSize = 0x8000 // 0x0000-0x7FFF, unbanked
	ramSize = 0x2000 // 0xA000-0xBFFF
)

// Cartridge is a membus.Cartridge: ROM reads return the loaded image,
// ROM writes are ignored (there is no mapper register to catch them),
// and external RAM is a plain byte-addressable scratch area.
type Cartridge struct {
	rom [romSize]byte
	ram [ramSize]byte
}

// Load reads path into a new Cartridge. Images shorter than romSize
// are zero-padded; this deliberately does not validate a header,
// since the core never dereferences one.
func Load(path string) (*Cartridge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cartridge: couldn't read %q: %w", path, err)
	}
	if len(data) > romSize {
		return nil, fmt.Errorf("cartridge: %q is %d bytes, exceeds the %d-byte unbanked ROM window", path, len(data), romSize)
	}

	c := &Cartridge{}
	copy(c.rom[:], data)
	return c, nil
}

// FromBytes wraps an already-loaded ROM image, mainly for tests and
// for embedding a ROM at build time.
func FromBytes(data []byte) (*Cartridge, error) {
	if len(data) > romSize {
		return nil, fmt.Errorf("cartridge: image is %d bytes, exceeds the %d-byte unbanked ROM window", len(data), romSize)
	}
	c := &Cartridge{}
	copy(c.rom[:], data)
	return c, nil
}

func (c *Cartridge) Read(addr uint16) byte {
	if addr >= 0xA000 {
		return c.ram[addr-0xA000]
	}
	return c.rom[addr]
}

func (c *Cartridge) Write(addr uint16, v byte) {
	if addr >= 0xA000 {
		c.ram[addr-0xA000] = v
	}
	// ROM region: no-op, no mapper registers to catch the write.
}
