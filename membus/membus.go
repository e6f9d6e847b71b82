// Package membus implements the DMG's flat 16-bit address space: a
// single decode table routing reads and writes to ROM, VRAM, work
// RAM, OAM, I/O registers, and high RAM, including the echo-RAM alias
// and the reserved unusable region. https://gbdev.io/pandocs/Memory_Map.html
package membus

const (
	addrIF = 0xFF0F
	addrIE = 0xFFFF
)

// Cartridge is the ROM (and, on real hardware, any battery-backed
// external RAM) peripheral mapped at 0x0000-0x7FFF and 0xA000-0xBFFF.
// A no-MBC cartridge simply ignores writes to the ROM region.
type Cartridge interface {
	Read(addr uint16) byte
	Write(addr uint16, v byte)
}

// PPU is the subset of the ppu.PPU surface the bus routes
// VRAM/OAM/register traffic to.
type PPU interface {
	ReadRegister(addr uint16) byte
	WriteRegister(addr uint16, v byte)
	ReadVRAM(addr uint16) byte
	WriteVRAM(addr uint16, v byte)
	ReadOAM(addr uint16) byte
	WriteOAM(addr uint16, v byte)
}

// Joypad is the optional input peripheral mapped at 0xFF00. A Bus
// with no joypad attached reads 0xFF00 as all-released (0xFF).
type Joypad interface {
	Read() byte
	Write(v byte)
}

// Bus is the DMG's memory-mapped address space shared by the CPU and
// PPU cores.
type Bus struct {
	Cart   Cartridge
	PPU    PPU
	Joypad Joypad // nil if no input peripheral is wired

	wram [0x2000]byte // 0xC000-0xDFFF
	hram [0x7F]byte   // 0xFF80-0xFFFE
	io   [0x80]byte   // 0xFF00-0xFF7F, PPU addresses excluded
	ie   byte
}

// New constructs a Bus wired to cart and ppu. Joypad can be attached
// later via AttachJoypad since it is a peripheral, not core state.
func New(cart Cartridge, ppu PPU) *Bus {
	return &Bus{Cart: cart, PPU: ppu}
}

// AttachJoypad wires an input peripheral onto 0xFF00.
func (b *Bus) AttachJoypad(j Joypad) { b.Joypad = j }

// Read implements the full DMG address decode table for loads.
func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr <= 0x7FFF: // ROM
		return b.Cart.Read(addr)
	case addr <= 0x9FFF: // VRAM
		return b.PPU.ReadVRAM(addr)
	case addr <= 0xBFFF: // external RAM
		return b.Cart.Read(addr)
	case addr <= 0xDFFF: // work RAM
		return b.wram[addr-0xC000]
	case addr <= 0xFDFF: // echo RAM, aliases 0xC000-0xDDFF
		return b.wram[addr-0x2000-0xC000]
	case addr <= 0xFE9F: // OAM
		return b.PPU.ReadOAM(addr)
	case addr <= 0xFEFF: // reserved, unusable
		return 0xFF
	case addr <= 0xFF7F: // I/O registers
		return b.readIO(addr)
	case addr <= 0xFFFE: // HRAM
		return b.hram[addr-0xFF80]
	default: // 0xFFFF, IE
		return b.ie
	}
}

// Write implements the full DMG address decode table for stores.
func (b *Bus) Write(addr uint16, v byte) {
	switch {
	case addr <= 0x7FFF:
		b.Cart.Write(addr, v)
	case addr <= 0x9FFF:
		b.PPU.WriteVRAM(addr, v)
	case addr <= 0xBFFF:
		b.Cart.Write(addr, v)
	case addr <= 0xDFFF:
		b.wram[addr-0xC000] = v
	case addr <= 0xFDFF:
		b.wram[addr-0x2000-0xC000] = v
	case addr <= 0xFE9F:
		b.PPU.WriteOAM(addr, v)
	case addr <= 0xFEFF:
		// reserved: writes ignored
	case addr <= 0xFF7F:
		b.writeIO(addr, v)
	case addr <= 0xFFFE:
		b.hram[addr-0xFF80] = v
	default:
		b.ie = v
	}
}

func (b *Bus) readIO(addr uint16) byte {
	switch {
	case addr == 0xFF00:
		if b.Joypad != nil {
			return b.Joypad.Read()
		}
		return 0xFF
	case addr >= 0xFF40 && addr <= 0xFF4B:
		return b.PPU.ReadRegister(addr)
	default:
		return b.io[addr-0xFF00]
	}
}

func (b *Bus) writeIO(addr uint16, v byte) {
	switch {
	case addr == 0xFF00:
		if b.Joypad != nil {
			b.Joypad.Write(v)
		}
	case addr >= 0xFF40 && addr <= 0xFF4B:
		b.PPU.WriteRegister(addr, v)
	default:
		b.io[addr-0xFF00] = v
	}
}

// RequestInterrupt implements ppu.InterruptLine: the PPU raises
// VBlank and STAT interrupts by setting a bit directly in IF, the
// same register the CPU polls each Step.
func (b *Bus) RequestInterrupt(bit uint) {
	idx := uint16(addrIF - 0xFF00)
	b.io[idx] |= 1 << bit
}
