package ppu

// I/O register addresses in the 0xFF40-0xFF4B block the PPU owns.
const (
	RegLCDC = 0xFF40
	RegSTAT = 0xFF41
	RegSCY  = 0xFF42
	RegSCX  = 0xFF43
	RegLY   = 0xFF44
	RegLYC  = 0xFF45
	RegBGP  = 0xFF47
	RegOBP0 = 0xFF48
	RegOBP1 = 0xFF49
	RegWY   = 0xFF4A
	RegWX   = 0xFF4B
)

// ReadRegister services a CPU read of one of the PPU's I/O registers.
// membus.Bus routes addresses in the 0xFF40-0xFF4B range here.
func (p *PPU) ReadRegister(addr uint16) byte {
	switch addr {
	case RegLCDC:
		return p.lcdc
	case RegSTAT:
		return p.stat | 0x80 // bit 7 always reads high
	case RegSCY:
		return p.scy
	case RegSCX:
		return p.scx
	case RegLY:
		return p.ly
	case RegLYC:
		return p.lyc
	case RegBGP:
		return p.bgp
	case RegOBP0:
		return p.obp0
	case RegOBP1:
		return p.obp1
	case RegWY:
		return p.wy
	case RegWX:
		return p.wx
	default:
		return 0xFF
	}
}

// WriteRegister services a CPU write. LY is read-only hardware; writes
// to it are ignored, matching real DMG behavior.
func (p *PPU) WriteRegister(addr uint16, v byte) {
	switch addr {
	case RegLCDC:
		wasEnabled := p.lcdc&lcdcEnable != 0
		p.lcdc = v
		if wasEnabled && v&lcdcEnable == 0 {
			p.disableLCD()
		}
	case RegSTAT:
		p.stat = (p.stat & (statModeMask | statLYCFlag)) | (v &^ (statModeMask | statLYCFlag))
	case RegSCY:
		p.scy = v
	case RegSCX:
		p.scx = v
	case RegLYC:
		p.lyc = v
		p.checkLYC()
	case RegBGP:
		p.bgp = v
	case RegOBP0:
		p.obp0 = v
	case RegOBP1:
		p.obp1 = v
	case RegWY:
		p.wy = v
	case RegWX:
		p.wx = v
	}
}

// disableLCD resets scanline position the way turning the LCD off
// does on real hardware: the PPU parks at line 0, OAM scan phase.
func (p *PPU) disableLCD() {
	p.ly = 0
	p.dotClock = 0
	p.setMode(ModeOAMScan)
}

// ReadVRAM and WriteVRAM service the 0x8000-0x9FFF window. The CPU
// cannot see VRAM during Drawing on real hardware; that access
// restriction is a non-goal here (see design notes on sub-instruction
// timing), so reads/writes always succeed.
func (p *PPU) ReadVRAM(addr uint16) byte    { return p.vram[addr-0x8000] }
func (p *PPU) WriteVRAM(addr uint16, v byte) { p.vram[addr-0x8000] = v }

// ReadOAM and WriteOAM service the 0xFE00-0xFE9F window.
func (p *PPU) ReadOAM(addr uint16) byte     { return p.oam[addr-0xFE00] }
func (p *PPU) WriteOAM(addr uint16, v byte) { p.oam[addr-0xFE00] = v }
