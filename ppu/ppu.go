// Package ppu implements the DMG picture processing unit: the
// four-phase scanline state machine (OAM scan, drawing, HBlank,
// VBlank) and background/window/sprite rasterization into a
// 160x144 ARGB framebuffer. https://gbdev.io/pandocs/pixel_fifo.html
package ppu

const (
	ScreenWidth  = 160
	ScreenHeight = 144

	vramSize = 0x2000 // 0x8000-0x9FFF
	oamSize  = 0xA0   // 0xFE00-0xFE9F, 40 sprites x 4 bytes

	linesPerFrame  = 154
	ticksPerLine   = 456
	ticksOAMScan   = 80
	ticksDrawing   = 172
	ticksHBlank    = ticksPerLine - ticksOAMScan - ticksDrawing
	TicksPerFrame  = ticksPerLine * linesPerFrame
)

// Mode is the PPU's current scanline phase, mirrored into STAT bits 0-1.
type Mode uint8

const (
	ModeHBlank Mode = iota
	ModeVBlank
	ModeOAMScan
	ModeDrawing
)

// LCDC bits. https://gbdev.io/pandocs/LCDC.html
const (
	lcdcBGWindowEnable byte = 1 << 0
	lcdcOBJEnable      byte = 1 << 1
	lcdcOBJSize        byte = 1 << 2
	lcdcBGTileMap      byte = 1 << 3
	lcdcBGWindowData   byte = 1 << 4
	lcdcWindowEnable   byte = 1 << 5
	lcdcWindowTileMap  byte = 1 << 6
	lcdcEnable         byte = 1 << 7
)

// STAT bits. https://gbdev.io/pandocs/STAT.html
const (
	statModeMask      byte = 0x03
	statLYCFlag       byte = 1 << 2
	statHBlankIntEn   byte = 1 << 3
	statOAMIntEn      byte = 1 << 4
	statVBlankIntEn   byte = 1 << 5
	statLYCIntEn      byte = 1 << 6
)

// InterruptLine is the subset of the shared IF register the PPU
// raises interrupts through; membus.Bus implements it.
type InterruptLine interface {
	RequestInterrupt(bit uint)
}

const (
	vblankIRQBit = 0
	statIRQBit   = 1
)

// PPU owns VRAM, OAM, and the LCD register file, and renders into
// Framebuffer one scanline at a time as the dot clock crosses phase
// boundaries.
type PPU struct {
	irq InterruptLine

	vram [vramSize]byte
	oam  [oamSize]byte

	lcdc, stat       byte
	scy, scx         byte
	ly, lyc          byte
	bgp, obp0, obp1  byte
	wy, wx           byte

	dotClock int
	mode     Mode

	windowLine   int // increments only on lines the window actually drew
	FrameReady   bool
	Framebuffer  [ScreenWidth * ScreenHeight]uint32
}

// New constructs a PPU wired to irq for interrupt delivery.
func New(irq InterruptLine) *PPU {
	p := &PPU{irq: irq, mode: ModeOAMScan}
	p.stat = ModeOAMScan.asStatBits()
	return p
}

func (m Mode) asStatBits() byte { return byte(m) & statModeMask }

// Step advances the PPU's dot clock by cycles T-states, driving the
// scanline state machine through as many phase transitions as cycles
// crosses. Called once per CPU instruction with that instruction's
// T-state cost, keeping the PPU cycle-synchronized with the CPU.
func (p *PPU) Step(cycles int) {
	if p.lcdc&lcdcEnable == 0 {
		return
	}

	p.dotClock += cycles
	for p.dotClock >= p.currentPhaseLength() {
		p.dotClock -= p.currentPhaseLength()
		p.advancePhase()
	}
}

func (p *PPU) currentPhaseLength() int {
	switch p.mode {
	case ModeOAMScan:
		return ticksOAMScan
	case ModeDrawing:
		return ticksDrawing
	case ModeHBlank:
		return ticksHBlank
	default: // ModeVBlank: one full line's worth of dots per step
		return ticksPerLine
	}
}

func (p *PPU) advancePhase() {
	switch p.mode {
	case ModeOAMScan:
		p.setMode(ModeDrawing)
	case ModeDrawing:
		p.renderScanline(int(p.ly))
		p.setMode(ModeHBlank)
	case ModeHBlank:
		p.ly++
		p.checkLYC()
		if int(p.ly) == ScreenHeight {
			p.setMode(ModeVBlank)
			p.FrameReady = true
			p.windowLine = 0
			p.irq.RequestInterrupt(vblankIRQBit)
		} else {
			p.setMode(ModeOAMScan)
		}
	case ModeVBlank:
		p.ly++
		if int(p.ly) >= linesPerFrame {
			p.ly = 0
			p.setMode(ModeOAMScan)
		}
		p.checkLYC()
	}
}

func (p *PPU) setMode(m Mode) {
	p.mode = m
	p.stat = (p.stat &^ statModeMask) | m.asStatBits()

	var en byte
	switch m {
	case ModeOAMScan:
		en = statOAMIntEn
	case ModeVBlank:
		en = statVBlankIntEn
	case ModeHBlank:
		en = statHBlankIntEn
	}
	if en != 0 && p.stat&en != 0 {
		p.irq.RequestInterrupt(statIRQBit)
	}
}

func (p *PPU) checkLYC() {
	if p.ly == p.lyc {
		p.stat |= statLYCFlag
		if p.stat&statLYCIntEn != 0 {
			p.irq.RequestInterrupt(statIRQBit)
		}
	} else {
		p.stat &^= statLYCFlag
	}
}

// Mode reports the PPU's current scanline phase, mainly for debug tooling.
func (p *PPU) Mode() Mode { return p.mode }

// LY reports the current scanline, mainly for debug tooling.
func (p *PPU) LY() byte { return p.ly }
