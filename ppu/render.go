package ppu

import "sort"

// shadeARGB converts a 2-bit DMG color index through a palette
// register into an ARGB8888 grayscale pixel. Index 0 of every palette
// is the lightest shade, 3 the darkest, per the standard four-shade
// DMG LCD.
var dmgShades = [4]uint32{
	0xFFFFFFFF, // white
	0xFFAAAAAA, // light gray
	0xFF555555, // dark gray
	0xFF000000, // black
}

func shadeARGB(palette byte, colorIdx byte) uint32 {
	shade := (palette >> (colorIdx * 2)) & 0x03
	return dmgShades[shade]
}

// tileDataAddr resolves a background/window tile index to its VRAM
// address, honoring LCDC's signed/unsigned addressing mode switch.
func (p *PPU) tileDataAddr(tileID byte) uint16 {
	if p.lcdc&lcdcBGWindowData != 0 {
		return 0x8000 + uint16(tileID)*16
	}
	return uint16(int32(0x9000) + int32(int8(tileID))*16)
}

// spriteTileAddr: sprites always use the unsigned 0x8000 tile data block.
func spriteTileAddr(tileID byte) uint16 {
	return 0x8000 + uint16(tileID)*16
}

func (p *PPU) tileColorIndex(tileBase uint16, row, col int) byte {
	off := tileBase - 0x8000 + uint16(row)*2
	lo := p.vram[off]
	hi := p.vram[off+1]
	bit := uint(7 - col)
	return ((hi>>bit)&1)<<1 | ((lo >> bit) & 1)
}

// renderScanline rasterizes background, window, and sprites for line
// ly into Framebuffer. Called once per line, at the Drawing-to-HBlank
// transition, rather than pixel-by-pixel through a FIFO; per-dot FIFO
// timing is out of scope.
func (p *PPU) renderScanline(ly int) {
	if ly < 0 || ly >= ScreenHeight {
		return
	}

	bgEnabled := p.lcdc&lcdcBGWindowEnable != 0
	windowEnabled := p.lcdc&lcdcWindowEnable != 0 && bgEnabled && int(p.wy) <= ly
	drewWindow := false

	bgMap := uint16(0x9800)
	if p.lcdc&lcdcBGTileMap != 0 {
		bgMap = 0x9C00
	}
	winMap := uint16(0x9800)
	if p.lcdc&lcdcWindowTileMap != 0 {
		winMap = 0x9C00
	}

	colorIdx := make([]byte, ScreenWidth)

	for x := 0; x < ScreenWidth; x++ {
		var idx byte

		useWindow := windowEnabled && x+7 >= int(p.wx)
		if useWindow {
			drewWindow = true
			wx := x + 7 - int(p.wx)
			wy := p.windowLine
			tileCol := wx / 8
			tileRow := wy / 8
			tileAddr := winMap + uint16(tileRow*32+tileCol)
			tileID := p.vram[tileAddr-0x8000]
			idx = p.tileColorIndex(p.tileDataAddr(tileID), wy%8, wx%8)
		} else if bgEnabled {
			bgx := (x + int(p.scx)) & 0xFF
			bgy := (ly + int(p.scy)) & 0xFF
			tileCol := bgx / 8
			tileRow := bgy / 8
			tileAddr := bgMap + uint16(tileRow*32+tileCol)
			tileID := p.vram[tileAddr-0x8000]
			idx = p.tileColorIndex(p.tileDataAddr(tileID), bgy%8, bgx%8)
		}

		colorIdx[x] = idx
		p.Framebuffer[ly*ScreenWidth+x] = shadeARGB(p.bgp, idx)
	}

	if drewWindow {
		p.windowLine++
	}

	if p.lcdc&lcdcOBJEnable != 0 {
		p.renderSprites(ly, colorIdx)
	}
}

func (p *PPU) renderSprites(ly int, bgColorIdx []byte) {
	height := 8
	if p.lcdc&lcdcOBJSize != 0 {
		height = 16
	}

	// Painter's algorithm: draw lowest-priority sprites first so
	// higher-priority ones win the overwrite on overlap. Priority is x
	// ascending, then OAM index ascending on a tie (spec §4.4), so draw
	// order here is the reverse: x descending, then OAM index
	// descending, leaving the highest-priority sprite drawn last.
	sprites := p.spritesOnLine(ly, height)
	sort.SliceStable(sprites, func(i, j int) bool {
		if sprites[i].x != sprites[j].x {
			return sprites[i].x > sprites[j].x
		}
		return sprites[i].oamIndex > sprites[j].oamIndex
	})

	for _, s := range sprites {
		row := ly - (int(s.y) - 16)
		if s.flipY {
			row = height - 1 - row
		}
		tileID := s.tileID
		if height == 16 {
			tileID &^= 0x01
			if row >= 8 {
				tileID |= 0x01
				row -= 8
			}
		}

		for col := 0; col < 8; col++ {
			screenX := int(s.x) - 8 + col
			if screenX < 0 || screenX >= ScreenWidth {
				continue
			}
			srcCol := col
			if s.flipX {
				srcCol = 7 - col
			}
			idx := p.tileColorIndex(spriteTileAddr(tileID), row, srcCol)
			if idx == 0 {
				continue // transparent
			}
			if s.prio == behind && bgColorIdx[screenX] != 0 {
				continue
			}
			palette := p.obp0
			if s.palette == 1 {
				palette = p.obp1
			}
			p.Framebuffer[ly*ScreenWidth+screenX] = shadeARGB(palette, idx)
		}
	}
}
