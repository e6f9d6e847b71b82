package ppu

// priority mirrors OAM attribute bit 7: whether the sprite draws
// behind non-zero background/window pixels or in front of them.
type priority uint8

const (
	front priority = iota
	behind
)

// sprite is one decoded 4-byte OAM entry.
// https://gbdev.io/pandocs/OAM.html#byte-3-attributesflags
type sprite struct {
	y, x     uint8
	tileID   uint8
	palette  uint8 // 0 = OBP0, 1 = OBP1
	prio     priority
	flipX    bool
	flipY    bool
	oamIndex int // position in OAM (0..39), lower wins ties on x
}

func spriteFromBytes(in []byte) sprite {
	attr := in[3]
	return sprite{
		y:       in[0],
		x:       in[1],
		tileID:  in[2],
		palette: (attr >> 4) & 0x01,
		prio:    priority((attr >> 7) & 0x01),
		flipY:   attr&0x40 != 0,
		flipX:   attr&0x20 != 0,
	}
}

// spritesOnLine returns up to 10 sprites (the hardware-documented
// per-scanline cap) whose vertical extent covers ly, ordered by OAM
// index (the DMG's priority tiebreak: earlier index wins overlaps).
func (p *PPU) spritesOnLine(ly int, height int) []sprite {
	var found []sprite
	for i := 0; i < oamSize; i += 4 {
		s := spriteFromBytes(p.oam[i : i+4])
		top := int(s.y) - 16
		if ly >= top && ly < top+height {
			s.oamIndex = i / 4
			found = append(found, s)
			if len(found) == 10 {
				break
			}
		}
	}
	return found
}
