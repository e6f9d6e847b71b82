package ppu

import "testing"

func TestSpriteFromBytesDecodesAttributeByte(t *testing.T) {
	cases := []struct {
		attrib             byte
		wantPalette        uint8
		wantPrio           priority
		wantFlipX, wantFlipY bool
	}{
		{0b11110000, 1, behind, true, true},
		{0b01100000, 0, front, true, true},
		{0b00100000, 0, front, true, false},
		{0b00010000, 1, front, false, false},
		{0b10000000, 0, behind, false, false},
	}

	for i, tc := range cases {
		s := spriteFromBytes([]byte{0, 0, 0, tc.attrib})
		if s.palette != tc.wantPalette || s.prio != tc.wantPrio || s.flipX != tc.wantFlipX || s.flipY != tc.wantFlipY {
			t.Errorf("%d: got palette=%d prio=%d flipX=%t flipY=%t, want palette=%d prio=%d flipX=%t flipY=%t",
				i, s.palette, s.prio, s.flipX, s.flipY, tc.wantPalette, tc.wantPrio, tc.wantFlipX, tc.wantFlipY)
		}
	}
}

func TestSpritesOnLineRespectsTenSpriteCap(t *testing.T) {
	irq := &stubIRQ{}
	p := New(irq)
	for i := 0; i < 12; i++ {
		base := i * 4
		p.oam[base] = 32   // y=32 -> top=16, covers lines 16-23
		p.oam[base+1] = 8
		p.oam[base+2] = byte(i)
		p.oam[base+3] = 0
	}
	found := p.spritesOnLine(16, 8)
	if len(found) != 10 {
		t.Errorf("spritesOnLine returned %d sprites, want 10 (hardware cap)", len(found))
	}
}
