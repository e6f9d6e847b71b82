package cpu

import "math/bits"

// 8-bit ALU primitives. Each except cp returns the result byte; add,
// adc, sub, sbc, and, or, xor and cp set all of Z/N/H/C through setZNHC,
// while inc8 and dec8 use the single-flag setters in flags.go and leave
// C untouched.

func (c *CPU) add(x, y byte) byte {
	sum := uint16(x) + uint16(y)
	res := byte(sum)
	c.setZNHC(res == 0, false, (x&0x0F)+(y&0x0F) > 0x0F, sum > 0xFF)
	return res
}

func (c *CPU) adc(x, y byte) byte {
	var cin uint16
	if c.cFlag() {
		cin = 1
	}
	sum := uint16(x) + uint16(y) + cin
	res := byte(sum)
	h := (x&0x0F)+(y&0x0F)+byte(cin) > 0x0F
	c.setZNHC(res == 0, false, h, sum > 0xFF)
	return res
}

func (c *CPU) sub(x, y byte) byte {
	res := x - y
	c.setZNHC(res == 0, true, (x&0x0F) < (y&0x0F), x < y)
	return res
}

func (c *CPU) sbc(x, y byte) byte {
	var cin byte
	if c.cFlag() {
		cin = 1
	}
	res := x - y - cin
	h := (x & 0x0F) < (y&0x0F)+cin
	cy := uint16(x) < uint16(y)+uint16(cin)
	c.setZNHC(res == 0, true, h, cy)
	return res
}

func (c *CPU) and(x, y byte) byte {
	res := x & y
	c.setZNHC(res == 0, false, true, false)
	return res
}

func (c *CPU) or(x, y byte) byte {
	res := x | y
	c.setZNHC(res == 0, false, false, false)
	return res
}

func (c *CPU) xor(x, y byte) byte {
	res := x ^ y
	c.setZNHC(res == 0, false, false, false)
	return res
}

func (c *CPU) cp(x, y byte) {
	c.sub(x, y)
}

func (c *CPU) inc8(x byte) byte {
	res := x + 1
	c.setZ(res == 0)
	c.setN(false)
	c.setH((x&0x0F)+1 > 0x0F)
	return res
}

func (c *CPU) dec8(x byte) byte {
	res := x - 1
	c.setZ(res == 0)
	c.setN(true)
	c.setH(x&0x0F == 0)
	return res
}

// 16-bit ALU

func (c *CPU) addHL(xy uint16) {
	hl := c.r.getHL()
	sum := uint32(hl) + uint32(xy)
	c.setN(false)
	c.setH((hl&0x0FFF)+(xy&0x0FFF) > 0x0FFF)
	c.setCf(sum > 0xFFFF)
	c.r.setHL(uint16(sum))
}

// addSPe8 implements the documented DMG quirk: flags are computed on
// the low byte of SP plus e as an unsigned 8-bit addition, not on the
// 16-bit operands.
func (c *CPU) addSPe8(e int8) uint16 {
	sp := c.r.sp
	lo := byte(sp)
	e8 := byte(e)
	h := (lo&0x0F)+(e8&0x0F) > 0x0F
	cy := uint16(lo)+uint16(e8) > 0xFF
	c.setZNHC(false, false, h, cy)
	return uint16(int32(sp) + int32(e))
}

func (c *CPU) inc16(xy uint16) uint16 { return xy + 1 }
func (c *CPU) dec16(xy uint16) uint16 { return xy - 1 }

// Rotates and shifts. CB-prefixed callers set Z from the result; the
// bare-A RLCA/RRCA/RLA/RRA opcodes clear Z themselves after calling these.

func (c *CPU) rlc(x byte) byte {
	c.setCf(x&0x80 != 0)
	res := bits.RotateLeft8(x, 1)
	c.setN(false)
	c.setH(false)
	return res
}

func (c *CPU) rrc(x byte) byte {
	c.setCf(x&0x01 != 0)
	res := bits.RotateLeft8(x, -1)
	c.setN(false)
	c.setH(false)
	return res
}

func (c *CPU) rl(x byte) byte {
	var cin byte
	if c.cFlag() {
		cin = 1
	}
	c.setCf(x&0x80 != 0)
	res := (x << 1) | cin
	c.setN(false)
	c.setH(false)
	return res
}

func (c *CPU) rr(x byte) byte {
	var cin byte
	if c.cFlag() {
		cin = 1
	}
	c.setCf(x&0x01 != 0)
	res := (x >> 1) | (cin << 7)
	c.setN(false)
	c.setH(false)
	return res
}

func (c *CPU) sla(x byte) byte {
	c.setCf(x&0x80 != 0)
	res := x << 1
	c.setN(false)
	c.setH(false)
	return res
}

func (c *CPU) sra(x byte) byte {
	c.setCf(x&0x01 != 0)
	res := (x >> 1) | (x & 0x80)
	c.setN(false)
	c.setH(false)
	return res
}

func (c *CPU) srl(x byte) byte {
	c.setCf(x&0x01 != 0)
	res := x >> 1
	c.setN(false)
	c.setH(false)
	return res
}

func (c *CPU) swap(x byte) byte {
	res := (x << 4) | (x >> 4)
	c.setZNHC(res == 0, false, false, false)
	return res
}

func (c *CPU) bit(n uint, x byte) {
	c.setZ(x&(1<<n) == 0)
	c.setN(false)
	c.setH(true)
}

func res(n uint, x byte) byte { return x &^ (1 << n) }
func set(n uint, x byte) byte { return x | (1 << n) }

// daa applies the canonical BCD-correction table after an addition or
// subtraction. The source's DAA omits clearing C when appropriate;
// this follows the canonical table instead.
func (c *CPU) daa() {
	a := c.r.a
	var adjust byte
	carry := c.cFlag()

	if !c.nFlag() {
		if c.hFlag() || a&0x0F > 0x09 {
			adjust |= 0x06
		}
		if carry || a > 0x99 {
			adjust |= 0x60
			carry = true
		}
		a += adjust
	} else {
		if c.hFlag() {
			adjust |= 0x06
		}
		if carry {
			adjust |= 0x60
		}
		a -= adjust
	}

	c.r.a = a
	c.setZ(a == 0)
	c.setH(false)
	c.setCf(carry)
}
