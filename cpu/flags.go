package cpu

// setZNHC is the single source of truth for writing all four flags at
// once. Primitives that leave some flags untouched (inc8, dec8, the
// rotates and shifts, bit, daa) use the single-flag setters below
// instead; neither path pokes c.r.f directly, per the "flag
// computation duplication" note in the original source.
func (c *CPU) setZNHC(z, n, h, carry bool) {
	var f byte
	if z {
		f |= flagZ
	}
	if n {
		f |= flagN
	}
	if h {
		f |= flagH
	}
	if carry {
		f |= flagC
	}
	c.r.f = f
}

func (c *CPU) setZ(z bool)  { c.r.setFlag(flagZ, z) }
func (c *CPU) setN(n bool)  { c.r.setFlag(flagN, n) }
func (c *CPU) setH(h bool)  { c.r.setFlag(flagH, h) }
func (c *CPU) setCf(cf bool) { c.r.setFlag(flagC, cf) }

func (c *CPU) zFlag() bool { return c.r.flag(flagZ) }
func (c *CPU) nFlag() bool { return c.r.flag(flagN) }
func (c *CPU) hFlag() bool { return c.r.flag(flagH) }
func (c *CPU) cFlag() bool { return c.r.flag(flagC) }
