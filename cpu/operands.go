package cpu

// r8 register index encoding shared by the unprefixed LD r,r' block
// and every CB-prefixed opcode: 0=B 1=C 2=D 3=E 4=H 5=L 6=(HL) 7=A.
func (c *CPU) getR8(idx byte) byte {
	switch idx {
	case 0:
		return c.r.b
	case 1:
		return c.r.c
	case 2:
		return c.r.d
	case 3:
		return c.r.e
	case 4:
		return c.r.h
	case 5:
		return c.r.l
	case 6:
		return c.readByte(c.r.getHL())
	default:
		return c.r.a
	}
}

// r16 pair index encoding used by the 0x01/0x11/0x21/0x31-style
// opcode blocks: 0=BC 1=DE 2=HL 3=SP.
func (c *CPU) getR16sp(idx byte) uint16 {
	switch idx {
	case 0:
		return c.r.getBC()
	case 1:
		return c.r.getDE()
	case 2:
		return c.r.getHL()
	default:
		return c.r.sp
	}
}

func (c *CPU) setR16sp(idx byte, v uint16) {
	switch idx {
	case 0:
		c.r.setBC(v)
	case 1:
		c.r.setDE(v)
	case 2:
		c.r.setHL(v)
	default:
		c.r.sp = v
	}
}

// r16 pair index encoding used by PUSH/POP: 0=BC 1=DE 2=HL 3=AF.
func (c *CPU) getR16af(idx byte) uint16 {
	if idx == 3 {
		return c.r.getAF()
	}
	return c.getR16sp(idx)
}

func (c *CPU) setR16af(idx byte, v uint16) {
	if idx == 3 {
		c.r.setAF(v)
		return
	}
	c.setR16sp(idx, v)
}

func (c *CPU) setR8(idx byte, v byte) {
	switch idx {
	case 0:
		c.r.b = v
	case 1:
		c.r.c = v
	case 2:
		c.r.d = v
	case 3:
		c.r.e = v
	case 4:
		c.r.h = v
	case 5:
		c.r.l = v
	case 6:
		c.writeByte(c.r.getHL(), v)
	default:
		c.r.a = v
	}
}
