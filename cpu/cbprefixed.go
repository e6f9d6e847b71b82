package cpu

// executeCB dispatches one of the 256 CB-prefixed opcodes. The CB
// opcode space is fully regular — an operation selector and an r8
// operand packed into fixed bit fields — so this single flat switch
// on the decoded fields stands in for 256 named cases.
func (c *CPU) executeCB() int {
	op := c.fetch()
	reg := op & 0x07
	group := op >> 6
	sub := (op >> 3) & 0x07

	mem := reg == 6

	switch group {
	case 0: // rotate/shift family
		x := c.getR8(reg)
		var res byte
		switch sub {
		case 0:
			res = c.rlc(x)
		case 1:
			res = c.rrc(x)
		case 2:
			res = c.rl(x)
		case 3:
			res = c.rr(x)
		case 4:
			res = c.sla(x)
		case 5:
			res = c.sra(x)
		case 6:
			res = c.swap(x)
		case 7:
			res = c.srl(x)
		}
		if sub != 6 {
			c.setZ(res == 0)
		}
		c.setR8(reg, res)
		if mem {
			return 16
		}
		return 8
	case 1: // BIT n,r8
		c.bit(uint(sub), c.getR8(reg))
		if mem {
			return 12
		}
		return 8
	case 2: // RES n,r8
		c.setR8(reg, res(uint(sub), c.getR8(reg)))
		if mem {
			return 16
		}
		return 8
	default: // SET n,r8
		c.setR8(reg, set(uint(sub), c.getR8(reg)))
		if mem {
			return 16
		}
		return 8
	}
}
