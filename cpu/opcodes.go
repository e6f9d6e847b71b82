package cpu

// dispatch executes exactly one of the 256 unprefixed opcodes and
// returns the T-states charged: a single flat switch, no opcode-class
// hierarchy. Undefined opcodes (0xD3,0xDB,0xDD,0xE3,0xE4,0xEB,0xEC,0xED,0xF4,
// 0xFC,0xFD) fall through to the default case as no-ops that charge
// nothing beyond the fetch already accounted for by the 4 T-states
// every such case returns.
func (c *CPU) dispatch(op byte) int {
	switch op {
	case 0x00: // NOP
		return 4
	case 0x01: // LD BC,nn
		c.r.setBC(c.fetch16())
		return 12
	case 0x02: // LD (BC),A
		c.writeByte(c.r.getBC(), c.r.a)
		return 8
	case 0x03: // INC BC
		c.r.setBC(c.r.getBC() + 1)
		return 8
	case 0x04: // INC B
		c.r.b = c.inc8(c.r.b)
		return 4
	case 0x05: // DEC B
		c.r.b = c.dec8(c.r.b)
		return 4
	case 0x06: // LD B,n
		c.r.b = c.fetch()
		return 8
	case 0x07: // RLCA
		c.r.a = c.rlc(c.r.a)
		c.setZ(false)
		return 4
	case 0x08: // LD (nn),SP
		c.writeWord(c.fetch16(), c.r.sp)
		return 20
	case 0x09: // ADD HL,BC
		c.addHL(c.r.getBC())
		return 8
	case 0x0A: // LD A,(BC)
		c.r.a = c.readByte(c.r.getBC())
		return 8
	case 0x0B: // DEC BC
		c.r.setBC(c.r.getBC() - 1)
		return 8
	case 0x0C: // INC C
		c.r.c = c.inc8(c.r.c)
		return 4
	case 0x0D: // DEC C
		c.r.c = c.dec8(c.r.c)
		return 4
	case 0x0E: // LD C,n
		c.r.c = c.fetch()
		return 8
	case 0x0F: // RRCA
		c.r.a = c.rrc(c.r.a)
		c.setZ(false)
		return 4

	case 0x10: // STOP
		c.stopped = true
		c.fetch() // STOP is 2 bytes; the second is conventionally 0x00
		return 4
	case 0x11: // LD DE,nn
		c.r.setDE(c.fetch16())
		return 12
	case 0x12: // LD (DE),A
		c.writeByte(c.r.getDE(), c.r.a)
		return 8
	case 0x13: // INC DE
		c.r.setDE(c.r.getDE() + 1)
		return 8
	case 0x14: // INC D
		c.r.d = c.inc8(c.r.d)
		return 4
	case 0x15: // DEC D
		c.r.d = c.dec8(c.r.d)
		return 4
	case 0x16: // LD D,n
		c.r.d = c.fetch()
		return 8
	case 0x17: // RLA
		c.r.a = c.rl(c.r.a)
		c.setZ(false)
		return 4
	case 0x18: // JR e
		e := int8(c.fetch())
		c.jr(e)
		return 12
	case 0x19: // ADD HL,DE
		c.addHL(c.r.getDE())
		return 8
	case 0x1A: // LD A,(DE)
		c.r.a = c.readByte(c.r.getDE())
		return 8
	case 0x1B: // DEC DE
		c.r.setDE(c.r.getDE() - 1)
		return 8
	case 0x1C: // INC E
		c.r.e = c.inc8(c.r.e)
		return 4
	case 0x1D: // DEC E
		c.r.e = c.dec8(c.r.e)
		return 4
	case 0x1E: // LD E,n
		c.r.e = c.fetch()
		return 8
	case 0x1F: // RRA
		c.r.a = c.rr(c.r.a)
		c.setZ(false)
		return 4

	case 0x20: // JR NZ,e
		e := int8(c.fetch())
		if !c.zFlag() {
			c.jr(e)
			return 12
		}
		return 8
	case 0x21: // LD HL,nn
		c.r.setHL(c.fetch16())
		return 12
	case 0x22: // LD (HL+),A
		c.writeByte(c.r.getHL(), c.r.a)
		c.r.setHL(c.r.getHL() + 1)
		return 8
	case 0x23: // INC HL
		c.r.setHL(c.r.getHL() + 1)
		return 8
	case 0x24: // INC H
		c.r.h = c.inc8(c.r.h)
		return 4
	case 0x25: // DEC H
		c.r.h = c.dec8(c.r.h)
		return 4
	case 0x26: // LD H,n
		c.r.h = c.fetch()
		return 8
	case 0x27: // DAA
		c.daa()
		return 4
	case 0x28: // JR Z,e
		e := int8(c.fetch())
		if c.zFlag() {
			c.jr(e)
			return 12
		}
		return 8
	case 0x29: // ADD HL,HL
		c.addHL(c.r.getHL())
		return 8
	case 0x2A: // LD A,(HL+)
		c.r.a = c.readByte(c.r.getHL())
		c.r.setHL(c.r.getHL() + 1)
		return 8
	case 0x2B: // DEC HL
		c.r.setHL(c.r.getHL() - 1)
		return 8
	case 0x2C: // INC L
		c.r.l = c.inc8(c.r.l)
		return 4
	case 0x2D: // DEC L
		c.r.l = c.dec8(c.r.l)
		return 4
	case 0x2E: // LD L,n
		c.r.l = c.fetch()
		return 8
	case 0x2F: // CPL
		c.r.a = ^c.r.a
		c.setN(true)
		c.setH(true)
		return 4

	case 0x30: // JR NC,e
		e := int8(c.fetch())
		if !c.cFlag() {
			c.jr(e)
			return 12
		}
		return 8
	case 0x31: // LD SP,nn
		c.r.sp = c.fetch16()
		return 12
	case 0x32: // LD (HL-),A
		c.writeByte(c.r.getHL(), c.r.a)
		c.r.setHL(c.r.getHL() - 1)
		return 8
	case 0x33: // INC SP
		c.r.sp++
		return 8
	case 0x34: // INC (HL)
		addr := c.r.getHL()
		c.writeByte(addr, c.inc8(c.readByte(addr)))
		return 12
	case 0x35: // DEC (HL)
		addr := c.r.getHL()
		c.writeByte(addr, c.dec8(c.readByte(addr)))
		return 12
	case 0x36: // LD (HL),n
		c.writeByte(c.r.getHL(), c.fetch())
		return 12
	case 0x37: // SCF
		c.setCf(true)
		c.setN(false)
		c.setH(false)
		return 4
	case 0x38: // JR C,e
		e := int8(c.fetch())
		if c.cFlag() {
			c.jr(e)
			return 12
		}
		return 8
	case 0x39: // ADD HL,SP
		c.addHL(c.r.sp)
		return 8
	case 0x3A: // LD A,(HL-)
		c.r.a = c.readByte(c.r.getHL())
		c.r.setHL(c.r.getHL() - 1)
		return 8
	case 0x3B: // DEC SP
		c.r.sp--
		return 8
	case 0x3C: // INC A
		c.r.a = c.inc8(c.r.a)
		return 4
	case 0x3D: // DEC A
		c.r.a = c.dec8(c.r.a)
		return 4
	case 0x3E: // LD A,n
		c.r.a = c.fetch()
		return 8
	case 0x3F: // CCF
		c.setCf(!c.cFlag())
		c.setN(false)
		c.setH(false)
		return 4

	case 0x76: // HALT
		c.halted = true
		return 4

	case 0xC0: // RET NZ
		if !c.zFlag() {
			c.r.pc = c.popWord()
			return 20
		}
		return 8
	case 0xC1: // POP BC
		c.setR16af(0, c.popWord())
		return 12
	case 0xC2: // JP NZ,nn
		addr := c.fetch16()
		if !c.zFlag() {
			c.r.pc = addr
			return 16
		}
		return 12
	case 0xC3: // JP nn
		c.r.pc = c.fetch16()
		return 16
	case 0xC4: // CALL NZ,nn
		addr := c.fetch16()
		if !c.zFlag() {
			c.pushWord(c.r.pc)
			c.r.pc = addr
			return 24
		}
		return 12
	case 0xC5: // PUSH BC
		c.pushWord(c.getR16af(0))
		return 16
	case 0xC6: // ADD A,n
		c.r.a = c.add(c.r.a, c.fetch())
		return 8
	case 0xC7: // RST 00h
		c.rst(0x00)
		return 16
	case 0xC8: // RET Z
		if c.zFlag() {
			c.r.pc = c.popWord()
			return 20
		}
		return 8
	case 0xC9: // RET
		c.r.pc = c.popWord()
		return 16
	case 0xCA: // JP Z,nn
		addr := c.fetch16()
		if c.zFlag() {
			c.r.pc = addr
			return 16
		}
		return 12
	case 0xCB: // CB prefix
		return c.executeCB()
	case 0xCC: // CALL Z,nn
		addr := c.fetch16()
		if c.zFlag() {
			c.pushWord(c.r.pc)
			c.r.pc = addr
			return 24
		}
		return 12
	case 0xCD: // CALL nn
		addr := c.fetch16()
		c.pushWord(c.r.pc)
		c.r.pc = addr
		return 24
	case 0xCE: // ADC A,n
		c.r.a = c.adc(c.r.a, c.fetch())
		return 8
	case 0xCF: // RST 08h
		c.rst(0x08)
		return 16

	case 0xD0: // RET NC
		if !c.cFlag() {
			c.r.pc = c.popWord()
			return 20
		}
		return 8
	case 0xD1: // POP DE
		c.setR16af(1, c.popWord())
		return 12
	case 0xD2: // JP NC,nn
		addr := c.fetch16()
		if !c.cFlag() {
			c.r.pc = addr
			return 16
		}
		return 12
	case 0xD4: // CALL NC,nn
		addr := c.fetch16()
		if !c.cFlag() {
			c.pushWord(c.r.pc)
			c.r.pc = addr
			return 24
		}
		return 12
	case 0xD5: // PUSH DE
		c.pushWord(c.getR16af(1))
		return 16
	case 0xD6: // SUB n
		c.r.a = c.sub(c.r.a, c.fetch())
		return 8
	case 0xD7: // RST 10h
		c.rst(0x10)
		return 16
	case 0xD8: // RET C
		if c.cFlag() {
			c.r.pc = c.popWord()
			return 20
		}
		return 8
	case 0xD9: // RETI
		c.r.pc = c.popWord()
		c.ime = true
		return 16
	case 0xDA: // JP C,nn
		addr := c.fetch16()
		if c.cFlag() {
			c.r.pc = addr
			return 16
		}
		return 12
	case 0xDC: // CALL C,nn
		addr := c.fetch16()
		if c.cFlag() {
			c.pushWord(c.r.pc)
			c.r.pc = addr
			return 24
		}
		return 12
	case 0xDE: // SBC A,n
		c.r.a = c.sbc(c.r.a, c.fetch())
		return 8
	case 0xDF: // RST 18h
		c.rst(0x18)
		return 16

	case 0xE0: // LDH (n),A
		c.writeByte(0xFF00+uint16(c.fetch()), c.r.a)
		return 12
	case 0xE1: // POP HL
		c.setR16af(2, c.popWord())
		return 12
	case 0xE2: // LD (C),A
		c.writeByte(0xFF00+uint16(c.r.c), c.r.a)
		return 8
	case 0xE5: // PUSH HL
		c.pushWord(c.getR16af(2))
		return 16
	case 0xE6: // AND n
		c.r.a = c.and(c.r.a, c.fetch())
		return 8
	case 0xE7: // RST 20h
		c.rst(0x20)
		return 16
	case 0xE8: // ADD SP,e8
		c.r.sp = c.addSPe8(int8(c.fetch()))
		return 16
	case 0xE9: // JP (HL)
		c.r.pc = c.r.getHL()
		return 4
	case 0xEA: // LD (nn),A
		c.writeByte(c.fetch16(), c.r.a)
		return 16
	case 0xEE: // XOR n
		c.r.a = c.xor(c.r.a, c.fetch())
		return 8
	case 0xEF: // RST 28h
		c.rst(0x28)
		return 16

	case 0xF0: // LDH A,(n)
		c.r.a = c.readByte(0xFF00 + uint16(c.fetch()))
		return 12
	case 0xF1: // POP AF
		c.setR16af(3, c.popWord())
		return 12
	case 0xF2: // LD A,(C)
		c.r.a = c.readByte(0xFF00 + uint16(c.r.c))
		return 8
	case 0xF3: // DI
		c.ime = false
		c.eiPending = false
		return 4
	case 0xF5: // PUSH AF
		c.pushWord(c.getR16af(3))
		return 16
	case 0xF6: // OR n
		c.r.a = c.or(c.r.a, c.fetch())
		return 8
	case 0xF7: // RST 30h
		c.rst(0x30)
		return 16
	case 0xF8: // LD HL,SP+e8
		c.r.setHL(c.addSPe8(int8(c.fetch())))
		return 12
	case 0xF9: // LD SP,HL
		c.r.sp = c.r.getHL()
		return 8
	case 0xFA: // LD A,(nn)
		c.r.a = c.readByte(c.fetch16())
		return 16
	case 0xFB: // EI
		c.eiPending = true
		return 4
	case 0xFE: // CP n
		c.cp(c.r.a, c.fetch())
		return 8
	case 0xFF: // RST 38h
		c.rst(0x38)
		return 16
	}

	// 0x40-0x7F: LD r8,r8' (0x76 handled above as HALT)
	if op >= 0x40 && op <= 0x7F {
		dst := (op >> 3) & 0x07
		src := op & 0x07
		c.setR8(dst, c.getR8(src))
		if dst == 6 || src == 6 {
			return 8
		}
		return 4
	}

	// 0x80-0xBF: ALU A,r8
	if op >= 0x80 && op <= 0xBF {
		alu := (op >> 3) & 0x07
		src := op & 0x07
		x := c.getR8(src)
		switch alu {
		case 0:
			c.r.a = c.add(c.r.a, x)
		case 1:
			c.r.a = c.adc(c.r.a, x)
		case 2:
			c.r.a = c.sub(c.r.a, x)
		case 3:
			c.r.a = c.sbc(c.r.a, x)
		case 4:
			c.r.a = c.and(c.r.a, x)
		case 5:
			c.r.a = c.xor(c.r.a, x)
		case 6:
			c.r.a = c.or(c.r.a, x)
		default:
			c.cp(c.r.a, x)
		}
		if src == 6 {
			return 8
		}
		return 4
	}

	// Undefined opcodes: no-ops, charge nothing beyond the fetch.
	return 4
}

// jr applies a signed PC-relative jump; the offset byte has already
// been consumed by fetch() before this is called.
func (c *CPU) jr(e int8) {
	c.r.pc = uint16(int32(c.r.pc) + int32(e))
}

func (c *CPU) rst(vector uint16) {
	c.pushWord(c.r.pc)
	c.r.pc = vector
}
