// Package cpu implements the DMG (Game Boy) Sharp SM83 CPU core: the
// register file, ALU primitives, and the fetch/decode/execute loop
// with interrupt servicing. https://gbdev.io/pandocs/CPU_Registers_and_Flags.html
package cpu

import "fmt"

const (
	regIF = 0xFF0F
	regIE = 0xFFFF
)

// Interrupt vectors, indexed by the bit position of IE&IF that is
// serviced. https://gbdev.io/pandocs/Interrupts.html
var interruptVectors = [5]uint16{0x0040, 0x0048, 0x0050, 0x0058, 0x0060}

// Bus is the flat 16-bit address space the CPU reads and writes
// through. Both the CPU and the PPU hold a reference to the same Bus.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, v byte)
}

// PPU is the subset of the PPU's surface the CPU drives: every
// instruction charges the PPU the same number of T-states it just
// spent, keeping rendering cycle-synchronized with instruction
// dispatch (spec §5's ordering guarantee).
type PPU interface {
	Step(cycles int)
}

// CPU is the fetch/decode/execute engine plus the register file and
// interrupt/halt state. It is total: every Step call terminates and
// every opcode dispatches to exactly one primitive.
type CPU struct {
	r   registers
	bus Bus
	ppu PPU

	cycle   uint64 // monotonic T-state counter, reset by subtraction once per frame
	stopped bool
	halted  bool
	ime     bool

	// eiPending defers IME=true to the start of the next Step call, so
	// IME still reads false right after EI. That Step sets IME before its
	// own interrupt check, so an interrupt that is already pending is
	// serviced before the instruction following EI runs.
	eiPending bool
}

// New constructs a CPU wired to bus and ppu, with the post-boot
// handoff register state from spec §3.
func New(bus Bus, ppu PPU) *CPU {
	c := &CPU{bus: bus, ppu: ppu}
	c.r.reset()
	return c
}

// Cycle returns the running T-state counter.
func (c *CPU) Cycle() uint64 { return c.cycle }

// ConsumeFrameCycles subtracts one frame's worth of T-states (70,224)
// from the running counter; the device harness calls this once per
// frame so the counter never grows unbounded.
func (c *CPU) ConsumeFrameCycles(frameCycles uint64) {
	c.cycle -= frameCycles
}

func (c *CPU) readByte(addr uint16) byte     { return c.bus.Read(addr) }
func (c *CPU) writeByte(addr uint16, v byte) { c.bus.Write(addr, v) }

func (c *CPU) readWord(addr uint16) uint16 {
	lo := uint16(c.readByte(addr))
	hi := uint16(c.readByte(addr + 1))
	return lo | hi<<8
}

func (c *CPU) writeWord(addr uint16, v uint16) {
	c.writeByte(addr, byte(v))
	c.writeByte(addr+1, byte(v>>8))
}

func (c *CPU) fetch() byte {
	b := c.readByte(c.r.pc)
	c.r.pc++
	return b
}

func (c *CPU) fetch16() uint16 {
	lo := uint16(c.fetch())
	hi := uint16(c.fetch())
	return lo | hi<<8
}

// pushByte/popByte/pushWord/popWord implement the canonical stack
// layout: decrement SP then write the high byte, decrement SP then
// write the low byte. Every push/pop consumer (PUSH/POP, CALL/RET,
// RST, interrupt servicing) shares this so pairs always round-trip.
func (c *CPU) pushByte(v byte) {
	c.r.sp--
	c.writeByte(c.r.sp, v)
}

func (c *CPU) popByte() byte {
	v := c.readByte(c.r.sp)
	c.r.sp++
	return v
}

func (c *CPU) pushWord(v uint16) {
	c.pushByte(byte(v >> 8))
	c.pushByte(byte(v))
}

func (c *CPU) popWord() uint16 {
	lo := uint16(c.popByte())
	hi := uint16(c.popByte())
	return lo | hi<<8
}

// pendingInterrupt returns the bit index (0..4) of the lowest-set bit
// of IE&IF, and whether any interrupt is pending at all.
func (c *CPU) pendingInterrupt() (bit uint, pending bool) {
	req := c.readByte(regIE) & c.readByte(regIF) & 0x1F
	if req == 0 {
		return 0, false
	}
	for bit = 0; bit < 5; bit++ {
		if req&(1<<bit) != 0 {
			return bit, true
		}
	}
	return 0, false
}

// serviceInterrupt implements spec §4.3's interrupt servicing
// contract. Returns the T-states charged, or 0 if nothing fired.
func (c *CPU) serviceInterrupt() int {
	bit, pending := c.pendingInterrupt()
	if !c.ime || !pending {
		return 0
	}

	c.halted = false
	ifReg := c.readByte(regIF)
	c.writeByte(regIF, ifReg&^(1<<bit))
	c.ime = false

	c.pushWord(c.r.pc)
	c.r.pc = interruptVectors[bit]

	return 20
}

// Step executes exactly one instruction (or services one interrupt,
// or lets a single HALT tick of time pass), then advances the PPU by
// the same number of T-states. It returns the number of T-states
// charged.
func (c *CPU) Step() int {
	// A pending EI from the *previous* Step call takes effect now, one
	// instruction after EI was dispatched, before this call fetches or
	// services anything of its own.
	if c.eiPending {
		c.ime = true
		c.eiPending = false
	}

	if cyc := c.serviceInterrupt(); cyc != 0 {
		c.cycle += uint64(cyc)
		c.ppu.Step(cyc)
		return cyc
	}

	if c.stopped {
		if _, pending := c.pendingInterrupt(); pending {
			c.stopped = false
		} else {
			c.cycle += 4
			c.ppu.Step(4)
			return 4
		}
	}

	if c.halted {
		if _, pending := c.pendingInterrupt(); pending {
			// IME is false here (serviceInterrupt would have fired
			// otherwise): wake up but do not service, per spec §4.3.
			c.halted = false
		} else {
			c.cycle += 4
			c.ppu.Step(4)
			return 4
		}
	}

	cyc := 4
	if !c.halted {
		op := c.fetch()
		cyc = c.dispatch(op)
	}

	c.cycle += uint64(cyc)
	c.ppu.Step(cyc)
	return cyc
}

// Reset restores the post-boot register state without touching halt
// or interrupt state; used by the debug monitor's "reset" command.
func (c *CPU) Reset() {
	c.r.reset()
}

// PC exposes the program counter, mainly for debug tooling.
func (c *CPU) PC() uint16 { return c.r.pc }

// SetPC allows a debug monitor to redirect execution.
func (c *CPU) SetPC(pc uint16) { c.r.pc = pc }

// SP exposes the stack pointer, mainly for debug tooling.
func (c *CPU) SP() uint16 { return c.r.sp }

// IME reports whether the interrupt master enable flag is set.
func (c *CPU) IME() bool { return c.ime }

// Halted reports whether the CPU is suspended awaiting an interrupt.
func (c *CPU) Halted() bool { return c.halted }

// Stopped reports whether the CPU is suspended by STOP, awaiting an
// interrupt to resume.
func (c *CPU) Stopped() bool { return c.stopped }

func (c *CPU) String() string {
	return fmt.Sprintf("AF:%04x BC:%04x DE:%04x HL:%04x SP:%04x PC:%04x IME:%t OP:%02x",
		c.r.getAF(), c.r.getBC(), c.r.getDE(), c.r.getHL(), c.r.sp, c.r.pc, c.ime, c.bus.Read(c.r.pc))
}
