package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatBus is a minimal 64KiB RAM-backed Bus fixture, for exercising
// the CPU in isolation from the real memory map.
type flatBus struct {
	mem [0x10000]byte
}

func (b *flatBus) Read(addr uint16) byte     { return b.mem[addr] }
func (b *flatBus) Write(addr uint16, v byte) { b.mem[addr] = v }

// countingPPU records how many cycles it was charged, so tests can
// assert the CPU keeps the PPU's clock in lockstep with its own.
type countingPPU struct {
	cycles int
}

func (p *countingPPU) Step(cycles int) { p.cycles += cycles }

func newTestCPU() (*CPU, *flatBus, *countingPPU) {
	bus := &flatBus{}
	ppu := &countingPPU{}
	return New(bus, ppu), bus, ppu
}

func TestResetState(t *testing.T) {
	c, _, _ := newTestCPU()
	assert.Equal(t, byte(0x01), c.r.a)
	assert.Equal(t, byte(0xB0), c.r.f)
	assert.Equal(t, byte(0x00), c.r.b)
	assert.Equal(t, byte(0x13), c.r.c)
	assert.Equal(t, byte(0x00), c.r.d)
	assert.Equal(t, byte(0xD8), c.r.e)
	assert.Equal(t, byte(0x01), c.r.h)
	assert.Equal(t, byte(0x4D), c.r.l)
	assert.Equal(t, uint16(0xFFFE), c.r.sp)
	assert.Equal(t, uint16(0x0100), c.r.pc)
}

func TestNOP(t *testing.T) {
	c, bus, ppu := newTestCPU()
	bus.mem[0x0100] = 0x00
	cyc := c.Step()
	assert.Equal(t, 4, cyc)
	assert.Equal(t, uint16(0x0101), c.r.pc)
	assert.Equal(t, 4, ppu.cycles)
}

func TestAddAB(t *testing.T) {
	c, bus, _ := newTestCPU()
	c.r.a = 0x3A
	c.r.b = 0xC6
	bus.mem[0x0100] = 0x80 // ADD A,B
	cyc := c.Step()
	assert.Equal(t, 4, cyc)
	assert.Equal(t, byte(0x00), c.r.a)
	assert.Equal(t, byte(0xB0), c.r.f)
	assert.True(t, c.zFlag())
	assert.True(t, c.hFlag())
	assert.True(t, c.cFlag())
	assert.False(t, c.nFlag())
}

func TestLDBCImmediate(t *testing.T) {
	c, bus, _ := newTestCPU()
	bus.mem[0x0100] = 0x01
	bus.mem[0x0101] = 0x34
	bus.mem[0x0102] = 0x12
	cyc := c.Step()
	assert.Equal(t, 12, cyc)
	assert.Equal(t, uint16(0x1234), c.r.getBC())
	assert.Equal(t, uint16(0x0103), c.r.pc)
}

func TestJRNZ(t *testing.T) {
	c, bus, _ := newTestCPU()
	bus.mem[0x0100] = 0x20 // JR NZ,+2
	bus.mem[0x0101] = 0x02
	c.setZ(false)
	cyc := c.Step()
	assert.Equal(t, 12, cyc)
	assert.Equal(t, uint16(0x0104), c.r.pc)

	c2, bus2, _ := newTestCPU()
	bus2.mem[0x0100] = 0x20
	bus2.mem[0x0101] = 0x02
	c2.setZ(true)
	cyc2 := c2.Step()
	assert.Equal(t, 8, cyc2)
	assert.Equal(t, uint16(0x0102), c2.r.pc)
}

func TestCallPushesReturnAddressHighThenLow(t *testing.T) {
	c, bus, _ := newTestCPU()
	c.r.sp = 0xFFFE
	bus.mem[0x0100] = 0xCD // CALL 0x1234
	bus.mem[0x0101] = 0x34
	bus.mem[0x0102] = 0x12
	cyc := c.Step()
	assert.Equal(t, 24, cyc)
	assert.Equal(t, uint16(0x1234), c.r.pc)
	assert.Equal(t, uint16(0xFFFC), c.r.sp)
	assert.Equal(t, byte(0x01), bus.mem[0xFFFD]) // return PC high byte
	assert.Equal(t, byte(0x03), bus.mem[0xFFFC]) // return PC low byte

	retCyc := c.dispatch(0xC9) // RET
	assert.Equal(t, 16, retCyc)
	assert.Equal(t, uint16(0x0103), c.r.pc)
	assert.Equal(t, uint16(0xFFFE), c.r.sp)
}

func TestPushPopRoundTripMasksFLowNibble(t *testing.T) {
	c, _, _ := newTestCPU()
	c.r.sp = 0xFFFE
	c.r.setAF(0x12FF)
	cyc := c.dispatch(0xF5) // PUSH AF
	assert.Equal(t, 16, cyc)
	c.r.setAF(0)
	cyc = c.dispatch(0xF1) // POP AF
	assert.Equal(t, 12, cyc)
	assert.Equal(t, uint16(0x12F0), c.r.getAF())
}

func TestIncDecRoundTrip(t *testing.T) {
	c, _, _ := newTestCPU()
	c.r.b = 0x0F
	c.dispatch(0x04) // INC B
	require.Equal(t, byte(0x10), c.r.b)
	assert.True(t, c.hFlag())
	c.dispatch(0x05) // DEC B
	assert.Equal(t, byte(0x0F), c.r.b)
	assert.True(t, c.hFlag())
}

func TestCPLTwiceRestoresA(t *testing.T) {
	c, _, _ := newTestCPU()
	c.r.a = 0x5A
	c.dispatch(0x2F)
	c.dispatch(0x2F)
	assert.Equal(t, byte(0x5A), c.r.a)
}

func TestHaltWaitsForInterruptWithoutServicing(t *testing.T) {
	c, bus, ppu := newTestCPU()
	bus.mem[0x0100] = 0x76 // HALT
	c.ime = false
	c.Step()
	assert.True(t, c.halted)

	bus.mem[regIE] = 0x01
	bus.mem[regIF] = 0x01
	cyc := c.Step()
	assert.False(t, c.halted)
	assert.Equal(t, 4, cyc)
	assert.Equal(t, byte(0x01), bus.mem[regIF]) // not cleared: IME was false
	_ = ppu
}

func TestInterruptServicingPushesPCAndClearsIF(t *testing.T) {
	c, bus, ppu := newTestCPU()
	c.ime = true
	c.r.pc = 0x0150
	c.r.sp = 0xFFFE
	bus.mem[regIE] = 0x01
	bus.mem[regIF] = 0x01

	cyc := c.Step()
	assert.Equal(t, 20, cyc)
	assert.Equal(t, uint16(0x0040), c.r.pc)
	assert.False(t, c.ime)
	assert.Equal(t, byte(0x00), bus.mem[regIF])
	assert.Equal(t, uint16(0xFFFC), c.r.sp)
	assert.Equal(t, 20, ppu.cycles)
}

func TestInterruptPriorityIsLowestBit(t *testing.T) {
	c, bus, _ := newTestCPU()
	c.ime = true
	bus.mem[regIE] = 0x1F
	bus.mem[regIF] = 0x06 // bits 1 (STAT) and 2 (Timer) pending
	c.Step()
	assert.Equal(t, uint16(0x0048), c.r.pc) // STAT wins, lowest set bit
	assert.Equal(t, byte(0x04), bus.mem[regIF])
}

func TestEIIsDelayedByOneInstruction(t *testing.T) {
	c, bus, _ := newTestCPU()
	bus.mem[0x0100] = 0xFB // EI
	bus.mem[0x0101] = 0x00 // NOP
	c.Step()
	assert.False(t, c.IME())
	c.Step()
	assert.True(t, c.IME())
}
