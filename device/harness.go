// Package device wires the cpu, membus, and ppu packages into a
// runnable machine and drives it one frame at a time.
package device

import (
	"github.com/nwidger/dmgo/cpu"
	"github.com/nwidger/dmgo/membus"
	"github.com/nwidger/dmgo/ppu"
)

// Harness owns the bus, PPU, and CPU for the lifetime of a run and
// exposes the single entry point the presenter drives: StepFrame.
type Harness struct {
	Bus *membus.Bus
	PPU *ppu.PPU
	CPU *cpu.CPU
}

// New constructs a fully-wired Harness around the given cartridge.
// The PPU and bus reference each other (the PPU raises interrupts
// through the bus; the bus routes VRAM/OAM/register traffic to the
// PPU), so the bus is built first with a nil PPU and patched once the
// PPU exists.
func New(cart membus.Cartridge) *Harness {
	bus := membus.New(cart, nil)
	p := ppu.New(bus)
	bus.PPU = p
	c := cpu.New(bus, p)

	return &Harness{Bus: bus, PPU: p, CPU: c}
}

// AttachJoypad wires an input peripheral onto the bus.
func (h *Harness) AttachJoypad(j membus.Joypad) { h.Bus.AttachJoypad(j) }

// StepFrame runs the CPU (and, transitively, the PPU) for exactly one
// frame's worth of T-states, the same handle_cycles driver shape the
// original implementation used: accumulate instructions until the
// frame budget is spent, then carry the remainder into the next
// frame by subtraction rather than resetting to zero.
func (h *Harness) StepFrame() {
	h.PPU.FrameReady = false
	for h.CPU.Cycle() < ppu.TicksPerFrame {
		h.CPU.Step()
	}
	h.CPU.ConsumeFrameCycles(ppu.TicksPerFrame)
}

// FrameReady reports whether a new frame has finished rendering since
// the last StepFrame call that cleared it.
func (h *Harness) FrameReady() bool { return h.PPU.FrameReady }

// Framebuffer exposes the PPU's 160x144 ARGB pixel buffer.
func (h *Harness) Framebuffer() *[ppu.ScreenWidth * ppu.ScreenHeight]uint32 {
	return &h.PPU.Framebuffer
}

// Reset restores the CPU's post-boot register state.
func (h *Harness) Reset() { h.CPU.Reset() }
