package device

import "testing"

type romCart struct {
	rom [0x8000]byte
	ram [0x2000]byte
}

func (c *romCart) Read(addr uint16) byte {
	if addr >= 0xA000 {
		return c.ram[addr-0xA000]
	}
	return c.rom[addr]
}

func (c *romCart) Write(addr uint16, v byte) {
	if addr >= 0xA000 {
		c.ram[addr-0xA000] = v
	}
	// ROM writes ignored: no MBC.
}

func TestStepFrameAdvancesLYThroughOneFrame(t *testing.T) {
	cart := &romCart{}
	// Fill ROM with NOPs starting at the post-boot entry point so the
	// harness has something to execute.
	for i := 0x0100; i < len(cart.rom); i++ {
		cart.rom[i] = 0x00
	}
	h := New(cart)
	h.Bus.Write(0xFF40, 0x80) // LCD enable

	h.StepFrame()

	if !h.FrameReady() {
		t.Errorf("expected a frame to complete after one StepFrame call")
	}
}

func TestResetRestoresPostBootState(t *testing.T) {
	cart := &romCart{}
	h := New(cart)
	h.CPU.SetPC(0x9999)
	h.Reset()
	if h.CPU.PC() != 0x0100 {
		t.Errorf("PC after reset = %#x, want 0x0100", h.CPU.PC())
	}
}

func TestFramebufferIsScreenSized(t *testing.T) {
	cart := &romCart{}
	h := New(cart)
	if len(h.Framebuffer()) != 160*144 {
		t.Errorf("framebuffer length = %d, want %d", len(h.Framebuffer()), 160*144)
	}
}
