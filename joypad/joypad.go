// Package joypad implements the DMG's single joypad register
// (0xFF00) as an ebiten key-polling peripheral.
// https://gbdev.io/pandocs/Joypad_Input.html
package joypad

import "github.com/hajimehoshi/ebiten/v2"

// Button bit positions within the action/direction nibbles.
const (
	BitRightOrA     = 0
	BitLeftOrB      = 1
	BitUpOrSelect   = 2
	BitDownOrStart  = 3
)

var actionKeys = []ebiten.Key{
	ebiten.KeyX,     // A
	ebiten.KeyZ,     // B
	ebiten.KeyShift, // Select
	ebiten.KeyEnter, // Start
}

var directionKeys = []ebiten.Key{
	ebiten.KeyRight,
	ebiten.KeyLeft,
	ebiten.KeyUp,
	ebiten.KeyDown,
}

// InterruptLine is the subset of membus.Bus the joypad raises its
// interrupt through.
type InterruptLine interface {
	RequestInterrupt(bit uint)
}

const joypadIRQBit = 4

// Joypad polls ebiten's key state and exposes it through the DMG's
// strobe-select joypad register protocol: writing selects the action
// or direction button group, reading returns that group's state in
// the low nibble (0 = pressed, 1 = released).
type Joypad struct {
	irq InterruptLine

	selectAction    bool
	selectDirection bool

	prevPressed byte // last polled 8-button state, for edge detection
}

// New constructs a Joypad that raises interrupts through irq.
func New(irq InterruptLine) *Joypad {
	return &Joypad{irq: irq, prevPressed: 0xFF}
}

// Write services a CPU write to 0xFF00. Only bits 4-5 (the group
// select lines) are writable; they are active-low.
func (j *Joypad) Write(v byte) {
	j.selectAction = v&0x20 == 0
	j.selectDirection = v&0x10 == 0
}

// Read services a CPU read of 0xFF00.
func (j *Joypad) Read() byte {
	nibble := byte(0x0F)
	pressed := j.poll()

	if j.selectAction {
		nibble &= ^(pressed >> 4) & 0x0F
	}
	if j.selectDirection {
		nibble &= ^pressed & 0x0F
	}

	reg := byte(0xF0) | nibble
	if j.selectAction {
		reg &^= 0x20
	}
	if j.selectDirection {
		reg &^= 0x10
	}
	return reg
}

// poll samples ebiten's key state into a single byte: low nibble is
// direction (Right,Left,Up,Down), high nibble is action (A,B,
// Select,Start), 1 meaning pressed.
func (j *Joypad) poll() byte {
	var pressed byte
	for i, k := range directionKeys {
		if ebiten.IsKeyPressed(k) {
			pressed |= 1 << i
		}
	}
	for i, k := range actionKeys {
		if ebiten.IsKeyPressed(k) {
			pressed |= 1 << (i + 4)
		}
	}
	return pressed
}

// Poll samples the real key state once (intended to be called once
// per frame from the run loop) and raises the Joypad interrupt if any
// button transitioned from released to pressed, matching the
// hardware's high-to-low edge trigger on the P10-P13 lines.
func (j *Joypad) Poll() {
	current := j.poll()
	newlyPressed := current &^ j.prevPressed
	if newlyPressed != 0 {
		j.irq.RequestInterrupt(joypadIRQBit)
	}
	j.prevPressed = current
}
