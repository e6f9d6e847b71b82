package device

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func readAddress(prompt string) uint16 {
	var a uint16
	fmt.Printf(prompt)
	fmt.Scanf("%04x\n", &a)
	return a
}

// Monitor is a breakpoint/single-step debug REPL over the running
// machine. It drives the core only through CPU.Step and Bus.Read, the
// same public surface the run loop builds on, so nothing about the core
// needs a special debug mode.
func (h *Harness) Monitor(ctx context.Context) {
	sigQuit := make(chan os.Signal, 1)
	signal.Notify(sigQuit, syscall.SIGINT, syscall.SIGTERM)

	breaks := make(map[uint16]struct{})

	for {
		fmt.Printf("%s\n\n", h.CPU)
		fmt.Println("(B)reak - add breakpoint")
		fmt.Println("(C)lear - clear breakpoints")
		fmt.Println("(R)un - run until the next breakpoint or Ctrl-C")
		fmt.Println("(S)tep - step the CPU one instruction")
		fmt.Println("R(e)set - hit the reset button")
		fmt.Println("(M)emory - dump a memory range")
		fmt.Println("(P)C - set program counter")
		fmt.Println("PP(U) - show PPU status")
		fmt.Println("(Q)uit - stop the monitor")
		fmt.Printf("Choice: ")

		var in rune
		fmt.Scanf("%c\n", &in)

		switch in {
		case 'b', 'B':
			breaks[readAddress("Breakpoint (eg: ff15): ")] = struct{}{}
		case 'c', 'C':
			breaks = make(map[uint16]struct{})
		case 'p', 'P':
			h.CPU.SetPC(readAddress("Set PC to what address (eg: 0150): "))
		case 'q', 'Q':
			return
		case 'e', 'E':
			h.Reset()
		case 'r', 'R':
			cctx, cancel := context.WithCancel(ctx)
			go func() {
				select {
				case <-sigQuit:
					cancel()
				case <-cctx.Done():
				}
			}()
			h.runUntilBreak(cctx, breaks)
		case 's', 'S':
			h.CPU.Step()
		case 'm', 'M':
			start := readAddress("Start address (eg: c000): ")
			end := readAddress("End address (eg: c0ff): ")
			h.dumpMemory(start, end)
		case 'u', 'U':
			fmt.Printf("LY:%02x mode:%d frame_ready:%t\n", h.PPU.LY(), h.PPU.Mode(), h.PPU.FrameReady)
		}
	}
}

func (h *Harness) runUntilBreak(ctx context.Context, breaks map[uint16]struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			h.CPU.Step()
			if _, hit := breaks[h.CPU.PC()]; hit {
				return
			}
		}
	}
}

func (h *Harness) dumpMemory(start, end uint16) {
	for addr := start; addr <= end; addr++ {
		if addr%16 == 0 {
			fmt.Printf("\n%04x: ", addr)
		}
		fmt.Printf("%02x ", h.Bus.Read(addr))
		if addr == 0xFFFF {
			break
		}
	}
	fmt.Println()
}
