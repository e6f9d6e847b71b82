package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"

	"github.com/nwidger/dmgo/cartridge"
	"github.com/nwidger/dmgo/device"
	"github.com/nwidger/dmgo/joypad"
	"github.com/nwidger/dmgo/ppu"
)

func newHarness(romPath string) (*device.Harness, error) {
	cart, err := cartridge.Load(romPath)
	if err != nil {
		return nil, fmt.Errorf("couldn't load ROM: %w", err)
	}

	return device.New(cart), nil
}

// presenter implements ebiten.Game, pushing the core's framebuffer
// into an ebiten.Image every frame via Layout/Draw/Update.
type presenter struct {
	harness *device.Harness
	joypad  *joypad.Joypad
	img     *ebiten.Image
}

func newPresenter(h *device.Harness, pad *joypad.Joypad) *presenter {
	return &presenter{
		harness: h,
		joypad:  pad,
		img:     ebiten.NewImage(ppu.ScreenWidth, ppu.ScreenHeight),
	}
}

func (p *presenter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.ScreenWidth, ppu.ScreenHeight
}

func (p *presenter) Update() error {
	p.joypad.Poll()
	p.harness.StepFrame()
	return nil
}

func (p *presenter) Draw(screen *ebiten.Image) {
	fb := p.harness.Framebuffer()
	pix := make([]byte, 4*ppu.ScreenWidth*ppu.ScreenHeight)
	for i, argb := range fb {
		pix[i*4+0] = byte(argb >> 16) // R
		pix[i*4+1] = byte(argb >> 8)  // G
		pix[i*4+2] = byte(argb)       // B
		pix[i*4+3] = byte(argb >> 24) // A
	}
	p.img.WritePixels(pix)
	screen.DrawImage(p.img, nil)
}

func runROM(path string, scale int, dumpFrame string) error {
	h, err := newHarness(path)
	if err != nil {
		return err
	}
	pad := joypad.New(h.Bus)
	h.AttachJoypad(pad)

	if dumpFrame != "" {
		return dumpFirstFrame(h, dumpFrame, scale)
	}

	p := newPresenter(h, pad)
	ebiten.SetWindowSize(ppu.ScreenWidth*scale, ppu.ScreenHeight*scale)
	ebiten.SetWindowTitle("dmgo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(p)
}

// dumpFirstFrame runs the harness until a frame completes, then
// writes it to path as a PNG upscaled by an integer factor using
// golang.org/x/image/draw rather than ebiten's window scaling, since
// there is no window in this mode.
func dumpFirstFrame(h *device.Harness, path string, scale int) error {
	for !h.FrameReady() {
		h.StepFrame()
	}

	src := image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))
	for i, argb := range h.Framebuffer() {
		src.Set(i%ppu.ScreenWidth, i/ppu.ScreenWidth, color.RGBA{
			R: byte(argb >> 16),
			G: byte(argb >> 8),
			B: byte(argb),
			A: byte(argb >> 24),
		})
	}

	if scale < 1 {
		scale = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth*scale, ppu.ScreenHeight*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("couldn't create %q: %w", path, err)
	}
	defer f.Close()

	return png.Encode(f, dst)
}
