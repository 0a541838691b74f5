// snapshot renders one frame of a viewport scene into an in-memory
// framebuffer and writes it as a PNG, without opening a window.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"viewkit/geom"
	"viewkit/hal"
	"viewkit/render"
)

func main() {
	width := flag.Int("width", 320, "Framebuffer width in pixels.")
	height := flag.Int("height", 240, "Framebuffer height in pixels.")
	inset := flag.Int("inset", 0, "Inset of the viewport from the framebuffer edges.")
	out := flag.String("o", "snapshot.png", "Output PNG path.")
	flag.Parse()

	if err := run(*width, *height, *inset, *out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(width, height, inset int, out string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid framebuffer size %dx%d", width, height)
	}

	fb := hal.NewFramebuffer(width, height)
	vp := geom.NewViewportAt(
		int32(inset), int32(inset),
		int32(width-2*inset), int32(height-2*inset),
	)

	canvas := render.NewCanvas(fb, vp)
	canvas.Clear(color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff})

	canvas.FillTriangle(
		geom.NewVector4(-0.8, -0.6, 0.2, 1),
		geom.NewVector4(0.8, -0.6, 0.5, 1),
		geom.NewVector4(0, 0.8, 0.8, 1),
		color.RGBA{R: 0x4a, G: 0xdf, B: 0x6a, A: 0xff},
	)
	canvas.FillTriangle(
		geom.NewVector4(-0.6, 0.6, 0.5, 1),
		geom.NewVector4(0.6, 0.6, 0.5, 1),
		geom.NewVector4(0, -0.8, 0.5, 1),
		color.RGBA{R: 0xdf, G: 0x6a, B: 0x4a, A: 0xff},
	)
	render.WriteLine(fb, 4, 10, vp.String(), color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff})

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	buf := fb.Buffer()
	for i := 0; i+1 < len(buf); i += 2 {
		r, g, b := hal.UnpackRGB565(uint16(buf[i]) | uint16(buf[i+1])<<8)
		j := (i / 2) * 4
		img.Pix[j+0] = r
		img.Pix[j+1] = g
		img.Pix[j+2] = b
		img.Pix[j+3] = 0xFF
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
