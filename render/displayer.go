package render

import (
	"image/color"

	"viewkit/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Displayer exposes a hal.Framebuffer through the drivers.Displayer
// interface so tinyfont (and any drivers-based widget) can draw on it.
type Displayer struct {
	fb hal.Framebuffer
}

// NewDisplayer wraps fb. Only RGB565 framebuffers receive pixels; other
// formats are silently ignored.
func NewDisplayer(fb hal.Framebuffer) *Displayer {
	return &Displayer{fb: fb}
}

func (d *Displayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := hal.PackRGB565(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *Displayer) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *Displayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return nil
	}

	w := d.fb.Width()
	h := d.fb.Height()

	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := hal.PackRGB565(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

func (d *Displayer) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

// WriteLine draws a line of text onto the framebuffer at (x, y) using the
// built-in Org01 font. y is the text baseline.
func WriteLine(fb hal.Framebuffer, x, y int16, text string, c color.RGBA) {
	tinyfont.WriteLine(NewDisplayer(fb), &tinyfont.Org01, x, y, text, c)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
