// Package app wires the viewport demo: two depth-shaded triangles spin
// inside the current viewport, arrow keys pan it, '+' and '-' resize it,
// and 'r' snaps it back. The HUD line prints the viewport's string form.
package app

import (
	"image/color"
	"math"

	"viewkit/geom"
	"viewkit/hal"
	"viewkit/render"
)

type Config struct {
	// HUD draws the viewport description at the top of the frame.
	HUD bool
}

const (
	panStep    = 8
	resizeStep = 16
)

var (
	colorBG   = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}
	colorHUD  = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorTriA = color.RGBA{R: 0x4a, G: 0xdf, B: 0x6a, A: 0xff}
	colorTriB = color.RGBA{R: 0xdf, G: 0x6a, B: 0x4a, A: 0xff}
)

type demo struct {
	h      hal.HAL
	canvas *render.Canvas
	home   geom.Viewport
	tick   uint64
	hud    bool
}

// New builds the demo and returns its per-frame step function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{HUD: true})
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	fb := h.Display().Framebuffer()
	w := int32(fb.Width())
	ht := int32(fb.Height())

	// Start inset so panning and resizing are visible immediately.
	vp := geom.NewViewportAt(w/8, ht/8, w*3/4, ht*3/4)

	d := &demo{
		h:      h,
		canvas: render.NewCanvas(fb, vp),
		home:   vp,
		hud:    cfg.HUD,
	}
	h.Logger().WriteLineString("viewport: " + vp.String())
	return d.step
}

func (d *demo) step() error {
	d.pollInput()
	d.advance()
	d.draw()
	return d.h.Display().Framebuffer().Present()
}

func (d *demo) pollInput() {
	kbd := d.h.Input().Keyboard()
	if kbd == nil {
		return
	}

	vp := d.canvas.Viewport()
	changed := false
	for {
		select {
		case ev := <-kbd.Events():
			if !ev.Press {
				continue
			}
			switch ev.Code {
			case hal.KeyUp:
				vp.Y -= panStep
				changed = true
			case hal.KeyDown:
				vp.Y += panStep
				changed = true
			case hal.KeyLeft:
				vp.X -= panStep
				changed = true
			case hal.KeyRight:
				vp.X += panStep
				changed = true
			}
			switch ev.Rune {
			case '+', '=':
				vp.Width += resizeStep
				vp.Height += resizeStep
				changed = true
			case '-':
				vp.Width -= resizeStep
				vp.Height -= resizeStep
				changed = true
			case 'r':
				vp = d.home
				changed = true
			}
		default:
			if changed {
				d.canvas.SetViewport(vp)
				d.h.Logger().WriteLineString("viewport: " + vp.String())
			}
			return
		}
	}
}

func (d *demo) advance() {
	ticks := d.h.Time().Ticks()
	drained := false
	for {
		select {
		case seq := <-ticks:
			d.tick = seq
			drained = true
		default:
			if !drained {
				d.tick++
			}
			return
		}
	}
}

func (d *demo) draw() {
	d.canvas.Clear(colorBG)

	angle := float32(d.tick) * 0.002

	// Triangle A tilts through the depth range so the depth test clips it
	// against the flat triangle B at z=0.5.
	d.canvas.FillTriangle(
		spinVertex(angle, 0, 0.2),
		spinVertex(angle, 1, 0.5),
		spinVertex(angle, 2, 0.8),
		colorTriA,
	)
	d.canvas.FillTriangle(
		spinVertex(-angle*0.7, 0, 0.5),
		spinVertex(-angle*0.7, 1, 0.5),
		spinVertex(-angle*0.7, 2, 0.5),
		colorTriB,
	)

	if d.hud {
		fb := d.h.Display().Framebuffer()
		render.WriteLine(fb, 4, 10, d.canvas.Viewport().String(), colorHUD)
	}
}

// spinVertex is corner i of an equilateral triangle of radius 0.8 rotated
// by angle, at the given normalized depth.
func spinVertex(angle float32, i int, z float32) geom.Vector4 {
	a := float64(angle) + float64(i)*2*math.Pi/3
	return geom.NewVector4(
		0.8*float32(math.Cos(a)),
		0.8*float32(math.Sin(a)),
		z,
		1,
	)
}
