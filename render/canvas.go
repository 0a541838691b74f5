package render

import (
	"image/color"
	"math"

	"viewkit/geom"
	"viewkit/hal"
)

// Canvas binds a viewport descriptor to a framebuffer. Geometry is given
// in normalized device coordinates; the viewport decides which pixels and
// which slice of the depth range they land on. A float32 depth buffer the
// size of the framebuffer backs the depth test (pass on less-or-equal).
type Canvas struct {
	fb    hal.Framebuffer
	vp    geom.Viewport
	depth []float32
}

// NewCanvas returns a canvas over fb using vp, with a cleared depth buffer.
func NewCanvas(fb hal.Framebuffer, vp geom.Viewport) *Canvas {
	c := &Canvas{
		fb:    fb,
		vp:    vp,
		depth: make([]float32, fb.Width()*fb.Height()),
	}
	c.ClearDepth()
	return c
}

// Viewport returns the current descriptor.
func (c *Canvas) Viewport() geom.Viewport { return c.vp }

// SetViewport replaces the descriptor. Buffers are untouched; callers
// clear when they want a fresh frame.
func (c *Canvas) SetViewport(vp geom.Viewport) { c.vp = vp }

// Clear fills the framebuffer with col and resets the depth buffer.
func (c *Canvas) Clear(col color.RGBA) {
	c.fb.ClearRGB(col.R, col.G, col.B)
	c.ClearDepth()
}

// ClearDepth resets every depth cell to the far plane.
func (c *Canvas) ClearDepth() {
	for i := range c.depth {
		c.depth[i] = math.MaxFloat32
	}
}

// Project maps a normalized device coordinate onto the viewport. X and Y
// in [-1, 1] map to the viewport rectangle with Y growing downward; Z in
// [0, 1] maps linearly onto [MinDepth, MaxDepth].
func (c *Canvas) Project(p geom.Vector4) (px, py int32, depth float32) {
	fx, fy, depth := c.projectF(p)
	return int32(fx), int32(fy), depth
}

func (c *Canvas) projectF(p geom.Vector4) (fx, fy, depth float32) {
	fx = float32(c.vp.X) + (p.X+1)*0.5*float32(c.vp.Width)
	fy = float32(c.vp.Y) + (1-p.Y)*0.5*float32(c.vp.Height)
	depth = c.vp.MinDepth + p.Z*(c.vp.MaxDepth-c.vp.MinDepth)
	return fx, fy, depth
}

// clipRect is the writable region: viewport bounds clamped to the
// framebuffer. Empty for zero or negative viewport extents.
func (c *Canvas) clipRect() geom.Rectangle {
	full := geom.NewRectangle(0, 0, int32(c.fb.Width()), int32(c.fb.Height()))
	return c.vp.Bounds().Intersect(full)
}

// DrawPoint plots a single depth-tested pixel at the projection of p.
func (c *Canvas) DrawPoint(p geom.Vector4, col color.RGBA) {
	clip := c.clipRect()
	if clip.IsEmpty() {
		return
	}
	px, py, depth := c.Project(p)
	if !clip.Contains(px, py) {
		return
	}
	c.writePixel(px, py, depth, col)
}

// FillTriangle rasterizes the triangle p0 p1 p2 with depth interpolated
// per pixel from the vertex Z values. Zero-area triangles draw nothing.
func (c *Canvas) FillTriangle(p0, p1, p2 geom.Vector4, col color.RGBA) {
	clip := c.clipRect()
	if clip.IsEmpty() {
		return
	}

	x0, y0, z0 := c.projectF(p0)
	x1, y1, z1 := c.projectF(p1)
	x2, y2, z2 := c.projectF(p2)

	area := edge(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	flip := area < 0
	if flip {
		area = -area
	}

	minX := clamp32(int32(floorF(min3(x0, x1, x2))), clip.X, clip.Right()-1)
	maxX := clamp32(int32(ceilF(max3(x0, x1, x2))), clip.X, clip.Right()-1)
	minY := clamp32(int32(floorF(min3(y0, y1, y2))), clip.Y, clip.Bottom()-1)
	maxY := clamp32(int32(ceilF(max3(y0, y1, y2))), clip.Y, clip.Bottom()-1)

	for py := minY; py <= maxY; py++ {
		sy := float32(py) + 0.5
		for px := minX; px <= maxX; px++ {
			sx := float32(px) + 0.5

			w0 := edge(x1, y1, x2, y2, sx, sy)
			w1 := edge(x2, y2, x0, y0, sx, sy)
			w2 := edge(x0, y0, x1, y1, sx, sy)
			if flip {
				w0, w1, w2 = -w0, -w1, -w2
			}
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			depth := (w0*z0 + w1*z1 + w2*z2) / area
			c.writePixel(px, py, depth, col)
		}
	}
}

func (c *Canvas) writePixel(px, py int32, depth float32, col color.RGBA) {
	idx := int(py)*c.fb.Width() + int(px)
	if depth > c.depth[idx] {
		return
	}
	c.depth[idx] = depth

	pixel := hal.PackRGB565(col.R, col.G, col.B)
	buf := c.fb.Buffer()
	off := int(py)*c.fb.StrideBytes() + int(px)*2
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

// edge is the signed doubled area of the triangle (ax,ay) (bx,by) (px,py).
func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func floorF(v float32) float32 { return float32(math.Floor(float64(v))) }
func ceilF(v float32) float32  { return float32(math.Ceil(float64(v))) }

func clamp32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
