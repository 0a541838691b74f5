package hal

import (
	"image/color"
	"sync"
)

// MemFramebuffer is an in-memory RGB565 framebuffer. The host HAL presents
// it through a window; tools and tests render into it directly.
type MemFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

// NewFramebuffer returns a zeroed RGB565 framebuffer of the given size.
func NewFramebuffer(width, height int) *MemFramebuffer {
	stride := width * 2
	return &MemFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *MemFramebuffer) Width() int          { return f.width }
func (f *MemFramebuffer) Height() int         { return f.height }
func (f *MemFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *MemFramebuffer) StrideBytes() int    { return f.stride }
func (f *MemFramebuffer) Buffer() []byte      { return f.buf }
func (f *MemFramebuffer) Present() error      { return nil }

// ClearRGB fills every pixel with the given color.
func (f *MemFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := PackRGB565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// SetPixel writes one pixel. Coordinates outside the framebuffer are
// dropped.
func (f *MemFramebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := PackRGB565(c.R, c.G, c.B)
	off := y*f.stride + x*2
	f.buf[off] = byte(pixel)
	f.buf[off+1] = byte(pixel >> 8)
}

// Snapshot copies the pixel buffer into dst under the buffer lock, for
// presenters running on another goroutine.
func (f *MemFramebuffer) Snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}
