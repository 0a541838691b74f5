package geom

import (
	"fmt"
	"math"
	"unsafe"
)

// Viewport describes the rectangular render-target region and normalized
// depth range a pipeline maps device coordinates into. It is a plain value:
// copying produces an independent instance, and the field order below is
// the exact sequential layout handed to native graphics calls.
//
// No field is validated. Negative extents and depths outside [0, 1] are
// representable and legal; range checks belong to the caller.
type Viewport struct {
	// X is the upper-left pixel coordinate of the viewport, horizontal.
	X int32
	// Y is the upper-left pixel coordinate of the viewport, vertical.
	Y int32
	// Width is the horizontal extent in pixels.
	Width int32
	// Height is the vertical extent in pixels.
	Height int32
	// MinDepth is the minimum normalized depth of the clip volume.
	MinDepth float32
	// MaxDepth is the maximum normalized depth of the clip volume.
	MaxDepth float32
}

// ViewportBytes is the in-memory size of a Viewport: six 4-byte fields,
// 24 bytes, with no padding. Interop callers packing viewport arrays for a
// graphics API rely on this value.
const ViewportBytes = int(unsafe.Sizeof(Viewport{}))

// NewViewport returns a viewport at the origin covering width by height
// pixels with the full [0, 1] depth range.
func NewViewport(width, height int32) Viewport {
	return Viewport{Width: width, Height: height, MinDepth: 0, MaxDepth: 1}
}

// NewViewportAt returns a viewport at (x, y) with the full [0, 1] depth
// range.
func NewViewportAt(x, y, width, height int32) Viewport {
	return Viewport{X: x, Y: y, Width: width, Height: height, MinDepth: 0, MaxDepth: 1}
}

// NewViewportDepth returns a viewport with all six fields explicit.
func NewViewportDepth(x, y, width, height int32, minDepth, maxDepth float32) Viewport {
	return Viewport{X: x, Y: y, Width: width, Height: height, MinDepth: minDepth, MaxDepth: maxDepth}
}

// NewViewportRect returns a viewport covering bounds with the full [0, 1]
// depth range.
func NewViewportRect(bounds Rectangle) Viewport {
	return NewViewportAt(bounds.X, bounds.Y, bounds.Width, bounds.Height)
}

// NewViewportVector returns a viewport whose position and extents are the
// vector's components taken positionally as x, y, width, height. Each
// component is truncated toward zero, the same narrowing a float-to-int
// conversion performs; -2.1 becomes -2, not -3. Depth defaults to [0, 1].
func NewViewportVector(bounds Vector4) Viewport {
	return NewViewportAt(int32(bounds.X), int32(bounds.Y), int32(bounds.Z), int32(bounds.W))
}

// Bounds returns the position and extents as a Rectangle.
func (v Viewport) Bounds() Rectangle {
	return Rectangle{X: v.X, Y: v.Y, Width: v.Width, Height: v.Height}
}

// SetBounds replaces the position and extents from a Rectangle. The depth
// range is left untouched.
func (v *Viewport) SetBounds(bounds Rectangle) {
	v.X = bounds.X
	v.Y = bounds.Y
	v.Width = bounds.Width
	v.Height = bounds.Height
}

// AspectRatio returns Width divided by Height, or exactly 0 when Height is
// zero so degenerate viewports never propagate an infinity or NaN.
func (v Viewport) AspectRatio() float32 {
	if v.Height == 0 {
		return 0
	}
	return float32(v.Width) / float32(v.Height)
}

// Equal reports whether the two viewports describe the same region. The
// integer fields compare exactly; the depth fields compare with NearEqual,
// absorbing rounding in the last bits.
func (v Viewport) Equal(o Viewport) bool {
	return v.X == o.X && v.Y == o.Y &&
		v.Width == o.Width && v.Height == o.Height &&
		NearEqual(v.MinDepth, o.MinDepth) && NearEqual(v.MaxDepth, o.MaxDepth)
}

// Hash folds the six fields in declaration order with a multiply-xor
// combiner. The depth fields contribute their raw bit patterns, so two
// viewports that Equal treats as the same through the depth tolerance can
// still hash differently; quantize the depths first when using viewports
// as map keys under that tolerance.
func (v Viewport) Hash() uint32 {
	h := uint32(v.X)
	h = h*397 ^ uint32(v.Y)
	h = h*397 ^ uint32(v.Width)
	h = h*397 ^ uint32(v.Height)
	h = h*397 ^ math.Float32bits(v.MinDepth)
	h = h*397 ^ math.Float32bits(v.MaxDepth)
	return h
}

func (v Viewport) String() string {
	return fmt.Sprintf("X: %d, Y: %d, Width: %d, Height: %d, MinDepth: %v, MaxDepth: %v",
		v.X, v.Y, v.Width, v.Height, v.MinDepth, v.MaxDepth)
}
