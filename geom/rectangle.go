package geom

import "fmt"

// Rectangle is an integer pixel rectangle. X and Y are the upper-left
// corner; Width and Height are the extents.
type Rectangle struct {
	X      int32
	Y      int32
	Width  int32
	Height int32
}

// NewRectangle returns a rectangle with the given position and extents.
func NewRectangle(x, y, width, height int32) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x coordinate of the right edge (exclusive).
func (r Rectangle) Right() int32 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge (exclusive).
func (r Rectangle) Bottom() int32 { return r.Y + r.Height }

// IsEmpty reports whether the rectangle covers no pixels.
func (r Rectangle) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Left and top edges are inside, right and bottom edges are outside.
func (r Rectangle) Contains(x, y int32) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the largest rectangle covered by both r and s.
// If the two do not overlap, the zero rectangle is returned.
func (r Rectangle) Intersect(s Rectangle) Rectangle {
	x0 := max32(r.X, s.X)
	y0 := max32(r.Y, s.Y)
	x1 := min32(r.Right(), s.Right())
	y1 := min32(r.Bottom(), s.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rectangle{}
	}
	return Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

func (r Rectangle) String() string {
	return fmt.Sprintf("X: %d, Y: %d, Width: %d, Height: %d", r.X, r.Y, r.Width, r.Height)
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
