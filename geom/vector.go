package geom

import "fmt"

// Vector4 is a four-component float32 vector. Components are used
// positionally; several callers treat them as x, y, width, height.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// NewVector4 returns a vector with the given components.
func NewVector4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

func (v Vector4) String() string {
	return fmt.Sprintf("X: %v, Y: %v, Z: %v, W: %v", v.X, v.Y, v.Z, v.W)
}
