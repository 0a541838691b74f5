package geom

import (
	"math"
	"testing"
	"unsafe"
)

func TestNewViewportDefaults(t *testing.T) {
	for _, wh := range [][2]int32{{800, 600}, {0, 0}, {-4, -7}, {1, 1000000}} {
		v := NewViewport(wh[0], wh[1])
		if v.X != 0 || v.Y != 0 {
			t.Fatalf("NewViewport(%d, %d) origin = (%d, %d), want (0, 0)", wh[0], wh[1], v.X, v.Y)
		}
		if v.Width != wh[0] || v.Height != wh[1] {
			t.Fatalf("NewViewport(%d, %d) size = (%d, %d)", wh[0], wh[1], v.Width, v.Height)
		}
		if v.MinDepth != 0 || v.MaxDepth != 1 {
			t.Fatalf("NewViewport(%d, %d) depth = [%v, %v], want [0, 1]", wh[0], wh[1], v.MinDepth, v.MaxDepth)
		}
	}
}

func TestNewViewportAt(t *testing.T) {
	v := NewViewportAt(10, 20, 30, 40)
	if v.X != 10 || v.Y != 20 || v.Width != 30 || v.Height != 40 {
		t.Fatalf("NewViewportAt(10, 20, 30, 40) = %v", v)
	}
	if v.MinDepth != 0 || v.MaxDepth != 1 {
		t.Fatalf("depth = [%v, %v], want [0, 1]", v.MinDepth, v.MaxDepth)
	}
}

func TestNewViewportDepth(t *testing.T) {
	v := NewViewportDepth(1, 2, 3, 4, 0.25, 0.75)
	if v.X != 1 || v.Y != 2 || v.Width != 3 || v.Height != 4 {
		t.Fatalf("NewViewportDepth ints = %v", v)
	}
	if v.MinDepth != 0.25 || v.MaxDepth != 0.75 {
		t.Fatalf("depth = [%v, %v], want [0.25, 0.75]", v.MinDepth, v.MaxDepth)
	}
}

func TestNewViewportRect(t *testing.T) {
	v := NewViewportRect(NewRectangle(5, 6, 7, 8))
	want := NewViewportAt(5, 6, 7, 8)
	if v != want {
		t.Fatalf("NewViewportRect = %v, want %v", v, want)
	}
}

func TestNewViewportVectorTruncates(t *testing.T) {
	v := NewViewportVector(NewVector4(3.9, -2.1, 10.7, 5.2))
	if v.X != 3 || v.Y != -2 || v.Width != 10 || v.Height != 5 {
		t.Fatalf("NewViewportVector(3.9, -2.1, 10.7, 5.2) = (%d, %d, %d, %d), want (3, -2, 10, 5)",
			v.X, v.Y, v.Width, v.Height)
	}
	if v.MinDepth != 0 || v.MaxDepth != 1 {
		t.Fatalf("depth = [%v, %v], want [0, 1]", v.MinDepth, v.MaxDepth)
	}
}

func TestAspectRatio(t *testing.T) {
	v := NewViewport(16, 9)
	if got, want := v.AspectRatio(), float32(16.0)/9.0; got != want {
		t.Fatalf("AspectRatio() = %v, want %v", got, want)
	}

	for _, w := range []int32{0, 1, -50, 1920} {
		v := NewViewport(w, 0)
		if got := v.AspectRatio(); got != 0 {
			t.Fatalf("AspectRatio() with Width=%d, Height=0 = %v, want 0", w, got)
		}
	}
}

func TestEqualExactOnInts(t *testing.T) {
	a := NewViewportDepth(0, 0, 100, 200, 0, 1)
	if !a.Equal(a) {
		t.Fatalf("Equal is not reflexive for %v", a)
	}

	b := NewViewportDepth(0, 0, 101, 200, 0, 1)
	if a.Equal(b) || b.Equal(a) {
		t.Fatalf("Equal(%v, %v) = true, want false", a, b)
	}
}

func TestEqualDepthTolerance(t *testing.T) {
	a := NewViewportDepth(0, 0, 100, 200, 0.5, 1)
	b := a
	b.MinDepth = math.Float32frombits(math.Float32bits(a.MinDepth) + 2) // 2 ULPs away

	if a.MinDepth == b.MinDepth {
		t.Fatalf("test setup: depths are bit-identical")
	}
	if !a.Equal(b) || !b.Equal(a) {
		t.Fatalf("Equal must tolerate a 2-ULP depth difference")
	}

	c := a
	c.MinDepth = 0.6
	if a.Equal(c) {
		t.Fatalf("Equal(%v, %v) = true, want false", a, c)
	}
}

func TestBoundsRoundTrip(t *testing.T) {
	v := NewViewportDepth(0, 0, 100, 100, 0.25, 0.75)
	v.SetBounds(NewRectangle(5, 6, 7, 8))

	if got, want := v.Bounds(), NewRectangle(5, 6, 7, 8); got != want {
		t.Fatalf("Bounds() = %v, want %v", got, want)
	}
	if v.MinDepth != 0.25 || v.MaxDepth != 0.75 {
		t.Fatalf("SetBounds touched depth: [%v, %v], want [0.25, 0.75]", v.MinDepth, v.MaxDepth)
	}
}

func TestStringFormat(t *testing.T) {
	v := NewViewportDepth(1, 2, 3, 4, 0, 1)
	want := "X: 1, Y: 2, Width: 3, Height: 4, MinDepth: 0, MaxDepth: 1"
	if got := v.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	v = NewViewportDepth(-1, 0, 640, 480, 0.5, 0.75)
	want = "X: -1, Y: 0, Width: 640, Height: 480, MinDepth: 0.5, MaxDepth: 0.75"
	if got := v.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestViewportBytes(t *testing.T) {
	if ViewportBytes != 24 {
		t.Fatalf("ViewportBytes = %d, want 24", ViewportBytes)
	}
	if got := int(unsafe.Sizeof(Viewport{})); got != ViewportBytes {
		t.Fatalf("Sizeof(Viewport) = %d, want %d", got, ViewportBytes)
	}
}

func TestHashDeterministic(t *testing.T) {
	a := NewViewportDepth(1, 2, 3, 4, 0.25, 0.75)
	b := NewViewportDepth(1, 2, 3, 4, 0.25, 0.75)
	if a.Hash() != b.Hash() {
		t.Fatalf("Hash() differs for identical values: %#x vs %#x", a.Hash(), b.Hash())
	}

	// The fold steps after the first differing field are bijective, so a
	// single changed integer field always changes the final hash.
	c := NewViewportDepth(1, 2, 4, 4, 0.25, 0.75)
	if a.Hash() == c.Hash() {
		t.Fatalf("Hash() collides for Width 3 vs 4: %#x", a.Hash())
	}
}

func TestHashUsesRawDepthBits(t *testing.T) {
	// Hash folds the raw float bits, so two viewports that Equal treats
	// as the same through the depth tolerance hash differently. This is
	// the documented behavior; see the Hash doc comment before changing.
	a := NewViewportDepth(0, 0, 100, 200, 0.5, 1)
	b := a
	b.MinDepth = math.Float32frombits(math.Float32bits(a.MinDepth) + 2)

	if !a.Equal(b) {
		t.Fatalf("test setup: viewports are not near-equal")
	}
	if a.Hash() == b.Hash() {
		t.Fatalf("Hash() = %#x for both; raw depth bits must feed the fold", a.Hash())
	}
}
