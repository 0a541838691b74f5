package geom

import "testing"

func TestRectangleEdges(t *testing.T) {
	r := NewRectangle(5, 6, 7, 8)
	if r.Right() != 12 || r.Bottom() != 14 {
		t.Fatalf("Right(), Bottom() = %d, %d, want 12, 14", r.Right(), r.Bottom())
	}
}

func TestRectangleContains(t *testing.T) {
	r := NewRectangle(0, 0, 10, 10)
	if !r.Contains(0, 0) || !r.Contains(9, 9) {
		t.Fatalf("Contains misses interior corners")
	}
	if r.Contains(10, 5) || r.Contains(5, 10) || r.Contains(-1, 5) {
		t.Fatalf("Contains includes exclusive edges")
	}
}

func TestRectangleIsEmpty(t *testing.T) {
	if NewRectangle(0, 0, 10, 10).IsEmpty() {
		t.Fatalf("IsEmpty() = true for 10x10")
	}
	if !NewRectangle(0, 0, 0, 10).IsEmpty() || !NewRectangle(0, 0, 10, -1).IsEmpty() {
		t.Fatalf("IsEmpty() = false for degenerate rect")
	}
}

func TestRectangleIntersect(t *testing.T) {
	a := NewRectangle(0, 0, 10, 10)
	b := NewRectangle(5, 5, 10, 10)
	if got, want := a.Intersect(b), NewRectangle(5, 5, 5, 5); got != want {
		t.Fatalf("Intersect = %v, want %v", got, want)
	}

	c := NewRectangle(20, 20, 5, 5)
	if got := a.Intersect(c); !got.IsEmpty() {
		t.Fatalf("Intersect of disjoint rects = %v, want empty", got)
	}
}
