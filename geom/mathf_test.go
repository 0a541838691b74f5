package geom

import (
	"math"
	"testing"
)

func TestIsZero(t *testing.T) {
	if !IsZero(0) {
		t.Fatalf("IsZero(0) = false")
	}
	if !IsZero(ZeroTolerance / 2) {
		t.Fatalf("IsZero(%v) = false", ZeroTolerance/2)
	}
	if IsZero(ZeroTolerance * 2) {
		t.Fatalf("IsZero(%v) = true", ZeroTolerance*2)
	}
	if IsZero(-ZeroTolerance * 2) {
		t.Fatalf("IsZero(%v) = true", -ZeroTolerance*2)
	}
	// The bound is exclusive.
	if IsZero(ZeroTolerance) || IsZero(-ZeroTolerance) {
		t.Fatalf("IsZero(±ZeroTolerance) = true, want false")
	}
}

func TestWithinEpsilon(t *testing.T) {
	if !WithinEpsilon(1.0, 1.05, 0.1) {
		t.Fatalf("WithinEpsilon(1.0, 1.05, 0.1) = false")
	}
	if WithinEpsilon(1.0, 1.2, 0.1) {
		t.Fatalf("WithinEpsilon(1.0, 1.2, 0.1) = true")
	}
}

func TestNearEqual(t *testing.T) {
	if !NearEqual(0.5, 0.5) {
		t.Fatalf("NearEqual(0.5, 0.5) = false")
	}
	if NearEqual(0.5, 0.6) {
		t.Fatalf("NearEqual(0.5, 0.6) = true")
	}

	a := float32(0.5)
	b := math.Float32frombits(math.Float32bits(a) + 3)
	if a == b {
		t.Fatalf("test setup: values are bit-identical")
	}
	if !NearEqual(a, b) || !NearEqual(b, a) {
		t.Fatalf("NearEqual must hold 3 ULPs from %v", a)
	}

	far := math.Float32frombits(math.Float32bits(float32(1000)) + 64)
	if NearEqual(1000, far) {
		t.Fatalf("NearEqual(1000, 1000+64ulp) = true")
	}

	// Large magnitudes straddling zero only pass the absolute check.
	if NearEqual(1.0, -1.0) {
		t.Fatalf("NearEqual(1, -1) = true")
	}
	if !NearEqual(ZeroTolerance/4, -ZeroTolerance/4) {
		t.Fatalf("NearEqual around zero = false")
	}
}
