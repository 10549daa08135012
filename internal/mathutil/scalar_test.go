package mathutil

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want float32
	}{
		{0.5, 0, 1, 0.5},
		{-2, 0, 1, 0},
		{7, 0, 1, 1},
		{1, 1, 1, 1},
		{-1, -1, 3, -1},
		// Inverted bounds.
		{5, 10, 0, 10},
		{12, 10, 0, 0},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Fatalf("Clamp(%v, %v, %v)=%v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
	if got := Clamp(12, 0, 10); got != 10 {
		t.Fatalf("int Clamp=%d", got)
	}
}

func TestMinMaxInRange(t *testing.T) {
	if Min(3, 2) != 2 || Max(3, 2) != 3 {
		t.Fatalf("min/max mismatch")
	}
	if !InRange[float32](0, 0, 1) || !InRange[float32](1, 0, 1) || InRange[float32](1.0001, 0, 1) {
		t.Fatalf("InRange bounds are inclusive")
	}
}

func TestFloatEq(t *testing.T) {
	if !FloatEq(1, 1) {
		t.Fatalf("FloatEq(1, 1)=false")
	}
	if FloatEq(1, 1.001) {
		t.Fatalf("FloatEq(1, 1.001)=true")
	}
	if !FloatEqEps(1, 1.001, 0.01) {
		t.Fatalf("FloatEqEps with wide eps=false")
	}
	// Strict inequality: a difference equal to eps is not equal.
	if FloatEqEps(0, 0.5, 0.5) {
		t.Fatalf("FloatEqEps(0, 0.5, 0.5)=true")
	}
}

func TestLerpPolicies(t *testing.T) {
	if got := LerpClamped(2, 4, 0.5); got != 3 {
		t.Fatalf("LerpClamped mid=%v", got)
	}
	if got := LerpClamped(2, 4, 3); got != 4 {
		t.Fatalf("LerpClamped above range=%v, want 4", got)
	}
	if got := LerpClamped(2, 4, -1); got != 2 {
		t.Fatalf("LerpClamped below range=%v, want 2", got)
	}
	if got := LerpUnchecked(2, 4, 2); got != 6 {
		t.Fatalf("LerpUnchecked extrapolated=%v, want 6", got)
	}
	if got := Lerpf(2, 4, 9); got != LerpClamped(2, 4, 9) {
		t.Fatalf("Lerpf does not clamp: %v", got)
	}
}

func TestLerpEndpointsExact(t *testing.T) {
	vals := []float32{0, 1, -3.75, 0.1, 123456.78, 1e-20}
	for _, a := range vals {
		for _, b := range vals {
			if got := LerpUnchecked(a, b, 0); got != a {
				t.Fatalf("lerp(%v, %v, 0)=%v", a, b, got)
			}
			if got := LerpUnchecked(a, b, 1); got != b {
				t.Fatalf("lerp(%v, %v, 1)=%v", a, b, got)
			}
		}
	}
}

func TestDeg2Rad(t *testing.T) {
	if !FloatEqEps(Deg2Rad(180), math32.Pi, 1e-6) {
		t.Fatalf("Deg2Rad(180)=%v", Deg2Rad(180))
	}
	if !FloatEqEps(Rad2Deg(Pi/2), 90, 1e-4) {
		t.Fatalf("Rad2Deg(pi/2)=%v", Rad2Deg(Pi/2))
	}
}
