package vec3

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestVec3AddSub(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -1, 0.5}
	got := a.Add(b)
	want := Vec3{5, 1, 3.5}
	if got != want {
		t.Errorf("Add() = %v, want %v", got, want)
	}
	if got.Sub(b) != a {
		t.Errorf("Sub() did not invert Add()")
	}
}

func TestVec3DotCross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	if got := x.Dot(y); got != 0 {
		t.Errorf("Dot(x,y) = %f, want 0", got)
	}
	if got := x.Cross(y); got != (Vec3{0, 0, 1}) {
		t.Errorf("Cross(x,y) = %v, want (0,0,1)", got)
	}
}

func TestVec3Norm(t *testing.T) {
	v := Vec3{3, 4, 0}
	if got := v.Norm(); !almostEqual(got, 5, 1e-12) {
		t.Errorf("Norm() = %f, want 5", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}
	n := v.Normalize()
	if !almostEqual(n.Norm(), 1, 1e-9) {
		t.Errorf("Normalize() norm = %f, want 1", n.Norm())
	}
	if zero := (Vec3{}).Normalize(); zero != (Vec3{}) {
		t.Errorf("Normalize() of zero vector = %v, want zero", zero)
	}
}

func TestVec3IsFinite(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want bool
	}{
		{"finite", Vec3{1, 2, 3}, true},
		{"nan", Vec3{math.NaN(), 0, 0}, false},
		{"inf", Vec3{0, math.Inf(1), 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsFinite(); got != tt.want {
				t.Errorf("IsFinite() = %v, want %v", got, tt.want)
			}
		})
	}
}
