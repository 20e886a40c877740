package vec3

import (
	"math"
	"testing"
)

func vecAlmostEqual(a, b Vec3, tol float64) bool {
	return almostEqual(a.X, b.X, tol) && almostEqual(a.Y, b.Y, tol) && almostEqual(a.Z, b.Z, tol)
}

func TestMat4Identity(t *testing.T) {
	p := Vec3{1, 2, 3}
	if got := Identity().MulPoint(p); got != p {
		t.Errorf("Identity().MulPoint() = %v, want %v", got, p)
	}
}

func TestMat4TranslateRoundTrip(t *testing.T) {
	p := Vec3{1, -2, 3.5}
	fwd := Translate3d(10, 20, -30)
	back := Translate3d(-10, -20, 30)
	got := back.Mul(fwd).MulPoint(p)
	if !vecAlmostEqual(got, p, 1e-9) {
		t.Errorf("translate round trip = %v, want %v", got, p)
	}
}

func TestMat4RotateRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		axis Axis
	}{
		{"x", AxisX}, {"y", AxisY}, {"z", AxisZ},
	}
	p := Vec3{1, 2, 3}
	theta := math.Pi / 5
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fwd := RotateAxis(tt.axis, theta)
			back := RotateAxis(tt.axis, -theta)
			got := back.Mul(fwd).MulPoint(p)
			if !vecAlmostEqual(got, p, 1e-9) {
				t.Errorf("rotate round trip axis=%v = %v, want %v", tt.axis, got, p)
			}
		})
	}
}

func TestMat4RotateZQuarterTurn(t *testing.T) {
	got := RotateZ(math.Pi / 2).MulPoint(Vec3{1, 0, 0})
	want := Vec3{0, 1, 0}
	if !vecAlmostEqual(got, want, 1e-9) {
		t.Errorf("RotateZ(pi/2) on X axis = %v, want %v", got, want)
	}
}

func TestMat4Determinant3(t *testing.T) {
	if got := Identity().Determinant3(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Identity determinant = %f, want 1", got)
	}
	reflect := Identity()
	reflect[0][0] = -1
	if got := reflect.Determinant3(); math.Abs(got+1) > 1e-12 {
		t.Errorf("reflection determinant = %f, want -1", got)
	}
}

func TestMat4IsRigid(t *testing.T) {
	if !Translate3d(1, 2, 3).IsRigid(1e-9) {
		t.Error("translation should be rigid")
	}
	if !RotateX(1.2).IsRigid(1e-9) {
		t.Error("rotation should be rigid")
	}
	scale := Identity()
	scale[0][0] = 2
	if scale.IsRigid(1e-9) {
		t.Error("scale should not be rigid")
	}
}

func TestMat4Mul(t *testing.T) {
	a := Translate3d(1, 0, 0)
	b := Translate3d(0, 1, 0)
	got := a.Mul(b).MulPoint(Vec3{})
	want := Vec3{1, 1, 0}
	if !vecAlmostEqual(got, want, 1e-12) {
		t.Errorf("Mul() applied to origin = %v, want %v", got, want)
	}
}
