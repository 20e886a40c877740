package vec3

import "math"

// Mat4 is a row-major 4x4 affine matrix. The zero value is NOT the
// identity; use Identity().
type Mat4 [4][4]float64

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate3d returns the affine matrix that translates by (dx, dy, dz).
func Translate3d(dx, dy, dz float64) Mat4 {
	m := Identity()
	m[0][3] = dx
	m[1][3] = dy
	m[2][3] = dz
	return m
}

// RotateX returns the matrix rotating by angle radians about the X axis,
// following the right-hand rule.
func RotateX(angle float64) Mat4 {
	s, c := math.Sin(angle), math.Cos(angle)
	m := Identity()
	m[1][1], m[1][2] = c, -s
	m[2][1], m[2][2] = s, c
	return m
}

// RotateY returns the matrix rotating by angle radians about the Y axis.
func RotateY(angle float64) Mat4 {
	s, c := math.Sin(angle), math.Cos(angle)
	m := Identity()
	m[0][0], m[0][2] = c, s
	m[2][0], m[2][2] = -s, c
	return m
}

// RotateZ returns the matrix rotating by angle radians about the Z axis.
func RotateZ(angle float64) Mat4 {
	s, c := math.Sin(angle), math.Cos(angle)
	m := Identity()
	m[0][0], m[0][1] = c, -s
	m[1][0], m[1][1] = s, c
	return m
}

// RotateAxis returns the rotation matrix for the named principal axis.
func RotateAxis(axis Axis, angle float64) Mat4 {
	switch axis {
	case AxisX:
		return RotateX(angle)
	case AxisY:
		return RotateY(angle)
	default:
		return RotateZ(angle)
	}
}

// Mul returns the matrix product m * n: applying the result to a point
// first applies n, then m.
func (m Mat4) Mul(n Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[i][k] * n[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

// MulPoint applies m to v, treating v as a point (implicit w=1).
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3],
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3],
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3],
	}
}

// Determinant3 returns the determinant of the upper-left 3x3 linear
// block of m, which determines orientation: positive for a proper
// rigid motion, negative for an improper one (reflection/odd scale).
func (m Mat4) Determinant3() float64 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// IsRigid reports whether m's linear block is (to within tol) an
// orthonormal matrix with determinant ±1 — a rotation/translation,
// possibly combined with a reflection, with no scale or shear. Analytical kind/parameters survive only
// transforms for which this holds.
func (m Mat4) IsRigid(tol float64) bool {
	det := m.Determinant3()
	if math.Abs(math.Abs(det)-1) > tol {
		return false
	}
	// Check columns are orthonormal.
	cols := [3]Vec3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
	for i := 0; i < 3; i++ {
		if math.Abs(cols[i].Norm()-1) > tol {
			return false
		}
		for j := i + 1; j < 3; j++ {
			if math.Abs(cols[i].Dot(cols[j])) > tol {
				return false
			}
		}
	}
	return true
}
