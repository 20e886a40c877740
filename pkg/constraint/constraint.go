// Package constraint defines the geometric constraint kinds solved by
// package solver: each kind knows how to compute its own residual and
// write its analytic partial derivatives into the solver's global
// Jacobian (spec §4.4–4.5).
package constraint

import "math"

// Constraint is one geometric relationship over a fixed set of point
// variables, identified by their index into the solver's flat variable
// vector (3 scalars per point: x, y, z at 3*i, 3*i+1, 3*i+2).
type Constraint interface {
	// Points returns the point-variable indices this constraint reads.
	Points() []int
	// ResidualSize returns the number of scalar rows this constraint
	// contributes (1 for Distance/Angle/Perpendicular, 3 for Parallel).
	ResidualSize() int
	// Residual returns this constraint's residual rows, reading
	// point i's coordinates from x[3*i], x[3*i+1], x[3*i+2].
	Residual(x []float64) []float64
	// Jacobian writes this constraint's partial derivatives through
	// setFn, starting at row; the column for coordinate k of point i is
	// 3*i+k in the solver's flat variable vector.
	Jacobian(x []float64, row int, setFn func(row, col int, v float64))
}

func coords(x []float64, i int) (px, py, pz float64) {
	return x[3*i], x[3*i+1], x[3*i+2]
}

func sub(ax, ay, az, bx, by, bz float64) (dx, dy, dz float64) {
	return ax - bx, ay - by, az - bz
}

func norm3(x, y, z float64) float64 {
	return math.Sqrt(x*x + y*y + z*z)
}

// Distance constrains ‖p1 - p2‖ to Target.
type Distance struct {
	P1, P2 int
	Target float64
}

func (c Distance) Points() []int    { return []int{c.P1, c.P2} }
func (c Distance) ResidualSize() int { return 1 }

func (c Distance) Residual(x []float64) []float64 {
	ax, ay, az := coords(x, c.P1)
	bx, by, bz := coords(x, c.P2)
	dx, dy, dz := sub(ax, ay, az, bx, by, bz)
	return []float64{norm3(dx, dy, dz) - c.Target}
}

// Jacobian writes ∂/∂p1 = (p1-p2)/d, ∂/∂p2 = -(p1-p2)/d. When d is
// (numerically) zero the row is left at zero, so a damped step cannot
// move the two points apart through this row alone; with no other
// constraint acting on them the solver reports Singular once λ saturates.
func (c Distance) Jacobian(x []float64, row int, setFn func(row, col int, v float64)) {
	ax, ay, az := coords(x, c.P1)
	bx, by, bz := coords(x, c.P2)
	dx, dy, dz := sub(ax, ay, az, bx, by, bz)
	d := norm3(dx, dy, dz)
	if d < 1e-12 {
		return
	}
	ux, uy, uz := dx/d, dy/d, dz/d
	setFn(row, 3*c.P1+0, ux)
	setFn(row, 3*c.P1+1, uy)
	setFn(row, 3*c.P1+2, uz)
	setFn(row, 3*c.P2+0, -ux)
	setFn(row, 3*c.P2+1, -uy)
	setFn(row, 3*c.P2+2, -uz)
}

// Angle constrains the angle at P2 between legs (P1,P2) and (P3,P2) to Target.
type Angle struct {
	P1, P2, P3 int
	Target     float64
}

func (c Angle) Points() []int     { return []int{c.P1, c.P2, c.P3} }
func (c Angle) ResidualSize() int { return 1 }

func legs(x []float64, p1, p2, p3 int) (ux, uy, uz, vx, vy, vz float64) {
	ax, ay, az := coords(x, p1)
	bx, by, bz := coords(x, p2)
	cx, cy, cz := coords(x, p3)
	ux, uy, uz = sub(ax, ay, az, bx, by, bz)
	vx, vy, vz = sub(cx, cy, cz, bx, by, bz)
	return
}

func clip(c float64) float64 {
	if c > 1 {
		return 1
	}
	if c < -1 {
		return -1
	}
	return c
}

func (c Angle) Residual(x []float64) []float64 {
	ux, uy, uz, vx, vy, vz := legs(x, c.P1, c.P2, c.P3)
	nu, nv := norm3(ux, uy, uz), norm3(vx, vy, vz)
	if nu < 1e-12 || nv < 1e-12 {
		return []float64{0}
	}
	cosAngle := (ux*vx + uy*vy + uz*vz) / (nu * nv)
	return []float64{math.Acos(clip(cosAngle)) - c.Target}
}

// Jacobian differentiates acos(c) by chain rule on c = (u.v)/(‖u‖‖v‖),
// itself differentiated with respect to each of u and v's components.
// Undefined (left at zero) when either leg has zero length.
func (c Angle) Jacobian(x []float64, row int, setFn func(row, col int, v float64)) {
	ux, uy, uz, vx, vy, vz := legs(x, c.P1, c.P2, c.P3)
	nu, nv := norm3(ux, uy, uz), norm3(vx, vy, vz)
	if nu < 1e-12 || nv < 1e-12 {
		return
	}
	dot := ux*vx + uy*vy + uz*vz
	cosAngle := clip(dot / (nu * nv))
	// d(acos(c))/dc = -1/sqrt(1-c^2); guard near the +/-1 singularity.
	denom := math.Sqrt(1 - cosAngle*cosAngle)
	if denom < 1e-9 {
		return
	}
	dAcos := -1 / denom

	// dc/du_k = v_k/(nu*nv) - c*u_k/nu^2 ; symmetric for v.
	du := [3]float64{vx/(nu*nv) - cosAngle*ux/(nu*nu), vy/(nu*nv) - cosAngle*uy/(nu*nu), vz/(nu*nv) - cosAngle*uz/(nu*nu)}
	dv := [3]float64{ux/(nu*nv) - cosAngle*vx/(nv*nv), uy/(nu*nv) - cosAngle*vy/(nv*nv), uz/(nu*nv) - cosAngle*vz/(nv*nv)}

	// u = p1 - p2, v = p3 - p2: du/dp1 = +I, du/dp2 = -I, dv/dp3 = +I, dv/dp2 = -I.
	for k := 0; k < 3; k++ {
		setFn(row, 3*c.P1+k, dAcos*du[k])
		setFn(row, 3*c.P3+k, dAcos*dv[k])
		setFn(row, 3*c.P2+k, dAcos*(-du[k]-dv[k]))
	}
}

// Parallel constrains edges (P1,P2) and (P3,P4) to be parallel: all
// three components of their cross product must vanish.
type Parallel struct {
	P1, P2, P3, P4 int
}

func (c Parallel) Points() []int     { return []int{c.P1, c.P2, c.P3, c.P4} }
func (c Parallel) ResidualSize() int { return 3 }

func edges(x []float64, p1, p2, p3, p4 int) (ex, ey, ez, fx, fy, fz float64) {
	ax, ay, az := coords(x, p1)
	bx, by, bz := coords(x, p2)
	cx, cy, cz := coords(x, p3)
	dx, dy, dz := coords(x, p4)
	ex, ey, ez = sub(bx, by, bz, ax, ay, az)
	fx, fy, fz = sub(dx, dy, dz, cx, cy, cz)
	return
}

func (c Parallel) Residual(x []float64) []float64 {
	ex, ey, ez, fx, fy, fz := edges(x, c.P1, c.P2, c.P3, c.P4)
	return []float64{
		ey*fz - ez*fy,
		ez*fx - ex*fz,
		ex*fy - ey*fx,
	}
}

// Jacobian uses the standard cross-product derivative: for r = e x f,
// ∂r/∂e = -[f]_x (the skew-symmetric matrix of f), ∂r/∂f = [e]_x; then
// chain rule through e = p2-p1, f = p4-p3.
func (c Parallel) Jacobian(x []float64, row int, setFn func(row, col int, v float64)) {
	ex, ey, ez, fx, fy, fz := edges(x, c.P1, c.P2, c.P3, c.P4)

	// d(r)/d(e): rows are r0=ey*fz-ez*fy, r1=ez*fx-ex*fz, r2=ex*fy-ey*fx.
	dRdE := [3][3]float64{
		{0, fz, -fy},
		{-fz, 0, fx},
		{fy, -fx, 0},
	}
	dRdF := [3][3]float64{
		{0, -ez, ey},
		{ez, 0, -ex},
		{-ey, ex, 0},
	}

	for r := 0; r < 3; r++ {
		for k := 0; k < 3; k++ {
			// e = p2 - p1: de/dp2 = +I, de/dp1 = -I.
			setFn(row+r, 3*c.P2+k, dRdE[r][k])
			setFn(row+r, 3*c.P1+k, -dRdE[r][k])
			// f = p4 - p3: df/dp4 = +I, df/dp3 = -I.
			setFn(row+r, 3*c.P4+k, dRdF[r][k])
			setFn(row+r, 3*c.P3+k, -dRdF[r][k])
		}
	}
}

// Perpendicular constrains edges (P1,P2) and (P3,P4) to be perpendicular.
type Perpendicular struct {
	P1, P2, P3, P4 int
}

func (c Perpendicular) Points() []int     { return []int{c.P1, c.P2, c.P3, c.P4} }
func (c Perpendicular) ResidualSize() int { return 1 }

func (c Perpendicular) Residual(x []float64) []float64 {
	ex, ey, ez, fx, fy, fz := edges(x, c.P1, c.P2, c.P3, c.P4)
	return []float64{ex*fx + ey*fy + ez*fz}
}

// Jacobian: r = e . f, so ∂r/∂e = f, ∂r/∂f = e, chained through
// e = p2-p1, f = p4-p3.
func (c Perpendicular) Jacobian(x []float64, row int, setFn func(row, col int, v float64)) {
	ex, ey, ez, fx, fy, fz := edges(x, c.P1, c.P2, c.P3, c.P4)
	setFn(row, 3*c.P2+0, fx)
	setFn(row, 3*c.P2+1, fy)
	setFn(row, 3*c.P2+2, fz)
	setFn(row, 3*c.P1+0, -fx)
	setFn(row, 3*c.P1+1, -fy)
	setFn(row, 3*c.P1+2, -fz)
	setFn(row, 3*c.P4+0, ex)
	setFn(row, 3*c.P4+1, ey)
	setFn(row, 3*c.P4+2, ez)
	setFn(row, 3*c.P3+0, -ex)
	setFn(row, 3*c.P3+1, -ey)
	setFn(row, 3*c.P3+2, -ez)
}
