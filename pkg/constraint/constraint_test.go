package constraint

import (
	"math"
	"testing"
)

func TestDistanceResidual(t *testing.T) {
	x := []float64{0, 0, 0, 3, 0, 0}
	c := Distance{P1: 0, P2: 1, Target: 5}
	r := c.Residual(x)
	if got := r[0]; math.Abs(got-(-2)) > 1e-12 {
		t.Errorf("Residual() = %f, want -2", got)
	}
}

func TestDistanceJacobianMatchesFiniteDifference(t *testing.T) {
	x := []float64{0, 0, 0, 3, 4, 0}
	c := Distance{P1: 0, P2: 1, Target: 1}
	checkJacobianFD(t, c, x)
}

func TestAngleResidual(t *testing.T) {
	// Right angle at p2=(0,0,0): p1=(1,0,0), p3=(0,1,0).
	x := []float64{1, 0, 0, 0, 0, 0, 0, 1, 0}
	c := Angle{P1: 0, P2: 1, P3: 2, Target: math.Pi / 2}
	r := c.Residual(x)
	if math.Abs(r[0]) > 1e-9 {
		t.Errorf("Residual() = %f, want ~0 for a right angle target pi/2", r[0])
	}
}

func TestAngleJacobianMatchesFiniteDifference(t *testing.T) {
	x := []float64{1, 0.2, 0, 0, 0, 0, 0.1, 1, 0}
	c := Angle{P1: 0, P2: 1, P3: 2, Target: math.Pi / 3}
	checkJacobianFD(t, c, x)
}

func TestParallelResidualZeroForParallelEdges(t *testing.T) {
	// (p2-p1) = (1,0,0), (p4-p3) = (2,0,0): parallel.
	x := []float64{0, 0, 0, 1, 0, 0, 5, 5, 5, 7, 5, 5}
	c := Parallel{P1: 0, P2: 1, P3: 2, P4: 3}
	r := c.Residual(x)
	for i, v := range r {
		if math.Abs(v) > 1e-12 {
			t.Errorf("Residual()[%d] = %f, want 0", i, v)
		}
	}
}

func TestParallelJacobianMatchesFiniteDifference(t *testing.T) {
	x := []float64{0, 0, 0, 1, 0.3, 0, 5, 5, 5, 6, 5.2, 5.1}
	c := Parallel{P1: 0, P2: 1, P3: 2, P4: 3}
	checkJacobianFD(t, c, x)
}

func TestPerpendicularResidualZeroForPerpendicularEdges(t *testing.T) {
	x := []float64{0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 1, 0}
	c := Perpendicular{P1: 0, P2: 1, P3: 2, P4: 3}
	r := c.Residual(x)
	if math.Abs(r[0]) > 1e-12 {
		t.Errorf("Residual() = %f, want 0", r[0])
	}
}

func TestPerpendicularJacobianMatchesFiniteDifference(t *testing.T) {
	x := []float64{0, 0, 0, 1, 0.1, 0, 0.2, 0, 0, 0.1, 1, 0}
	c := Perpendicular{P1: 0, P2: 1, P3: 2, P4: 3}
	checkJacobianFD(t, c, x)
}

// checkJacobianFD verifies a Constraint's analytic Jacobian against a
// central finite-difference approximation over every variable touched
// by c.Points().
func checkJacobianFD(t *testing.T, c Constraint, x []float64) {
	t.Helper()
	n := len(x)
	m := c.ResidualSize()
	analytic := make([][]float64, m)
	for i := range analytic {
		analytic[i] = make([]float64, n)
	}
	c.Jacobian(x, 0, func(row, col int, v float64) {
		analytic[row][col] = v
	})

	const h = 1e-6
	for _, p := range c.Points() {
		for k := 0; k < 3; k++ {
			col := 3*p + k
			xp := append([]float64(nil), x...)
			xm := append([]float64(nil), x...)
			xp[col] += h
			xm[col] -= h
			rp := c.Residual(xp)
			rm := c.Residual(xm)
			for row := 0; row < m; row++ {
				fd := (rp[row] - rm[row]) / (2 * h)
				if math.Abs(fd-analytic[row][col]) > 1e-4 {
					t.Errorf("col %d row %d: analytic = %f, finite-difference = %f", col, row, analytic[row][col], fd)
				}
			}
		}
	}
}
