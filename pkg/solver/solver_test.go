package solver

import (
	"math"
	"testing"

	"github.com/johstrackeAI/llm-cad-system/pkg/constraint"
)

func TestSolveConvergesImmediatelyWhenAlreadySatisfied(t *testing.T) {
	s := New()
	p1 := s.AddPoint(0, 0, 0, false)
	p2 := s.AddPoint(5, 0, 0, false)
	s.AddConstraint(constraint.Distance{P1: int(p1), P2: int(p2), Target: 5})

	report, err := s.Solve(0, 0, 0)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if !report.Converged {
		t.Error("Converged = false, want true")
	}
	if report.Iterations != 0 {
		t.Errorf("Iterations = %d, want 0", report.Iterations)
	}
}

func TestSolveDistanceConstraintConverges(t *testing.T) {
	s := New()
	p1 := s.AddPoint(0, 0, 0, false)
	p2 := s.AddPoint(3, 0, 0, false)
	s.AddConstraint(constraint.Distance{P1: int(p1), P2: int(p2), Target: 5})

	report, err := s.Solve(0, 0, 0)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if !report.Converged {
		t.Fatalf("Converged = false, message = %q", report.Message)
	}
	x1, y1, z1 := s.GetPoint(p1)
	x2, y2, z2 := s.GetPoint(p2)
	d := math.Sqrt((x2-x1)*(x2-x1) + (y2-y1)*(y2-y1) + (z2-z1)*(z2-z1))
	if math.Abs(d-5) > 1e-6 {
		t.Errorf("final distance = %f, want 5", d)
	}
}

func TestSolveHoldsFixedPointUnchanged(t *testing.T) {
	s := New()
	p1 := s.AddPoint(0, 0, 0, true)
	p2 := s.AddPoint(3, 0, 0, false)
	s.AddConstraint(constraint.Distance{P1: int(p1), P2: int(p2), Target: 5})

	if _, err := s.Solve(0, 0, 0); err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	x, y, z := s.GetPoint(p1)
	if x != 0 || y != 0 || z != 0 {
		t.Errorf("fixed point moved to (%f,%f,%f), want (0,0,0)", x, y, z)
	}

	// Solve again: a fixed point must never change across any number of calls.
	if _, err := s.Solve(0, 0, 0); err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	x, y, z = s.GetPoint(p1)
	if x != 0 || y != 0 || z != 0 {
		t.Errorf("fixed point moved on second solve to (%f,%f,%f), want (0,0,0)", x, y, z)
	}
}

func TestSolveAngleConstraintConverges(t *testing.T) {
	s := New()
	p1 := s.AddPoint(1, 0, 0, false)
	p2 := s.AddPoint(0, 0, 0, true)
	p3 := s.AddPoint(0, 1, 0, false)
	s.AddConstraint(constraint.Angle{P1: int(p1), P2: int(p2), P3: int(p3), Target: math.Pi / 4})

	report, err := s.Solve(0, 0, 0)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if !report.Converged {
		t.Fatalf("Converged = false, message = %q", report.Message)
	}

	x1, y1, z1 := s.GetPoint(p1)
	x2, y2, z2 := s.GetPoint(p2)
	x3, y3, z3 := s.GetPoint(p3)
	ux, uy, uz := x1-x2, y1-y2, z1-z2
	vx, vy, vz := x3-x2, y3-y2, z3-z2
	nu := math.Sqrt(ux*ux + uy*uy + uz*uz)
	nv := math.Sqrt(vx*vx + vy*vy + vz*vz)
	cosAngle := (ux*vx + uy*vy + uz*vz) / (nu * nv)
	angle := math.Acos(math.Max(-1, math.Min(1, cosAngle)))
	if math.Abs(angle-math.Pi/4) > 1e-6 {
		t.Errorf("measured angle = %f, want pi/4 (%f)", angle, math.Pi/4)
	}
}

func TestSolveParallelConstraintConverges(t *testing.T) {
	s := New()
	p1 := s.AddPoint(0, 0, 0, true)
	p2 := s.AddPoint(1, 0, 0, true)
	p3 := s.AddPoint(0, 1, 0, false)
	p4 := s.AddPoint(1, 1.3, 0.2, false)
	s.AddConstraint(constraint.Parallel{P1: int(p1), P2: int(p2), P3: int(p3), P4: int(p4)})

	report, err := s.Solve(0, 0, 0)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if !report.Converged {
		t.Fatalf("Converged = false, message = %q", report.Message)
	}

	x1, y1, z1 := s.GetPoint(p3)
	x2, y2, z2 := s.GetPoint(p4)
	ex, ey, ez := x2-x1, y2-y1, z2-z1
	fx, fy, fz := 1.0, 0.0, 0.0 // (p2-p1) direction, both fixed
	cxp := ey*fz - ez*fy
	cyp := ez*fx - ex*fz
	czp := ex*fy - ey*fx
	inf := math.Max(math.Abs(cxp), math.Max(math.Abs(cyp), math.Abs(czp)))
	if inf > 1e-6 {
		t.Errorf("cross product infinity norm = %f, want < 1e-6", inf)
	}
}

func TestSolveSingularDistanceAtCoincidentPoints(t *testing.T) {
	s := New()
	p1 := s.AddPoint(0, 0, 0, false)
	p2 := s.AddPoint(0, 0, 0, false)
	s.AddConstraint(constraint.Distance{P1: int(p1), P2: int(p2), Target: 2})

	report, err := s.Solve(20, 0, 0)
	if err == nil && !report.Converged {
		return
	}
	if err != nil {
		return
	}
	t.Errorf("expected a Singular error or a non-converged report, got convergence: report = %+v", report)
}
