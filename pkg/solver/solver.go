// Package solver implements the geometric constraint solver: a
// damped Gauss-Newton / Levenberg-Marquardt loop over analytic
// constraint Jacobians (spec §4.4), built on gonum's dense linear
// algebra the way gonum's own nlls.LM solves normal equations.
package solver

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/johstrackeAI/llm-cad-system/pkg/cerr"
	"github.com/johstrackeAI/llm-cad-system/pkg/constraint"
)

const (
	// DefaultMaxIter bounds the solve loop when the caller passes <= 0.
	DefaultMaxIter = 100
	// DefaultTolR is the default infinity-norm residual convergence tolerance.
	DefaultTolR = 1e-6
	// DefaultTolX is the default infinity-norm step-size convergence tolerance.
	DefaultTolX = 1e-9

	initialLambda = 1e-3
	minLambda     = 1e-9
	maxLambda     = 1e9
)

// PointVar identifies a free 3D point owned by a Solver.
type PointVar int

// Solver holds an ordered table of point variables, their fixed flags,
// and an ordered table of constraints over them. It is not safe for
// concurrent use (spec §5).
type Solver struct {
	coords      []float64 // 3 per point, insertion order
	fixed       []bool    // per point
	constraints []constraint.Constraint
}

// New creates an empty Solver.
func New() *Solver {
	return &Solver{}
}

// AddPoint registers a new point variable at the given initial
// position and returns its handle. Variable indices reflect insertion
// order (spec §5).
func (s *Solver) AddPoint(x, y, z float64, isFixed bool) PointVar {
	s.coords = append(s.coords, x, y, z)
	s.fixed = append(s.fixed, isFixed)
	return PointVar(len(s.fixed) - 1)
}

// AddConstraint registers c against the solver's current point table.
func (s *Solver) AddConstraint(c constraint.Constraint) {
	s.constraints = append(s.constraints, c)
}

// GetPoint returns the current position of v.
func (s *Solver) GetPoint(v PointVar) (x, y, z float64) {
	i := int(v) * 3
	return s.coords[i], s.coords[i+1], s.coords[i+2]
}

// SolveReport summarizes the outcome of one Solve call.
type SolveReport struct {
	Converged         bool
	Iterations        int
	FinalResidualNorm float64
	Message           string
}

func (s *Solver) residualSize() int {
	n := 0
	for _, c := range s.constraints {
		n += c.ResidualSize()
	}
	return n
}

func (s *Solver) residual(x []float64) []float64 {
	out := make([]float64, 0, s.residualSize())
	for _, c := range s.constraints {
		out = append(out, c.Residual(x)...)
	}
	return out
}

// jacobian builds J with columns for fixed variables zeroed, per
// spec §4.4 (equivalent to omitting them from the step).
func (s *Solver) jacobian(x []float64) *mat.Dense {
	m, n := s.residualSize(), len(x)
	J := mat.NewDense(m, n, nil)
	row := 0
	setFn := func(r, c int, v float64) {
		col := c / 3
		if s.fixed[col] {
			return
		}
		J.Set(r, c, v)
	}
	for _, c := range s.constraints {
		c.Jacobian(x, row, setFn)
		row += c.ResidualSize()
	}
	return J
}

func infNorm(v []float64) float64 {
	max := 0.0
	for _, e := range v {
		if a := math.Abs(e); a > max {
			max = a
		}
	}
	return max
}

// Solve runs the damped Gauss-Newton loop to convergence or max_iter,
// using maxIter <= 0 to mean DefaultMaxIter, tolR <= 0 to mean
// DefaultTolR, and tolX <= 0 to mean DefaultTolX.
func (s *Solver) Solve(maxIter int, tolR, tolX float64) (SolveReport, error) {
	const op = "Solver.Solve"
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}
	if tolR <= 0 {
		tolR = DefaultTolR
	}
	if tolX <= 0 {
		tolX = DefaultTolX
	}
	if len(s.constraints) == 0 {
		return SolveReport{Converged: true, Message: "no constraints"}, nil
	}

	n := len(s.coords)
	x := append([]float64(nil), s.coords...)

	r := s.residual(x)
	if infNorm(r) < tolR {
		return SolveReport{Converged: true, Iterations: 0, FinalResidualNorm: infNorm(r)}, nil
	}

	lambda := initialLambda
	iterations := 0

	for iterations < maxIter {
		J := s.jacobian(x)

		jMat := mat.NewDense(n, n, nil)
		jMat.Mul(J.T(), J)
		grad := mat.NewVecDense(n, nil)
		grad.MulVec(J.T(), mat.NewVecDense(len(r), r))

		delta, singular := solveDamped(jMat, grad, &lambda)
		if singular {
			return SolveReport{Converged: false, Iterations: iterations, FinalResidualNorm: infNorm(r),
					Message: "normal equations singular at saturated damping"},
				cerr.New(cerr.Singular, op, "lambda", "normal equations stayed singular at saturated damping")
		}

		xNew := make([]float64, n)
		for i := range xNew {
			xNew[i] = x[i] - delta.AtVec(i)
		}
		rNew := s.residual(xNew)

		if floats.Norm(rNew, 2) < floats.Norm(r, 2) {
			x = xNew
			r = rNew
			lambda = math.Max(lambda/10, minLambda)
			iterations++

			stepNorm := 0.0
			for i := 0; i < n; i++ {
				if a := math.Abs(delta.AtVec(i)); a > stepNorm {
					stepNorm = a
				}
			}
			if stepNorm < tolX {
				break
			}
			if infNorm(r) < tolR {
				break
			}
		} else {
			lambda = math.Min(lambda*10, maxLambda)
			if lambda >= maxLambda {
				return SolveReport{Converged: false, Iterations: iterations, FinalResidualNorm: infNorm(r),
						Message: "step rejected at saturated damping"},
					cerr.New(cerr.Singular, op, "lambda", "damping saturated without an accepted step")
			}
		}
	}

	copy(s.coords, applyFixed(s.coords, x, s.fixed))
	finalNorm := infNorm(r)
	return SolveReport{
		Converged:         finalNorm < tolR,
		Iterations:        iterations,
		FinalResidualNorm: finalNorm,
	}, nil
}

// applyFixed returns x with fixed points' coordinates forced back to
// their original values. Since jacobian already zeroes fixed columns,
// their step components are zero; this is a defensive restore.
func applyFixed(orig, x []float64, fixed []bool) []float64 {
	out := append([]float64(nil), x...)
	for i, isFixed := range fixed {
		if isFixed {
			out[3*i], out[3*i+1], out[3*i+2] = orig[3*i], orig[3*i+1], orig[3*i+2]
		}
	}
	return out
}

// solveDamped solves (A + lambda*I) delta = grad, increasing lambda on
// a singular system until it saturates.
func solveDamped(a *mat.Dense, grad *mat.VecDense, lambda *float64) (*mat.VecDense, bool) {
	n, _ := a.Dims()
	delta := mat.NewVecDense(n, nil)
	for {
		damped := mat.NewDense(n, n, nil)
		damped.Add(a, scaledIdentity(n, *lambda))
		err := delta.SolveVec(damped, grad)
		if err == nil {
			return delta, false
		}
		*lambda = math.Min(*lambda*10, maxLambda)
		if *lambda >= maxLambda {
			return nil, true
		}
	}
}

func scaledIdentity(n int, v float64) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, v)
	}
	return m
}
