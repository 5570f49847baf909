// Package lp is the boundary to the linear-programming backends used by the
// estimators. It does not implement any solver itself: a Problem in standard
// form (minimize c^T x subject to A x = b, x >= 0) is handed to a backend and
// the backend's outcome is reported verbatim as a Result, including its raw
// failure status. Callers decide how to react to a non-optimal status.
package lp

import (
	"gonum.org/v1/gonum/mat"
	gonumlp "gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/avidale/pinball/pkg/errors"
)

// Method selects the LP backend.
type Method string

const (
	// MethodSimplex is Dantzig's simplex method as implemented by
	// gonum/optimize/convex/lp. It is the default and currently the only
	// built-in backend.
	MethodSimplex Method = "simplex"
)

// Options is the opaque backend configuration. A nil *Options means defaults.
type Options struct {
	// Tol is how close to the optimum the solution must be; the simplex
	// backend stops once the maximal reduced cost is below Tol. Zero means
	// the backend's default.
	Tol float64

	// InitialBasic optionally seeds the simplex with a known feasible basis.
	// Must have as many entries as A has rows, or be nil.
	InitialBasic []int
}

// Status describes how the backend terminated.
type Status int

const (
	// StatusOptimal means an optimal solution was found.
	StatusOptimal Status = iota
	// StatusInfeasible means no x >= 0 satisfies A x = b.
	StatusInfeasible
	// StatusUnbounded means the objective decreases without bound.
	StatusUnbounded
	// StatusSingular means A is singular or otherwise ill-posed.
	StatusSingular
	// StatusNumericalFailure covers numerical breakdown inside the backend.
	StatusNumericalFailure
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusSingular:
		return "singular"
	case StatusNumericalFailure:
		return "numerical failure"
	default:
		return "unknown"
	}
}

// Problem is a linear program in standard form:
//
//	minimize    c^T x
//	subject to  A x = b, x >= 0
type Problem struct {
	C []float64
	A mat.Matrix
	B []float64
}

// Result is the backend's verbatim outcome.
type Result struct {
	// X is the optimal decision vector, nil unless Status is StatusOptimal.
	X []float64

	// F is the optimal objective value.
	F float64

	// NIter is the iteration count reported by the backend. Backends that do
	// not expose a count, such as the gonum simplex, report 0.
	NIter int

	// Status describes how the backend terminated.
	Status Status
}

// Solve hands the problem to the selected backend. When the backend does not
// terminate at an optimum, the returned error is a *errors.SolverError
// wrapping the backend's raw error, and the Result still carries the status
// so callers can inspect it.
func Solve(p Problem, method Method, opts *Options) (*Result, error) {
	rows, cols := p.A.Dims()
	if len(p.C) != cols {
		return nil, errors.NewDimensionError("lp.Solve", cols, len(p.C), 1)
	}
	if len(p.B) != rows {
		return nil, errors.NewDimensionError("lp.Solve", rows, len(p.B), 0)
	}

	switch method {
	case MethodSimplex, "":
		return solveSimplex(p, opts)
	default:
		return nil, errors.NewValidationError("method", "unknown LP method", string(method))
	}
}

func solveSimplex(p Problem, opts *Options) (*Result, error) {
	var tol float64
	var initialBasic []int
	if opts != nil {
		tol = opts.Tol
		initialBasic = opts.InitialBasic
	}

	f, x, err := gonumlp.Simplex(p.C, p.A, p.B, tol, initialBasic)
	if err != nil {
		status := simplexStatus(err)
		res := &Result{F: f, Status: status}
		return res, errors.NewSolverError(string(MethodSimplex), status.String(), err)
	}

	return &Result{
		X:      x,
		F:      f,
		NIter:  0, // gonum's Simplex does not report an iteration count
		Status: StatusOptimal,
	}, nil
}

func simplexStatus(err error) Status {
	switch {
	case errors.Is(err, gonumlp.ErrInfeasible):
		return StatusInfeasible
	case errors.Is(err, gonumlp.ErrUnbounded):
		return StatusUnbounded
	case errors.Is(err, gonumlp.ErrSingular),
		errors.Is(err, gonumlp.ErrZeroRow),
		errors.Is(err, gonumlp.ErrZeroColumn):
		return StatusSingular
	default:
		return StatusNumericalFailure
	}
}
