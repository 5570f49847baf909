package lp

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/avidale/pinball/pkg/errors"
)

func TestSolveSimplex(t *testing.T) {
	// minimize -x1 - 2 x2 with slack columns already in place.
	// Optimum is x = (2, 3), objective -8.
	p := Problem{
		C: []float64{-1, -2, 0, 0},
		A: mat.NewDense(2, 4, []float64{-1, 2, 1, 0, 3, 1, 0, 1}),
		B: []float64{4, 9},
	}

	res, err := Solve(p, MethodSimplex, nil)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if res.Status != StatusOptimal {
		t.Errorf("Status = %v, want optimal", res.Status)
	}
	if math.Abs(res.F-(-8)) > 1e-10 {
		t.Errorf("F = %v, want -8", res.F)
	}
	want := []float64{2, 3, 0, 0}
	for i, w := range want {
		if math.Abs(res.X[i]-w) > 1e-10 {
			t.Errorf("X[%d] = %v, want %v", i, res.X[i], w)
		}
	}
}

func TestSolveDefaultMethod(t *testing.T) {
	p := Problem{
		C: []float64{1, 1},
		A: mat.NewDense(1, 2, []float64{1, 1}),
		B: []float64{1},
	}

	// Empty method falls back to the simplex backend.
	res, err := Solve(p, "", nil)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if math.Abs(res.F-1) > 1e-10 {
		t.Errorf("F = %v, want 1", res.F)
	}
}

func TestSolveInfeasible(t *testing.T) {
	// x1 = 2 and x1 + x2 = 1 force x2 = -1, which violates x >= 0.
	p := Problem{
		C: []float64{1, 1},
		A: mat.NewDense(2, 2, []float64{1, 0, 1, 1}),
		B: []float64{2, 1},
	}

	res, err := Solve(p, MethodSimplex, nil)
	if err == nil {
		t.Fatal("expected an error for an infeasible problem")
	}

	var solverErr *errors.SolverError
	if !errors.As(err, &solverErr) {
		t.Fatalf("error should be a *SolverError, got %T", err)
	}
	if res.Status != StatusInfeasible {
		t.Errorf("Status = %v, want infeasible", res.Status)
	}
}

func TestSolveUnbounded(t *testing.T) {
	// x1 - x2 = 1 with objective -x1: increasing x2 drives the objective
	// to -infinity.
	p := Problem{
		C: []float64{-1, 0},
		A: mat.NewDense(1, 2, []float64{1, -1}),
		B: []float64{1},
	}

	res, err := Solve(p, MethodSimplex, nil)
	if err == nil {
		t.Fatal("expected an error for an unbounded problem")
	}
	if res.Status != StatusUnbounded {
		t.Errorf("Status = %v, want unbounded", res.Status)
	}
}

func TestSolveValidatesShapes(t *testing.T) {
	p := Problem{
		C: []float64{1, 1, 1},
		A: mat.NewDense(1, 2, []float64{1, 1}),
		B: []float64{1},
	}

	_, err := Solve(p, MethodSimplex, nil)
	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("expected a *DimensionError for mismatched c, got %v", err)
	}
}

func TestSolveUnknownMethod(t *testing.T) {
	p := Problem{
		C: []float64{1},
		A: mat.NewDense(1, 1, []float64{1}),
		B: []float64{1},
	}

	_, err := Solve(p, Method("interior-point"), nil)
	var valErr *errors.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected a *ValidationError for unknown method, got %v", err)
	}
}
