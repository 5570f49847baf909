package preprocessing

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestStandardScalerFitTransform(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		0, 100,
		2, 200,
		4, 300,
		6, 400,
	})

	scaler := NewStandardScalerDefault()
	XScaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform failed: %v", err)
	}

	r, c := XScaled.Dims()
	for j := 0; j < c; j++ {
		var mean, variance float64
		for i := 0; i < r; i++ {
			mean += XScaled.At(i, j)
		}
		mean /= float64(r)
		for i := 0; i < r; i++ {
			diff := XScaled.At(i, j) - mean
			variance += diff * diff
		}
		variance /= float64(r)

		if math.Abs(mean) > 1e-10 {
			t.Errorf("column %d mean = %v, want 0", j, mean)
		}
		if math.Abs(variance-1.0) > 1e-10 {
			t.Errorf("column %d variance = %v, want 1", j, variance)
		}
	}
}

func TestStandardScalerInverseTransform(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{1, 5, 9})

	scaler := NewStandardScalerDefault()
	XScaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform failed: %v", err)
	}

	XBack, err := scaler.InverseTransform(XScaled)
	if err != nil {
		t.Fatalf("InverseTransform failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if math.Abs(XBack.At(i, 0)-X.At(i, 0)) > 1e-10 {
			t.Errorf("round trip mismatch at %d: %v != %v", i, XBack.At(i, 0), X.At(i, 0))
		}
	}
}

func TestStandardScalerConstantFeature(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{7, 7, 7})

	scaler := NewStandardScalerDefault()
	XScaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform failed: %v", err)
	}

	// A constant column is centered but not blown up by a zero scale.
	for i := 0; i < 3; i++ {
		if XScaled.At(i, 0) != 0 {
			t.Errorf("constant column should scale to 0, got %v", XScaled.At(i, 0))
		}
	}
}

func TestStandardScalerNotFitted(t *testing.T) {
	scaler := NewStandardScalerDefault()
	_, err := scaler.Transform(mat.NewDense(1, 1, []float64{1}))
	if err == nil {
		t.Error("Transform before Fit should fail")
	}
}
