package preprocessing

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestPreprocessDataCentering(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
	})
	y := mat.NewVecDense(4, []float64{1, 2, 3, 4})
	w := []float64{1, 1, 1, 1}

	out, err := PreprocessData(X, y, w, true, false, true)
	if err != nil {
		t.Fatalf("PreprocessData failed: %v", err)
	}

	wantOffset := []float64{2.5, 25}
	for j, want := range wantOffset {
		if math.Abs(out.XOffset[j]-want) > 1e-12 {
			t.Errorf("XOffset[%d] = %v, want %v", j, out.XOffset[j], want)
		}
	}
	if math.Abs(out.YOffset-2.5) > 1e-12 {
		t.Errorf("YOffset = %v, want 2.5", out.YOffset)
	}

	// Centered columns must sum to zero.
	for j := 0; j < 2; j++ {
		var sum float64
		for i := 0; i < 4; i++ {
			sum += out.X.At(i, j)
		}
		if math.Abs(sum) > 1e-12 {
			t.Errorf("column %d not centered, sum = %v", j, sum)
		}
	}

	// Scales stay at one without normalize.
	for j, s := range out.XScale {
		if s != 1.0 {
			t.Errorf("XScale[%d] = %v, want 1.0", j, s)
		}
	}

	// The input must be untouched with copyX true.
	if X.At(0, 0) != 1 || X.At(3, 1) != 40 {
		t.Error("input matrix was modified despite copyX=true")
	}
}

func TestPreprocessDataNormalize(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{0, 1, 2})
	y := mat.NewVecDense(3, []float64{0, 1, 2})
	w := []float64{1, 1, 1}

	out, err := PreprocessData(X, y, w, true, true, true)
	if err != nil {
		t.Fatalf("PreprocessData failed: %v", err)
	}

	// Centered column is (-1, 0, 1) with l2-norm sqrt(2).
	wantScale := math.Sqrt(2)
	if math.Abs(out.XScale[0]-wantScale) > 1e-12 {
		t.Errorf("XScale[0] = %v, want %v", out.XScale[0], wantScale)
	}

	col := mat.Col(nil, 0, out.X)
	var norm float64
	for _, v := range col {
		norm += v * v
	}
	if math.Abs(math.Sqrt(norm)-1.0) > 1e-12 {
		t.Errorf("normalized column norm = %v, want 1.0", math.Sqrt(norm))
	}
}

func TestPreprocessDataWeightedMean(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{0, 10})
	y := mat.NewVecDense(2, []float64{0, 10})
	w := []float64{3, 1}

	out, err := PreprocessData(X, y, w, true, false, true)
	if err != nil {
		t.Fatalf("PreprocessData failed: %v", err)
	}

	// Weighted mean is (3*0 + 1*10) / 4 = 2.5.
	if math.Abs(out.XOffset[0]-2.5) > 1e-12 {
		t.Errorf("XOffset[0] = %v, want 2.5", out.XOffset[0])
	}
	if math.Abs(out.YOffset-2.5) > 1e-12 {
		t.Errorf("YOffset = %v, want 2.5", out.YOffset)
	}
}

func TestPreprocessDataNoIntercept(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{1, 2})
	y := mat.NewVecDense(2, []float64{3, 4})
	w := []float64{1, 1}

	out, err := PreprocessData(X, y, w, false, false, true)
	if err != nil {
		t.Fatalf("PreprocessData failed: %v", err)
	}

	if out.XOffset[0] != 0 || out.YOffset != 0 || out.XScale[0] != 1 {
		t.Errorf("expected identity transform, got offset=%v yOffset=%v scale=%v",
			out.XOffset[0], out.YOffset, out.XScale[0])
	}
	if out.X.At(0, 0) != 1 || out.Y.AtVec(1) != 4 {
		t.Error("data should pass through unchanged without an intercept")
	}
}

func TestPreprocessDataValidation(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{1, 2})
	y := mat.NewVecDense(3, []float64{1, 2, 3})

	if _, err := PreprocessData(X, y, []float64{1, 1}, true, false, true); err == nil {
		t.Error("expected an error for mismatched y length")
	}

	y2 := mat.NewVecDense(2, []float64{1, 2})
	if _, err := PreprocessData(X, y2, []float64{1, -1}, true, false, true); err == nil {
		t.Error("expected an error for negative sample weight")
	}
}
