package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestMAE(t *testing.T) {
	tests := []struct {
		name      string
		yTrue     *mat.VecDense
		yPred     *mat.VecDense
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "perfect prediction",
			yTrue:     mat.NewVecDense(3, []float64{1.0, 2.0, 3.0}),
			yPred:     mat.NewVecDense(3, []float64{1.0, 2.0, 3.0}),
			want:      0.0,
			tolerance: 1e-10,
		},
		{
			name:      "symmetric errors",
			yTrue:     mat.NewVecDense(4, []float64{1.0, 2.0, 3.0, 4.0}),
			yPred:     mat.NewVecDense(4, []float64{1.5, 1.5, 3.5, 3.5}),
			want:      0.5,
			tolerance: 1e-10,
		},
		{
			name:    "dimension mismatch",
			yTrue:   mat.NewVecDense(3, []float64{1.0, 2.0, 3.0}),
			yPred:   mat.NewVecDense(2, []float64{1.0, 2.0}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MAE(tt.yTrue, tt.yPred)
			if (err != nil) != tt.wantErr {
				t.Errorf("MAE() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("MAE() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMSE(t *testing.T) {
	yTrue := mat.NewVecDense(4, []float64{1.0, 2.0, 3.0, 4.0})
	yPred := mat.NewVecDense(4, []float64{1.5, 2.5, 2.5, 3.5})

	got, err := MSE(yTrue, yPred)
	if err != nil {
		t.Fatalf("MSE failed: %v", err)
	}
	if math.Abs(got-0.25) > 1e-10 {
		t.Errorf("MSE() = %v, want 0.25", got)
	}
}

func TestR2(t *testing.T) {
	yTrue := mat.NewVecDense(4, []float64{1.0, 2.0, 3.0, 4.0})

	perfect, err := R2(yTrue, yTrue)
	if err != nil {
		t.Fatalf("R2 failed: %v", err)
	}
	if math.Abs(perfect-1.0) > 1e-10 {
		t.Errorf("R2(y, y) = %v, want 1.0", perfect)
	}

	// Predicting the mean gives R2 = 0.
	mean := mat.NewVecDense(4, []float64{2.5, 2.5, 2.5, 2.5})
	zero, err := R2(yTrue, mean)
	if err != nil {
		t.Fatalf("R2 failed: %v", err)
	}
	if math.Abs(zero) > 1e-10 {
		t.Errorf("R2(y, mean) = %v, want 0.0", zero)
	}

	// Constant y_true has no variance to explain.
	constant := mat.NewVecDense(3, []float64{5, 5, 5})
	if _, err := R2(constant, constant); err == nil {
		t.Error("expected an error for zero-variance y_true")
	}
}

func TestMeanPinballLoss(t *testing.T) {
	tests := []struct {
		name      string
		yTrue     *mat.VecDense
		yPred     *mat.VecDense
		quantile  float64
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "perfect prediction",
			yTrue:     mat.NewVecDense(3, []float64{1.0, 2.0, 3.0}),
			yPred:     mat.NewVecDense(3, []float64{1.0, 2.0, 3.0}),
			quantile:  0.9,
			want:      0.0,
			tolerance: 1e-10,
		},
		{
			name:      "median is half the MAE",
			yTrue:     mat.NewVecDense(2, []float64{0.0, 0.0}),
			yPred:     mat.NewVecDense(2, []float64{1.0, -1.0}),
			quantile:  0.5,
			want:      0.5,
			tolerance: 1e-10,
		},
		{
			name:     "asymmetric at q=0.9",
			yTrue:    mat.NewVecDense(2, []float64{1.0, 0.0}),
			yPred:    mat.NewVecDense(2, []float64{0.0, 1.0}),
			quantile: 0.9,
			// Under-prediction costs 0.9, over-prediction 0.1.
			want:      0.5,
			tolerance: 1e-10,
		},
		{
			name:     "invalid quantile",
			yTrue:    mat.NewVecDense(1, []float64{1.0}),
			yPred:    mat.NewVecDense(1, []float64{1.0}),
			quantile: 1.0,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MeanPinballLoss(tt.yTrue, tt.yPred, tt.quantile)
			if (err != nil) != tt.wantErr {
				t.Errorf("MeanPinballLoss() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("MeanPinballLoss() = %v, want %v", got, tt.want)
			}
		})
	}
}
