package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/avidale/pinball/pkg/errors"
)

// PreprocessedData is the output of PreprocessData: the transformed training
// data together with the offsets and scales needed to map fitted coefficients
// back to the original feature units.
type PreprocessedData struct {
	// X is the centered (and optionally normalized) design matrix.
	X *mat.Dense

	// Y is the centered target vector.
	Y *mat.VecDense

	// XOffset holds the weighted column means subtracted from X. All zeros
	// when no centering was applied.
	XOffset []float64

	// YOffset is the weighted mean subtracted from y. Zero when no centering
	// was applied.
	YOffset float64

	// XScale holds the column l2-norms X was divided by. All ones when no
	// normalization was applied.
	XScale []float64
}

// PreprocessData centers and optionally normalizes training data for a linear
// model, the same way scikit-learn prepares data before fitting.
//
// When fitIntercept is true the weighted column means are removed from X and
// the weighted mean from y; with normalize also true, each centered column of
// X is additionally divided by its l2-norm (zero-norm columns keep scale 1).
// When fitIntercept is false the data is returned untouched, with zero offsets
// and unit scales.
//
// sampleWeight must have one nonnegative entry per row of X. With copyX false
// and X a *mat.Dense, centering happens in place and the input is overwritten.
func PreprocessData(X mat.Matrix, y *mat.VecDense, sampleWeight []float64, fitIntercept, normalize, copyX bool) (*PreprocessedData, error) {
	nSamples, nFeatures := X.Dims()
	if nSamples == 0 || nFeatures == 0 {
		return nil, errors.NewModelError("preprocessing.PreprocessData", "empty data", errors.ErrEmptyData)
	}
	if y.Len() != nSamples {
		return nil, errors.NewDimensionError("preprocessing.PreprocessData", nSamples, y.Len(), 0)
	}
	if len(sampleWeight) != nSamples {
		return nil, errors.NewDimensionError("preprocessing.PreprocessData", nSamples, len(sampleWeight), 0)
	}
	for _, w := range sampleWeight {
		if w < 0 || math.IsNaN(w) {
			return nil, errors.NewValueError("preprocessing.PreprocessData",
				"sample weights must be nonnegative")
		}
	}

	out := &PreprocessedData{
		XOffset: make([]float64, nFeatures),
		XScale:  make([]float64, nFeatures),
		YOffset: 0,
	}
	for j := range out.XScale {
		out.XScale[j] = 1.0
	}

	var XWork *mat.Dense
	if dense, ok := X.(*mat.Dense); ok && !copyX {
		XWork = dense
	} else {
		XWork = mat.DenseCopyOf(X)
	}
	yWork := mat.VecDenseCopyOf(y)

	out.X = XWork
	out.Y = yWork

	if !fitIntercept {
		return out, nil
	}

	col := make([]float64, nSamples)
	for j := 0; j < nFeatures; j++ {
		mat.Col(col, j, XWork)
		out.XOffset[j] = stat.Mean(col, sampleWeight)
		floats.AddConst(-out.XOffset[j], col)

		if normalize {
			norm := floats.Norm(col, 2)
			if norm > 0 {
				out.XScale[j] = norm
				floats.Scale(1/norm, col)
			}
		}
		XWork.SetCol(j, col)
	}

	out.YOffset = stat.Mean(yWork.RawVector().Data, sampleWeight)
	for i := 0; i < nSamples; i++ {
		yWork.SetVec(i, yWork.AtVec(i)-out.YOffset)
	}

	return out, nil
}
