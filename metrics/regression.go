// Package metrics provides regression evaluation metrics.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/avidale/pinball/pkg/errors"
)

// MSE computes the mean squared error.
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MSE", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("MSE", n, yPred.Len(), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}

	return sum / float64(n), nil
}

// MAE computes the mean absolute error.
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MAE", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("MAE", n, yPred.Len(), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(yTrue.AtVec(i) - yPred.AtVec(i))
	}

	return sum / float64(n), nil
}

// R2 computes the coefficient of determination.
func R2(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("R2", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("R2", n, yPred.Len(), 0)
	}

	var yMean float64
	for i := 0; i < n; i++ {
		yMean += yTrue.AtVec(i)
	}
	yMean /= float64(n)

	var ssTot, ssRes float64
	for i := 0; i < n; i++ {
		yi := yTrue.AtVec(i)
		pi := yPred.AtVec(i)
		ssTot += (yi - yMean) * (yi - yMean)
		ssRes += (yi - pi) * (yi - pi)
	}

	if ssTot == 0 {
		return 0, errors.NewValueError("R2", "cannot compute score with zero variance in y_true")
	}

	return 1 - ssRes/ssTot, nil
}

// MeanPinballLoss computes the mean pinball (quantile) loss at the given
// quantile. For a residual r = yTrue - yPred the pinball loss is q*r when
// r >= 0 and (q-1)*r otherwise; its expectation is minimized by the q-th
// conditional quantile. At quantile 0.5 it is half the mean absolute error.
func MeanPinballLoss(yTrue, yPred *mat.VecDense, quantile float64) (float64, error) {
	if quantile <= 0 || quantile >= 1 {
		return 0, errors.NewValidationError("quantile",
			"must be strictly between 0.0 and 1.0", quantile)
	}

	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MeanPinballLoss", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("MeanPinballLoss", n, yPred.Len(), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		r := yTrue.AtVec(i) - yPred.AtVec(i)
		if r >= 0 {
			sum += quantile * r
		} else {
			sum += (quantile - 1) * r
		}
	}

	return sum / float64(n), nil
}
