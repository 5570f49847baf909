// Package pinball provides linear quantile regression for Go, with a
// scikit-learn compatible API.
//
// Unlike least-squares regression, which models the conditional mean, a
// quantile regressor models a conditional quantile of the target and is
// robust to outliers. The estimator minimizes the pinball loss plus an L1
// penalty on the coefficients by reformulating the objective as a linear
// program.
//
// # Installation
//
//	go get github.com/avidale/pinball
//
// # Quick Start
//
// Fit the conditional median of a noisy line:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/avidale/pinball/linear_model"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(5, 1, []float64{1, 2, 3, 4, 5})
//	    y := mat.NewDense(5, 1, []float64{1.1, 1.9, 3.2, 3.9, 5.1})
//
//	    model := linear_model.NewQuantileRegressor(
//	        linear_model.WithQuantile(0.5),
//	        linear_model.WithAlpha(0),
//	    )
//	    if err := model.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println("coef:", model.Coef(), "intercept:", model.Intercept())
//	}
//
// Fitting several quantiles of the same data yields a prediction interval;
// see examples/quantile for a complete program.
//
// # Packages
//
//   - linear_model: the QuantileRegressor estimator
//   - optimize/lp: boundary to the linear-programming backends
//   - preprocessing: centering, scaling and the StandardScaler
//   - metrics: regression metrics (MSE, MAE, R², pinball loss)
//   - core/model: estimator interfaces, state and weight persistence
//   - pkg/errors: error types and the warning system
//   - pkg/log: structured logging helpers
//
// # scikit-learn Compatibility
//
// QuantileRegressor follows scikit-learn's QuantileRegressor semantics:
// hyperparameter names, the LP formulation, the decoding of coefficients
// back to original feature units, and GetParams/SetParams round-tripping.
package pinball
