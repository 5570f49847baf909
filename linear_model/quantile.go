// Package linear_model provides scikit-learn compatible linear models.
package linear_model

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/avidale/pinball/core/model"
	"github.com/avidale/pinball/metrics"
	"github.com/avidale/pinball/optimize/lp"
	"github.com/avidale/pinball/pkg/errors"
	"github.com/avidale/pinball/pkg/log"
	"github.com/avidale/pinball/preprocessing"
)

// QuantileRegressor is a linear model that predicts a conditional quantile of
// the target and is robust to outliers, compatible with scikit-learn's
// QuantileRegressor.
//
// It minimizes the weighted pinball loss (y - Xw) * (q - [y - Xw < 0]) plus an
// L1 penalty on the coefficients, by reformulating the objective as a linear
// program in standard form and delegating the solve to optimize/lp.
type QuantileRegressor struct {
	state *model.StateManager

	// Hyperparameters
	quantile      float64     // Target quantile, strictly between 0 and 1
	alpha         float64     // L1 penalty strength
	fitIntercept  bool        // Whether to learn the intercept
	normalize     bool        // Whether to l2-normalize features (needs fitIntercept)
	copyX         bool        // Whether to copy input data
	method        lp.Method   // LP backend selector
	solverOptions *lp.Options // Opaque backend configuration

	// Model type and version info
	modelType string
	version   string

	// Learned parameters
	coef_      []float64 // Coefficients in original feature units
	intercept_ float64   // Bias term
	nIter_     int       // Iteration count reported by the LP backend

	// Statistical information
	nFeatures_ int
	nSamples_  int
}

// QuantileRegressorOption configures a QuantileRegressor.
type QuantileRegressorOption func(*QuantileRegressor)

// NewQuantileRegressor creates a QuantileRegressor with scikit-learn's
// defaults: median regression with a small L1 penalty and an intercept.
func NewQuantileRegressor(options ...QuantileRegressorOption) *QuantileRegressor {
	qr := &QuantileRegressor{
		state:        model.NewStateManager(),
		quantile:     0.5,
		alpha:        1e-4,
		fitIntercept: true,
		normalize:    false,
		copyX:        true,
		method:       lp.MethodSimplex,
		modelType:    "QuantileRegressor",
		version:      "1.0.0",
	}

	for _, opt := range options {
		opt(qr)
	}

	return qr
}

// WithQuantile sets the quantile the model predicts.
func WithQuantile(quantile float64) QuantileRegressorOption {
	return func(qr *QuantileRegressor) {
		qr.quantile = quantile
	}
}

// WithAlpha sets the L1 penalty strength.
func WithAlpha(alpha float64) QuantileRegressorOption {
	return func(qr *QuantileRegressor) {
		qr.alpha = alpha
	}
}

// WithQRFitIntercept sets whether to learn the intercept.
func WithQRFitIntercept(fit bool) QuantileRegressorOption {
	return func(qr *QuantileRegressor) {
		qr.fitIntercept = fit
	}
}

// WithQRNormalize sets whether features are centered and divided by their
// l2-norm before fitting. Ignored when the intercept is not fitted.
func WithQRNormalize(normalize bool) QuantileRegressorOption {
	return func(qr *QuantileRegressor) {
		qr.normalize = normalize
	}
}

// WithQRCopyX sets whether input data is copied before preprocessing.
func WithQRCopyX(copy bool) QuantileRegressorOption {
	return func(qr *QuantileRegressor) {
		qr.copyX = copy
	}
}

// WithMethod sets the LP backend used for fitting.
func WithMethod(method lp.Method) QuantileRegressorOption {
	return func(qr *QuantileRegressor) {
		qr.method = method
	}
}

// WithSolverOptions passes opaque configuration to the LP backend.
func WithSolverOptions(opts *lp.Options) QuantileRegressorOption {
	return func(qr *QuantileRegressor) {
		qr.solverOptions = opts
	}
}

// validateParams checks the hyperparameters before any computation.
func (qr *QuantileRegressor) validateParams() error {
	if qr.quantile <= 0.0 || qr.quantile >= 1.0 {
		return errors.NewValidationError("quantile",
			"must be strictly between 0.0 and 1.0", qr.quantile)
	}
	if qr.alpha < 0 {
		return errors.NewValidationError("alpha",
			"must be nonnegative", qr.alpha)
	}
	return nil
}

// Fit trains the model on the given data with unit sample weights.
func (qr *QuantileRegressor) Fit(X, y mat.Matrix) error {
	return qr.FitWeighted(X, y, nil)
}

// FitWeighted trains the model with per-sample weights. A nil sampleWeight
// means unit weights. On failure the previously fitted state, if any, is left
// untouched.
func (qr *QuantileRegressor) FitWeighted(X, y mat.Matrix, sampleWeight []float64) error {
	if err := qr.validateParams(); err != nil {
		return err
	}

	nSamples, nFeatures := X.Dims()
	yRows, yCols := y.Dims()

	if nSamples == 0 || nFeatures == 0 {
		return errors.NewModelError("QuantileRegressor.Fit", "empty data", errors.ErrEmptyData)
	}
	if yRows != nSamples {
		return errors.NewDimensionError("QuantileRegressor.Fit", nSamples, yRows, 0)
	}
	if yCols != 1 {
		return errors.NewDimensionError("QuantileRegressor.Fit", 1, yCols, 1)
	}

	if sampleWeight == nil {
		sampleWeight = make([]float64, nSamples)
		for i := range sampleWeight {
			sampleWeight[i] = 1.0
		}
	} else if len(sampleWeight) != nSamples {
		return errors.NewDimensionError("QuantileRegressor.Fit", nSamples, len(sampleWeight), 0)
	}

	yVec := mat.NewVecDense(nSamples, nil)
	for i := 0; i < nSamples; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}

	// Step 1: center and optionally normalize, keeping the offsets and
	// scales needed to decode the solution back to original units.
	pre, err := preprocessing.PreprocessData(X, yVec, sampleWeight,
		qr.fitIntercept, qr.normalize, qr.copyX)
	if err != nil {
		return err
	}

	// Step 2: reformulate the penalized pinball loss as a standard-form LP.
	problem, nParams := qr.buildProblem(pre.X, pre.Y, sampleWeight)

	slog.Debug("solving quantile regression LP",
		slog.String(log.ModelNameKey, qr.modelType),
		slog.String(log.OperationKey, "fit"),
		slog.Int(log.SamplesKey, nSamples),
		slog.Int(log.FeaturesKey, nFeatures),
		slog.Float64(log.QuantileKey, qr.quantile),
		slog.Float64(log.AlphaKey, qr.alpha),
		slog.String(log.SolverMethodKey, string(qr.method)),
	)

	// Step 3: solve. A non-optimal status is a hard failure; decoding a
	// degenerate vector would silently produce a meaningless model.
	result, err := lp.Solve(problem, qr.method, qr.solverOptions)
	if err != nil {
		if result != nil && result.Status == lp.StatusNumericalFailure {
			errors.Warn(errors.NewConvergenceWarning(string(qr.method), result.NIter,
				"numerical breakdown before reaching an optimum"))
		}
		return err
	}

	if err := errors.CheckNumericalStability("QuantileRegressor.Fit", result.X, result.NIter); err != nil {
		return err
	}

	// Step 4: decode the solution and undo the preprocessing transform.
	coef, intercept := decodeSolution(result.X, nParams, qr.fitIntercept, pre)

	qr.coef_ = coef
	qr.intercept_ = intercept
	qr.nIter_ = result.NIter
	qr.nFeatures_ = nFeatures
	qr.nSamples_ = nSamples

	qr.state.SetFitted()
	qr.state.SetDimensions(nFeatures, nSamples)

	slog.Debug("quantile regression fit complete",
		slog.String(log.ModelNameKey, qr.modelType),
		slog.Int(log.IterationsKey, result.NIter),
		slog.Float64(log.ObjectiveKey, result.F),
	)

	return nil
}

// buildProblem constructs the LP whose optimum recovers the quantile
// regression parameters:
//
//	minimize    alpha*(w+ + w-) + sum_i weight_i*(q*u_i + (1-q)*v_i)
//	subject to  Xfull*(w+ - w-) + u - v = y,   w+, w-, u, v >= 0
//
// where Xfull is X with a leading column of ones when fitting an intercept.
// The decision vector is [w+ | w- | u | v]: the positive and negative parts
// of the parameters followed by those of the residuals. At the optimum at
// most one part of each pair is nonzero, so u - v is the signed residual and
// the residual costs add up to the pinball loss. The intercept's two cost
// entries are zeroed so it is never penalized.
func (qr *QuantileRegressor) buildProblem(X *mat.Dense, y *mat.VecDense, sampleWeight []float64) (lp.Problem, int) {
	nSamples, nFeatures := X.Dims()

	nParams := nFeatures
	if qr.fitIntercept {
		nParams++
	}
	nVars := 2*nParams + 2*nSamples

	c := make([]float64, nVars)
	for j := 0; j < 2*nParams; j++ {
		c[j] = qr.alpha
	}
	if qr.fitIntercept {
		// Do not penalize the intercept.
		c[0] = 0
		c[nParams] = 0
	}
	for i := 0; i < nSamples; i++ {
		c[2*nParams+i] = sampleWeight[i] * qr.quantile
		c[2*nParams+nSamples+i] = sampleWeight[i] * (1 - qr.quantile)
	}

	// A = [Xfull | -Xfull | I | -I], row i enforces
	// Xfull[i]*(w+ - w-) + u_i - v_i = y_i.
	A := mat.NewDense(nSamples, nVars, nil)
	offset := 0
	if qr.fitIntercept {
		offset = 1
	}
	for i := 0; i < nSamples; i++ {
		if qr.fitIntercept {
			A.Set(i, 0, 1.0)
			A.Set(i, nParams, -1.0)
		}
		for j := 0; j < nFeatures; j++ {
			v := X.At(i, j)
			A.Set(i, offset+j, v)
			A.Set(i, nParams+offset+j, -v)
		}
		A.Set(i, 2*nParams+i, 1.0)
		A.Set(i, 2*nParams+nSamples+i, -1.0)
	}

	b := make([]float64, nSamples)
	copy(b, y.RawVector().Data)

	return lp.Problem{C: c, A: A, B: b}, nParams
}

// decodeSolution maps the LP decision vector back to regression coefficients
// and an intercept in original feature units.
//
// The generic "set intercept from offsets" path used by other linear models
// assumes a zero intercept on normalized data, which does not hold here, so
// the unscaling is done explicitly: coefficients are divided by the column
// scales and the intercept recentered with the stored offsets.
func decodeSolution(x []float64, nParams int, fitIntercept bool, pre *preprocessing.PreprocessedData) ([]float64, float64) {
	params := make([]float64, nParams)
	for j := 0; j < nParams; j++ {
		params[j] = x[j] - x[nParams+j]
	}

	if !fitIntercept {
		return params, 0.0
	}

	coef := params[1:]
	for j := range coef {
		coef[j] /= pre.XScale[j]
	}
	intercept := params[0] + pre.YOffset - floats.Dot(pre.XOffset, coef)
	return coef, intercept
}

// Predict returns the predicted conditional quantile for each row of X.
func (qr *QuantileRegressor) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !qr.state.IsFitted() {
		return nil, errors.NewNotFittedError("QuantileRegressor", "Predict")
	}

	rows, cols := X.Dims()
	if cols != qr.nFeatures_ {
		return nil, errors.NewDimensionError("QuantileRegressor.Predict", qr.nFeatures_, cols, 1)
	}

	predictions := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		pred := qr.intercept_
		for j := 0; j < cols; j++ {
			pred += X.At(i, j) * qr.coef_[j]
		}
		predictions.Set(i, 0, pred)
	}

	return predictions, nil
}

// Score returns the coefficient of determination R^2 of the prediction.
func (qr *QuantileRegressor) Score(X, y mat.Matrix) (float64, error) {
	predictions, err := qr.Predict(X)
	if err != nil {
		return 0, err
	}

	rows, _ := y.Dims()
	yTrue := mat.NewVecDense(rows, nil)
	yPred := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		yTrue.SetVec(i, y.At(i, 0))
		yPred.SetVec(i, predictions.At(i, 0))
	}

	return metrics.R2(yTrue, yPred)
}

// Coef returns a copy of the learned coefficients.
func (qr *QuantileRegressor) Coef() []float64 {
	if qr.coef_ == nil {
		return nil
	}
	coef := make([]float64, len(qr.coef_))
	copy(coef, qr.coef_)
	return coef
}

// Intercept returns the learned intercept. It is 0.0 when the model was
// configured without an intercept.
func (qr *QuantileRegressor) Intercept() float64 {
	return qr.intercept_
}

// NIter returns the iteration count reported by the LP backend for the last
// fit. Backends that do not expose a count report 0.
func (qr *QuantileRegressor) NIter() int {
	return qr.nIter_
}

// IsFitted returns whether the model has been fitted.
func (qr *QuantileRegressor) IsFitted() bool {
	return qr.state.IsFitted()
}

// GetParams returns the model's hyperparameters (scikit-learn compatible).
func (qr *QuantileRegressor) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"quantile":      qr.quantile,
		"alpha":         qr.alpha,
		"fit_intercept": qr.fitIntercept,
		"normalize":     qr.normalize,
		"copy_X":        qr.copyX,
		"method":        string(qr.method),
	}
}

// SetParams sets the model's hyperparameters (scikit-learn compatible).
func (qr *QuantileRegressor) SetParams(params map[string]interface{}) error {
	if v, ok := params["quantile"].(float64); ok {
		qr.quantile = v
	}
	if v, ok := params["alpha"].(float64); ok {
		qr.alpha = v
	}
	if v, ok := params["fit_intercept"].(bool); ok {
		qr.fitIntercept = v
	}
	if v, ok := params["normalize"].(bool); ok {
		qr.normalize = v
	}
	if v, ok := params["copy_X"].(bool); ok {
		qr.copyX = v
	}
	if v, ok := params["method"].(string); ok {
		qr.method = lp.Method(v)
	}

	return nil
}

// ExportWeights exports the fitted model for persistence.
func (qr *QuantileRegressor) ExportWeights() (*model.ModelWeights, error) {
	if !qr.state.IsFitted() {
		return nil, errors.NewNotFittedError("QuantileRegressor", "ExportWeights")
	}

	weights := &model.ModelWeights{
		ModelType:       qr.modelType,
		Version:         qr.version,
		Coefficients:    qr.Coef(),
		Intercept:       qr.intercept_,
		IsFitted:        true,
		Hyperparameters: qr.GetParams(),
		Metadata: map[string]interface{}{
			"n_features": qr.nFeatures_,
			"n_samples":  qr.nSamples_,
			"n_iter":     qr.nIter_,
		},
	}

	data, _ := json.Marshal(weights.Coefficients)
	hash := sha256.Sum256(data)
	weights.Metadata["checksum"] = hex.EncodeToString(hash[:])

	return weights, nil
}

// ImportWeights restores a fitted model from exported weights.
func (qr *QuantileRegressor) ImportWeights(weights *model.ModelWeights) error {
	if weights == nil {
		return errors.NewValueError("QuantileRegressor.ImportWeights", "weights cannot be nil")
	}

	if weights.ModelType != qr.modelType {
		return errors.NewValueError("QuantileRegressor.ImportWeights",
			fmt.Sprintf("model type mismatch: expected %s, got %s", qr.modelType, weights.ModelType))
	}

	if err := qr.SetParams(weights.Hyperparameters); err != nil {
		return err
	}

	qr.coef_ = make([]float64, len(weights.Coefficients))
	copy(qr.coef_, weights.Coefficients)
	qr.intercept_ = weights.Intercept

	if v, ok := weights.Metadata["n_features"].(float64); ok {
		qr.nFeatures_ = int(v)
	} else if v, ok := weights.Metadata["n_features"].(int); ok {
		qr.nFeatures_ = v
	}
	if v, ok := weights.Metadata["n_samples"].(float64); ok {
		qr.nSamples_ = int(v)
	} else if v, ok := weights.Metadata["n_samples"].(int); ok {
		qr.nSamples_ = v
	}

	if checksumStr, ok := weights.Metadata["checksum"].(string); ok {
		data, _ := json.Marshal(weights.Coefficients)
		hash := sha256.Sum256(data)
		if checksumStr != hex.EncodeToString(hash[:]) {
			return errors.NewValueError("QuantileRegressor.ImportWeights",
				"checksum mismatch: weights may be corrupted")
		}
	}

	qr.state.SetFitted()
	qr.state.SetDimensions(qr.nFeatures_, qr.nSamples_)
	return nil
}

// String returns the string representation of the model.
func (qr *QuantileRegressor) String() string {
	if !qr.state.IsFitted() {
		return fmt.Sprintf("QuantileRegressor(quantile=%g, alpha=%g, fit_intercept=%t, normalize=%t, method=%s)",
			qr.quantile, qr.alpha, qr.fitIntercept, qr.normalize, qr.method)
	}
	return fmt.Sprintf("QuantileRegressor(quantile=%g, n_features=%d, fitted=true)",
		qr.quantile, qr.nFeatures_)
}
