package model

// EstimatorState tracks whether a model has been trained.
type EstimatorState int

const (
	// NotFitted means Fit has not completed successfully yet.
	NotFitted EstimatorState = iota
	// Fitted means the model holds trained parameters.
	Fitted
)

// BaseEstimator is the embeddable base for simple estimators that only
// need fitted-state tracking.
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted reports whether the model has been fitted.
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted marks the model as fitted.
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset returns the model to the not-fitted state.
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
