package log

// Standard attribute keys for estimator operations. Using these consistently
// keeps the emitted JSON logs filterable: every fit or predict can be located
// by model name, operation and data shape without parsing message strings.

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type, e.g. "QuantileRegressor".
	ModelNameKey = "model.name"

	// OperationKey names the operation: "fit", "predict", "score", "transform".
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation,
	// e.g. "linear_model", "preprocessing", "optimize.lp".
	ComponentKey = "ml.component"
)

// Data shape.
const (
	// SamplesKey is the number of samples (rows) being processed.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of features (columns) being processed.
	FeaturesKey = "data.features"
)

// Solver context.
const (
	// SolverMethodKey names the LP backend used for a fit.
	SolverMethodKey = "solver.method"

	// IterationsKey is the iteration count reported by the solver.
	IterationsKey = "solver.iterations"

	// ObjectiveKey is the optimal objective value reported by the solver.
	ObjectiveKey = "solver.objective"
)

// Hyperparameters.
const (
	// QuantileKey is the target quantile of a fit.
	QuantileKey = "param.quantile"

	// AlphaKey is the L1 penalty strength of a fit.
	AlphaKey = "param.alpha"
)

// Performance.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)
