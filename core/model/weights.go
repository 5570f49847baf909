package model

import (
	"encoding/json"
	"fmt"
)

// ModelWeights is the serializable snapshot of a fitted linear model.
type ModelWeights struct {
	// ModelType names the estimator that produced the weights.
	ModelType string `json:"model_type"`

	// Version of the weight format, checked on import.
	Version string `json:"version"`

	// Coefficients are the learned feature weights.
	Coefficients []float64 `json:"coefficients"`

	// Intercept is the learned bias term.
	Intercept float64 `json:"intercept"`

	// Hyperparameters the model was configured with.
	Hyperparameters map[string]interface{} `json:"hyperparameters"`

	// Metadata holds training statistics such as sample counts and checksums.
	Metadata map[string]interface{} `json:"metadata,omitempty"`

	// IsFitted records whether the source model was trained.
	IsFitted bool `json:"is_fitted"`
}

// ToJSON serializes the weights as indented JSON.
func (mw *ModelWeights) ToJSON() ([]byte, error) {
	return json.MarshalIndent(mw, "", "  ")
}

// FromJSON deserializes weights from JSON.
func (mw *ModelWeights) FromJSON(data []byte) error {
	return json.Unmarshal(data, mw)
}

// Validate checks the weight snapshot for internal consistency.
func (mw *ModelWeights) Validate() error {
	if mw.ModelType == "" {
		return fmt.Errorf("model_type is required")
	}

	if mw.Version == "" {
		return fmt.Errorf("version is required")
	}

	if !mw.IsFitted && len(mw.Coefficients) > 0 {
		return fmt.Errorf("unfitted model should not have coefficients")
	}

	if mw.IsFitted && len(mw.Coefficients) == 0 {
		return fmt.Errorf("fitted model must have coefficients")
	}

	return nil
}

// Clone returns a deep copy of the weights.
func (mw *ModelWeights) Clone() *ModelWeights {
	clone := &ModelWeights{
		ModelType:       mw.ModelType,
		Version:         mw.Version,
		Intercept:       mw.Intercept,
		IsFitted:        mw.IsFitted,
		Coefficients:    make([]float64, len(mw.Coefficients)),
		Hyperparameters: make(map[string]interface{}),
		Metadata:        make(map[string]interface{}),
	}

	copy(clone.Coefficients, mw.Coefficients)

	for k, v := range mw.Hyperparameters {
		clone.Hyperparameters[k] = v
	}

	for k, v := range mw.Metadata {
		clone.Metadata[k] = v
	}

	return clone
}
