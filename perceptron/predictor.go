package perceptron

import (
	"github.com/YuminosukeSato/gopla/core/model"
	"github.com/YuminosukeSato/gopla/pkg/errors"
)

// Predict reports whether the model agrees with v's own label: it returns 1
// when Score(v.Features(), weights, bias) equals v.Label() and 0 otherwise.
// It does not return the predicted label; use Classify for that.
func Predict(v FeatureVector, weights []float64, bias float64) (int, error) {
	if err := v.Validate(); err != nil {
		return 0, err
	}
	if v.Dim() != len(weights) {
		return 0, errors.NewDimensionError("Predict", len(weights), v.Dim(), 1)
	}

	if Score(v.Features(), weights, bias) == v.Label() {
		return 1, nil
	}
	return 0, nil
}

// Classify returns the predicted 0/1 label for features.
func Classify(features []float64, params model.Parameters) (int, error) {
	if len(features) != params.Dim() {
		return 0, errors.NewDimensionError("Classify", params.Dim(), len(features), 1)
	}
	return Score(features, params.Weights, params.Bias), nil
}
