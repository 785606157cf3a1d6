package perceptron

import (
	"github.com/YuminosukeSato/gopla/pkg/errors"
)

// Dot returns Σ features[j]*weights[j] + bias, summed left to right.
//
// len(features) must equal len(weights). A mismatch is a caller bug and
// panics with a *errors.DimensionError; the exported entry points that accept
// caller data (Train, Predict, Classify, Perceptron) check shapes first and
// return that error instead.
func Dot(features, weights []float64, bias float64) float64 {
	if len(features) != len(weights) {
		panic(errors.NewDimensionError("Score", len(weights), len(features), 1))
	}

	dot := 0.0
	for j, x := range features {
		dot += x * weights[j]
	}
	return dot + bias
}

// Score computes the predicted 0/1 label for one feature vector. It panics on
// a length mismatch, see Dot.
func Score(features, weights []float64, bias float64) int {
	return Step(Dot(features, weights, bias))
}
