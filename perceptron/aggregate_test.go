package perceptron

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalErrorIsHalfMisclassified(t *testing.T) {
	set := demoSet()

	tests := []struct {
		name       string
		weights    []float64
		bias       float64
		wantMissed int
	}{
		// All outputs 0: the six approved rows are wrong.
		{"zero model", []float64{0, 0, 0, 0}, 0.05, 6},
		// All outputs 1: the four rejected rows are wrong.
		{"always approve", []float64{0, 0, 0, 0}, 1, 4},
		{"learned model", []float64{0.75, 0.525, -0.225, -0.525}, -0.1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			missed := Misclassified(set, tt.weights, tt.bias)
			total := TotalError(set, tt.weights, tt.bias)

			assert.Equal(t, tt.wantMissed, missed)
			assert.GreaterOrEqual(t, total, 0.0)
			assert.Equal(t, 0.5*float64(missed), total)
		})
	}
}

func TestTotalErrorParallelMatchesSequential(t *testing.T) {
	var big TrainingSet
	for i := 0; i < 250; i++ {
		big = append(big, demoSet()...)
	}
	assert.Greater(t, len(big), ParallelThreshold)

	weights := []float64{0, 0, 0, 0}
	assert.Equal(t, 250*TotalError(demoSet(), weights, 0.05), TotalError(big, weights, 0.05))
	assert.Equal(t, 750.0, TotalError(big, weights, 0.05))
}

func TestTotalErrorPanicsOnShapeMismatch(t *testing.T) {
	assert.Panics(t, func() {
		TotalError(demoSet(), []float64{0, 0}, 0)
	})
}
