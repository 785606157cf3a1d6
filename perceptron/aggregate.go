package perceptron

import (
	"github.com/YuminosukeSato/gopla/core/parallel"
	"github.com/YuminosukeSato/gopla/pkg/errors"
)

// ParallelThreshold is the number of samples above which the error rescan is
// split across CPU cores.
const ParallelThreshold = 1000

// TotalError returns 0.5 * Σ (label - Score)^2 over the whole set, which for
// 0/1 labels equals half the number of misclassified samples. It panics if a
// vector's feature count differs from len(weights), see Dot.
func TotalError(set TrainingSet, weights []float64, bias float64) float64 {
	return 0.5 * float64(Misclassified(set, weights, bias))
}

// Misclassified counts the samples whose Score differs from their label.
func Misclassified(set TrainingSet, weights []float64, bias float64) int {
	rows, labels := set.split()
	return misclassified(rows, labels, weights, bias)
}

func misclassified(rows [][]float64, labels []int, weights []float64, bias float64) int {
	// Shape is checked here so a mismatch panics on the caller's goroutine.
	for _, row := range rows {
		if len(row) != len(weights) {
			panic(errors.NewDimensionError("TotalError", len(weights), len(row), 1))
		}
	}
	return parallel.SumInts(len(rows), ParallelThreshold, func(start, end int) int {
		missed := 0
		for i := start; i < end; i++ {
			diff := labels[i] - Score(rows[i], weights, bias)
			missed += diff * diff
		}
		return missed
	})
}

func totalError(rows [][]float64, labels []int, weights []float64, bias float64) float64 {
	return 0.5 * float64(misclassified(rows, labels, weights, bias))
}
