// Package gopla is a Go implementation of the Perceptron Learning Algorithm
// (PLA) for binary classification of integer-coded feature vectors.
//
// # Features
//
// - Deterministic training: ordered per-sample updates from zero weights
// - Structured logging of training progress through log/slog or zerolog
// - Typed errors with stack traces (cockroachdb/errors)
// - CSV datasets and error-curve plots
//
// # Installation
//
//	go get github.com/YuminosukeSato/gopla
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/gopla/datasets/credit"
//	    "github.com/YuminosukeSato/gopla/perceptron"
//	)
//
//	func main() {
//	    result, err := perceptron.Train(credit.DemoSet(), perceptron.DefaultConfig())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(result.Parameters) // weights=[0.7500 0.5250 -0.2250 -0.5250] bias=-0.1000
//
//	    agree, err := perceptron.Predict(credit.Unknown(), result.Weights, result.Bias)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("agrees with label:", agree == 1)
//	}
//
// # Packages
//
//   - perceptron: Step, Score, TotalError, Train, Predict and the Perceptron estimator
//   - datasets/credit: credit card approval coding scheme, demo data, CSV I/O
//   - metrics: accuracy, misclassified count, confusion matrix
//   - visualize: training error curve
//   - core/model: estimator interfaces, Parameters, StateManager
//   - core/parallel: chunked fan-out for large error rescans
//   - pkg/errors, pkg/log: error and logging infrastructure
//
// The pla command (cmd/pla) wraps training and prediction for the command line.
//
// # License
//
// gopla is released under the MIT License.
package gopla
