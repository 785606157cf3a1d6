// Package perceptron implements a binary linear classifier trained with the
// Perceptron Learning Algorithm (PLA).
//
// The building blocks are exposed as plain functions so callers can mirror
// the classic algorithm step by step:
//
//   - Step: threshold activation, 1 if x > 0.5 else 0
//   - Score: weighted sum plus bias passed through Step
//   - TotalError: 0.5 x squared error over a whole TrainingSet
//   - Train: ordered per-sample updates until the total error reaches the
//     target or the epoch budget runs out
//   - Predict: reports whether the model agrees with a vector's own label
//
// Perceptron wraps the same loop in an estimator with Fit/Predict/Score over
// gonum matrices.
//
// Labels are 0/1, which is why the activation threshold is 0.5 rather than 0.
// Training is deterministic: identical inputs always yield identical
// parameters. On data that is not linearly separable the loop stops at
// MaxEpochs with Result.Converged == false; this is not an error.
package perceptron
