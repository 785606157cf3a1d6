package perceptron

// Threshold is the activation cut-off. Scores strictly above it map to 1.
const Threshold = 0.5

// Step maps a weighted sum to a 0/1 label.
func Step(x float64) int {
	if x > Threshold {
		return 1
	}
	return 0
}
