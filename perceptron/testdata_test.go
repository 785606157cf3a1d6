package perceptron

// demoSet is the credit approval data: job, income, credit history,
// existing loan, approved.
func demoSet() TrainingSet {
	return TrainingSet{
		{2, 3, 3, 2, 1},
		{1, 1, 2, 2, 0},
		{2, 1, 3, 1, 1},
		{1, 2, 3, 2, 0},
		{1, 4, 2, 2, 1},
		{1, 1, 1, 1, 0},
		{2, 4, 3, 1, 1},
		{2, 3, 2, 1, 1},
		{2, 2, 2, 2, 1},
		{1, 1, 1, 2, 0},
	}
}

// xorSet is not linearly separable.
func xorSet() TrainingSet {
	return TrainingSet{
		{0, 0, 0},
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}
}
