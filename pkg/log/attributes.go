package log

// Model and operation context.
const (
	// ModelNameKey identifies the estimator, e.g. "Perceptron".
	ModelNameKey = "model.name"

	// OperationKey is the operation being performed: "fit", "predict", "score".
	OperationKey = "ml.operation"

	// ComponentKey identifies the package doing the work.
	ComponentKey = "ml.component"

	// PhaseKey is the lifecycle phase: "training", "inference".
	PhaseKey = "ml.phase"
)

// Data shape.
const (
	SamplesKey  = "data.samples"
	FeaturesKey = "data.features"
)

// Training progress and metrics.
const (
	DurationMsKey = "perf.duration_ms"
	AccuracyKey   = "metrics.accuracy"

	// LossKey carries the total error (0.5 x misclassified count).
	LossKey = "metrics.loss"

	EpochKey     = "training.epoch"
	ConvergedKey = "training.converged"

	// ThresholdKey records the step activation threshold.
	ThresholdKey = "preds.threshold"
)

// Hyperparameters.
const (
	LearningRateKey = "hyperparams.learning_rate"
	MaxEpochsKey    = "hyperparams.max_epochs"
	TargetErrorKey  = "hyperparams.target_error"
	InitialBiasKey  = "hyperparams.initial_bias"
)

// Error context.
const (
	ErrorCodeKey  = "error.code"
	SuggestionKey = "error.suggestion"
)

// Standard attribute values.
const (
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationScore   = "score"

	PhaseTraining  = "training"
	PhaseInference = "inference"

	ErrorConvergence = "CONVERGENCE_FAILURE"
)
