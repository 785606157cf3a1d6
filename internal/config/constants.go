package config

import (
	"github.com/YuminosukeSato/gopla/perceptron"
)

const (
	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"

	// DefaultUnknown is the application classified after training.
	DefaultUnknown = "1,2,2,2,0"

	// EnvPrefix prefixes environment variable overrides, e.g. PLA_TRAINING_ALPHA.
	EnvPrefix = "PLA"
)

// DefaultTraining is the training configuration used when none is given.
var DefaultTraining = perceptron.DefaultConfig()
