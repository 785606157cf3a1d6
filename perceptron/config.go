package perceptron

import (
	"math"

	"github.com/YuminosukeSato/gopla/pkg/errors"
)

const (
	DefaultMaxEpochs   = 1000
	DefaultAlpha       = 0.075
	DefaultTargetError = 0.0

	// DefaultInitialBias seeds the bias before the first epoch.
	DefaultInitialBias = 0.05
)

// Config holds the training hyperparameters.
type Config struct {
	// MaxEpochs bounds the number of full passes over the training set.
	MaxEpochs int `yaml:"maxEpochs" mapstructure:"maxEpochs"`

	// Alpha is the learning rate applied to every update.
	Alpha float64 `yaml:"alpha" mapstructure:"alpha"`

	// TargetError stops training once the total error is at or below it.
	TargetError float64 `yaml:"targetError" mapstructure:"targetError"`

	// InitialBias is the bias before the first update.
	InitialBias float64 `yaml:"initialBias" mapstructure:"initialBias"`
}

// DefaultConfig returns MaxEpochs=1000, Alpha=0.075, TargetError=0 and
// InitialBias=0.05.
func DefaultConfig() Config {
	return Config{
		MaxEpochs:   DefaultMaxEpochs,
		Alpha:       DefaultAlpha,
		TargetError: DefaultTargetError,
		InitialBias: DefaultInitialBias,
	}
}

// Validate rejects configurations that cannot start training.
func (c Config) Validate() error {
	if c.MaxEpochs <= 0 {
		return errors.NewValidationError("maxEpochs", "must be positive", c.MaxEpochs)
	}
	if !(c.Alpha > 0) || math.IsInf(c.Alpha, 0) {
		return errors.NewValidationError("alpha", "must be a positive finite number", c.Alpha)
	}
	if !(c.TargetError >= 0) || math.IsInf(c.TargetError, 0) {
		return errors.NewValidationError("targetError", "must be a non-negative finite number", c.TargetError)
	}
	if math.IsNaN(c.InitialBias) || math.IsInf(c.InitialBias, 0) {
		return errors.NewValidationError("initialBias", "must be finite", c.InitialBias)
	}
	return nil
}
