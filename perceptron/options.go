package perceptron

import (
	"github.com/YuminosukeSato/gopla/pkg/log"
)

// Option configures a Perceptron.
type Option func(*Perceptron)

// WithConfig replaces all hyperparameters at once.
func WithConfig(cfg Config) Option {
	return func(p *Perceptron) {
		p.cfg = cfg
	}
}

// WithMaxEpochs sets the epoch budget.
func WithMaxEpochs(maxEpochs int) Option {
	return func(p *Perceptron) {
		p.cfg.MaxEpochs = maxEpochs
	}
}

// WithAlpha sets the learning rate.
func WithAlpha(alpha float64) Option {
	return func(p *Perceptron) {
		p.cfg.Alpha = alpha
	}
}

// WithTargetError sets the convergence threshold on the total error.
func WithTargetError(target float64) Option {
	return func(p *Perceptron) {
		p.cfg.TargetError = target
	}
}

// WithInitialBias sets the bias seed.
func WithInitialBias(bias float64) Option {
	return func(p *Perceptron) {
		p.cfg.InitialBias = bias
	}
}

// WithLogger sets the logger used during Fit.
func WithLogger(l log.Logger) Option {
	return func(p *Perceptron) {
		p.logger = l
	}
}
