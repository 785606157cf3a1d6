package perceptron

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/YuminosukeSato/gopla/core/model"
	"github.com/YuminosukeSato/gopla/pkg/errors"
	"github.com/YuminosukeSato/gopla/pkg/log"
)

// Result is the outcome of Train.
type Result struct {
	model.Parameters

	// Epochs is the number of completed passes over the training set.
	Epochs int

	// TotalError is the error after the last epoch.
	TotalError float64

	// Converged reports whether TotalError reached the target.
	Converged bool

	// History holds the total error after each epoch.
	History []float64
}

// EpochStats is passed to the OnEpoch callback after every epoch.
type EpochStats struct {
	Epoch      int
	TotalError float64
	Parameters model.Parameters
}

// TrainOption customizes a Train call.
type TrainOption func(*trainer)

// TrainLogger sets the logger used for training progress.
func TrainLogger(l log.Logger) TrainOption {
	return func(t *trainer) {
		t.logger = l
	}
}

// OnEpoch registers fn to be called after every epoch with a copy of the
// current parameters.
func OnEpoch(fn func(EpochStats)) TrainOption {
	return func(t *trainer) {
		t.onEpoch = fn
	}
}

// Train runs the Perceptron Learning Algorithm on set.
//
// Weights start at zero and the bias at cfg.InitialBias. Each epoch visits
// the samples in order and, for every sample, moves the weights by
// alpha * (label - Score) * feature and the bias by alpha * (label - Score).
// After the pass the total error is recomputed over the whole set. Training
// stops when the error is at or below cfg.TargetError or after cfg.MaxEpochs
// epochs. Stopping on the epoch budget is not an error: Result.Converged is
// false and a ConvergenceWarning is emitted through errors.Warn.
//
// Invalid configuration or data is rejected before the first epoch.
func Train(set TrainingSet, cfg Config, opts ...TrainOption) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}

	rows, labels := set.split()
	t := newTrainer(rows, labels, cfg, opts...)
	return t.run()
}

type trainer struct {
	rows    [][]float64
	labels  []int
	cfg     Config
	logger  log.Logger
	onEpoch func(EpochStats)
}

func newTrainer(rows [][]float64, labels []int, cfg Config, opts ...TrainOption) *trainer {
	t := &trainer{
		rows:   rows,
		labels: labels,
		cfg:    cfg,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = log.GetLogger()
	}
	t.logger = t.logger.With(log.ModelNameKey, "Perceptron", log.ComponentKey, "perceptron")
	return t
}

func (t *trainer) run() (*Result, error) {
	dim := len(t.rows[0])
	params := model.NewParameters(dim, t.cfg.InitialBias)
	totalErr := math.Inf(1)
	history := make([]float64, 0, 16)
	debug := t.logger.Enabled(context.Background(), log.LevelDebug)
	start := time.Now()

	t.logger.Info("Training started",
		log.OperationKey, log.OperationFit,
		log.PhaseKey, log.PhaseTraining,
		log.SamplesKey, len(t.rows),
		log.FeaturesKey, dim,
		log.MaxEpochsKey, t.cfg.MaxEpochs,
		log.LearningRateKey, t.cfg.Alpha,
		log.TargetErrorKey, t.cfg.TargetError,
		log.InitialBiasKey, t.cfg.InitialBias,
		log.ThresholdKey, Threshold,
	)

	epoch := 0
	for epoch < t.cfg.MaxEpochs && totalErr > t.cfg.TargetError {
		t.epoch(&params)

		totalErr = totalError(t.rows, t.labels, params.Weights, params.Bias)
		history = append(history, totalErr)
		epoch++

		if err := t.checkStability(params, epoch); err != nil {
			t.logger.Error("Training diverged", err, log.EpochKey, epoch)
			return nil, err
		}
		if debug {
			t.logger.Debug("Epoch finished", log.EpochKey, epoch, log.LossKey, totalErr)
		}
		if t.onEpoch != nil {
			t.onEpoch(EpochStats{Epoch: epoch, TotalError: totalErr, Parameters: params.Clone()})
		}
	}

	converged := totalErr <= t.cfg.TargetError
	t.logger.Info("Training finished",
		log.EpochKey, epoch,
		log.LossKey, totalErr,
		log.ConvergedKey, converged,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	if !converged {
		t.logger.Warn("Training did not converge",
			log.ErrorCodeKey, log.ErrorConvergence,
			log.SuggestionKey, "increase maxEpochs or adjust alpha; the data may not be linearly separable",
		)
		errors.Warn(errors.NewConvergenceWarning("Perceptron", epoch,
			fmt.Sprintf("total error %.4f above target %.4f", totalErr, t.cfg.TargetError)))
	}

	return &Result{
		Parameters: params,
		Epochs:     epoch,
		TotalError: totalErr,
		Converged:  converged,
		History:    history,
	}, nil
}

// epoch applies one ordered pass of per-sample updates. Each update sees the
// weights produced by the previous sample.
func (t *trainer) epoch(params *model.Parameters) {
	alpha := t.cfg.Alpha
	for i, x := range t.rows {
		delta := t.labels[i] - Score(x, params.Weights, params.Bias)
		if delta == 0 {
			continue
		}
		for j := range params.Weights {
			params.Weights[j] = params.Weights[j] + alpha*float64(delta)*x[j]
		}
		params.Bias = params.Bias + alpha*float64(delta)
	}
}

func (t *trainer) checkStability(params model.Parameters, epoch int) error {
	if err := errors.CheckNumericalStability("Train.weights", params.Weights, epoch); err != nil {
		return err
	}
	return errors.CheckScalar("Train.bias", params.Bias, epoch)
}
