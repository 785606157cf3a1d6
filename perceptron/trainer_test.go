package perceptron

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/gopla/pkg/errors"
	"github.com/YuminosukeSato/gopla/pkg/log"
)

func quietLogger() log.Logger {
	l, _ := log.NewTestLogger(log.LevelError)
	return l
}

func TestTrainDemoSet(t *testing.T) {
	result, err := Train(demoSet(), DefaultConfig(), TrainLogger(quietLogger()))
	require.NoError(t, err)

	assert.True(t, result.Converged)
	assert.Equal(t, 11, result.Epochs)
	assert.Equal(t, 0.0, result.TotalError)
	assert.Equal(t, []float64{1, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 1, 1, 0}, result.History)

	want := []float64{0.75, 0.525, -0.225, -0.525}
	require.Len(t, result.Weights, len(want))
	for j := range want {
		assert.InDelta(t, want[j], result.Weights[j], 1e-9, "weight %d", j)
	}
	assert.InDelta(t, -0.1, result.Bias, 1e-9)

	assert.Equal(t, result.TotalError, TotalError(demoSet(), result.Weights, result.Bias))
}

func TestTrainIsDeterministic(t *testing.T) {
	first, err := Train(demoSet(), DefaultConfig(), TrainLogger(quietLogger()))
	require.NoError(t, err)
	second, err := Train(demoSet(), DefaultConfig(), TrainLogger(quietLogger()))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTrainDoesNotModifySet(t *testing.T) {
	set := demoSet()
	_, err := Train(set, DefaultConfig(), TrainLogger(quietLogger()))
	require.NoError(t, err)
	assert.Equal(t, demoSet(), set)
}

func TestTrainSingleTrivialSample(t *testing.T) {
	set := TrainingSet{{0, 0, 0, 0, 0}}

	result, err := Train(set, DefaultConfig(), TrainLogger(quietLogger()))
	require.NoError(t, err)

	assert.True(t, result.Converged)
	assert.Equal(t, 1, result.Epochs)
	assert.Equal(t, []float64{0, 0, 0, 0}, result.Weights)
	assert.Equal(t, DefaultInitialBias, result.Bias)
}

func TestTrainNonSeparableStopsAtMaxEpochs(t *testing.T) {
	var warnings []error
	errors.SetWarningHandler(func(w error) { warnings = append(warnings, w) })
	defer errors.SetWarningHandler(func(error) {})

	cfg := DefaultConfig()
	cfg.MaxEpochs = 50

	logger, _ := log.NewTestLogger(log.LevelWarn)
	result, err := Train(xorSet(), cfg, TrainLogger(logger))
	require.NoError(t, err)

	assert.False(t, result.Converged)
	assert.True(t, logger.ContainsField(log.ErrorCodeKey, log.ErrorConvergence))
	assert.Equal(t, 50, result.Epochs)
	assert.Len(t, result.History, 50)
	assert.Greater(t, result.TotalError, 0.0)
	for _, e := range result.History {
		assert.GreaterOrEqual(t, e, 0.0)
		missed := e / 0.5
		assert.Equal(t, math.Trunc(missed), missed)
	}

	require.Len(t, warnings, 1)
	var convWarn *errors.ConvergenceWarning
	require.True(t, errors.As(warnings[0], &convWarn))
	assert.Equal(t, 50, convWarn.Iterations)
}

func TestTrainTargetErrorStopsEarly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TargetError = 0.5

	result, err := Train(demoSet(), cfg, TrainLogger(quietLogger()))
	require.NoError(t, err)

	assert.True(t, result.Converged)
	assert.Equal(t, 2, result.Epochs)
	assert.Equal(t, 0.5, result.TotalError)
}

func TestTrainRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		set   TrainingSet
		cfg   func(c *Config)
		check func(t *testing.T, err error)
	}{
		{
			name: "zero epochs",
			set:  demoSet(),
			cfg:  func(c *Config) { c.MaxEpochs = 0 },
			check: func(t *testing.T, err error) {
				var valErr *errors.ValidationError
				require.True(t, errors.As(err, &valErr))
				assert.Equal(t, "maxEpochs", valErr.ParamName)
			},
		},
		{
			name: "negative alpha",
			set:  demoSet(),
			cfg:  func(c *Config) { c.Alpha = -0.1 },
			check: func(t *testing.T, err error) {
				var valErr *errors.ValidationError
				require.True(t, errors.As(err, &valErr))
				assert.Equal(t, "alpha", valErr.ParamName)
			},
		},
		{
			name: "empty set",
			set:  nil,
			cfg:  func(c *Config) {},
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, errors.ErrEmptyData))
			},
		},
		{
			name: "ragged set",
			set:  TrainingSet{{1, 2, 1}, {1, 0}},
			cfg:  func(c *Config) {},
			check: func(t *testing.T, err error) {
				var dimErr *errors.DimensionError
				assert.True(t, errors.As(err, &dimErr))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.cfg(&cfg)
			result, err := Train(tt.set, cfg, TrainLogger(quietLogger()))
			assert.Nil(t, result)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestTrainDetectsNumericalInstability(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Alpha = math.MaxFloat64

	_, err := Train(demoSet(), cfg, TrainLogger(quietLogger()))
	require.Error(t, err)

	var numErr *errors.NumericalInstabilityError
	require.True(t, errors.As(err, &numErr))
	assert.Equal(t, 1, numErr.Iteration)
}

func TestTrainLogsProgress(t *testing.T) {
	logger, _ := log.NewTestLogger(log.LevelDebug)

	_, err := Train(demoSet(), DefaultConfig(), TrainLogger(logger))
	require.NoError(t, err)

	assert.Len(t, logger.EntriesWithMessage("Epoch finished"), 11)

	finished := logger.EntriesWithMessage("Training finished")
	require.Len(t, finished, 1)
	assert.Equal(t, true, finished[0][log.ConvergedKey])
	assert.Equal(t, 11.0, finished[0][log.EpochKey])
	assert.Equal(t, "Perceptron", finished[0][log.ModelNameKey])

	assert.True(t, logger.ContainsField(log.LearningRateKey, 0.075))
}

func TestTrainOnEpoch(t *testing.T) {
	var stats []EpochStats
	result, err := Train(demoSet(), DefaultConfig(),
		TrainLogger(quietLogger()),
		OnEpoch(func(s EpochStats) { stats = append(stats, s) }),
	)
	require.NoError(t, err)

	require.Len(t, stats, result.Epochs)
	for i, s := range stats {
		assert.Equal(t, i+1, s.Epoch)
		assert.Equal(t, result.History[i], s.TotalError)
	}
	last := stats[len(stats)-1]
	assert.Equal(t, result.Parameters, last.Parameters)

	last.Parameters.Weights[0] = 42
	assert.NotEqual(t, 42.0, result.Weights[0], "callback receives a copy")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		param string
	}{
		{"defaults", DefaultConfig(), ""},
		{"negative epochs", Config{MaxEpochs: -1, Alpha: 0.1}, "maxEpochs"},
		{"zero alpha", Config{MaxEpochs: 1, Alpha: 0}, "alpha"},
		{"NaN alpha", Config{MaxEpochs: 1, Alpha: math.NaN()}, "alpha"},
		{"infinite alpha", Config{MaxEpochs: 1, Alpha: math.Inf(1)}, "alpha"},
		{"negative target", Config{MaxEpochs: 1, Alpha: 0.1, TargetError: -1}, "targetError"},
		{"NaN target", Config{MaxEpochs: 1, Alpha: 0.1, TargetError: math.NaN()}, "targetError"},
		{"infinite bias", Config{MaxEpochs: 1, Alpha: 0.1, InitialBias: math.Inf(-1)}, "initialBias"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.param == "" {
				assert.NoError(t, err)
				return
			}
			var valErr *errors.ValidationError
			require.True(t, errors.As(err, &valErr))
			assert.Equal(t, tt.param, valErr.ParamName)
		})
	}
}
