package perceptron

import (
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gopla/core/model"
	"github.com/YuminosukeSato/gopla/metrics"
	"github.com/YuminosukeSato/gopla/pkg/errors"
	"github.com/YuminosukeSato/gopla/pkg/log"
)

const modelName = "Perceptron"

// Perceptron is an estimator around Train with Fit/Predict/Score over gonum
// matrices.
type Perceptron struct {
	state *model.StateManager
	mu    sync.RWMutex

	cfg    Config
	logger log.Logger

	params    model.Parameters
	history   []float64
	nIter     int
	converged bool
}

var _ model.LinearClassifier = (*Perceptron)(nil)

// NewPerceptron returns an unfitted Perceptron with DefaultConfig.
func NewPerceptron(options ...Option) *Perceptron {
	p := &Perceptron{
		state: model.NewStateManager(),
		cfg:   DefaultConfig(),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Fit trains on X (samples x features) and y (samples x 1, values 0 or 1).
func (p *Perceptron) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "Perceptron.Fit")

	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return errors.NewModelError("Perceptron.Fit", "empty data", errors.ErrEmptyData)
	}
	ry, cy := y.Dims()
	if ry != rows {
		return errors.NewDimensionError("Perceptron.Fit", rows, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("Perceptron.Fit", "y must be a column vector")
	}

	features := make([][]float64, rows)
	labels := make([]int, rows)
	for i := 0; i < rows; i++ {
		features[i] = mat.Row(nil, i, X)
		label := y.At(i, 0)
		if label != 0 && label != 1 {
			return errors.NewValidationError("y", "labels must be 0 or 1", label)
		}
		labels[i] = int(label)
	}
	return p.fit(features, labels)
}

// FitSet trains on a TrainingSet.
func (p *Perceptron) FitSet(set TrainingSet) (err error) {
	defer errors.Recover(&err, "Perceptron.FitSet")

	if err := set.Validate(); err != nil {
		return err
	}
	rows, labels := set.split()
	return p.fit(rows, labels)
}

func (p *Perceptron) fit(rows [][]float64, labels []int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.cfg.Validate(); err != nil {
		return err
	}

	p.state.Reset()
	result, err := newTrainer(rows, labels, p.cfg, TrainLogger(p.getLogger())).run()
	if err != nil {
		return err
	}

	p.params = result.Parameters
	p.history = result.History
	p.nIter = result.Epochs
	p.converged = result.Converged
	p.state.SetFitted(len(rows[0]), len(rows))
	return nil
}

// getLogger returns the configured logger or the package default.
func (p *Perceptron) getLogger() log.Logger {
	if p.logger == nil {
		return log.GetLogger()
	}
	return p.logger
}

// Predict returns the predicted 0/1 label for every row of X.
func (p *Perceptron) Predict(X mat.Matrix) (*mat.VecDense, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	rows, cols := X.Dims()
	if err := p.state.RequireFeatures(modelName, "Predict", cols); err != nil {
		return nil, err
	}

	predictions := mat.NewVecDense(rows, nil)
	row := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(row, i, X)
		predictions.SetVec(i, float64(Score(row, p.params.Weights, p.params.Bias)))
	}

	p.getLogger().Debug("Prediction completed",
		log.ModelNameKey, modelName,
		log.OperationKey, log.OperationPredict,
		log.PhaseKey, log.PhaseInference,
		log.SamplesKey, rows,
	)
	return predictions, nil
}

// Agree reports whether the fitted model agrees with v's label, see Predict
// (the package function).
func (p *Perceptron) Agree(v FeatureVector) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if err := p.state.RequireFitted(modelName, "Agree"); err != nil {
		return 0, err
	}
	return Predict(v, p.params.Weights, p.params.Bias)
}

// Score returns the accuracy on X and y.
func (p *Perceptron) Score(X, y mat.Matrix) (float64, error) {
	yTrue, yPred, err := p.labelPair(X, y, "Score")
	if err != nil {
		return 0, err
	}
	acc, err := metrics.Accuracy(yTrue, yPred)
	if err != nil {
		return 0, err
	}

	p.getLogger().Debug("Score completed",
		log.ModelNameKey, modelName,
		log.OperationKey, log.OperationScore,
		log.PhaseKey, log.PhaseInference,
		log.SamplesKey, yTrue.Len(),
		log.AccuracyKey, acc,
	)
	return acc, nil
}

// TotalError returns 0.5 x the number of misclassified rows of X.
func (p *Perceptron) TotalError(X, y mat.Matrix) (float64, error) {
	yTrue, yPred, err := p.labelPair(X, y, "TotalError")
	if err != nil {
		return 0, err
	}
	return metrics.HalfSquaredError(yTrue, yPred)
}

func (p *Perceptron) labelPair(X, y mat.Matrix, method string) (*mat.VecDense, *mat.VecDense, error) {
	if err := p.state.RequireFitted(modelName, method); err != nil {
		return nil, nil, err
	}
	yPred, err := p.Predict(X)
	if err != nil {
		return nil, nil, err
	}
	ry, cy := y.Dims()
	if cy != 1 {
		return nil, nil, errors.NewValueError(modelName+"."+method, "y must be a column vector")
	}
	yTrue := mat.NewVecDense(ry, nil)
	for i := 0; i < ry; i++ {
		yTrue.SetVec(i, y.At(i, 0))
	}
	return yTrue, yPred, nil
}

// Parameters returns a copy of the learned weights and bias.
func (p *Perceptron) Parameters() model.Parameters {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.params.Clone()
}

// History returns the total error after each training epoch.
func (p *Perceptron) History() []float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]float64(nil), p.history...)
}

// NIter returns the number of epochs run by the last Fit.
func (p *Perceptron) NIter() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.nIter
}

// Converged reports whether the last Fit reached the target error.
func (p *Perceptron) Converged() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.converged
}

// Config returns the hyperparameters.
func (p *Perceptron) Config() Config {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cfg
}

// IsFitted reports whether Fit has completed successfully.
func (p *Perceptron) IsFitted() bool {
	return p.state.IsFitted()
}
