package perceptron

import (
	"strconv"
	"strings"

	"github.com/YuminosukeSato/gopla/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// FeatureVector holds integer-coded features followed by one trailing 0/1
// label, e.g. {2, 3, 3, 2, 1}.
type FeatureVector []int

// Dim returns the number of features (the length without the label).
func (v FeatureVector) Dim() int {
	if len(v) == 0 {
		return 0
	}
	return len(v) - 1
}

// Features returns the features as float64, without the label.
func (v FeatureVector) Features() []float64 {
	features := make([]float64, v.Dim())
	for j := range features {
		features[j] = float64(v[j])
	}
	return features
}

// Label returns the trailing label, or -1 for an empty vector.
func (v FeatureVector) Label() int {
	if len(v) == 0 {
		return -1
	}
	return v[len(v)-1]
}

// Validate checks that v has at least one feature and a 0/1 label.
func (v FeatureVector) Validate() error {
	if len(v) < 2 {
		return errors.NewValidationError("vector", "needs at least one feature and a label", []int(v))
	}
	if l := v.Label(); l != 0 && l != 1 {
		return errors.NewValidationError("label", "must be 0 or 1", l)
	}
	return nil
}

// String renders the vector as comma-terminated values: "2,3,3,2,1,".
func (v FeatureVector) String() string {
	var b strings.Builder
	for _, x := range v {
		b.WriteString(strconv.Itoa(x))
		b.WriteByte(',')
	}
	return b.String()
}

// ParseFeatureVector parses comma separated integers such as "1,2,2,2,0" or
// the String form "1,2,2,2,0,". The last value is the label.
func ParseFeatureVector(s string) (FeatureVector, error) {
	fields := strings.Split(strings.TrimSuffix(strings.TrimSpace(s), ","), ",")
	v := make(FeatureVector, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.NewValidationError("vector", "values must be integers", s)
		}
		v = append(v, x)
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

// TrainingSet is an ordered collection of FeatureVector. Training only reads it.
type TrainingSet []FeatureVector

// Dim returns the feature count of the first vector, or 0 for an empty set.
func (s TrainingSet) Dim() int {
	if len(s) == 0 {
		return 0
	}
	return s[0].Dim()
}

// Validate checks that s is non-empty, that every vector has the same
// length, and that every label is 0 or 1.
func (s TrainingSet) Validate() error {
	if len(s) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "training set")
	}
	want := len(s[0])
	for i, v := range s {
		if len(v) != want {
			return errors.Wrapf(errors.NewDimensionError("TrainingSet.Validate", want-1, v.Dim(), 1), "row %d", i)
		}
		if err := v.Validate(); err != nil {
			return errors.Wrapf(err, "row %d", i)
		}
	}
	return nil
}

// Matrix converts s to a feature matrix and a label vector. s must be
// non-empty and rectangular; see Validate.
func (s TrainingSet) Matrix() (*mat.Dense, *mat.VecDense) {
	rows, cols := len(s), s.Dim()
	X := mat.NewDense(rows, cols, nil)
	y := mat.NewVecDense(rows, nil)
	for i, v := range s {
		X.SetRow(i, v.Features())
		y.SetVec(i, float64(v.Label()))
	}
	return X, y
}

// split returns the features and labels of a validated set.
func (s TrainingSet) split() ([][]float64, []int) {
	rows := make([][]float64, len(s))
	labels := make([]int, len(s))
	for i, v := range s {
		rows[i] = v.Features()
		labels[i] = v.Label()
	}
	return rows, labels
}
