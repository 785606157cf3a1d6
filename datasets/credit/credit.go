// Package credit provides the credit card approval dataset used to
// demonstrate the perceptron: four integer-coded applicant attributes and an
// approval label.
package credit

import (
	"fmt"

	"github.com/YuminosukeSato/gopla/perceptron"
	"github.com/YuminosukeSato/gopla/pkg/errors"
)

// Attribute describes one column of the coding scheme and its allowed codes.
type Attribute struct {
	Name string
	Min  int
	Max  int
}

// Contains reports whether code is a valid value of the attribute.
func (a Attribute) Contains(code int) bool {
	return code >= a.Min && code <= a.Max
}

// Schema lists the columns in vector order. The last entry is the label.
//
//	job:            1 = no, 2 = yes
//	income:         1 = none, 2 = <1000, 3 = <2000, 4 = >=2000
//	credit_history: 1 = bad, 2 = none, 3 = good
//	loan:           1 = yes, 2 = no
//	approved:       0 = rejected, 1 = approved
var Schema = []Attribute{
	{Name: "job", Min: 1, Max: 2},
	{Name: "income", Min: 1, Max: 4},
	{Name: "credit_history", Min: 1, Max: 3},
	{Name: "loan", Min: 1, Max: 2},
	{Name: "approved", Min: 0, Max: 1},
}

// ValidateVector checks v against Schema.
func ValidateVector(v perceptron.FeatureVector) error {
	if len(v) != len(Schema) {
		return errors.NewDimensionError("credit.ValidateVector", len(Schema)-1, v.Dim(), 1)
	}
	for i, attr := range Schema {
		if !attr.Contains(v[i]) {
			return errors.NewValidationError(attr.Name,
				fmt.Sprintf("must be between %d and %d", attr.Min, attr.Max), v[i])
		}
	}
	return nil
}

// ValidateSet checks every vector of set against Schema.
func ValidateSet(set perceptron.TrainingSet) error {
	if len(set) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "credit data")
	}
	for i, v := range set {
		if err := ValidateVector(v); err != nil {
			return errors.Wrapf(err, "row %d", i)
		}
	}
	return nil
}

// DemoSet returns the ten labelled applications. Each call returns a fresh
// copy.
func DemoSet() perceptron.TrainingSet {
	return perceptron.TrainingSet{
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

// Unknown returns the application classified after training: no job, income
// below 1000, no credit history, no existing loan, labelled rejected.
func Unknown() perceptron.FeatureVector {
	return perceptron.FeatureVector{1, 2, 2, 2, 0}
}
