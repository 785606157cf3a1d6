package credit

import (
	"io"

	"github.com/gocarina/gocsv"

	"github.com/YuminosukeSato/gopla/perceptron"
	"github.com/YuminosukeSato/gopla/pkg/errors"
)

// Application is one CSV row.
type Application struct {
	Job           int `csv:"job"`
	Income        int `csv:"income"`
	CreditHistory int `csv:"credit_history"`
	Loan          int `csv:"loan"`
	Approved      int `csv:"approved"`
}

// Vector converts the row to a FeatureVector in Schema order.
func (a Application) Vector() perceptron.FeatureVector {
	return perceptron.FeatureVector{a.Job, a.Income, a.CreditHistory, a.Loan, a.Approved}
}

// NewApplication converts a FeatureVector in Schema order to a row.
func NewApplication(v perceptron.FeatureVector) (Application, error) {
	if err := ValidateVector(v); err != nil {
		return Application{}, err
	}
	return Application{
		Job:           v[0],
		Income:        v[1],
		CreditHistory: v[2],
		Loan:          v[3],
		Approved:      v[4],
	}, nil
}

// LoadCSV reads applications with the header
// job,income,credit_history,loan,approved and validates them against Schema.
func LoadCSV(r io.Reader) (perceptron.TrainingSet, error) {
	var applications []*Application
	if err := gocsv.Unmarshal(r, &applications); err != nil {
		return nil, errors.Wrap(err, "decode credit csv")
	}

	set := make(perceptron.TrainingSet, 0, len(applications))
	for _, a := range applications {
		set = append(set, a.Vector())
	}
	if err := ValidateSet(set); err != nil {
		return nil, err
	}
	return set, nil
}

// WriteCSV writes set with a header row.
func WriteCSV(w io.Writer, set perceptron.TrainingSet) error {
	applications := make([]*Application, 0, len(set))
	for i, v := range set {
		a, err := NewApplication(v)
		if err != nil {
			return errors.Wrapf(err, "row %d", i)
		}
		applications = append(applications, &a)
	}

	if err := gocsv.Marshal(applications, w); err != nil {
		return errors.Wrap(err, "encode credit csv")
	}
	return nil
}
