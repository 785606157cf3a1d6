package credit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/gopla/perceptron"
	"github.com/YuminosukeSato/gopla/pkg/errors"
)

func TestDemoSetMatchesSchema(t *testing.T) {
	set := DemoSet()
	require.Len(t, set, 10)
	require.NoError(t, set.Validate())
	require.NoError(t, ValidateSet(set))
	assert.Equal(t, 4, set.Dim())

	approved := 0
	for _, v := range set {
		approved += v.Label()
	}
	assert.Equal(t, 6, approved)

	require.NoError(t, ValidateVector(Unknown()))
}

func TestDemoSetReturnsCopies(t *testing.T) {
	set := DemoSet()
	set[0][0] = 99
	assert.Equal(t, 2, DemoSet()[0][0])
}

func TestValidateVector(t *testing.T) {
	tests := []struct {
		name  string
		v     perceptron.FeatureVector
		param string
		dim   bool
	}{
		{name: "valid", v: perceptron.FeatureVector{2, 4, 3, 1, 1}},
		{name: "job out of range", v: perceptron.FeatureVector{3, 1, 1, 1, 0}, param: "job"},
		{name: "income zero", v: perceptron.FeatureVector{1, 0, 1, 1, 0}, param: "income"},
		{name: "credit history", v: perceptron.FeatureVector{1, 1, 4, 1, 0}, param: "credit_history"},
		{name: "loan", v: perceptron.FeatureVector{1, 1, 1, 0, 0}, param: "loan"},
		{name: "label", v: perceptron.FeatureVector{1, 1, 1, 1, 2}, param: "approved"},
		{name: "short", v: perceptron.FeatureVector{1, 1, 0}, dim: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVector(tt.v)
			switch {
			case tt.dim:
				var dimErr *errors.DimensionError
				assert.True(t, errors.As(err, &dimErr))
			case tt.param != "":
				var valErr *errors.ValidationError
				require.True(t, errors.As(err, &valErr))
				assert.Equal(t, tt.param, valErr.ParamName)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestCSVRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, DemoSet()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "job,income,credit_history,loan,approved", lines[0])
	assert.Equal(t, "2,3,3,2,1", lines[1])

	set, err := LoadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, DemoSet(), set)
}

func TestLoadCSV(t *testing.T) {
	t.Run("columns in any order", func(t *testing.T) {
		data := "approved,loan,credit_history,income,job\n1,2,3,3,2\n"
		set, err := LoadCSV(strings.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, perceptron.TrainingSet{{2, 3, 3, 2, 1}}, set)
	})

	t.Run("value outside scheme", func(t *testing.T) {
		data := "job,income,credit_history,loan,approved\n2,3,3,2,1\n5,1,1,1,0\n"
		_, err := LoadCSV(strings.NewReader(data))
		var valErr *errors.ValidationError
		require.True(t, errors.As(err, &valErr))
		assert.Equal(t, "job", valErr.ParamName)
		assert.Contains(t, err.Error(), "row 1")
	})

	t.Run("header only", func(t *testing.T) {
		_, err := LoadCSV(strings.NewReader("job,income,credit_history,loan,approved\n"))
		assert.True(t, errors.Is(err, errors.ErrEmptyData))
	})

	t.Run("not a number", func(t *testing.T) {
		data := "job,income,credit_history,loan,approved\nyes,1,1,1,0\n"
		_, err := LoadCSV(strings.NewReader(data))
		assert.Error(t, err)
	})
}

func TestWriteCSVRejectsInvalidRows(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, perceptron.TrainingSet{{2, 3, 3, 2, 1}, {9, 9, 9, 9, 9}})
	var valErr *errors.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Zero(t, buf.Len())
}
