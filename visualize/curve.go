// Package visualize renders training diagnostics with gonum/plot.
package visualize

import (
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/gopla/pkg/errors"
)

const (
	// DefaultWidth and DefaultHeight are the image size used by SaveErrorCurve.
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

var supportedFormats = map[string]bool{
	".png": true,
	".svg": true,
	".pdf": true,
}

// ErrorCurve builds a line plot of the total error after each epoch.
// Epochs are numbered from 1.
func ErrorCurve(history []float64) (*plot.Plot, error) {
	if len(history) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "error history")
	}

	points := make(plotter.XYs, len(history))
	for i, e := range history {
		points[i].X = float64(i + 1)
		points[i].Y = e
	}

	p := plot.New()
	p.Title.Text = "Perceptron training"
	p.X.Label.Text = "Epoch"
	p.Y.Label.Text = "Total error"
	p.Y.Min = 0
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(points)
	if err != nil {
		return nil, errors.Wrap(err, "build error line")
	}
	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return nil, errors.Wrap(err, "build error points")
	}
	p.Add(line, scatter)
	p.Legend.Add("total error", line)

	return p, nil
}

// SaveErrorCurve writes the error curve to path. The format follows the file
// extension: .png, .svg or .pdf.
func SaveErrorCurve(history []float64, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedFormats[ext] {
		return errors.NewValidationError("path", "extension must be .png, .svg or .pdf", path)
	}

	p, err := ErrorCurve(history)
	if err != nil {
		return err
	}
	if err := p.Save(DefaultWidth, DefaultHeight, path); err != nil {
		return errors.Wrapf(err, "save error curve to %s", path)
	}
	return nil
}
