package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/gopla/datasets/credit"
	"github.com/YuminosukeSato/gopla/internal/config"
	"github.com/YuminosukeSato/gopla/perceptron"
	"github.com/YuminosukeSato/gopla/pkg/errors"
	"github.com/YuminosukeSato/gopla/visualize"
)

func newTrainCmd(o *options) *cobra.Command {
	defaults := config.New()

	trainCmd := &cobra.Command{
		Use:               "train",
		Short:             "train a perceptron and classify an unknown application",
		Args:              cobra.NoArgs,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrain(cmd.OutOrStdout(), o.cfg)
		},
	}

	flags := trainCmd.Flags()
	flags.String("data", defaults.Data.Path, "CSV file with header job,income,credit_history,loan,approved")
	flags.Int("max-epochs", defaults.Training.MaxEpochs, "maximum number of passes over the training set")
	flags.Float64("alpha", defaults.Training.Alpha, "learning rate")
	flags.Float64("target-error", defaults.Training.TargetError, "stop once the total error is at or below this value")
	flags.Float64("initial-bias", defaults.Training.InitialBias, "bias before the first update")
	flags.String("unknown", defaults.Data.Unknown, "application to classify after training, label last")
	flags.String("plot", defaults.Output.PlotPath, "write the error curve to this .png, .svg or .pdf file")

	o.bindFlag(trainCmd, "data.path", "data")
	o.bindFlag(trainCmd, "training.maxEpochs", "max-epochs")
	o.bindFlag(trainCmd, "training.alpha", "alpha")
	o.bindFlag(trainCmd, "training.targetError", "target-error")
	o.bindFlag(trainCmd, "training.initialBias", "initial-bias")
	o.bindFlag(trainCmd, "data.unknown", "unknown")
	o.bindFlag(trainCmd, "output.plotPath", "plot")

	return trainCmd
}

func runTrain(out io.Writer, cfg *config.Config) error {
	set, err := loadSet(cfg.Data.Path)
	if err != nil {
		return err
	}
	unknown, err := cfg.UnknownVector()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Begin Perceptron demo")
	fmt.Fprintln(out)
	for _, v := range set {
		fmt.Fprintln(out, v.String())
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Finding best weights and bias")
	result, err := perceptron.Train(set, cfg.Training)
	if err != nil {
		return err
	}
	if result.Converged {
		fmt.Fprintf(out, "Training complete after %d epochs\n", result.Epochs)
	} else {
		fmt.Fprintf(out, "Training stopped after %d epochs without reaching the target error\n", result.Epochs)
	}
	fmt.Fprintln(out, result.Parameters.String())
	fmt.Fprintf(out, "After training total error = %.4f\n", perceptron.TotalError(set, result.Weights, result.Bias))

	if cfg.Output.PlotPath != "" {
		if err := visualize.SaveErrorCurve(result.History, cfg.Output.PlotPath); err != nil {
			return err
		}
		fmt.Fprintf(out, "Error curve written to %s\n", cfg.Output.PlotPath)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Classifying new data")
	fmt.Fprintln(out, unknown.String())
	agree, err := perceptron.Predict(unknown, result.Weights, result.Bias)
	if err != nil {
		return err
	}
	if agree == 1 {
		fmt.Fprintln(out, "prediction correct")
	} else {
		fmt.Fprintln(out, "prediction wrong")
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "End Perceptron demo")
	return nil
}

func loadSet(path string) (perceptron.TrainingSet, error) {
	if path == "" {
		return credit.DemoSet(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open data %s", path)
	}
	defer file.Close()

	return credit.LoadCSV(file)
}
