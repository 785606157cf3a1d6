package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/YuminosukeSato/gopla/internal/config"
	"github.com/YuminosukeSato/gopla/pkg/errors"
	"github.com/YuminosukeSato/gopla/pkg/log"
)

var plaDescription = `
pla trains a perceptron on integer-coded credit card applications and
classifies a new application with the learned weights and bias.

Without --data the built-in ten-row demo set is used. Settings are read from
flags, then PLA_ environment variables (e.g. PLA_TRAINING_ALPHA), then the
YAML file given with --config, then defaults.
`

// options carries the state shared by the subcommands of one root command.
type options struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
}

// New returns the pla root command with its subcommands.
func New() *cobra.Command {
	o := &options{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:               "pla <command> [flags]",
		Short:             "perceptron learning algorithm for credit card approval.",
		Long:              plaDescription,
		Args:              cobra.NoArgs,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.load()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&o.cfgFile, "config", "", "path of the YAML configuration file")
	flags.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn or error")
	if err := o.v.BindPFlag("log.level", flags.Lookup("log-level")); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(newTrainCmd(o))
	rootCmd.AddCommand(newConfigCmd(o))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := New().Execute(); err != nil {
		os.Exit(1)
	}
}

// load merges defaults, the config file, environment and flags into o.cfg.
func (o *options) load() error {
	defaults := config.New()
	o.v.SetDefault("training.maxEpochs", defaults.Training.MaxEpochs)
	o.v.SetDefault("training.alpha", defaults.Training.Alpha)
	o.v.SetDefault("training.targetError", defaults.Training.TargetError)
	o.v.SetDefault("training.initialBias", defaults.Training.InitialBias)
	o.v.SetDefault("data.path", defaults.Data.Path)
	o.v.SetDefault("data.unknown", defaults.Data.Unknown)
	o.v.SetDefault("output.plotPath", defaults.Output.PlotPath)
	o.v.SetDefault("log.level", defaults.Log.Level)

	o.v.SetEnvPrefix(config.EnvPrefix)
	o.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	o.v.AutomaticEnv()

	if o.cfgFile != "" {
		o.v.SetConfigFile(o.cfgFile)
		o.v.SetConfigType("yaml")
		if err := o.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", o.cfgFile)
		}
	}

	cfg := config.New()
	if err := o.v.Unmarshal(cfg); err != nil {
		return errors.Wrap(err, "cannot unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	if err := log.SetupLoggerWithWriter(os.Stderr, cfg.Log.Level); err != nil {
		return err
	}
	if o.cfgFile != "" {
		slog.Debug("Using config file", "path", o.v.ConfigFileUsed())
	}
	return nil
}

// bindFlag binds a command flag to a configuration key.
func (o *options) bindFlag(cmd *cobra.Command, key, flag string) {
	if err := o.v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
		panic(err)
	}
}
