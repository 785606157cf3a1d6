// Package config holds the pla command configuration.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/YuminosukeSato/gopla/perceptron"
	"github.com/YuminosukeSato/gopla/pkg/errors"
	"github.com/YuminosukeSato/gopla/pkg/log"
)

type Config struct {
	// Training hyperparameters.
	Training perceptron.Config `yaml:"training" mapstructure:"training"`

	// Data configuration.
	Data DataConfig `yaml:"data" mapstructure:"data"`

	// Output configuration.
	Output OutputConfig `yaml:"output" mapstructure:"output"`

	// Log configuration.
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

type DataConfig struct {
	// Path is a CSV file of applications. Empty uses the built-in demo set.
	Path string `yaml:"path" mapstructure:"path"`

	// Unknown is the vector classified after training, e.g. "1,2,2,2,0".
	Unknown string `yaml:"unknown" mapstructure:"unknown"`
}

type OutputConfig struct {
	// PlotPath is where the error curve is written. Empty disables plotting.
	PlotPath string `yaml:"plotPath" mapstructure:"plotPath"`
}

type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" mapstructure:"level"`
}

// New default configuration.
func New() *Config {
	return &Config{
		Training: DefaultTraining,
		Data: DataConfig{
			Unknown: DefaultUnknown,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	cfg := New()
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// Validate config parameters.
func (cfg *Config) Validate() error {
	if err := cfg.Training.Validate(); err != nil {
		return errors.Wrap(err, "training")
	}

	if _, err := cfg.UnknownVector(); err != nil {
		return errors.Wrap(err, "data")
	}

	if _, err := log.ParseLevel(cfg.Log.Level); err != nil {
		return err
	}

	return nil
}

// UnknownVector parses Data.Unknown.
func (cfg *Config) UnknownVector() (perceptron.FeatureVector, error) {
	if cfg.Data.Unknown == "" {
		return nil, errors.NewValidationError("unknown", "data requires parameter unknown", cfg.Data.Unknown)
	}
	return perceptron.ParseFeatureVector(cfg.Data.Unknown)
}

// YAML renders the configuration as YAML.
func (cfg *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "encode config")
	}
	return out, nil
}
