// Package trainer ties the pieces together: it loads a labeled CSV, splits it, builds a
// network from a Config, trains it, and saves the result.
package trainer

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config is the full description of a training run. Zero values are not usable directly;
// start from DefaultConfig or FromFile.
type Config struct {
	// InputPath is the labeled CSV file to train on.
	InputPath string `mapstructure:"input_path"`

	// TargetColumn is the name of the label column within InputPath.
	TargetColumn string `mapstructure:"target_column"`

	// HeldOutFraction is the fraction of rows set aside for validation, in (0, 1).
	HeldOutFraction float64 `mapstructure:"held_out_fraction"`

	// Seed fixes the train/validation split and the weight initialization, so repeated runs
	// on the same file give the same results.
	Seed int64 `mapstructure:"seed"`

	// HiddenSizes gives the size of each hidden layer, in order.
	HiddenSizes []int `mapstructure:"hidden_layer_sizes"`

	// Activations names the activation after each hidden layer. Must have the same length
	// as HiddenSizes. Recognized: "relu", "leaky-relu", "tanh", "logistic", "identity".
	Activations []string `mapstructure:"activations"`

	// Optimizer is "adam" or "sgd".
	Optimizer string `mapstructure:"optimizer"`

	// Loss is "binary-cross-entropy" or "mean-squared-error".
	Loss string `mapstructure:"loss"`

	LearningRate float64 `mapstructure:"learning_rate"`

	// WeightDecay, if > 0, adds an L2 penalty with the given λ to every dense layer.
	WeightDecay float64 `mapstructure:"weight_decay"`

	Epochs    int `mapstructure:"epochs"`
	BatchSize int `mapstructure:"batch_size"`

	// OutputPath is the directory the trained model is saved to. It is overwritten if it
	// already exists.
	OutputPath string `mapstructure:"output_path"`

	// HistoryPath, if not empty, is where the loss curves are rendered as a PNG.
	HistoryPath string `mapstructure:"history_path"`
}

// DefaultConfig returns the standard run configuration: a 64/32 relu stack with a logistic
// output, trained with adam on binary cross-entropy for 10 epochs with batches of 32, holding
// out 20% of the rows with seed 42.
func DefaultConfig() Config {
	return Config{
		TargetColumn:    "target",
		HeldOutFraction: 0.2,
		Seed:            42,
		HiddenSizes:     []int{64, 32},
		Activations:     []string{"relu", "relu"},
		Optimizer:       "adam",
		Loss:            "binary-cross-entropy",
		LearningRate:    0.001,
		Epochs:          10,
		BatchSize:       32,
		OutputPath:      "model",
	}
}

// FromFile reads a Config from the given file (YAML, TOML, or JSON, by extension), on top of
// the defaults. Individual fields can be overridden through the environment with a SKILLBOT_
// prefix, e.g. SKILLBOT_BATCH_SIZE=64.
func FromFile(path string) (Config, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("skillbot")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("target_column", def.TargetColumn)
	v.SetDefault("held_out_fraction", def.HeldOutFraction)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("hidden_layer_sizes", def.HiddenSizes)
	v.SetDefault("activations", def.Activations)
	v.SetDefault("optimizer", def.Optimizer)
	v.SetDefault("loss", def.Loss)
	v.SetDefault("learning_rate", def.LearningRate)
	v.SetDefault("weight_decay", def.WeightDecay)
	v.SetDefault("epochs", def.Epochs)
	v.SetDefault("batch_size", def.BatchSize)
	v.SetDefault("output_path", def.OutputPath)
	v.SetDefault("history_path", def.HistoryPath)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrapf(err, "Failed to read config file %q\n", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrapf(err, "Failed to unmarshal config file %q\n", path)
	}

	return cfg, nil
}

var knownActivations = map[string]bool{
	"relu":       true,
	"leaky-relu": true,
	"tanh":       true,
	"logistic":   true,
	"identity":   true,
}

// Validate checks the Config for values that would make a run fail partway through, so that
// bad configurations are rejected before any data is loaded.
func (cfg Config) Validate() error {
	if cfg.InputPath == "" {
		return errors.Errorf("Config: input_path is required")
	} else if cfg.TargetColumn == "" {
		return errors.Errorf("Config: target_column is required")
	} else if cfg.HeldOutFraction <= 0 || cfg.HeldOutFraction >= 1 {
		return errors.Errorf("Config: held_out_fraction must be in (0, 1) (%g)", cfg.HeldOutFraction)
	} else if len(cfg.HiddenSizes) != len(cfg.Activations) {
		return errors.Errorf("Config: hidden_layer_sizes and activations must have the same length (%d != %d)",
			len(cfg.HiddenSizes), len(cfg.Activations))
	} else if cfg.LearningRate <= 0 {
		return errors.Errorf("Config: learning_rate must be > 0 (%g)", cfg.LearningRate)
	} else if cfg.WeightDecay < 0 {
		return errors.Errorf("Config: weight_decay must be >= 0 (%g)", cfg.WeightDecay)
	} else if cfg.Epochs < 1 {
		return errors.Errorf("Config: epochs must be >= 1 (%d)", cfg.Epochs)
	} else if cfg.BatchSize < 1 {
		return errors.Errorf("Config: batch_size must be >= 1 (%d)", cfg.BatchSize)
	} else if cfg.OutputPath == "" {
		return errors.Errorf("Config: output_path is required")
	}

	for i, s := range cfg.HiddenSizes {
		if s < 1 {
			return errors.Errorf("Config: hidden_layer_sizes[%d] must be >= 1 (%d)", i, s)
		}
	}

	for i, a := range cfg.Activations {
		if !knownActivations[a] {
			return errors.Errorf("Config: unknown activation %q at index %d", a, i)
		}
	}

	if cfg.Optimizer != "adam" && cfg.Optimizer != "sgd" {
		return errors.Errorf("Config: unknown optimizer %q", cfg.Optimizer)
	}

	if cfg.Loss != "binary-cross-entropy" && cfg.Loss != "mean-squared-error" {
		return errors.Errorf("Config: unknown loss %q", cfg.Loss)
	}

	return nil
}
