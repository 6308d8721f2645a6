package trainer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sb "github.com/Thomas-WG/skillbotml"
	"github.com/Thomas-WG/skillbotml/dataset"
)

// a separable binary problem: the label is decided by the first feature
func writeTrainingCSV(t *testing.T, n int) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("f1,f2,f3,label\n")
	for i := 0; i < n; i++ {
		x1 := float64(i%10) / 10
		label := 0
		if x1 >= 0.5 {
			label = 1
		}
		fmt.Fprintf(&b, "%g,%g,%g,%d\n", x1, float64(i%3)/3, float64(i%7)/7, label)
	}

	path := filepath.Join(t.TempDir(), "train.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		t.Fatalf("failed to write training CSV: %v", err)
	}

	return path
}

func testConfig(t *testing.T) Config {
	cfg := DefaultConfig()
	cfg.InputPath = writeTrainingCSV(t, 100)
	cfg.TargetColumn = "label"
	cfg.HiddenSizes = []int{8}
	cfg.Activations = []string{"relu"}
	cfg.LearningRate = 0.05
	cfg.Epochs = 10
	cfg.BatchSize = 8
	cfg.OutputPath = filepath.Join(t.TempDir(), "model")
	return cfg
}

func TestRun(t *testing.T) {
	cfg := testConfig(t)

	hist, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(hist.Epochs) != cfg.Epochs {
		t.Fatalf("history has %d epochs, want %d", len(hist.Epochs), cfg.Epochs)
	}

	first, last := hist.Epochs[0], hist.Epochs[len(hist.Epochs)-1]
	if last.TrainCost >= first.TrainCost {
		t.Errorf("training cost did not decrease: %g -> %g", first.TrainCost, last.TrainCost)
	}

	// the saved model must load and predict with the right shape
	net, err := sb.Load(cfg.OutputPath)
	if err != nil {
		t.Fatalf("failed to load the saved model: %v", err)
	}

	ds, err := dataset.Load(cfg.InputPath, cfg.TargetColumn)
	if err != nil {
		t.Fatalf("failed to reload the dataset: %v", err)
	}

	preds, err := net.Predict(ds.X())
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}

	r, c := preds.Dims()
	if r != 100 || c != 1 {
		t.Errorf("predictions have dims (%d, %d), want (100, 1)", r, c)
	}

	for i := 0; i < r; i++ {
		if v := preds.At(i, 0); v < 0 || v > 1 {
			t.Errorf("prediction %d out of [0, 1]: %g", i, v)
		}
	}
}

func TestRunDeterministicSplit(t *testing.T) {
	cfg := testConfig(t)
	cfg.Epochs = 1

	h1, err := Run(cfg)
	if err != nil {
		t.Fatalf("first Run failed: %v", err)
	}

	h2, err := Run(cfg)
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}

	// same seed, same file: identical runs
	if h1.Epochs[0] != h2.Epochs[0] {
		t.Errorf("runs with the same seed differ: %+v vs %+v", h1.Epochs[0], h2.Epochs[0])
	}
}

func TestRunMissingTarget(t *testing.T) {
	cfg := testConfig(t)
	cfg.TargetColumn = "outcome"

	if _, err := Run(cfg); err == nil {
		t.Errorf("expected an error for a missing target column")
	}
}

func TestValidate(t *testing.T) {
	base := testConfig(t)
	if err := base.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		change func(*Config)
	}{
		{"no input path", func(c *Config) { c.InputPath = "" }},
		{"no target column", func(c *Config) { c.TargetColumn = "" }},
		{"held-out fraction 0", func(c *Config) { c.HeldOutFraction = 0 }},
		{"held-out fraction 1", func(c *Config) { c.HeldOutFraction = 1 }},
		{"mismatched activations", func(c *Config) { c.Activations = []string{"relu", "tanh"} }},
		{"unknown activation", func(c *Config) { c.Activations = []string{"softplus"} }},
		{"unknown optimizer", func(c *Config) { c.Optimizer = "rmsprop" }},
		{"unknown loss", func(c *Config) { c.Loss = "hinge" }},
		{"zero learning rate", func(c *Config) { c.LearningRate = 0 }},
		{"negative weight decay", func(c *Config) { c.WeightDecay = -0.1 }},
		{"zero epochs", func(c *Config) { c.Epochs = 0 }},
		{"zero batch size", func(c *Config) { c.BatchSize = 0 }},
		{"zero hidden size", func(c *Config) { c.HiddenSizes = []int{8, 0}; c.Activations = []string{"relu", "relu"} }},
		{"no output path", func(c *Config) { c.OutputPath = "" }},
	}

	for _, tc := range cases {
		cfg := base
		tc.change(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected a validation error", tc.name)
		}
	}
}

func TestFromFile(t *testing.T) {
	contents := "input_path: data.csv\n" +
		"target_column: label\n" +
		"epochs: 3\n" +
		"hidden_layer_sizes: [16, 8]\n" +
		"activations: [relu, tanh]\n"

	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}

	if cfg.InputPath != "data.csv" || cfg.TargetColumn != "label" || cfg.Epochs != 3 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if len(cfg.HiddenSizes) != 2 || cfg.HiddenSizes[0] != 16 || cfg.HiddenSizes[1] != 8 {
		t.Errorf("hidden_layer_sizes not applied: %v", cfg.HiddenSizes)
	}

	// untouched fields keep their defaults
	if cfg.Optimizer != "adam" || cfg.BatchSize != 32 || cfg.Seed != 42 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config failed validation: %v", err)
	}
}

func TestFromFileMissing(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("expected an error for a missing config file")
	}
}
