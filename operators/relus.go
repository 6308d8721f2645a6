// relus.go contains the activation functions that are derivative of relu:
// * ReLU
// * Leaky ReLU
package operators

import (
	"encoding/json"
	"os"

	sb "github.com/Thomas-WG/skillbotml"
	"github.com/Thomas-WG/skillbotml/utils"
	"github.com/pkg/errors"
)

// ****************************************
// ReLU
// ****************************************

type relu int8

// ReLU returns the standard rectified linear unit, which implements skillbotml.Operator.
func ReLU() relu {
	return relu(0)
}

func (t relu) TypeString() string {
	return "relu"
}

func (t relu) Init(l *sb.Layer) error {
	if l.Size() != l.NumInputs() {
		return errors.Errorf("Can't initialize relu Operator, does not have same number of values as inputs (%d != %d)", l.Size(), l.NumInputs())
	}

	return nil
}

func (t relu) Save(l *sb.Layer, dirPath string) error {
	return nil
}

func (t relu) Load(l *sb.Layer, dirPath string) error {
	return nil
}

func (t relu) Evaluate(l *sb.Layer, values []float64) error {
	inputs := l.CopyOfInputs()

	f := func(i int) {
		if inputs[i] > 0 {
			values[i] = inputs[i]
		} else {
			values[i] = 0
		}
	}

	opsPerThread, threadsPerCPU := len(values)*threadSizeMultiplier, 1
	utils.MultiThread(0, len(values), f, opsPerThread, threadsPerCPU)

	return nil
}

func (t relu) InputDeltas(l *sb.Layer, add func(int, float64)) error {
	f := func(i int) {
		if l.InputValue(i) > 0 {
			add(i, l.Delta(i))
		}
	}

	opsPerThread, threadsPerCPU := l.Size()*threadSizeMultiplier, 1
	utils.MultiThread(0, l.NumInputs(), f, opsPerThread, threadsPerCPU)

	return nil
}

func (t relu) CanBeAdjusted(l *sb.Layer) bool {
	return false
}

func (t relu) Adjust(l *sb.Layer) error {
	return nil
}

func (t relu) AddWeights(l *sb.Layer) error {
	return nil
}

// ****************************************
// Leaky ReLU
// ****************************************

type lrelu struct {
	Alpha float64
}

// LeakyReLU returns a standard 'leaky ReLU', where the leaky factor is given by alpha.
func LeakyReLU(alpha float64) *lrelu {
	return &lrelu{Alpha: alpha}
}

func (t *lrelu) TypeString() string {
	return "leaky-relu"
}

func (t *lrelu) Init(l *sb.Layer) error {
	if l.Size() != l.NumInputs() {
		return errors.Errorf("Can't initialize leaky-relu Operator, does not have same number of values as inputs (%d != %d)", l.Size(), l.NumInputs())
	}

	return nil
}

func (t *lrelu) Save(l *sb.Layer, dirPath string) error {
	if err := os.MkdirAll(dirPath, 0700); err != nil {
		return errors.Errorf("Failed to create directory %q", dirPath)
	}

	f, err := os.Create(dirPath + "/alpha.txt")
	if err != nil {
		return errors.Errorf("Failed to create file %q in %q", "alpha.txt", dirPath)
	}

	defer f.Close()

	enc := json.NewEncoder(f)
	if err = enc.Encode(t); err != nil {
		return errors.Wrapf(err, "Failed to encode JSON to file %q in %q\n", "alpha.txt", dirPath)
	}

	return nil
}

func (t *lrelu) Load(l *sb.Layer, dirPath string) error {
	f, err := os.Open(dirPath + "/alpha.txt")
	if err != nil {
		return errors.Errorf("Failed to open file %q in %q", "alpha.txt", dirPath)
	}

	defer f.Close()

	dec := json.NewDecoder(f)
	if err = dec.Decode(t); err != nil {
		return errors.Wrapf(err, "Failed to decode JSON from file %q in %q\n", "alpha.txt", dirPath)
	}

	return nil
}

func (t *lrelu) Evaluate(l *sb.Layer, values []float64) error {
	inputs := l.CopyOfInputs()

	f := func(i int) {
		if inputs[i] < 0 {
			values[i] = t.Alpha * inputs[i]
		} else {
			values[i] = inputs[i]
		}
	}

	opsPerThread, threadsPerCPU := len(values)*threadSizeMultiplier, 1
	utils.MultiThread(0, len(values), f, opsPerThread, threadsPerCPU)

	return nil
}

func (t *lrelu) InputDeltas(l *sb.Layer, add func(int, float64)) error {
	f := func(i int) {
		if l.InputValue(i) < 0 {
			add(i, t.Alpha*l.Delta(i))
		} else {
			add(i, l.Delta(i))
		}
	}

	opsPerThread, threadsPerCPU := l.Size()*threadSizeMultiplier, 1
	utils.MultiThread(0, l.NumInputs(), f, opsPerThread, threadsPerCPU)

	return nil
}

func (t *lrelu) CanBeAdjusted(l *sb.Layer) bool {
	return false
}

func (t *lrelu) Adjust(l *sb.Layer) error {
	return nil
}

func (t *lrelu) AddWeights(l *sb.Layer) error {
	return nil
}
