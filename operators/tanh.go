package operators

import (
	"math"

	sb "github.com/Thomas-WG/skillbotml"
	"github.com/Thomas-WG/skillbotml/utils"
	"github.com/pkg/errors"
)

type tanh int8

// Tanh returns an Operator that performs an element-wise application of the tanh() function.
func Tanh() tanh {
	return tanh(0)
}

func (t tanh) TypeString() string {
	return "tanh"
}

func (t tanh) Init(l *sb.Layer) error {
	if l.Size() != l.NumInputs() {
		return errors.Errorf("Can't initialize tanh Operator, does not have same number of values as inputs (%d != %d)", l.Size(), l.NumInputs())
	}

	return nil
}

func (t tanh) Save(l *sb.Layer, dirPath string) error {
	return nil
}

func (t tanh) Load(l *sb.Layer, dirPath string) error {
	return nil
}

func (t tanh) Evaluate(l *sb.Layer, values []float64) error {
	inputs := l.CopyOfInputs()

	f := func(i int) {
		values[i] = math.Tanh(inputs[i])
	}

	opsPerThread, threadsPerCPU := len(values)*threadSizeMultiplier, 1
	utils.MultiThread(0, len(values), f, opsPerThread, threadsPerCPU)

	return nil
}

// the derivative of tanh(x) is 1 - tanh(x)^2
func (t tanh) InputDeltas(l *sb.Layer, add func(int, float64)) error {
	f := func(i int) {
		add(i, l.Delta(i)*(1-l.Value(i)*l.Value(i)))
	}

	opsPerThread, threadsPerCPU := l.Size()*threadSizeMultiplier, 1
	utils.MultiThread(0, l.NumInputs(), f, opsPerThread, threadsPerCPU)

	return nil
}

func (t tanh) CanBeAdjusted(l *sb.Layer) bool {
	return false
}

func (t tanh) Adjust(l *sb.Layer) error {
	return nil
}

func (t tanh) AddWeights(l *sb.Layer) error {
	return nil
}
