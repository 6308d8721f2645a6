package operators

import (
	"math"

	sb "github.com/Thomas-WG/skillbotml"
	"github.com/Thomas-WG/skillbotml/utils"
	"github.com/pkg/errors"
)

type logistic int8

// Logistic returns an Operator that performs an element-wise application of the logistic
// (sigmoid) function, which maps values onto (0, 1).
func Logistic() logistic {
	return logistic(0)
}

func (t logistic) TypeString() string {
	return "logistic"
}

func (t logistic) Init(l *sb.Layer) error {
	if l.Size() != l.NumInputs() {
		return errors.Errorf("Can't initialize logistic Operator, does not have same number of values as inputs (%d != %d)", l.Size(), l.NumInputs())
	}

	return nil
}

func (t logistic) Save(l *sb.Layer, dirPath string) error {
	return nil
}

func (t logistic) Load(l *sb.Layer, dirPath string) error {
	return nil
}

func (t logistic) Evaluate(l *sb.Layer, values []float64) error {
	inputs := l.CopyOfInputs()

	f := func(i int) {
		values[i] = 0.5 + 0.5*math.Tanh(0.5*inputs[i])
	}

	opsPerThread, threadsPerCPU := len(values)*threadSizeMultiplier, 1
	utils.MultiThread(0, len(values), f, opsPerThread, threadsPerCPU)

	return nil
}

// the derivative of σ(x) is σ(x)·(1 - σ(x))
func (t logistic) InputDeltas(l *sb.Layer, add func(int, float64)) error {
	f := func(i int) {
		add(i, l.Delta(i)*l.Value(i)*(1-l.Value(i)))
	}

	opsPerThread, threadsPerCPU := l.Size()*threadSizeMultiplier, 1
	utils.MultiThread(0, l.NumInputs(), f, opsPerThread, threadsPerCPU)

	return nil
}

func (t logistic) CanBeAdjusted(l *sb.Layer) bool {
	return false
}

func (t logistic) Adjust(l *sb.Layer) error {
	return nil
}

func (t logistic) AddWeights(l *sb.Layer) error {
	return nil
}
