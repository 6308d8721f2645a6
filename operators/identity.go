package operators

import (
	sb "github.com/Thomas-WG/skillbotml"
	"github.com/pkg/errors"
)

type identity int8

// Identity returns an Operator that returns its inputs
func Identity() identity {
	return identity(0)
}

func (t identity) TypeString() string {
	return "identity"
}

func (t identity) Init(l *sb.Layer) error {
	if l.Size() != l.NumInputs() {
		return errors.Errorf("Can't initialize identity Operator, does not have same number of values as inputs (%d != %d)", l.Size(), l.NumInputs())
	}

	return nil
}

func (t identity) Save(l *sb.Layer, dirPath string) error {
	return nil
}

func (t identity) Load(l *sb.Layer, dirPath string) error {
	return nil
}

func (t identity) Evaluate(l *sb.Layer, values []float64) error {
	copy(values, l.CopyOfInputs())
	return nil
}

func (t identity) InputDeltas(l *sb.Layer, add func(int, float64)) error {
	for i := 0; i < l.NumInputs(); i++ {
		add(i, l.Delta(i))
	}

	return nil
}

func (t identity) CanBeAdjusted(l *sb.Layer) bool {
	return false
}

func (t identity) Adjust(l *sb.Layer) error {
	return nil
}

func (t identity) AddWeights(l *sb.Layer) error {
	return nil
}
