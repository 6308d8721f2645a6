package costfuncs

import (
	"math"
)

// outputs are clamped away from exactly 0 and 1 so that the logarithms stay finite
const ε float64 = 1e-7

type bce int8

// BinaryCrossEntropy returns the cost function for networks with independent probability
// outputs, usually paired with a logistic output layer. Targets are expected to be 0 or 1.
func BinaryCrossEntropy() *bce {
	b := bce(0)
	return &b
}

func (b *bce) TypeString() string {
	return "binary-cross-entropy"
}

func clamp(v float64) float64 {
	if v < ε {
		return ε
	} else if v > 1-ε {
		return 1 - ε
	}

	return v
}

func (b *bce) Cost(outs, targets []float64) float64 {
	var sum float64
	for i := range outs {
		o := clamp(outs[i])
		sum += -1 * (targets[i]*math.Log(o) + (1-targets[i])*math.Log(1-o))
	}

	return sum / float64(len(outs))
}

func (b *bce) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	for i := range outs {
		o := clamp(outs[i])
		ds[i] = (o - targets[i]) / (o * (1 - o) * float64(len(outs)))
	}

	return ds
}
