package initializers

import (
	"math"
	"math/rand"

	sb "github.com/Thomas-WG/skillbotml"
)

type xavier int8

// Xavier returns an Initializer that sets values uniformly within
// ±sqrt(6 / (fan-in + fan-out)) of zero, where fan-in and fan-out are the number of inputs
// and the size of the Layer being initialized.
func Xavier() *xavier {
	x := xavier(0)
	return &x
}

// Set is the implementation of Initializer for Xavier.
func (x *xavier) Set(l *sb.Layer, values []float64) {
	bound := math.Sqrt(6 / float64(l.NumInputs()+l.Size()))

	for i := range values {
		values[i] = (rand.Float64()*2 - 1) * bound
	}
}
