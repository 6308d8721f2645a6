package initializers

import (
	sb "github.com/Thomas-WG/skillbotml"
)

type random struct {
	rng RNG
}

// Random returns an Initializer that sets each value independently from the given RNG.
func Random(g RNG) *random {
	return &random{g}
}

// Set is the implementation of Initializer for Random.
func (r *random) Set(l *sb.Layer, values []float64) {
	for i := range values {
		values[i] = r.rng.Gen()
	}
}
