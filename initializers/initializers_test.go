package initializers

import (
	"math"
	"testing"
)

func TestUniformBounds(t *testing.T) {
	u := Uniform().Bounds(-0.5, 0.5)

	for i := 0; i < 1000; i++ {
		if v := u.Gen(); v < -0.5 || v >= 0.5 {
			t.Fatalf("value out of bounds: %g", v)
		}
	}
}

func TestNormalParams(t *testing.T) {
	n := Normal().Mean(2).SD(0.1)

	var sum float64
	const count = 10000
	for i := 0; i < count; i++ {
		sum += n.Gen()
	}

	if mean := sum / count; math.Abs(mean-2) > 0.05 {
		t.Errorf("sample mean too far from 2: %g", mean)
	}
}
