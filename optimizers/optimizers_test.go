package optimizers

import (
	"math"
	"testing"

	"github.com/Thomas-WG/skillbotml/hyperparams"
)

func TestSGDStep(t *testing.T) {
	opt := SGD().Rate(hyperparams.Constant(0.1))

	grads := []float64{1, -2, 0}
	steps := make([]float64, len(grads))

	err := opt.Run(nil, len(grads),
		func(i int) float64 { return grads[i] },
		func(i int, v float64) { steps[i] = v })
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []float64{-0.1, 0.2, 0}
	for i := range want {
		if math.Abs(steps[i]-want[i]) > 1e-12 {
			t.Errorf("step %d: got %g, want %g", i, steps[i], want[i])
		}
	}
}

func TestAdamStepDirection(t *testing.T) {
	opt := Adam().Rate(hyperparams.Constant(0.01))

	grads := []float64{3, -0.5}
	steps := make([]float64, len(grads))

	for iter := 0; iter < 5; iter++ {
		err := opt.Run(nil, len(grads),
			func(i int) float64 { return grads[i] },
			func(i int, v float64) { steps[i] = v })
		if err != nil {
			t.Fatalf("Run failed on iteration %d: %v", iter, err)
		}

		// steps oppose the gradient, and stay near the learning rate in magnitude
		for i := range grads {
			if steps[i]*grads[i] >= 0 {
				t.Errorf("iteration %d: step %d (%g) does not oppose gradient %g", iter, i, steps[i], grads[i])
			}
			if math.Abs(steps[i]) > 0.02 {
				t.Errorf("iteration %d: step %d too large: %g", iter, i, steps[i])
			}
		}
	}
}

func TestAdamSizeChange(t *testing.T) {
	opt := Adam()

	run := func(size int) error {
		return opt.Run(nil, size,
			func(i int) float64 { return 1 },
			func(i int, v float64) {})
	}

	if err := run(3); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if err := run(4); err == nil {
		t.Errorf("expected an error when the number of weights changes")
	}
}
