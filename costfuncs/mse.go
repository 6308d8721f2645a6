package costfuncs

type mse int8

// MeanSquaredError returns the standard squared-error cost function, averaged over the
// outputs of the network.
func MeanSquaredError() *mse {
	m := mse(0)
	return &m
}

func (m *mse) TypeString() string {
	return "mean-squared-error"
}

func (m *mse) Cost(outs, targets []float64) float64 {
	var sum float64
	for i := range outs {
		d := outs[i] - targets[i]
		sum += 0.5 * d * d
	}

	return sum / float64(len(outs))
}

func (m *mse) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	for i := range outs {
		ds[i] = (outs[i] - targets[i]) / float64(len(outs))
	}

	return ds
}
