package skillbotml

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// SetInputs sets the inputs of the Network to the provided values. If the Network has not been
// finalized, ErrNetNotFinalized will be returned. Else, if the number of inputs does not equal
// InputSize(), type SizeMismatchError will be returned.
func (net *Network) SetInputs(inputs []float64) error {
	if net.stat < finalized {
		return ErrNetNotFinalized
	} else if len(inputs) != net.InputSize() {
		return SizeMismatchError{net.InputSize(), len(inputs), "inputs"}
	}

	copy(net.layers[0].values, inputs)
	return nil
}

// Changes the values of the Layers so that they accurately reflect the inputs
func (net *Network) evaluate() error {
	for _, l := range net.layers[1:] {
		if err := l.op.Evaluate(l, l.values); err != nil {
			return errors.Wrapf(err, "Operator evaluation of Layer %v failed\n", l)
		}
	}

	return nil
}

// GetOutputs returns a copy of the Network's output values for the given inputs. SetInputs
// will be called regardless of whether or not the given inputs are actually the current
// inputs.
func (net *Network) GetOutputs(inputs []float64) ([]float64, error) {
	if err := net.SetInputs(inputs); err != nil {
		return nil, err
	}

	if err := net.evaluate(); err != nil {
		return nil, err
	}

	out := net.layers[len(net.layers)-1]
	c := make([]float64, len(out.values))
	copy(c, out.values)
	return c, nil
}

// sets the deltas of each Layer to reflect the given target outputs. Assumes the Network has
// just been evaluated.
func (net *Network) getDeltas(targets []float64) error {
	out := net.layers[len(net.layers)-1]
	if len(targets) != out.Size() {
		return SizeMismatchError{out.Size(), len(targets), "targets"}
	}

	for _, l := range net.layers {
		for i := range l.deltas {
			l.deltas[i] = 0
		}
	}

	copy(out.deltas, net.cf.Derivs(out.values, targets))

	// propagate from the outputs back towards the inputs. The deltas of the input layer are
	// never used, so the first Layer skips the calculation.
	for i := len(net.layers) - 1; i >= 2; i-- {
		l := net.layers[i]

		add := func(index int, delta float64) {
			l.prev.deltas[index] += delta
		}

		if err := l.op.InputDeltas(l, add); err != nil {
			return errors.Wrapf(err, "Failed to calculate input deltas of Layer %v\n", l)
		}
	}

	return nil
}

// accumulates the gradients of each adjustable Layer from the current sample's deltas
func (net *Network) adjust() error {
	for _, l := range net.layers[1:] {
		if !l.op.CanBeAdjusted(l) {
			continue
		}

		if err := l.op.Adjust(l); err != nil {
			return errors.Wrapf(err, "Failed to adjust Layer %v\n", l)
		}
	}

	return nil
}

// applies the accumulated gradients of each adjustable Layer through its Optimizer
func (net *Network) addWeights() error {
	for _, l := range net.layers[1:] {
		if !l.op.CanBeAdjusted(l) {
			continue
		}

		if err := l.op.AddWeights(l); err != nil {
			return errors.Wrapf(err, "Failed to apply weight changes to Layer %v\n", l)
		}
	}

	return nil
}

// Predict evaluates the Network on each row of the given matrix, returning a matrix with one
// row of outputs per row of inputs. The number of columns of X must equal InputSize().
func (net *Network) Predict(X mat.Matrix) (*mat.Dense, error) {
	if net.stat < finalized {
		return nil, ErrNetNotFinalized
	}

	rows, cols := X.Dims()
	if cols != net.InputSize() {
		return nil, SizeMismatchError{net.InputSize(), cols, "input columns"}
	}

	out := mat.NewDense(rows, net.OutputSize(), nil)
	ins := make([]float64, cols)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			ins[c] = X.At(r, c)
		}

		outs, err := net.GetOutputs(ins)
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to get Network outputs for row %d\n", r)
		}

		out.SetRow(r, outs)
	}

	return out, nil
}
