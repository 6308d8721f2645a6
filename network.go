package skillbotml

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type status int8

const (
	initialized status = iota
	finalized
)

// Network is the main structure that is used to learn to map inputs to outputs. It is a
// sequential stack of Layers, where the first Layer holds the raw inputs.
type Network struct {
	layers []*Layer

	layersByName map[string]*Layer

	cf CostFunction

	// used to keep track of the current iteration during training
	iter int

	stat status
}

// Layers are the building blocks with which the Network is built. Each Layer (except the
// input) has an Operator that determines how it computes its values from those of the Layer
// before it.
type Layer struct {
	// The name that will be used to print this layer. May not be empty.
	name string

	// used for order identification of which layers were added first. The input layer has
	// id 0.
	id int

	// used for validation during setup
	host *Network

	// the previous Layer in the stack. nil for the input layer.
	prev *Layer

	// the root operator of the Layer. nil for the input layer.
	op Operator

	// the values (essentially outputs) of the Layer
	values []float64

	// the derivative of each value w.r.t. the total cost of the current training sample.
	// Deltas are stored in the same ordering as values.
	deltas []float64
}

// Name returns the name of the Layer.
func (l *Layer) Name() string {
	return l.name
}

// Size returns the number of values in the Layer.
func (l *Layer) Size() int {
	return len(l.values)
}

// NumInputs returns the number of values the Layer receives as input -- the size of the Layer
// before it, or 0 for the input layer.
func (l *Layer) NumInputs() int {
	if l.prev == nil {
		return 0
	}

	return l.prev.Size()
}

// Value returns the value of the Layer at the given index. It panics if out of bounds.
func (l *Layer) Value(index int) float64 {
	return l.values[index]
}

// InputValue returns the input to the Layer at the given index. It panics if the Layer is the
// input layer or the index is out of bounds.
func (l *Layer) InputValue(index int) float64 {
	return l.prev.values[index]
}

// Delta returns the derivative of the total cost with respect to the value of the Layer at the
// given index.
func (l *Layer) Delta(index int) float64 {
	return l.deltas[index]
}

// CopyOfInputs returns a copy of the input values to the Layer.
func (l *Layer) CopyOfInputs() []float64 {
	if l.prev == nil {
		return nil
	}

	c := make([]float64, len(l.prev.values))
	copy(c, l.prev.values)
	return c
}

// IsInput returns whether or not the Layer is the input layer of its Network.
func (l *Layer) IsInput() bool {
	return l.op == nil
}

func (l *Layer) String() string {
	return fmt.Sprintf("%q (id: %d)", l.name, l.id)
}

// AddInput sets the input layer of the Network, with the given number of values. It must be
// called exactly once, before any call to Add.
func (net *Network) AddInput(size int) error {
	if net.stat >= finalized {
		return ErrNetFinalized
	} else if len(net.layers) != 0 {
		return errors.Errorf("Network already has an input layer")
	} else if size < 1 {
		return errors.Errorf("Layer must have size >= 1 (%d)", size)
	}

	net.layersByName = make(map[string]*Layer)

	l := &Layer{
		name:   "inputs",
		id:     0,
		host:   net,
		values: make([]float64, size),
		deltas: make([]float64, size),
	}

	net.layers = append(net.layers, l)
	net.layersByName[l.name] = l
	return nil
}

// Add appends a new Layer to the Network, with the given name, Operator, and size. The name of
// each layer must be unique, cannot be "", and cannot contain a double-quote (").
//
// If Add returns an error, the host Network will not have been changed.
func (net *Network) Add(name string, op Operator, size int) error {
	if net.stat >= finalized {
		return ErrNetFinalized
	} else if len(net.layers) == 0 {
		return ErrNoInput
	} else if op == nil {
		return NilArgError{"Operator"}
	} else if size < 1 {
		return errors.Errorf("Layer must have size >= 1 (%d)", size)
	} else if name == "" {
		return errors.Errorf(`Name cannot be ""`)
	} else if strings.Contains(name, `"`) {
		return errors.Errorf(`Name contains illegal character: "`)
	} else if net.layersByName[name] != nil {
		return errors.Errorf("Name %q is already taken", name)
	}

	l := &Layer{
		name:   name,
		id:     len(net.layers),
		host:   net,
		prev:   net.layers[len(net.layers)-1],
		op:     op,
		values: make([]float64, size),
		deltas: make([]float64, size),
	}

	net.layers = append(net.layers, l)
	net.layersByName[name] = l
	return nil
}

// Finalize completes the construction of the Network, providing the CostFunction to optimize.
// Each Operator is initialized here, once the dimensions of its Layer are known.
func (net *Network) Finalize(cf CostFunction) error {
	if net.stat >= finalized {
		return ErrNetFinalized
	} else if cf == nil {
		return NilArgError{"CostFunction"}
	} else if len(net.layers) < 2 {
		return errors.Errorf("Network must have an input layer and at least one other Layer")
	}

	for _, l := range net.layers[1:] {
		if err := l.op.Init(l); err != nil {
			return errors.Wrapf(err, "Failed to initialize Operator of Layer %v\n", l)
		}
	}

	net.cf = cf
	net.stat = finalized
	return nil
}

// InputSize returns the total number of expected input values to the Network, or -1 if the
// Network has no input layer yet.
func (net *Network) InputSize() int {
	if len(net.layers) == 0 {
		return -1
	}

	return net.layers[0].Size()
}

// OutputSize returns the number of output values of the Network, or -1 if the Network has not
// been finalized yet.
func (net *Network) OutputSize() int {
	if net.stat < finalized {
		return -1
	}

	return net.layers[len(net.layers)-1].Size()
}

// Layers returns the list of all Layers in the Network, sorted such that Layers()[n] has id=n.
// The slice that Layers returns is a copy; it can be modified freely but will not update if
// more Layers are added to the Network.
func (net *Network) Layers() []*Layer {
	ls := make([]*Layer, len(net.layers))
	copy(ls, net.layers)
	return ls
}

// CostFunc returns the CostFunction the Network was finalized with, or nil.
func (net *Network) CostFunc() CostFunction {
	return net.cf
}

// ChangeCost changes the CostFunction of the Network after it has been finalized. This allows
// different CostFunctions for training and final model evaluation. If cf is nil, ChangeCost
// will panic with type NilArgError.
func (net *Network) ChangeCost(cf CostFunction) *Network {
	if cf == nil {
		panic(NilArgError{"CostFunction"})
	}

	net.cf = cf
	return net
}
