package skillbotml

// Operator is the interface for defining layers and activation functions.
type Operator interface {
	// Init should set up any weights, using the dimensions of the given Layer. Init will
	// always be run on an Operator before any other method, and will only be run once.
	Init(*Layer) error

	// TypeString returns the string corresponding to the type of the Operator. For example:
	// the Operator "Identity" should return "identity", or something to that effect.
	TypeString() string

	// given a path to a directory (without a '/' at the end), should store enough
	// information to recreate the Operator from file, should the need arise
	//
	// the directory will not be created, used, or altered by the library itself
	Save(*Layer, string) error

	// given a path to a directory (without a '/' at the end), should use the information
	// already in the directory to recreate this Operator from file. The provided Layer will
	// be at the same stage as Init() in its construction.
	Load(*Layer, string) error

	// Should update the values of the layer to reflect the inputs and weights (if any)
	// arguments: given layer, source slice for the values of that layer
	Evaluate(*Layer, []float64) error

	// should add to the deltas of the inputs how each of those values affects the total
	// cost through the values of the host layer
	//
	// arguments: given layer, a way to add to the deltas of the inputs.
	// add() adds the given 'float64' to the delta of the input at index 'int'.
	//
	// May be called in parallel for multiple inputs, so add needs to be thread-safe.
	InputDeltas(*Layer, func(int, float64)) error

	// returns whether or not Adjust() changes the outputs of the Layer. Generally will be
	// whether or not the Operator has weights.
	//
	// will be run once, during setup. This should not change.
	CanBeAdjusted(*Layer) bool

	// accumulates the gradients of the weights of the given layer, using its deltas. The
	// changes are not applied until AddWeights is called, at the end of the mini-batch.
	Adjust(*Layer) error

	// applies the accumulated gradients through the Operator's Optimizer, then resets them
	//
	// may be called without any changes waiting to happen
	AddWeights(*Layer) error
}

// Optimizer is the interface for suggesting changes to the weights of an Operator, given their
// gradients.
type Optimizer interface {
	// Run is called once per mini-batch per adjustable Layer, given: the target layer, the
	// number of weights, the (averaged) gradient at each weight, and a function to add to
	// each weight.
	//
	// the number of weights can be 0
	Run(*Layer, int, func(int) float64, func(int, float64)) error

	// TypeString returns the string corresponding to the type of the Optimizer. For
	// example: the Optimizer "Adam" should return "adam", or something to that effect.
	TypeString() string

	Save(*Layer, string) error
	Load(*Layer, string) error
}

// CostFunction is the interface for the loss optimized during training.
type CostFunction interface {
	// for both methods, it can be assumed that the lengths are equal, and that there are no
	// NaNs or Infs among the values

	// TypeString returns the string corresponding to the type of the CostFunction.
	TypeString() string

	// arguments: actual values, target values.
	Cost(outs, targets []float64) float64

	// should provide the derivatives of the total cost with respect to each of the inputs
	// to the cost function
	Derivs(outs, targets []float64) []float64
}

// Initializer dictates how the weights in an Operator will be set, given a blank slice to hold
// weights.
type Initializer interface {
	Set(*Layer, []float64)
}

// HyperParameter is a value that may change as a function of the number of completed weight
// updates -- notably the learning rate given to Optimizers.
type HyperParameter interface {
	// TypeString returns the string corresponding to the type of the HyperParameter.
	TypeString() string

	// Value returns the value of the HyperParameter at the given update count.
	Value(iter int) float64

	Save(dirPath string) error
	Load(dirPath string) error
}

// Penalty adds a regularization term to the gradient of each weight.
type Penalty interface {
	// TypeString returns the string corresponding to the type of the Penalty.
	TypeString() string

	// Deriv returns the derivative of the penalty term with respect to the given weight.
	Deriv(weight float64) float64

	Save(dirPath string) error
	Load(dirPath string) error
}
