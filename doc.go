// Package skillbotml trains and persists small feed-forward neural networks for the
// skill-matching classifier.
//
// Creating Networks
//
// The center of all training is the Network:
//
//	net := new(sb.Network)
//
// For brevity, skillbotml is abbreviated 'sb'.
//
// Networks are sequential stacks of Layers. Each Layer has an Operator, which determines its
// values and the backpropagation through it. Operators with weights (layers of neurons) also
// carry an Optimizer. All Operators can be found in the subpackage "operators", all Optimizers
// in "optimizers", and so forth, for the other types.
//
// The standard procedure for building a Network is:
//
//	net.AddInput(numFeatures)
//	net.Add("hidden", operators.Dense(optimizers.Adam()), 64)
//	net.Add("hidden relu", operators.ReLU(), 64)
//	net.Add("output", operators.Dense(optimizers.Adam()), 1)
//	net.Add("output logistic", operators.Logistic(), 1)
//
// The network is finished by providing a cost function:
//
//	err := net.Finalize(costfuncs.BinaryCrossEntropy())
//	if err != nil {
//		return err
//	}
//
// Training and Testing
//
// Training uses the type TrainArgs as a proxy for the optional arguments available in other
// languages. Training and testing are done with the type Datum, which contains two slices of
// float64 for the inputs and correct outputs of the Network.
//
// All training is done with the function Train:
//
//	func (net *Network) Train(args TrainArgs) error
//
// Testing can be done both during training (see TrainArgs) and through a separate function,
// Test, which returns the average cost and the fraction of correct outputs over a dataset.
//
// The subpackage "dataset" loads delimited files into feature/label form and adapts them to
// the DataSupplier interface consumed here. The subpackage "trainer" wraps the whole pipeline
// -- load, split, build, fit, save -- behind a single configuration struct.
//
// Saving and Loading
//
// Writing Networks to files is quite simple. The function signature is:
//
//	func (net *Network) Save(dirPath string, overwrite bool) error
//
// dirPath is the path to create the directory (nothing should be there), or to overwrite if
// you so desire. Loading is equally simple, with:
//
//	func Load(dirPath string) (*Network, error)
//
// Load requires the subpackages implementing the saved types to have been imported, so that
// their constructors are registered.
package skillbotml
