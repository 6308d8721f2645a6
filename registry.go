package skillbotml

import (
	"github.com/pkg/errors"
)

// Loading a Network from file requires remaking values of unknown types from their
// TypeStrings. Each subpackage registers constructors for its types on import, so that Load
// only needs the directory path.

var (
	operatorTypes       = make(map[string]func() Operator)
	costFunctionTypes   = make(map[string]func() CostFunction)
	optimizerTypes      = make(map[string]func() Optimizer)
	hyperParameterTypes = make(map[string]func() HyperParameter)
	penaltyTypes        = make(map[string]func() Penalty)
)

// RegisterOperator registers a constructor for an Operator type, so that Networks containing
// it can be loaded from file. The name must match the TypeString of the constructed Operator.
func RegisterOperator(name string, f func() Operator) error {
	if _, ok := operatorTypes[name]; ok {
		return ErrRegisterTaken
	} else if f == nil || f() == nil {
		return ErrRegisterNilReturn
	}

	operatorTypes[name] = f
	return nil
}

// RegisterCostFunction registers a constructor for a CostFunction type.
func RegisterCostFunction(name string, f func() CostFunction) error {
	if _, ok := costFunctionTypes[name]; ok {
		return ErrRegisterTaken
	} else if f == nil || f() == nil {
		return ErrRegisterNilReturn
	}

	costFunctionTypes[name] = f
	return nil
}

// RegisterOptimizer registers a constructor for an Optimizer type.
func RegisterOptimizer(name string, f func() Optimizer) error {
	if _, ok := optimizerTypes[name]; ok {
		return ErrRegisterTaken
	} else if f == nil || f() == nil {
		return ErrRegisterNilReturn
	}

	optimizerTypes[name] = f
	return nil
}

// RegisterHyperParameter registers a constructor for a HyperParameter type.
func RegisterHyperParameter(name string, f func() HyperParameter) error {
	if _, ok := hyperParameterTypes[name]; ok {
		return ErrRegisterTaken
	} else if f == nil || f() == nil {
		return ErrRegisterNilReturn
	}

	hyperParameterTypes[name] = f
	return nil
}

// RegisterPenalty registers a constructor for a Penalty type.
func RegisterPenalty(name string, f func() Penalty) error {
	if _, ok := penaltyTypes[name]; ok {
		return ErrRegisterTaken
	} else if f == nil || f() == nil {
		return ErrRegisterNilReturn
	}

	penaltyTypes[name] = f
	return nil
}

// OperatorFromString constructs a blank Operator of the named type, ready to be Load'ed.
func OperatorFromString(name string) (Operator, error) {
	f, ok := operatorTypes[name]
	if !ok {
		return nil, errors.Errorf("No Operator registered with name %q", name)
	}

	return f(), nil
}

// CostFunctionFromString constructs a CostFunction of the named type.
func CostFunctionFromString(name string) (CostFunction, error) {
	f, ok := costFunctionTypes[name]
	if !ok {
		return nil, errors.Errorf("No CostFunction registered with name %q", name)
	}

	return f(), nil
}

// OptimizerFromString constructs a blank Optimizer of the named type, ready to be Load'ed.
func OptimizerFromString(name string) (Optimizer, error) {
	f, ok := optimizerTypes[name]
	if !ok {
		return nil, errors.Errorf("No Optimizer registered with name %q", name)
	}

	return f(), nil
}

// HyperParameterFromString constructs a blank HyperParameter of the named type, ready to be
// Load'ed.
func HyperParameterFromString(name string) (HyperParameter, error) {
	f, ok := hyperParameterTypes[name]
	if !ok {
		return nil, errors.Errorf("No HyperParameter registered with name %q", name)
	}

	return f(), nil
}

// PenaltyFromString constructs a blank Penalty of the named type, ready to be Load'ed.
func PenaltyFromString(name string) (Penalty, error) {
	f, ok := penaltyTypes[name]
	if !ok {
		return nil, errors.Errorf("No Penalty registered with name %q", name)
	}

	return f(), nil
}
