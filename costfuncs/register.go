package costfuncs

import (
	sb "github.com/Thomas-WG/skillbotml"
)

func init() {
	list := map[string]func() sb.CostFunction{
		MeanSquaredError().TypeString():   func() sb.CostFunction { return MeanSquaredError() },
		BinaryCrossEntropy().TypeString(): func() sb.CostFunction { return BinaryCrossEntropy() },
	}

	for s, f := range list {
		if err := sb.RegisterCostFunction(s, f); err != nil {
			panic(err.Error())
		}
	}
}
