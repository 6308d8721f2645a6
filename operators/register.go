package operators

import (
	sb "github.com/Thomas-WG/skillbotml"
)

func init() {
	list := map[string]func() sb.Operator{
		Dense(nil).TypeString():   func() sb.Operator { return Dense(nil) },
		ReLU().TypeString():       func() sb.Operator { return ReLU() },
		LeakyReLU(0).TypeString(): func() sb.Operator { return LeakyReLU(0) },
		Logistic().TypeString():   func() sb.Operator { return Logistic() },
		Tanh().TypeString():       func() sb.Operator { return Tanh() },
		Identity().TypeString():   func() sb.Operator { return Identity() },
	}

	for s, f := range list {
		if err := sb.RegisterOperator(s, f); err != nil {
			panic(err.Error())
		}
	}
}
