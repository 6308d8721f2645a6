package optimizers

import (
	sb "github.com/Thomas-WG/skillbotml"
)

func init() {
	list := map[string]func() sb.Optimizer{
		SGD().TypeString():  func() sb.Optimizer { return SGD() },
		Adam().TypeString(): func() sb.Optimizer { return Adam() },
	}

	for s, f := range list {
		if err := sb.RegisterOptimizer(s, f); err != nil {
			panic(err.Error())
		}
	}
}
