package hyperparams

import (
	sb "github.com/Thomas-WG/skillbotml"
)

func init() {
	list := map[string]func() sb.HyperParameter{
		// 0 is just random. It'll be loaded.
		Constant(0).TypeString(): func() sb.HyperParameter { return Constant(0) },
		Step(0).TypeString():     func() sb.HyperParameter { return Step(0) },
	}

	for s, f := range list {
		if err := sb.RegisterHyperParameter(s, f); err != nil {
			panic(err.Error())
		}
	}
}
