package penalties

import (
	sb "github.com/Thomas-WG/skillbotml"
)

func init() {
	list := map[string]func() sb.Penalty{
		// 0 is just random. It'll be loaded.
		L1(0).TypeString(): func() sb.Penalty { return L1(0) },
		L2(0).TypeString(): func() sb.Penalty { return L2(0) },
	}

	for s, f := range list {
		if err := sb.RegisterPenalty(s, f); err != nil {
			panic(err.Error())
		}
	}
}
