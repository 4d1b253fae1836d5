// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/truth"
	"github.com/michaelmacinnis/tern/internal/common/type/boolean"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/pair"
	"github.com/michaelmacinnis/tern/internal/common/validate"
)

func booleanEq(args cell.I) cell.I {
	v, rest := validate.Variadic(args, 2, 2)

	for _, c := range v {
		toBoolean(c)
	}

	if v[0] != v[1] {
		return boolean.False
	}

	for ; rest != pair.Null; rest = pair.Cdr(rest) {
		if toBoolean(pair.Car(rest)) != v[0] {
			return boolean.False
		}
	}

	return boolean.True
}

func isBoolean(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(v[0] == boolean.True || v[0] == boolean.False)
}

func not(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(!truth.Value(v[0]))
}

func toBoolean(c cell.I) cell.I {
	if c != boolean.True && c != boolean.False {
		panic(condition.New(condition.WrongType, "not a boolean", c))
	}

	return c
}
