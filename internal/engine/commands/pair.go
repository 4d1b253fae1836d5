// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/type/boolean"
	"github.com/michaelmacinnis/tern/internal/common/type/pair"
	"github.com/michaelmacinnis/tern/internal/common/type/void"
	"github.com/michaelmacinnis/tern/internal/common/validate"
)

func car(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return pair.Car(v[0])
}

func cdr(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return pair.Cdr(v[0])
}

func cons(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return pair.Cons(v[0], v[1])
}

// cxr returns an accessor that follows path from right to left. Each 'a'
// takes the car and each 'd' takes the cdr.
func cxr(path string) func(cell.I) cell.I {
	return func(args cell.I) cell.I {
		v := validate.Fixed(args, 1, 1)

		c := v[0]

		for i := len(path) - 1; i >= 0; i-- {
			if path[i] == 'a' {
				c = pair.Car(c)
			} else {
				c = pair.Cdr(c)
			}
		}

		return c
	}
}

func isNull(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(v[0] == pair.Null)
}

func isPair(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(pair.IsPair(v[0]))
}

func setCar(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	pair.SetCar(v[0], v[1])

	return void.Value
}

func setCdr(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	pair.SetCdr(v[0], v[1])

	return void.Value
}
