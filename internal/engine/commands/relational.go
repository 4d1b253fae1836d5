// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/type/boolean"
	"github.com/michaelmacinnis/tern/internal/common/type/char"
	"github.com/michaelmacinnis/tern/internal/common/type/num"
	"github.com/michaelmacinnis/tern/internal/common/type/pair"
	"github.com/michaelmacinnis/tern/internal/common/validate"
)

// Eqv returns true if a and b are the same object. Numbers and characters
// are the same object when they have the same value.
func Eqv(a, b cell.I) bool {
	if a == b {
		return true
	}

	switch a.(type) {
	case *char.T, *num.T:
		return a.Equal(b)
	}

	return false
}

func compare(test func(int) bool) func(cell.I) cell.I {
	return func(args cell.I) cell.I {
		v, args := validate.Variadic(args, 1, 1)

		prev := v[0]
		result := true

		for ; args != pair.Null; args = pair.Cdr(args) {
			curr := pair.Car(args)

			// Every argument is checked even after the result is known.
			if !test(num.Cmp(prev, curr)) {
				result = false
			}

			prev = curr
		}

		return boolean.Bool(result)
	}
}

func eq(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return boolean.Bool(Eqv(v[0], v[1]))
}

func equal(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return boolean.Bool(equalp(v[0], v[1]))
}

func equalp(a, b cell.I) bool {
	return a.Equal(b)
}
