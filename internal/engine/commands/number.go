// Released under an MIT license. See LICENSE.

package commands

import (
	"math/rand"
	"strings"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/numeric"
	"github.com/michaelmacinnis/tern/internal/common/type/boolean"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/num"
	"github.com/michaelmacinnis/tern/internal/common/type/str"
	"github.com/michaelmacinnis/tern/internal/common/validate"
)

func isExact(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(numeric.To(v[0]).Exact())
}

func isExactInteger(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	n, ok := v[0].(numeric.I)

	return boolean.Bool(ok && n.Exact())
}

func isInexact(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(!numeric.To(v[0]).Exact())
}

func isInteger(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(num.Integer(v[0]))
}

func isNaN(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	f := num.ToFloat(v[0])

	return boolean.Bool(f != f) //nolint:gocritic
}

func isNatural(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	n, ok := v[0].(numeric.I)

	return boolean.Bool(ok && n.Exact() && num.Cmp(n, zero) >= 0)
}

func isNumber(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(numeric.Is(v[0]))
}

func numberToString(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 2)

	radix := 10
	if len(v) == 2 {
		radix = int(num.Int64(v[1]))
	}

	return str.New(num.Format(v[0], radix))
}

func parity(bit uint) func(cell.I) cell.I {
	return func(args cell.I) cell.I {
		v := validate.Fixed(args, 1, 1)

		if !num.Integer(v[0]) {
			panic(condition.New(condition.WrongType, "integer required", v[0]))
		}

		return boolean.Bool(num.BigInt(v[0]).Bit(0) == bit)
	}
}

func random(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	if !numeric.To(v[0]).Exact() {
		return num.Float(rand.Float64() * num.ToFloat(v[0])) //nolint:gosec
	}

	n := num.Int64(v[0])
	if n <= 0 {
		panic(condition.New(condition.WrongType, "random: range must be positive", v[0]))
	}

	return num.Int(rand.Int63n(n)) //nolint:gosec
}

func sign(test func(int) bool) func(cell.I) cell.I {
	return func(args cell.I) cell.I {
		v := validate.Fixed(args, 1, 1)

		return boolean.Bool(test(num.Cmp(v[0], zero)))
	}
}

func stringToNumber(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 2)

	s := str.To(v[0]).String()

	if len(v) == 2 && !strings.HasPrefix(s, "#") {
		switch num.Int64(v[1]) {
		case 2:
			s = "#b" + s
		case 8:
			s = "#o" + s
		case 16:
			s = "#x" + s
		}
	}

	n, ok := num.Parse(s)
	if !ok {
		return boolean.False
	}

	return n
}
