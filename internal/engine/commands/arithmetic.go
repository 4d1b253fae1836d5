// Released under an MIT license. See LICENSE.

package commands

import (
	"math"
	"math/big"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/numeric"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/num"
	"github.com/michaelmacinnis/tern/internal/common/type/pair"
	"github.com/michaelmacinnis/tern/internal/common/validate"
)

//nolint:gochecknoglobals
var (
	one  = num.Int(1)
	zero = num.Int(0)
)

func abs(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	if num.Cmp(v[0], zero) < 0 {
		return num.Sub(zero, v[0])
	}

	return numeric.To(v[0])
}

func add(args cell.I) cell.I {
	sum := zero

	for ; args != pair.Null; args = pair.Cdr(args) {
		sum = num.Add(sum, pair.Car(args))
	}

	return sum
}

func decrement(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return num.Sub(v[0], one)
}

func div(args cell.I) cell.I {
	v, args := validate.Variadic(args, 1, 1)

	if args == pair.Null {
		return num.Div(one, v[0])
	}

	quotient := v[0]

	for ; args != pair.Null; args = pair.Cdr(args) {
		quotient = num.Div(quotient, pair.Car(args))
	}

	return quotient
}

func exact(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	if numeric.To(v[0]).Exact() {
		return v[0]
	}

	return num.Big(num.BigInt(v[0]))
}

func expt(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	base, power := numeric.To(v[0]), numeric.To(v[1])

	if base.Exact() && power.Exact() {
		e := num.BigInt(power)
		if e.Sign() >= 0 {
			return num.Big(new(big.Int).Exp(num.BigInt(base), e, nil))
		}
	}

	return num.Float(math.Pow(num.ToFloat(base), num.ToFloat(power)))
}

// extremum returns max when dir is 1 and min when dir is -1. The result is
// inexact if any argument is inexact.
func extremum(dir int) func(cell.I) cell.I {
	return func(args cell.I) cell.I {
		v, rest := validate.Variadic(args, 1, 1)

		result := numeric.To(v[0])
		exactly := result.Exact()

		for ; rest != pair.Null; rest = pair.Cdr(rest) {
			n := numeric.To(pair.Car(rest))
			exactly = exactly && n.Exact()

			if num.Cmp(n, result)*dir > 0 {
				result = n
			}
		}

		if !exactly {
			return num.Float(num.ToFloat(result))
		}

		return result
	}
}

func gcd(args cell.I) cell.I {
	result := new(big.Int)

	for ; args != pair.Null; args = pair.Cdr(args) {
		n := new(big.Int).Abs(num.BigInt(pair.Car(args)))
		result.GCD(nil, nil, result, n)
	}

	return num.Big(result)
}

func increment(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return num.Add(v[0], one)
}

func inexact(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return num.Float(num.ToFloat(v[0]))
}

func lcm(args cell.I) cell.I {
	result := big.NewInt(1)

	for ; args != pair.Null; args = pair.Cdr(args) {
		n := new(big.Int).Abs(num.BigInt(pair.Car(args)))
		if n.Sign() == 0 {
			return zero
		}

		g := new(big.Int).GCD(nil, nil, result, n)
		result.Mul(result, n.Quo(n, g))
	}

	return num.Big(result)
}

func modulo(args cell.I) cell.I {
	return integerDivision(args, func(a, b *big.Int) *big.Int {
		r := new(big.Int).Rem(a, b)
		if r.Sign() != 0 && r.Sign() != b.Sign() {
			r.Add(r, b)
		}

		return r
	}, func(a, b float64) float64 {
		r := math.Mod(a, b)
		if r != 0 && (r < 0) != (b < 0) {
			r += b
		}

		return r
	})
}

func mul(args cell.I) cell.I {
	product := one

	for ; args != pair.Null; args = pair.Cdr(args) {
		product = num.Mul(product, pair.Car(args))
	}

	return product
}

func quotient(args cell.I) cell.I {
	return integerDivision(args, func(a, b *big.Int) *big.Int {
		return new(big.Int).Quo(a, b)
	}, func(a, b float64) float64 {
		return math.Trunc(a / b)
	})
}

func remainder(args cell.I) cell.I {
	return integerDivision(args, func(a, b *big.Int) *big.Int {
		return new(big.Int).Rem(a, b)
	}, math.Mod)
}

func rounding(f func(float64) float64) func(cell.I) cell.I {
	return func(args cell.I) cell.I {
		v := validate.Fixed(args, 1, 1)

		if numeric.To(v[0]).Exact() {
			return v[0]
		}

		return num.Float(f(num.ToFloat(v[0])))
	}
}

func sqrt(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	n := numeric.To(v[0])
	if n.Exact() {
		i := num.BigInt(n)
		if i.Sign() >= 0 {
			r := new(big.Int).Sqrt(i)
			if new(big.Int).Mul(r, r).Cmp(i) == 0 {
				return num.Big(r)
			}
		}
	}

	return num.Float(math.Sqrt(num.ToFloat(n)))
}

func square(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return num.Mul(v[0], v[0])
}

func sub(args cell.I) cell.I {
	v, args := validate.Variadic(args, 1, 1)

	if args == pair.Null {
		return num.Sub(zero, v[0])
	}

	difference := v[0]

	for ; args != pair.Null; args = pair.Cdr(args) {
		difference = num.Sub(difference, pair.Car(args))
	}

	return difference
}

// Helpers.

func ceiling(f float64) float64 {
	return math.Ceil(f)
}

func floor(f float64) float64 {
	return math.Floor(f)
}

func integerDivision(
	args cell.I, ints func(a, b *big.Int) *big.Int, floats func(a, b float64) float64,
) cell.I {
	v := validate.Fixed(args, 2, 2)

	for _, c := range v {
		if !num.Integer(c) {
			panic(condition.New(condition.WrongType, "integer required", c))
		}
	}

	if num.Cmp(v[1], zero) == 0 {
		panic(condition.New(condition.WrongType, "division by zero", v[0], v[1]))
	}

	if numeric.To(v[0]).Exact() && numeric.To(v[1]).Exact() {
		return num.Big(ints(num.BigInt(v[0]), num.BigInt(v[1])))
	}

	return num.Float(floats(num.ToFloat(v[0]), num.ToFloat(v[1])))
}

func round(f float64) float64 {
	return math.RoundToEven(f)
}

func truncate(f float64) float64 {
	return math.Trunc(f)
}
