// Released under an MIT license. See LICENSE.

// Package num provides tern's number type.
//
// Exact integers have arbitrary precision. Everything else is a float64.
package num

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/nukata/goarith"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/literal"
	"github.com/michaelmacinnis/tern/internal/common/interface/numeric"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
)

const name = "number"

// T (num) wraps a goarith.Number.
type T struct {
	exact bool
	n     goarith.Number
}

type num = T

// Float creates an inexact num from f.
func Float(f float64) cell.I {
	return &num{n: goarith.AsNumber(f)}
}

// Int creates an exact num from the integer i.
func Int(i int64) cell.I {
	return &num{exact: true, n: goarith.AsNumber(big.NewInt(i))}
}

// Big creates an exact num from the integer i.
func Big(i *big.Int) cell.I {
	return &num{exact: true, n: goarith.AsNumber(i)}
}

// Number wraps the result of arithmetic on a and b.
func Number(n goarith.Number, exact bool) cell.I {
	return &num{exact: exact, n: n}
}

// Parse reads a number from s. It returns false if s is not a number.
func Parse(s string) (cell.I, bool) {
	radix := 10

	for len(s) > 1 && s[0] == '#' {
		switch s[1] {
		case 'x', 'X':
			radix = 16
		case 'o', 'O':
			radix = 8
		case 'b', 'B':
			radix = 2
		case 'd', 'D', 'e', 'E', 'i', 'I':
		default:
			return nil, false
		}

		s = s[2:]
	}

	if i, ok := new(big.Int).SetString(s, radix); ok {
		return Big(i), true
	}

	if radix != 10 || !looksNumeric(s) {
		return nil, false
	}

	switch s {
	case "+inf.0":
		return Float(math.Inf(1)), true
	case "-inf.0":
		return Float(math.Inf(-1)), true
	case "+nan.0", "-nan.0":
		return Float(math.NaN()), true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}

	return Float(f), true
}

// Equal returns true if c is a number with the same value and exactness.
func (n *num) Equal(c cell.I) bool {
	o, ok := c.(*num)

	return ok && n.exact == o.exact && n.n.Cmp(o.n) == 0
}

// Exact returns true if n is an exact integer.
func (n *num) Exact() bool {
	return n.exact
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	if n.exact {
		return n.n.String()
	}

	f := n.Float64()

	switch {
	case math.IsInf(f, 1):
		return "+inf.0"
	case math.IsInf(f, -1):
		return "-inf.0"
	case math.IsNaN(f):
		return "+nan.0"
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += "."
	}

	return s
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// Number returns the goarith.Number wrapped by n.
func (n *num) Number() goarith.Number {
	return n.n
}

// String returns the text of the num n.
func (n *num) String() string {
	return n.Literal()
}

// Float64 returns n as a float64.
func (n *num) Float64() float64 {
	if f, ok := n.n.(goarith.Float64); ok {
		return float64(f)
	}

	f, err := strconv.ParseFloat(n.n.String(), 64)
	if err != nil {
		panic(condition.Wrap(condition.Internal, err))
	}

	return f
}

// Functions specific to num.

// BigInt returns the exact integer value of c.
func BigInt(c cell.I) *big.Int {
	n := numeric.To(c)
	if !n.Exact() {
		f := n.(*num).Float64()
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			panic(condition.New(condition.WrongType, "not an integer", c))
		}

		i, _ := big.NewFloat(f).Int(nil)

		return i
	}

	i, ok := new(big.Int).SetString(n.Number().String(), 10)
	if !ok {
		panic(condition.New(condition.Internal, "malformed integer", c))
	}

	return i
}

// Int64 returns the integer value of c.
func Int64(c cell.I) int64 {
	i := BigInt(c)
	if !i.IsInt64() {
		panic(condition.New(condition.WrongType, "integer out of range", c))
	}

	return i.Int64()
}

// ToFloat returns the value of c as a float64.
func ToFloat(c cell.I) float64 {
	n := numeric.To(c)
	if x, ok := n.(*num); ok {
		return x.Float64()
	}

	panic(condition.New(condition.WrongType, "not a number", c))
}

// Add returns a + b.
func Add(a, b cell.I) cell.I {
	x, y := numeric.To(a), numeric.To(b)

	return Number(x.Number().Add(y.Number()), x.Exact() && y.Exact())
}

// Sub returns a - b.
func Sub(a, b cell.I) cell.I {
	x, y := numeric.To(a), numeric.To(b)

	return Number(x.Number().Sub(y.Number()), x.Exact() && y.Exact())
}

// Mul returns a * b.
func Mul(a, b cell.I) cell.I {
	x, y := numeric.To(a), numeric.To(b)

	return Number(x.Number().Mul(y.Number()), x.Exact() && y.Exact())
}

// Div returns a / b. The result is exact when both arguments are exact and
// b divides a.
func Div(a, b cell.I) cell.I {
	x, y := numeric.To(a), numeric.To(b)

	if x.Exact() && y.Exact() {
		d := BigInt(b)
		if d.Sign() == 0 {
			panic(condition.New(condition.WrongType, "division by zero", a, b))
		}

		q, r := new(big.Int).QuoRem(BigInt(a), d, new(big.Int))
		if r.Sign() == 0 {
			return Big(q)
		}
	}

	return Float(ToFloat(a) / ToFloat(b))
}

// Cmp compares a and b.
func Cmp(a, b cell.I) int {
	return numeric.To(a).Number().Cmp(numeric.To(b).Number())
}

// Integer returns true if c is a number with an integral value.
func Integer(c cell.I) bool {
	n, ok := c.(*num)
	if !ok {
		return false
	}

	if n.exact {
		return true
	}

	f := n.Float64()

	return f == math.Trunc(f) && !math.IsInf(f, 0)
}

// Format writes c in the given radix.
func Format(c cell.I, radix int) string {
	if !numeric.To(c).Exact() {
		return literal.String(c)
	}

	return BigInt(c).Text(radix)
}

func looksNumeric(s string) bool {
	if s == "" || s == "+" || s == "-" || s == "." || s == "..." {
		return false
	}

	if strings.HasSuffix(s, "inf.0") || strings.HasSuffix(s, "nan.0") {
		return s[0] == '+' || s[0] == '-'
	}

	return strings.IndexFunc(s, func(r rune) bool {
		return !strings.ContainsRune("0123456789+-.eE", r)
	}) < 0
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a stringer.
	_ = fmt.Stringer(&t)

	// The num type is a number.
	_ = numeric.I(&t)
}
