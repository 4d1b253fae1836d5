// Released under an MIT license. See LICENSE.

package commands

import (
	"strconv"
	"unicode"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/type/boolean"
	"github.com/michaelmacinnis/tern/internal/common/type/char"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/num"
	"github.com/michaelmacinnis/tern/internal/common/type/pair"
	"github.com/michaelmacinnis/tern/internal/common/validate"
)

func charCompare(key func(rune) rune, test func(int) bool) func(cell.I) cell.I {
	return func(args cell.I) cell.I {
		v, rest := validate.Variadic(args, 1, 1)

		prev := key(char.To(v[0]).Rune())
		result := true

		for ; rest != pair.Null; rest = pair.Cdr(rest) {
			curr := key(char.To(pair.Car(rest)).Rune())
			result = result && test(int(prev)-int(curr))
			prev = curr
		}

		return boolean.Bool(result)
	}
}

func charIs(test func(rune) bool) func(cell.I) cell.I {
	return func(args cell.I) cell.I {
		v := validate.Fixed(args, 1, 1)

		return boolean.Bool(test(char.To(v[0]).Rune()))
	}
}

func charMap(f func(rune) rune) func(cell.I) cell.I {
	return func(args cell.I) cell.I {
		v := validate.Fixed(args, 1, 1)

		return char.New(f(char.To(v[0]).Rune()))
	}
}

func charToDigit(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 2)

	radix := 10
	if len(v) == 2 {
		radix = int(num.Int64(v[1]))
	}

	d, err := strconv.ParseInt(string(char.To(v[0]).Rune()), radix, 64)
	if err != nil {
		return boolean.False
	}

	return num.Int(d)
}

func charToInteger(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return num.Int(int64(char.To(v[0]).Rune()))
}

func digitToChar(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 2)

	radix := 10
	if len(v) == 2 {
		radix = int(num.Int64(v[1]))
	}

	d := num.Int64(v[0])
	if d < 0 || d >= int64(radix) {
		return boolean.False
	}

	return char.New(rune(strconv.FormatInt(d, radix)[0]))
}

func digitValue(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	r := char.To(v[0]).Rune()
	if !unicode.IsDigit(r) {
		return boolean.False
	}

	return num.Int(int64(r - '0'))
}

func integerToChar(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	n := num.Int64(v[0])
	if n < 0 || n > unicode.MaxRune {
		panic(condition.New(condition.WrongType, "integer->char: out of range", v[0]))
	}

	return char.New(rune(n))
}

func isChar(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	_, ok := v[0].(*char.T)

	return boolean.Bool(ok)
}

func foldRune(r rune) rune {
	return unicode.ToLower(r)
}

func sameRune(r rune) rune {
	return r
}
