// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/type/boolean"
	"github.com/michaelmacinnis/tern/internal/common/type/char"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/list"
	"github.com/michaelmacinnis/tern/internal/common/type/num"
	"github.com/michaelmacinnis/tern/internal/common/type/pair"
	"github.com/michaelmacinnis/tern/internal/common/type/str"
	"github.com/michaelmacinnis/tern/internal/common/type/vector"
	"github.com/michaelmacinnis/tern/internal/common/type/void"
	"github.com/michaelmacinnis/tern/internal/common/validate"
)

func isString(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(str.Is(v[0]))
}

func listToString(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	elements := list.ToSlice(v[0])

	r := make([]rune, len(elements))
	for i, c := range elements {
		r[i] = char.To(c).Rune()
	}

	return str.Runes(r)
}

func makeString(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 2)

	fill := " "
	if len(v) == 2 {
		fill = char.To(v[1]).String()
	}

	return str.New(strings.Repeat(fill, size(v[0])))
}

func makeStringFrom(args cell.I) cell.I {
	var b strings.Builder

	for ; args != pair.Null; args = pair.Cdr(args) {
		switch c := pair.Car(args).(type) {
		case *char.T:
			b.WriteRune(c.Rune())
		case *str.T:
			b.WriteString(c.String())
		default:
			b.WriteString(displayed(c))
		}
	}

	return str.New(b.String())
}

func same(s string) string {
	return s
}

func stringAppend(args cell.I) cell.I {
	var b strings.Builder

	for ; args != pair.Null; args = pair.Cdr(args) {
		b.WriteString(str.To(pair.Car(args)).String())
	}

	return str.New(b.String())
}

func stringCompare(key func(string) string, test func(int) bool) func(cell.I) cell.I {
	return func(args cell.I) cell.I {
		v, rest := validate.Variadic(args, 1, 1)

		prev := key(str.To(v[0]).String())
		result := true

		for ; rest != pair.Null; rest = pair.Cdr(rest) {
			curr := key(str.To(pair.Car(rest)).String())
			result = result && test(strings.Compare(prev, curr))
			prev = curr
		}

		return boolean.Bool(result)
	}
}

func stringCopy(args cell.I) cell.I {
	s, start, end := bounds(args)

	return str.Runes(append([]rune(nil), s[start:end]...))
}

func stringFill(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	s := str.To(v[0])
	r := char.To(v[1]).Rune()

	for i := 0; i < s.Len(); i++ {
		s.Set(int64(i), r)
	}

	return void.Value
}

func stringIndex(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	r := char.To(v[1]).Rune()

	for i, c := range str.To(v[0]).Runes() {
		if c == r {
			return num.Int(int64(i))
		}
	}

	return boolean.False
}

func stringJoin(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 2)

	sep := " "
	if len(v) == 2 {
		sep = str.To(v[1]).String()
	}

	elements := list.ToSlice(v[0])

	parts := make([]string, len(elements))
	for i, c := range elements {
		parts[i] = str.To(c).String()
	}

	return str.New(strings.Join(parts, sep))
}

func stringLength(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return num.Int(int64(str.To(v[0]).Len()))
}

func stringMap(f func(string) string) func(cell.I) cell.I {
	return func(args cell.I) cell.I {
		v := validate.Fixed(args, 1, 1)

		return str.New(f(str.To(v[0]).String()))
	}
}

func stringNull(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(str.To(v[0]).Len() == 0)
}

// stringPad pads or truncates a string to a length. Padding on the left
// keeps the rightmost characters.
func stringPad(left bool) func(cell.I) cell.I {
	return func(args cell.I) cell.I {
		v := validate.Fixed(args, 2, 3)

		r := str.To(v[0]).Runes()
		n := int(num.Int64(v[1]))

		fill := ' '
		if len(v) == 3 {
			fill = char.To(v[2]).Rune()
		}

		padding := []rune{}
		for i := len(r); i < n; i++ {
			padding = append(padding, fill)
		}

		if left {
			if len(r) > n {
				r = r[len(r)-n:]
			}

			return str.Runes(append(padding, r...))
		}

		if len(r) > n {
			r = r[:n]
		}

		return str.Runes(append(append([]rune(nil), r...), padding...))
	}
}

func stringRef(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return char.New(str.To(v[0]).Ref(num.Int64(v[1])))
}

func stringSearchAll(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	pattern := str.To(v[0]).Runes()
	s := str.To(v[1]).Runes()

	var found []cell.I

	for i := 0; i+len(pattern) <= len(s); i++ {
		if string(s[i:i+len(pattern)]) == string(pattern) {
			found = append(found, num.Int(int64(i)))
		}
	}

	return list.New(found...)
}

func stringSearchForward(args cell.I) cell.I {
	v := validate.Fixed(args, 3, 3)

	pattern := str.To(v[0]).Runes()
	s := str.To(v[1]).Runes()

	for i := int(num.Int64(v[2])); i+len(pattern) <= len(s); i++ {
		if string(s[i:i+len(pattern)]) == string(pattern) {
			return num.Int(int64(i))
		}
	}

	return boolean.False
}

func stringSet(args cell.I) cell.I {
	v := validate.Fixed(args, 3, 3)

	str.To(v[0]).Set(num.Int64(v[1]), char.To(v[2]).Rune())

	return void.Value
}

func stringToList(args cell.I) cell.I {
	s, start, end := bounds(args)

	elements := make([]cell.I, 0, end-start)
	for _, r := range s[start:end] {
		elements = append(elements, char.New(r))
	}

	return list.New(elements...)
}

func stringToVector(args cell.I) cell.I {
	return vector.New(list.ToSlice(stringToList(args)))
}

func substring(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 3)

	return stringCopy(list.New(v...))
}

// bounds returns the characters of a string argument and the optional start
// and end indices that follow it.
func bounds(args cell.I) ([]rune, int, int) {
	v := validate.Fixed(args, 1, 3)

	s := str.To(v[0]).Runes()
	start, end := 0, len(s)

	if len(v) > 1 {
		start = int(num.Int64(v[1]))
	}

	if len(v) > 2 {
		end = int(num.Int64(v[2]))
	}

	if start < 0 || end > len(s) || start > end {
		panic(condition.New(condition.WrongType, "string index out of range", list.New(v...)))
	}

	return s, start, end
}
