// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/type/boolean"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/list"
	"github.com/michaelmacinnis/tern/internal/common/type/num"
	"github.com/michaelmacinnis/tern/internal/common/type/pair"
	"github.com/michaelmacinnis/tern/internal/common/validate"
)

func appendLists(args cell.I) cell.I {
	return list.Append(list.ToSlice(args)...)
}

func assoc(same func(a, b cell.I) bool) func(cell.I) cell.I {
	return func(args cell.I) cell.I {
		v := validate.Fixed(args, 2, 2)

		for l := v[1]; l != pair.Null; l = pair.Cdr(l) {
			entry := pair.Car(l)
			if same(v[0], pair.Car(entry)) {
				return entry
			}
		}

		return boolean.False
	}
}

func consStar(args cell.I) cell.I {
	v := list.ToSlice(args)
	if len(v) == 0 {
		panic(condition.New(condition.WrongArity, "cons*: expected at least 1 argument"))
	}

	return list.FromSlice(v[:len(v)-1], v[len(v)-1])
}

func iota(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 3)

	n := num.Int64(v[0])

	start := cell.I(zero)
	if len(v) > 1 {
		start = v[1]
	}

	step := cell.I(one)
	if len(v) > 2 {
		step = v[2]
	}

	elements := make([]cell.I, n)
	for i := range elements {
		elements[i] = num.Add(start, num.Mul(num.Int(int64(i)), step))
	}

	return list.New(elements...)
}

func isList(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(list.Proper(v[0]))
}

func lastPair(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	l := v[0]
	for pair.IsPair(pair.Cdr(l)) {
		l = pair.Cdr(l)
	}

	return l
}

func length(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return num.Int(list.Length(v[0]))
}

func listCopy(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	var elements []cell.I

	l := v[0]
	for ; pair.IsPair(l); l = pair.Cdr(l) {
		elements = append(elements, pair.Car(l))
	}

	return list.FromSlice(elements, l)
}

func listRef(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return pair.Car(list.Tail(v[0], num.Int64(v[1])))
}

func listTail(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return list.Tail(v[0], num.Int64(v[1]))
}

func makeList(args cell.I) cell.I {
	return args
}

func makeListN(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 2)

	fill := cell.I(boolean.False)
	if len(v) == 2 {
		fill = v[1]
	}

	elements := make([]cell.I, num.Int64(v[0]))
	for i := range elements {
		elements[i] = fill
	}

	return list.New(elements...)
}

func member(same func(a, b cell.I) bool) func(cell.I) cell.I {
	return func(args cell.I) cell.I {
		v := validate.Fixed(args, 2, 2)

		for l := v[1]; l != pair.Null; l = pair.Cdr(l) {
			if same(v[0], pair.Car(l)) {
				return l
			}
		}

		return boolean.False
	}
}

func reverse(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return list.Reverse(v[0])
}
