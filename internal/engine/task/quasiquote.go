// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/type/list"
	"github.com/michaelmacinnis/tern/internal/common/type/pair"
	"github.com/michaelmacinnis/tern/internal/common/type/sym"
	"github.com/michaelmacinnis/tern/internal/common/type/vector"
	"github.com/michaelmacinnis/tern/internal/common/validate"
)

// The expansion of a quasiquote template refers to these procedures
// directly so that it means the same thing wherever it appears.

//nolint:gochecknoglobals
var (
	qqAppend = NewBuiltin("append", func(args cell.I) cell.I {
		v := validate.Fixed(args, 2, 2)

		return list.Append(v[0], v[1])
	})
	qqCons = NewBuiltin("cons", func(args cell.I) cell.I {
		v := validate.Fixed(args, 2, 2)

		return pair.Cons(v[0], v[1])
	})
	qqList = NewBuiltin("list", func(args cell.I) cell.I {
		return args
	})
	qqVector = NewBuiltin("list->vector", func(args cell.I) cell.I {
		v := validate.Fixed(args, 1, 1)

		return vector.New(list.ToSlice(v[0]))
	})
)

func evalQuasiquote(t *T) Op {
	t.code = expand(pair.Car(t.code), 1)

	return t.ReplaceOp(Action(evaluate))
}

// expand returns an expression that builds the template x. Only unquotes
// at depth 1 are evaluated.
func expand(x cell.I, depth int) cell.I {
	if v, ok := x.(*vector.T); ok {
		return list.New(qqVector, expand(list.New(v.Elements()...), depth))
	}

	if !pair.IsPair(x) {
		return Quote(x)
	}

	head := pair.Car(x)

	switch {
	case sym.Named(head, "unquote"):
		if depth == 1 {
			return pair.Cadr(x)
		}

		return list.New(qqList, Quote(head), expand(pair.Cadr(x), depth-1))

	case sym.Named(head, "quasiquote"):
		return list.New(qqList, Quote(head), expand(pair.Cadr(x), depth+1))

	case pair.IsPair(head) && sym.Named(pair.Car(head), "unquote-splicing"):
		rest := expand(pair.Cdr(x), depth)

		if depth == 1 {
			return list.New(qqAppend, pair.Cadr(head), rest)
		}

		spliced := list.New(qqList, Quote(pair.Car(head)), expand(pair.Cadr(head), depth-1))

		return list.New(qqCons, spliced, rest)
	}

	return list.New(qqCons, expand(head, depth), expand(pair.Cdr(x), depth))
}
