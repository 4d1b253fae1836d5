// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to primitives.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/list"
	"github.com/michaelmacinnis/tern/internal/common/type/pair"
)

// Variadic returns between min and max arguments and any remaining arguments.
func Variadic(actual cell.I, min, max int) ([]cell.I, cell.I) {
	expected := make([]cell.I, 0, max)

	for i := 0; i < max; i++ {
		if actual == pair.Null {
			if i < min {
				s := Count(min, "argument", "s")
				panic(condition.New(
					condition.WrongArity,
					fmt.Sprintf("expected %s, passed %d", s, i),
				))
			}

			break
		}

		expected = append(expected, pair.Car(actual))

		actual = pair.Cdr(actual)
	}

	return expected, actual
}

// Fixed returns between min and max arguments.
func Fixed(actual cell.I, min, max int) []cell.I {
	expected, rest := Variadic(actual, min, max)
	if rest != pair.Null {
		s := Count(max, "argument", "s")
		n := int(list.Length(actual))

		if min != max {
			s = "at most " + s
		}

		panic(condition.New(
			condition.WrongArity,
			fmt.Sprintf("expected %s, passed %d", s, n),
		))
	}

	return expected
}

// Count formats n of label with the plural suffix p when n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
