// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/type/boolean"
	"github.com/michaelmacinnis/tern/internal/common/type/pair"
	"github.com/michaelmacinnis/tern/internal/common/type/str"
	"github.com/michaelmacinnis/tern/internal/common/type/sym"
	"github.com/michaelmacinnis/tern/internal/common/validate"
)

func gensym(args cell.I) cell.I {
	v := validate.Fixed(args, 0, 1)

	prefix := "g"
	if len(v) == 1 {
		switch c := v[0].(type) {
		case *str.T:
			prefix = c.String()
		case *sym.T:
			prefix = c.String()
		}
	}

	return sym.Generate(prefix)
}

func isSymbol(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(sym.Is(v[0]))
}

func stringToSymbol(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return sym.New(str.To(v[0]).String())
}

func symbolAppend(args cell.I) cell.I {
	var b strings.Builder

	for ; args != pair.Null; args = pair.Cdr(args) {
		b.WriteString(sym.To(pair.Car(args)).String())
	}

	return sym.New(b.String())
}

func symbolLess(args cell.I) cell.I {
	v, rest := validate.Variadic(args, 2, 2)

	prev := sym.To(v[0]).String()
	result := prev < sym.To(v[1]).String()

	prev = sym.To(v[1]).String()

	for ; rest != pair.Null; rest = pair.Cdr(rest) {
		curr := sym.To(pair.Car(rest)).String()
		result = result && prev < curr
		prev = curr
	}

	return boolean.Bool(result)
}

func symbolToString(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return str.New(sym.To(v[0]).String())
}

func uninterned(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return sym.Generate(str.To(v[0]).String() + "-")
}
