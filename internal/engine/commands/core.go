// Released under an MIT license. See LICENSE.

package commands

import (
	"errors"
	"io/fs"
	"time"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/scope"
	"github.com/michaelmacinnis/tern/internal/common/type/boolean"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/list"
	"github.com/michaelmacinnis/tern/internal/common/type/num"
	"github.com/michaelmacinnis/tern/internal/common/type/str"
	"github.com/michaelmacinnis/tern/internal/common/type/sym"
	"github.com/michaelmacinnis/tern/internal/common/type/void"
	"github.com/michaelmacinnis/tern/internal/common/validate"
)

//nolint:gochecknoglobals
var started = time.Now()

func accessCondition(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	c := condition.To(v[0])

	switch sym.To(v[1]).String() {
	case "irritants":
		return list.New(c.Irritants...)
	case "message":
		return str.New(c.Message)
	}

	panic(condition.New(condition.WrongType, "access-condition: no such field", v[1]))
}

func conditionKind(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return sym.New(condition.To(v[0]).Kind.String())
}

func currentTime(args cell.I) cell.I {
	validate.Fixed(args, 0, 0)

	return num.Int(time.Now().Unix())
}

func environmentAssign(args cell.I) cell.I {
	v := validate.Fixed(args, 3, 3)

	r := scope.To(v[0]).Lookup(sym.To(v[1]).String())
	if r == nil {
		panic(condition.New(condition.UnboundVariable, "unbound variable:", v[1]))
	}

	r.Set(v[2])

	return void.Value
}

func environmentBound(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return boolean.Bool(scope.To(v[0]).Lookup(sym.To(v[1]).String()) != nil)
}

func environmentDefine(args cell.I) cell.I {
	v := validate.Fixed(args, 3, 3)

	scope.To(v[0]).Define(sym.To(v[1]).String(), v[2])

	return void.Value
}

func environmentLookup(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	r := scope.To(v[0]).Lookup(sym.To(v[1]).String())
	if r == nil {
		panic(condition.New(condition.UnboundVariable, "unbound variable:", v[1]))
	}

	return r.Get()
}

func errorIrritants(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return list.New(condition.To(v[0]).Irritants...)
}

func errorMessage(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return str.New(condition.To(v[0]).Message)
}

func isCondition(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(condition.Is(v[0]))
}

func isDefault(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(v[0] == void.Default)
}

func isEnvironment(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(scope.Is(v[0]))
}

func isFileError(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	c, ok := v[0].(*condition.T)

	var pe *fs.PathError

	return boolean.Bool(ok && errors.As(c, &pe))
}

func isReadError(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	c, ok := v[0].(*condition.T)

	return boolean.Bool(ok && c.Kind == condition.ReaderSyntax)
}

func realTime(args cell.I) cell.I {
	validate.Fixed(args, 0, 0)

	return num.Float(float64(time.Now().UnixNano()) / float64(time.Millisecond))
}

func reportString(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return str.New(condition.To(v[0]).Error())
}

func elapsed(args cell.I) cell.I {
	validate.Fixed(args, 0, 0)

	return num.Float(time.Since(started).Seconds())
}

func unspecific(_ cell.I) cell.I {
	return void.Value
}
