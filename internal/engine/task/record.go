// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/type/boolean"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/list"
	"github.com/michaelmacinnis/tern/internal/common/type/pair"
	"github.com/michaelmacinnis/tern/internal/common/type/record"
	"github.com/michaelmacinnis/tern/internal/common/type/sym"
	"github.com/michaelmacinnis/tern/internal/common/type/void"
	"github.com/michaelmacinnis/tern/internal/common/validate"
)

// evalDefineRecordType defines a record type and its procedures.
//
//  (define-record-type <name>
//    (constructor field ...)
//    predicate
//    (field accessor [modifier]) ...)
//
func evalDefineRecordType(t *T) Op {
	v, clauses := validate.Variadic(t.code, 3, 3)

	name := v[0]
	if pair.IsPair(name) {
		name = pair.Car(name)
	}

	var fields []string

	for _, clause := range list.ToSlice(clauses) {
		if pair.IsPair(clause) {
			clause = pair.Car(clause)
		}

		fields = append(fields, sym.To(clause).String())
	}

	rt := record.NewType(sym.To(name).String(), fields)

	t.env.Define(sym.To(name).String(), rt)

	if ctor := v[1]; enabled(ctor) {
		defineConstructor(t, rt, ctor, fields)
	}

	if pred := v[2]; enabled(pred) {
		n := sym.To(pred).String()

		t.env.Define(n, NewBuiltin(n, func(args cell.I) cell.I {
			v := validate.Fixed(args, 1, 1)

			r, ok := v[0].(*record.T)

			return boolean.Bool(ok && r.Is(rt))
		}))
	}

	for _, clause := range list.ToSlice(clauses) {
		if !pair.IsPair(clause) {
			continue
		}

		i := rt.Field(sym.To(pair.Car(clause)).String())

		procs := pair.Cdr(clause)
		if procs == pair.Null {
			continue
		}

		n := sym.To(pair.Car(procs)).String()
		t.env.Define(n, NewBuiltin(n, func(args cell.I) cell.I {
			v := validate.Fixed(args, 1, 1)

			return toRecord(v[0], rt).Get(rt, i)
		}))

		if procs = pair.Cdr(procs); procs == pair.Null {
			continue
		}

		n = sym.To(pair.Car(procs)).String()
		t.env.Define(n, NewBuiltin(n, func(args cell.I) cell.I {
			v := validate.Fixed(args, 2, 2)

			toRecord(v[0], rt).Set(rt, i, v[1])

			return void.Value
		}))
	}

	return t.Return(name)
}

func defineConstructor(t *T, rt *record.Type, ctor cell.I, fields []string) {
	var n string

	indices := []int{}

	if pair.IsPair(ctor) {
		n = sym.To(pair.Car(ctor)).String()

		for _, f := range list.ToSlice(pair.Cdr(ctor)) {
			indices = append(indices, rt.Field(sym.To(f).String()))
		}
	} else {
		n = sym.To(ctor).String()

		for i := range fields {
			indices = append(indices, i)
		}
	}

	t.env.Define(n, NewBuiltin(n, func(args cell.I) cell.I {
		v := validate.Fixed(args, len(indices), len(indices))

		values := make(map[int]cell.I, len(v))
		for j, i := range indices {
			values[i] = v[j]
		}

		return rt.New(values, boolean.False)
	}))
}

func toRecord(c cell.I, rt *record.Type) *record.T {
	r, ok := c.(*record.T)
	if !ok {
		panic(condition.New(condition.WrongType, "not a "+rt.String(), c))
	}

	return r
}

func enabled(c cell.I) bool {
	return c != boolean.False
}
