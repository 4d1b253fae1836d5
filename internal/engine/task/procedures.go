// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/literal"
	"github.com/michaelmacinnis/tern/internal/common/interface/scope"
	"github.com/michaelmacinnis/tern/internal/common/type/boolean"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/list"
	"github.com/michaelmacinnis/tern/internal/common/type/num"
	"github.com/michaelmacinnis/tern/internal/common/type/pair"
	"github.com/michaelmacinnis/tern/internal/common/type/str"
	"github.com/michaelmacinnis/tern/internal/common/type/values"
	"github.com/michaelmacinnis/tern/internal/common/validate"
)

// Procedures that need access to the machine. Each is performed in place
// of the application that called it, with code set to its arguments.

func apply(t *T) Op {
	v, rest := validate.Variadic(t.code, 1, 1)

	args := list.ToSlice(rest)
	if len(args) == 0 {
		t.code = pair.Null

		return t.apply(v[0])
	}

	last := args[len(args)-1]
	if !list.Proper(last) {
		panic(condition.New(condition.WrongType, "apply: last argument must be a list", last))
	}

	t.code = list.FromSlice(args[:len(args)-1], last)

	return t.apply(v[0])
}

func callcc(t *T) Op {
	v := validate.Fixed(t.code, 1, 1)

	t.RemoveOp()

	k := &Continuation{saved: t.capture()}

	return t.call(v[0], list.New(k))
}

func callWithValues(t *T) Op {
	v := validate.Fixed(t.code, 2, 2)

	consumer := v[1]

	t.ReplaceOp(Action(func(t *T) Op {
		t.code = list.New(values.Spread(t.PopResult())...)

		return t.apply(consumer)
	}))

	return t.call(v[0], pair.Null)
}

// dynamicWind calls before, then thunk, then after. The thunk's extent is
// recorded so that jumps into or out of it run before or after.
func dynamicWind(t *T) Op {
	v := validate.Fixed(t.code, 3, 3)

	before, thunk, after := v[0], v[1], v[2]

	w := &wind{
		after:  after,
		before: before,
		depth:  t.winds.depth + 1,
		parent: t.winds,
	}

	t.ReplaceOp(Action(func(t *T) Op {
		t.winds = w.parent

		t.ReplaceOp(Action(discard))

		return t.call(w.after, pair.Null)
	}))
	t.PushOp(Action(func(t *T) Op {
		t.winds = w

		t.code = pair.Null

		return t.apply(thunk)
	}))
	t.PushOp(Action(discard))

	return t.call(before, pair.Null)
}

func eval(t *T) Op {
	v := validate.Fixed(t.code, 1, 2)

	e := t.Global()
	if len(v) == 2 {
		e = scope.To(v[1])
	}

	t.ReplaceOp(&registers{env: t.env})

	t.code = v[0]
	t.env = e

	return t.PushOp(Action(evaluate))
}

// exit runs the after thunk of every active extent and then stops the task.
func exit(t *T) Op {
	v := validate.Fixed(t.code, 0, 1)

	code := 0

	if len(v) == 1 {
		switch v[0] {
		case boolean.True:
		case boolean.False:
			code = 1
		default:
			code = int(num.Int64(v[0]))
		}
	}

	t.state.Exit()

	c := condition.Exit(code)

	target := t.capture()
	target.stack = done
	target.winds = root

	return t.transfer(&target, func(t *T) Op {
		return t.fail(c)
	})
}

func force(t *T) Op {
	v := validate.Fixed(t.code, 1, 1)

	p, ok := v[0].(*promise)
	if !ok {
		return t.Return(v[0])
	}

	return t.force(p)
}

func interactionEnvironment(t *T) Op {
	validate.Fixed(t.code, 0, 0)

	return t.Return(t.Global())
}

func makePromise(t *T) Op {
	v := validate.Fixed(t.code, 1, 1)

	if p, ok := v[0].(*promise); ok {
		return t.Return(p)
	}

	p := &promise{}
	p.resolve(v[0])

	return t.Return(p)
}

func raise(t *T) Op {
	v := validate.Fixed(t.code, 1, 1)

	return t.raise(raised(v[0]), false)
}

func raiseContinuable(t *T) Op {
	v := validate.Fixed(t.code, 1, 1)

	return t.raise(raised(v[0]), true)
}

func raiseError(t *T) Op {
	v, rest := validate.Variadic(t.code, 1, 1)

	msg := literal.String(v[0])
	if s, ok := v[0].(*str.T); ok {
		msg = s.String()
	}

	return t.raise(condition.New(condition.UserRaised, msg, list.ToSlice(rest)...), false)
}

func stackDepth(t *T) Op {
	validate.Fixed(t.code, 0, 0)

	return t.Return(num.Int(int64(t.depth())))
}

func valuesMethod(t *T) Op {
	return t.Return(values.New(list.ToSlice(t.code)))
}

func withExceptionHandler(t *T) Op {
	v := validate.Fixed(t.code, 2, 2)

	if _, ok := v[0].(command); !ok {
		panic(condition.New(condition.WrongType, "with-exception-handler: not a procedure", v[0]))
	}

	t.ReplaceOp(&registers{handlers: t.handlers})

	t.handlers = pair.Cons(&handler{proc: v[0]}, t.handlers)

	return t.call(v[1], pair.Null)
}

// withinContinuation calls thunk with k as its continuation.
func withinContinuation(t *T) Op {
	v := validate.Fixed(t.code, 2, 2)

	k, ok := v[0].(*Continuation)
	if !ok {
		panic(condition.New(condition.WrongType, "not a continuation", v[0]))
	}

	thunk := v[1]

	t.Jumping(k)

	return t.transfer(&k.saved, func(t *T) Op {
		t.Landed()

		return t.call(thunk, pair.Null)
	})
}

// Primitives that know about the machine's types.

func builtins() map[string]func(cell.I) cell.I {
	return map[string]func(cell.I) cell.I{
		"compound-procedure?":  is(compound),
		"continuation?":        is(continuation),
		"primitive-procedure?": is(primitive),
		"procedure?":           is(procedure),
		"promise?":             is(promised),
		"promise-forced?": func(args cell.I) cell.I {
			v := validate.Fixed(args, 1, 1)

			p, ok := v[0].(*promise)
			if !ok {
				panic(condition.New(condition.WrongType, "not a promise", v[0]))
			}

			return boolean.Bool(p.done)
		},
	}
}

func is(test func(cell.I) bool) func(cell.I) cell.I {
	return func(args cell.I) cell.I {
		v := validate.Fixed(args, 1, 1)

		return boolean.Bool(test(v[0]))
	}
}

func compound(c cell.I) bool {
	_, ok := c.(*Closure)

	return ok
}

func continuation(c cell.I) bool {
	_, ok := c.(*Continuation)

	return ok
}

func procedure(c cell.I) bool {
	_, ok := c.(command)

	return ok
}

func promised(c cell.I) bool {
	_, ok := c.(*promise)

	return ok
}

func primitive(c cell.I) bool {
	switch c.(type) {
	case *Builtin, *Method:
		return true
	}

	return false
}

func raised(c cell.I) *condition.T {
	if r, ok := c.(*condition.T); ok {
		return r
	}

	return condition.Raise(c)
}
