// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/env"
	"github.com/michaelmacinnis/tern/internal/common/type/list"
	"github.com/michaelmacinnis/tern/internal/common/type/pair"
	"github.com/michaelmacinnis/tern/internal/common/type/sym"
)

// The handler type is an entry in a task's stack of condition handlers.
// A guard handler resumes a saved computation. A procedure handler is
// called in the dynamic context of the raise.
type handler struct {
	clauses  cell.I
	k        *registers
	proc     cell.I
	variable string
}

func (h *handler) Equal(c cell.I) bool {
	return cell.I(h) == c
}

func (h *handler) Name() string {
	return "handler"
}

// raise delivers the condition c to the innermost handler. With no handler
// installed the task stops and c is returned to the embedder.
func (t *T) raise(c *condition.T, continuable bool) Op {
	if _, ok := c.ExitCode(); ok || c.Kind == condition.Abort {
		return t.fail(c)
	}

	if t.handlers == pair.Null {
		return t.fail(c)
	}

	h, ok := pair.Car(t.handlers).(*handler)
	if !ok {
		return t.fail(condition.New(condition.Internal, "corrupt handler stack"))
	}

	outer := pair.Cdr(t.handlers)
	payload := c.Payload()

	if h.k != nil {
		var origin *registers

		if continuable {
			k := t.capture()
			origin = &k
		}

		return t.transfer(h.k, func(t *T) Op {
			return t.guarded(h, c, origin)
		})
	}

	if continuable {
		t.ReplaceOp(&registers{handlers: t.handlers})
	} else {
		// Returning from a handler for a non-continuable raise is itself
		// an error, signalled to the outer handlers.
		t.PushOp(Action(func(t *T) Op {
			return t.raise(condition.New(
				condition.UserRaised,
				"handler returned from non-continuable raise",
				payload,
			), false)
		}))
	}

	t.handlers = outer

	return t.call(h.proc, list.New(payload))
}

// guarded evaluates a guard's clauses with the condition's payload bound.
// If no clause applies the condition is raised again in the guard's context.
// A continuable condition is raised again from where it was first raised,
// with the guard's outer handlers installed.
func (t *T) guarded(h *handler, c *condition.T, origin *registers) Op {
	e := env.New(t.env)
	e.Define(h.variable, c.Payload())

	reraise := &Method{Op: Action(func(t *T) Op {
		if origin == nil {
			return t.raise(c, false)
		}

		return t.transfer(origin, func(t *T) Op {
			t.ReplaceOp(&registers{handlers: t.handlers})
			t.PushOp(Action(nop))

			t.handlers = h.k.handlers

			return t.raise(c, true)
		})
	}), name: "raise"}

	clauses := list.Append(h.clauses, list.New(
		list.New(sym.New("else"), list.New(reraise)),
	))

	t.PushOp(&registers{env: t.env})

	t.env = e
	t.code = clauses

	return t.PushOp(Action(evalCond))
}

// evalGuard evaluates a body with a handler that resumes the guard's own
// continuation before testing its clauses.
//
//  (guard (var clause ...) body ...)
//
func evalGuard(t *T) Op {
	head := pair.Car(t.code)

	t.ReplaceOp(&registers{handlers: t.handlers})

	k := t.capture()

	t.handlers = pair.Cons(&handler{
		clauses:  pair.Cdr(head),
		k:        &k,
		variable: sym.To(pair.Car(head)).String(),
	}, t.handlers)
	t.code = pair.Cdr(t.code)

	return t.PushOp(Action(evalBody))
}
