// Released under an MIT license. See LICENSE.

// Package task provides the machinery used to evaluate tern expressions.
//
// A task is a register machine. Each step performs one operation and returns
// the next. No operation calls back into the machine so guest recursion,
// including tail calls and continuation jumps, never consumes Go stack.
package task

import (
	"log/slog"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/literal"
	"github.com/michaelmacinnis/tern/internal/common/interface/scope"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/pair"
	"github.com/michaelmacinnis/tern/internal/engine/commands"
)

const traceWidth = 72

type monitor interface {
	commands.Session

	// Global returns the environment used by interaction-environment.
	Global() scope.I

	// Jumping records that a continuation invocation is in progress.
	Jumping(k cell.I)

	// Landed records that the pending continuation invocation completed.
	Landed()

	// Logger returns the logger to trace with, or nil when not tracing.
	Logger() *slog.Logger
}

// T (task) encapsulates a thread of execution.
type T struct {
	monitor
	*registers
	*state

	err error
}

// New creates a new task that evaluates c in the environment e.
func New(m monitor, c cell.I, e scope.I) *T {
	t := &T{
		registers: &registers{
			code:     c,
			dump:     pair.Null,
			env:      e,
			handlers: pair.Null,
			stack:    done,
			winds:    root,
		},
		monitor: m,
		state:   fresh(),
	}

	t.PushOp(Action(evaluate))

	return t
}

// Interrupt asks a running task to stop.
func (t *T) Interrupt() bool {
	return t.state.Stop()
}

// Return pushes the result c and returns the previous operation.
func (t *T) Return(c cell.I) Op {
	t.PushResult(c)

	return t.PreviousOp()
}

// Run steps through a task's operations until they are exhausted. It returns
// the value of the expression or the condition that stopped evaluation.
func (t *T) Run() (cell.I, error) {
	t.state.Started()

	s := t.Op()
	for s != nil {
		if !t.state.Runnable() {
			t.fail(condition.New(condition.Abort, "interrupted"))

			break
		}

		s = t.Step(s)
	}

	t.state.Stopped()

	if t.err != nil {
		return nil, t.err
	}

	return t.Result(), nil
}

// Step performs a single action and determines the next action.
func (t *T) Step(s Op) (op Op) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		op = t.raise(condition.From(r), false)
	}()

	if l := t.Logger(); l != nil {
		t.trace(l, s)
	}

	op = s.Perform(t)

	return op
}

// fail stops the task with the condition c.
func (t *T) fail(c *condition.T) Op {
	t.err = c
	t.stack = done

	return nil
}

func (t *T) trace(l *slog.Logger, s Op) {
	form := "#<nil>"
	if t.code != nil {
		form = literal.String(t.code)
	}

	if len(form) > traceWidth {
		form = form[:traceWidth-3] + "..."
	}

	l.Debug("step",
		slog.String("op", opString(s)),
		slog.String("form", form),
		slog.Int("depth", scope.Depth(t.env)),
		slog.Int("stack", t.depth()),
	)
}
