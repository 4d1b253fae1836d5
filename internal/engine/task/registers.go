// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/scope"
	"github.com/michaelmacinnis/tern/internal/common/type/pair"
	"github.com/michaelmacinnis/tern/internal/common/type/void"
)

// The registers type holds the state of tern's stack-based abstract machine.
//
// The stack and dump are persistent lists. Operations never modify a stack
// node or a dump cell after it is created so a copy of the registers is a
// complete, reusable snapshot of the computation.
type registers struct {
	*stack
	code     cell.I
	dump     cell.I
	env      scope.I
	handlers cell.I
	winds    *wind
}

// Perform copies non-nil fields from m to target.
func (m *registers) Perform(target *T) Op {
	m.restoreOver(target.registers)

	return target.PreviousOp()
}

// Completed returns true if there are no more operations.
func (m *registers) Completed() bool {
	return m.stack == done
}

// Op returns the abstract machine's current operation.
func (m *registers) Op() Op {
	return m.stack.op
}

// PopResult removes the top result from dump.
func (m *registers) PopResult() cell.I {
	r := pair.Car(m.dump)
	m.dump = pair.Cdr(m.dump)

	return r
}

// PushOp pushes a new operation onto the stack.
func (m *registers) PushOp(s Op) Op {
	current := toRegisters(s)
	previous := toRegisters(m.stack.op)

	if current != nil && previous != nil {
		// Condense restore operations. This is what keeps tail calls from
		// growing the stack. The older restore wins for any field both set.
		merged := *current
		previous.restoreOver(&merged)

		m.stack = &stack{m.stack.stack, &merged}

		return &merged
	}

	m.stack = &stack{m.stack, s}

	return s
}

// PushResult adds the result r to dump.
func (m *registers) PushResult(r cell.I) {
	m.dump = pair.Cons(r, m.dump)
}

// PreviousOp pops the current operation and returns the previous operation.
func (m *registers) PreviousOp() Op {
	m.RemoveOp()

	return m.Op()
}

// RemoveOp pops the current operation off the stack.
func (m *registers) RemoveOp() {
	m.stack = m.stack.stack
}

// ReplaceOp replaces the operation at the top of the stack.
func (m *registers) ReplaceOp(s Op) Op {
	m.RemoveOp()

	return m.PushOp(s)
}

// Result returns the current result.
func (m *registers) Result() cell.I {
	if m.dump == pair.Null {
		return void.Value
	}

	return pair.Car(m.dump)
}

// The stack type is a machine's execution stack.
type stack struct {
	*stack
	op Op
}

//nolint:gochecknoglobals
var (
	done = &stack{}
)

// arguments pops results up to and including the nil marker pushed before
// the operator was evaluated. They are returned in evaluation order.
func (m *registers) arguments() cell.I {
	e := m.PopResult()
	l := pair.Null

	for e != nil && m.dump != pair.Null {
		l = pair.Cons(e, l)

		e = m.PopResult()
	}

	return l
}

// depth returns the number of operations on the stack.
func (m *registers) depth() int {
	n := 0
	for s := m.stack; s != done; s = s.stack {
		n++
	}

	return n
}

func (m *registers) restoreOver(target *registers) {
	if m.code != nil {
		target.code = m.code
	}

	if m.dump != nil {
		target.dump = m.dump
	}

	if m.env != nil {
		target.env = m.env
	}

	if m.handlers != nil {
		target.handlers = m.handlers
	}

	if m.winds != nil {
		target.winds = m.winds
	}
}

func init() { //nolint:gochecknoinits
	done.stack = done
}

func toRegisters(s Op) *registers {
	if r, ok := s.(*registers); ok {
		return r
	}

	return nil
}
