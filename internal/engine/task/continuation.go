// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/type/list"
	"github.com/michaelmacinnis/tern/internal/common/type/pair"
	"github.com/michaelmacinnis/tern/internal/common/type/values"
	"github.com/michaelmacinnis/tern/internal/common/type/void"
)

// Continuation is a first-class snapshot of a task's registers. Invoking it
// abandons the current computation and resumes the snapshot with a value.
// A continuation can be invoked any number of times.
type Continuation struct {
	saved registers
}

// Equal returns true if c is the same continuation.
func (k *Continuation) Equal(c cell.I) bool {
	return cell.I(k) == c
}

// Execute delivers the arguments in t.code to the continuation k.
func (k *Continuation) Execute(t *T) Op {
	var v cell.I

	switch args := list.ToSlice(t.code); len(args) {
	case 0:
		v = void.Value
	default:
		v = values.New(args)
	}

	t.Jumping(k)

	return t.transfer(&k.saved, func(t *T) Op {
		t.Landed()
		t.PushResult(v)

		return t.Op()
	})
}

// Literal returns the written representation of the continuation k.
func (k *Continuation) Literal() string {
	return "#[continuation]"
}

// Name returns the name of the continuation type.
func (k *Continuation) Name() string {
	return "continuation"
}

// The wind type records a dynamic-wind extent. Extents form a tree. Each
// continuation remembers the extent it was captured in.
type wind struct {
	after  cell.I
	before cell.I
	depth  int
	parent *wind
}

//nolint:gochecknoglobals
var root = &wind{}

// common returns the innermost extent shared by a and b.
func common(a, b *wind) *wind {
	for a.depth > b.depth {
		a = a.parent
	}

	for b.depth > a.depth {
		b = b.parent
	}

	for a != b {
		a = a.parent
		b = b.parent
	}

	return a
}

// capture returns a snapshot of the registers. The current operation is the
// first to run when the snapshot is resumed.
func (t *T) capture() registers {
	return *t.registers
}

// transfer runs the after thunks for each extent being exited, innermost
// first, and the before thunks for each extent being entered, outermost
// first. It then restores target and calls resume.
func (t *T) transfer(target *registers, resume func(t *T) Op) Op {
	shared := common(t.winds, target.winds)

	var steps []Op

	for w := t.winds; w != shared; w = w.parent {
		w := w

		steps = append(steps, Action(func(t *T) Op {
			t.winds = w.parent

			t.ReplaceOp(Action(discard))

			return t.call(w.after, pair.Null)
		}))
	}

	var entries []*wind
	for w := target.winds; w != shared; w = w.parent {
		entries = append(entries, w)
	}

	for i := len(entries) - 1; i >= 0; i-- {
		w := entries[i]

		steps = append(steps, Action(func(t *T) Op {
			t.winds = w.parent

			t.ReplaceOp(&registers{winds: w})
			t.PushOp(Action(discard))

			return t.call(w.before, pair.Null)
		}))
	}

	saved := *target

	steps = append(steps, Action(func(t *T) Op {
		*t.registers = saved

		return resume(t)
	}))

	// The steps run on top of the current stack but the last one replaces
	// the stack entirely so nothing below them is ever performed.
	t.RemoveOp()

	for i := len(steps) - 1; i >= 0; i-- {
		t.PushOp(steps[i])
	}

	return t.Op()
}
