// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
)

// Builtin is tern's primitive procedure type. Its arguments are evaluated
// and it computes a value without touching the machine.
type Builtin struct {
	Op

	name string
}

// NewBuiltin wraps the Go function do as a procedure named n.
func NewBuiltin(n string, do func(args cell.I) cell.I) *Builtin {
	return &Builtin{Op: Action(func(t *T) Op {
		return t.Return(do(t.code))
	}), name: n}
}

// Equal returns true if the cell c is the same builtin as a.
func (a *Builtin) Equal(c cell.I) bool {
	p, ok := c.(*Builtin)

	return ok && p == a
}

// Literal returns the written representation of the builtin a.
func (a *Builtin) Literal() string {
	return "#[compiled-procedure " + a.name + "]"
}

// Name returns the name of the builtin type.
func (a *Builtin) Name() string {
	return "compiled-procedure"
}

// Methods specific to builtin.

// Execute sets up the operations required to execute the builtin a.
func (a *Builtin) Execute(t *T) Op {
	return t.ReplaceOp(a.Op)
}

var _ command = &Builtin{}
