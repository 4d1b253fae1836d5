// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
)

// Syntax is tern's special form type. Its operands are not evaluated.
type Syntax struct {
	Op

	name string
}

// Equal returns true if the cell c is the same syntax as a.
func (a *Syntax) Equal(c cell.I) bool {
	p, ok := c.(*Syntax)

	return ok && p == a
}

// Literal returns the written representation of the syntax a.
func (a *Syntax) Literal() string {
	return "#[classifier-item " + a.name + "]"
}

// Name returns the name of the syntax type.
func (a *Syntax) Name() string {
	return "syntax"
}

// Methods specific to syntax.

// Execute sets up the operations required to execute the syntax a.
func (a *Syntax) Execute(t *T) Op {
	return t.ReplaceOp(a.Op)
}
