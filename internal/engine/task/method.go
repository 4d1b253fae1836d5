// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
)

// Method is tern's machine-aware primitive procedure type. Its arguments are
// evaluated and it may rearrange the task's stack.
type Method struct {
	Op

	name string
}

// Equal returns true if the cell c is the same method as a.
func (a *Method) Equal(c cell.I) bool {
	p, ok := c.(*Method)

	return ok && p == a
}

// Literal returns the written representation of the method a.
func (a *Method) Literal() string {
	return "#[compiled-procedure " + a.name + "]"
}

// Name returns the name of the method type.
func (a *Method) Name() string {
	return "compiled-procedure"
}

// Methods specific to method.

// Execute sets up the operations required to execute the method a.
func (a *Method) Execute(t *T) Op {
	return t.ReplaceOp(a.Op)
}

var _ command = &Method{}
