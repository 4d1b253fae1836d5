// Released under an MIT license. See LICENSE.

// Package literal defines the interface for tern types that have an external representation.
package literal

import (
	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
)

// I (literal) is any type that can be written so that the reader can read it back.
type I interface {
	Literal() string
}

// String returns the written representation for a cell.
func String(c cell.I) string {
	if c == nil {
		return "#<nil>"
	}

	l, ok := c.(I)
	if !ok {
		return "#<" + c.Name() + ">"
	}

	return l.Literal()
}
