// Released under an MIT license. See LICENSE.

// Package void provides the value of expressions that have no useful value.
package void

import (
	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
)

// T (void) is the type of the unspecified value.
type T struct {
	literal string
}

// Value is the value of expressions that have no useful value.
var Value cell.I = &T{"#!unspecific"} //nolint:gochecknoglobals

// Default marks an optional parameter that was not supplied.
var Default cell.I = &T{"#!default"} //nolint:gochecknoglobals

// Equal returns true if c is the same value.
func (v *T) Equal(c cell.I) bool {
	return cell.I(v) == c
}

// Literal returns the written representation of v.
func (v *T) Literal() string {
	return v.literal
}

// Name returns the name of the void type.
func (v *T) Name() string {
	return "unspecific"
}
