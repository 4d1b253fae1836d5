// Released under an MIT license. See LICENSE.

// Package numeric defines the interface for tern's numbers.
package numeric

import (
	"github.com/nukata/goarith"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
)

// I (numeric) is anything that can be used in arithmetic.
type I interface {
	cell.I

	Exact() bool
	Number() goarith.Number
}

type numeric = I

// Is returns true if c is a number.
func Is(c cell.I) bool {
	_, ok := c.(numeric)

	return ok
}

// To returns a number if c is a number; Otherwise it panics.
func To(c cell.I) numeric {
	if t, ok := c.(numeric); ok {
		return t
	}

	panic(condition.New(condition.WrongType, "not a number", c))
}
