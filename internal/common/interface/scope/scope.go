// Released under an MIT license. See LICENSE.

// Package scope defines the interface for tern's first-class environments.
package scope

import (
	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/reference"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
)

// I (scope) is the interface for tern's environments.
type I interface {
	cell.I

	Enclosing() I

	Define(k string, v cell.I)
	Location(k string) reference.I
	Lookup(k string) reference.I
	Names() []string
	Remove(k string) bool
	Size() int
}

type scope = I

// Is returns true if c is a scope.
func Is(c cell.I) bool {
	_, ok := c.(scope)

	return ok
}

// To returns a scope if c is a scope; Otherwise it panics.
func To(c cell.I) scope {
	if t, ok := c.(scope); ok {
		return t
	}

	panic(condition.New(condition.WrongType, "not an environment", c))
}

// Depth returns the number of environments enclosing s, including s.
func Depth(s scope) int {
	n := 0
	for ; s != nil; s = s.Enclosing() {
		n++
	}

	return n
}
