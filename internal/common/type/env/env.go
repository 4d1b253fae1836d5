// Released under an MIT license. See LICENSE.

// Package env provides tern's first-class environment type.
package env

import (
	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/reference"
	"github.com/michaelmacinnis/tern/internal/common/interface/scope"
	"github.com/michaelmacinnis/tern/internal/common/struct/hash"
)

const name = "environment"

// T (env) is a frame of bindings and a link to the enclosing frame.
type T struct {
	previous scope.I
	*frame
}

type env = T

// We alias hash.T to frame so that when embedded it is easy to refer to
// it by name. Embedding frame also lets us access its methods directly.
type frame = hash.T

// New creates a new env enclosed by previous. The global environment has
// no enclosing environment.
func New(previous scope.I) scope.I {
	return &env{
		previous: previous,
		frame:    hash.New(),
	}
}

// Define associates the name k with the cell v in this frame. If k is
// already bound in this frame its location is updated.
func (e *env) Define(k string, v cell.I) {
	e.Set(k, v)
}

// Enclosing returns the enclosing scope.
func (e *env) Enclosing() scope.I {
	return e.previous
}

// Equal returns true if c is the same env as e.
func (e *env) Equal(c cell.I) bool {
	return cell.I(e) == c
}

// Literal returns the written representation of the env e.
func (e *env) Literal() string {
	if e.previous == nil {
		return "#[environment system-global-environment]"
	}

	return "#[environment]"
}

// Location retrieves the location bound to k in this frame only.
func (e *env) Location(k string) reference.I {
	return e.Get(k)
}

// Lookup retrieves the location bound to k in the nearest frame.
func (e *env) Lookup(k string) reference.I {
	var s scope.I = e

	for s != nil {
		f, ok := s.(*env)
		if !ok {
			return s.Lookup(k)
		}

		if v := f.Get(k); v != nil {
			return v
		}

		s = f.previous
	}

	return nil
}

// Name returns the type name for the env e.
func (e *env) Name() string {
	return name
}

// Names returns the names bound in this frame.
func (e *env) Names() []string {
	return e.Keys()
}

// Remove deletes the name k from this frame.
func (e *env) Remove(k string) bool {
	return e.Del(k)
}
