// Released under an MIT license. See LICENSE.

package tern

import (
	"github.com/michaelmacinnis/tern/internal/common/interface/scope"
)

// Bindings is a map-like view of a single environment frame. Changes made
// through a Bindings are visible to guest code and the reverse.
type Bindings struct {
	frame scope.I
}

// NewBindings returns a view of the frame s.
func NewBindings(s Environment) *Bindings {
	return &Bindings{frame: s}
}

// Environment returns the frame behind b.
func (b *Bindings) Environment() Environment {
	return b.frame
}

// Get returns the unwrapped value bound to name in this frame.
func (b *Bindings) Get(name string) (any, bool) {
	r := b.frame.Location(name)
	if r == nil {
		return nil, false
	}

	return Unwrap(r.Get()), true
}

// Keys returns the names bound in this frame in sorted order.
func (b *Bindings) Keys() []string {
	return b.frame.Names()
}

// Len returns the number of names bound in this frame.
func (b *Bindings) Len() int {
	return b.frame.Size()
}

// Put binds name to the wrapped value v, replacing any existing binding.
func (b *Bindings) Put(name string, v any) {
	b.frame.Define(name, Wrap(v))
}

// Remove unbinds name. It returns false if name was not bound.
func (b *Bindings) Remove(name string) bool {
	return b.frame.Remove(name)
}
