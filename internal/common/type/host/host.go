// Released under an MIT license. See LICENSE.

// Package host provides the type used to carry embedder values through the guest.
package host

import (
	"fmt"
	"reflect"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
)

// T (host) is an opaque value supplied by the embedder.
type T struct {
	v interface{}
}

// New wraps v.
func New(v interface{}) *T {
	return &T{v: v}
}

// Equal returns true if c wraps the same value.
func (h *T) Equal(c cell.I) bool {
	o, ok := c.(*T)
	if !ok {
		return false
	}

	if h == o {
		return true
	}

	if h.v == nil || o.v == nil {
		return h.v == o.v
	}

	if reflect.TypeOf(h.v).Comparable() && reflect.TypeOf(o.v).Comparable() {
		return h.v == o.v
	}

	return false
}

// Literal returns a description of the wrapped value.
func (h *T) Literal() string {
	return fmt.Sprintf("#[host %T]", h.v)
}

// Name returns the name of the host type.
func (h *T) Name() string {
	return "host"
}

// Value returns the wrapped value.
func (h *T) Value() interface{} {
	return h.v
}
