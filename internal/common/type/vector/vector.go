// Released under an MIT license. See LICENSE.

// Package vector provides tern's vector type.
package vector

import (
	"sync"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/literal"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/pair"
)

const name = "vector"

// T (vector) is a fixed length sequence of cells.
type T struct {
	sync.RWMutex
	v []cell.I
}

type vector = T

// New creates a vector holding elements.
func New(elements []cell.I) *vector {
	return &vector{v: elements}
}

// Elements returns a copy of the elements of v.
func (v *vector) Elements() []cell.I {
	v.RLock()
	defer v.RUnlock()

	return append([]cell.I(nil), v.v...)
}

// Equal returns true if c is a vector with equal elements.
func (v *vector) Equal(c cell.I) bool {
	o, ok := c.(*vector)
	if !ok {
		return false
	}

	if v == o {
		return true
	}

	a, b := v.Elements(), o.Elements()
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}

// Len returns the number of elements in v.
func (v *vector) Len() int {
	v.RLock()
	defer v.RUnlock()

	return len(v.v)
}

// Literal returns the written representation of v.
func (v *vector) Literal() string {
	return pair.Write(v, false)
}

// Name returns the name of the vector type.
func (v *vector) Name() string {
	return name
}

// Prefix is written before the opening parenthesis.
func (v *vector) Prefix() string {
	return "#"
}

// Ref returns the element at index i.
func (v *vector) Ref(i int64) cell.I {
	v.RLock()
	defer v.RUnlock()

	if i < 0 || i >= int64(len(v.v)) {
		panic(condition.New(condition.WrongType, "vector index out of range", v))
	}

	return v.v[i]
}

// Set replaces the element at index i.
func (v *vector) Set(i int64, c cell.I) {
	v.Lock()
	defer v.Unlock()

	if i < 0 || i >= int64(len(v.v)) {
		panic(condition.New(condition.WrongType, "vector index out of range", v))
	}

	v.v[i] = c
}

// String returns the displayed representation of v.
func (v *vector) String() string {
	return pair.Write(v, true)
}

// To returns a vector if c is a vector; Otherwise it panics.
func To(c cell.I) *vector {
	if t, ok := c.(*vector); ok {
		return t
	}

	panic(condition.New(condition.WrongType, "not a vector", c))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t vector

	// The vector type is a cell.
	_ = cell.I(&t)

	// The vector type has a literal representation.
	_ = literal.I(&t)

	// The vector type is traversed by the printer.
	_ = pair.Sequence(&t)
}
