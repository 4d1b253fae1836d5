// Released under an MIT license. See LICENSE.

// Package values provides the type used to return zero or many values.
package values

import (
	"strings"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/literal"
	"github.com/michaelmacinnis/tern/internal/common/type/void"
)

// T (values) holds the values delivered to a continuation at once.
type T []cell.I

// New returns the result of delivering vs. A single value is itself.
func New(vs []cell.I) cell.I {
	if len(vs) == 1 {
		return vs[0]
	}

	t := T(vs)

	return &t
}

// Equal returns true if c holds equal values.
func (t *T) Equal(c cell.I) bool {
	o, ok := c.(*T)
	if !ok || len(*t) != len(*o) {
		return false
	}

	for i, v := range *t {
		if !v.Equal((*o)[i]) {
			return false
		}
	}

	return true
}

// Literal returns each value on its own line.
func (t *T) Literal() string {
	s := make([]string, len(*t))
	for i, v := range *t {
		s[i] = literal.String(v)
	}

	return strings.Join(s, "\n")
}

// Name returns the name of the values type.
func (t *T) Name() string {
	return "values"
}

// Spread returns the values in c. Anything other than multiple values is a
// single value.
func Spread(c cell.I) []cell.I {
	if t, ok := c.(*T); ok {
		return *t
	}

	return []cell.I{c}
}

// First returns the first value in c or the unspecified value.
func First(c cell.I) cell.I {
	if t, ok := c.(*T); ok {
		if len(*t) == 0 {
			return void.Value
		}

		return (*t)[0]
	}

	return c
}
