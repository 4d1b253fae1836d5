// Released under an MIT license. See LICENSE.

// Package record provides the types created by define-record-type.
package record

import (
	"strings"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/literal"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
)

// Type describes a record type.
type Type struct {
	name   string
	fields []string
}

// NewType creates a record type with the named fields.
func NewType(name string, fields []string) *Type {
	return &Type{name: strings.Trim(name, "<>"), fields: fields}
}

// Equal returns true if c is the same record type.
func (t *Type) Equal(c cell.I) bool {
	return cell.I(t) == c
}

// Field returns the index of the field named f.
func (t *Type) Field(f string) int {
	for i, n := range t.fields {
		if n == f {
			return i
		}
	}

	panic(condition.New(condition.WrongType, "no such field "+f+" in record type "+t.name))
}

// Literal returns the written representation of t.
func (t *Type) Literal() string {
	return "#[record-type " + t.name + "]"
}

// Name returns the name of the record type type.
func (t *Type) Name() string {
	return "record-type"
}

// New creates an instance of t. Fields not in values are unspecified.
func (t *Type) New(values map[int]cell.I, unset cell.I) *T {
	r := &T{kind: t, fields: make([]cell.I, len(t.fields))}

	for i := range r.fields {
		if v, ok := values[i]; ok {
			r.fields[i] = v
		} else {
			r.fields[i] = unset
		}
	}

	return r
}

// String returns the name of the record type.
func (t *Type) String() string {
	return t.name
}

// T (record) is an instance of a record type.
type T struct {
	kind   *Type
	fields []cell.I
}

// Equal returns true if c is the same record.
func (r *T) Equal(c cell.I) bool {
	return cell.I(r) == c
}

// Get returns field i of r if r is an instance of t.
func (r *T) Get(t *Type, i int) cell.I {
	r.check(t)

	return r.fields[i]
}

// Is returns true if r is an instance of t.
func (r *T) Is(t *Type) bool {
	return r.kind == t
}

// Literal returns the written representation of r.
func (r *T) Literal() string {
	var b strings.Builder

	b.WriteString("#[" + r.kind.name)

	for i, f := range r.fields {
		b.WriteString(" " + r.kind.fields[i] + "=" + literal.String(f))
	}

	b.WriteString("]")

	return b.String()
}

// Name returns the record's type name.
func (r *T) Name() string {
	return r.kind.name
}

// Set replaces field i of r if r is an instance of t.
func (r *T) Set(t *Type, i int, v cell.I) {
	r.check(t)

	r.fields[i] = v
}

func (r *T) check(t *Type) {
	if r.kind != t {
		panic(condition.New(condition.WrongType, "not a "+t.name, r))
	}
}
