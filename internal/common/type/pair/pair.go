// Released under an MIT license. See LICENSE.

// Package pair provides tern's cons cell type.
package pair

import (
	"fmt"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/literal"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
)

const name = "pair"

//nolint:gochecknoglobals
var (
	// Null is the empty list. It is also used to mark the end of a list.
	Null cell.I
)

// T (pair) is a cons cell.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Equal returns true if c is a pair with elements that are equal to p's.
// Equal does not terminate for circular structures.
func (p *pair) Equal(c cell.I) bool {
	if p == c {
		return true
	}

	o, ok := c.(*pair)
	if !ok || p == Null || o == Null {
		return false
	}

	return p.car.Equal(o.car) && p.cdr.Equal(o.cdr)
}

// Literal returns the written representation of the pair p.
func (p *pair) Literal() string {
	return Write(p, false)
}

// Name returns the name for a pair type.
func (p *pair) Name() string {
	if p == Null {
		return "null"
	}

	return name
}

// String returns the displayed representation of the pair p.
func (p *pair) String() string {
	return Write(p, true)
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// If c is not a pair, this function will panic.
func Car(c cell.I) cell.I {
	return To(c).car
}

// Cdr returns the cdr/tail/rest member of the pair c.
// If c is not a pair, this function will panic.
func Cdr(c cell.I) cell.I {
	return To(c).cdr
}

// Caar returns the car of the car of the pair c.
func Caar(c cell.I) cell.I {
	return Car(Car(c))
}

// Cadr returns the car of the cdr of the pair c.
func Cadr(c cell.I) cell.I {
	return Car(Cdr(c))
}

// Cdar returns the cdr of the car of the pair c.
func Cdar(c cell.I) cell.I {
	return Cdr(Car(c))
}

// Cddr returns the cdr of the cdr of the pair c.
func Cddr(c cell.I) cell.I {
	return Cdr(Cdr(c))
}

// Caddr returns the car of the cdr of the cdr of the pair c.
func Caddr(c cell.I) cell.I {
	return Car(Cdr(Cdr(c)))
}

// Cons conses h and t together to form a new pair.
func Cons(h, t cell.I) cell.I {
	return &pair{car: h, cdr: t}
}

// Is returns true if c is a pair or the empty list.
func Is(c cell.I) bool {
	_, ok := c.(*pair)

	return ok
}

// IsPair returns true if c is a pair. The empty list is not a pair.
func IsPair(c cell.I) bool {
	return c != Null && Is(c)
}

// SetCar sets the car/head/first of the pair c to value.
// If c is not a pair, this function will panic.
func SetCar(c, value cell.I) {
	To(c).car = value
}

// SetCdr sets the cdr/tail/rest of the pair c to value.
// If c is not a pair, this function will panic.
func SetCdr(c, value cell.I) {
	To(c).cdr = value
}

// To returns a pair if c is a non-empty pair; Otherwise it panics.
func To(c cell.I) *pair {
	if p, ok := c.(*pair); ok && p != Null {
		return p
	}

	panic(condition.New(condition.WrongType, "not a pair", c))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a literal representation.
	_ = literal.I(&t)

	// The pair type is a stringer.
	_ = fmt.Stringer(&t)
}

func init() { //nolint:gochecknoinits
	pair := &pair{}
	pair.car = pair
	pair.cdr = pair

	Null = cell.I(pair)
}
