// Released under an MIT license. See LICENSE.

package task

import (
	"fmt"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/scope"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/env"
	"github.com/michaelmacinnis/tern/internal/common/type/list"
	"github.com/michaelmacinnis/tern/internal/common/type/pair"
	"github.com/michaelmacinnis/tern/internal/common/type/sym"
	"github.com/michaelmacinnis/tern/internal/common/type/void"
)

// Closure is tern's user-defined procedure type.
type Closure struct {
	Body cell.I // Body of the routine.
	Labels
	Scope scope.I // Environment where the routine was created.

	name string
}

// Labels hold the parameter names for a user-defined routine.
type Labels struct {
	Optional []string // Bound to #!default when not supplied.
	Required []string
	Rest     string // Bound to a list of any remaining arguments.
}

// NewClosure creates a closure from a lambda list and body.
func NewClosure(name string, params, body cell.I, s scope.I) *Closure {
	return &Closure{
		Body:   body,
		Labels: parseLabels(params),
		Scope:  s,
		name:   name,
	}
}

// Equal returns true if c is the same closure.
func (c *Closure) Equal(o cell.I) bool {
	return cell.I(c) == o
}

// Execute binds the arguments in t.code and evaluates the closure's body.
func (c *Closure) Execute(t *T) Op {
	e := env.New(c.Scope)

	c.bind(e, t.code)

	t.ReplaceOp(&registers{env: t.env})

	t.code = c.Body
	t.env = e

	return t.PushOp(Action(evalBody))
}

// Literal returns the written representation of the closure c.
func (c *Closure) Literal() string {
	if c.name == "" {
		return "#[compound-procedure anonymous]"
	}

	return "#[compound-procedure " + c.name + "]"
}

// Name returns the name of the closure type.
func (c *Closure) Name() string {
	return "compound-procedure"
}

// Named gives an anonymous closure the name n.
func (c *Closure) Named(n string) {
	if c.name == "" {
		c.name = n
	}
}

func (c *Closure) bind(e scope.I, args cell.I) {
	supplied := int(list.Length(args))

	if supplied < len(c.Required) ||
		(c.Rest == "" && supplied > len(c.Required)+len(c.Optional)) {
		panic(condition.New(
			condition.WrongArity,
			fmt.Sprintf("%s has been called with %d arguments; it requires %s",
				c.Literal(), supplied, c.arity()),
		))
	}

	for _, k := range c.Required {
		e.Define(k, pair.Car(args))

		args = pair.Cdr(args)
	}

	for _, k := range c.Optional {
		if args == pair.Null {
			e.Define(k, void.Default)

			continue
		}

		e.Define(k, pair.Car(args))

		args = pair.Cdr(args)
	}

	if c.Rest != "" {
		e.Define(c.Rest, args)
	}
}

func (c *Closure) arity() string {
	n := len(c.Required)

	switch {
	case c.Rest != "":
		return fmt.Sprintf("at least %d", n)
	case len(c.Optional) > 0:
		return fmt.Sprintf("between %d and %d", n, n+len(c.Optional))
	}

	return fmt.Sprintf("exactly %d", n)
}

func parseLabels(params cell.I) Labels {
	l := Labels{}

	optional := false

	for ; pair.IsPair(params); params = pair.Cdr(params) {
		p := sym.To(pair.Car(params))

		switch {
		case sym.Named(p, "#!optional"):
			optional = true
		case sym.Named(p, "#!rest"):
			l.Rest = sym.To(pair.Cadr(params)).String()

			return l
		case optional:
			l.Optional = append(l.Optional, p.String())
		default:
			l.Required = append(l.Required, p.String())
		}
	}

	if params != pair.Null {
		l.Rest = sym.To(params).String()
	}

	return l
}

var _ command = &Closure{}
