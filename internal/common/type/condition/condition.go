// Released under an MIT license. See LICENSE.

// Package condition provides tern's error and condition type.
//
// A condition is both a Go error, returned to the embedder when nothing
// in the guest handles it, and a first-class value that guest handlers
// receive.
package condition

import (
	"fmt"
	"strings"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/literal"
)

// Kind classifies a condition.
type Kind int

// Condition kinds.
const (
	Internal Kind = iota
	UnboundVariable
	WrongType
	WrongArity
	NonProcedure
	UserRaised
	ReaderSyntax
	Abort
)

var kinds = [...]string{
	Internal:        "internal-error",
	UnboundVariable: "unbound-variable",
	WrongType:       "wrong-type-argument",
	WrongArity:      "wrong-number-of-arguments",
	NonProcedure:    "inapplicable-object",
	UserRaised:      "simple-error",
	ReaderSyntax:    "parse-error",
	Abort:           "abort",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kinds) {
		return "unknown"
	}

	return kinds[k]
}

// T (condition) describes something that went wrong.
type T struct {
	Kind      Kind
	Message   string
	Irritants []cell.I

	cause   error
	code    int
	payload cell.I
}

type condition = T

// New creates a condition of kind k.
func New(k Kind, msg string, irritants ...cell.I) *condition {
	return &condition{Kind: k, Message: msg, Irritants: irritants}
}

// Exit creates the condition used to stop evaluation with an exit status.
func Exit(code int) *condition {
	return &condition{Kind: Abort, Message: "exit", code: code}
}

// Raise wraps an arbitrary guest value raised with raise.
func Raise(payload cell.I) *condition {
	return &condition{
		Kind:      UserRaised,
		Message:   "non-condition object signalled",
		Irritants: []cell.I{payload},
		payload:   payload,
	}
}

// Wrap creates a condition of kind k for the Go error err.
func Wrap(k Kind, err error, irritants ...cell.I) *condition {
	return &condition{Kind: k, Message: err.Error(), Irritants: irritants, cause: err}
}

// From converts a recovered panic value into a condition.
func From(r interface{}) *condition {
	switch r := r.(type) {
	case *condition:
		return r
	case error:
		return Wrap(Internal, r)
	case string:
		return New(Internal, r)
	}

	return New(Internal, fmt.Sprintf("%v", r))
}

// Is returns true if c is a condition.
func Is(c cell.I) bool {
	_, ok := c.(*condition)

	return ok
}

// To returns a condition if c is a condition; Otherwise it panics.
func To(c cell.I) *condition {
	if t, ok := c.(*condition); ok {
		return t
	}

	panic(New(WrongType, "not a condition", c))
}

// Equal returns true if c is the same condition.
func (c *condition) Equal(o cell.I) bool {
	return c == o
}

// Error returns the condition's report string.
func (c *condition) Error() string {
	var b strings.Builder

	b.WriteString(c.Message)

	for _, i := range c.Irritants {
		b.WriteByte(' ')
		b.WriteString(literal.String(i))
	}

	return b.String()
}

// ExitCode returns the requested exit status and true if c is an exit request.
func (c *condition) ExitCode() (int, bool) {
	if c.Kind != Abort || c.Message != "exit" {
		return 0, false
	}

	return c.code, true
}

// Literal returns the written representation of the condition.
func (c *condition) Literal() string {
	return "#[condition " + c.Kind.String() + " " + c.Error() + "]"
}

// Name returns the name of the condition type.
func (c *condition) Name() string {
	return "condition"
}

// Payload is the value a guest handler receives.
func (c *condition) Payload() cell.I {
	if c.payload != nil {
		return c.payload
	}

	return c
}

// Unwrap returns the Go error that caused this condition, if any.
func (c *condition) Unwrap() error {
	return c.cause
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t condition

	// The condition type is a cell.
	_ = cell.I(&t)

	// The condition type is an error.
	_ = error(&t)

	// The condition type has a literal representation.
	_ = literal.I(&t)
}
