// Released under an MIT license. See LICENSE.

// Package tern embeds the tern interpreter in a Go program.
//
// An Engine is a session with its own global environment. Go values cross
// into the guest with Wrap and come back out with Unwrap. Bindings gives a
// map-like view of an environment so a host can exchange values with
// scripts without writing any tern code.
package tern

import (
	"io"
	"strings"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/scope"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/list"
	"github.com/michaelmacinnis/tern/internal/common/type/sym"
	"github.com/michaelmacinnis/tern/internal/engine"
	"github.com/michaelmacinnis/tern/internal/engine/task"
	"github.com/michaelmacinnis/tern/internal/reader"
)

// Value is any tern value.
type Value = cell.I

// Environment is a tern environment.
type Environment = scope.I

// Condition is the error type returned when evaluation fails.
type Condition = condition.T

// Option configures an engine.
type Option = engine.Option

// Options for New.
var (
	WithError  = engine.WithError
	WithInput  = engine.WithInput
	WithOutput = engine.WithOutput
)

// Engine is an embedded tern session.
type Engine struct {
	*engine.Context
}

// New creates an engine with a freshly booted global environment.
func New(opts ...Option) (*Engine, error) {
	c, err := engine.New(opts...)
	if err != nil {
		return nil, err
	}

	return &Engine{Context: c}, nil
}

// Bindings returns a view of the engine's global environment.
func (e *Engine) Bindings() *Bindings {
	return NewBindings(e.Environment())
}

// Call applies the procedure bound to name, in the global environment, to
// args and returns the unwrapped result.
func (e *Engine) Call(name string, args ...any) (any, error) {
	elements := []cell.I{sym.New(name)}
	for _, a := range args {
		elements = append(elements, task.Quote(Wrap(a)))
	}

	v, err := e.Eval(list.New(elements...), nil)
	if err != nil {
		return nil, err
	}

	return Unwrap(v), nil
}

// Run evaluates every form in src and returns the unwrapped value of the
// last one.
func (e *Engine) Run(src string) (any, error) {
	v, err := e.EvalString(src)
	if err != nil {
		return nil, err
	}

	return Unwrap(v), nil
}

// Read returns the first form in src without evaluating it.
func Read(src string) (Value, error) {
	return reader.New("string", strings.NewReader(src)).Read()
}

// ReadAll returns every form read from r.
func ReadAll(label string, r io.Reader) ([]Value, error) {
	var forms []Value

	rd := reader.New(label, r)

	for {
		c, err := rd.Read()
		if err != nil {
			return nil, err
		}

		if IsEOF(c) {
			return forms, nil
		}

		forms = append(forms, c)
	}
}

// ExitCode returns the status requested by a call to exit if err is the
// result of one.
func ExitCode(err error) (int, bool) {
	return engine.ExitCode(err)
}
