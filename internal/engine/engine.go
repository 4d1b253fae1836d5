// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed tern code.
package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/scope"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/env"
	"github.com/michaelmacinnis/tern/internal/common/type/eof"
	"github.com/michaelmacinnis/tern/internal/common/type/port"
	"github.com/michaelmacinnis/tern/internal/common/type/void"
	"github.com/michaelmacinnis/tern/internal/engine/boot"
	"github.com/michaelmacinnis/tern/internal/engine/task"
	"github.com/michaelmacinnis/tern/internal/reader"
)

// Context is a tern session. It owns a global environment and the ports
// that guest code reads and writes. A context evaluates one expression at
// a time. Separate contexts can be used from separate goroutines.
type Context struct {
	errors *port.T
	global scope.I
	id     uuid.UUID
	input  *port.T
	logger atomic.Pointer[slog.Logger]
	output *port.T
	trace  io.Writer

	sync.Mutex
	current *task.T
	pending cell.I
}

// Option configures a context.
type Option func(*Context)

// WithError sets the writer used for the error port and for trace records.
func WithError(w io.Writer) Option {
	return func(c *Context) {
		c.errors = port.NewOutput("stderr", w)
		c.trace = w
	}
}

// WithInput sets the reader used for the input port.
func WithInput(r io.Reader) Option {
	return func(c *Context) {
		c.input = port.NewInput("stdin", r)
	}
}

// WithOutput sets the writer used for the output port.
func WithOutput(w io.Writer) Option {
	return func(c *Context) {
		c.output = port.NewOutput("stdout", w)
	}
}

// New creates a context and evaluates the boot script in its global
// environment.
func New(opts ...Option) (*Context, error) {
	c := &Context{
		errors: port.NewOutput("stderr", os.Stderr),
		id:     uuid.New(),
		input:  port.NewInput("stdin", os.Stdin),
		output: port.NewOutput("stdout", os.Stdout),
		trace:  os.Stderr,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.global = env.New(nil)

	task.Actions(c.global)

	c.global.Define("system-global-environment", c.global)
	c.global.Define("user-initial-environment", c.global)

	if err := c.Load(strings.NewReader(boot.Script()), c.global); err != nil {
		return nil, fmt.Errorf("boot: %w", err)
	}

	return c, nil
}

// ClearPendingContinuation forgets an interrupted continuation invocation.
// It returns true if there was one.
func (c *Context) ClearPendingContinuation() bool {
	c.Lock()
	defer c.Unlock()

	pending := c.pending != nil
	c.pending = nil

	return pending
}

// Environment returns the context's global environment.
func (c *Context) Environment() scope.I {
	return c.global
}

// Errors returns the context's error port.
func (c *Context) Errors() *port.T {
	return c.errors
}

// Eval evaluates expr in the environment e. A nil environment means the
// global environment.
func (c *Context) Eval(expr cell.I, e scope.I) (cell.I, error) {
	if e == nil {
		e = c.global
	}

	t := task.New(c, expr, e)

	c.Lock()
	c.current = t
	c.Unlock()

	defer func() {
		c.Lock()
		c.current = nil
		c.Unlock()
	}()

	return t.Run()
}

// EvalReader reads exactly one form from r and evaluates it.
func (c *Context) EvalReader(r io.Reader) (cell.I, error) {
	expr, err := reader.New("input", r).Read()
	if err != nil {
		return nil, err
	}

	if expr == eof.Object {
		return eof.Object, nil
	}

	return c.Eval(expr, nil)
}

// EvalString evaluates every form in s and returns the value of the last.
func (c *Context) EvalString(s string) (cell.I, error) {
	return c.eval(reader.New("string", strings.NewReader(s)), c.global)
}

// Global returns the environment used by interaction-environment.
func (c *Context) Global() scope.I {
	return c.global
}

// ID returns the context's session identifier.
func (c *Context) ID() string {
	return c.id.String()
}

// Input returns the context's input port.
func (c *Context) Input() *port.T {
	return c.input
}

// Interrupt stops the expression currently being evaluated, if any.
func (c *Context) Interrupt() {
	c.Lock()
	defer c.Unlock()

	if c.current != nil {
		c.current.Interrupt()
	}
}

// Jumping records that the continuation k is being invoked.
func (c *Context) Jumping(k cell.I) {
	c.Lock()
	defer c.Unlock()

	c.pending = k
}

// Landed records that the pending continuation invocation completed.
func (c *Context) Landed() {
	c.Lock()
	defer c.Unlock()

	c.pending = nil
}

// Load evaluates every form read from r in the environment e.
func (c *Context) Load(r io.Reader, e scope.I) error {
	label := "input"
	if n, ok := r.(interface{ Name() string }); ok {
		label = n.Name()
	}

	_, err := c.eval(reader.New(label, r), e)

	return err
}

// Logger returns the trace logger or nil when tracing is off.
func (c *Context) Logger() *slog.Logger {
	return c.logger.Load()
}

// Output returns the context's output port.
func (c *Context) Output() *port.T {
	return c.output
}

// TraceOff stops tracing.
func (c *Context) TraceOff() {
	c.logger.Store(nil)
}

// TraceOn starts emitting a structured record for each step of evaluation.
func (c *Context) TraceOn() {
	h := slog.NewTextHandler(c.trace, &slog.HandlerOptions{Level: slog.LevelDebug})

	c.logger.Store(slog.New(h).With(slog.String("session", c.ID())))
}

// Tracing returns true if tracing is on.
func (c *Context) Tracing() bool {
	return c.Logger() != nil
}

func (c *Context) eval(r *reader.T, e scope.I) (cell.I, error) {
	result := void.Value

	for {
		expr, err := r.Read()
		if err != nil {
			return nil, err
		}

		if expr == eof.Object {
			return result, nil
		}

		result, err = c.Eval(expr, e)
		if err != nil {
			return nil, err
		}
	}
}

// ExitCode returns the status requested by a call to exit if err is the
// result of one.
func ExitCode(err error) (int, bool) {
	var c *condition.T
	if !errors.As(err, &c) {
		return 0, false
	}

	return c.ExitCode()
}
