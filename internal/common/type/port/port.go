// Released under an MIT license. See LICENSE.

// Package port provides tern's input and output ports.
package port

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/type/char"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/eof"
	"github.com/michaelmacinnis/tern/internal/common/type/str"
)

const name = "port"

// Reader reads data, one datum at a time.
type Reader interface {
	Read() (cell.I, error)
}

// T (port) is a source of characters, a sink for characters, or both.
type T struct {
	sync.Mutex

	c      io.Closer
	label  string
	closed bool
	forms  Reader
	fresh  bool
	r      *bufio.Reader
	sb     *strings.Builder
	w      io.Writer
}

type port = T

// NewInput creates an input port that reads from r.
func NewInput(label string, r io.Reader) *port {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	c, _ := r.(io.Closer)

	return &port{c: c, fresh: true, label: label, r: br}
}

// NewOutput creates an output port that writes to w.
func NewOutput(label string, w io.Writer) *port {
	c, _ := w.(io.Closer)

	return &port{c: c, fresh: true, label: label, w: w}
}

// NewStringInput creates an input port that reads the characters in s.
func NewStringInput(s string) *port {
	return NewInput("string", strings.NewReader(s))
}

// NewStringOutput creates an output port that accumulates characters.
func NewStringOutput() *port {
	sb := &strings.Builder{}

	return &port{fresh: true, label: "string", sb: sb, w: sb}
}

// Close closes the port p.
func (p *port) Close() {
	p.Lock()
	defer p.Unlock()

	if p.closed {
		return
	}

	p.closed = true

	if p.c != nil {
		_ = p.c.Close()
	}
}

// Equal returns true if c is the same port.
func (p *port) Equal(c cell.I) bool {
	return cell.I(p) == c
}

// Forms returns the datum reader for p, creating it with mk if needed.
func (p *port) Forms(mk func(label string, rs io.RuneScanner) Reader) Reader {
	p.Lock()
	defer p.Unlock()

	if p.forms == nil {
		p.forms = mk(p.label, p.input())
	}

	return p.forms
}

// Fresh returns true if nothing has been written to p or the last thing
// written ended a line.
func (p *port) Fresh() bool {
	p.Lock()
	defer p.Unlock()

	return p.fresh
}

// Input returns true if p can be read.
func (p *port) Input() bool {
	return p.r != nil
}

// Literal returns the written representation of p.
func (p *port) Literal() string {
	kind := "output"
	if p.Input() {
		kind = "input"
	}

	return "#[" + kind + "-port " + p.label + "]"
}

// Name returns the name of the port type.
func (p *port) Name() string {
	return name
}

// Output returns true if p can be written.
func (p *port) Output() bool {
	return p.w != nil
}

// PeekChar returns the next character without consuming it.
func (p *port) PeekChar() cell.I {
	p.Lock()
	defer p.Unlock()

	r, _, err := p.input().ReadRune()
	if err != nil {
		return p.eof(err)
	}

	_ = p.r.UnreadRune()

	return char.New(r)
}

// ReadChar consumes and returns the next character.
func (p *port) ReadChar() cell.I {
	p.Lock()
	defer p.Unlock()

	r, _, err := p.input().ReadRune()
	if err != nil {
		return p.eof(err)
	}

	return char.New(r)
}

// ReadLine returns the characters up to the next newline.
func (p *port) ReadLine() cell.I {
	p.Lock()
	defer p.Unlock()

	s, err := p.input().ReadString('\n')
	if err != nil && (s == "" || !errors.Is(err, io.EOF)) {
		return p.eof(err)
	}

	return str.New(strings.TrimSuffix(strings.TrimSuffix(s, "\n"), "\r"))
}

// Ready returns true if a character is available without blocking.
func (p *port) Ready() bool {
	p.Lock()
	defer p.Unlock()

	return p.input().Buffered() > 0
}

// Contents returns the accumulated output of a string output port.
func (p *port) Contents() string {
	if p.sb == nil {
		panic(condition.New(condition.WrongType, "not a string output port", p))
	}

	p.Lock()
	defer p.Unlock()

	return p.sb.String()
}

// Write writes s to p.
func (p *port) Write(s string) {
	p.Lock()
	defer p.Unlock()

	if p.w == nil || p.closed {
		panic(condition.New(condition.WrongType, "not an open output port", p))
	}

	if s == "" {
		return
	}

	p.fresh = strings.HasSuffix(s, "\n")

	if _, err := io.WriteString(p.w, s); err != nil {
		panic(condition.Wrap(condition.Internal, err, p))
	}

	if f, ok := p.w.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}

func (p *port) eof(err error) cell.I {
	if errors.Is(err, io.EOF) {
		return eof.Object
	}

	panic(condition.Wrap(condition.Internal, err, p))
}

func (p *port) input() *bufio.Reader {
	if p.r == nil || p.closed {
		panic(condition.New(condition.WrongType, "not an open input port", p))
	}

	return p.r
}

// Functions specific to port.

// To returns a port if c is a port; Otherwise it panics.
func To(c cell.I) *port {
	if t, ok := c.(*port); ok {
		return t
	}

	panic(condition.New(condition.WrongType, "not a port", c))
}
