// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for tern's data syntax.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/struct/token"
	"github.com/michaelmacinnis/tern/internal/common/type/boolean"
	"github.com/michaelmacinnis/tern/internal/common/type/char"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/eof"
	"github.com/michaelmacinnis/tern/internal/common/type/list"
	"github.com/michaelmacinnis/tern/internal/common/type/num"
	"github.com/michaelmacinnis/tern/internal/common/type/pair"
	"github.com/michaelmacinnis/tern/internal/common/type/str"
	"github.com/michaelmacinnis/tern/internal/common/type/sym"
	"github.com/michaelmacinnis/tern/internal/common/type/vector"
	"github.com/michaelmacinnis/tern/internal/common/type/void"
)

// ErrUnexpectedEOF is wrapped by conditions for input that ends mid-datum.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// T holds the state of the parser.
type T struct {
	ahead  *token.T                 // Token lookahead.
	item   func() (*token.T, error) // Function to call to get another token.
	labels map[string]cell.I        // Datum labels seen in the current datum.
}

// New creates a new parser that consumes tokens produced by item.
func New(item func() (*token.T, error)) *T {
	return &T{item: item}
}

// Parse returns the next datum. At the end of input it returns the eof object.
// Errors are returned as conditions.
func (p *T) Parse() (c cell.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		c = nil
		p.ahead = nil

		switch r := r.(type) {
		case *condition.T:
			err = r
		case error:
			err = condition.Wrap(condition.ReaderSyntax, r)
		default:
			err = condition.New(condition.ReaderSyntax, fmt.Sprintf("%v", r))
		}
	}()

	p.labels = nil

	for p.peek().Is(token.DatumComment) {
		p.consume()
		p.datum()
	}

	if p.peek().Is(token.EOF) {
		return eof.Object, nil
	}

	return p.datum(), nil
}

func (p *T) consume() *token.T {
	t := p.peek()

	p.ahead = nil

	return t
}

func (p *T) peek() *token.T {
	if p.ahead == nil {
		t, err := p.item()
		if err != nil {
			panic(condition.Wrap(condition.ReaderSyntax, err))
		}

		p.ahead = t
	}

	return p.ahead
}

func (p *T) invalid(t *token.T, what string) {
	s := t.Source()

	panic(condition.New(
		condition.ReaderSyntax,
		s.String()+": invalid "+what+" '"+t.Value()+"'",
	))
}

func (p *T) unexpected(t *token.T) {
	if t.Is(token.EOF) {
		panic(condition.Wrap(condition.ReaderSyntax, ErrUnexpectedEOF))
	}

	s := t.Source()

	panic(condition.New(
		condition.ReaderSyntax,
		s.String()+": unexpected '"+t.Value()+"'",
	))
}

// Grammar.

func (p *T) datum() cell.I {
	t := p.consume()

	switch t.Class() {
	case token.Atom:
		if label, ok := definition(t.Value()); ok {
			return p.define(label)
		}

		return p.atom(t)
	case token.Char:
		c, ok := char.Parse(t.Value()[2:])
		if !ok {
			p.invalid(t, "character")
		}

		return c
	case token.DatumComment:
		p.datum()

		return p.datum()
	case token.Directive:
		return directive(t.Value())
	case token.Open:
		return p.sequence(true)
	case token.Quasiquote:
		return list.New(sym.New("quasiquote"), p.datum())
	case token.Quote:
		return list.New(sym.New("quote"), p.datum())
	case token.String:
		v := t.Value()

		return str.New(p.unescape(t, v[1:len(v)-1]))
	case token.Unquote:
		return list.New(sym.New("unquote"), p.datum())
	case token.UnquoteSplicing:
		return list.New(sym.New("unquote-splicing"), p.datum())
	case token.VectorOpen:
		return vector.New(list.ToSlice(p.sequence(false)))
	}

	p.unexpected(t)

	return nil
}

func (p *T) sequence(dotted bool) cell.I {
	var elements []cell.I

	for {
		t := p.peek()

		switch {
		case t.Is(token.Close):
			p.consume()

			return list.New(elements...)
		case t.Is(token.Dot) && dotted && len(elements) > 0:
			p.consume()

			tail := p.datum()

			for p.peek().Is(token.DatumComment) {
				p.consume()
				p.datum()
			}

			if !p.peek().Is(token.Close) {
				p.unexpected(p.peek())
			}

			p.consume()

			return list.FromSlice(elements, tail)
		case t.Is(token.DatumComment):
			p.consume()
			p.datum()
		case t.Is(token.EOF, token.Dot):
			p.unexpected(t)
		default:
			elements = append(elements, p.datum())
		}
	}
}

func (p *T) atom(t *token.T) cell.I {
	v := t.Value()

	switch v {
	case "#t", "#true":
		return boolean.True
	case "#f", "#false":
		return boolean.False
	}

	if label, ok := reference(v); ok {
		c, ok := p.labels[label]
		if !ok {
			p.invalid(t, "datum label")
		}

		return c
	}

	if n, ok := num.Parse(v); ok {
		return n
	}

	if strings.HasPrefix(v, "#") {
		p.invalid(t, "syntax")
	}

	if strings.ContainsRune(v, '|') {
		return sym.New(p.unescape(t, v))
	}

	return sym.New(v)
}

func (p *T) define(label string) cell.I {
	if p.labels == nil {
		p.labels = map[string]cell.I{}
	}

	placeholder := &pending{}
	p.labels[label] = placeholder

	c := p.datum()
	p.labels[label] = c

	return patch(c, placeholder, c, map[cell.I]bool{})
}

// unescape converts escapes to the characters they represent and drops
// the bars used to quote symbols.
func (p *T) unescape(t *token.T, v string) string {
	if !strings.ContainsAny(v, `\|`) {
		return v
	}

	var b strings.Builder

	for _, s := range split(v) {
		switch {
		case s == "|":
		case !strings.HasPrefix(s, `\`):
			b.WriteString(s)
		case s == `\|`:
			b.WriteByte('|')
		case strings.HasPrefix(s, `\x`) && strings.HasSuffix(s, ";"):
			n, err := strconv.ParseUint(s[2:len(s)-1], 16, 32)
			if err != nil {
				p.invalid(t, "escape")
			}

			b.WriteRune(rune(n))
		case strings.TrimLeft(s[1:], " \t\r\n") == "":
			// Line continuation.
		default:
			r, err := adapted.ActualBytes(s)
			if err != nil {
				p.invalid(t, "escape")
			}

			b.WriteString(r)
		}
	}

	return b.String()
}

// split splits s into plain runs, single bars, and escape sequences.
func split(s string) []string {
	var parts []string

	runes := []rune(s)
	start := 0

	flush := func(i int) {
		if i > start {
			parts = append(parts, string(runes[start:i]))
		}
	}

	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '|':
			flush(i)

			parts = append(parts, "|")
			start = i + 1
		case '\\':
			flush(i)

			j := i + 1

			switch {
			case j < len(runes) && runes[j] == 'x':
				for j < len(runes) && runes[j] != ';' {
					j++
				}
			case j < len(runes) && unicode.IsSpace(runes[j]):
				for j < len(runes) && runes[j] != '\n' {
					j++
				}

				for j+1 < len(runes) && (runes[j+1] == ' ' || runes[j+1] == '\t') {
					j++
				}
			}

			if j >= len(runes) {
				j = len(runes) - 1
			}

			parts = append(parts, string(runes[i:j+1]))
			i = j
			start = j + 1
		}
	}

	flush(len(runes))

	return parts
}

func definition(v string) (string, bool) {
	if len(v) > 2 && v[0] == '#' && strings.HasSuffix(v, "=") && digits(v[1:len(v)-1]) {
		return v[1 : len(v)-1], true
	}

	return "", false
}

func digits(s string) bool {
	return strings.Trim(s, "0123456789") == ""
}

func directive(v string) cell.I {
	switch v {
	case "#!default":
		return void.Default
	case "#!eof":
		return eof.Object
	case "#!unspecific":
		return void.Value
	}

	return sym.New(v)
}

func reference(v string) (string, bool) {
	if len(v) > 2 && v[0] == '#' && strings.HasSuffix(v, "#") && digits(v[1:len(v)-1]) {
		return v[1 : len(v)-1], true
	}

	return "", false
}

// pending stands in for a labelled datum that is still being read.
type pending struct{}

func (p *pending) Equal(c cell.I) bool {
	return cell.I(p) == c
}

func (p *pending) Name() string {
	return "pending"
}

func patch(c, placeholder, actual cell.I, seen map[cell.I]bool) cell.I {
	if c == placeholder {
		return actual
	}

	if seen[c] {
		return c
	}

	switch t := c.(type) {
	case *pair.T:
		if c == pair.Null {
			return c
		}

		seen[c] = true

		pair.SetCar(t, patch(pair.Car(t), placeholder, actual, seen))
		pair.SetCdr(t, patch(pair.Cdr(t), placeholder, actual, seen))
	case *vector.T:
		seen[c] = true

		for i, e := range t.Elements() {
			t.Set(int64(i), patch(e, placeholder, actual, seen))
		}
	}

	return c
}
