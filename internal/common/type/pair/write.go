// Released under an MIT license. See LICENSE.

package pair

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/literal"
)

// Sequence is implemented by compound values, other than pairs, that the
// printer must traverse.
type Sequence interface {
	cell.I

	Elements() []cell.I
	Prefix() string
}

type writer struct {
	strings.Builder

	display bool
	labels  map[cell.I]int
	next    int
}

// Write returns the external representation of c. Circular structure is
// written using datum labels. When display is true strings and characters
// are written without quotes.
func Write(c cell.I, display bool) string {
	w := &writer{display: display, labels: map[cell.I]int{}}

	w.scan(c, map[cell.I]bool{}, map[cell.I]bool{})
	w.write(c)

	return w.String()
}

func compound(c cell.I) bool {
	switch c := c.(type) {
	case *pair:
		return c != Null
	case Sequence:
		return true
	}

	return false
}

func children(c cell.I) []cell.I {
	switch c := c.(type) {
	case *pair:
		return []cell.I{c.car, c.cdr}
	case Sequence:
		return c.Elements()
	}

	return nil
}

// scan marks each compound value that is reachable from itself.
func (w *writer) scan(c cell.I, active, seen map[cell.I]bool) {
	if !compound(c) {
		return
	}

	if active[c] {
		w.labels[c] = -1

		return
	}

	if seen[c] {
		return
	}

	seen[c] = true
	active[c] = true

	for _, e := range children(c) {
		w.scan(e, active, seen)
	}

	active[c] = false
}

// label writes a label definition or reference for c. It returns true if
// c has already been written.
func (w *writer) label(c cell.I) bool {
	n, ok := w.labels[c]
	if !ok {
		return false
	}

	if n >= 0 {
		w.WriteString("#" + strconv.Itoa(n) + "#")

		return true
	}

	n = w.next
	w.next++
	w.labels[c] = n

	w.WriteString("#" + strconv.Itoa(n) + "=")

	return false
}

func (w *writer) write(c cell.I) {
	if w.label(c) {
		return
	}

	switch v := c.(type) {
	case *pair:
		if v == Null {
			w.WriteString("()")

			return
		}

		w.list(v)

	case Sequence:
		w.WriteString(v.Prefix() + "(")

		for i, e := range v.Elements() {
			if i > 0 {
				w.WriteByte(' ')
			}

			w.write(e)
		}

		w.WriteByte(')')

	default:
		w.atom(c)
	}
}

func (w *writer) list(p *pair) {
	if s, ok := abbreviation(p.car); ok && IsPair(p.cdr) {
		if rest := To(p.cdr); rest.cdr == Null && !w.labelled(rest) {
			w.WriteString(s)
			w.write(rest.car)

			return
		}
	}

	w.WriteByte('(')
	w.write(p.car)

	var tail cell.I = p.cdr

	for tail != Null {
		next, ok := tail.(*pair)
		if !ok || w.labelled(next) {
			w.WriteString(" . ")
			w.write(tail)

			break
		}

		w.WriteByte(' ')
		w.write(next.car)

		tail = next.cdr
	}

	w.WriteByte(')')
}

func (w *writer) labelled(c cell.I) bool {
	_, ok := w.labels[c]

	return ok
}

func (w *writer) atom(c cell.I) {
	if c == nil {
		w.WriteString("#<nil>")

		return
	}

	if w.display {
		if s, ok := c.(fmt.Stringer); ok {
			w.WriteString(s.String())

			return
		}
	}

	w.WriteString(literal.String(c))
}

func abbreviation(c cell.I) (string, bool) {
	if c == nil || c.Name() != "symbol" {
		return "", false
	}

	s, ok := abbreviations[literal.String(c)]

	return s, ok
}

//nolint:gochecknoglobals
var abbreviations = map[string]string{
	"quote":            "'",
	"quasiquote":       "`",
	"unquote":          ",",
	"unquote-splicing": ",@",
}
