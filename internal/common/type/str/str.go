// Released under an MIT license. See LICENSE.

// Package str provides tern's mutable string type.
package str

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/literal"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
)

const name = "string"

// T (str) is a mutable sequence of characters.
type T struct {
	sync.RWMutex
	r []rune
}

type str = T

// New creates a new str cell.
func New(v string) *str {
	return &str{r: []rune(v)}
}

// Runes creates a new str cell that holds r.
func Runes(r []rune) *str {
	return &str{r: r}
}

// Equal returns true if the cell c holds the same characters.
func (s *str) Equal(c cell.I) bool {
	o, ok := c.(*str)

	return ok && (s == o || s.String() == o.String())
}

// Len returns the number of characters in s.
func (s *str) Len() int {
	s.RLock()
	defer s.RUnlock()

	return len(s.r)
}

// Literal returns the written representation of the str s.
func (s *str) Literal() string {
	return Quote(s.String())
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// Ref returns the character at index i.
func (s *str) Ref(i int64) rune {
	s.RLock()
	defer s.RUnlock()

	if i < 0 || i >= int64(len(s.r)) {
		panic(condition.New(condition.WrongType, "string index out of range", s))
	}

	return s.r[i]
}

// Runes returns a copy of the characters in s.
func (s *str) Runes() []rune {
	s.RLock()
	defer s.RUnlock()

	return append([]rune(nil), s.r...)
}

// Set replaces the character at index i.
func (s *str) Set(i int64, r rune) {
	s.Lock()
	defer s.Unlock()

	if i < 0 || i >= int64(len(s.r)) {
		panic(condition.New(condition.WrongType, "string index out of range", s))
	}

	s.r[i] = r
}

// String returns the text of the str s.
func (s *str) String() string {
	s.RLock()
	defer s.RUnlock()

	return string(s.r)
}

// Functions specific to str.

// Is returns true if c is a str.
func Is(c cell.I) bool {
	_, ok := c.(*str)

	return ok
}

// To returns a str if c is a str; Otherwise it panics.
func To(c cell.I) *str {
	if t, ok := c.(*str); ok {
		return t
	}

	panic(condition.New(condition.WrongType, "not a string", c))
}

// Quote returns s as a string literal that the reader will accept.
func Quote(s string) string {
	var b strings.Builder

	b.WriteByte('"')

	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < ' ' || r == 0x7f {
				b.WriteString(`\x` + strconv.FormatInt(int64(r), 16) + ";")
			} else {
				b.WriteRune(r)
			}
		}
	}

	b.WriteByte('"')

	return b.String()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)

	// The str type is a stringer.
	_ = fmt.Stringer(&t)
}
