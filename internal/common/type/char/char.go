// Released under an MIT license. See LICENSE.

// Package char provides tern's character type.
package char

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/literal"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
)

const name = "char"

// T (char) wraps Go's rune type.
type T rune

type char = T

// New creates a new char cell.
func New(r rune) *char {
	c := char(r)

	return &c
}

// Parse reads the text following #\ in a character literal.
func Parse(s string) (*char, bool) {
	if r, ok := names[strings.ToLower(s)]; ok {
		return New(r), true
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return New(runes[0]), true
	}

	if len(s) > 1 && (s[0] == 'x' || s[0] == 'U' || s[0] == 'u') {
		if n, err := strconv.ParseUint(strings.TrimPrefix(s[1:], "+"), 16, 32); err == nil {
			return New(rune(n)), true
		}
	}

	return nil, false
}

// Equal returns true if c is the same character.
func (c *char) Equal(o cell.I) bool {
	t, ok := o.(*char)

	return ok && *c == *t
}

// Literal returns the written representation of the char c.
func (c *char) Literal() string {
	r := rune(*c)

	for n, v := range names {
		if v == r && preferred[n] {
			return `#\` + n
		}
	}

	if r <= ' ' || r == 0x7f {
		return `#\x` + strconv.FormatInt(int64(r), 16)
	}

	return `#\` + string(r)
}

// Name returns the name of the char type.
func (c *char) Name() string {
	return name
}

// Rune returns the rune value of c.
func (c *char) Rune() rune {
	return rune(*c)
}

// String returns the displayed representation of c.
func (c *char) String() string {
	return string(rune(*c))
}

// Functions specific to char.

// To returns a char if c is a char; Otherwise it panics.
func To(c cell.I) *char {
	if t, ok := c.(*char); ok {
		return t
	}

	panic(condition.New(condition.WrongType, "not a character", c))
}

//nolint:gochecknoglobals
var (
	names = map[string]rune{
		"alarm":     '\a',
		"backspace": '\b',
		"delete":    0x7f,
		"escape":    0x1b,
		"linefeed":  '\n',
		"newline":   '\n',
		"nul":       0,
		"null":      0,
		"page":      '\f',
		"return":    '\r',
		"rubout":    0x7f,
		"space":     ' ',
		"tab":       '\t',
	}

	preferred = map[string]bool{
		"alarm":     true,
		"backspace": true,
		"delete":    true,
		"escape":    true,
		"newline":   true,
		"null":      true,
		"return":    true,
		"space":     true,
		"tab":       true,
	}
)

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t char

	// The char type is a cell.
	_ = cell.I(&t)

	// The char type has a literal representation.
	_ = literal.I(&t)

	// The char type is a stringer.
	_ = fmt.Stringer(&t)
}
