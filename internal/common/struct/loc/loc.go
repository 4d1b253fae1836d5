// Released under an MIT license. See LICENSE.

// Package loc provides the type used to track where a token was read.
package loc

import (
	"strconv"
)

// T (loc) is a position in a named source.
type T struct {
	Char int    // Column, starting at 1.
	Line int    // Line, starting at 1.
	Name string // Label for the source.
}

type loc = T

// Advance moves l past the rune r.
func (l *loc) Advance(r rune) {
	if r == '\n' {
		l.Line++
		l.Char = 1

		return
	}

	l.Char++
}

func (l *loc) String() string {
	return l.Name + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Char)
}
