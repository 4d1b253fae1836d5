// Released under an MIT license. See LICENSE.

// Package token is shared by the tern lexer and parser.
package token

import (
	"strconv"

	"github.com/michaelmacinnis/tern/internal/common/struct/loc"
)

// Class is a token's type.
type Class int

// T (token) is a lexical item returned by the scanner.
type T struct {
	class  Class
	source loc.T
	value  string
}

type token = T

// Token classes.
const (
	Error Class = iota

	Atom
	Char
	Close
	DatumComment
	Directive
	Dot
	EOF
	Open
	Quasiquote
	Quote
	String
	Unquote
	UnquoteSplicing
	VectorOpen
)

var classes = [...]string{
	Error:           "Error",
	Atom:            "Atom",
	Char:            "Char",
	Close:           "Close",
	DatumComment:    "DatumComment",
	Directive:       "Directive",
	Dot:             "Dot",
	EOF:             "EOF",
	Open:            "Open",
	Quasiquote:      "Quasiquote",
	Quote:           "Quote",
	String:          "String",
	Unquote:         "Unquote",
	UnquoteSplicing: "UnquoteSplicing",
	VectorOpen:      "VectorOpen",
}

// New creates a new token.
func New(class Class, value string, source loc.T) *token {
	return &token{
		class:  class,
		source: source,
		value:  value,
	}
}

// String returns a string representation of Class. Useful for debugging.
func (c Class) String() string {
	if c < 0 || int(c) >= len(classes) {
		return strconv.Itoa(int(c))
	}

	return classes[c]
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// Class returns the token's class.
func (t *token) Class() Class {
	return t.class
}

// Source returns the source location for this token.
func (t *token) Source() loc.T {
	return t.source
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" +
		t.class.String() + "," +
		t.source.String() + ")"
}

// Value returns the token's string value.
func (t *token) Value() string {
	return t.value
}
