// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for tern.
//
// The tern lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
//
// Unlike text/template the lexer pulls runes from its source only when asked
// for a token. This lets a port interleave reading characters and data.
package lexer

import (
	"errors"
	"io"
	"strings"

	"github.com/michaelmacinnis/tern/internal/common/struct/loc"
	"github.com/michaelmacinnis/tern/internal/common/struct/token"
)

// ErrUnexpectedEOF is returned when the source ends inside a token.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// T holds the state of the scanner.
type T struct {
	depth  int            // Block comment nesting.
	err    error          // Error that ended scanning.
	source loc.T          // Position of the next rune.
	src    io.RuneScanner // Runes waiting to be scanned.
	start  loc.T          // Position of the current token's first rune.
	state  action         // Current action.
	text   []rune         // Runes in the current token.
	token  *token.T       // Token emitted by the current action.
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string, src io.RuneScanner) *T {
	return &T{
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		src:   src,
		state: skipWhitespace,
	}
}

// Token returns the next scanned token. At the end of input it returns a
// token of class EOF.
func (l *T) Token() (*token.T, error) {
	l.token = nil

	for l.token == nil && l.err == nil {
		l.state = l.state(l)
	}

	if l.err != nil {
		return nil, l.err
	}

	return l.token, nil
}

type action func(*T) action

const eof = -1

func (l *T) emit(c token.Class) action {
	l.token = token.New(c, string(l.text), l.start)
	l.text = l.text[:0]

	return skipWhitespace
}

func (l *T) fail(err error) action {
	l.err = err

	return nil
}

// next consumes and returns the next rune, or eof.
func (l *T) next() rune {
	r, _, err := l.src.ReadRune()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			l.err = err
		}

		return eof
	}

	l.source.Advance(r)
	l.text = append(l.text, r)

	return r
}

// peek returns the next rune without consuming it.
func (l *T) peek() rune {
	r, _, err := l.src.ReadRune()
	if err != nil {
		return eof
	}

	_ = l.src.UnreadRune()

	return r
}

// skipBars consumes runes up to and including the closing bar.
func (l *T) skipBars() bool {
	for {
		switch l.next() {
		case eof:
			if l.err == nil {
				l.err = ErrUnexpectedEOF
			}

			return false
		case '\\':
			l.next()
		case '|':
			return true
		}
	}
}

func (l *T) mark() {
	l.start = l.source
	l.text = l.text[:0]
}

// State functions.

func afterComma(l *T) action {
	if l.peek() == '@' {
		l.next()

		return l.emit(token.UnquoteSplicing)
	}

	return l.emit(token.Unquote)
}

func afterHash(l *T) action {
	switch l.peek() {
	case '(':
		l.next()

		return l.emit(token.VectorOpen)
	case '\\':
		l.next()

		return scanChar
	case ';':
		l.next()

		return l.emit(token.DatumComment)
	case '|':
		l.next()

		l.depth = 1

		return skipBlockComment
	case '!':
		return scanDirective
	}

	return scanAtom
}

func scanAtom(l *T) action {
	if len(l.text) == 1 && l.text[0] == '|' && !l.skipBars() {
		return nil
	}

	for !delimiter(l.peek()) {
		if l.next() == '|' && !l.skipBars() {
			return nil
		}
	}

	if l.err != nil {
		return nil
	}

	if string(l.text) == "." {
		return l.emit(token.Dot)
	}

	return l.emit(token.Atom)
}

func scanChar(l *T) action {
	// The first character is always part of the literal.
	if l.next() == eof {
		return l.fail(ErrUnexpectedEOF)
	}

	for !delimiter(l.peek()) {
		l.next()
	}

	return l.emit(token.Char)
}

func scanDirective(l *T) action {
	for !delimiter(l.peek()) {
		l.next()
	}

	return l.emit(token.Directive)
}

func scanString(l *T) action {
	for {
		switch l.next() {
		case eof:
			if l.err == nil {
				l.err = ErrUnexpectedEOF
			}

			return nil
		case '\\':
			if l.next() == eof {
				return l.fail(ErrUnexpectedEOF)
			}
		case '"':
			return l.emit(token.String)
		}
	}
}

func skipBlockComment(l *T) action {
	for l.depth > 0 {
		switch l.next() {
		case eof:
			return l.fail(ErrUnexpectedEOF)
		case '|':
			if l.peek() == '#' {
				l.next()
				l.depth--
			}
		case '#':
			if l.peek() == '|' {
				l.next()
				l.depth++
			}
		}
	}

	return skipWhitespace
}

func skipComment(l *T) action {
	for {
		r := l.next()
		if r == '\n' || r == eof {
			return skipWhitespace
		}
	}
}

func skipWhitespace(l *T) action {
	l.mark()

	r := l.next()
	for r != eof && strings.ContainsRune(whitespace, r) {
		l.mark()

		r = l.next()
	}

	switch r {
	case eof:
		if l.err != nil {
			return nil
		}

		return l.emit(token.EOF)
	case '(', '[':
		return l.emit(token.Open)
	case ')', ']':
		return l.emit(token.Close)
	case '\'':
		return l.emit(token.Quote)
	case '`':
		return l.emit(token.Quasiquote)
	case ',':
		return afterComma
	case '"':
		return scanString
	case ';':
		return skipComment
	case '#':
		return afterHash
	}

	return scanAtom
}

const whitespace = " \t\n\r\f\v"

func delimiter(r rune) bool {
	return r == eof || strings.ContainsRune(whitespace+"()[]\";'`,", r)
}
