// Released under an MIT license. See LICENSE.

// Package reader turns characters into data by connecting tern's lexer and parser.
package reader

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/type/eof"
	"github.com/michaelmacinnis/tern/internal/reader/lexer"
	"github.com/michaelmacinnis/tern/internal/reader/parser"
)

// T (reader) encapsulates the tern lexer and parser.
type T struct {
	p *parser.T
	s *lexer.T
}

type reader = T

// New creates a new reader for the source r. Label names the source in
// error messages.
func New(label string, r io.Reader) *reader {
	rs, ok := r.(io.RuneScanner)
	if !ok {
		rs = bufio.NewReader(r)
	}

	return Scanner(label, rs)
}

// Scanner creates a new reader that shares rs with its caller.
func Scanner(label string, rs io.RuneScanner) *reader {
	s := lexer.New(label, rs)

	return &reader{p: parser.New(s.Token), s: s}
}

// Read returns the next datum or the eof object at the end of input.
func (r *reader) Read() (cell.I, error) {
	return r.p.Parse()
}

// All returns every datum in s.
func All(label, s string) ([]cell.I, error) {
	r := New(label, strings.NewReader(s))

	var data []cell.I

	for {
		c, err := r.Read()
		if err != nil {
			return data, err
		}

		if c == eof.Object {
			return data, nil
		}

		data = append(data, c)
	}
}

// Incomplete returns true if err was caused by input that ended mid-datum.
func Incomplete(err error) bool {
	return errors.Is(err, parser.ErrUnexpectedEOF) || errors.Is(err, lexer.ErrUnexpectedEOF)
}
