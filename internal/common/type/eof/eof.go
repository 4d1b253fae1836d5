// Released under an MIT license. See LICENSE.

// Package eof provides the end of file object.
package eof

import (
	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
)

// T (eof) is the type of the end of file object.
type T struct{}

// Object is returned by readers when there is nothing more to read.
var Object cell.I = &T{} //nolint:gochecknoglobals

// Equal returns true if c is the end of file object.
func (e *T) Equal(c cell.I) bool {
	return cell.I(e) == c
}

// Literal returns the written representation of the end of file object.
func (e *T) Literal() string {
	return "#[eof]"
}

// Name returns the name of the eof type.
func (e *T) Name() string {
	return "eof"
}
