// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all tern values.
package cell

// I (cell) is the basic unit of storage in tern.
type I interface {
	Equal(c I) bool
	Name() string
}
