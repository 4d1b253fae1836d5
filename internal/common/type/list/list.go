// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells.
package list

import (
	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/pair"
)

// Append returns a list made of the elements of each list in lists followed
// by last. Every list but the last is copied.
func Append(lists ...cell.I) cell.I {
	if len(lists) == 0 {
		return pair.Null
	}

	result := lists[len(lists)-1]

	for i := len(lists) - 2; i >= 0; i-- {
		result = FromSlice(ToSlice(lists[i]), result)
	}

	return result
}

// Length returns the number of elements in list.
// If list is not a proper list, this function will panic.
func Length(list cell.I) int64 {
	n, ok := length(list)
	if !ok {
		panic(condition.New(condition.WrongType, "not a proper list", list))
	}

	return n
}

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	return FromSlice(elements, pair.Null)
}

// FromSlice creates a list of elements ending in tail.
func FromSlice(elements []cell.I, tail cell.I) cell.I {
	for i := len(elements) - 1; i >= 0; i-- {
		tail = pair.Cons(elements[i], tail)
	}

	return tail
}

// Proper returns true if list is a finite, Null terminated list.
func Proper(list cell.I) bool {
	_, ok := length(list)

	return ok
}

// Reverse reverses list.
// If list is not a proper list, this function will panic.
func Reverse(list cell.I) cell.I {
	reversed := pair.Null

	for _, e := range ToSlice(list) {
		reversed = pair.Cons(e, reversed)
	}

	return reversed
}

// Tail returns the sublist of list starting at element index.
func Tail(list cell.I, index int64) cell.I {
	for ; index > 0; index-- {
		list = pair.Cdr(list)
	}

	return list
}

// ToSlice returns the elements of list.
// If list is not a proper list, this function will panic.
func ToSlice(list cell.I) []cell.I {
	s := make([]cell.I, 0, Length(list))

	for ; list != pair.Null; list = pair.Cdr(list) {
		s = append(s, pair.Car(list))
	}

	return s
}

// length uses two cursors so that a circular list is detected.
func length(list cell.I) (int64, bool) {
	var n int64

	slow := list

	for {
		if list == pair.Null {
			return n, true
		}

		if !pair.IsPair(list) {
			return n, false
		}

		list = pair.Cdr(list)
		n++

		if list == pair.Null {
			return n, true
		}

		if !pair.IsPair(list) {
			return n, false
		}

		list = pair.Cdr(list)
		n++

		slow = pair.Cdr(slow)
		if slow == list {
			return n, false
		}
	}
}
