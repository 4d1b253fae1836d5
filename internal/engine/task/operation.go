// Released under an MIT license. See LICENSE.

package task

import (
	"reflect"
	"runtime"
	"strings"
)

// Op represents a single step of a task.
type Op interface {
	Perform(*T) Op
}

// Action performs a single step of the machine and returns the next operation.
type Action func(*T) Op

// Perform is required for an action to be an operation.
func (a Action) Perform(t *T) Op {
	return a(t)
}

func opString(o Op) string {
	if o == nil {
		return "<nil>"
	}

	if a, ok := o.(Action); ok {
		return funcName(a)
	}

	if r, ok := o.(*registers); ok {
		var fields []string

		if r.code != nil {
			fields = append(fields, "code")
		}

		if r.dump != nil {
			fields = append(fields, "dump")
		}

		if r.env != nil {
			fields = append(fields, "env")
		}

		if r.handlers != nil {
			fields = append(fields, "handlers")
		}

		if r.winds != nil {
			fields = append(fields, "winds")
		}

		return "Restore(" + strings.Join(fields, ", ") + ")"
	}

	return "<unknown>"
}

// Get the function i's name. Useful for debugging.
func funcName(i interface{}) string {
	n := runtime.FuncForPC(reflect.ValueOf(i).Pointer()).Name()

	a := strings.Split(n, ".")

	l := len(a)
	if l == 0 {
		return n
	}

	return a[l-1]
}
