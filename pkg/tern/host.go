// Released under an MIT license. See LICENSE.

package tern

import (
	"math"
	"math/big"
	"sort"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/type/boolean"
	"github.com/michaelmacinnis/tern/internal/common/type/char"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/eof"
	"github.com/michaelmacinnis/tern/internal/common/type/host"
	"github.com/michaelmacinnis/tern/internal/common/type/list"
	"github.com/michaelmacinnis/tern/internal/common/type/num"
	"github.com/michaelmacinnis/tern/internal/common/type/pair"
	"github.com/michaelmacinnis/tern/internal/common/type/str"
	"github.com/michaelmacinnis/tern/internal/common/type/sym"
	"github.com/michaelmacinnis/tern/internal/common/type/vector"
	"github.com/michaelmacinnis/tern/internal/common/type/void"
	"github.com/michaelmacinnis/tern/internal/engine/task"
)

// Wrap converts the Go value v to a tern value.
//
// nil becomes the empty list, a rune (int32) becomes a character, a
// []any becomes a list, and a map[string]any becomes an association list
// of symbols to values sorted by key. A func(...any) any, or one that
// also returns an error, becomes a procedure. A tern value is returned
// as is. Anything else is carried opaquely.
func Wrap(v any) cell.I {
	switch v := v.(type) {
	case nil:
		return pair.Null
	case cell.I:
		return v
	case bool:
		return boolean.Bool(v)
	case int:
		return num.Int(int64(v))
	case int8:
		return num.Int(int64(v))
	case int16:
		return num.Int(int64(v))
	case rune:
		return char.New(v)
	case int64:
		return num.Int(v)
	case uint:
		return unsigned(uint64(v))
	case uint8:
		return num.Int(int64(v))
	case uint16:
		return num.Int(int64(v))
	case uint32:
		return num.Int(int64(v))
	case uint64:
		return unsigned(v)
	case *big.Int:
		return num.Big(v)
	case float32:
		return num.Float(float64(v))
	case float64:
		return num.Float(v)
	case string:
		return str.New(v)
	case []any:
		elements := make([]cell.I, len(v))
		for i, e := range v {
			elements[i] = Wrap(e)
		}

		return list.New(elements...)
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		alist := make([]cell.I, len(keys))
		for i, k := range keys {
			alist[i] = pair.Cons(sym.New(k), Wrap(v[k]))
		}

		return list.New(alist...)
	case func(...any) any:
		return task.NewBuiltin("host", func(args cell.I) cell.I {
			return Wrap(v(unwrapped(args)...))
		})
	case func(...any) (any, error):
		return task.NewBuiltin("host", func(args cell.I) cell.I {
			r, err := v(unwrapped(args)...)
			if err != nil {
				panic(condition.Wrap(condition.UserRaised, err))
			}

			return Wrap(r)
		})
	}

	return host.New(v)
}

// Unwrap converts the tern value c to a Go value.
//
// The empty list and the unspecified value become nil, proper lists and
// vectors become []any, exact integers become int64 (or *big.Int when
// they do not fit), inexact numbers become float64, and strings and
// symbols become string. Opaque host values are returned as they were
// wrapped. Other values are returned unchanged.
func Unwrap(c cell.I) any {
	switch v := c.(type) {
	case nil:
		return nil
	case *boolean.T:
		return v.Bool()
	case *char.T:
		return v.Rune()
	case *host.T:
		return v.Value()
	case *num.T:
		if !v.Exact() {
			return v.Float64()
		}

		i := num.BigInt(v)
		if i.IsInt64() {
			return i.Int64()
		}

		return i
	case *pair.T:
		if c == pair.Null {
			return nil
		}

		if !list.Proper(c) {
			return c
		}

		return unwrapped(c)
	case *str.T:
		return v.String()
	case *sym.T:
		return v.String()
	case *vector.T:
		elements := v.Elements()

		s := make([]any, len(elements))
		for i, e := range elements {
			s[i] = Unwrap(e)
		}

		return s
	}

	if c == void.Value || c == void.Default {
		return nil
	}

	return c
}

// IsEOF returns true if c is the end of file object.
func IsEOF(c Value) bool {
	return c == eof.Object
}

func unsigned(u uint64) cell.I {
	if u > math.MaxInt64 {
		return num.Big(new(big.Int).SetUint64(u))
	}

	return num.Int(int64(u))
}

func unwrapped(args cell.I) []any {
	var s []any

	for _, e := range list.ToSlice(args) {
		s = append(s, Unwrap(e))
	}

	return s
}
