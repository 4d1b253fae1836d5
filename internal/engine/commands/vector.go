// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/type/boolean"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/list"
	"github.com/michaelmacinnis/tern/internal/common/type/num"
	"github.com/michaelmacinnis/tern/internal/common/type/vector"
	"github.com/michaelmacinnis/tern/internal/common/type/void"
	"github.com/michaelmacinnis/tern/internal/common/validate"
)

const maxSize = 1 << 32

func isVector(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	_, ok := v[0].(*vector.T)

	return boolean.Bool(ok)
}

func listToVector(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return vector.New(list.ToSlice(v[0]))
}

func makeVector(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 2)

	fill := cell.I(boolean.False)
	if len(v) == 2 {
		fill = v[1]
	}

	elements := make([]cell.I, size(v[0]))
	for i := range elements {
		elements[i] = fill
	}

	return vector.New(elements)
}

func makeVectorFrom(args cell.I) cell.I {
	return vector.New(list.ToSlice(args))
}

func subvector(args cell.I) cell.I {
	validate.Fixed(args, 3, 3)

	return vectorCopy(args)
}

func vectorCopy(args cell.I) cell.I {
	elements, start, end := slice(args)

	return vector.New(append([]cell.I(nil), elements[start:end]...))
}

func vectorFill(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	vec := vector.To(v[0])
	for i := 0; i < vec.Len(); i++ {
		vec.Set(int64(i), v[1])
	}

	return void.Value
}

func vectorGrow(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	elements := vector.To(v[0]).Elements()

	n := int(num.Int64(v[1]))
	if n < len(elements) {
		panic(condition.New(condition.WrongType, "vector-grow: new size is too small", v[1]))
	}

	grown := make([]cell.I, n)
	copy(grown, elements)

	for i := len(elements); i < n; i++ {
		grown[i] = boolean.False
	}

	return vector.New(grown)
}

func vectorLength(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return num.Int(int64(vector.To(v[0]).Len()))
}

func vectorRef(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return vector.To(v[0]).Ref(num.Int64(v[1]))
}

func vectorSet(args cell.I) cell.I {
	v := validate.Fixed(args, 3, 3)

	vector.To(v[0]).Set(num.Int64(v[1]), v[2])

	return void.Value
}

func vectorToList(args cell.I) cell.I {
	elements, start, end := slice(args)

	return list.New(elements[start:end]...)
}

// slice returns the elements of a vector argument and the optional start
// and end indices that follow it.
// size returns c as the length of a new string or vector.
func size(c cell.I) int {
	n := num.Int64(c)
	if n < 0 || n > maxSize {
		panic(condition.New(condition.WrongType, "invalid size", c))
	}

	return int(n)
}

func slice(args cell.I) ([]cell.I, int, int) {
	v := validate.Fixed(args, 1, 3)

	elements := vector.To(v[0]).Elements()
	start, end := 0, len(elements)

	if len(v) > 1 {
		start = int(num.Int64(v[1]))
	}

	if len(v) > 2 {
		end = int(num.Int64(v[2]))
	}

	if start < 0 || end > len(elements) || start > end {
		panic(condition.New(condition.WrongType, "vector index out of range", list.New(v...)))
	}

	return elements, start, end
}
