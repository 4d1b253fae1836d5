// Released under an MIT license. See LICENSE.

package commands

import (
	"os"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/truth"
	"github.com/michaelmacinnis/tern/internal/common/type/boolean"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/eof"
	"github.com/michaelmacinnis/tern/internal/common/type/port"
	"github.com/michaelmacinnis/tern/internal/common/type/str"
	"github.com/michaelmacinnis/tern/internal/common/type/void"
	"github.com/michaelmacinnis/tern/internal/common/validate"
)

func charReady(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(port.To(v[0]).Ready())
}

func closePort(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	port.To(v[0]).Close()

	return void.Value
}

func deleteFile(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	if err := os.Remove(str.To(v[0]).String()); err != nil {
		panic(condition.Wrap(condition.Internal, err, v[0]))
	}

	return void.Value
}

func eofObject(args cell.I) cell.I {
	validate.Fixed(args, 0, 0)

	return eof.Object
}

func exists(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	_, err := os.Stat(str.To(v[0]).String())

	return boolean.Bool(err == nil)
}

func getOutputString(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return str.New(port.To(v[0]).Contents())
}

func isEOF(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(v[0] == eof.Object)
}

func isInputPort(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	p, ok := v[0].(*port.T)

	return boolean.Bool(ok && p.Input())
}

func isOutputPort(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	p, ok := v[0].(*port.T)

	return boolean.Bool(ok && p.Output())
}

func isPort(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	_, ok := v[0].(*port.T)

	return boolean.Bool(ok)
}

func openInputFile(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	path := str.To(v[0]).String()

	f, err := os.Open(path)
	if err != nil {
		panic(condition.Wrap(condition.Internal, err, v[0]))
	}

	return port.NewInput(path, f)
}

func openInputString(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return port.NewStringInput(str.To(v[0]).String())
}

// openOutputFile opens a file for writing. The file is truncated unless the
// optional second argument is true, in which case writes are appended.
func openOutputFile(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 2)

	path := str.To(v[0]).String()
	flags := os.O_CREATE | os.O_WRONLY

	if len(v) == 2 && truth.Value(v[1]) {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, 0o666) //nolint:gosec
	if err != nil {
		panic(condition.Wrap(condition.Internal, err, v[0]))
	}

	return port.NewOutput(path, f)
}

func openOutputString(args cell.I) cell.I {
	validate.Fixed(args, 0, 0)

	return port.NewStringOutput()
}
