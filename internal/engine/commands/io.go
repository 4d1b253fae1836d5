// Released under an MIT license. See LICENSE.

package commands

import (
	"io"
	"strings"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/type/char"
	"github.com/michaelmacinnis/tern/internal/common/type/eof"
	"github.com/michaelmacinnis/tern/internal/common/type/num"
	"github.com/michaelmacinnis/tern/internal/common/type/pair"
	"github.com/michaelmacinnis/tern/internal/common/type/port"
	"github.com/michaelmacinnis/tern/internal/common/type/str"
	"github.com/michaelmacinnis/tern/internal/common/type/void"
	"github.com/michaelmacinnis/tern/internal/common/validate"
	"github.com/michaelmacinnis/tern/internal/reader"
)

func currentErrorPort(s Session, args cell.I) cell.I {
	validate.Fixed(args, 0, 0)

	return s.Errors()
}

func currentInputPort(s Session, args cell.I) cell.I {
	validate.Fixed(args, 0, 0)

	return s.Input()
}

func currentOutputPort(s Session, args cell.I) cell.I {
	validate.Fixed(args, 0, 0)

	return s.Output()
}

func display(s Session, args cell.I) cell.I {
	v := validate.Fixed(args, 1, 2)

	output(s, v[1:]).Write(displayed(v[0]))

	return void.Value
}

func freshLine(s Session, args cell.I) cell.I {
	v := validate.Fixed(args, 0, 1)

	p := output(s, v)
	if !p.Fresh() {
		p.Write("\n")
	}

	return void.Value
}

func newline(s Session, args cell.I) cell.I {
	v := validate.Fixed(args, 0, 1)

	output(s, v).Write("\n")

	return void.Value
}

func peekChar(s Session, args cell.I) cell.I {
	v := validate.Fixed(args, 0, 1)

	return input(s, v).PeekChar()
}

func prettyPrint(s Session, args cell.I) cell.I {
	v := validate.Fixed(args, 1, 2)

	p := output(s, v[1:])
	p.Write(pair.Write(v[0], false))
	p.Write("\n")

	return void.Value
}

func read(s Session, args cell.I) cell.I {
	v := validate.Fixed(args, 0, 1)

	forms := input(s, v).Forms(func(label string, rs io.RuneScanner) port.Reader {
		return reader.Scanner(label, rs)
	})

	c, err := forms.Read()
	if err != nil {
		panic(err)
	}

	return c
}

func readChar(s Session, args cell.I) cell.I {
	v := validate.Fixed(args, 0, 1)

	return input(s, v).ReadChar()
}

func readLine(s Session, args cell.I) cell.I {
	v := validate.Fixed(args, 0, 1)

	return input(s, v).ReadLine()
}

func readString(s Session, args cell.I) cell.I {
	v := validate.Fixed(args, 1, 2)

	p := input(s, v[1:])
	k := num.Int64(v[0])

	var b strings.Builder

	for i := int64(0); i < k; i++ {
		c := p.ReadChar()
		if c == eof.Object {
			if i == 0 {
				return eof.Object
			}

			break
		}

		b.WriteString(char.To(c).String())
	}

	return str.New(b.String())
}

func write(s Session, args cell.I) cell.I {
	v := validate.Fixed(args, 1, 2)

	output(s, v[1:]).Write(pair.Write(v[0], false))

	return void.Value
}

func writeChar(s Session, args cell.I) cell.I {
	v := validate.Fixed(args, 1, 2)

	output(s, v[1:]).Write(char.To(v[0]).String())

	return void.Value
}

func writeLine(s Session, args cell.I) cell.I {
	v := validate.Fixed(args, 1, 2)

	p := output(s, v[1:])
	p.Write(pair.Write(v[0], false))
	p.Write("\n")

	return void.Value
}

func writeString(s Session, args cell.I) cell.I {
	v := validate.Fixed(args, 1, 2)

	output(s, v[1:]).Write(str.To(v[0]).String())

	return void.Value
}

// Helpers.

func displayed(c cell.I) string {
	return pair.Write(c, true)
}

func input(s Session, v []cell.I) *port.T {
	if len(v) > 0 {
		return port.To(v[0])
	}

	return s.Input()
}

func output(s Session, v []cell.I) *port.T {
	if len(v) > 0 {
		return port.To(v[0])
	}

	return s.Output()
}
