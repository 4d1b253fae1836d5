package port_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/tern/internal/common/interface/literal"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/eof"
	"github.com/michaelmacinnis/tern/internal/common/type/port"
)

func kind(t *testing.T, f func()) condition.Kind {
	t.Helper()

	var k condition.Kind

	func() {
		defer func() {
			c, ok := recover().(*condition.T)
			require.True(t, ok)

			k = c.Kind
		}()

		f()
	}()

	return k
}

func TestInput(t *testing.T) {
	p := port.NewStringInput("ab\ncd")

	assert.True(t, p.Input())
	assert.False(t, p.Output())

	assert.Equal(t, `#\a`, literal.String(p.PeekChar()))
	assert.Equal(t, `#\a`, literal.String(p.ReadChar()))
	assert.Equal(t, `"b"`, literal.String(p.ReadLine()))
	assert.Equal(t, `"cd"`, literal.String(p.ReadLine()))
	assert.Equal(t, eof.Object, p.ReadLine())
	assert.Equal(t, eof.Object, p.ReadChar())
	assert.Equal(t, eof.Object, p.PeekChar())
}

func TestOutput(t *testing.T) {
	var b bytes.Buffer

	p := port.NewOutput("buffer", &b)

	assert.True(t, p.Fresh())

	p.Write("abc")
	assert.False(t, p.Fresh())

	p.Write("\n")
	assert.True(t, p.Fresh())
	assert.Equal(t, "abc\n", b.String())
	assert.Equal(t, "#[output-port buffer]", literal.String(p))

	assert.Equal(t, condition.WrongType, kind(t, func() { p.Contents() }))
	assert.Equal(t, condition.WrongType, kind(t, func() { p.ReadChar() }))

	p.Close()
	assert.Equal(t, condition.WrongType, kind(t, func() { p.Write("x") }))
}

func TestStringOutput(t *testing.T) {
	p := port.NewStringOutput()

	p.Write("hello, ")
	p.Write("world")

	assert.Equal(t, "hello, world", p.Contents())
}

func TestTo(t *testing.T) {
	p := port.NewStringOutput()

	assert.Same(t, p, port.To(p))
	assert.Equal(t, condition.WrongType, kind(t, func() { port.To(eof.Object) }))
}
