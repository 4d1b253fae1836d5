package ui_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/tern/internal/engine"
	"github.com/michaelmacinnis/tern/internal/ui"
)

func session(t *testing.T) (*ui.T, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var out, errs bytes.Buffer

	c, err := engine.New(engine.WithOutput(&out), engine.WithError(&errs))
	require.NoError(t, err)

	return ui.New(c, &out, &errs), &out, &errs
}

func TestMultilineInput(t *testing.T) {
	u, out, errs := session(t)

	done, _ := u.Line("(define (double x)")
	assert.False(t, done)
	assert.True(t, u.Continued())
	assert.Empty(t, out.String())

	done, _ = u.Line("  (* x 2))")
	assert.False(t, done)
	assert.False(t, u.Continued())

	out.Reset()

	u.Line("(double 21) (double 1)")
	assert.Equal(t, "42\n2\n", out.String())
	assert.Empty(t, errs.String())
}

func TestUnspecifiedValuesAreNotPrinted(t *testing.T) {
	u, out, _ := session(t)

	u.Line(`(display "x")`)
	assert.Equal(t, "x", out.String())
}

func TestErrors(t *testing.T) {
	u, out, errs := session(t)

	u.Line("(car '()) (display 'unreached)")
	assert.Contains(t, errs.String(), "error:")
	assert.Empty(t, out.String())

	errs.Reset()

	u.Line(")")
	assert.Contains(t, errs.String(), "error:")
	assert.False(t, u.Continued())

	u.Line("(+ 1 2)")
	assert.Equal(t, "3\n", out.String())
}

func TestReset(t *testing.T) {
	u, out, _ := session(t)

	u.Line("(+ 1")
	assert.True(t, u.Continued())

	u.Reset()
	assert.False(t, u.Continued())

	u.Line("(+ 2 2)")
	assert.Equal(t, "4\n", out.String())
}

func TestCommands(t *testing.T) {
	u, _, errs := session(t)

	done, _ := u.Line(",trace")
	assert.False(t, done)

	u.Line("(+ 1 2)")
	assert.Contains(t, errs.String(), "msg=step")

	u.Line(",notrace")
	errs.Reset()

	u.Line("(+ 1 2)")
	assert.Empty(t, errs.String())

	u.Line(",bogus")
	assert.Contains(t, errs.String(), "unknown command")

	done, code := u.Line(",quit")
	assert.True(t, done)
	assert.Equal(t, 0, code)
}

func TestExit(t *testing.T) {
	u, _, _ := session(t)

	done, code := u.Line("(exit 7)")
	assert.True(t, done)
	assert.Equal(t, 7, code)
}

func TestComplete(t *testing.T) {
	u, _, _ := session(t)

	head, completions, tail := u.Complete("(string-le x)", 10)
	assert.Equal(t, "(", head)
	assert.Equal(t, " x)", tail)
	assert.Contains(t, completions, "string-length")

	for _, c := range completions {
		assert.Regexp(t, "^string-le", c)
	}

	_, completions, _ = u.Complete("(vector*list", 12)
	assert.Contains(t, completions, "vector->list")

	_, completions, _ = u.Complete("(", 1)
	assert.Empty(t, completions)
}

func TestSpecialFloats(t *testing.T) {
	u, out, errs := session(t)

	u.Line("(* 1e200 1e200) (- (* 1e200 1e200)) +inf.0")
	assert.Equal(t, "+inf.0\n-inf.0\n+inf.0\n", out.String())
	assert.Empty(t, errs.String())
}
