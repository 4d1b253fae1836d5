package engine_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/tern/internal/common/interface/literal"
	"github.com/michaelmacinnis/tern/internal/common/interface/scope"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/eof"
	"github.com/michaelmacinnis/tern/internal/engine"
	"github.com/michaelmacinnis/tern/internal/reader"
)

func context(t *testing.T) (*engine.Context, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var out, errs bytes.Buffer

	c, err := engine.New(engine.WithOutput(&out), engine.WithError(&errs))
	require.NoError(t, err)

	return c, &out, &errs
}

func TestEvalReaderReadsOneForm(t *testing.T) {
	c, _, _ := context(t)

	r := strings.NewReader("(define x 1) (set! x 2)")

	v, err := c.EvalReader(r)
	require.NoError(t, err)
	assert.Equal(t, "x", literal.String(v))

	v, err = c.EvalString("x")
	require.NoError(t, err)
	assert.Equal(t, "1", literal.String(v))

	v, err = c.EvalReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, eof.Object, v)
}

func TestEvalStringReturnsLast(t *testing.T) {
	c, _, _ := context(t)

	v, err := c.EvalString("1 2 3")
	require.NoError(t, err)
	assert.Equal(t, "3", literal.String(v))
}

func TestEvalStringSyntaxError(t *testing.T) {
	c, _, _ := context(t)

	_, err := c.EvalString("(+ 1")
	require.Error(t, err)

	var cond *condition.T
	require.True(t, errors.As(err, &cond))
	assert.Equal(t, condition.ReaderSyntax, cond.Kind)
}

func TestEvalInEnvironment(t *testing.T) {
	c, _, _ := context(t)

	v, err := c.EvalString("(let ((y 5)) (the-environment))")
	require.NoError(t, err)

	e, ok := v.(scope.I)
	require.True(t, ok)

	expr, err := reader.New("test", strings.NewReader("(* y 2)")).Read()
	require.NoError(t, err)

	v, err = c.Eval(expr, e)
	require.NoError(t, err)
	assert.Equal(t, "10", literal.String(v))

	_, err = c.Eval(expr, nil)
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	c, out, _ := context(t)

	err := c.Load(strings.NewReader(`(define (greet) (display "hi")) (greet)`), c.Environment())
	require.NoError(t, err)
	assert.Equal(t, "hi", out.String())
}

func TestInterrupt(t *testing.T) {
	c, _, _ := context(t)

	done := make(chan error, 1)

	go func() {
		_, err := c.EvalString("(let loop () (loop))")
		done <- err
	}()

	for {
		c.Interrupt()

		select {
		case err := <-done:
			var cond *condition.T
			require.True(t, errors.As(err, &cond))
			assert.Equal(t, condition.Abort, cond.Kind)

			v, err := c.EvalString("(+ 1 2)")
			require.NoError(t, err)
			assert.Equal(t, "3", literal.String(v))

			return
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestClearPendingContinuation(t *testing.T) {
	c, _, _ := context(t)

	_, err := c.EvalString(`
		(define k #f)
		(+ 1 (call/cc (lambda (c) (set! k c) 1)))
	`)
	require.NoError(t, err)

	assert.False(t, c.ClearPendingContinuation())

	_, err = c.EvalString(`
		(dynamic-wind
		  (lambda () #f)
		  (lambda () (k 1))
		  (lambda () (car '())))
	`)
	require.Error(t, err)

	assert.True(t, c.ClearPendingContinuation())
	assert.False(t, c.ClearPendingContinuation())
}

func TestTrace(t *testing.T) {
	c, _, errs := context(t)

	assert.False(t, c.Tracing())

	c.TraceOn()
	assert.True(t, c.Tracing())

	v, err := c.EvalString("(+ 1 2)")
	require.NoError(t, err)
	assert.Equal(t, "3", literal.String(v))

	c.TraceOff()
	assert.False(t, c.Tracing())

	trace := errs.String()
	assert.Contains(t, trace, "msg=step")
	assert.Contains(t, trace, "session="+c.ID())

	n := len(trace)

	_, err = c.EvalString("(+ 1 2)")
	require.NoError(t, err)
	assert.Equal(t, n, errs.Len())
}

func TestSessionsAreIndependent(t *testing.T) {
	a, _, _ := context(t)
	b, _, _ := context(t)

	assert.NotEqual(t, a.ID(), b.ID())

	_, err := a.EvalString("(define only-in-a 1)")
	require.NoError(t, err)

	_, err = b.EvalString("only-in-a")
	require.Error(t, err)
}

func TestLiteralRoundTrip(t *testing.T) {
	c, _, _ := context(t)

	for _, src := range []string{
		`(a "b\nc" #\x 1.5 -3 #(1 2) (d . e))`,
		"#0=(a . #0#)",
		"(quote x)",
		"#t",
		"()",
	} {
		expr, err := reader.New("test", strings.NewReader(src)).Read()
		require.NoError(t, err, src)

		written := literal.String(expr)

		v, err := c.EvalString("(quote " + written + ")")
		require.NoError(t, err, src)
		assert.Equal(t, written, literal.String(v), src)
	}
}

func TestSelfEvaluatingLiterals(t *testing.T) {
	c, _, _ := context(t)

	for _, src := range []string{
		"42",
		"1.5",
		"-0.",
		"1e21",
		"+inf.0",
		"-inf.0",
		`#\a`,
		`#\space`,
		`#\x41`,
		`"a\tb"`,
		`#(1 "x" #\a)`,
		"#t",
		"#f",
	} {
		datum, err := reader.New("test", strings.NewReader(src)).Read()
		require.NoError(t, err, src)

		v, err := c.EvalString(src)
		require.NoError(t, err, src)

		assert.True(t, datum.Equal(v), src)

		written := literal.String(v)

		again, err := reader.New("test", strings.NewReader(written)).Read()
		require.NoError(t, err, written)
		assert.True(t, again.Equal(v), written)

		same, err := c.EvalString("(equal? " + src + " (quote " + written + "))")
		require.NoError(t, err, src)
		assert.Equal(t, "#t", literal.String(same), src)
	}
}

func TestInfiniteResults(t *testing.T) {
	c, _, _ := context(t)

	for src, want := range map[string]string{
		"(* 1e200 1e200)":                  "+inf.0",
		"(- (* 1e200 1e200))":              "-inf.0",
		"(number->string (* 1e200 1e200))": `"+inf.0"`,
		"(< 1 (* 1e200 1e200))":            "#t",
	} {
		v, err := c.EvalString(src)
		require.NoError(t, err, src)
		assert.Equal(t, want, literal.String(v), src)
	}
}
