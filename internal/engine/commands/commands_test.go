package commands_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/literal"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/eof"
	"github.com/michaelmacinnis/tern/internal/common/type/list"
	"github.com/michaelmacinnis/tern/internal/common/type/pair"
	"github.com/michaelmacinnis/tern/internal/common/type/port"
	"github.com/michaelmacinnis/tern/internal/engine/commands"
	"github.com/michaelmacinnis/tern/internal/reader"
)

// arguments reads each datum in src as an unevaluated argument.
func arguments(t *testing.T, src string) cell.I {
	t.Helper()

	data, err := reader.All("test", src)
	require.NoError(t, err)

	return list.New(data...)
}

func datum(t *testing.T, src string) cell.I {
	t.Helper()

	return pair.Car(arguments(t, src))
}

func call(t *testing.T, name, src string) string {
	t.Helper()

	f, ok := commands.Builtins()[name]
	require.True(t, ok, "no builtin named %s", name)

	return literal.String(f(arguments(t, src)))
}

func failure(t *testing.T, name, src string) (k condition.Kind) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "%s did not fail", name)

		c, ok := r.(*condition.T)
		require.True(t, ok, "unexpected panic %v", r)

		k = c.Kind
	}()

	commands.Builtins()[name](arguments(t, src))

	return k
}

type test struct {
	name string
	args string
	want string
}

func check(t *testing.T, tests []test) {
	t.Helper()

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name+" "+tt.args, func(t *testing.T) {
			assert.Equal(t, tt.want, call(t, tt.name, tt.args))
		})
	}
}

func TestArithmetic(t *testing.T) {
	check(t, []test{
		{"+", "", "0"},
		{"+", "1 2 3", "6"},
		{"+", "1 2.5", "3.5"},
		{"-", "5", "-5"},
		{"-", "10 1 2", "7"},
		{"*", "", "1"},
		{"*", "2 3.5", "7."},
		{"/", "6 3", "2"},
		{"/", "7 2", "3.5"},
		{"/", "2", "0.5"},
		{"quotient", "-7 2", "-3"},
		{"remainder", "-7 2", "-1"},
		{"modulo", "-7 2", "1"},
		{"modulo", "7 -2", "-1"},
		{"expt", "2 100", "1267650600228229401496703205376"},
		{"expt", "2 -1", "0.5"},
		{"sqrt", "16", "4"},
		{"sqrt", "2.25", "1.5"},
		{"abs", "-5", "5"},
		{"max", "1 3 2", "3"},
		{"max", "1 2.0", "2."},
		{"min", "4 1 2", "1"},
		{"gcd", "12 18", "6"},
		{"gcd", "", "0"},
		{"lcm", "4 6", "12"},
		{"exact->inexact", "1", "1."},
		{"exact", "2.0", "2"},
		{"floor", "2.5", "2."},
		{"ceiling", "2.5", "3."},
		{"round", "2.5", "2."},
		{"round", "3.5", "4."},
		{"truncate", "-2.5", "-2."},
		{"1+", "1", "2"},
		{"-1+", "1", "0"},
		{"square", "3", "9"},
		{"*", "99999999999 99999999999", "9999999999800000000001"},
	})
}

func TestNumbers(t *testing.T) {
	check(t, []test{
		{"number->string", "255", `"255"`},
		{"number->string", "255 16", `"ff"`},
		{"string->number", `"ff" 16`, "255"},
		{"string->number", `"1e3"`, "1000."},
		{"string->number", `"abc"`, "#f"},
		{"even?", "4", "#t"},
		{"odd?", "4", "#f"},
		{"zero?", "0", "#t"},
		{"negative?", "-1", "#t"},
		{"integer?", "2.0", "#t"},
		{"integer?", "2.5", "#f"},
		{"exact?", "2.0", "#f"},
		{"number?", "x", "#f"},
	})
}

func TestRelational(t *testing.T) {
	check(t, []test{
		{"<", "1 2 3", "#t"},
		{"<", "1 3 2", "#f"},
		{"=", "1 1.0", "#t"},
		{">=", "3 3 1", "#t"},
		{"eqv?", "2 2", "#t"},
		{"eqv?", "2 2.0", "#f"},
		{"eqv?", `#\a #\a`, "#t"},
		{"eq?", "() ()", "#t"},
		{"eq?", "a a", "#t"},
		{"eq?", `"a" "a"`, "#f"},
		{"equal?", `(1 "a" #(2)) (1 "a" #(2))`, "#t"},
		{"equal?", `(1 2) (1 3)`, "#f"},
	})
}

func TestBooleans(t *testing.T) {
	check(t, []test{
		{"not", "#f", "#t"},
		{"not", "0", "#f"},
		{"boolean?", "#f", "#t"},
		{"boolean?", "()", "#f"},
	})
}

func TestLists(t *testing.T) {
	check(t, []test{
		{"cons", "1 2", "(1 . 2)"},
		{"car", "(1 2)", "1"},
		{"cdr", "(1 2)", "(2)"},
		{"cadr", "(1 2)", "2"},
		{"list", "1 2", "(1 2)"},
		{"list", "", "()"},
		{"length", "(1 2 3)", "3"},
		{"append", "(1) (2) 3", "(1 2 . 3)"},
		{"append", "", "()"},
		{"reverse", "(1 2 3)", "(3 2 1)"},
		{"list-tail", "(1 2 3) 1", "(2 3)"},
		{"list-ref", "(a b c) 2", "c"},
		{"memv", "2 (1 2 3)", "(2 3)"},
		{"member", `"b" ("a" "b")`, `("b")`},
		{"memq", "d (a b)", "#f"},
		{"assq", "b ((a 1) (b 2))", "(b 2)"},
		{"assoc", "(1) (((1) x))", "((1) x)"},
		{"last-pair", "(1 2 3)", "(3)"},
		{"cons*", "1 2 (3)", "(1 2 3)"},
		{"iota", "3", "(0 1 2)"},
		{"iota", "3 1", "(1 2 3)"},
		{"make-list", "2 x", "(x x)"},
		{"list?", "(1 . 2)", "#f"},
		{"list?", "(1 2)", "#t"},
		{"list-copy", "(1 2 . 3)", "(1 2 . 3)"},
		{"null?", "()", "#t"},
		{"pair?", "()", "#f"},
	})
}

func TestSymbolsAndCharacters(t *testing.T) {
	check(t, []test{
		{"symbol->string", "abc", `"abc"`},
		{"string->symbol", `"abc"`, "abc"},
		{"symbol-append", "foo bar", "foobar"},
		{"symbol?", "a", "#t"},
		{"char->integer", `#\A`, "65"},
		{"integer->char", "97", `#\a`},
		{"char-upcase", `#\a`, `#\A`},
		{"char->digit", `#\7`, "7"},
		{"char->digit", `#\x`, "#f"},
		{"digit->char", "11 16", `#\b`},
		{"char<?", `#\a #\b`, "#t"},
		{"char-alphabetic?", `#\1`, "#f"},
	})
}

func TestStrings(t *testing.T) {
	check(t, []test{
		{"string-length", `"hello"`, "5"},
		{"string-ref", `"hello" 1`, `#\e`},
		{"substring", `"hello" 1 3`, `"el"`},
		{"string-append", `"a" "b" "c"`, `"abc"`},
		{"string->list", `"ab"`, `(#\a #\b)`},
		{"list->string", `(#\a #\b)`, `"ab"`},
		{"string-upcase", `"abc"`, `"ABC"`},
		{"string<?", `"abc" "abd"`, "#t"},
		{"string=?", `"abc" "abc"`, "#t"},
		{"string-index", `"hello" #\l`, "2"},
		{"string-search-forward", `"lo" "hello" 0`, "3"},
		{"string-search-forward", `"x" "hello" 0`, "#f"},
		{"string-pad-left", `"42" 5`, `"   42"`},
		{"string-pad-left", `"12345" 3`, `"345"`},
		{"string-join", `("a" "b") ", "`, `"a, b"`},
		{"make-string", `3 #\z`, `"zzz"`},
		{"string-null?", `""`, "#t"},
		{"string", `#\a #\b`, `"ab"`},
	})
}

func TestVectors(t *testing.T) {
	check(t, []test{
		{"vector", "1 2", "#(1 2)"},
		{"make-vector", "2 x", "#(x x)"},
		{"vector-length", "#(1 2 3)", "3"},
		{"vector-ref", "#(1 2 3) 1", "2"},
		{"vector->list", "#(1 2)", "(1 2)"},
		{"list->vector", "(1 2)", "#(1 2)"},
		{"subvector", "#(1 2 3 4) 1 3", "#(2 3)"},
		{"vector?", "(1)", "#f"},
	})
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args string
		want condition.Kind
	}{
		{"car", "()", condition.WrongType},
		{"car", "1 2", condition.WrongArity},
		{"+", "1 a", condition.WrongType},
		{"/", "1 0", condition.WrongType},
		{"quotient", "1 0", condition.WrongType},
		{"vector-ref", "#(1) 5", condition.WrongType},
		{"string-ref", `"" 0`, condition.WrongType},
		{"length", "(1 . 2)", condition.WrongType},
		{"integer->char", "a", condition.WrongType},
		{"make-vector", "-1", condition.WrongType},
		{"make-vector", "1.5", condition.WrongType},
		{"make-string", `-1 #\a`, condition.WrongType},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name+" "+tt.args, func(t *testing.T) {
			assert.Equal(t, tt.want, failure(t, tt.name, tt.args))
		})
	}
}

func TestMutation(t *testing.T) {
	b := commands.Builtins()

	p := b["list"](arguments(t, "1 2"))

	b["set-car!"](list.New(p, datum(t, "x")))
	assert.Equal(t, "(x 2)", literal.String(p))

	v := b["make-vector"](arguments(t, "2 0"))

	b["vector-set!"](list.New(v, datum(t, "1"), datum(t, "y")))
	assert.Equal(t, "#(0 y)", literal.String(v))

	b["vector-fill!"](list.New(v, datum(t, "z")))
	assert.Equal(t, "#(z z)", literal.String(v))

	s := b["make-string"](arguments(t, `2 #\a`))

	b["string-set!"](list.New(s, datum(t, "0"), datum(t, `#\b`)))
	assert.Equal(t, `"ba"`, literal.String(s))
}

type session struct {
	errors *port.T
	input  *port.T
	output *port.T
	sb     *strings.Builder
}

func (s *session) Errors() *port.T { return s.errors }
func (s *session) Input() *port.T  { return s.input }
func (s *session) Output() *port.T { return s.output }

func newSession(in string) *session {
	sb := &strings.Builder{}

	return &session{
		errors: port.NewOutput("stderr", sb),
		input:  port.NewInput("stdin", strings.NewReader(in)),
		output: port.NewOutput("stdout", sb),
		sb:     sb,
	}
}

func TestOutput(t *testing.T) {
	s := newSession("")
	io := commands.IO()

	io["display"](s, arguments(t, `"a\"b"`))
	io["write"](s, arguments(t, `"a\"b"`))
	io["newline"](s, arguments(t, ""))
	io["fresh-line"](s, arguments(t, ""))
	io["write-string"](s, arguments(t, `"x"`))
	io["write-char"](s, arguments(t, `#\y`))
	io["fresh-line"](s, arguments(t, ""))
	io["write-line"](s, arguments(t, `(1 "2")`))

	assert.Equal(t, "a\"b\"a\\\"b\"\nxy\n(1 \"2\")\n", s.sb.String())
}

func TestInput(t *testing.T) {
	s := newSession("ab\n(c d) e")
	io := commands.IO()

	assert.Equal(t, `#\a`, literal.String(io["peek-char"](s, arguments(t, ""))))
	assert.Equal(t, `#\a`, literal.String(io["read-char"](s, arguments(t, ""))))
	assert.Equal(t, `"b"`, literal.String(io["read-line"](s, arguments(t, ""))))
	assert.Equal(t, "(c d)", literal.String(io["read"](s, arguments(t, ""))))
	assert.Equal(t, "e", literal.String(io["read"](s, arguments(t, ""))))
	assert.Equal(t, eof.Object, io["read"](s, arguments(t, "")))
	assert.Equal(t, eof.Object, io["read-char"](s, arguments(t, "")))
}

func TestStringPorts(t *testing.T) {
	b := commands.Builtins()
	s := newSession("")
	io := commands.IO()

	out := b["open-output-string"](arguments(t, ""))

	io["write"](s, list.New(datum(t, "(a b)"), out))
	io["display"](s, list.New(datum(t, `"!"`), out))

	got := b["get-output-string"](list.New(out))
	assert.Equal(t, `"(a b)!"`, literal.String(got))

	in := b["open-input-string"](arguments(t, `"hello"`))

	got = io["read-string"](s, list.New(datum(t, "3"), in))
	assert.Equal(t, `"hel"`, literal.String(got))
}

func TestConditions(t *testing.T) {
	b := commands.Builtins()

	c := condition.New(condition.UserRaised, "bad thing:", datum(t, "1"), datum(t, "2"))

	assert.Equal(t, "#t", literal.String(b["error?"](list.New(c))))
	assert.Equal(t, `"bad thing:"`, literal.String(b["error-object-message"](list.New(c))))
	assert.Equal(t, "simple-error", literal.String(b["condition-kind"](list.New(c))))
	assert.Equal(t, "#f", literal.String(b["error?"](arguments(t, "1"))))

	wrapped := condition.Wrap(condition.Internal, errors.New("boom"))
	assert.Equal(t, `"boom"`, literal.String(b["condition/report-string"](list.New(wrapped))))
}
