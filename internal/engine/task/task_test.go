package task_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/tern/internal/common/interface/literal"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/engine"
)

func session(t *testing.T) (*engine.Context, *bytes.Buffer) {
	t.Helper()

	var out, errs bytes.Buffer

	c, err := engine.New(engine.WithOutput(&out), engine.WithError(&errs))
	require.NoError(t, err)

	return c, &out
}

func eval(t *testing.T, c *engine.Context, src string) string {
	t.Helper()

	v, err := c.EvalString(src)
	require.NoError(t, err, src)

	return literal.String(v)
}

func kind(t *testing.T, err error) condition.Kind {
	t.Helper()

	var c *condition.T
	require.True(t, errors.As(err, &c), "expected a condition, got %v", err)

	return c.Kind
}

func TestExpressions(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"arithmetic", "(+ 1 (* 2 3))", "7"},
		{"if", "(if (> 2 1) 'yes 'no)", "yes"},
		{"rest arguments", "((lambda (x . rest) rest) 1 2 3)", "(2 3)"},
		{"variadic", "((lambda args args) 1 2)", "(1 2)"},
		{"optional", "((named-lambda (f a #!optional b) (if (default-object? b) 'none b)) 1)", "none"},
		{"and", "(and 1 2 3)", "3"},
		{"empty and", "(and)", "#t"},
		{"or", "(or #f 2)", "2"},
		{"when", "(when (= 1 1) 'a 'b)", "b"},
		{"unless", "(unless (= 1 1) 'a)", "#!unspecific"},
		{"cond", "(cond ((assv 2 '((1 . a) (2 . b))) => cdr) (else 'none))", "b"},
		{"cond else", "(cond (#f 1) (else 2))", "2"},
		{"case", "(case (* 2 3) ((2 3 5 7) 'prime) ((1 4 6 8 9) 'composite))", "composite"},
		{"case arrow", "(case 'x ((a) 1) (else => (lambda (v) v)))", "x"},
		{"let", "(let ((x 1) (y 2)) (+ x y))", "3"},
		{"let*", "(let* ((x 1) (y (+ x 1))) y)", "2"},
		{"nested let*", "(let* ((a 1) (b (+ a 1)) (c (* b 3))) (list a b c))", "(1 2 6)"},
		{"named let", "(let loop ((i 0) (acc '())) (if (= i 3) acc (loop (+ i 1) (cons i acc))))", "(2 1 0)"},
		{"do", "(do ((i 0 (+ i 1)) (acc '() (cons i acc))) ((= i 3) acc))", "(2 1 0)"},
		{"quasiquote", "(let ((x 1) (l '(2 3))) `(a ,x ,@l b))", "(a 1 2 3 b)"},
		{"quasiquote vector", "`#(1 ,(+ 1 1))", "#(1 2)"},
		{"nested quasiquote", "`(1 `(2 ,(3 ,(+ 1 3))))", "(1 `(2 ,(3 4)))"},
		{"apply", "(apply + 1 2 '(3 4))", "10"},
		{"values", "(call-with-values (lambda () (values 1 2)) +)", "3"},
		{"eval", "(eval '(+ 1 2) (the-environment))", "3"},
		{"map", "(map + '(1 2) '(10 20))", "(11 22)"},
		{"string", `(string-append "a" "b")`, `"ab"`},
		{"quote", "'(a . b)", "(a . b)"},
		{
			"letrec",
			`(letrec ((even? (lambda (n) (if (= n 0) #t (odd? (- n 1)))))
			          (odd? (lambda (n) (if (= n 0) #f (even? (- n 1))))))
			   (even? 10001))`,
			"#f",
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			c, _ := session(t)

			assert.Equal(t, tt.want, eval(t, c, tt.src))
		})
	}
}

func TestTailCalls(t *testing.T) {
	c, _ := session(t)

	eval(t, c, `
		(define (loop n) (if (= n 0) 'done (loop (- n 1))))
		(define (depth n) (if (= n 0) (%stack-depth) (depth (- n 1))))
	`)

	assert.Equal(t, "done", eval(t, c, "(loop 1000000)"))
	assert.Equal(t, eval(t, c, "(depth 10)"), eval(t, c, "(depth 100000)"))
}

func TestDefineAndSet(t *testing.T) {
	c, _ := session(t)

	eval(t, c, `
		(define x 1)
		(define (f) (define x 2) x)
		(define (g) (set! x 3))
	`)

	assert.Equal(t, "2", eval(t, c, "(f)"))
	assert.Equal(t, "1", eval(t, c, "x"))

	eval(t, c, "(g)")
	assert.Equal(t, "3", eval(t, c, "x"))
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want condition.Kind
	}{
		{"unbound variable", "undefined-thing", condition.UnboundVariable},
		{"unbound set!", "(set! undefined-thing 1)", condition.UnboundVariable},
		{"too few arguments", "((lambda (x) x))", condition.WrongArity},
		{"too many arguments", "((lambda (x) x) 1 2)", condition.WrongArity},
		{"non-procedure", "(1 2)", condition.NonProcedure},
		{"wrong type", "(car '())", condition.WrongType},
		{"error", `(error "bad thing:" 1 2)`, condition.UserRaised},
		{"raise", "(raise 'oops)", condition.UserRaised},
		{"assert", "(assert (= 1 2))", condition.UserRaised},
		{
			"handler returns from raise",
			"(with-exception-handler (lambda (e) 10) (lambda () (+ 1 (raise 'c))))",
			condition.UserRaised,
		},
		{"unhandled guard", "(guard (e ((string? e) 'str)) (raise 42))", condition.UserRaised},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			c, _ := session(t)

			_, err := c.EvalString(tt.src)
			require.Error(t, err)
			assert.Equal(t, tt.want, kind(t, err))

			assert.Equal(t, "3", eval(t, c, "(+ 1 2)"))
		})
	}
}

func TestConditions(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"guard", "(guard (e (#t (list 'caught e))) (raise 'oops))", "(caught oops)"},
		{
			"guard arrow",
			"(guard (e ((assq 'a e) => cdr) ((assq 'b e))) (raise (list (cons 'a 42))))",
			"42",
		},
		{
			"guard error object",
			`(guard (e ((error? e) (condition/report-string e))) (error "bad thing:" 1 2))`,
			`"bad thing: 1 2"`,
		},
		{
			"guard primitive error",
			"(guard (e ((error? e) (condition-kind e))) (vector-ref (vector) 0))",
			"wrong-type-argument",
		},
		{
			"raise-continuable",
			"(with-exception-handler (lambda (e) 10) (lambda () (+ 1 (raise-continuable 'c))))",
			"11",
		},
		{
			"raise-continuable through guard",
			"(with-exception-handler (lambda (e) 42) (lambda () (guard (e (#f 0)) (raise-continuable 1))))",
			"42",
		},
		{
			"guard still installed after resuming",
			`(with-exception-handler
			   (lambda (e) 1)
			   (lambda ()
			     (guard (e ((eq? e 'second) 'caught))
			       (+ (raise-continuable 'first) (raise 'second)))))`,
			"caught",
		},
		{
			"resumed raise re-enters dynamic extent",
			`(let ((trail '()))
			   (with-exception-handler
			     (lambda (e) 5)
			     (lambda ()
			       (guard (e (#f 0))
			         (dynamic-wind
			           (lambda () (set! trail (cons 'in trail)))
			           (lambda () (raise-continuable 'c))
			           (lambda () (set! trail (cons 'out trail)))))))
			   (reverse trail))`,
			"(in out in out)",
		},
		{
			"handler escapes",
			`(call/cc
			   (lambda (k)
			     (with-exception-handler
			       (lambda (e) (k (list 'handled (error-object-message e))))
			       (lambda () (error "boom")))))`,
			`(handled "boom")`,
		},
		{
			"nested handlers",
			`(with-exception-handler
			   (lambda (e) (+ e 1))
			   (lambda ()
			     (with-exception-handler
			       (lambda (e) (raise-continuable (* e 2)))
			       (lambda () (raise-continuable 5)))))`,
			"11",
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			c, _ := session(t)

			assert.Equal(t, tt.want, eval(t, c, tt.src))
		})
	}
}

func TestContinuations(t *testing.T) {
	c, _ := session(t)

	assert.Equal(t, "42", eval(t, c, "(call/cc (lambda (k) (+ 1 (k 42))))"))

	assert.Equal(t, "(2 1 0)", eval(t, c, `
		(let ((k #f) (n 0) (r '()))
		  (set! r (cons (call/cc (lambda (c) (set! k c) 0)) r))
		  (set! n (+ n 1))
		  (if (< n 3) (k n))
		  r)
	`))

	eval(t, c, "(define saved #f)")
	assert.Equal(t, "101", eval(t, c, "(+ 100 (call/cc (lambda (k) (set! saved k) 1)))"))
	assert.Equal(t, "105", eval(t, c, "(saved 5)"))
	assert.Equal(t, "#t", eval(t, c, "(continuation? saved)"))
	assert.Equal(t, "105", eval(t, c, "(within-continuation saved (lambda () 5))"))
}

func TestDynamicWind(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"normal exit",
			`(let ((trail '()))
			   (dynamic-wind
			     (lambda () (set! trail (cons 'before trail)))
			     (lambda () (set! trail (cons 'during trail)))
			     (lambda () (set! trail (cons 'after trail))))
			   (reverse trail))`,
			"(before during after)",
		},
		{
			"escape",
			`(let ((trail '()))
			   (call/cc
			     (lambda (k)
			       (dynamic-wind
			         (lambda () (set! trail (cons 'before trail)))
			         (lambda () (k 'escaped) (set! trail (cons 'unreached trail)))
			         (lambda () (set! trail (cons 'after trail))))))
			   (reverse trail))`,
			"(before after)",
		},
		{
			"re-entry",
			`(let ((trail '()) (k #f) (n 0))
			   (dynamic-wind
			     (lambda () (set! trail (cons 'in trail)))
			     (lambda () (call/cc (lambda (c) (set! k c))) (set! n (+ n 1)))
			     (lambda () (set! trail (cons 'out trail))))
			   (if (< n 2) (k #f))
			   (reverse trail))`,
			"(in out in out)",
		},
		{
			"guard",
			`(let ((trail '()))
			   (guard (e (#t (set! trail (cons 'handled trail))))
			     (dynamic-wind
			       (lambda () (set! trail (cons 'in trail)))
			       (lambda () (raise 'boom))
			       (lambda () (set! trail (cons 'out trail)))))
			   (reverse trail))`,
			"(in out handled)",
		},
		{
			"value",
			"(dynamic-wind (lambda () 1) (lambda () 2) (lambda () 3))",
			"2",
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			c, _ := session(t)

			assert.Equal(t, tt.want, eval(t, c, tt.src))
		})
	}
}

func TestExit(t *testing.T) {
	c, out := session(t)

	_, err := c.EvalString(`
		(dynamic-wind
		  (lambda () #f)
		  (lambda () (exit 3))
		  (lambda () (display "bye")))
	`)
	require.Error(t, err)

	code, ok := engine.ExitCode(err)
	require.True(t, ok)
	assert.Equal(t, 3, code)
	assert.Equal(t, "bye", out.String())

	_, err = c.EvalString("(exit #f)")
	code, ok = engine.ExitCode(err)
	require.True(t, ok)
	assert.Equal(t, 1, code)
}

func TestPromises(t *testing.T) {
	c, _ := session(t)

	eval(t, c, `
		(define count 0)
		(define p (delay (begin (set! count (+ count 1)) count)))
		(define (ints n) (cons-stream n (ints (+ n 1))))
	`)

	assert.Equal(t, "#f", eval(t, c, "(promise-forced? p)"))
	assert.Equal(t, "1", eval(t, c, "(force p)"))
	assert.Equal(t, "1", eval(t, c, "(force p)"))
	assert.Equal(t, "1", eval(t, c, "count"))
	assert.Equal(t, "#t", eval(t, c, "(promise-forced? p)"))
	assert.Equal(t, "(0 1 2)", eval(t, c, "(stream-head (ints 0) 3)"))
	assert.Equal(t, "7", eval(t, c, "(force (make-promise 7))"))
	assert.Equal(t, "7", eval(t, c, "(force 7)"))

	eval(t, c, `
		(define (stream-loop n)
		  (delay-force (if (= n 0) (delay 'end) (stream-loop (- n 1)))))
	`)
	assert.Equal(t, "end", eval(t, c, "(force (stream-loop 100000))"))
}

func TestRecords(t *testing.T) {
	c, _ := session(t)

	eval(t, c, `
		(define-record-type point
		  (make-point x y)
		  point?
		  (x point-x set-point-x!)
		  (y point-y))
		(define p (make-point 1 2))
		(set-point-x! p 10)
	`)

	assert.Equal(t, "(#t #f 10 2)", eval(t, c, "(list (point? p) (point? 5) (point-x p) (point-y p))"))

	_, err := c.EvalString("(point-x 5)")
	require.Error(t, err)
	assert.Equal(t, condition.WrongType, kind(t, err))
}

func TestProcedurePredicates(t *testing.T) {
	c, _ := session(t)

	assert.Equal(t, "(#t #t #f #t)", eval(t, c, `
		(list (procedure? car)
		      (compound-procedure? (lambda () 1))
		      (compound-procedure? car)
		      (primitive-procedure? car))
	`))
}

func TestDisplay(t *testing.T) {
	c, out := session(t)

	eval(t, c, `(display "hello") (newline) (write "hello") (write-char #\!)`)

	assert.Equal(t, "hello\n\"hello\"!", out.String())
}
