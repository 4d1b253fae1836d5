// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/truth"
	"github.com/michaelmacinnis/tern/internal/common/type/boolean"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/env"
	"github.com/michaelmacinnis/tern/internal/common/type/list"
	"github.com/michaelmacinnis/tern/internal/common/type/pair"
	"github.com/michaelmacinnis/tern/internal/common/type/sym"
	"github.com/michaelmacinnis/tern/internal/common/type/void"
	"github.com/michaelmacinnis/tern/internal/engine/commands"
)

// Special forms are performed with code set to the form's operands. Forms
// that are rewritten into other forms use the syntax values below as the
// head of the rewritten expression so that local bindings cannot capture
// them.

//nolint:gochecknoglobals
var (
	beginSyntax  = &Syntax{Op: Action(evalBegin), name: "begin"}
	defineSyntax = &Syntax{Op: Action(evalDefine), name: "define"}
	ifSyntax     = &Syntax{Op: Action(evalIf), name: "if"}
	lambdaSyntax = &Syntax{Op: Action(evalLambda), name: "lambda"}
	letSyntax    = &Syntax{Op: Action(evalLet), name: "let"}
	letStar      = &Syntax{name: "let*"}
	letrecSyntax = &Syntax{Op: Action(evalLetrec), name: "letrec"}
)

func init() { //nolint:gochecknoinits
	letStar.Op = Action(evalLetStar)
}

func evalAnd(t *T) Op {
	if t.code == pair.Null {
		return t.Return(boolean.True)
	}

	if pair.Cdr(t.code) == pair.Null {
		t.code = pair.Car(t.code)

		return t.ReplaceOp(Action(evaluate))
	}

	return t.evalThen(evalAndNext, pair.Cdr(t.code), pair.Car(t.code))
}

func evalAndNext(t *T) Op {
	v := t.PopResult()
	if !truth.Value(v) {
		return t.Return(v)
	}

	return t.ReplaceOp(Action(evalAnd))
}

func evalAssert(t *T) Op {
	return t.evalThen(evalAssertNext, pair.Car(t.code), pair.Car(t.code))
}

func evalAssertNext(t *T) Op {
	if !truth.Value(t.PopResult()) {
		panic(condition.New(condition.UserRaised, "Assertion failed:", t.code))
	}

	return t.Return(void.Value)
}

func evalBegin(t *T) Op {
	return t.ReplaceOp(Action(evalBody))
}

func evalCase(t *T) Op {
	return t.evalThen(evalCaseNext, pair.Cdr(t.code), pair.Car(t.code))
}

func evalCaseNext(t *T) Op {
	k := t.PopResult()

	for clauses := t.code; clauses != pair.Null; clauses = pair.Cdr(clauses) {
		clause := pair.Car(clauses)
		data := pair.Car(clause)

		if !sym.Named(data, "else") && !memv(k, data) {
			continue
		}

		body := pair.Cdr(clause)
		if pair.IsPair(body) && sym.Named(pair.Car(body), "=>") {
			t.code = list.New(pair.Cadr(body), Quote(k))

			return t.ReplaceOp(Action(evaluate))
		}

		t.code = body

		return t.ReplaceOp(Action(evalBody))
	}

	return t.Return(void.Value)
}

// evalCond evaluates cond clauses. It is also used for guard clauses.
func evalCond(t *T) Op {
	if t.code == pair.Null {
		return t.Return(void.Value)
	}

	clause := pair.Car(t.code)
	test := pair.Car(clause)

	if sym.Named(test, "else") {
		t.code = pair.Cdr(clause)

		return t.ReplaceOp(Action(evalBody))
	}

	return t.evalThen(evalCondNext, t.code, test)
}

func evalCondNext(t *T) Op {
	v := t.PopResult()
	if !truth.Value(v) {
		t.code = pair.Cdr(t.code)

		return t.ReplaceOp(Action(evalCond))
	}

	body := pair.Cdar(t.code)

	switch {
	case body == pair.Null:
		return t.Return(v)
	case sym.Named(pair.Car(body), "=>"):
		t.code = list.New(pair.Cadr(body), Quote(v))

		return t.ReplaceOp(Action(evaluate))
	}

	t.code = body

	return t.ReplaceOp(Action(evalBody))
}

func evalConsStream(t *T) Op {
	return t.evalThen(evalConsStreamNext, pair.Cadr(t.code), pair.Car(t.code))
}

func evalConsStreamNext(t *T) Op {
	return t.Return(pair.Cons(t.PopResult(), delay(t.code, t.env, false)))
}

func evalDefine(t *T) Op {
	target := pair.Car(t.code)
	body := pair.Cdr(t.code)

	// Curried definitions: (define ((f a) b) ...).
	for pair.IsPair(target) {
		body = list.New(pair.Cons(lambdaSyntax, pair.Cons(pair.Cdr(target), body)))
		target = pair.Car(target)
	}

	name := sym.To(target)

	if body == pair.Null {
		t.env.Define(name.String(), void.Value)

		return t.Return(name)
	}

	return t.evalThen(evalDefineNext, name, pair.Car(body))
}

func evalDefineNext(t *T) Op {
	v := t.PopResult()
	name := sym.To(t.code).String()

	if c, ok := v.(*Closure); ok {
		c.Named(name)
	}

	t.env.Define(name, v)

	return t.Return(t.code)
}

func evalDelay(t *T) Op {
	return t.Return(delay(pair.Car(t.code), t.env, false))
}

func evalDelayForce(t *T) Op {
	return t.Return(delay(pair.Car(t.code), t.env, true))
}

// evalDo rewrites do as a loop over a generated name.
//
//  (do ((var init step) ...) (test expr ...) command ...)
//
// becomes
//
//  (let loop ((var init) ...)
//    (if test (begin expr ...) (begin command ... (loop step ...))))
//
func evalDo(t *T) Op {
	loop := sym.Generate("do-loop")

	var bindings, steps []cell.I

	for _, binding := range list.ToSlice(pair.Car(t.code)) {
		v := pair.Car(binding)

		bindings = append(bindings, list.New(v, pair.Cadr(binding)))

		step := v
		if pair.Cddr(binding) != pair.Null {
			step = pair.Caddr(binding)
		}

		steps = append(steps, step)
	}

	finish := pair.Cadr(t.code)
	again := list.Append(pair.Cddr(t.code), list.New(pair.Cons(loop, list.New(steps...))))

	t.code = list.New(letSyntax, loop, list.New(bindings...), list.New(
		ifSyntax,
		pair.Car(finish),
		pair.Cons(beginSyntax, pair.Cdr(finish)),
		pair.Cons(beginSyntax, again),
	))

	return t.ReplaceOp(Action(evaluate))
}

func evalIf(t *T) Op {
	return t.evalThen(evalIfNext, pair.Cdr(t.code), pair.Car(t.code))
}

func evalIfNext(t *T) Op {
	if truth.Value(t.PopResult()) {
		t.code = pair.Car(t.code)
	} else {
		t.code = pair.Cdr(t.code)
		if t.code == pair.Null {
			return t.Return(void.Value)
		}

		t.code = pair.Car(t.code)
	}

	return t.ReplaceOp(Action(evaluate))
}

func evalLambda(t *T) Op {
	return t.Return(NewClosure("", pair.Car(t.code), pair.Cdr(t.code), t.env))
}

// evalLet rewrites let as the application of a lambda expression. A named
// let is rewritten as a letrec that binds the name to that lambda.
func evalLet(t *T) Op {
	var name cell.I

	if sym.Is(pair.Car(t.code)) {
		name = pair.Car(t.code)
		t.code = pair.Cdr(t.code)
	}

	bindings := list.ToSlice(pair.Car(t.code))
	body := pair.Cdr(t.code)

	vars := make([]cell.I, len(bindings))
	inits := make([]cell.I, len(bindings))

	for i, b := range bindings {
		inits[i] = void.Value

		if sym.Is(b) {
			vars[i] = b

			continue
		}

		vars[i] = pair.Car(b)

		if pair.Cdr(b) != pair.Null {
			inits[i] = pair.Cadr(b)
		}
	}

	proc := pair.Cons(lambdaSyntax, pair.Cons(list.New(vars...), body))

	if name != nil {
		proc = list.New(letrecSyntax, list.New(list.New(name, proc)), name)
	}

	t.code = pair.Cons(proc, list.New(inits...))

	return t.ReplaceOp(Action(evaluate))
}

func evalLetStar(t *T) Op {
	bindings := pair.Car(t.code)
	body := pair.Cdr(t.code)

	if bindings == pair.Null || pair.Cdr(bindings) == pair.Null {
		t.code = pair.Cons(letSyntax, t.code)

		return t.ReplaceOp(Action(evaluate))
	}

	inner := pair.Cons(letStar, pair.Cons(pair.Cdr(bindings), body))

	t.code = list.New(letSyntax, list.New(pair.Car(bindings)), inner)

	return t.ReplaceOp(Action(evaluate))
}

// evalLetrec evaluates its body in a new environment that first defines,
// in order, each binding.
func evalLetrec(t *T) Op {
	var defines []cell.I

	for _, b := range list.ToSlice(pair.Car(t.code)) {
		defines = append(defines, pair.Cons(defineSyntax, b))
	}

	t.ReplaceOp(&registers{env: t.env})

	t.code = list.FromSlice(defines, pair.Cdr(t.code))
	t.env = env.New(t.env)

	return t.PushOp(Action(evalBody))
}

func evalNamedLambda(t *T) Op {
	head := pair.Car(t.code)
	name := sym.To(pair.Car(head)).String()

	return t.Return(NewClosure(name, pair.Cdr(head), pair.Cdr(t.code), t.env))
}

func evalOr(t *T) Op {
	if t.code == pair.Null {
		return t.Return(boolean.False)
	}

	if pair.Cdr(t.code) == pair.Null {
		t.code = pair.Car(t.code)

		return t.ReplaceOp(Action(evaluate))
	}

	return t.evalThen(evalOrNext, pair.Cdr(t.code), pair.Car(t.code))
}

func evalOrNext(t *T) Op {
	v := t.PopResult()
	if truth.Value(v) {
		return t.Return(v)
	}

	return t.ReplaceOp(Action(evalOr))
}

func evalQuote(t *T) Op {
	return t.Return(pair.Car(t.code))
}

func evalSet(t *T) Op {
	return t.evalThen(evalSetNext, pair.Car(t.code), pair.Cadr(t.code))
}

func evalSetNext(t *T) Op {
	v := t.PopResult()
	name := sym.To(t.code)

	r := t.env.Lookup(name.String())
	if r == nil {
		panic(condition.New(condition.UnboundVariable, "unbound variable:", name))
	}

	r.Set(v)

	return t.Return(void.Value)
}

func evalTheEnvironment(t *T) Op {
	return t.Return(t.env)
}

func evalUnless(t *T) Op {
	return t.evalThen(evalUnlessNext, pair.Cdr(t.code), pair.Car(t.code))
}

func evalUnlessNext(t *T) Op {
	if truth.Value(t.PopResult()) {
		return t.Return(void.Value)
	}

	return t.ReplaceOp(Action(evalBody))
}

func evalWhen(t *T) Op {
	return t.evalThen(evalWhenNext, pair.Cdr(t.code), pair.Car(t.code))
}

func evalWhenNext(t *T) Op {
	if !truth.Value(t.PopResult()) {
		return t.Return(void.Value)
	}

	return t.ReplaceOp(Action(evalBody))
}

// Helpers.

// evalThen evaluates expr and then performs next with code set to c.
func (t *T) evalThen(next Action, c, expr cell.I) Op {
	t.ReplaceOp(next)
	t.PushOp(&registers{code: c})

	t.code = expr

	return t.PushOp(Action(evaluate))
}

func memv(k, data cell.I) bool {
	for ; pair.IsPair(data); data = pair.Cdr(data) {
		if commands.Eqv(k, pair.Car(data)) {
			return true
		}
	}

	return false
}
