// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/scope"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/list"
	"github.com/michaelmacinnis/tern/internal/common/type/pair"
	"github.com/michaelmacinnis/tern/internal/common/type/sym"
	"github.com/michaelmacinnis/tern/internal/common/type/void"
	"github.com/michaelmacinnis/tern/internal/engine/commands"
)

// Actions associates special forms and primitives with names in the scope s.
func Actions(s scope.I) {
	// Special forms.
	for k, v := range map[string]Action{
		"and":                evalAnd,
		"assert":             evalAssert,
		"begin":              evalBegin,
		"case":               evalCase,
		"cond":               evalCond,
		"cons-stream":        evalConsStream,
		"define":             evalDefine,
		"define-record-type": evalDefineRecordType,
		"delay":              evalDelay,
		"delay-force":        evalDelayForce,
		"do":                 evalDo,
		"guard":              evalGuard,
		"if":                 evalIf,
		"lambda":             evalLambda,
		"let":                evalLet,
		"let*":               evalLetStar,
		"letrec":             evalLetrec,
		"letrec*":            evalLetrec,
		"named-lambda":       evalNamedLambda,
		"or":                 evalOr,
		"quasiquote":         evalQuasiquote,
		"quote":              evalQuote,
		"set!":               evalSet,
		"the-environment":    evalTheEnvironment,
		"unless":             evalUnless,
		"when":               evalWhen,
	} {
		s.Define(k, &Syntax{Op: v, name: k})
	}

	// Methods.
	for k, v := range map[string]Action{
		"%stack-depth":                   stackDepth,
		"apply":                          apply,
		"call-with-current-continuation": callcc,
		"call-with-values":               callWithValues,
		"call/cc":                        callcc,
		"dynamic-wind":                   dynamicWind,
		"error":                          raiseError,
		"eval":                           eval,
		"exit":                           exit,
		"force":                          force,
		"interaction-environment":        interactionEnvironment,
		"make-promise":                   makePromise,
		"raise":                          raise,
		"raise-continuable":              raiseContinuable,
		"values":                         valuesMethod,
		"with-exception-handler":         withExceptionHandler,
		"within-continuation":            withinContinuation,
	} {
		s.Define(k, &Method{Op: v, name: k})
	}

	// Builtins.
	for k, v := range builtins() {
		s.Define(k, NewBuiltin(k, v))
	}

	for k, v := range commands.Builtins() {
		s.Define(k, NewBuiltin(k, v))
	}

	for k, v := range commands.IO() {
		s.Define(k, session(k, v))
	}
}

// Quote returns an expression that evaluates to c.
func Quote(c cell.I) cell.I {
	return list.New(quote, c)
}

//nolint:gochecknoglobals
var quote = &Syntax{Op: Action(evalQuote), name: "quote"}

// Actions.

// evaluate determines the value of the expression in code.
//
// Result:
//  dump:  Value ...
//  stack: Previous ...
//
// Requires:
//  code:  Expression
//  stack: evaluate Previous ...
//
// Symbols are looked up. Pairs are special forms or applications.
// Everything else evaluates to itself.
//
func evaluate(t *T) Op {
	switch c := t.code.(type) {
	case *sym.T:
		r := t.env.Lookup(c.String())
		if r == nil {
			panic(condition.New(condition.UnboundVariable, "unbound variable:", c))
		}

		v := r.Get()
		if _, ok := v.(*Syntax); ok {
			panic(condition.New(
				condition.WrongType,
				"syntactic keyword may not be used as an expression:", c,
			))
		}

		return t.Return(v)

	case *pair.T:
		if c == pair.Null {
			panic(condition.New(condition.WrongType, "combination must be a proper list"))
		}

		if syntax := t.syntax(pair.Car(c)); syntax != nil {
			t.code = pair.Cdr(c)

			return syntax.Execute(t)
		}

		t.ReplaceOp(Action(execApplication))
		t.PushResult(nil)
		t.PushOp(Action(evalArgs))
		t.PushOp(&registers{code: pair.Cdr(c)})

		t.code = pair.Car(c)

		return t.PushOp(Action(evaluate))
	}

	return t.Return(t.code)
}

// evalArgs evaluates each operand in turn, left to right.
//
// Result:
//  code:  Arg_0
//  stack: evaluate Restore(code: Arg_1 ... Arg_N) evalArgs Previous ...
//
// Requires:
//  code:  Arg_0 ... Arg_N
//  stack: evalArgs Previous ...
//
func evalArgs(t *T) Op {
	if t.code == pair.Null {
		return t.PreviousOp()
	}

	if !pair.IsPair(t.code) {
		panic(condition.New(condition.WrongType, "combination must be a proper list"))
	}

	t.PushOp(&registers{code: pair.Cdr(t.code)})

	t.code = pair.Car(t.code)

	return t.PushOp(Action(evaluate))
}

// evalBody evaluates a sequence of expressions. The last is evaluated in
// place of evalBody so that it is in tail position.
func evalBody(t *T) Op {
	if t.code == pair.Null {
		return t.Return(void.Value)
	}

	next := pair.Cdr(t.code)
	if next == pair.Null {
		t.code = pair.Car(t.code)

		return t.ReplaceOp(Action(evaluate))
	}

	t.ReplaceOp(Action(evalBodyNext))
	t.PushOp(&registers{code: next})

	t.code = pair.Car(t.code)

	return t.PushOp(Action(evaluate))
}

func evalBodyNext(t *T) Op {
	t.PopResult()

	return t.ReplaceOp(Action(evalBody))
}

// execApplication applies the evaluated operator to the evaluated operands.
func execApplication(t *T) Op {
	args := t.arguments()

	t.code = pair.Cdr(args)

	return t.apply(pair.Car(args))
}

func discard(t *T) Op {
	t.PopResult()

	return t.PreviousOp()
}

func nop(t *T) Op {
	return t.PreviousOp()
}

// Helpers.

// Procedures all conform to the command interface.
type command interface {
	cell.I

	Execute(*T) Op
}

// apply applies f to the arguments in code. The current operation is
// replaced so this is a tail call.
func (t *T) apply(f cell.I) Op {
	c, ok := f.(command)
	if !ok {
		panic(condition.New(condition.NonProcedure, "the object is not applicable:", f))
	}

	return c.Execute(t)
}

// call arranges for f to be applied to args. The result is left for the
// current operation.
func (t *T) call(f, args cell.I) Op {
	t.PushOp(Action(nop))

	t.code = args

	return t.apply(f)
}

// syntax returns the special form named by head, if any.
func (t *T) syntax(head cell.I) *Syntax {
	switch h := head.(type) {
	case *Syntax:
		return h
	case *sym.T:
		if r := t.env.Lookup(h.String()); r != nil {
			if s, ok := r.Get().(*Syntax); ok {
				return s
			}
		}
	}

	return nil
}

func session(n string, do func(s commands.Session, args cell.I) cell.I) *Method {
	return &Method{Op: Action(func(t *T) Op {
		return t.Return(do(t.monitor, t.code))
	}), name: n}
}
