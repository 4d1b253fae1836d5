// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/tern/internal/common/interface/cell"
	"github.com/michaelmacinnis/tern/internal/common/interface/scope"
)

// The promise type holds a delayed expression and, once forced, its value.
type promise struct {
	chain bool // Created by delay-force. Forcing yields another promise.
	done  bool
	env   scope.I
	expr  cell.I
	value cell.I
}

func delay(expr cell.I, e scope.I, chain bool) *promise {
	return &promise{chain: chain, env: e, expr: expr}
}

func (p *promise) Equal(c cell.I) bool {
	return cell.I(p) == c
}

func (p *promise) Literal() string {
	return "#[promise]"
}

func (p *promise) Name() string {
	return "promise"
}

func (p *promise) adopt(q *promise) {
	if q.done {
		p.resolve(q.value)

		return
	}

	p.chain = q.chain
	p.env = q.env
	p.expr = q.expr
}

func (p *promise) resolve(v cell.I) {
	p.done = true
	p.env = nil
	p.expr = nil
	p.value = v
}

// force evaluates the promise p, if it has not already been forced, and
// leaves its value as the result.
func (t *T) force(p *promise) Op {
	if p.done {
		return t.Return(p.value)
	}

	t.ReplaceOp(Action(func(t *T) Op {
		v := t.PopResult()

		// The expression may have forced p itself.
		if p.done {
			return t.Return(p.value)
		}

		if q, ok := v.(*promise); ok && p.chain {
			p.adopt(q)

			return t.force(p)
		}

		p.resolve(v)

		return t.Return(v)
	}))
	t.PushOp(&registers{env: t.env})

	t.code = p.expr
	t.env = p.env

	return t.PushOp(Action(evaluate))
}
