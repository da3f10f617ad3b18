package expr

import (
	"fmt"
)

// Closure is the value of a Lambda term: the lambda together with the
// context it was evaluated in.
type Closure struct {
	lambda Lambda
	ctx    *Context
}

func (c *Closure) Lambda() Lambda    { return c.lambda }
func (c *Closure) Context() *Context { return c.ctx }

func (c *Closure) Call(args []any) (any, error) {
	return XApply(c.lambda, args, c.ctx)
}

func (c *Closure) String() string {
	return c.lambda.String()
}

// XApply binds args to the parameters of l in a fresh context whose parent
// is def, and evaluates the body there.
func XApply(l Lambda, args []any, def *Context) (any, error) {
	if len(args) != l.arity.Positional {
		return nil, fmt.Errorf("%w: lambda takes %d arguments, got %d", ErrArityMismatch, l.arity.Positional, len(args))
	}
	return XEval(l.body, NewContext(args, def))
}

// XEval interprets t in ctx. A nil ctx is the empty top-level scope.
func XEval(t Term, ctx *Context) (any, error) {
	switch t := t.(type) {
	case Literal:
		return t.value, nil
	case ArgPos, ParentScope:
		hops, a := unwrapRef(t)
		return ctx.Lookup(hops, a.index)
	case Lambda:
		return &Closure{lambda: t, ctx: ctx}, nil
	case Call:
		fn, err := XEval(t.callee, ctx)
		if err != nil {
			return nil, err
		}
		args := make([]any, len(t.args))
		for i, arg := range t.args {
			if args[i], err = XEval(arg, ctx); err != nil {
				return nil, err
			}
		}
		callable, ok := fn.(Callable)
		if !ok {
			return nil, fmt.Errorf("%w: %s evaluated to %T", ErrNotApplicable, t.callee.DeBruijnString(), fn)
		}
		return callable.Call(args)
	case nil:
		return nil, fmt.Errorf("%w: nil term", ErrMalformedTerm)
	}
	panic("unreachable")
}
