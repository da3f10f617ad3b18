// Package sexpr is the head-and-arguments form that front ends produce, and
// its lowering into expr terms.
package sexpr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/smasher164/curry/bind"
	"github.com/smasher164/curry/expr"
)

const (
	HeadLambda = "lambda" // n, body
	HeadCall   = "call"   // callee, args...
	HeadRef    = "ref"    // hops, index
	HeadStatic = "static" // value
	HeadSym    = "sym"    // name
	HeadBind   = "bind"   // callee, slots...
	HeadHole   = "hole"   // open slot of a bind
)

// ErrSyntax reports input a front end could not read.
var ErrSyntax = errors.New("syntax error")

// Expr is a head applied to arguments. Arguments that are not Exprs are
// plain values.
type Expr struct {
	Head string
	Args []any
}

func New(head string, args ...any) Expr {
	return Expr{head, args}
}

func (e Expr) String() string {
	return "(" + strings.Join(append([]string{e.Head}, lo.Map(e.Args, func(a any, _ int) string {
		if s, ok := a.(string); ok {
			return fmt.Sprintf("%q", s)
		}
		return fmt.Sprint(a)
	})...), " ") + ")"
}

// Env resolves symbols to values.
type Env map[string]any

// Lower turns e into a term. Symbols are looked up in env; bind forms are
// built eagerly, evaluating their slot expressions at lowering time.
func Lower(e any, env Env) (expr.Term, error) {
	x, ok := e.(Expr)
	if !ok {
		return expr.Lit(e), nil
	}
	switch x.Head {
	case HeadLambda:
		if err := wantArgs(x, 2); err != nil {
			return nil, err
		}
		n, ok := toInt(x.Args[0])
		if !ok {
			return nil, malformed(x, "arity %v is not an integer", x.Args[0])
		}
		body, err := Lower(x.Args[1], env)
		if err != nil {
			return nil, err
		}
		return expr.NewLambda(n, body)
	case HeadCall:
		if len(x.Args) == 0 {
			return nil, malformed(x, "call without callee")
		}
		terms := make([]expr.Term, len(x.Args))
		for i, a := range x.Args {
			t, err := Lower(a, env)
			if err != nil {
				return nil, err
			}
			terms[i] = t
		}
		return expr.NewCall(terms[0], terms[1:]...)
	case HeadRef:
		if err := wantArgs(x, 2); err != nil {
			return nil, err
		}
		hops, ok1 := toInt(x.Args[0])
		index, ok2 := toInt(x.Args[1])
		if !ok1 || !ok2 || hops < 0 || index < 0 {
			return nil, malformed(x, "reference needs two non-negative integers")
		}
		return expr.Ref(hops, index), nil
	case HeadStatic:
		if err := wantArgs(x, 1); err != nil {
			return nil, err
		}
		v, err := lowerValue(x.Args[0], env)
		if err != nil {
			return nil, err
		}
		return expr.Static(v)
	case HeadSym:
		if err := wantArgs(x, 1); err != nil {
			return nil, err
		}
		name, ok := x.Args[0].(string)
		if !ok {
			return nil, malformed(x, "symbol name %v is not a string", x.Args[0])
		}
		v, ok := env[name]
		if !ok {
			return nil, malformed(x, "undefined symbol %q", name)
		}
		return expr.Lit(v), nil
	case HeadBind:
		if len(x.Args) == 0 {
			return nil, malformed(x, "bind without callee")
		}
		callee, err := lowerValue(x.Args[0], env)
		if err != nil {
			return nil, err
		}
		slots := make([]any, len(x.Args)-1)
		for i, a := range x.Args[1:] {
			if s, ok := a.(Expr); ok && s.Head == HeadHole {
				continue
			}
			v, err := lowerValue(a, env)
			if err != nil {
				return nil, err
			}
			slots[i] = bind.Escape{Value: v}
		}
		return expr.Lit(bind.New(callee, slots...)), nil
	case HeadHole:
		return nil, malformed(x, "hole outside of a bind")
	}
	return nil, malformed(x, "unknown head %q", x.Head)
}

// lowerValue lowers e and evaluates it outside of any lambda.
func lowerValue(e any, env Env) (any, error) {
	t, err := Lower(e, env)
	if err != nil {
		return nil, err
	}
	return expr.XEval(t, nil)
}

func wantArgs(x Expr, n int) error {
	if len(x.Args) != n {
		return malformed(x, "%s takes %d arguments, got %d", x.Head, n, len(x.Args))
	}
	return nil
}

func malformed(x Expr, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", expr.ErrMalformedTerm, x, fmt.Sprintf(format, args...))
}

func toInt(v any) (int, bool) {
	switch v := v.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case int32:
		return int(v), true
	}
	return 0, false
}
