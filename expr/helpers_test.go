package expr_test

import (
	"fmt"

	"github.com/smasher164/curry/expr"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

var (
	add = expr.Named("add", expr.Func(func(args []any) (any, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: add takes 2 arguments", expr.ErrArityMismatch)
		}
		return args[0].(int) + args[1].(int), nil
	}))
	concat = expr.Named("concat", expr.Func(func(args []any) (any, error) {
		return args[0].(string) + args[1].(string), nil
	}))
)

func lambda(n int, body expr.Term) expr.Lambda {
	return must(expr.NewLambda(n, body))
}

func call(callee expr.Term, args ...expr.Term) expr.Call {
	return must(expr.NewCall(callee, args...))
}

func static(v any) expr.Literal {
	return must(expr.Static(v))
}
