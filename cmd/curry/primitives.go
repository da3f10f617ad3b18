package main

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/smasher164/curry/expr"
	"github.com/smasher164/curry/sexpr"
)

var errDivideByZero = errors.New("division by zero")

func primitive(name string, fn any) expr.Callable {
	c, err := expr.FuncOf(fn)
	if err != nil {
		panic(err)
	}
	return expr.Named(name, c)
}

// primitives is the environment every program is lowered in.
var primitives = sexpr.Env{
	"add":    primitive("add", func(a, b int) int { return a + b }),
	"sub":    primitive("sub", func(a, b int) int { return a - b }),
	"mul":    primitive("mul", func(a, b int) int { return a * b }),
	"div":    primitive("div", div),
	"sum":    primitive("sum", sum),
	"concat": primitive("concat", func(a, b string) string { return a + b }),
	"repeat": primitive("repeat", strings.Repeat),
	"upper":  primitive("upper", strings.ToUpper),
	"itoa":   primitive("itoa", strconv.Itoa),
	"eq":     primitive("eq", expr.Func(eq)),
	"if":     primitive("if", expr.Func(ifThenElse)),
	"true":   true,
	"false":  false,
}

func div(a, b int) (int, error) {
	if b == 0 {
		return 0, errDivideByZero
	}
	return a / b, nil
}

func sum(xs ...int) int {
	n := 0
	for _, x := range xs {
		n += x
	}
	return n
}

func eq(args []any) (any, error) {
	if len(args) != 2 {
		return nil, errors.New("eq takes two arguments")
	}
	return reflect.DeepEqual(args[0], args[1]), nil
}

func ifThenElse(args []any) (any, error) {
	if len(args) != 3 {
		return nil, errors.New("if takes three arguments")
	}
	b, ok := args[0].(bool)
	if !ok {
		return nil, errors.New("first argument to if must be a boolean")
	}
	if b {
		return args[1], nil
	}
	return args[2], nil
}
