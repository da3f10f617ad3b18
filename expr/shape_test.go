package expr_test

import (
	"errors"
	"math"
	"testing"

	"github.com/smasher164/curry/expr"
)

func TestStaticArgumentsAreStructural(t *testing.T) {
	ten := call(expr.Lit(add), static(10), expr.Arg(0))
	twenty := call(expr.Lit(add), static(20), expr.Arg(0))
	if expr.Equal(ten, twenty) {
		t.Error("terms with different static values are equal")
	}
	if expr.Shape(ten) == expr.Shape(twenty) {
		t.Errorf("shared shape %s", expr.Shape(ten))
	}
	if expr.ShapeKey(ten) == expr.ShapeKey(twenty) {
		t.Error("shared shape key")
	}
}

func TestRuntimeArgumentsShareShape(t *testing.T) {
	ten := call(expr.Lit(add), expr.Lit(10), expr.Arg(0))
	twenty := call(expr.Lit(add), expr.Lit(20), expr.Arg(0))
	if expr.Equal(ten, twenty) {
		t.Error("terms with different runtime values are equal")
	}
	if expr.Shape(ten) != expr.Shape(twenty) {
		t.Errorf("got shapes %s and %s", expr.Shape(ten), expr.Shape(twenty))
	}
	if expr.ShapeKey(ten) != expr.ShapeKey(twenty) {
		t.Error("different shape keys")
	}
	if !expr.Equal(ten, call(expr.Lit(add), expr.Lit(10), expr.Arg(0))) {
		t.Error("identical terms are not equal")
	}
}

func TestShapeSeparatesChannels(t *testing.T) {
	if expr.Shape(expr.Lit(1)) == expr.Shape(static(1)) {
		t.Error("static and runtime literal share a shape")
	}
	if expr.Equal(expr.Lit(1), static(1)) {
		t.Error("static and runtime literal are equal")
	}
	if expr.Shape(expr.Lit(1)) == expr.Shape(expr.Lit("1")) {
		t.Error("literals of different types share a shape")
	}
}

func TestEqual(t *testing.T) {
	for _, tt := range []struct {
		a, b expr.Term
		want bool
	}{
		{expr.Arg(0), expr.Arg(0).WithLabel("x"), true},
		{expr.Arg(0), expr.Arg(1), false},
		{expr.Ref(1, 0), expr.Arg(0), false},
		{expr.Ref(1, 0), expr.Ref(1, 0), true},
		{lambda(1, expr.Arg(0)), lambda(2, expr.Arg(0)), false},
		{expr.Lit([]int{1}), expr.Lit([]int{1}), true},
		{expr.Lit(add), expr.Lit(add), true},
		{expr.Lit(add), expr.Lit(concat), false},
		{call(expr.Lit(add)), call(expr.Lit(add), expr.Lit(1)), false},
		{expr.Lit(1), lambda(0, expr.Lit(1)), false},
		{expr.Lit(math.NaN()), expr.Lit(math.NaN()), true},
		{expr.Lit(float32(math.NaN())), expr.Lit(math.NaN()), false},
		{expr.Lit(1.5), expr.Lit(math.NaN()), false},
	} {
		if got := expr.Equal(tt.a, tt.b); got != tt.want {
			t.Errorf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestEqualNaNAfterPostwalk(t *testing.T) {
	term := call(expr.Lit(add), expr.Lit(math.NaN()), expr.Arg(0))
	if got := expr.Postwalk(func(t expr.Term) expr.Term { return t }, term); !expr.Equal(got, term) {
		t.Errorf("postwalk identity changed %s", term)
	}
}

func TestRuntimeCalleesShareShape(t *testing.T) {
	plus := call(expr.Lit(add), expr.Arg(0), expr.Arg(1))
	join := call(expr.Lit(concat), expr.Arg(0), expr.Arg(1))
	if expr.Shape(plus) != expr.Shape(join) {
		t.Errorf("got shapes %s and %s", expr.Shape(plus), expr.Shape(join))
	}
	plus = call(static(add), expr.Arg(0), expr.Arg(1))
	join = call(static(concat), expr.Arg(0), expr.Arg(1))
	if expr.Shape(plus) == expr.Shape(join) {
		t.Errorf("static callees share shape %s", expr.Shape(plus))
	}
}

func TestDispatcher(t *testing.T) {
	d := expr.NewDispatcher[string]()
	d.Register(call(expr.Lit(add), static(10), expr.Arg(0)), func(expr.Term) (string, error) {
		return "plus ten", nil
	})
	d.Register(call(expr.Lit(add), static(20), expr.Arg(0)), func(expr.Term) (string, error) {
		return "plus twenty", nil
	})
	d.Register(call(expr.Lit(add), expr.Lit(0), expr.Arg(0)), func(t expr.Term) (string, error) {
		return "plus " + t.(expr.Call).Arg(0).String(), nil
	})
	d.Register(call(static(add), expr.Arg(0), expr.Arg(1)), func(expr.Term) (string, error) {
		return "sum", nil
	})
	d.Register(call(static(concat), expr.Arg(0), expr.Arg(1)), func(expr.Term) (string, error) {
		return "join", nil
	})
	for _, tt := range []struct {
		term expr.Term
		want string
	}{
		{call(expr.Lit(add), static(10), expr.Arg(0)), "plus ten"},
		{call(expr.Lit(add), static(20), expr.Arg(0)), "plus twenty"},
		{call(expr.Lit(add), expr.Lit(7), expr.Arg(0)), "plus 7"},
		{call(static(add), expr.Arg(0), expr.Arg(1)), "sum"},
		{call(static(concat), expr.Arg(0), expr.Arg(1)), "join"},
	} {
		got, err := d.Dispatch(tt.term)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
	if _, err := d.Dispatch(call(expr.Lit(add), static(30), expr.Arg(0))); !errors.Is(err, expr.ErrNotApplicable) {
		t.Errorf("got %v, want %v", err, expr.ErrNotApplicable)
	}
	if _, ok := d.Lookup(expr.Arg(0)); ok {
		t.Error("found a handler for an unregistered shape")
	}
}
