package expr_test

import (
	"testing"

	"github.com/smasher164/curry/expr"
)

var sampleTerms = []expr.Term{
	expr.Lit(1),
	static("x"),
	expr.Arg(0),
	expr.Ref(2, 1),
	lambda(2, call(expr.Lit(add), expr.Arg(0), expr.Arg(1))),
	lambda(1, lambda(1, call(expr.Lit(add), expr.Ref(1, 0), expr.Arg(0)))),
	call(lambda(1, expr.Arg(0)), call(expr.Lit(concat), expr.Lit("a"), static("b"))),
}

func TestPostwalkIdentity(t *testing.T) {
	for _, term := range sampleTerms {
		got := expr.Postwalk(func(t expr.Term) expr.Term { return t }, term)
		if !expr.Equal(got, term) {
			t.Errorf("got %s, want %s", got.DeBruijnString(), term.DeBruijnString())
		}
	}
}

func TestPrewalkIdentity(t *testing.T) {
	for _, term := range sampleTerms {
		got := expr.Prewalk(func(t expr.Term) expr.Term { return t }, term)
		if !expr.Equal(got, term) {
			t.Errorf("got %s, want %s", got.DeBruijnString(), term.DeBruijnString())
		}
	}
}

func TestPostwalkVisitsChildrenFirst(t *testing.T) {
	var visited []string
	term := call(expr.Lit(add), expr.Lit(1), lambda(1, expr.Arg(0)))
	expr.Postwalk(func(t expr.Term) expr.Term {
		visited = append(visited, t.DeBruijnString())
		return t
	}, term)
	want := []string{"add", "1", "0", "(λ1. 0)", "(add 1 (λ1. 0))"}
	if len(visited) != len(want) {
		t.Fatalf("got %q, want %q", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("got %q, want %q", visited, want)
		}
	}
}

func TestPrewalkVisitsParentFirst(t *testing.T) {
	var visited []string
	term := call(expr.Lit(add), expr.Lit(1), lambda(1, expr.Arg(0)))
	expr.Prewalk(func(t expr.Term) expr.Term {
		visited = append(visited, t.DeBruijnString())
		return t
	}, term)
	want := []string{"(add 1 (λ1. 0))", "add", "1", "(λ1. 0)", "0"}
	if len(visited) != len(want) {
		t.Fatalf("got %q, want %q", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("got %q, want %q", visited, want)
		}
	}
}

func TestPostwalkRewritesLiterals(t *testing.T) {
	inc := func(t expr.Term) expr.Term {
		if l, ok := t.(expr.Literal); ok && !l.IsStatic() {
			if n, ok := l.Value().(int); ok {
				return expr.Lit(n + 1)
			}
		}
		return t
	}
	term := lambda(1, call(expr.Lit(add), expr.Lit(1), expr.Arg(0)))
	got := expr.Postwalk(inc, term)
	v, err := expr.XApply(got.(expr.Lambda), []any{10}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if v != 12 {
		t.Errorf("got %v, want 12", v)
	}
	if !expr.Equal(term, lambda(1, call(expr.Lit(add), expr.Lit(1), expr.Arg(0)))) {
		t.Error("walk modified its input")
	}
}

func TestPrewalkDescendsIntoReplacement(t *testing.T) {
	// Expand the symbol "double" into a lambda, then rewrite the literals
	// inside the expansion.
	double := lambda(1, call(expr.Lit(add), expr.Arg(0), expr.Arg(0)))
	term := call(expr.Lit("double"), expr.Lit(4))
	seen := 0
	got := expr.Prewalk(func(t expr.Term) expr.Term {
		if l, ok := t.(expr.Literal); ok && l.Value() == "double" {
			return double
		}
		if _, ok := t.(expr.ArgPos); ok {
			seen++
		}
		return t
	}, term)
	if seen != 2 {
		t.Errorf("walked %d references in the expansion, want 2", seen)
	}
	v, err := expr.XEval(got, nil)
	if err != nil {
		t.Fatal(err)
	}
	if v != 8 {
		t.Errorf("got %v, want 8", v)
	}
}

func TestPostwalkDepth(t *testing.T) {
	depths := map[string]int{}
	term := lambda(1, call(expr.Lit(add), expr.Arg(0), lambda(1, expr.Ref(1, 0))))
	expr.PostwalkDepth(func(t expr.Term, depth int) expr.Term {
		depths[t.DeBruijnString()] = depth
		return t
	}, term)
	for s, want := range map[string]int{
		"(λ1. (add 0 (λ1. ↑0)))": 0,
		"(add 0 (λ1. ↑0))":       1,
		"0":                      1,
		"(λ1. ↑0)":               1,
		"↑0":                     2,
	} {
		if depths[s] != want {
			t.Errorf("%s: got depth %d, want %d", s, depths[s], want)
		}
	}
}

func TestArityChangeSurfacesAtEvaluation(t *testing.T) {
	term := lambda(2, expr.Arg(1))
	shrunk := expr.Postwalk(func(t expr.Term) expr.Term {
		if l, ok := t.(expr.Lambda); ok {
			return lambda(1, l.Body())
		}
		return t
	}, term)
	if _, err := expr.XApply(shrunk.(expr.Lambda), []any{1}, nil); err == nil {
		t.Error("expected an unbound variable")
	}
}
