package sexpr_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/smasher164/curry/expr"
	"github.com/smasher164/curry/sexpr"
)

func TestDecode(t *testing.T) {
	const doc = `
call:
  - lambda:
      - 2
      - call: [{sym: add}, {ref: [0, 0]}, {ref: [0, 1]}]
  - 1
  - static: 2
`
	e, err := sexpr.Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	term, err := sexpr.Lower(e, env)
	if err != nil {
		t.Fatal(err)
	}
	if want := "((λ2. (add 0 1)) 1 #2)"; term.DeBruijnString() != want {
		t.Errorf("got %s, want %s", term.DeBruijnString(), want)
	}
	got, err := expr.XEval(term, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != 3 {
		t.Errorf("got %v, want 3", got)
	}
}

func TestDecodeBind(t *testing.T) {
	const doc = `
call:
  - bind: [{sym: concat}, {hole: }, ", world"]
  - hello
`
	e, err := sexpr.Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	term, err := sexpr.Lower(e, env)
	if err != nil {
		t.Fatal(err)
	}
	got, err := expr.XEval(term, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello, world" {
		t.Errorf("got %q", got)
	}
}

func TestDecodeValues(t *testing.T) {
	e, err := sexpr.Decode(strings.NewReader("[1, two, null]"))
	if err != nil {
		t.Fatal(err)
	}
	vs, ok := e.([]any)
	if !ok || len(vs) != 3 || vs[0] != 1 || vs[1] != "two" || vs[2] != nil {
		t.Errorf("got %#v", e)
	}
	e, err = sexpr.Decode(strings.NewReader("sym: add"))
	if err != nil {
		t.Fatal(err)
	}
	if x, ok := e.(sexpr.Expr); !ok || x.Head != sexpr.HeadSym || len(x.Args) != 1 || x.Args[0] != "add" {
		t.Errorf("got %#v", e)
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, doc := range []string{
		"",
		"{call: [], sym: add}",
		"[{sym: add}]",
		"call: [",
	} {
		if _, err := sexpr.Decode(strings.NewReader(doc)); !errors.Is(err, sexpr.ErrSyntax) {
			t.Errorf("%q: got %v, want %v", doc, err, sexpr.ErrSyntax)
		}
	}
}
