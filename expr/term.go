// Package expr represents calls and lambda abstractions as inspectable data.
//
// Variables are de Bruijn style references: an ArgPos names a positional
// parameter of the nearest enclosing Lambda, and each ParentScope wrapper
// moves the reference one Lambda further out. Terms are immutable values
// that can be evaluated against a Context chain, rewritten with the
// walkers, relabeled for display, or used as dispatch keys via their Shape.
package expr

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

type Term interface {
	isTerm()
	DeBruijnString() string
	String() string
}

// KeywordKind describes which keyword arguments a Lambda accepts.
type KeywordKind uint8

const (
	NoKeywordArguments KeywordKind = iota
)

func (k KeywordKind) String() string {
	switch k {
	case NoKeywordArguments:
		return "no keyword arguments"
	}
	panic("unreachable")
}

type Arity struct {
	Positional int
	Keywords   KeywordKind
}

// Literal is an eagerly captured value. A static literal carries its value
// in the term's shape instead of only in its payload.
type Literal struct {
	value  any
	static bool
}

func (Literal) isTerm() {}

func Lit(v any) Literal {
	return Literal{value: v}
}

// Static returns a literal on the static channel. The value must be
// comparable so that it can take part in shape identity.
func Static(v any) (Literal, error) {
	if v != nil && !reflect.TypeOf(v).Comparable() {
		return Literal{}, fmt.Errorf("%w: static value of type %T is not comparable", ErrMalformedTerm, v)
	}
	return Literal{value: v, static: true}, nil
}

func (l Literal) Value() any     { return l.value }
func (l Literal) IsStatic() bool { return l.static }

func (l Literal) DeBruijnString() string {
	if l.static {
		return "#" + formatValue(l.value)
	}
	return formatValue(l.value)
}

func (l Literal) String() string { return l.DeBruijnString() }

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "nothing"
	case string:
		return strconv.Quote(v)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(v)
}

// ArgPos refers to the positional parameter at Index of the nearest
// enclosing Lambda. The label is for display only.
type ArgPos struct {
	index int
	label string
}

func (ArgPos) isTerm() {}

func Arg(i int) ArgPos {
	return ArgPos{index: i}
}

func (a ArgPos) Index() int    { return a.index }
func (a ArgPos) Label() string { return a.label }

func (a ArgPos) WithLabel(s string) ArgPos {
	a.label = s
	return a
}

func (a ArgPos) DeBruijnString() string {
	return strconv.Itoa(a.index)
}

func (a ArgPos) String() string {
	if a.label != "" {
		return a.label
	}
	return a.DeBruijnString()
}

// ParentScope lifts a reference one lexical level outward. The zero value
// wraps nothing and is not a valid term; build one with Parent or Ref.
type ParentScope struct {
	inner Term
}

func (ParentScope) isTerm() {}

// Parent wraps inner, which must itself be an ArgPos or a ParentScope
// chain ending in one.
func Parent(inner Term) (ParentScope, error) {
	if !isRef(inner) {
		return ParentScope{}, fmt.Errorf("%w: parent scope must wrap a variable, got %T", ErrMalformedTerm, inner)
	}
	return ParentScope{inner}, nil
}

func isRef(t Term) bool {
	for {
		switch r := t.(type) {
		case ArgPos:
			return true
		case ParentScope:
			t = r.inner
		default:
			return false
		}
	}
}

// Ref builds the reference to parameter i of the Lambda hops levels out.
func Ref(hops, i int) Term {
	if hops < 0 || i < 0 {
		panic(fmt.Sprintf("expr: negative reference (%d, %d)", hops, i))
	}
	var t Term = Arg(i)
	for j := 0; j < hops; j++ {
		t = ParentScope{t}
	}
	return t
}

func (p ParentScope) Inner() Term { return p.inner }

// Hops is the number of ParentScope wrappers in the chain, p included.
func (p ParentScope) Hops() int {
	hops, _ := unwrapRef(p)
	return hops
}

// Index is the parameter index at the bottom of the chain.
func (p ParentScope) Index() int {
	_, a := unwrapRef(p)
	return a.index
}

func (p ParentScope) Label() string {
	_, a := unwrapRef(p)
	return a.label
}

func (p ParentScope) DeBruijnString() string {
	return "↑" + p.inner.DeBruijnString()
}

func (p ParentScope) String() string {
	if _, a := unwrapRef(p); a.label != "" {
		return a.label
	}
	return p.DeBruijnString()
}

// unwrapRef returns the hop count and the ArgPos at the bottom of a
// reference chain. The constructors guarantee the chain ends in an ArgPos.
func unwrapRef(t Term) (int, ArgPos) {
	hops := 0
	for {
		switch r := t.(type) {
		case ArgPos:
			return hops, r
		case ParentScope:
			hops++
			t = r.inner
		default:
			panic("unreachable")
		}
	}
}

// relabelRef rebuilds a reference chain with a new label on its ArgPos.
func relabelRef(t Term, label string) Term {
	hops, a := unwrapRef(t)
	var r Term = a.WithLabel(label)
	for i := 0; i < hops; i++ {
		r = ParentScope{r}
	}
	return r
}

// Lambda abstracts over Arity.Positional parameters.
type Lambda struct {
	arity  Arity
	body   Term
	params []string
}

func (Lambda) isTerm() {}

func NewLambda(n int, body Term) (Lambda, error) {
	if n < 0 {
		return Lambda{}, fmt.Errorf("%w: negative arity %d", ErrMalformedTerm, n)
	}
	if body == nil {
		return Lambda{}, fmt.Errorf("%w: lambda without body", ErrMalformedTerm)
	}
	return Lambda{arity: Arity{Positional: n}, body: body}, nil
}

func (l Lambda) Arity() Arity { return l.arity }
func (l Lambda) Body() Term   { return l.body }

// Params returns the display labels of the parameters, or nil when the
// lambda has not been relabeled.
func (l Lambda) Params() []string { return slices.Clone(l.params) }

func (l Lambda) withBody(body Term) Lambda {
	l.body = body
	return l
}

func (l Lambda) DeBruijnString() string {
	return "(λ" + strconv.Itoa(l.arity.Positional) + ". " + l.body.DeBruijnString() + ")"
}

func (l Lambda) String() string {
	if len(l.params) != l.arity.Positional || l.arity.Positional == 0 {
		return "(λ" + strconv.Itoa(l.arity.Positional) + ". " + l.body.String() + ")"
	}
	return "(λ" + strings.Join(l.params, " ") + ". " + l.body.String() + ")"
}

// Call is a delayed application of Callee to positional Args.
type Call struct {
	callee Term
	args   []Term
}

func (Call) isTerm() {}

func NewCall(callee Term, args ...Term) (Call, error) {
	if callee == nil {
		return Call{}, fmt.Errorf("%w: call without callee", ErrMalformedTerm)
	}
	if i := slices.IndexFunc(args, func(t Term) bool { return t == nil }); i >= 0 {
		return Call{}, fmt.Errorf("%w: call argument %d is nil", ErrMalformedTerm, i)
	}
	return Call{callee: callee, args: slices.Clone(args)}, nil
}

// NewCallKw is NewCall with a keyword channel. Keyword arguments are
// reserved: any non-empty kwargs is rejected.
func NewCallKw(callee Term, args []Term, kwargs map[string]Term) (Call, error) {
	if len(kwargs) != 0 {
		return Call{}, fmt.Errorf("%w: keyword arguments %v are not supported", ErrMalformedTerm, lo.Keys(kwargs))
	}
	return NewCall(callee, args...)
}

func (c Call) Callee() Term   { return c.callee }
func (c Call) Args() []Term   { return slices.Clone(c.args) }
func (c Call) NumArgs() int   { return len(c.args) }
func (c Call) Arg(i int) Term { return c.args[i] }

// Kwargs is always empty; see NewCallKw.
func (c Call) Kwargs() map[string]Term { return nil }

func (c Call) DeBruijnString() string {
	return "(" + strings.Join(append([]string{c.callee.DeBruijnString()}, lo.Map(c.args, func(t Term, _ int) string {
		return t.DeBruijnString()
	})...), " ") + ")"
}

func (c Call) String() string {
	return "(" + strings.Join(append([]string{c.callee.String()}, lo.Map(c.args, func(t Term, _ int) string {
		return t.String()
	})...), " ") + ")"
}
