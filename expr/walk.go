package expr

// Postwalk rebuilds t bottom-up: the children of each node are transformed
// first, then f is applied to the rebuilt node. References (an ArgPos or a
// whole ParentScope chain) and literals are leaves.
//
// A transform that changes a Lambda's arity without rewriting the
// references in its body yields a term that fails with ErrUnboundVariable
// when evaluated; the walk itself does not check.
func Postwalk(f func(Term) Term, t Term) Term {
	return PostwalkDepth(func(t Term, _ int) Term { return f(t) }, t)
}

// PostwalkDepth is Postwalk with the lexical depth of each node, i.e. the
// number of Lambda bodies enclosing it.
func PostwalkDepth(f func(t Term, depth int) Term, t Term) Term {
	return postwalk(f, t, 0)
}

func postwalk(f func(Term, int) Term, t Term, depth int) Term {
	switch t := t.(type) {
	case Literal, ArgPos, ParentScope:
		return apply(f, t, depth)
	case Lambda:
		return apply(f, t.withBody(postwalk(f, t.body, depth+1)), depth)
	case Call:
		c := Call{callee: postwalk(f, t.callee, depth), args: make([]Term, len(t.args))}
		for i, arg := range t.args {
			c.args[i] = postwalk(f, arg, depth)
		}
		return apply(f, c, depth)
	}
	panic("unreachable")
}

// Prewalk applies f to each node before descending into the result. If f
// keeps producing nodes that it rewrites again, Prewalk does not terminate;
// avoiding that is up to f.
func Prewalk(f func(Term) Term, t Term) Term {
	t = apply(func(t Term, _ int) Term { return f(t) }, t, 0)
	switch t := t.(type) {
	case Literal, ArgPos, ParentScope:
		return t
	case Lambda:
		return t.withBody(Prewalk(f, t.body))
	case Call:
		c := Call{callee: Prewalk(f, t.callee), args: make([]Term, len(t.args))}
		for i, arg := range t.args {
			c.args[i] = Prewalk(f, arg)
		}
		return c
	}
	panic("unreachable")
}

func apply(f func(Term, int) Term, t Term, depth int) Term {
	r := f(t, depth)
	if r == nil {
		panic("expr: walk transform returned a nil term for " + t.DeBruijnString())
	}
	return r
}
