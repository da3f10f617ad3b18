package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/smasher164/curry/expr"
)

func nodeLabel(t expr.Term) string {
	switch t := t.(type) {
	case expr.Literal, expr.ArgPos, expr.ParentScope:
		return t.DeBruijnString()
	case expr.Lambda:
		return "λ" + strconv.Itoa(t.Arity().Positional)
	case expr.Call:
		return "call"
	}
	panic("unreachable")
}

func children(t expr.Term) []expr.Term {
	switch t := t.(type) {
	case expr.Lambda:
		return []expr.Term{t.Body()}
	case expr.Call:
		return append([]expr.Term{t.Callee()}, t.Args()...)
	}
	return nil
}

func printChildren(buf *strings.Builder, indent string, ts []expr.Term) {
	for i, t := range ts {
		switch i {
		case len(ts) - 1:
			fmt.Fprintf(buf, "%s└─%s\n", indent, nodeLabel(t))
			printChildren(buf, indent+"  ", children(t))
		default:
			fmt.Fprintf(buf, "%s├─%s\n", indent, nodeLabel(t))
			printChildren(buf, indent+"│ ", children(t))
		}
	}
}

func treeString(t expr.Term) string {
	buf := new(strings.Builder)
	fmt.Fprintln(buf, nodeLabel(t))
	printChildren(buf, "", children(t))
	return buf.String()
}
