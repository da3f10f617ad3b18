package expr

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// LabelFunc names parameter index of the Lambda whose body is at
// antecedentDepth, as seen from a reference at referentDepth.
type LabelFunc func(referentDepth, antecedentDepth, index int) string

// Relabel attaches display labels to every reference and Lambda parameter
// in t. Binding structure is not changed, so the result is Equal to t.
// Depth 0 is outside every Lambda; a Lambda's body is one deeper than the
// Lambda itself.
func Relabel(label LabelFunc, t Term) Term {
	return PostwalkDepth(func(t Term, depth int) Term {
		switch t := t.(type) {
		case ArgPos, ParentScope:
			hops, a := unwrapRef(t)
			return relabelRef(t, label(depth, depth-hops, a.index))
		case Lambda:
			d := depth + 1
			t.params = lo.Times(t.arity.Positional, func(i int) string {
				return label(d, d, i)
			})
			return t
		}
		return t
	}, t)
}

// Letters names parameters a, b, c, ... by index and primes them once per
// level below the outermost Lambda, so nested binders never collide.
// References that escape t are marked with one ↑ per missing level.
func Letters(_, antecedentDepth, index int) string {
	var name string
	if index < 26 {
		name = string(rune('a' + index))
	} else {
		name = "x" + strconv.Itoa(index)
	}
	switch {
	case antecedentDepth > 1:
		name += strings.Repeat("'", antecedentDepth-1)
	case antecedentDepth < 1:
		name = strings.Repeat("↑", 1-antecedentDepth) + name
	}
	return name
}
