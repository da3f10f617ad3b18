package expr

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/segmentio/fasthash/fnv1a"
)

// Equal reports whether a and b are the same term, including the values of
// runtime literals. Display labels are ignored. Literal values are compared
// with reflect.DeepEqual, except that a float NaN equals itself and a func
// value equals the same func; funcs nested inside slices, maps or structs
// are only equal when both are nil.
func Equal(a, b Term) bool {
	switch a := a.(type) {
	case Literal:
		b, ok := b.(Literal)
		return ok && a.static == b.static && valueEqual(a.value, b.value)
	case ArgPos, ParentScope:
		switch b.(type) {
		case ArgPos, ParentScope:
		default:
			return false
		}
		ha, ra := unwrapRef(a)
		hb, rb := unwrapRef(b)
		return ha == hb && ra.index == rb.index
	case Lambda:
		b, ok := b.(Lambda)
		return ok && a.arity == b.arity && Equal(a.body, b.body)
	case Call:
		b, ok := b.(Call)
		if !ok || len(a.args) != len(b.args) || !Equal(a.callee, b.callee) {
			return false
		}
		for i := range a.args {
			if !Equal(a.args[i], b.args[i]) {
				return false
			}
		}
		return true
	case nil:
		return b == nil
	}
	panic("unreachable")
}

func valueEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Func:
		return va.Pointer() == vb.Pointer()
	case reflect.Float32, reflect.Float64:
		fa, fb := va.Float(), vb.Float()
		return fa == fb || math.IsNaN(fa) && math.IsNaN(fb)
	}
	return reflect.DeepEqual(a, b)
}

// Shape is the structural identity of t. Static literals contribute their
// type and value, runtime literals only their type, so two terms that
// differ in a static value have different shapes while terms that differ
// only in runtime values share one.
//
// This holds for callees too: Lit(add) and Lit(concat) have the same shape
// when add and concat have the same Go type. To dispatch on which function
// is called, put the callee on the static channel, as in
// Static(Named("add", f)).
func Shape(t Term) string {
	var b strings.Builder
	writeShape(&b, t)
	return b.String()
}

// ShapeKey is a 64-bit hash of Shape, suitable as a dispatch key.
func ShapeKey(t Term) uint64 {
	return fnv1a.HashString64(Shape(t))
}

func writeShape(b *strings.Builder, t Term) {
	switch t := t.(type) {
	case Literal:
		if t.static {
			fmt.Fprintf(b, "static[%T=%#v]", t.value, t.value)
		} else {
			fmt.Fprintf(b, "lit[%T]", t.value)
		}
	case ArgPos, ParentScope:
		hops, a := unwrapRef(t)
		b.WriteString("ref[" + strconv.Itoa(hops) + "," + strconv.Itoa(a.index) + "]")
	case Lambda:
		b.WriteString("lambda[" + strconv.Itoa(t.arity.Positional) + "](")
		writeShape(b, t.body)
		b.WriteString(")")
	case Call:
		b.WriteString("call(")
		writeShape(b, t.callee)
		lo.ForEach(t.args, func(arg Term, _ int) {
			b.WriteString(";")
			writeShape(b, arg)
		})
		b.WriteString(")")
	default:
		panic("unreachable")
	}
}
