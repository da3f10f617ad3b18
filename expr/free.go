package expr

import (
	"github.com/edwingeng/deque"
)

// FreeRef is a reference that reaches past the outermost Lambda of the
// term it was found in.
type FreeRef struct {
	Depth int
	Hops  int
	Index int
}

type pending struct {
	t     Term
	depth int
}

// FreeRefs lists the references in t that are not bound by a Lambda
// inside t, in breadth-first order.
func FreeRefs(t Term) []FreeRef {
	var free []FreeRef
	queue := deque.NewDeque()
	queue.PushBack(pending{t, 0})
	for queue.Len() != 0 {
		p := queue.Front().(pending)
		queue.PopFront()
		switch t := p.t.(type) {
		case ArgPos, ParentScope:
			if hops, a := unwrapRef(t); hops >= p.depth {
				free = append(free, FreeRef{Depth: p.depth, Hops: hops, Index: a.index})
			}
		case Lambda:
			queue.PushBack(pending{t.body, p.depth + 1})
		case Call:
			queue.PushBack(pending{t.callee, p.depth})
			for _, arg := range t.args {
				queue.PushBack(pending{arg, p.depth})
			}
		}
	}
	return free
}

// Closed reports whether every reference in t is bound inside t.
func Closed(t Term) bool {
	return len(FreeRefs(t)) == 0
}
