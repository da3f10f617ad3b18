// Package bind represents a function call with some arguments fixed and
// others left open, to be filled in when the call is made.
package bind

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/smasher164/curry/expr"
)

// Escape stores Value in a slot as is. Escape{nil} binds a slot to nil,
// which would otherwise mark it as open.
type Escape struct {
	Value any
}

func isHole(slot any) bool {
	return slot == nil
}

// Interleave returns slots with each nil slot replaced, in order, by the
// next element of fillers and each Escape replaced by its value.
func Interleave(slots, fillers []any) ([]any, error) {
	if holes := lo.CountBy(slots, isHole); holes != len(fillers) {
		return nil, fmt.Errorf("%w: %d open slots, %d arguments", expr.ErrArityMismatch, holes, len(fillers))
	}
	out := make([]any, len(slots))
	next := 0
	for i, slot := range slots {
		switch slot := slot.(type) {
		case nil:
			out[i] = fillers[next]
			next++
		case Escape:
			out[i] = slot.Value
		default:
			out[i] = slot
		}
	}
	return out, nil
}

// Bind is a callee with a partially filled argument list.
//
//	b := bind.New(add, 1, nil)
//	b.Invoke(2) // add(1, 2)
//
// A Bind is never modified after New and may be invoked concurrently.
type Bind struct {
	callee any
	slots  []any
}

// New binds callee, an expr.Callable or any Go function, to slots.
func New(callee any, slots ...any) *Bind {
	return &Bind{callee: callee, slots: slices.Clone(slots)}
}

func (b *Bind) Callee() any  { return b.callee }
func (b *Bind) Slots() []any { return slices.Clone(b.slots) }

// Placeholders is the number of arguments Call expects.
func (b *Bind) Placeholders() int {
	return lo.CountBy(b.slots, isHole)
}

// Call fills the open slots with args and calls the callee with the result.
func (b *Bind) Call(args []any) (any, error) {
	full, err := Interleave(b.slots, args)
	if err != nil {
		return nil, err
	}
	fn, err := expr.FuncOf(b.callee)
	if err != nil {
		return nil, err
	}
	return fn.Call(full)
}

func (b *Bind) Invoke(args ...any) (any, error) {
	return b.Call(args)
}

// Quote returns the term applying b to args.
func (b *Bind) Quote(args ...expr.Term) (expr.Call, error) {
	return expr.NewCall(expr.Lit(b), args...)
}

func (b *Bind) String() string {
	return "{" + strings.Join(append([]string{expr.Lit(b.callee).String()}, lo.Map(b.slots, func(slot any, _ int) string {
		switch slot := slot.(type) {
		case nil:
			return "_"
		case Escape:
			return expr.Lit(slot.Value).String()
		}
		return expr.Lit(slot).String()
	})...), " ") + "}"
}
