package expr

import (
	"fmt"

	"github.com/segmentio/fasthash/fnv1a"
)

// Handler computes a result for a term of a registered shape.
type Handler[R any] func(t Term) (R, error)

type dispatchEntry[R any] struct {
	shape   string
	handler Handler[R]
}

// Dispatcher selects a handler by the Shape of a term. Register all
// handlers before use; lookups may then run concurrently.
type Dispatcher[R any] struct {
	table map[uint64][]dispatchEntry[R]
}

func NewDispatcher[R any]() *Dispatcher[R] {
	return &Dispatcher[R]{table: make(map[uint64][]dispatchEntry[R])}
}

// Register installs h for every term shaped like pattern, replacing any
// previous handler for that shape.
func (d *Dispatcher[R]) Register(pattern Term, h Handler[R]) {
	shape := Shape(pattern)
	key := fnv1a.HashString64(shape)
	entries := d.table[key]
	for i := range entries {
		if entries[i].shape == shape {
			entries[i].handler = h
			return
		}
	}
	d.table[key] = append(entries, dispatchEntry[R]{shape, h})
}

func (d *Dispatcher[R]) Lookup(t Term) (Handler[R], bool) {
	shape := Shape(t)
	for _, e := range d.table[fnv1a.HashString64(shape)] {
		if e.shape == shape {
			return e.handler, true
		}
	}
	return nil, false
}

func (d *Dispatcher[R]) Dispatch(t Term) (R, error) {
	h, ok := d.Lookup(t)
	if !ok {
		var zero R
		return zero, fmt.Errorf("%w: no handler for shape %s", ErrNotApplicable, Shape(t))
	}
	return h(t)
}
