package expr

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Context is one level of parameter bindings. It is built once per
// application and never modified.
type Context struct {
	bindings []any
	parent   *Context
}

func NewContext(bindings []any, parent *Context) *Context {
	return &Context{bindings: slices.Clone(bindings), parent: parent}
}

func (c *Context) Len() int {
	if c == nil {
		return 0
	}
	return len(c.bindings)
}

func (c *Context) Parent() *Context {
	if c == nil {
		return nil
	}
	return c.parent
}

// Lookup reads binding index after walking hops parents outward.
func (c *Context) Lookup(hops, index int) (any, error) {
	ctx := c
	for i := 0; i < hops; i++ {
		if ctx == nil || ctx.parent == nil {
			return nil, fmt.Errorf("%w: no scope %d levels up", ErrUnboundVariable, hops)
		}
		ctx = ctx.parent
	}
	if ctx == nil {
		return nil, fmt.Errorf("%w: argument %d outside of any lambda", ErrUnboundVariable, index)
	}
	if index < 0 || index >= len(ctx.bindings) {
		return nil, fmt.Errorf("%w: argument %d of %d", ErrUnboundVariable, index, len(ctx.bindings))
	}
	return ctx.bindings[index], nil
}
