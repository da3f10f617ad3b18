package expr

import "errors"

var (
	// ErrMalformedTerm reports a shape violation at construction time.
	ErrMalformedTerm = errors.New("malformed term")
	// ErrArityMismatch reports a call with the wrong number of arguments.
	ErrArityMismatch = errors.New("arity mismatch")
	// ErrUnboundVariable reports a reference past the available bindings.
	ErrUnboundVariable = errors.New("unbound variable")
	// ErrNotApplicable reports a call whose callee cannot be invoked.
	ErrNotApplicable = errors.New("not applicable")
)
