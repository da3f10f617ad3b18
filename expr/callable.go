package expr

import (
	"fmt"
	"math"
	"reflect"
)

// Callable is anything a Call term can invoke.
type Callable interface {
	Call(args []any) (any, error)
}

// Func adapts an ordinary function to Callable.
type Func func(args []any) (any, error)

func (f Func) Call(args []any) (any, error) {
	return f(args)
}

type named struct {
	name string
	Callable
}

func (n *named) String() string { return n.name }

// Named attaches a display name to c, used when terms holding it are printed.
func Named(name string, c Callable) Callable {
	return &named{name, c}
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// FuncOf wraps an arbitrary Go function as a Callable. Arguments are
// converted to the parameter types where Go allows it. If the function's
// last result is an error it is returned as the call's error, and the first
// remaining result, if any, is the call's value.
func FuncOf(fn any) (Callable, error) {
	if c, ok := fn.(Callable); ok {
		return c, nil
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, fmt.Errorf("%w: %T is not a function", ErrNotApplicable, fn)
	}
	return Func(func(args []any) (any, error) {
		return callReflect(v, args)
	}), nil
}

func callReflect(fn reflect.Value, args []any) (any, error) {
	ft := fn.Type()
	n := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < n-1 {
			return nil, fmt.Errorf("%w: %s takes at least %d arguments, got %d", ErrArityMismatch, ft, n-1, len(args))
		}
	} else if len(args) != n {
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrArityMismatch, ft, n, len(args))
	}
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if ft.IsVariadic() && i >= n-1 {
			pt = ft.In(n - 1).Elem()
		} else {
			pt = ft.In(i)
		}
		av, err := convertArg(arg, pt)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		in[i] = av
	}
	out := fn.Call(in)
	if len(out) > 0 && ft.Out(len(out)-1) == errorType {
		if err, _ := out[len(out)-1].Interface().(error); err != nil {
			return nil, err
		}
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0].Interface(), nil
}

func convertArg(arg any, pt reflect.Type) (reflect.Value, error) {
	if arg == nil {
		switch pt.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(pt), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: nothing is not a %s", ErrNotApplicable, pt)
	}
	av := reflect.ValueOf(arg)
	switch {
	case av.Type().AssignableTo(pt):
		return av, nil
	case av.Type().ConvertibleTo(pt) && sameKindClass(av.Kind(), pt.Kind()):
		if kindClass(av.Kind()) == classNumber {
			cv, ok := convertNumber(av, pt)
			if !ok {
				return reflect.Value{}, fmt.Errorf("%w: %v does not fit in a %s", ErrNotApplicable, arg, pt)
			}
			return cv, nil
		}
		return av.Convert(pt), nil
	}
	return reflect.Value{}, fmt.Errorf("%w: %T is not a %s", ErrNotApplicable, arg, pt)
}

// convertNumber converts av to pt only if converting back gives av again,
// so fractions, overflow and sign changes are rejected.
func convertNumber(av reflect.Value, pt reflect.Type) (reflect.Value, bool) {
	cv := av.Convert(pt)
	from, to := numberKind(av.Kind()), numberKind(pt.Kind())
	switch {
	case from == signed && to == unsigned && av.Int() < 0:
		return reflect.Value{}, false
	case from == float && to == unsigned && av.Float() < 0:
		return reflect.Value{}, false
	case from == unsigned && to == signed && cv.Int() < 0:
		return reflect.Value{}, false
	case from == float && to == float && math.IsNaN(av.Float()):
		return cv, true
	}
	return cv, cv.Convert(av.Type()).Interface() == av.Interface()
}

const (
	signed = iota + 1
	unsigned
	float
)

func numberKind(k reflect.Kind) int {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signed
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsigned
	case reflect.Float32, reflect.Float64:
		return float
	}
	return 0
}

// sameKindClass keeps conversions between numbers and between strings, so
// that an int is never silently turned into a one-rune string.
func sameKindClass(a, b reflect.Kind) bool {
	return kindClass(a) != 0 && kindClass(a) == kindClass(b)
}

const (
	classNumber = iota + 1
	classString
)

func kindClass(k reflect.Kind) int {
	if numberKind(k) != 0 {
		return classNumber
	}
	if k == reflect.String {
		return classString
	}
	return 0
}
