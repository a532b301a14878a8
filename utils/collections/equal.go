package collections

import (
	"math"
	"reflect"
)

// Equal reports whether a and b hold the same value. Two nil values are
// equal, a nil and a non-nil value are not. Two NaN floats are equal, like
// Double.equals. Anything else is compared with reflect.DeepEqual.
func Equal[V any](a, b V) bool {
	aNil, bNil := isNil(a), isNil(b)
	if aNil || bNil {
		return aNil && bNil
	}
	if isNaN(a) && isNaN(b) {
		return true
	}
	return reflect.DeepEqual(a, b)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

func isNaN(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	default:
		return false
	}
}
