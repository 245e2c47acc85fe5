package falsity

import "reflect"

// Booler is implemented by values that define their own truth value.
// Truth consults it before any structural inspection.
type Booler interface {
	Bool() bool
}

// Compile-time check that False implements Booler.
var _ Booler = False{}

// False is an embeddable trait whose Bool method always reports false.
// Types embedding False evaluate as false under Truth regardless of their
// other fields.
type False struct{}

// Bool implements Booler. It always returns false.
func (False) Bool() bool {
	return false
}

// Truth reports the truth value of an arbitrary value.
//
// Nil values of any kind are false, including typed nil pointers whose
// Bool method would dereference them. Non-nil Booler implementations report
// their own truth. Otherwise false, zero numbers, empty strings, and empty
// containers are false; everything else is true. Truth never panics.
func Truth(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func,
		reflect.Chan, reflect.Map, reflect.Slice, reflect.UnsafePointer:
		if rv.IsNil() {
			return false
		}
	}

	if b, ok := v.(Booler); ok {
		return b.Bool()
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.Array, reflect.Slice, reflect.Map, reflect.Chan:
		return rv.Len() != 0
	}
	return true
}
