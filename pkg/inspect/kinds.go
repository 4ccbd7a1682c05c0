package inspect

import (
	"reflect"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// isPrimitive reports whether t is a scalar with no children: booleans and
// numeric kinds.
func isPrimitive(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

// nullable reports whether a value of type t can be nil.
func nullable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}

// isNil reports whether v is absent: invalid, or a nil value of a nullable kind.
func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	if nullable(v.Type()) {
		return v.IsNil()
	}
	return false
}

// typeName returns the display name of t, for example "int", "*demo.Node"
// or "map[string][]int".
func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}
