package reflectkit

import "reflect"

// Same reports whether x and y are the same value.
//
// Primitive values are compared by value.
// Pointers, maps, channels, functions and unsafe pointers must point to the same address.
// Slices must share their backing array, length and capacity.
// Interfaces are compared by their dynamic value.
// Structs and arrays are compared element by element with the rules above,
// so a pointer inside a struct is compared by address and never dereferenced.
//
// Unexported struct fields take part in the comparison as well.
func Same(x, y reflect.Value) bool {
	if !x.IsValid() || !y.IsValid() {
		return x.IsValid() == y.IsValid()
	}
	if x.Type() != y.Type() {
		return false
	}
	switch x.Kind() {
	case reflect.Bool:
		return x.Bool() == y.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return x.Int() == y.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return x.Uint() == y.Uint()
	case reflect.Float32, reflect.Float64:
		return x.Float() == y.Float()
	case reflect.Complex64, reflect.Complex128:
		return x.Complex() == y.Complex()
	case reflect.String:
		return x.String() == y.String()
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return x.Pointer() == y.Pointer()
	case reflect.Slice:
		return x.Pointer() == y.Pointer() &&
			x.Len() == y.Len() &&
			x.Cap() == y.Cap()
	case reflect.Interface:
		if x.IsNil() || y.IsNil() {
			return x.IsNil() == y.IsNil()
		}
		return Same(x.Elem(), y.Elem())
	case reflect.Array:
		for i, n := 0, x.Len(); i < n; i++ {
			if !Same(x.Index(i), y.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i, n := 0, x.NumField(); i < n; i++ {
			if !Same(x.Field(i), y.Field(i)) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
