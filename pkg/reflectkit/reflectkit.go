// Package reflectkit holds the reflection helpers behind the accessor verification:
// type unwrapping, primitive detection and the identity comparison of sample values.
package reflectkit

import (
	"reflect"
)

// TypeOf returns the reflect.Type of T, including when T is an interface type.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// BaseType unwraps every pointer level of typ.
func BaseType(typ reflect.Type) reflect.Type {
	for typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return typ
}

func BaseTypeOf(v any) reflect.Type {
	return BaseType(reflect.TypeOf(v))
}

var primitiveKinds = map[reflect.Kind]struct{}{
	reflect.Bool:       {},
	reflect.Int:        {},
	reflect.Int8:       {},
	reflect.Int16:      {},
	reflect.Int32:      {},
	reflect.Int64:      {},
	reflect.Uint:       {},
	reflect.Uint8:      {},
	reflect.Uint16:     {},
	reflect.Uint32:     {},
	reflect.Uint64:     {},
	reflect.Uintptr:    {},
	reflect.Float32:    {},
	reflect.Float64:    {},
	reflect.Complex64:  {},
	reflect.Complex128: {},
	reflect.String:     {},
}

// IsPrimitive reports whether values of typ are plain values,
// compared by value rather than by identity.
func IsPrimitive(typ reflect.Type) bool {
	if typ == nil {
		return false
	}
	_, ok := primitiveKinds[typ.Kind()]
	return ok
}

// ToAddressable returns a value that can act as a pointer receiver for v.
// Pointer values are returned as is, anything else is copied into a freshly allocated value.
func ToAddressable(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Pointer {
		return v
	}
	ptr := reflect.New(v.Type())
	ptr.Elem().Set(v)
	return ptr
}
