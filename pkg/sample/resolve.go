package sample

import (
	"reflect"

	"github.com/brick777/DtoTester/pkg/enum"
)

// Resolve makes the sample value for typ.
//
// The strategies are tried in order:
//  1. the producer registered for typ
//  2. the first enumerator of typ, or its zero value when typ is an enumeration without enumerators
//  3. the first enumerator declared by the field's enum tag
//  4. the default construction of typ
//
// Only the last step fails when it is not applicable, with ErrNotConstructible.
func (r *Registry) Resolve(typ reflect.Type, tag reflect.StructTag) (reflect.Value, error) {
	if v, ok, err := r.FromProducer(typ); ok || err != nil {
		return v, err
	}
	if v, ok := FromEnum(typ); ok {
		return v, nil
	}
	if v, ok, err := FromEnumTag(typ, tag); ok || err != nil {
		return v, err
	}
	return Construct(typ)
}

// FromProducer calls the producer registered for typ.
func (r *Registry) FromProducer(typ reflect.Type) (reflect.Value, bool, error) {
	p, ok := r.Lookup(typ)
	if !ok {
		return reflect.Value{}, false, nil
	}
	out := p()
	if out == nil {
		if isNillable(typ) {
			return reflect.Zero(typ), true, nil
		}
		return reflect.Value{}, true, ErrProducerType.F("the producer of %s returned nil", typ)
	}
	v := reflect.ValueOf(out)
	if !v.Type().AssignableTo(typ) {
		return reflect.Value{}, true, ErrProducerType.F("the producer of %s returned %s", typ, v.Type())
	}
	return as(v, typ), true, nil
}

// FromEnum returns the first enumerator of typ.
func FromEnum(typ reflect.Type) (reflect.Value, bool) {
	vs, ok := enum.Lookup(typ)
	if !ok {
		return reflect.Value{}, false
	}
	return first(vs, typ), true
}

// FromEnumTag returns the first enumerator listed in the enum tag.
func FromEnumTag(typ reflect.Type, tag reflect.StructTag) (reflect.Value, bool, error) {
	vs, ok, err := enum.LookupTag(typ, tag)
	if !ok || err != nil {
		return reflect.Value{}, ok, err
	}
	return first(vs, typ), true, nil
}

// Construct makes a fresh value of typ the way the language initialises a composite value.
// Basic types, interfaces and functions have no such construction.
func Construct(typ reflect.Type) (reflect.Value, error) {
	if typ == nil {
		return reflect.Value{}, ErrNotConstructible.F("nil type")
	}
	switch typ.Kind() {
	case reflect.Struct, reflect.Array:
		return reflect.New(typ).Elem(), nil
	case reflect.Pointer:
		return reflect.New(typ.Elem()), nil
	case reflect.Map:
		return reflect.MakeMap(typ), nil
	case reflect.Slice:
		return reflect.MakeSlice(typ, 0, 1), nil
	case reflect.Chan:
		ch := reflect.MakeChan(reflect.ChanOf(reflect.BothDir, typ.Elem()), 0)
		return ch.Convert(typ), nil
	default:
		return reflect.Value{}, ErrNotConstructible.F("%s", typ)
	}
}

func first(vs []reflect.Value, typ reflect.Type) reflect.Value {
	if len(vs) == 0 || !vs[0].Type().AssignableTo(typ) {
		return reflect.Zero(typ)
	}
	return as(vs[0], typ)
}

// as returns v with the exact type typ, wrapping it when typ is an interface.
func as(v reflect.Value, typ reflect.Type) reflect.Value {
	if v.Type() == typ {
		return v
	}
	out := reflect.New(typ).Elem()
	out.Set(v)
	return out
}

func isNillable(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
