// Package accessor discovers the getter and setter methods that belong to a struct field.
//
// A method belongs to a field when its lower-cased name ends with the lower-cased field name,
// so both "Name" and "SetName" are accessors of the field "name".
// A field has an accessor pair only when exactly two such methods exist.
package accessor

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/brick777/DtoTester/pkg/errorkit"
	"github.com/brick777/DtoTester/pkg/reflectkit"
)

const ErrInvocation errorkit.Error = "accessor: invocation failed"

// Pair is the getter and setter of a property.
// A zero Getter or Setter means the slot stayed empty during classification.
type Pair struct {
	Property string
	Getter   reflect.Method
	Setter   reflect.Method
}

// Properties returns the fields declared by the base struct type of typ, in declaration order.
// Fields named in ignored are left out.
func Properties(typ reflect.Type, ignored map[string]struct{}) []reflect.StructField {
	typ = reflectkit.BaseType(typ)
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil
	}
	var fields []reflect.StructField
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.Name == "_" {
			continue
		}
		if _, ok := ignored[field.Name]; ok {
			continue
		}
		fields = append(fields, field)
	}
	return fields
}

// Lookup collects the exported methods of typ that end with property and classifies them.
// The returned count is the number of candidates, ok is true only for exactly two.
//
// Methods with at least one result are getters, the rest are setters.
// When both candidates land in the same slot the later one wins.
func Lookup(typ reflect.Type, property string) (_ Pair, count int, ok bool) {
	if typ == nil || property == "" {
		return Pair{}, 0, false
	}
	suffix := strings.ToLower(property)
	var candidates []reflect.Method
	for i := 0; i < typ.NumMethod(); i++ {
		m := typ.Method(i)
		if strings.HasSuffix(strings.ToLower(m.Name), suffix) {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) != 2 {
		return Pair{}, len(candidates), false
	}
	pair := Pair{Property: property}
	for _, m := range candidates {
		if m.Type.NumOut() > 0 {
			pair.Getter = m
		} else {
			pair.Setter = m
		}
	}
	return pair, len(candidates), true
}

// Complete reports whether both the getter and the setter slot is filled.
func (p Pair) Complete() bool {
	return p.Getter.Func.IsValid() && p.Setter.Func.IsValid()
}

// ParamType is the type the setter accepts.
// Method types include the receiver, so a setter takes exactly two inputs.
func (p Pair) ParamType() (reflect.Type, error) {
	if !p.Setter.Func.IsValid() {
		return nil, ErrInvocation.F("%s has no setter", p.Property)
	}
	if p.Setter.Type.NumIn() != 2 {
		return nil, ErrInvocation.F("setter %s must take exactly one argument", p.Setter.Name)
	}
	return p.Setter.Type.In(1), nil
}

// ResultType is the type of the getter's first result.
func (p Pair) ResultType() (reflect.Type, error) {
	if !p.Getter.Func.IsValid() {
		return nil, ErrInvocation.F("%s has no getter", p.Property)
	}
	if p.Getter.Type.NumIn() != 1 {
		return nil, ErrInvocation.F("getter %s must not take arguments", p.Getter.Name)
	}
	return p.Getter.Type.Out(0), nil
}

// Set calls the setter on recv with v.
func (p Pair) Set(recv, v reflect.Value) error {
	param, err := p.ParamType()
	if err != nil {
		return err
	}
	if !v.IsValid() || !v.Type().AssignableTo(param) {
		return ErrInvocation.F("%s cannot be passed to %s", typeName(v), p.Setter.Name)
	}
	_, err = call(p.Setter, recv, v)
	return err
}

// Get calls the getter on recv and returns its first result.
// A getter whose last result is a non-nil error fails with that error.
func (p Pair) Get(recv reflect.Value) (reflect.Value, error) {
	if _, err := p.ResultType(); err != nil {
		return reflect.Value{}, err
	}
	out, err := call(p.Getter, recv)
	if err != nil {
		return reflect.Value{}, err
	}
	if n := len(out); 1 < n {
		if err, ok := out[n-1].Interface().(error); ok && err != nil {
			return reflect.Value{}, ErrInvocation.Wrap(err)
		}
	}
	return out[0], nil
}

func call(m reflect.Method, recv reflect.Value, args ...reflect.Value) (out []reflect.Value, err error) {
	if !recv.IsValid() || !recv.Type().AssignableTo(m.Type.In(0)) {
		return nil, ErrInvocation.F("%s is not a receiver of %s", typeName(recv), m.Name)
	}
	defer recoverInto(m.Name, &err)
	return m.Func.Call(append([]reflect.Value{recv}, args...)), nil
}

func recoverInto(name string, errp *error) {
	r := recover()
	if r == nil {
		return
	}
	switch r := r.(type) {
	case error:
		*errp = ErrInvocation.Wrap(fmt.Errorf("%s panicked: %w", name, r))
	default:
		*errp = ErrInvocation.F("%s panicked: %v", name, r)
	}
}

func typeName(v reflect.Value) string {
	if !v.IsValid() {
		return "<invalid>"
	}
	return v.Type().String()
}
