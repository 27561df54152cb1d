// Package sample maps types to the sample values used to exercise accessors.
//
// A Registry is keyed by the exact reflect.Type, so a named type such as
//
//	type Count int
//
// does not share the producer of int.
// Registration is first-wins: once a type has a producer, later registrations for it are ignored.
package sample

import (
	"reflect"

	"github.com/brick777/DtoTester/pkg/errorkit"
	"github.com/brick777/DtoTester/pkg/reflectkit"
)

const (
	ErrNotConstructible errorkit.Error = "sample: type has no default construction"
	ErrProducerType     errorkit.Error = "sample: producer returned a value that does not fit the type"
)

// Producer makes the sample value of a type.
type Producer func() any

// Registry maps types to their Producer.
// The zero value is an empty registry, use NewRegistry to start from the defaults.
type Registry struct {
	producers map[reflect.Type]Producer
	order     []reflect.Type
}

// NewRegistry returns a registry populated with the default producers.
func NewRegistry() *Registry {
	r := &Registry{}
	for _, e := range defaults {
		r.Register(e.Type, e.Producer)
	}
	return r
}

// Register adds p as the producer of typ unless typ already has one.
// It reports whether p got registered.
func (r *Registry) Register(typ reflect.Type, p Producer) bool {
	if typ == nil || p == nil {
		return false
	}
	if r.producers == nil {
		r.producers = make(map[reflect.Type]Producer)
	}
	if _, ok := r.producers[typ]; ok {
		return false
	}
	r.producers[typ] = p
	r.order = append(r.order, typ)
	return true
}

// RegisterMap registers every entry of m with Register.
func (r *Registry) RegisterMap(m map[reflect.Type]Producer) {
	for typ, p := range m {
		r.Register(typ, p)
	}
}

// Register is the typed form of Registry.Register.
func Register[T any](r *Registry, fn func() T) bool {
	if fn == nil {
		return false
	}
	return r.Register(reflectkit.TypeOf[T](), func() any { return fn() })
}

func (r *Registry) Lookup(typ reflect.Type) (Producer, bool) {
	if r.producers == nil || typ == nil {
		return nil, false
	}
	p, ok := r.producers[typ]
	return p, ok
}

func (r *Registry) Len() int { return len(r.producers) }

// Types lists the registered types in registration order.
func (r *Registry) Types() []reflect.Type {
	return append([]reflect.Type(nil), r.order...)
}
