// Package enum lets a Go type declare its enumerators.
//
// Go has no enum types, so a named type becomes an enumeration by registering its values:
//
//	type Status string
//
//	const (
//		Active   Status = "ACTIVE"
//		Inactive Status = "INACTIVE"
//	)
//
//	var _ = enum.Register[Status](Active, Inactive)
//
// The registration order is the declaration order of the enumerators.
// A struct field can also declare its enumerators with the `enum` tag,
// where the last character of the tag value is the separator:
//
//	type DTO struct {
//		status string `enum:"ACTIVE;INACTIVE;"`
//	}
package enum

import (
	"reflect"
	"sync"

	"github.com/brick777/DtoTester/pkg/reflectkit"
)

var (
	registry = make(map[reflect.Type][]any)
	regLock  sync.RWMutex
)

// Register declares the enumerators of T in their declaration order.
// Registering T again replaces its enumerators.
func Register[T any](enums ...T) (unregister func()) {
	regLock.Lock()
	defer regLock.Unlock()

	choices := make([]any, 0, len(enums))
	for _, e := range enums {
		choices = append(choices, e)
	}

	key := reflectkit.TypeOf[T]()
	registry[key] = choices

	return func() {
		regLock.Lock()
		defer regLock.Unlock()
		delete(registry, key)
	}
}

// Values returns the registered enumerators of T.
func Values[T any]() []T {
	regLock.RLock()
	defer regLock.RUnlock()
	choices := registry[reflectkit.TypeOf[T]()]
	out := make([]T, 0, len(choices))
	for _, c := range choices {
		out = append(out, c.(T))
	}
	return out
}

// Lookup returns the enumerators of typ.
// The ok flag reports whether typ is an enumeration at all,
// since an enumeration may be registered without any enumerator.
func Lookup(typ reflect.Type) (_ []reflect.Value, ok bool) {
	regLock.RLock()
	defer regLock.RUnlock()
	choices, ok := registry[typ]
	if !ok {
		return nil, false
	}
	out := make([]reflect.Value, 0, len(choices))
	for _, c := range choices {
		out = append(out, reflect.ValueOf(c))
	}
	return out, true
}
