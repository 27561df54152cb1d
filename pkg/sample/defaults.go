package sample

import (
	"reflect"
	"time"

	"github.com/brick777/DtoTester/pkg/reflectkit"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/shopspring/decimal"
	"go.llib.dev/testcase/clock"
)

type entry struct {
	Type     reflect.Type
	Producer Producer
}

// shared empty containers, the same instance is handed out on every call
var (
	emptyList      = make([]any, 0, 1)
	emptyMap       = map[string]any{}
	emptySet       = hashset.New()
	emptySortedSet = treeset.NewWithStringComparator()
	emptySortedMap = treemap.NewWithStringComparator()
)

// defaults is built once at package initialisation and never mutated afterwards.
var defaults = []entry{
	value(true),
	value(int(0)),
	value(int8(0)),
	value(int16(0)),
	value(int32(0)), // rune
	value(int64(0)),
	value(uint(0)),
	value(uint8(0)), // byte
	value(uint16(0)),
	value(uint32(0)),
	value(uint64(0)),
	value(uintptr(0)),
	value(float32(0)),
	value(float64(0)),
	value(complex64(0)),
	value(complex128(0)),
	value(time.Duration(0)),

	boxed(true),
	boxed(int(0)),
	boxed(int8(0)),
	boxed(int16(0)),
	boxed(int32(0)),
	boxed(int64(0)),
	boxed(uint(0)),
	boxed(uint8(0)),
	boxed(uint16(0)),
	boxed(uint32(0)),
	boxed(uint64(0)),
	boxed(uintptr(0)),
	boxed(float32(0)),
	boxed(float64(0)),
	boxed(complex64(0)),
	boxed(complex128(0)),
	boxed(time.Duration(0)),

	// one, not zero, so a zero value left behind by a broken setter stays distinguishable
	{Type: reflectkit.TypeOf[decimal.Decimal](), Producer: func() any { return decimal.NewFromInt(1) }},
	{Type: reflectkit.TypeOf[time.Time](), Producer: func() any { return clock.Now() }},

	value(emptyList),
	value(emptyMap),
	value(emptySet),
	value(emptySortedSet),
	value(emptySortedMap),
}

func value[T any](v T) entry {
	return entry{Type: reflectkit.TypeOf[T](), Producer: func() any { return v }}
}

// boxed produces a fresh pointer on every call.
func boxed[T any](v T) entry {
	return entry{Type: reflectkit.TypeOf[*T](), Producer: func() any {
		ptr := new(T)
		*ptr = v
		return ptr
	}}
}

// DefaultTypes lists the types that NewRegistry covers out of the box.
func DefaultTypes() []reflect.Type {
	out := make([]reflect.Type, 0, len(defaults))
	for _, e := range defaults {
		out = append(out, e.Type)
	}
	return out
}
