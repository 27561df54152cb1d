package enum_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/brick777/DtoTester/pkg/enum"
	"github.com/brick777/DtoTester/pkg/reflectkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

type Status string

const (
	Active   Status = "ACTIVE"
	Inactive Status = "INACTIVE"
)

func ExampleRegister() {
	type Colour int
	const (
		Red Colour = iota + 1
		Green
	)

	unregister := enum.Register[Colour](Red, Green)
	defer unregister()

	_ = enum.Values[Colour]() // []Colour{Red, Green}
}

func TestRegister(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("registered values are kept in declaration order", func(t *testcase.T) {
		t.Defer(enum.Register[Status](Active, Inactive))

		assert.Equal(t, []Status{Active, Inactive}, enum.Values[Status]())

		vs, ok := enum.Lookup(reflectkit.TypeOf[Status]())
		assert.True(t, ok)
		assert.Equal(t, 2, len(vs))
		assert.Equal[any](t, Active, vs[0].Interface())
		assert.Equal[any](t, Inactive, vs[1].Interface())
	})

	s.Test("registering again replaces the enumerators", func(t *testcase.T) {
		t.Defer(enum.Register[Status](Active, Inactive))
		t.Defer(enum.Register[Status](Inactive))

		assert.Equal(t, []Status{Inactive}, enum.Values[Status]())
	})

	s.Test("an enumeration without enumerators is still known", func(t *testcase.T) {
		t.Defer(enum.Register[Status]())

		vs, ok := enum.Lookup(reflectkit.TypeOf[Status]())
		assert.True(t, ok)
		assert.Empty(t, vs)
	})

	s.Test("unregister removes the enumeration", func(t *testcase.T) {
		enum.Register[Status](Active)()

		_, ok := enum.Lookup(reflectkit.TypeOf[Status]())
		assert.False(t, ok)
		assert.Empty(t, enum.Values[Status]())
	})

	s.Test("unregistered types are not enumerations", func(t *testcase.T) {
		_, ok := enum.Lookup(reflect.TypeOf(""))
		assert.False(t, ok)
	})
}

func TestParseTag(t *testing.T) {
	type (
		SubString string
	)
	type Case struct {
		Type reflect.Type
		Raw  string
		Exp  []any
	}
	for name, c := range map[string]Case{
		"empty":        {Type: reflect.TypeOf(""), Raw: "", Exp: nil},
		"string":       {Type: reflect.TypeOf(""), Raw: "A;B;C;", Exp: []any{"A", "B", "C"}},
		"sub string":   {Type: reflect.TypeOf(SubString("")), Raw: "A|B|", Exp: []any{SubString("A"), SubString("B")}},
		"bool":         {Type: reflect.TypeOf(true), Raw: "true;", Exp: []any{true}},
		"int":          {Type: reflect.TypeOf(0), Raw: "42,24,", Exp: []any{42, 24}},
		"int8":         {Type: reflect.TypeOf(int8(0)), Raw: "42/24/", Exp: []any{int8(42), int8(24)}},
		"uint16":       {Type: reflect.TypeOf(uint16(0)), Raw: "42;", Exp: []any{uint16(42)}},
		"float64":      {Type: reflect.TypeOf(0.0), Raw: "4.2 2.4 ", Exp: []any{4.2, 2.4}},
		"string slice": {Type: reflect.TypeOf([]string{}), Raw: "FOO|BAR|", Exp: []any{"FOO", "BAR"}},
	} {
		t.Run(name, func(t *testing.T) {
			vs, err := enum.ParseTag(c.Type, c.Raw)
			assert.NoError(t, err)
			var got []any
			for _, v := range vs {
				got = append(got, v.Interface())
			}
			assert.Equal(t, c.Exp, got)
		})
	}

	t.Run("invalid value", func(t *testing.T) {
		_, err := enum.ParseTag(reflect.TypeOf(0), "hello;world;")
		assert.True(t, errors.Is(err, enum.ErrInvalidTag))
	})

	t.Run("value overflows the bit size", func(t *testing.T) {
		_, err := enum.ParseTag(reflect.TypeOf(int8(0)), "1024;")
		assert.True(t, errors.Is(err, enum.ErrInvalidTag))
	})

	t.Run("unsupported kind", func(t *testing.T) {
		_, err := enum.ParseTag(reflect.TypeOf(func() {}), ";")
		assert.True(t, errors.Is(err, enum.ErrInvalidTag))
	})
}

func TestLookupTag(t *testing.T) {
	type DTO struct {
		status string `enum:"ACTIVE;INACTIVE;"`
		name   string
	}
	typ := reflect.TypeOf(DTO{})

	statusField, _ := typ.FieldByName("status")
	vs, ok, err := enum.LookupTag(statusField.Type, statusField.Tag)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, len(vs))
	assert.Equal(t, "ACTIVE", vs[0].String())

	nameField, _ := typ.FieldByName("name")
	_, ok, err = enum.LookupTag(nameField.Type, nameField.Tag)
	assert.NoError(t, err)
	assert.False(t, ok)
}
