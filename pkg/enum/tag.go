package enum

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/brick777/DtoTester/pkg/errorkit"
)

const ErrInvalidTag errorkit.Error = "enum: invalid tag"

// TagName is the struct tag key that holds the enumerators of a field.
const TagName = "enum"

// LookupTag parses the enumerators from the enum tag of a struct field, converted to typ.
// The ok flag is false when the tag is absent.
func LookupTag(typ reflect.Type, tag reflect.StructTag) (_ []reflect.Value, ok bool, _ error) {
	raw, ok := tag.Lookup(TagName)
	if !ok {
		return nil, false, nil
	}
	vs, err := ParseTag(typ, raw)
	return vs, true, err
}

// ParseTag parses a raw enum tag value for the type typ.
// The last character of raw is the separator, e.g. "A;B;C;" or "1,2,3,".
func ParseTag(typ reflect.Type, raw string) ([]reflect.Value, error) {
	const osMaxBitSupport = 64

	if len(raw) == 0 {
		return nil, nil
	}

	if typ.Kind() == reflect.Slice {
		return ParseTag(typ.Elem(), raw)
	}

	chars := []rune(raw)
	sepCharPos := len(chars) - 1
	separator := string(chars[sepCharPos:])
	elements := strings.Split(string(chars[:sepCharPos]), separator)

	switch typ.Kind() {
	case reflect.String:
		return mapVS(elements, typ, func(s string) (reflect.Value, error) {
			return reflect.ValueOf(s), nil
		})

	case reflect.Bool:
		return mapVS(elements, typ, func(s string) (reflect.Value, error) {
			b, err := strconv.ParseBool(s)
			return reflect.ValueOf(b), err
		})

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return mapVS(elements, typ, func(s string) (reflect.Value, error) {
			n, err := strconv.ParseInt(s, 10, bitSize(typ, osMaxBitSupport))
			return reflect.ValueOf(n), err
		})

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return mapVS(elements, typ, func(s string) (reflect.Value, error) {
			n, err := strconv.ParseUint(s, 10, bitSize(typ, osMaxBitSupport))
			return reflect.ValueOf(n), err
		})

	case reflect.Float32, reflect.Float64:
		return mapVS(elements, typ, func(s string) (reflect.Value, error) {
			f, err := strconv.ParseFloat(s, bitSize(typ, osMaxBitSupport))
			return reflect.ValueOf(f), err
		})

	default:
		return nil, ErrInvalidTag.F("enum is not supported for %s", typ)
	}
}

func bitSize(typ reflect.Type, def int) int {
	switch typ.Kind() {
	case reflect.Int8, reflect.Uint8:
		return 8
	case reflect.Int16, reflect.Uint16:
		return 16
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 32
	case reflect.Int64, reflect.Uint64, reflect.Float64:
		return 64
	default:
		return def
	}
}

func mapVS(vs []string, typ reflect.Type, transform func(string) (reflect.Value, error)) ([]reflect.Value, error) {
	var out []reflect.Value
	for _, v := range vs {
		value, err := transform(v)
		if err != nil {
			return nil, ErrInvalidTag.Wrap(err)
		}
		if !value.CanConvert(typ) {
			return nil, ErrInvalidTag.F("%s is not convertible to %s", value.Type(), typ)
		}
		out = append(out, value.Convert(typ))
	}
	return out, nil
}
