package fieldval

import (
	"encoding/binary"
	"math"
	"reflect"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// This file is the type dispatcher: one conversion function per check
// family, turning an opaque field value into the comparable form that
// family needs. Unsupported shapes surface as UnsupportedTypeError on the
// configuration channel.

// isNil reports whether the value is absent: a nil interface or a nil
// pointer, slice, map, function or channel.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// indirect unwraps pointers so checks see the pointed-to value.
func indirect(v any) any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	return rv.Interface()
}

// lengthOf normalizes a value for the length check family: text becomes its
// character count, numbers are truncated toward zero and read as a length,
// collections become their element count.
func lengthOf(check string, v any) (int, error) {
	v = indirect(v)
	if s, ok := v.(string); ok {
		return utf8.RuneCountInString(s), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return int(math.Trunc(rv.Float())), nil
	case reflect.String:
		return utf8.RuneCountInString(rv.String()), nil
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), nil
	}
	return 0, &UnsupportedTypeError{Check: check, Value: v}
}

// unixEpoch anchors the date ordinal used by magnitude comparisons.
var unixEpoch = time.Unix(0, 0).UTC()

// magnitudeOf normalizes a value for the magnitude check family: numbers
// keep their value, dates become fractional days since the Unix epoch,
// durations become milliseconds, text becomes its character count, UUIDs
// become their first 8 bytes read as a big-endian signed integer, and
// named integer types (enums) fall through to their underlying ordinal.
func magnitudeOf(check string, v any) (float64, error) {
	v = indirect(v)
	switch x := v.(type) {
	case time.Time:
		return x.Sub(unixEpoch).Hours() / 24, nil
	case time.Duration:
		return float64(x) / float64(time.Millisecond), nil
	case uuid.UUID:
		return float64(int64(binary.BigEndian.Uint64(x[:8]))), nil
	case string:
		return float64(utf8.RuneCountInString(x)), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.String:
		return float64(utf8.RuneCountInString(rv.String())), nil
	}
	return 0, &UnsupportedTypeError{Check: check, Value: v}
}

// signOf normalizes a value for the sign check family, which only accepts
// numbers and durations.
func signOf(check string, v any) (float64, error) {
	v = indirect(v)
	if d, ok := v.(time.Duration); ok {
		return float64(d) / float64(time.Millisecond), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	}
	return 0, &UnsupportedTypeError{Check: check, Value: v}
}

// dateOf extracts a time.Time for the temporal check family.
func dateOf(check string, v any) (time.Time, error) {
	v = indirect(v)
	if t, ok := v.(time.Time); ok {
		return t, nil
	}
	return time.Time{}, &UnsupportedTypeError{Check: check, Value: v}
}

// textOf reports the value as a string for the textual check family.
func textOf(v any) (string, bool) {
	if isNil(v) {
		return "", false
	}
	v = indirect(v)
	s, ok := v.(string)
	return s, ok
}

// elementsOf flattens a slice or array into its elements for the
// collection check family.
func elementsOf(v any) ([]any, bool) {
	if isNil(v) {
		return nil, false
	}
	rv := reflect.ValueOf(indirect(v))
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		elems := make([]any, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}
		return elems, true
	}
	return nil, false
}

// equalValues defines membership and equality by value-equality of the
// normalized form: numeric values of different widths compare by value,
// everything else by deep equality after pointer unwrapping.
func equalValues(a, b any) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	a, b = indirect(a), indirect(b)
	if na, ok := numericValue(a); ok {
		if nb, ok := numericValue(b); ok {
			return na == nb
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

func numericValue(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
