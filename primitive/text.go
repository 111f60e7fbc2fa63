package primitive

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

var (
	stringerType      = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// Text returns the canonical text form of v: the form used when a
// non-string value is copied into a string field.
//
// Pointers are followed; a nil pointer or interface yields ok == false.
// Types implementing encoding.TextMarshaler use it, then fmt.Stringer;
// numbers use strconv in their shortest exact form, time.Time
// uses RFC 3339 with nanoseconds.
func Text(v reflect.Value) (text string, ok bool, err error) {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return "", false, nil
		}

		if v.Kind() == reflect.Ptr && v.Type().Elem() != typeTime &&
			(v.Type().Implements(stringerType) || v.Type().Implements(textMarshalerType)) {
			break
		}

		v = v.Elem()
	}

	if !v.IsValid() {
		return "", false, nil
	}

	t := v.Type()

	switch {
	case t == typeTime:
		return v.Interface().(time.Time).Format(time.RFC3339Nano), true, nil
	case t.Implements(textMarshalerType):
		b, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return "", false, fmt.Errorf("marshal %s as text: %w", t, err)
		}

		return string(b), true, nil
	case t.Implements(stringerType):
		return v.Interface().(fmt.Stringer).String(), true, nil
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), true, nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10), true, nil
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32), true, nil
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64), true, nil
	case reflect.Slice:
		if t == typeBytes || t.Elem().Kind() == reflect.Uint8 {
			return string(v.Bytes()), true, nil
		}
	}

	return fmt.Sprint(v.Interface()), true, nil
}
