package resolvers

import (
	"encoding"
	"fmt"
	"reflect"

	"pnp-mapper/mapper"
	"pnp-mapper/primitive"
)

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// FromStringToEnum converts the current value to the enum type t through
// its text form. t either implements encoding.TextUnmarshaler on its
// pointer or is a string type. The current value may be a string or any
// value with a text form (so a domain enum converts into a schema enum).
// A nil or empty value yields the zero enum.
func FromStringToEnum(t reflect.Type) mapper.ValueResolver {
	return mapper.ValueFunc(func(_, _, current any) (any, error) {
		text, ok, err := primitive.Text(reflect.ValueOf(current))
		if err != nil {
			return nil, err
		}

		if !ok || text == "" {
			return reflect.Zero(t).Interface(), nil
		}

		return parseEnum(t, text)
	})
}

// FromEnumToString renders the current value with its text form.
func FromEnumToString() mapper.ValueResolver {
	return mapper.ValueFunc(func(_, _, current any) (any, error) {
		text, _, err := primitive.Text(reflect.ValueOf(current))
		return text, err
	})
}

func parseEnum(t reflect.Type, text string) (any, error) {
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		v := reflect.New(t)
		if err := v.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(text)); err != nil {
			return nil, fmt.Errorf("parse %q as %s: %w", text, t, err)
		}

		return v.Elem().Interface(), nil
	}

	if t.Kind() == reflect.String {
		return reflect.ValueOf(text).Convert(t).Interface(), nil
	}

	return nil, fmt.Errorf("%s is neither a string type nor a text unmarshaler", t)
}
