package resolvers

import "pnp-mapper/mapper"

// Expression resolves every field to the result of fn, ignoring the source.
func Expression(fn func() any) mapper.ValueResolver {
	return mapper.ValueFunc(func(_, _, _ any) (any, error) {
		return fn(), nil
	})
}

// Constant resolves every field to v.
func Constant(v any) mapper.ValueResolver {
	return Expression(func() any { return v })
}

// Preserve resolves a field to the destination's current value of field,
// so the field is left as it is. It guards fields filled by other
// serializers.
func Preserve(field string) mapper.ValueResolver {
	return mapper.ValueFunc(func(_, destination, _ any) (any, error) {
		value, _ := mapper.FieldValue(destination, field)
		return value, nil
	})
}
