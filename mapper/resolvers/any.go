package resolvers

import (
	"fmt"
	"reflect"

	json "github.com/goccy/go-json"

	"pnp-mapper/mapper"
	"pnp-mapper/primitive"
)

// AnyField is the field holding free-form nodes on schema wrapper types.
const AnyField = "Any"

// AnyFromSchemaToModel reads the wrapper held by the source field called
// field, takes its free-form nodes and returns them as JSON text. A missing
// wrapper or an empty node list yields "".
func AnyFromSchemaToModel(field string) mapper.ValueResolver {
	return mapper.ValueFunc(func(source, _, _ any) (any, error) {
		wrapper, ok := mapper.FieldValue(source, field)
		if !ok {
			return "", nil
		}

		nodes, ok := mapper.FieldValue(wrapper, AnyField)
		if !ok || isEmpty(reflect.ValueOf(nodes)) {
			return "", nil
		}

		data, err := json.Marshal(nodes)
		if err != nil {
			return nil, fmt.Errorf("%s: encode any content: %w", field, err)
		}

		return string(data), nil
	})
}

// AnyFromModelToSchema parses the current JSON text into free-form nodes
// and wraps them in a new value of t, whose Any field receives them.
// Empty text yields nil.
func AnyFromModelToSchema(t reflect.Type) mapper.ValueResolver {
	return mapper.ValueFunc(func(_, _, current any) (any, error) {
		text, _ := current.(string)
		if text == "" {
			return nil, nil
		}

		base := primitive.Base(t)

		wrapper := reflect.New(base)
		target := wrapper.Elem().FieldByName(AnyField)

		if !target.IsValid() {
			return nil, fmt.Errorf("%s has no %s field", base, AnyField)
		}

		nodes := reflect.New(target.Type())
		if err := json.Unmarshal([]byte(text), nodes.Interface()); err != nil {
			// a single node is stored without the surrounding list
			var single any
			if json.Unmarshal([]byte(text), &single) != nil {
				return nil, fmt.Errorf("decode any content: %w", err)
			}

			if target.Kind() != reflect.Slice {
				return nil, fmt.Errorf("decode any content: %w", err)
			}

			nodes.Elem().Set(reflect.Append(reflect.MakeSlice(target.Type(), 0, 1), reflect.ValueOf(single)))
		}

		target.Set(nodes.Elem())

		return wrapper.Interface(), nil
	})
}

func isEmpty(v reflect.Value) bool {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return true
		}

		v = v.Elem()
	}

	if !v.IsValid() {
		return true
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	}

	return false
}
