package provisioning

import (
	"errors"
	"fmt"
	"reflect"

	"pnp-mapper/mapper"
	"pnp-mapper/serializer"
)

var ErrMissingField = errors.New("schema type has no such field")

// child returns root's field called name, or nil when it is absent or nil.
func child(root any, name string) any {
	value, ok := mapper.FieldValue(root, name)
	if !ok {
		return nil
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
		if v.IsNil() {
			return nil
		}
	}

	return value
}

// setChild stores value in the field called name of root, a pointer to a struct.
func setChild(root any, name string, value any) error {
	v := reflect.ValueOf(root)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: got %T", mapper.ErrInvalidDestination, root)
	}

	f := v.Elem().FieldByName(name)
	if !f.IsValid() {
		return fmt.Errorf("%w: %s.%s", ErrMissingField, v.Elem().Type(), name)
	}

	in := reflect.ValueOf(value)
	if !in.Type().AssignableTo(f.Type()) {
		return fmt.Errorf("%w: cannot store %s in %s.%s", mapper.ErrTypeMismatch, in.Type(), v.Elem().Type(), name)
	}

	f.Set(in)

	return nil
}

// fieldType returns the type of field on the schema type called name.
func fieldType(sc serializer.Scope, name, field string) (reflect.Type, error) {
	t, err := sc.Lookup(name)
	if err != nil {
		return nil, err
	}

	f, ok := t.FieldByName(field)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrMissingField, t, field)
	}

	return f.Type, nil
}

// schemaBindings binds resolvers to fields of the schema type called name.
func schemaBindings(sc serializer.Scope, name string, resolvers map[string]mapper.Resolver) ([]mapper.Binding, error) {
	out := make([]mapper.Binding, 0, len(resolvers))

	for field, r := range resolvers {
		key, err := sc.Key(name, field)
		if err != nil {
			return nil, err
		}

		out = append(out, mapper.Bind(key, r))
	}

	return out, nil
}

// collectionOf returns a type resolver mapping the source's field called
// field onto a sequence of elem. toModel selects the direction.
func collectionOf(field string, elem reflect.Type, toModel bool) mapper.TypeResolver {
	convert := mapper.CollectionFromModelToSchema(elem)
	if toModel {
		convert = mapper.CollectionFromSchemaToModel(elem)
	}

	return mapper.TypeFunc(func(ctx mapper.Context, source any) (any, error) {
		items, _ := mapper.FieldValue(source, field)
		return ctx.Objects(items, convert)
	})
}
