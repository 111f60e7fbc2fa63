package mapper

import (
	"fmt"
	"reflect"

	"pnp-mapper/primitive"
)

// CollectionFromSchemaToModel maps every element of a source slice (or
// collection) onto a new value of elem and returns them as []any, ready
// to be appended to a domain collection.
func CollectionFromSchemaToModel(elem reflect.Type) TypeResolver {
	return collectionResolver{elem: elem}
}

// CollectionFromModelToSchema maps every element of a source collection
// (or slice) onto a new value of elem and returns them as a []elem.
func CollectionFromModelToSchema(elem reflect.Type) TypeResolver {
	return collectionResolver{elem: elem, typed: true}
}

type collectionResolver struct {
	elem  reflect.Type
	typed bool
}

func (r collectionResolver) ResolveType(ctx Context, source any) (any, error) {
	items, err := sequence(reflect.ValueOf(source))
	if err != nil {
		return nil, err
	}

	if r.typed {
		out := reflect.MakeSlice(reflect.SliceOf(r.elem), 0, len(items))
		for i, item := range items {
			v, err := ctx.Index(i).element(item, r.elem)
			if err != nil {
				return nil, err
			}

			out = reflect.Append(out, v)
		}

		return out.Interface(), nil
	}

	out := make([]any, 0, len(items))
	for i, item := range items {
		v, err := ctx.Index(i).element(item, r.elem)
		if err != nil {
			return nil, err
		}

		out = append(out, v.Interface())
	}

	return out, nil
}

// sequence lists the elements of a slice, array or Collection. nil is empty.
func sequence(v reflect.Value) ([]reflect.Value, error) {
	if v.IsValid() && v.Type().Implements(collectionType) {
		if v.Kind() == reflect.Ptr && v.IsNil() {
			return nil, nil
		}

		values := v.Interface().(Collection).Values()
		out := make([]reflect.Value, len(values))

		for i, item := range values {
			out[i] = reflect.ValueOf(item)
		}

		return out, nil
	}

	inner := indirect(v)
	if !inner.IsValid() {
		return nil, nil
	}

	if inner.Kind() != reflect.Slice && inner.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: %s", ErrNotCollection, inner.Type())
	}

	out := make([]reflect.Value, inner.Len())
	for i := range inner.Len() {
		out[i] = inner.Index(i)
	}

	return out, nil
}

// element maps one source element onto a new value of type elem. Struct
// elements are mapped field by field within c; anything else is copied.
func (c Context) element(item reflect.Value, elem reflect.Type) (reflect.Value, error) {
	base := primitive.Base(elem)
	if base.Kind() != reflect.Struct || Classify(base) != FieldObject {
		out := reflect.New(elem).Elem()
		c.copyValue(out, item, "")

		return out, nil
	}

	if !indirect(item).IsValid() {
		return reflect.Zero(elem), nil
	}

	inst := newInstance(base)
	if err := c.Properties(item.Interface(), inst.Interface()); err != nil {
		return reflect.Value{}, err
	}

	out, _ := adapt(inst, elem)

	return out, nil
}

// ObjectFromType builds a new value of t from the source object, or from
// the source's field called field when field is not empty.
func ObjectFromType(t reflect.Type, field string) TypeResolver {
	return objectResolver{typ: t, field: field}
}

type objectResolver struct {
	typ   reflect.Type
	field string
}

func (r objectResolver) ResolveType(ctx Context, source any) (any, error) {
	if r.field != "" {
		value, ok := FieldValue(source, r.field)
		if !ok {
			return nil, nil
		}

		source = value
	}

	if !indirect(reflect.ValueOf(source)).IsValid() {
		return nil, nil
	}

	base := primitive.Base(r.typ)
	if base.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct type", ErrInvalidDestination, r.typ)
	}

	inst := newInstance(base)
	if err := ctx.Properties(source, inst.Interface()); err != nil {
		return nil, err
	}

	out, _ := adapt(inst, r.typ)

	return out.Interface(), nil
}

// newInstance allocates a *t whose nil collection fields are set to empty
// collections, so fresh elements can be appended to.
func newInstance(t reflect.Type) reflect.Value {
	inst := reflect.New(t)

	for _, f := range Fields(t) {
		if f.Kind != FieldCollection || f.Type.Kind() != reflect.Ptr {
			continue
		}

		fv := inst.Elem().FieldByIndex(f.Index)
		if fv.IsNil() {
			fv.Set(reflect.New(f.Type.Elem()))
		}
	}

	return inst
}
