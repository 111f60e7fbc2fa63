package mapper

import (
	"fmt"
	"reflect"

	"pnp-mapper/diagnostic"
	"pnp-mapper/primitive"
)

var stringType = reflect.TypeOf("")

// copyValue performs the default copy of sv into fv. The only conversion
// besides pointer wrapping is rendering a non-string value as text for a
// string field.
func (c Context) copyValue(fv, sv reflect.Value, pair string) {
	if out, ok := adapt(sv, fv.Type()); ok {
		fv.Set(out)
		return
	}

	if primitive.Base(fv.Type()) != stringType {
		c.fail(diagnostic.CodeFieldAssign, mismatch(sv, fv.Type()), pair)
		return
	}

	text, ok, err := primitive.Text(sv)
	if err != nil {
		c.fail(diagnostic.CodeTextCoercion, err, pair)
		return
	}

	if !ok {
		fv.Set(reflect.Zero(fv.Type()))
		return
	}

	out, _ := adapt(reflect.ValueOf(text), fv.Type())
	fv.Set(out)
}

// assign stores a resolver result in fv.
func (c Context) assign(fv reflect.Value, value any, pair string) {
	out, ok := adapt(reflect.ValueOf(value), fv.Type())
	if !ok {
		c.fail(diagnostic.CodeFieldAssign, mismatch(reflect.ValueOf(value), fv.Type()), pair)
		return
	}

	fv.Set(out)
}

// appendTo appends value (a sequence, a Collection or a single element) to coll.
func (c Context) appendTo(coll Collection, value any, pair string) {
	items, err := elements(reflect.ValueOf(value), coll.ElemType())
	if err != nil {
		c.fail(diagnostic.CodeCollectionAppend, err, pair)
		return
	}

	if len(items) == 0 {
		return
	}

	if err := coll.AppendValues(items...); err != nil {
		c.fail(diagnostic.CodeCollectionAppend, err, pair)
	}
}

// elements flattens v into values of type elem.
func elements(v reflect.Value, elem reflect.Type) ([]any, error) {
	if v.IsValid() && v.Type().Implements(collectionType) {
		if v.Kind() == reflect.Ptr && v.IsNil() {
			return nil, nil
		}

		return elements(reflect.ValueOf(v.Interface().(Collection).Values()), elem)
	}

	inner := indirect(v)
	if !inner.IsValid() {
		return nil, nil
	}

	if (inner.Kind() != reflect.Slice && inner.Kind() != reflect.Array) || inner.Type().AssignableTo(elem) {
		out, ok := adapt(v, elem)
		if !ok {
			return nil, mismatch(v, elem)
		}

		return []any{out.Interface()}, nil
	}

	items := make([]any, 0, inner.Len())
	for i := range inner.Len() {
		out, ok := adapt(inner.Index(i), elem)
		if !ok {
			return nil, fmt.Errorf("element %d: %w", i, mismatch(inner.Index(i), elem))
		}

		items = append(items, out.Interface())
	}

	return items, nil
}

// adapt converts v to t when the two differ only by pointer levels, when
// v is assignable to t, or between slices and arrays of assignable
// elements. An invalid or nil v yields the zero value.
func adapt(v reflect.Value, t reflect.Type) (reflect.Value, bool) {
	if !v.IsValid() {
		return reflect.Zero(t), true
	}

	if v.Type().AssignableTo(t) {
		return v, true
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return reflect.Zero(t), true
		}

		if out, ok := adapt(v.Elem(), t); ok {
			return out, true
		}
	}

	switch t.Kind() {
	case reflect.Ptr:
		inner, ok := adapt(v, t.Elem())
		if !ok {
			return reflect.Value{}, false
		}

		p := reflect.New(t.Elem())
		p.Elem().Set(inner)

		return p, true

	case reflect.Array:
		// an empty slice stores the zero array; any other length must match exactly
		if v.Kind() == reflect.Slice && v.Type().Elem().AssignableTo(t.Elem()) &&
			(v.Len() == 0 || v.Len() == t.Len()) {
			arr := reflect.New(t).Elem()
			reflect.Copy(arr, v)

			return arr, true
		}

	case reflect.Slice:
		if v.Kind() == reflect.Array && v.Type().Elem().AssignableTo(t.Elem()) {
			s := reflect.MakeSlice(t, v.Len(), v.Len())
			reflect.Copy(s, v)

			return s, true
		}
	}

	return reflect.Value{}, false
}

func mismatch(v reflect.Value, t reflect.Type) error {
	from := "nil"
	if v.IsValid() {
		from = v.Type().String()
	}

	return fmt.Errorf("%w: cannot assign %s to %s", ErrTypeMismatch, from, t)
}

// elemType returns the element type of a slice or array type, following pointers.
func elemType(t reflect.Type) reflect.Type {
	return primitive.Base(t).Elem()
}
