package mapper

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"pnp-mapper/diagnostic"
)

var (
	ErrInvalidDestination = errors.New("destination must be a non-nil pointer to a struct")
	ErrTypeMismatch       = errors.New("incompatible field types")
	ErrNilCollection      = errors.New("destination collection is nil")
	ErrNotCollection      = errors.New("source is not a collection")
)

// MapProperties copies the fields of source onto the existing destination,
// which must be a non-nil pointer to a struct. It returns the per-field
// failures; the error is non-nil only for structural problems and for
// errors returned by resolvers.
func MapProperties(source, destination any, resolvers Set, recursive bool) (diagnostic.Diagnostics, error) {
	ctx := NewContext(resolvers, WithRecursive(recursive))
	err := ctx.Properties(source, destination)

	return ctx.Diagnostics(), err
}

// Properties is MapProperties within c.
//
// Destination fields are visited in declaration order:
//   - deprecated fields are skipped, and so are collection and array
//     fields unless c is recursive;
//   - a ValueResolver registered for the field's key gets the same-named
//     source value (or nil) and its result is assigned;
//   - a TypeResolver gets the whole source; its result is appended to a
//     collection field or assigned to any other field;
//   - otherwise a same-named source field is copied, descending into
//     collections and arrays;
//   - otherwise the field keeps its value.
//
// A nil source leaves destination untouched.
func (c Context) Properties(source, destination any) error {
	dst := reflect.ValueOf(destination)
	if dst.Kind() != reflect.Ptr || dst.IsNil() || dst.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: got %T", ErrInvalidDestination, destination)
	}

	if !c.checked {
		if err := c.Resolvers.validate(); err != nil {
			return err
		}

		c.checked = true
	}

	src := indirect(reflect.ValueOf(source))
	if !src.IsValid() {
		return nil
	}

	var srcFields map[string]Field
	if src.Kind() == reflect.Struct {
		srcFields = indexFields(src.Type())
	}

	dstElem := dst.Elem()
	pair := src.Type().String() + " -> " + dstElem.Type().String()

	for _, f := range Fields(dstElem.Type()) {
		sf, hasSource := srcFields[strings.ToUpper(f.Name)]
		fc := c.At(f.Name)

		if f.Deprecated {
			if hasSource {
				fc.note(diagnostic.CodeDeprecatedField, "deprecated field is not mapped", pair)
			}

			continue
		}

		if (f.Kind == FieldCollection || f.Kind == FieldArray) && !c.Recursive() {
			continue
		}

		var sv reflect.Value
		if hasSource {
			sv = src.FieldByIndex(sf.Index)
		}

		fv := dstElem.FieldByIndex(f.Index)

		if r, found := c.Resolvers[f.Key()]; found {
			if err := fc.resolve(r, f, fv, source, destination, sv, pair); err != nil {
				return err
			}

			continue
		}

		if hasSource {
			if err := fc.copyField(f, fv, sv, pair); err != nil {
				return err
			}
		}
	}

	return nil
}

func (c Context) resolve(r Resolver, f Field, fv reflect.Value, source, destination any, sv reflect.Value, pair string) error {
	switch KindOf(r) {
	case ResolverValue:
		var current any
		if sv.IsValid() {
			current = sv.Interface()
		}

		c.Logger.Debug().Str("field", c.path).Msg("value resolver")

		value, err := r.(ValueResolver).ResolveValue(source, destination, current)
		if err != nil {
			return err
		}

		c.assign(fv, value, pair)

		return nil

	case ResolverType:
		c.Logger.Debug().Str("field", c.path).Msg("type resolver")

		if f.Kind == FieldCollection {
			coll := collectionOf(fv)
			if coll == nil {
				c.fail(diagnostic.CodeNilCollection, ErrNilCollection, pair)
				return nil
			}

			value, err := r.(TypeResolver).ResolveType(c, source)
			if err != nil {
				return err
			}

			c.appendTo(coll, value, pair)

			return nil
		}

		value, err := r.(TypeResolver).ResolveType(c, source)
		if err != nil {
			return err
		}

		c.assign(fv, value, pair)

		return nil

	default:
		return fmt.Errorf("%w: %s (%T)", ErrMalformedResolver, f.Key(), r)
	}
}

func (c Context) copyField(f Field, fv, sv reflect.Value, pair string) error {
	switch {
	case f.Kind == FieldCollection && c.Recursive():
		coll := collectionOf(fv)
		if coll == nil {
			c.fail(diagnostic.CodeNilCollection, ErrNilCollection, pair)
			return nil
		}

		if !isSequence(sv) {
			c.fail(diagnostic.CodeFieldAssign, fmt.Errorf("%w: %s", ErrNotCollection, sv.Type()), pair)
			return nil
		}

		items, err := c.Objects(sv.Interface(), CollectionFromSchemaToModel(coll.ElemType()))
		if err != nil {
			return err
		}

		c.appendTo(coll, items, pair)

		return nil

	case f.Kind == FieldArray && c.Recursive():
		if !isSequence(sv) {
			c.fail(diagnostic.CodeFieldAssign, fmt.Errorf("%w: %s", ErrNotCollection, sv.Type()), pair)
			return nil
		}

		items, err := c.Objects(sv.Interface(), CollectionFromModelToSchema(elemType(f.Type)))
		if err != nil {
			return err
		}

		c.assign(fv, items, pair)

		return nil

	default:
		c.copyValue(fv, sv, pair)
		return nil
	}
}

// isSequence reports whether v holds a slice, an array, a Collection or nil.
func isSequence(v reflect.Value) bool {
	if v.IsValid() && v.Type().Implements(collectionType) {
		return true
	}

	inner := indirect(v)
	if !inner.IsValid() {
		return true
	}

	if inner.CanAddr() && inner.Addr().Type().Implements(collectionType) {
		return true
	}

	return inner.Kind() == reflect.Slice || inner.Kind() == reflect.Array
}
