package mapper

import (
	"reflect"

	"pnp-mapper/diagnostic"
)

// MapObjects builds a new object from source with resolver. A nil resolver
// yields nil.
func MapObjects(source any, resolver TypeResolver, resolvers Set, recursive bool) (any, diagnostic.Diagnostics, error) {
	ctx := NewContext(resolvers, WithRecursive(recursive))
	out, err := ctx.Objects(source, resolver)

	return out, ctx.Diagnostics(), err
}

// Objects is MapObjects within c.
func (c Context) Objects(source any, resolver TypeResolver) (any, error) {
	if resolver == nil {
		return nil, nil
	}

	if v := reflect.ValueOf(resolver); v.Kind() == reflect.Ptr && v.IsNil() {
		return nil, nil
	}

	return resolver.ResolveType(c, source)
}
