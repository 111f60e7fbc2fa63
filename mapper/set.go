package mapper

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

var ErrInvalidSelector = errors.New("invalid field selector")

// Set maps field keys to resolvers. A nil Set is empty.
type Set map[Key]Resolver

// Binding pairs a key with a resolver; see On and Bind.
type Binding struct {
	Key      Key
	Resolver Resolver

	err error
}

// Bind binds r to an explicit key.
func Bind(key Key, r Resolver) Binding {
	return Binding{Key: key, Resolver: r}
}

// On binds r to the field of T addressed by sel, which must return the
// address of a field of its argument:
//
//	mapper.On(func(a *model.CustomAction) any { return &a.Rights }, r)
//
// Addressing a field of a nested struct (&a.Sub.Field) keys the resolver
// on the nested struct type, which is the field's declaring type.
func On[T any](sel func(*T) any, r Resolver) Binding {
	key, err := Select(sel)

	return Binding{Key: key, Resolver: r, err: err}
}

// Select resolves a field selector to its key without binding a resolver.
func Select[T any](sel func(*T) any) (Key, error) {
	var zero T

	root := reflect.ValueOf(&zero)
	rootType := root.Elem().Type()

	if rootType.Kind() != reflect.Struct {
		return Key{}, fmt.Errorf("%w: %s is not a struct", ErrInvalidSelector, rootType)
	}

	ptr := reflect.ValueOf(sel(&zero))
	if ptr.Kind() != reflect.Ptr || ptr.IsNil() {
		return Key{}, fmt.Errorf("%w: selector on %s must return a field address", ErrInvalidSelector, rootType)
	}

	if ptr.Pointer() < root.Pointer() || ptr.Pointer()-root.Pointer() >= rootType.Size() {
		return Key{}, fmt.Errorf("%w: selector on %s returned an address outside the struct", ErrInvalidSelector, rootType)
	}

	owner, field, ok := fieldAt(rootType, ptr.Pointer()-root.Pointer(), ptr.Type().Elem())
	if !ok {
		return Key{}, fmt.Errorf("%w: no field of type %s on %s", ErrInvalidSelector, ptr.Type().Elem(), rootType)
	}

	if !field.IsExported() {
		return Key{}, fmt.Errorf("%w: %s.%s is not exported", ErrInvalidSelector, owner, field.Name)
	}

	return NewKey(owner, field.Name), nil
}

// fieldAt finds the innermost field of type target starting at offset off.
func fieldAt(t reflect.Type, off uintptr, target reflect.Type) (reflect.Type, reflect.StructField, bool) {
	for i := range t.NumField() {
		f := t.Field(i)
		if off < f.Offset || off >= f.Offset+f.Type.Size() {
			continue
		}

		if off == f.Offset && f.Type == target && !f.Anonymous {
			return t, f, true
		}

		if f.Type.Kind() == reflect.Struct {
			if owner, inner, ok := fieldAt(f.Type, off-f.Offset, target); ok {
				return owner, inner, true
			}
		}

		if off == f.Offset && f.Type == target {
			return t, f, true
		}
	}

	return nil, reflect.StructField{}, false
}

// NewSet builds a Set from bindings. It fails on invalid selectors,
// malformed resolvers and duplicate keys.
func NewSet(bindings ...Binding) (Set, error) {
	set := make(Set, len(bindings))

	for _, b := range bindings {
		if b.err != nil {
			return nil, b.err
		}

		if err := set.Add(b.Key, b.Resolver); err != nil {
			return nil, err
		}
	}

	return set, nil
}

// MustSet is like NewSet but panics on error.
func MustSet(bindings ...Binding) Set {
	set, err := NewSet(bindings...)
	if err != nil {
		panic(err)
	}

	return set
}

// SetFromStrings builds a Set from the string form "TYPE.FIELD" of its keys.
func SetFromStrings(resolvers map[string]Resolver) (Set, error) {
	set := make(Set, len(resolvers))

	for _, s := range slices.Sorted(maps.Keys(resolvers)) {
		key, err := ParseKey(s)
		if err != nil {
			return nil, err
		}

		if err := set.Add(key, resolvers[s]); err != nil {
			return nil, err
		}
	}

	return set, nil
}

// Add registers r under key.
func (s Set) Add(key Key, r Resolver) error {
	if key.IsZero() {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	if KindOf(r) == ResolverUnknown {
		return fmt.Errorf("%w: %s (%T)", ErrMalformedResolver, key, r)
	}

	if _, exists := s[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, key)
	}

	s[key] = r

	return nil
}

// Lookup returns the resolver registered under key.
func (s Set) Lookup(key Key) (Resolver, bool) {
	r, ok := s[key]
	return r, ok
}

// Merge returns a new Set holding the entries of s and other.
func (s Set) Merge(other Set) (Set, error) {
	merged := make(Set, len(s)+len(other))
	maps.Copy(merged, s)

	for _, key := range other.Keys() {
		if err := merged.Add(key, other[key]); err != nil {
			return nil, err
		}
	}

	return merged, nil
}

// Keys returns the keys of s in string order.
func (s Set) Keys() []Key {
	keys := slices.Collect(maps.Keys(s))
	slices.SortFunc(keys, func(a, b Key) int {
		return strings.Compare(a.String(), b.String())
	})

	return keys
}

// Strings returns s keyed by the string form of its keys.
func (s Set) Strings() map[string]Resolver {
	out := make(map[string]Resolver, len(s))
	for key, r := range s {
		out[key.String()] = r
	}

	return out
}

// validate checks entries added to s without Add.
func (s Set) validate() error {
	for _, key := range s.Keys() {
		if KindOf(s[key]) == ResolverUnknown {
			return fmt.Errorf("%w: %s (%T)", ErrMalformedResolver, key, s[key])
		}
	}

	return nil
}
