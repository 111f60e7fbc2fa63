package schema

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
)

var ErrUnknownType = errors.New("unknown schema type")

// Root is the type name of a version's document root.
const Root = "ProvisioningTemplate"

// TypeTable names the Go types of one schema version.
type TypeTable struct {
	version Version
	types   map[string]reflect.Type
}

// NewTypeTable returns a table for version holding the types of samples,
// each registered under its type name.
func NewTypeTable(version Version, samples ...any) *TypeTable {
	t := &TypeTable{
		version: version,
		types:   make(map[string]reflect.Type, len(samples)),
	}

	for _, s := range samples {
		rt := reflect.TypeOf(s)
		for rt.Kind() == reflect.Ptr {
			rt = rt.Elem()
		}

		t.types[rt.Name()] = rt
	}

	return t
}

// Version returns the schema version of the table.
func (t *TypeTable) Version() Version {
	if t == nil {
		return 0
	}

	return t.version
}

// Lookup returns the type called name.
func (t *TypeTable) Lookup(name string) (reflect.Type, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: %s in a nil type table", ErrUnknownType, name)
	}

	rt, ok := t.types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s in %s", ErrUnknownType, name, t.version)
	}

	return rt, nil
}

// New returns a pointer to a new zero value of the type called name.
func (t *TypeTable) New(name string) (any, error) {
	rt, err := t.Lookup(name)
	if err != nil {
		return nil, err
	}

	return reflect.New(rt).Interface(), nil
}

// Has reports whether the table knows name.
func (t *TypeTable) Has(name string) bool {
	if t == nil {
		return false
	}

	_, ok := t.types[name]
	return ok
}

// Names returns the type names in sorted order.
func (t *TypeTable) Names() []string {
	if t == nil {
		return nil
	}

	return slices.Sorted(maps.Keys(t.types))
}
