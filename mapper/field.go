package mapper

import (
	"reflect"
	"slices"
	"strings"

	"pnp-mapper/internal/common"
	"pnp-mapper/primitive"
)

// TagName is the struct tag read by the mapper. Supported options:
//
//	mapper:"deprecated"  the field is never mapped
//	mapper:"-"           same as deprecated
const TagName = "mapper"

// Collection is implemented by domain collection types. The mapper only
// ever appends to a collection; it never replaces the instance held by a
// field.
type Collection interface {
	ElemType() reflect.Type
	Len() int
	Values() []any
	AppendValues(values ...any) error
}

var collectionType = reflect.TypeOf((*Collection)(nil)).Elem()

type FieldKind int

const (
	FieldUnknown    FieldKind = iota
	FieldScalar               // numbers, booleans, strings, bytes, time values and enums built on them
	FieldCollection           // domain collection (implements Collection)
	FieldArray                // slice or array
	FieldObject               // structs, maps, interfaces and everything else

	// FieldTotal is a constant that represents the total number of field kinds defined
	FieldTotal = int(iota)
)

func (k FieldKind) String() string {
	switch k {
	case FieldScalar:
		return "scalar"
	case FieldCollection:
		return "collection"
	case FieldArray:
		return "array"
	case FieldObject:
		return "object"
	default:
		return common.UnknownStr
	}
}

// Field describes one mappable field of a struct.
type Field struct {
	Name          string
	Type          reflect.Type
	Kind          FieldKind
	Deprecated    bool
	DeclaringType reflect.Type // struct type the field is declared on; differs from the walked type for promoted fields
	Index         []int
}

// Key returns the resolver key of f.
func (f Field) Key() Key {
	return NewKey(f.DeclaringType, f.Name)
}

// Classify returns the field kind of values of type t.
func Classify(t reflect.Type) FieldKind {
	if t == nil {
		return FieldUnknown
	}

	if t.Implements(collectionType) || (t.Kind() != reflect.Ptr && reflect.PointerTo(t).Implements(collectionType)) {
		return FieldCollection
	}

	base := primitive.Base(t)
	if primitive.FromReflectType(base).IsScalar() {
		return FieldScalar
	}

	switch base.Kind() {
	case reflect.Slice, reflect.Array:
		return FieldArray
	default:
		return FieldObject
	}
}

// Fields lists the exported fields of struct type t (pointers are
// followed) in declaration order. Fields of embedded structs are
// promoted in place of the embedded field. A field name declared at a
// shallower depth hides deeper ones, and a name declared more than once
// at its shallowest depth is not listed, as with Go selectors.
func Fields(t reflect.Type) []Field {
	t = primitive.Base(t)
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	return visible(appendFields(nil, t, nil))
}

func visible(fields []Field) []Field {
	depth := make(map[string]int, len(fields))
	count := make(map[string]int, len(fields))

	for _, f := range fields {
		d, seen := depth[f.Name]

		switch {
		case !seen || len(f.Index) < d:
			depth[f.Name] = len(f.Index)
			count[f.Name] = 1
		case len(f.Index) == d:
			count[f.Name]++
		}
	}

	out := make([]Field, 0, len(fields))

	for _, f := range fields {
		if len(f.Index) == depth[f.Name] && count[f.Name] == 1 {
			out = append(out, f)
		}
	}

	return out
}

func appendFields(out []Field, t reflect.Type, parent []int) []Field {
	for i := range t.NumField() {
		sf := t.Field(i)
		index := append(slices.Clone(parent), i)

		if sf.Anonymous && sf.Type.Kind() == reflect.Struct && Classify(sf.Type) != FieldCollection {
			out = appendFields(out, sf.Type, index)
			continue
		}

		if !sf.IsExported() {
			continue
		}

		out = append(out, Field{
			Name:          sf.Name,
			Type:          sf.Type,
			Kind:          Classify(sf.Type),
			Deprecated:    isDeprecated(sf.Tag),
			DeclaringType: t,
			Index:         index,
		})
	}

	return out
}

func isDeprecated(tag reflect.StructTag) bool {
	value, ok := tag.Lookup(TagName)
	if !ok {
		return false
	}

	for _, opt := range strings.Split(value, ",") {
		switch strings.TrimSpace(opt) {
		case "deprecated", "-":
			return true
		}
	}

	return false
}

// indexFields maps upper-cased field names to fields; the first
// declaration of a name wins.
func indexFields(t reflect.Type) map[string]Field {
	fields := Fields(t)

	index := make(map[string]Field, len(fields))
	for _, f := range fields {
		name := strings.ToUpper(f.Name)
		if _, exists := index[name]; !exists {
			index[name] = f
		}
	}

	return index
}

// FieldValue returns the value of source's field called name (compared
// case-insensitively). Pointers and interfaces around source are followed.
func FieldValue(source any, name string) (any, bool) {
	v := indirect(reflect.ValueOf(source))
	if !v.IsValid() || v.Kind() != reflect.Struct {
		return nil, false
	}

	f, ok := indexFields(v.Type())[strings.ToUpper(name)]
	if !ok {
		return nil, false
	}

	return v.FieldByIndex(f.Index).Interface(), true
}

// indirect follows pointers and interfaces; nil yields the invalid Value.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}

		v = v.Elem()
	}

	return v
}

// collectionOf returns the Collection held by fv, or nil when the field
// holds a nil pointer, directly or inside an interface.
func collectionOf(fv reflect.Value) Collection {
	if fv.Type().Implements(collectionType) {
		if fv.Kind() == reflect.Ptr && fv.IsNil() {
			return nil
		}

		c, _ := fv.Interface().(Collection)
		if c == nil {
			return nil
		}

		if cv := reflect.ValueOf(c); cv.Kind() == reflect.Ptr && cv.IsNil() {
			return nil
		}

		return c
	}

	if fv.CanAddr() {
		c, _ := fv.Addr().Interface().(Collection)
		return c
	}

	return nil
}
