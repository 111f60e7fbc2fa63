package mapper

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"pnp-mapper/primitive"
)

var ErrInvalidKey = errors.New("invalid resolver key")

// Key identifies one field of one type in a resolver Set.
// Both parts are stored upper-cased; lookups are exact matches.
type Key struct {
	Type  string
	Field string
}

// NewKey returns the key of field declared on t. Pointer levels of t are ignored.
func NewKey(t reflect.Type, field string) Key {
	return Key{
		Type:  strings.ToUpper(TypeName(primitive.Base(t))),
		Field: strings.ToUpper(field),
	}
}

// KeyFor returns the key of field declared on T.
func KeyFor[T any](field string) Key {
	return NewKey(reflect.TypeFor[T](), field)
}

// ParseKey parses the "TYPE.FIELD" form produced by Key.String.
// Matching is case-insensitive.
func ParseKey(s string) (Key, error) {
	s = strings.ToUpper(strings.TrimSpace(s))

	// type arguments may contain dots: split after the last closing bracket
	from := strings.LastIndex(s, "]") + 1

	dot := strings.LastIndex(s[from:], ".")
	if dot < 0 {
		return Key{}, fmt.Errorf("%w: %q has no field part", ErrInvalidKey, s)
	}

	dot += from
	if dot == 0 || dot == len(s)-1 {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}

	return Key{Type: s[:dot], Field: s[dot+1:]}, nil
}

// String returns the normalized "TYPE.FIELD" form.
func (k Key) String() string {
	return k.Type + "." + k.Field
}

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool {
	return k == Key{}
}

// TypeName returns the package-qualified name of t, e.g. "pnp-mapper/model.CustomAction".
func TypeName(t reflect.Type) string {
	if t == nil {
		return ""
	}

	if t.PkgPath() == "" {
		return t.String()
	}

	return t.PkgPath() + "." + t.Name()
}
