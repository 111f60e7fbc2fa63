package mapper

import (
	"errors"

	"pnp-mapper/internal/common"
)

var (
	ErrMalformedResolver = errors.New("resolver must implement exactly one of ValueResolver and TypeResolver")
	ErrDuplicateKey      = errors.New("duplicate resolver key")
)

// ValueResolver produces the value of one destination field.
//
// current is the value of the same-named source field, or nil when the
// source has no such field. The returned value is assigned unconditionally;
// nil stores the field's zero value.
type ValueResolver interface {
	ResolveValue(source, destination, current any) (any, error)
}

// TypeResolver builds a sub-object, or a sequence of sub-objects, from the
// whole source object. ctx carries the resolver set and the recursion flag
// of the running mapping call.
type TypeResolver interface {
	ResolveType(ctx Context, source any) (any, error)
}

// Resolver is a ValueResolver or a TypeResolver.
type Resolver any

// ValueFunc adapts a function to ValueResolver.
type ValueFunc func(source, destination, current any) (any, error)

func (f ValueFunc) ResolveValue(source, destination, current any) (any, error) {
	return f(source, destination, current)
}

// TypeFunc adapts a function to TypeResolver.
type TypeFunc func(ctx Context, source any) (any, error)

func (f TypeFunc) ResolveType(ctx Context, source any) (any, error) {
	return f(ctx, source)
}

type ResolverKind int

const (
	ResolverUnknown ResolverKind = iota
	ResolverValue
	ResolverType

	// ResolverTotal is a constant that represents the total number of resolver kinds defined
	ResolverTotal = int(iota)
)

func (k ResolverKind) String() string {
	switch k {
	case ResolverValue:
		return "value"
	case ResolverType:
		return "type"
	default:
		return common.UnknownStr
	}
}

// KindOf classifies r. Values implementing both interfaces, or neither,
// are ResolverUnknown.
func KindOf(r Resolver) ResolverKind {
	_, isValue := r.(ValueResolver)
	_, isType := r.(TypeResolver)

	switch {
	case isValue && !isType:
		return ResolverValue
	case isType && !isValue:
		return ResolverType
	default:
		return ResolverUnknown
	}
}
