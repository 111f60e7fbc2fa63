package serializer

import (
	"reflect"

	"github.com/rs/zerolog"

	"pnp-mapper/diagnostic"
	"pnp-mapper/mapper"
	"pnp-mapper/options"
	"pnp-mapper/schema"
)

// Scope is the state shared by the serializers of one conversion: the
// schema version and its types, the mapping mode, a logger and the
// diagnostics sink.
type Scope struct {
	Types  *schema.TypeTable
	Mode   options.ModeEnum
	Logger zerolog.Logger

	diags *diagnostic.Diagnostics
}

// ScopeOption configures a Scope.
type ScopeOption func(*Scope)

// WithMode replaces the mapping mode. ModeRecursive is always added.
func WithMode(mode options.ModeEnum) ScopeOption {
	return func(s *Scope) {
		s.Mode = mode | options.ModeRecursive
	}
}

// WithLogger sets the scope logger.
func WithLogger(logger zerolog.Logger) ScopeOption {
	return func(s *Scope) {
		s.Logger = logger
	}
}

// WithDiagnostics makes the scope report into d.
func WithDiagnostics(d *diagnostic.Diagnostics) ScopeOption {
	return func(s *Scope) {
		if d != nil {
			s.diags = d
		}
	}
}

// NewScope returns a scope over the schema version described by types.
func NewScope(types *schema.TypeTable, opts ...ScopeOption) Scope {
	s := Scope{
		Types:  types,
		Mode:   options.ModeRecursive,
		Logger: zerolog.Nop(),
		diags:  &diagnostic.Diagnostics{},
	}

	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// Version returns the schema version of the scope.
func (s Scope) Version() schema.Version {
	return s.Types.Version()
}

// Lookup returns the schema type called name.
func (s Scope) Lookup(name string) (reflect.Type, error) {
	return s.Types.Lookup(name)
}

// Key returns the resolver key of field on the schema type called name.
func (s Scope) Key(name, field string) (mapper.Key, error) {
	t, err := s.Lookup(name)
	if err != nil {
		return mapper.Key{}, err
	}

	return mapper.NewKey(t, field), nil
}

// Context returns a mapping context using resolvers whose failures are
// reported under path.
func (s Scope) Context(resolvers mapper.Set, path string) mapper.Context {
	return mapper.NewContext(resolvers,
		mapper.WithMode(s.Mode),
		mapper.WithLogger(s.Logger),
		mapper.WithDiagnostics(s.diags),
		mapper.WithPath(path),
	)
}

// Diagnostics returns the field failures reported so far.
func (s Scope) Diagnostics() diagnostic.Diagnostics {
	if s.diags == nil {
		return diagnostic.Diagnostics{}
	}

	return *s.diags
}
