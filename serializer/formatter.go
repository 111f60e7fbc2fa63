package serializer

import (
	"fmt"

	"pnp-mapper/diagnostic"
	"pnp-mapper/model"
	"pnp-mapper/schema"
)

// Formatter converts whole provisioning templates with the serializers
// of a registry.
type Formatter struct {
	registry *Registry
	opts     []ScopeOption
}

// NewFormatter returns a formatter over registry; opts configure the
// scope of every conversion.
func NewFormatter(registry *Registry, opts ...ScopeOption) *Formatter {
	return &Formatter{registry: registry, opts: opts}
}

// ToDomain builds a domain template from persistence, a document root of
// the version described by types.
func (f *Formatter) ToDomain(types *schema.TypeTable, persistence any) (*model.ProvisioningTemplate, diagnostic.Diagnostics, error) {
	sc := f.scope(types)

	selected, err := f.registry.Selected(sc.Version(), DirectionDeserialize)
	if err != nil {
		return nil, sc.Diagnostics(), err
	}

	template := model.NewProvisioningTemplate()

	for _, reg := range selected {
		sc.Logger.Debug().Str("serializer", reg.String()).Msg("deserialize")

		if err := reg.Serializer.Deserialize(sc, persistence, template); err != nil {
			return nil, sc.Diagnostics(), fmt.Errorf("deserialize %s: %w", reg.DomainType, err)
		}
	}

	return template, sc.Diagnostics(), nil
}

// FromDomain builds a document root of the version described by types
// from template. The result is a pointer to the version's root type.
func (f *Formatter) FromDomain(types *schema.TypeTable, template *model.ProvisioningTemplate) (any, diagnostic.Diagnostics, error) {
	sc := f.scope(types)

	persistence, err := types.New(schema.Root)
	if err != nil {
		return nil, sc.Diagnostics(), err
	}

	selected, err := f.registry.Selected(sc.Version(), DirectionSerialize)
	if err != nil {
		return nil, sc.Diagnostics(), err
	}

	for _, reg := range selected {
		sc.Logger.Debug().Str("serializer", reg.String()).Msg("serialize")

		if err := reg.Serializer.Serialize(sc, template, persistence); err != nil {
			return nil, sc.Diagnostics(), fmt.Errorf("serialize %s: %w", reg.DomainType, err)
		}
	}

	return persistence, sc.Diagnostics(), nil
}

func (f *Formatter) scope(types *schema.TypeTable) Scope {
	sc := NewScope(types, f.opts...)
	sc.Logger = sc.Logger.With().Str("schema", sc.Version().String()).Logger()

	return sc
}
