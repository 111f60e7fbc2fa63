package provisioning

import (
	"pnp-mapper/mapper"
	"pnp-mapper/mapper/resolvers"
	"pnp-mapper/model"
	"pnp-mapper/schema"
	"pnp-mapper/serializer"
)

// templateSerializer maps the scalar properties of the template root.
// Sections owned by other serializers are preserved.
type templateSerializer struct{}

func (templateSerializer) Deserialize(sc serializer.Scope, persistence any, template *model.ProvisioningTemplate) error {
	set, err := mapper.NewSet(
		mapper.On(func(t *model.ProvisioningTemplate) any { return &t.CustomActions }, resolvers.Preserve("CustomActions")),
		mapper.On(func(t *model.ProvisioningTemplate) any { return &t.Footer }, resolvers.Preserve("Footer")),
	)
	if err != nil {
		return err
	}

	return sc.Context(set, "").Properties(persistence, template)
}

func (templateSerializer) Serialize(sc serializer.Scope, template *model.ProvisioningTemplate, persistence any) error {
	bindings, err := schemaBindings(sc, schema.Root, map[string]mapper.Resolver{
		"CustomActions": resolvers.Preserve("CustomActions"),
		"Footer":        resolvers.Preserve("Footer"),
		"VersionSpecified": mapper.ValueFunc(func(source, _, _ any) (any, error) {
			t, _ := source.(*model.ProvisioningTemplate)
			return t != nil && t.Version != 0, nil
		}),
	})
	if err != nil {
		return err
	}

	set, err := mapper.NewSet(bindings...)
	if err != nil {
		return err
	}

	return sc.Context(set, "").Properties(template, persistence)
}
