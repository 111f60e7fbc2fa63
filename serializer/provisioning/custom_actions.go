package provisioning

import (
	"reflect"

	"pnp-mapper/mapper"
	"pnp-mapper/mapper/resolvers"
	"pnp-mapper/model"
	"pnp-mapper/serializer"
)

const customActionsField = "CustomActions"

// customActionsSerializer maps the site and web custom actions.
type customActionsSerializer struct{}

func (customActionsSerializer) Deserialize(sc serializer.Scope, persistence any, template *model.ProvisioningTemplate) error {
	source := child(persistence, customActionsField)
	if source == nil {
		return nil
	}

	if template.CustomActions == nil {
		template.CustomActions = model.NewCustomActions()
	}

	action := reflect.TypeFor[model.CustomAction]()

	set, err := mapper.NewSet(
		mapper.On(func(c *model.CustomActions) any { return &c.SiteCustomActions }, collectionOf("SiteCustomActions", action, true)),
		mapper.On(func(c *model.CustomActions) any { return &c.WebCustomActions }, collectionOf("WebCustomActions", action, true)),
		mapper.On(func(a *model.CustomAction) any { return &a.Rights }, resolvers.FromStringToBasePermissions()),
		mapper.On(func(a *model.CustomAction) any { return &a.RegistrationType },
			resolvers.FromStringToEnum(reflect.TypeFor[model.UserCustomActionRegistrationType]())),
		mapper.On(func(a *model.CustomAction) any { return &a.CommandUIExtension }, resolvers.AnyFromSchemaToModel("CommandUIExtension")),
	)
	if err != nil {
		return err
	}

	return sc.Context(set, customActionsField).Properties(source, template.CustomActions)
}

func (customActionsSerializer) Serialize(sc serializer.Scope, template *model.ProvisioningTemplate, persistence any) error {
	actions := template.CustomActions
	if actions == nil || actions.SiteCustomActions.Len()+actions.WebCustomActions.Len() == 0 {
		return nil
	}

	action, err := sc.Lookup("CustomAction")
	if err != nil {
		return err
	}

	registrationType, err := fieldType(sc, "CustomAction", "RegistrationType")
	if err != nil {
		return err
	}

	commandUI, err := fieldType(sc, "CustomAction", "CommandUIExtension")
	if err != nil {
		return err
	}

	listBindings, err := schemaBindings(sc, customActionsField, map[string]mapper.Resolver{
		"SiteCustomActions": collectionOf("SiteCustomActions", action, false),
		"WebCustomActions":  collectionOf("WebCustomActions", action, false),
	})
	if err != nil {
		return err
	}

	actionBindings, err := schemaBindings(sc, "CustomAction", map[string]mapper.Resolver{
		"Rights":                    resolvers.FromBasePermissionsToString(),
		"RegistrationType":          resolvers.FromStringToEnum(registrationType),
		"RegistrationTypeSpecified": resolvers.Constant(true),
		"SequenceSpecified":         resolvers.Constant(true),
		"CommandUIExtension":        resolvers.AnyFromModelToSchema(commandUI),
	})
	if err != nil {
		return err
	}

	set, err := mapper.NewSet(append(listBindings, actionBindings...)...)
	if err != nil {
		return err
	}

	target, err := sc.Types.New(customActionsField)
	if err != nil {
		return err
	}

	if err := sc.Context(set, customActionsField).Properties(actions, target); err != nil {
		return err
	}

	return setChild(persistence, customActionsField, target)
}
