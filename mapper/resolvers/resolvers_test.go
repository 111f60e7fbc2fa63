package resolvers_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pnp-mapper/mapper"
	"pnp-mapper/mapper/resolvers"
	"pnp-mapper/model"
	"pnp-mapper/schema/v201605"
)

func resolve(t *testing.T, r mapper.ValueResolver, source, current any) any {
	t.Helper()

	out, err := r.ResolveValue(source, nil, current)
	require.NoError(t, err)

	return out
}

func ExampleFromBasePermissionsToString() {
	var perms model.BasePermissions
	perms.Set(model.PermissionViewListItems)
	perms.Set(model.PermissionManageWeb)

	out, _ := resolvers.FromBasePermissionsToString().ResolveValue(nil, nil, perms)
	fmt.Println(out)

	// Output: ViewListItems,ManageWeb
}

func TestFromStringToEnum(t *testing.T) {
	t.Parallel()

	domain := reflect.TypeFor[model.UserCustomActionRegistrationType]()
	schema := reflect.TypeFor[v201605.RegistrationType]()

	assert.Equal(t, model.RegistrationProgID, resolve(t, resolvers.FromStringToEnum(domain), nil, "progid"))
	assert.Equal(t, model.RegistrationList, resolve(t, resolvers.FromStringToEnum(domain), nil, v201605.RegistrationTypeList))
	assert.Equal(t, model.RegistrationNone, resolve(t, resolvers.FromStringToEnum(domain), nil, ""))
	assert.Equal(t, model.RegistrationNone, resolve(t, resolvers.FromStringToEnum(domain), nil, nil))

	assert.Equal(t, v201605.RegistrationTypeContentType, resolve(t, resolvers.FromStringToEnum(schema), nil, model.RegistrationContentType))

	_, err := resolvers.FromStringToEnum(domain).ResolveValue(nil, nil, "Bogus")
	require.Error(t, err)

	_, err = resolvers.FromStringToEnum(reflect.TypeFor[int]()).ResolveValue(nil, nil, "List")
	require.Error(t, err)
}

func TestFromEnumToString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "FileType", resolve(t, resolvers.FromEnumToString(), nil, model.RegistrationFileType))
	assert.Equal(t, "List", resolve(t, resolvers.FromEnumToString(), nil, v201605.RegistrationTypeList))
	assert.Equal(t, "", resolve(t, resolvers.FromEnumToString(), nil, nil))
}

func TestPermissions(t *testing.T) {
	t.Parallel()

	parsed := resolve(t, resolvers.FromStringToBasePermissions(), nil, "ViewListItems, addlistitems,,EnumeratePermissions")
	perms, ok := parsed.(model.BasePermissions)
	require.True(t, ok)

	assert.True(t, perms.Has(model.PermissionViewListItems))
	assert.True(t, perms.Has(model.PermissionAddListItems))
	assert.True(t, perms.Has(model.PermissionEnumeratePermissions))
	assert.False(t, perms.Has(model.PermissionManageWeb))

	assert.Equal(t, "ViewListItems,AddListItems,EnumeratePermissions", resolve(t, resolvers.FromBasePermissionsToString(), nil, perms))
	assert.Equal(t, "ViewListItems,AddListItems,EnumeratePermissions", resolve(t, resolvers.FromBasePermissionsToString(), nil, &perms))

	full := resolve(t, resolvers.FromStringToBasePermissions(), nil, "FullMask")
	assert.Equal(t, "FullMask", resolve(t, resolvers.FromBasePermissionsToString(), nil, full))

	assert.Equal(t, model.BasePermissions{}, resolve(t, resolvers.FromStringToBasePermissions(), nil, nil))
	assert.Equal(t, "", resolve(t, resolvers.FromBasePermissionsToString(), nil, nil))

	_, err := resolvers.FromStringToBasePermissions().ResolveValue(nil, nil, "ViewListItems,Fly")
	require.Error(t, err)

	_, err = resolvers.FromBasePermissionsToString().ResolveValue(nil, nil, 42)
	require.Error(t, err)
}

func TestExpression(t *testing.T) {
	t.Parallel()

	calls := 0
	r := resolvers.Expression(func() any {
		calls++
		return true
	})

	assert.Equal(t, true, resolve(t, r, "ignored", "ignored"))
	assert.Equal(t, true, resolve(t, r, nil, nil))
	assert.Equal(t, 2, calls)

	assert.Equal(t, 7, resolve(t, resolvers.Constant(7), nil, "x"))
}

func TestAny(t *testing.T) {
	t.Parallel()

	source := v201605.CustomAction{
		CommandUIExtension: &v201605.CustomActionCommandUIExtension{
			Any: []any{map[string]any{"button": "ok"}},
		},
	}

	text := resolve(t, resolvers.AnyFromSchemaToModel("CommandUIExtension"), source, nil)
	assert.JSONEq(t, `[{"button":"ok"}]`, text.(string))

	back := resolve(t, resolvers.AnyFromModelToSchema(reflect.TypeFor[*v201605.CustomActionCommandUIExtension]()), nil, text)
	wrapper, ok := back.(*v201605.CustomActionCommandUIExtension)
	require.True(t, ok)
	assert.Equal(t, []any{map[string]any{"button": "ok"}}, wrapper.Any)

	single := resolve(t, resolvers.AnyFromModelToSchema(reflect.TypeFor[v201605.CustomActionCommandUIExtension]()), nil, `{"tab":"x"}`)
	require.IsType(t, &v201605.CustomActionCommandUIExtension{}, single)
	assert.Equal(t, []any{map[string]any{"tab": "x"}}, single.(*v201605.CustomActionCommandUIExtension).Any)

	assert.Equal(t, "", resolve(t, resolvers.AnyFromSchemaToModel("CommandUIExtension"), v201605.CustomAction{}, nil))
	assert.Equal(t, "", resolve(t, resolvers.AnyFromSchemaToModel("Missing"), source, nil))
	assert.Nil(t, resolve(t, resolvers.AnyFromModelToSchema(reflect.TypeFor[v201605.CustomActionCommandUIExtension]()), nil, ""))

	_, err := resolvers.AnyFromModelToSchema(reflect.TypeFor[v201605.CustomActionCommandUIExtension]()).ResolveValue(nil, nil, "{not json")
	require.Error(t, err)

	_, err = resolvers.AnyFromModelToSchema(reflect.TypeFor[model.SiteFooter]()).ResolveValue(nil, nil, "[]")
	require.Error(t, err)
}

func TestResolversInMapping(t *testing.T) {
	t.Parallel()

	set := mapper.MustSet(
		mapper.On(func(a *model.CustomAction) any { return &a.Rights }, resolvers.FromStringToBasePermissions()),
		mapper.On(func(a *model.CustomAction) any { return &a.RegistrationType }, resolvers.FromStringToEnum(reflect.TypeFor[model.UserCustomActionRegistrationType]())),
		mapper.On(func(a *model.CustomAction) any { return &a.CommandUIExtension }, resolvers.AnyFromSchemaToModel("CommandUIExtension")),
	)

	source := v201605.CustomAction{
		Name:             "a",
		Rights:           "ManageWeb",
		RegistrationType: v201605.RegistrationTypeFileType,
		CommandUIExtension: &v201605.CustomActionCommandUIExtension{
			Any: []any{"node"},
		},
	}

	var action model.CustomAction

	diags, err := mapper.MapProperties(source, &action, set, false)
	require.NoError(t, err)
	require.True(t, diags.IsValid())

	assert.Equal(t, "a", action.Name)
	assert.True(t, action.Rights.Has(model.PermissionManageWeb))
	assert.Equal(t, model.RegistrationFileType, action.RegistrationType)
	assert.Equal(t, `["node"]`, action.CommandUIExtension)
}

func TestPreserve(t *testing.T) {
	t.Parallel()

	footer := model.NewSiteFooter()
	template := &model.ProvisioningTemplate{Footer: footer}

	set := mapper.MustSet(mapper.On(func(p *model.ProvisioningTemplate) any { return &p.Footer }, resolvers.Preserve("Footer")))

	source := struct {
		ID     string
		Footer string
	}{ID: "t", Footer: "not a footer"}

	diags, err := mapper.MapProperties(source, template, set, false)
	require.NoError(t, err)
	require.True(t, diags.IsValid())
	assert.Equal(t, "t", template.ID)
	assert.Same(t, footer, template.Footer)
}
