package mapper_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pnp-mapper/mapper"
	"pnp-mapper/model"
)

type pointerResolver struct{}

func (*pointerResolver) ResolveType(mapper.Context, any) (any, error) {
	return "unreachable", nil
}

func TestMapObjects_NilResolver(t *testing.T) {
	t.Parallel()

	out, diags, err := mapper.MapObjects(Page{Title: "x"}, nil, nil, true)
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.True(t, diags.IsValid())

	var typed *pointerResolver

	out, _, err = mapper.MapObjects(Page{Title: "x"}, typed, nil, true)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestMapObjects_ModelToSchema(t *testing.T) {
	t.Parallel()

	coll := model.NewCollection(ModelItem{Title: "a"}, ModelItem{Title: "b", Count: 2})

	out, diags, err := mapper.MapObjects(coll, mapper.CollectionFromModelToSchema(reflect.TypeFor[SchemaItem]()), nil, true)
	require.NoError(t, err)
	assert.True(t, diags.IsValid())
	assert.Equal(t, []SchemaItem{{Title: "a"}, {Title: "b", Count: 2}}, out)

	out, _, err = mapper.MapObjects(nil, mapper.CollectionFromModelToSchema(reflect.TypeFor[*SchemaItem]()), nil, true)
	require.NoError(t, err)
	assert.Equal(t, []*SchemaItem{}, out)
}

func TestMapObjects_SchemaToModel(t *testing.T) {
	t.Parallel()

	items := []*SchemaItem{{Title: "a"}, nil}

	out, _, err := mapper.MapObjects(items, mapper.CollectionFromSchemaToModel(reflect.TypeFor[ModelItem]()), nil, true)
	require.NoError(t, err)
	assert.Equal(t, []any{ModelItem{Title: "a"}, ModelItem{}}, out)

	_, _, err = mapper.MapObjects(Page{}, mapper.CollectionFromSchemaToModel(reflect.TypeFor[ModelItem]()), nil, true)
	require.ErrorIs(t, err, mapper.ErrNotCollection)
}

func TestObjectFromType(t *testing.T) {
	t.Parallel()

	out, _, err := mapper.MapObjects(Page{Title: "p"}, mapper.ObjectFromType(reflect.TypeFor[Site](), ""), nil, false)
	require.NoError(t, err)
	assert.Equal(t, Site{Title: "p"}, out)

	out, _, err = mapper.MapObjects(Page{Title: "p"}, mapper.ObjectFromType(reflect.TypeFor[*Site](), "Missing"), nil, false)
	require.NoError(t, err)
	assert.Nil(t, out)

	_, _, err = mapper.MapObjects(Page{Title: "p"}, mapper.ObjectFromType(reflect.TypeFor[string](), ""), nil, false)
	require.ErrorIs(t, err, mapper.ErrInvalidDestination)
}

func TestContext_Paths(t *testing.T) {
	t.Parallel()

	ctx := mapper.NewContext(nil)
	child := ctx.At("Items").Index(2).At("Title")

	assert.Equal(t, "Items[2].Title", child.Path())
	assert.Empty(t, ctx.Path())
	assert.False(t, ctx.Recursive())
	assert.True(t, mapper.NewContext(nil, mapper.WithRecursive(true)).Recursive())
}
