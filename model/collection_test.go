package model_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pnp-mapper/model"
)

func TestCollection(t *testing.T) {
	c := model.NewCollection("a")

	c.Add("b")
	c.AddRange("c", "d")

	assert.Equal(t, 4, c.Len())
	assert.Equal(t, []string{"a", "b", "c", "d"}, c.Items())
	assert.Equal(t, "c", c.At(2))
	assert.Equal(t, []any{"a", "b", "c", "d"}, c.Values())
	assert.Equal(t, reflect.TypeFor[string](), c.ElemType())

	c.Clear()
	assert.Zero(t, c.Len())
}

func TestCollection_AppendValues(t *testing.T) {
	c := model.NewCollection[int]()

	require.NoError(t, c.AppendValues(1, 2))
	assert.Equal(t, []int{1, 2}, c.Items())

	err := c.AppendValues(3, "four")
	require.ErrorIs(t, err, model.ErrElementType)
	assert.Equal(t, []int{1, 2}, c.Items(), "a failed append must not append anything")
}

func TestCollection_Nil(t *testing.T) {
	var c *model.Collection[int]

	assert.Zero(t, c.Len())
	assert.Nil(t, c.Items())
	assert.Empty(t, c.Values())
}
