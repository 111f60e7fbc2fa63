package mapper_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pnp-mapper/mapper"
	"pnp-mapper/model"
)

func ExampleKeyFor() {
	key := mapper.KeyFor[model.CustomAction]("Rights")
	fmt.Println(key)

	parsed, _ := mapper.ParseKey("pnp-mapper/model.customaction.rights")
	fmt.Println(parsed == key)

	// Output:
	// PNP-MAPPER/MODEL.CUSTOMACTION.RIGHTS
	// true
}

func TestParseKey(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in    string
		want  mapper.Key
		valid bool
	}{
		{in: "a.b", want: mapper.Key{Type: "A", Field: "B"}, valid: true},
		{in: " pkg/sub.Type.Field ", want: mapper.Key{Type: "PKG/SUB.TYPE", Field: "FIELD"}, valid: true},
		{
			in:    "pnp-mapper/model.Collection[pnp-mapper/model.CustomAction].Items",
			want:  mapper.Key{Type: "PNP-MAPPER/MODEL.COLLECTION[PNP-MAPPER/MODEL.CUSTOMACTION]", Field: "ITEMS"},
			valid: true,
		},
		{in: "NoField"},
		{in: ".Field"},
		{in: "Type."},
		{in: "pkg.Generic[a.B]"},
		{in: ""},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()

			key, err := mapper.ParseKey(tc.in)
			if !tc.valid {
				require.ErrorIs(t, err, mapper.ErrInvalidKey)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, key)
			assert.Equal(t, tc.want.Type+"."+tc.want.Field, key.String())
		})
	}
}

func TestKeyFor_GenericType(t *testing.T) {
	t.Parallel()

	key := mapper.KeyFor[model.Collection[model.CustomAction]]("items")

	parsed, err := mapper.ParseKey(key.String())
	require.NoError(t, err)
	assert.Equal(t, key, parsed)
	assert.Equal(t, key, mapper.KeyFor[*model.Collection[model.CustomAction]]("Items"), "pointer levels are ignored")
}

type Outer struct {
	Inner Audit
	Count int
}

func TestSelect(t *testing.T) {
	t.Parallel()

	key, err := mapper.Select(func(p *Page) any { return &p.Title })
	require.NoError(t, err)
	assert.Equal(t, mapper.KeyFor[Page]("Title"), key)

	key, err = mapper.Select(func(o *Outer) any { return &o.Count })
	require.NoError(t, err)
	assert.Equal(t, mapper.KeyFor[Outer]("Count"), key)

	key, err = mapper.Select(func(o *Outer) any { return &o.Inner })
	require.NoError(t, err)
	assert.Equal(t, mapper.KeyFor[Outer]("Inner"), key)

	key, err = mapper.Select(func(o *Outer) any { return &o.Inner.CreatedBy })
	require.NoError(t, err)
	assert.Equal(t, mapper.KeyFor[Audit]("CreatedBy"), key)

	key, err = mapper.Select(func(d *Document) any { return &d.Audit })
	require.NoError(t, err)
	assert.Equal(t, mapper.KeyFor[Document]("Audit"), key)
}

func TestSelect_Invalid(t *testing.T) {
	t.Parallel()

	_, err := mapper.Select(func(p *Page) any { return p.Title })
	require.ErrorIs(t, err, mapper.ErrInvalidSelector)

	_, err = mapper.Select(func(p *Page) any { return new(string) })
	require.ErrorIs(t, err, mapper.ErrInvalidSelector)

	_, err = mapper.Select(func(p *Page) any { return (*string)(nil) })
	require.ErrorIs(t, err, mapper.ErrInvalidSelector)

	_, err = mapper.Select(func(s *string) any { return s })
	require.ErrorIs(t, err, mapper.ErrInvalidSelector)
}
