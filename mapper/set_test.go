package mapper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pnp-mapper/mapper"
)

// both implements ValueResolver and TypeResolver, which makes it ambiguous.
type both struct{}

func (both) ResolveValue(_, _, _ any) (any, error)        { return nil, nil }
func (both) ResolveType(mapper.Context, any) (any, error) { return nil, nil }

var identity = mapper.ValueFunc(func(_, _, current any) (any, error) { return current, nil })

func TestKindOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, mapper.ResolverValue, mapper.KindOf(identity))
	assert.Equal(t, mapper.ResolverType, mapper.KindOf(mapper.ObjectFromType(nil, "")))
	assert.Equal(t, mapper.ResolverUnknown, mapper.KindOf(both{}))
	assert.Equal(t, mapper.ResolverUnknown, mapper.KindOf("text"))
	assert.Equal(t, mapper.ResolverUnknown, mapper.KindOf(nil))
	assert.Equal(t, "unknown", mapper.ResolverUnknown.String())
}

func TestNewSet(t *testing.T) {
	t.Parallel()

	set, err := mapper.NewSet(
		mapper.On(func(p *Page) any { return &p.Title }, identity),
		mapper.On(func(s *Site) any { return &s.Title }, identity),
	)
	require.NoError(t, err)
	assert.Len(t, set, 2)

	r, ok := set.Lookup(mapper.KeyFor[Site]("title"))
	assert.True(t, ok)
	assert.NotNil(t, r)

	_, ok = set.Lookup(mapper.KeyFor[Audit]("Title"))
	assert.False(t, ok)
}

func TestNewSet_Errors(t *testing.T) {
	t.Parallel()

	_, err := mapper.NewSet(
		mapper.On(func(p *Page) any { return &p.Title }, identity),
		mapper.Bind(mapper.KeyFor[Page]("TITLE"), identity),
	)
	require.ErrorIs(t, err, mapper.ErrDuplicateKey)

	_, err = mapper.NewSet(mapper.Bind(mapper.KeyFor[Page]("Title"), both{}))
	require.ErrorIs(t, err, mapper.ErrMalformedResolver)

	_, err = mapper.NewSet(mapper.Bind(mapper.Key{}, identity))
	require.ErrorIs(t, err, mapper.ErrInvalidKey)

	_, err = mapper.NewSet(mapper.On(func(p *Page) any { return p.Title }, identity))
	require.ErrorIs(t, err, mapper.ErrInvalidSelector)

	assert.Panics(t, func() {
		mapper.MustSet(mapper.Bind(mapper.KeyFor[Page]("Title"), 42))
	})
}

func TestSetFromStrings(t *testing.T) {
	t.Parallel()

	title := mapper.KeyFor[Page]("Title")

	set, err := mapper.SetFromStrings(map[string]mapper.Resolver{
		title.String(): identity,
	})
	require.NoError(t, err)

	_, ok := set.Lookup(title)
	assert.True(t, ok)
	assert.Equal(t, []string{title.String()}, keysOf(set.Strings()))

	_, err = mapper.SetFromStrings(map[string]mapper.Resolver{"Title": identity})
	require.ErrorIs(t, err, mapper.ErrInvalidKey)

	_, err = mapper.SetFromStrings(map[string]mapper.Resolver{
		"a.b": identity,
		"A.B": identity,
	})
	require.ErrorIs(t, err, mapper.ErrDuplicateKey)
}

func TestSet_Merge(t *testing.T) {
	t.Parallel()

	a := mapper.MustSet(mapper.Bind(mapper.KeyFor[Page]("Title"), identity))
	b := mapper.MustSet(mapper.Bind(mapper.KeyFor[Site]("Title"), identity))

	merged, err := a.Merge(b)
	require.NoError(t, err)
	assert.Equal(t, []mapper.Key{mapper.KeyFor[Page]("Title"), mapper.KeyFor[Site]("Title")}, merged.Keys())
	assert.Len(t, a, 1, "receiver is not modified")

	_, err = merged.Merge(a)
	require.ErrorIs(t, err, mapper.ErrDuplicateKey)

	var empty mapper.Set
	merged, err = empty.Merge(nil)
	require.NoError(t, err)
	assert.Empty(t, merged)
}

func keysOf(m map[string]mapper.Resolver) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	return keys
}
