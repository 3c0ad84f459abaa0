package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKnownID(t *testing.T) {
	r := NewResolver(Default())

	res := r.Resolve("40-high-cube")
	assert.Equal(t, "40-high-cube", res.EffectiveID)
	assert.Equal(t, VariantHighCube, res.Option.Variant)
	assert.Equal(t, SizeLong, res.Option.Size)
	assert.Equal(t, "76 m3", res.Detail.Capacity)
}

func TestResolveUnknownIDFallsBackToFirstEntry(t *testing.T) {
	c := Default()
	r := NewResolver(c)

	want := r.Resolve(c.FirstContainerID())
	for _, id := range []string{"", "nonexistent-id", "40-high-cube ", "DROP TABLE"} {
		got := r.Resolve(id)
		assert.Equal(t, want, got, "requested %q", id)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	r := NewResolver(Default())

	for _, id := range []string{"20-tank", "bogus", ""} {
		first := r.Resolve(id)
		second := r.Resolve(id)
		assert.Equal(t, first, second)
	}
}

func TestResolveTotalOverWholeCatalog(t *testing.T) {
	c := Default()
	r := NewResolver(c)

	for _, opt := range c.Containers() {
		res := r.Resolve(opt.ID)
		assert.Equal(t, opt.ID, res.EffectiveID)
		assert.NotEmpty(t, res.Detail.Description)
	}
}

func TestResolveBorrowsFallbackDetailWhenRowMissing(t *testing.T) {
	// A catalog with an option whose detail row was never added.
	c, err := New(Definition{
		Containers: []ContainerOption{
			{ID: "first", Name: "First", Variant: VariantStandard, Size: SizeShort},
			{ID: "gapped", Name: "Gapped", Variant: VariantOpenTop, Size: SizeLong},
		},
		Details: map[string]ContainerDetail{
			"first": {Capacity: "33.2 m3", Description: "first detail"},
		},
		Trucks: defaultTrucks,
	})
	require.NoError(t, err)

	res := NewResolver(c).Resolve("gapped")
	assert.Equal(t, "gapped", res.EffectiveID)
	assert.Equal(t, VariantOpenTop, res.Option.Variant)
	// Detail is borrowed from the first entry, the option is not.
	assert.Equal(t, "first detail", res.Detail.Description)
}
