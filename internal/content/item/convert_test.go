package item_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/zork-content/internal/content/item"
)

func validData() *item.Data {
	return &item.Data{
		ID:              "lamp",
		Name:            "brass lantern",
		Description:     "A battery-powered brass lantern.",
		ExamineText:     "The lantern is off.",
		Aliases:         []string{"lantern", "light"},
		Type:            "TOOL",
		Portable:        true,
		Visible:         true,
		Weight:          15,
		Size:            "MEDIUM",
		InitialState:    map[string]any{"isOn": false},
		Tags:            []string{"light_source"},
		Properties:      item.Properties{"lightTimer": float64(330)},
		InitialLocation: "living_room",
	}
}

func TestConvert_CanonicalEnums(t *testing.T) {
	it, err := item.Convert(validData())
	require.NoError(t, err)

	assert.Equal(t, item.TypeTool, it.Type)
	assert.Equal(t, item.SizeMedium, it.Size)
}

func TestConvert_EnumRoundTrip(t *testing.T) {
	types := map[string]item.Type{
		"TOOL":         item.TypeTool,
		"CONTAINER":    item.TypeContainer,
		"WEAPON":       item.TypeWeapon,
		"LIGHT_SOURCE": item.TypeLightSource,
		"TREASURE":     item.TypeTreasure,
		"FOOD":         item.TypeFood,
	}
	for raw, want := range types {
		d := validData()
		d.Type = raw
		it, err := item.Convert(d)
		require.NoError(t, err, "type %q", raw)
		assert.Equal(t, want, it.Type)
	}

	sizes := map[string]item.Size{
		"TINY":   item.SizeTiny,
		"SMALL":  item.SizeSmall,
		"MEDIUM": item.SizeMedium,
		"LARGE":  item.SizeLarge,
		"HUGE":   item.SizeHuge,
	}
	for raw, want := range sizes {
		d := validData()
		d.Size = raw
		it, err := item.Convert(d)
		require.NoError(t, err, "size %q", raw)
		assert.Equal(t, want, it.Size)
	}
}

func TestConvert_InvalidTypeFails(t *testing.T) {
	d := validData()
	d.Type = "INVALID_TYPE"
	_, err := item.Convert(d)
	require.Error(t, err)
	assert.Equal(t, "Invalid item type: INVALID_TYPE", err.Error())
}

func TestConvert_InvalidSizeFails(t *testing.T) {
	d := validData()
	d.Size = "GIGANTIC"
	_, err := item.Convert(d)
	require.Error(t, err)
	assert.Equal(t, "Invalid item size: GIGANTIC", err.Error())
}

func TestConvert_CurrentLocationCopiedFromInitial(t *testing.T) {
	it, err := item.Convert(validData())
	require.NoError(t, err)
	assert.Equal(t, "living_room", it.InitialLocation)
	assert.Equal(t, "living_room", it.CurrentLocation)
}

func TestConvert_StateAndFlagsDefaults(t *testing.T) {
	d := validData()
	d.InitialState = nil
	it, err := item.Convert(d)
	require.NoError(t, err)

	require.NotNil(t, it.State)
	assert.Empty(t, it.State)
	require.NotNil(t, it.Flags)
	assert.Empty(t, it.Flags)
}

func TestConvert_PropertiesPassThroughVerbatim(t *testing.T) {
	d := validData()
	d.Properties = item.Properties{
		"value":      float64(10),
		"readText":   "Hello, sailor!",
		"customKey":  "kept",
		"nullValued": nil,
	}
	it, err := item.Convert(d)
	require.NoError(t, err)

	// Well-known keys through accessors.
	v, ok := it.Properties.Value()
	require.True(t, ok)
	assert.Equal(t, 10, v)
	text, ok := it.Properties.ReadText()
	require.True(t, ok)
	assert.Equal(t, "Hello, sailor!", text)

	// Unknown keys and null values are retained, not stripped.
	assert.Equal(t, "kept", it.Properties["customKey"])
	null, present := it.Properties["nullValued"]
	require.True(t, present)
	assert.Nil(t, null)

	_, ok = it.Properties.Capacity()
	assert.False(t, ok)
}

func TestProperties_Accessors(t *testing.T) {
	p := item.Properties{
		"size":           float64(15),
		"treasurePoints": float64(5),
		"capacity":       float64(100),
		"lightTimer":     float64(330),
		"matchCount":     float64(6),
	}

	got, ok := p.Size()
	require.True(t, ok)
	assert.Equal(t, 15, got)
	got, ok = p.TreasurePoints()
	require.True(t, ok)
	assert.Equal(t, 5, got)
	got, ok = p.Capacity()
	require.True(t, ok)
	assert.Equal(t, 100, got)
	got, ok = p.LightTimer()
	require.True(t, ok)
	assert.Equal(t, 330, got)
	got, ok = p.MatchCount()
	require.True(t, ok)
	assert.Equal(t, 6, got)

	_, ok = p.ReadText()
	assert.False(t, ok)
}
