package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumOrNil(t *testing.T) {
	assert.Nil(t, NumOrNil(nil))
	assert.Nil(t, NumOrNil(""))
	assert.Nil(t, NumOrNil("  "))
	assert.Nil(t, NumOrNil("abc"))
	assert.Nil(t, NumOrNil([]any{1}))

	require.NotNil(t, NumOrNil(float64(120)))
	assert.Equal(t, 120.0, *NumOrNil(float64(120)))
	require.NotNil(t, NumOrNil("3.5"))
	assert.Equal(t, 3.5, *NumOrNil("3.5"))
	require.NotNil(t, NumOrNil(" 42 "))
	assert.Equal(t, 42.0, *NumOrNil(" 42 "))
	require.NotNil(t, NumOrNil(0))
	assert.Equal(t, 0.0, *NumOrNil(0))
}

func TestBoolOrNil(t *testing.T) {
	assert.Nil(t, BoolOrNil(nil))

	require.NotNil(t, BoolOrNil(true))
	assert.True(t, *BoolOrNil(true))
	assert.False(t, *BoolOrNil(false))

	// string coercion follows form-submission truthiness
	assert.True(t, *BoolOrNil("true"))
	assert.True(t, *BoolOrNil("yes"))
	assert.False(t, *BoolOrNil("false"))
	assert.False(t, *BoolOrNil("0"))
	assert.False(t, *BoolOrNil(""))

	assert.True(t, *BoolOrNil(float64(1)))
	assert.False(t, *BoolOrNil(float64(0)))
}

func TestStrOrNil(t *testing.T) {
	assert.Nil(t, StrOrNil(nil))
	assert.Nil(t, StrOrNil(""))
	assert.Nil(t, StrOrNil("   "))
	assert.Nil(t, StrOrNil(42))

	require.NotNil(t, StrOrNil("  mixed  "))
	assert.Equal(t, "mixed", *StrOrNil("  mixed  "))
}

func TestIsValidCategory(t *testing.T) {
	for _, c := range []string{"apartment", "villa", "duplex", "studio", "shop", "office", "warehouse", "land", "building", "other"} {
		assert.True(t, IsValidCategory(c), c)
	}
	assert.False(t, IsValidCategory("castle"))
	assert.False(t, IsValidCategory(""))
}

func TestComposeGroupsResidential(t *testing.T) {
	body := map[string]any{
		"size":      float64(140),
		"bedrooms":  "3",
		"furnished": true,
		"plotArea":  float64(999), // foreign field, must be ignored
	}

	groups := ComposeGroups("apartment", body)
	require.NotNil(t, groups.Residential)
	assert.Nil(t, groups.Land)
	assert.Nil(t, groups.Commercial)
	assert.Nil(t, groups.Building)
	assert.Nil(t, groups.Other)

	assert.Equal(t, 140.0, *groups.Residential.Size)
	assert.Equal(t, 3.0, *groups.Residential.Bedrooms)
	assert.True(t, *groups.Residential.Furnished)
	assert.Nil(t, groups.Residential.Bathrooms)
	assert.Nil(t, groups.Residential.Parking)
}

func TestComposeGroupsLandAndCommercial(t *testing.T) {
	land := ComposeGroups("land", map[string]any{
		"plotArea":  "450",
		"zoning":    " agricultural ",
		"cornerLot": false,
	})
	require.NotNil(t, land.Land)
	assert.Equal(t, 450.0, *land.Land.PlotArea)
	assert.Equal(t, "agricultural", *land.Land.Zoning)
	assert.False(t, *land.Land.CornerLot)

	shop := ComposeGroups("shop", map[string]any{
		"floorArea":    float64(80),
		"licenseType":  "retail",
		"hasMezz":      true,
		"parkingSpots": float64(2),
	})
	require.NotNil(t, shop.Commercial)
	assert.Equal(t, 80.0, *shop.Commercial.FloorArea)
	assert.Equal(t, "retail", *shop.Commercial.LicenseType)
	assert.True(t, *shop.Commercial.HasMezz)
	assert.Equal(t, 2.0, *shop.Commercial.ParkingSpots)
}

func TestComposeGroupsBuilding(t *testing.T) {
	groups := ComposeGroups("building", map[string]any{
		"totalFloors": float64(6),
		"totalUnits":  float64(24),
		"elevator":    true,
		"buildYear":   "2015",
	})
	require.NotNil(t, groups.Building)
	assert.Equal(t, 6.0, *groups.Building.TotalFloors)
	assert.Equal(t, 24.0, *groups.Building.TotalUnits)
	assert.True(t, *groups.Building.Elevator)
	assert.Equal(t, 2015.0, *groups.Building.BuildYear)
	assert.Nil(t, groups.Building.LandArea)
}

func TestComposeGroupsUnknownCategoryFallsToOther(t *testing.T) {
	groups := ComposeGroups("chalet", map[string]any{"size": float64(95)})
	require.NotNil(t, groups.Other)
	assert.Equal(t, 95.0, *groups.Other.Size)
	assert.Nil(t, groups.Residential)
}

func TestComposeGroupsAllAbsentDropsGroup(t *testing.T) {
	groups := ComposeGroups("apartment", map[string]any{
		"size":     "",
		"bedrooms": nil,
		"title":    "irrelevant",
	})
	assert.Nil(t, groups.Residential)
	assert.Nil(t, groups.Land)
	assert.Nil(t, groups.Commercial)
	assert.Nil(t, groups.Building)
	assert.Nil(t, groups.Other)
}

func TestComposeGroupsIdempotent(t *testing.T) {
	body := map[string]any{
		"size":      float64(100),
		"bathrooms": "2",
		"parking":   true,
	}

	first := ComposeGroups("villa", body)
	require.NotNil(t, first.Residential)

	// re-run over values the first pass already produced
	again := ComposeGroups("villa", map[string]any{
		"size":      *first.Residential.Size,
		"bathrooms": *first.Residential.Bathrooms,
		"parking":   *first.Residential.Parking,
	})
	assert.Equal(t, first, again)
}
