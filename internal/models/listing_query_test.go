package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func f(v float64) *float64 { return &v }

func TestBuildSearchFilterEmpty(t *testing.T) {
	filter := SearchParams{}.BuildSearchFilter()
	assert.Empty(t, filter)
}

func TestBuildSearchFilterFields(t *testing.T) {
	filter := SearchParams{
		Term:      "sea view",
		Purpose:   "rent",
		Category:  "apartment",
		GovSlug:   "alexandria",
		CitySlug:  "smouha",
		MinPrice:  f(1000),
		MaxPrice:  f(5000),
		Bedrooms:  f(3),
		Bathrooms: f(2),
		Furnished: true,
		Parking:   true,
	}.BuildSearchFilter()

	assert.Equal(t, bson.M{"$search": "sea view"}, filter["$text"])
	assert.Equal(t, "rent", filter["purpose"])
	assert.Equal(t, "apartment", filter["category"])
	assert.Equal(t, "alexandria", filter["location.governorate.slug"])
	assert.Equal(t, "smouha", filter["location.city.slug"])
	assert.Equal(t, bson.M{"$gte": 1000.0, "$lte": 5000.0}, filter["price"])
	assert.Equal(t, 3.0, filter["residential.bedrooms"])
	assert.Equal(t, 2.0, filter["residential.bathrooms"])
	assert.Equal(t, true, filter["residential.furnished"])
	assert.Equal(t, true, filter["residential.parking"])
}

func TestBuildSearchFilterSizeRangeSpansGroups(t *testing.T) {
	filter := SearchParams{MinSize: f(100), MaxSize: f(300)}.BuildSearchFilter()

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 5)

	fields := make([]string, 0, len(or))
	for _, clause := range or {
		m := clause.(bson.M)
		require.Len(t, m, 1)
		for field, cond := range m {
			fields = append(fields, field)
			assert.Equal(t, bson.M{"$gte": 100.0, "$lte": 300.0}, cond)
		}
	}
	assert.ElementsMatch(t, []string{
		"residential.size", "land.plotArea", "commercial.floorArea",
		"building.landArea", "other.size",
	}, fields)
}

func TestBuildSortDefault(t *testing.T) {
	sort := SearchParams{}.BuildSort()
	require.Len(t, sort, 1)
	assert.Equal(t, "createdAt", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)
}

func TestBuildSortWithTermLeadsWithScore(t *testing.T) {
	sort := SearchParams{Term: "garden", Sort: "price", Order: 1}.BuildSort()
	require.Len(t, sort, 2)
	assert.Equal(t, "score", sort[0].Key)
	assert.Equal(t, bson.M{"$meta": "textScore"}, sort[0].Value)
	assert.Equal(t, "price", sort[1].Key)
	assert.Equal(t, 1, sort[1].Value)
}

func TestClampedLimit(t *testing.T) {
	assert.Equal(t, DefaultSearchLimit, SearchParams{}.ClampedLimit())
	assert.Equal(t, DefaultSearchLimit, SearchParams{Limit: -5}.ClampedLimit())
	assert.Equal(t, 30, SearchParams{Limit: 30}.ClampedLimit())
	assert.Equal(t, MaxSearchLimit, SearchParams{Limit: 500}.ClampedLimit())
}
