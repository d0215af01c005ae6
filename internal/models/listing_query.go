package models

import (
	"go.mongodb.org/mongo-driver/bson"
)

const (
	DefaultSearchLimit = 12
	MaxSearchLimit     = 60
)

// SearchParams is the decoded query-string surface of the listing search.
// Zero values mean "not filtered".
type SearchParams struct {
	Term       string
	Purpose    string
	Category   string
	GovSlug    string
	CitySlug   string
	MinPrice   *float64
	MaxPrice   *float64
	Bedrooms   *float64
	Bathrooms  *float64
	MinSize    *float64
	MaxSize    *float64
	Furnished  bool
	Parking    bool
	Limit      int
	StartIndex int
	Sort       string
	Order      int // 1 asc, -1 desc
}

// sizeFields are the size-like fields across attribute groups; a size range
// matches a listing when any applicable group satisfies it.
var sizeFields = []string{
	"residential.size",
	"land.plotArea",
	"commercial.floorArea",
	"building.landArea",
	"other.size",
}

// BuildSearchFilter translates the params into one composed Mongo filter.
func (p SearchParams) BuildSearchFilter() bson.M {
	filter := bson.M{}

	if p.Term != "" {
		filter["$text"] = bson.M{"$search": p.Term}
	}
	if p.Purpose != "" {
		filter["purpose"] = p.Purpose
	}
	if p.Category != "" {
		filter["category"] = p.Category
	}
	if p.GovSlug != "" {
		filter["location.governorate.slug"] = p.GovSlug
	}
	if p.CitySlug != "" {
		filter["location.city.slug"] = p.CitySlug
	}

	if p.MinPrice != nil || p.MaxPrice != nil {
		price := bson.M{}
		if p.MinPrice != nil {
			price["$gte"] = *p.MinPrice
		}
		if p.MaxPrice != nil {
			price["$lte"] = *p.MaxPrice
		}
		filter["price"] = price
	}

	if p.Furnished {
		filter["residential.furnished"] = true
	}
	if p.Parking {
		filter["residential.parking"] = true
	}
	if p.Bedrooms != nil {
		filter["residential.bedrooms"] = *p.Bedrooms
	}
	if p.Bathrooms != nil {
		filter["residential.bathrooms"] = *p.Bathrooms
	}

	if p.MinSize != nil || p.MaxSize != nil {
		size := bson.M{}
		if p.MinSize != nil {
			size["$gte"] = *p.MinSize
		}
		if p.MaxSize != nil {
			size["$lte"] = *p.MaxSize
		}
		or := make(bson.A, 0, len(sizeFields))
		for _, field := range sizeFields {
			or = append(or, bson.M{field: size})
		}
		filter["$or"] = or
	}

	return filter
}

// BuildSort returns the sort document. With an active text search the
// relevance score leads and the requested field breaks ties.
func (p SearchParams) BuildSort() bson.D {
	sortField := p.Sort
	if sortField == "" {
		sortField = "createdAt"
	}
	order := p.Order
	if order == 0 {
		order = -1
	}

	if p.Term != "" {
		return bson.D{
			{Key: "score", Value: bson.M{"$meta": "textScore"}},
			{Key: sortField, Value: order},
		}
	}
	return bson.D{{Key: sortField, Value: order}}
}

// ClampedLimit enforces the default page size and the hard cap.
func (p SearchParams) ClampedLimit() int {
	if p.Limit <= 0 {
		return DefaultSearchLimit
	}
	if p.Limit > MaxSearchLimit {
		return MaxSearchLimit
	}
	return p.Limit
}
