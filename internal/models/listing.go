package models

import (
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ListingColName = "listings"

type Purpose string

const (
	PurposeRent Purpose = "rent"
	PurposeSale Purpose = "sale"
)

// Category tags. Each tag maps to exactly one attribute group.
var (
	ResidentialCategories = map[string]bool{
		"apartment": true,
		"villa":     true,
		"duplex":    true,
		"studio":    true,
	}
	CommercialCategories = map[string]bool{
		"shop":      true,
		"office":    true,
		"warehouse": true,
	}
	AllCategories = []string{
		"apartment", "villa", "duplex", "studio",
		"land", "shop", "office", "warehouse", "building", "other",
	}
)

func IsValidCategory(category string) bool {
	for _, c := range AllCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Residential covers apartments, villas, duplexes and studios.
type Residential struct {
	Size      *float64 `bson:"size,omitempty" json:"size,omitempty"`
	Bedrooms  *float64 `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	Bathrooms *float64 `bson:"bathrooms,omitempty" json:"bathrooms,omitempty"`
	Floor     *float64 `bson:"floor,omitempty" json:"floor,omitempty"`
	Furnished *bool    `bson:"furnished,omitempty" json:"furnished,omitempty"`
	Parking   *bool    `bson:"parking,omitempty" json:"parking,omitempty"`
}

type Land struct {
	PlotArea  *float64 `bson:"plotArea,omitempty" json:"plotArea,omitempty"`
	Frontage  *float64 `bson:"frontage,omitempty" json:"frontage,omitempty"`
	Zoning    *string  `bson:"zoning,omitempty" json:"zoning,omitempty"`
	CornerLot *bool    `bson:"cornerLot,omitempty" json:"cornerLot,omitempty"`
}

// Commercial covers shops, offices and warehouses.
type Commercial struct {
	FloorArea    *float64 `bson:"floorArea,omitempty" json:"floorArea,omitempty"`
	Frontage     *float64 `bson:"frontage,omitempty" json:"frontage,omitempty"`
	LicenseType  *string  `bson:"licenseType,omitempty" json:"licenseType,omitempty"`
	HasMezz      *bool    `bson:"hasMezz,omitempty" json:"hasMezz,omitempty"`
	ParkingSpots *float64 `bson:"parkingSpots,omitempty" json:"parkingSpots,omitempty"`
}

type Building struct {
	TotalFloors *float64 `bson:"totalFloors,omitempty" json:"totalFloors,omitempty"`
	TotalUnits  *float64 `bson:"totalUnits,omitempty" json:"totalUnits,omitempty"`
	Elevator    *bool    `bson:"elevator,omitempty" json:"elevator,omitempty"`
	LandArea    *float64 `bson:"landArea,omitempty" json:"landArea,omitempty"`
	BuildYear   *float64 `bson:"buildYear,omitempty" json:"buildYear,omitempty"`
}

// Other is the fallback group for categories outside the known sets.
type Other struct {
	Size *float64 `bson:"size,omitempty" json:"size,omitempty"`
}

// AttributeGroups holds at most one populated group; the rest stay nil so
// they are never stored as present-but-empty subdocuments.
type AttributeGroups struct {
	Residential *Residential `bson:"residential,omitempty" json:"residential,omitempty"`
	Land        *Land        `bson:"land,omitempty" json:"land,omitempty"`
	Commercial  *Commercial  `bson:"commercial,omitempty" json:"commercial,omitempty"`
	Building    *Building    `bson:"building,omitempty" json:"building,omitempty"`
	Other       *Other       `bson:"other,omitempty" json:"other,omitempty"`
}

type Listing struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Address     string             `bson:"address" json:"address"`
	Price       float64            `bson:"price" json:"price"`
	Purpose     Purpose            `bson:"purpose" json:"purpose"`
	Category    string             `bson:"category" json:"category"`
	Images      []string           `bson:"images" json:"images"`
	UserRef     string             `bson:"userRef" json:"userRef"`
	Location    ListingLocation    `bson:"location" json:"location"`

	AttributeGroups `bson:",inline"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

/* ------------------------- field coercion helpers ------------------------- */

// NumOrNil parses v into a number, or reports the field absent for
// nil/blank/unparseable input. Accepts JSON numbers and numeric strings.
func NumOrNil(v any) *float64 {
	switch n := v.(type) {
	case nil:
		return nil
	case float64:
		return &n
	case float32:
		f := float64(n)
		return &f
	case int:
		f := float64(n)
		return &f
	case int32:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	case string:
		if strings.TrimSpace(n) == "" {
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// BoolOrNil keeps nil absent and coerces everything else to a boolean the
// way the listing form submits them (bools, "true"/"false", 0/1).
func BoolOrNil(v any) *bool {
	switch b := v.(type) {
	case nil:
		return nil
	case bool:
		return &b
	case string:
		t := b != ""
		if b == "false" || b == "0" {
			t = false
		}
		return &t
	case float64:
		t := b != 0
		return &t
	case int:
		t := b != 0
		return &t
	default:
		t := true
		return &t
	}
}

// StrOrNil trims v, treating nil and empty strings as absent.
func StrOrNil(v any) *string {
	switch s := v.(type) {
	case nil:
		return nil
	case string:
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			return nil
		}
		return &trimmed
	default:
		return nil
	}
}

/* --------------------------- category composer ---------------------------- */

// ComposeGroups selects the attribute group matching category, coercing each
// relevant field from the free-form request body and discarding the rest.
// A group whose fields all end up absent is dropped entirely.
// Re-running it on fields it already produced yields the same result.
func ComposeGroups(category string, body map[string]any) AttributeGroups {
	var out AttributeGroups

	switch {
	case ResidentialCategories[category]:
		g := &Residential{
			Size:      NumOrNil(body["size"]),
			Bedrooms:  NumOrNil(body["bedrooms"]),
			Bathrooms: NumOrNil(body["bathrooms"]),
			Floor:     NumOrNil(body["floor"]),
			Furnished: BoolOrNil(body["furnished"]),
			Parking:   BoolOrNil(body["parking"]),
		}
		if g.Size != nil || g.Bedrooms != nil || g.Bathrooms != nil ||
			g.Floor != nil || g.Furnished != nil || g.Parking != nil {
			out.Residential = g
		}
	case category == "land":
		g := &Land{
			PlotArea:  NumOrNil(body["plotArea"]),
			Frontage:  NumOrNil(body["frontage"]),
			Zoning:    StrOrNil(body["zoning"]),
			CornerLot: BoolOrNil(body["cornerLot"]),
		}
		if g.PlotArea != nil || g.Frontage != nil || g.Zoning != nil || g.CornerLot != nil {
			out.Land = g
		}
	case CommercialCategories[category]:
		g := &Commercial{
			FloorArea:    NumOrNil(body["floorArea"]),
			Frontage:     NumOrNil(body["frontage"]),
			LicenseType:  StrOrNil(body["licenseType"]),
			HasMezz:      BoolOrNil(body["hasMezz"]),
			ParkingSpots: NumOrNil(body["parkingSpots"]),
		}
		if g.FloorArea != nil || g.Frontage != nil || g.LicenseType != nil ||
			g.HasMezz != nil || g.ParkingSpots != nil {
			out.Commercial = g
		}
	case category == "building":
		g := &Building{
			TotalFloors: NumOrNil(body["totalFloors"]),
			TotalUnits:  NumOrNil(body["totalUnits"]),
			Elevator:    BoolOrNil(body["elevator"]),
			LandArea:    NumOrNil(body["landArea"]),
			BuildYear:   NumOrNil(body["buildYear"]),
		}
		if g.TotalFloors != nil || g.TotalUnits != nil || g.Elevator != nil ||
			g.LandArea != nil || g.BuildYear != nil {
			out.Building = g
		}
	default:
		g := &Other{Size: NumOrNil(body["size"])}
		if g.Size != nil {
			out.Other = g
		}
	}

	return out
}
