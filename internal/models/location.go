package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	LocationColName      = "locations"
	SuggestedAreaColName = "suggested_areas"
)

// Subarea is the leaf of the governorate → city → area → subarea tree.
type Subarea struct {
	Name   string `bson:"name" json:"name"`
	NameAr string `bson:"nameAr,omitempty" json:"nameAr,omitempty"`
	Slug   string `bson:"slug" json:"slug"`
}

type Area struct {
	Name     string    `bson:"name" json:"name"`
	NameAr   string    `bson:"nameAr,omitempty" json:"nameAr,omitempty"`
	Slug     string    `bson:"slug" json:"slug"`
	Subareas []Subarea `bson:"subareas,omitempty" json:"subareas,omitempty"`
}

type City struct {
	Name    string `bson:"name" json:"name"`
	NameAr  string `bson:"nameAr,omitempty" json:"nameAr,omitempty"`
	Slug    string `bson:"slug" json:"slug"`
	Popular bool   `bson:"popular,omitempty" json:"popular"`
	Areas   []Area `bson:"areas,omitempty" json:"areas,omitempty"`
}

type Governorate struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name   string             `bson:"name" json:"name"`
	NameAr string             `bson:"nameAr,omitempty" json:"nameAr,omitempty"`
	Slug   string             `bson:"slug" json:"slug"`
	Sort   int                `bson:"sort" json:"sort"`
	Cities []City             `bson:"cities" json:"cities"`
}

// SuggestedArea is a write-mostly log of free-text area names users submit
// when the taxonomy has no match, deduplicated per governorate.
type SuggestedArea struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GovernorateSlug string             `bson:"governorateSlug" json:"governorateSlug"`
	GovernorateName string             `bson:"governorateName" json:"governorateName"`
	Name            string             `bson:"name" json:"name"`
	DisplayName     string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
	Source          string             `bson:"source" json:"source"`
	CreatedAt       time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

/* ----------------------- listing location snapshot ------------------------ */

type LocationRef struct {
	Slug string `bson:"slug" json:"slug"`
	Name string `bson:"name" json:"name"`
}

// ListingLocation is the normalized snapshot stored on each listing.
// CityOtherText is only meaningful when the city slug is "other".
type ListingLocation struct {
	Governorate   LocationRef `bson:"governorate" json:"governorate"`
	City          LocationRef `bson:"city" json:"city"`
	CityOtherText string      `bson:"city_other_text" json:"city_other_text"`
}

var (
	ErrGovernorateRequired = errors.New("Governorate is required")
	ErrCityRequired        = errors.New("City is required")
)

// NormalizeLocation validates the required governorate/city shape, lowercases
// the slugs and clears the free-text field unless the city is "other".
func NormalizeLocation(loc *ListingLocation) error {
	if loc == nil || loc.Governorate.Slug == "" || loc.Governorate.Name == "" {
		return ErrGovernorateRequired
	}
	if loc.City.Slug == "" || loc.City.Name == "" {
		return ErrCityRequired
	}
	loc.Governorate.Slug = strings.ToLower(loc.Governorate.Slug)
	loc.City.Slug = strings.ToLower(loc.City.Slug)
	if loc.City.Slug != "other" {
		loc.CityOtherText = ""
	}
	return nil
}

// ComposeAddressDisplay renders the human-readable address string. The
// "<governorate> - <city>" format is a contract with the clients; the
// parenthetical is appended only for free-text "other" cities.
func ComposeAddressDisplay(loc ListingLocation) string {
	extra := ""
	if loc.City.Slug == "other" && loc.CityOtherText != "" {
		extra = " (" + loc.CityOtherText + ")"
	}
	return loc.Governorate.Name + " - " + loc.City.Name + extra
}

var (
	collapseSpaces = regexp.MustCompile(`\s+`)
	edgePunct      = regexp.MustCompile(`^[,\.\-_/\\]+|[,\.\-_/\\]+$`)
)

// CleanSuggestedArea normalizes a free-text area name for the suggestion
// log. Returns "" when the remainder is too short to be worth keeping.
func CleanSuggestedArea(raw string) string {
	cleaned := collapseSpaces.ReplaceAllString(strings.TrimSpace(raw), " ")
	cleaned = edgePunct.ReplaceAllString(cleaned, "")
	if len([]rune(cleaned)) < 2 {
		return ""
	}
	return cleaned
}

/* ------------------------- bilingual projection --------------------------- */

type Lang string

const (
	LangEN   Lang = "en"
	LangAR   Lang = "ar"
	LangBoth Lang = "both"
)

// ParseLang falls back to "both" for anything unrecognized.
func ParseLang(raw string) Lang {
	switch Lang(strings.ToLower(raw)) {
	case LangEN:
		return LangEN
	case LangAR:
		return LangAR
	default:
		return LangBoth
	}
}

// Localized is the language-shaped view of any tree node. The display name
// falls back to the other language so it is never empty when either exists.
type Localized struct {
	Slug   string `json:"slug"`
	Name   string `json:"name"`
	NameAr string `json:"nameAr,omitempty"`
	NameEn string `json:"nameEn,omitempty"`
}

func LangProject(name, nameAr, slug string, lang Lang) Localized {
	switch lang {
	case LangEN:
		display := name
		if display == "" {
			display = nameAr
		}
		return Localized{Slug: slug, Name: display, NameAr: nameAr}
	case LangAR:
		display := nameAr
		if display == "" {
			display = name
		}
		return Localized{Slug: slug, Name: display, NameEn: name}
	default:
		return Localized{Slug: slug, Name: name, NameAr: nameAr}
	}
}

// DedupeBySlug keeps the first occurrence of every slug, skipping blanks.
func DedupeBySlug[T any](items []T, slugOf func(T) string) []T {
	seen := make(map[string]bool, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		slug := slugOf(item)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		out = append(out, item)
	}
	return out
}
