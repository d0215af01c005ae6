package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLocation(t *testing.T) {
	loc := &ListingLocation{
		Governorate: LocationRef{Slug: "CAIRO", Name: "Cairo"},
		City:        LocationRef{Slug: "New-Cairo", Name: "New Cairo"},
		CityOtherText: "should vanish",
	}
	require.NoError(t, NormalizeLocation(loc))
	assert.Equal(t, "cairo", loc.Governorate.Slug)
	assert.Equal(t, "new-cairo", loc.City.Slug)
	assert.Equal(t, "", loc.CityOtherText, "other text only survives for the other city")

	other := &ListingLocation{
		Governorate:   LocationRef{Slug: "cairo", Name: "Cairo"},
		City:          LocationRef{Slug: "Other", Name: "Other"},
		CityOtherText: "Nice Area",
	}
	require.NoError(t, NormalizeLocation(other))
	assert.Equal(t, "Nice Area", other.CityOtherText)
}

func TestNormalizeLocationErrors(t *testing.T) {
	err := NormalizeLocation(&ListingLocation{
		City: LocationRef{Slug: "maadi", Name: "Maadi"},
	})
	assert.ErrorIs(t, err, ErrGovernorateRequired)
	assert.EqualError(t, err, "Governorate is required")

	err = NormalizeLocation(&ListingLocation{
		Governorate: LocationRef{Slug: "cairo", Name: "Cairo"},
	})
	assert.ErrorIs(t, err, ErrCityRequired)
	assert.EqualError(t, err, "City is required")

	// name missing counts as absent too
	err = NormalizeLocation(&ListingLocation{
		Governorate: LocationRef{Slug: "cairo"},
		City:        LocationRef{Slug: "maadi", Name: "Maadi"},
	})
	assert.ErrorIs(t, err, ErrGovernorateRequired)
}

func TestComposeAddressDisplay(t *testing.T) {
	assert.Equal(t, "Cairo - New Cairo", ComposeAddressDisplay(ListingLocation{
		Governorate: LocationRef{Slug: "cairo", Name: "Cairo"},
		City:        LocationRef{Slug: "new-cairo", Name: "New Cairo"},
	}))

	assert.Equal(t, "Cairo - Other (Nice Area)", ComposeAddressDisplay(ListingLocation{
		Governorate:   LocationRef{Slug: "cairo", Name: "Cairo"},
		City:          LocationRef{Slug: "other", Name: "Other"},
		CityOtherText: "Nice Area",
	}))

	// other text is inert for a known city
	assert.Equal(t, "Giza - Dokki", ComposeAddressDisplay(ListingLocation{
		Governorate:   LocationRef{Slug: "giza", Name: "Giza"},
		City:          LocationRef{Slug: "dokki", Name: "Dokki"},
		CityOtherText: "stray",
	}))
}

func TestCleanSuggestedArea(t *testing.T) {
	assert.Equal(t, "El Marg West", CleanSuggestedArea("  El   Marg \t West  "))
	assert.Equal(t, "Hay 10", CleanSuggestedArea("---Hay 10,,,"))
	assert.Equal(t, "", CleanSuggestedArea("a"))
	assert.Equal(t, "", CleanSuggestedArea("  -  "))
	assert.Equal(t, "حي", CleanSuggestedArea("حي"), "two runes pass even in multibyte script")
}

func TestParseLang(t *testing.T) {
	assert.Equal(t, LangEN, ParseLang("en"))
	assert.Equal(t, LangEN, ParseLang("EN"))
	assert.Equal(t, LangAR, ParseLang("ar"))
	assert.Equal(t, LangBoth, ParseLang("both"))
	assert.Equal(t, LangBoth, ParseLang("fr"))
	assert.Equal(t, LangBoth, ParseLang(""))
}

func TestLangProject(t *testing.T) {
	en := LangProject("Cairo", "القاهرة", "cairo", LangEN)
	assert.Equal(t, "Cairo", en.Name)
	assert.Equal(t, "القاهرة", en.NameAr)
	assert.Empty(t, en.NameEn)

	ar := LangProject("Cairo", "القاهرة", "cairo", LangAR)
	assert.Equal(t, "القاهرة", ar.Name)
	assert.Equal(t, "Cairo", ar.NameEn)

	both := LangProject("Cairo", "القاهرة", "cairo", LangBoth)
	assert.Equal(t, "Cairo", both.Name)
	assert.Equal(t, "القاهرة", both.NameAr)
}

func TestLangProjectCrossLanguageFallback(t *testing.T) {
	// English requested but only Arabic exists
	en := LangProject("", "مدينتي", "madinaty", LangEN)
	assert.Equal(t, "مدينتي", en.Name)

	// Arabic requested but only English exists
	ar := LangProject("Madinaty", "", "madinaty", LangAR)
	assert.Equal(t, "Madinaty", ar.Name)
}

func TestDedupeBySlug(t *testing.T) {
	cities := []City{
		{Slug: "maadi", Name: "Maadi"},
		{Slug: "maadi", Name: "Maadi Duplicate"},
		{Slug: "", Name: "Blank"},
		{Slug: "dokki", Name: "Dokki"},
	}

	out := DedupeBySlug(cities, func(c City) string { return c.Slug })
	require.Len(t, out, 2)
	assert.Equal(t, "Maadi", out[0].Name, "first occurrence wins")
	assert.Equal(t, "dokki", out[1].Slug)
}
