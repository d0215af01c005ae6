package services

import (
	"context"
	"sort"

	"github.com/aqardot/aqardot-api/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type LocationService struct {
	locationRepo models.LocationRepo
}

func NewLocationService(locationRepo models.LocationRepo) *LocationService {
	return &LocationService{locationRepo: locationRepo}
}

/* ----------------------------- response shapes ---------------------------- */

type GovernorateView struct {
	models.Localized
	Sort int `json:"sort"`
}

type CityView struct {
	models.Localized
	Popular bool `json:"popular"`
}

type CitiesResponse struct {
	Governorate models.Localized `json:"governorate"`
	Count       int              `json:"count"`
	Cities      []CityView       `json:"cities"`
}

type AreasResponse struct {
	Governorate models.Localized   `json:"governorate"`
	City        models.Localized   `json:"city"`
	Count       int                `json:"count"`
	Areas       []models.Localized `json:"areas"`
}

type SubareasResponse struct {
	Governorate models.Localized   `json:"governorate"`
	City        models.Localized   `json:"city"`
	Area        models.Localized   `json:"area"`
	Count       int                `json:"count"`
	Subareas    []models.Localized `json:"subareas"`
}

type TreeArea struct {
	models.Localized
	Subareas []models.Localized `json:"subareas"`
}

type TreeCity struct {
	models.Localized
	Popular bool       `json:"popular"`
	Areas   []TreeArea `json:"areas"`
}

type TreeResponse struct {
	models.Localized
	Sort   int        `json:"sort"`
	Cities []TreeCity `json:"cities"`
}

/* ------------------------------- operations ------------------------------- */

// Governorates keeps the explicit sort order from the repo (numeric sort
// field, then name); only deduplication and projection happen here.
func (ls *LocationService) Governorates(ctx context.Context, lang models.Lang, q string) ([]GovernorateView, error) {
	govs, err := ls.locationRepo.GetGovernorates(ctx, q)
	if err != nil {
		return nil, err
	}

	out := make([]GovernorateView, 0, len(govs))
	for _, g := range govs {
		out = append(out, GovernorateView{
			Localized: models.LangProject(g.Name, g.NameAr, g.Slug, lang),
			Sort:      g.Sort,
		})
	}
	return out, nil
}

func (ls *LocationService) Cities(ctx context.Context, lang models.Lang, govSlug string) (*CitiesResponse, error) {
	gov, err := ls.locationRepo.GetGovernorate(ctx, govSlug)
	if err != nil {
		return nil, err
	}

	cities := models.DedupeBySlug(gov.Cities, func(c models.City) string { return c.Slug })
	views := make([]CityView, 0, len(cities))
	for _, c := range cities {
		views = append(views, CityView{
			Localized: models.LangProject(c.Name, c.NameAr, c.Slug, lang),
			Popular:   c.Popular,
		})
	}
	sortLocalized(len(views), func(i int) string { return displayName(views[i].Localized) },
		func(i, j int) { views[i], views[j] = views[j], views[i] })

	return &CitiesResponse{
		Governorate: models.LangProject(gov.Name, gov.NameAr, gov.Slug, lang),
		Count:       len(views),
		Cities:      views,
	}, nil
}

func (ls *LocationService) Areas(ctx context.Context, lang models.Lang, govSlug, citySlug string) (*AreasResponse, error) {
	gov, city, err := ls.locationRepo.GetCity(ctx, govSlug, citySlug)
	if err != nil {
		return nil, err
	}

	areas := models.DedupeBySlug(city.Areas, func(a models.Area) string { return a.Slug })
	views := make([]models.Localized, 0, len(areas))
	for _, a := range areas {
		views = append(views, models.LangProject(a.Name, a.NameAr, a.Slug, lang))
	}
	sortLocalized(len(views), func(i int) string { return displayName(views[i]) },
		func(i, j int) { views[i], views[j] = views[j], views[i] })

	return &AreasResponse{
		Governorate: models.LangProject(gov.Name, gov.NameAr, gov.Slug, lang),
		City:        models.LangProject(city.Name, city.NameAr, city.Slug, lang),
		Count:       len(views),
		Areas:       views,
	}, nil
}

func (ls *LocationService) Subareas(ctx context.Context, lang models.Lang, govSlug, citySlug, areaSlug string) (*SubareasResponse, error) {
	gov, city, area, err := ls.locationRepo.GetArea(ctx, govSlug, citySlug, areaSlug)
	if err != nil {
		return nil, err
	}

	subareas := models.DedupeBySlug(area.Subareas, func(s models.Subarea) string { return s.Slug })
	views := make([]models.Localized, 0, len(subareas))
	for _, s := range subareas {
		views = append(views, models.LangProject(s.Name, s.NameAr, s.Slug, lang))
	}
	sortLocalized(len(views), func(i int) string { return displayName(views[i]) },
		func(i, j int) { views[i], views[j] = views[j], views[i] })

	return &SubareasResponse{
		Governorate: models.LangProject(gov.Name, gov.NameAr, gov.Slug, lang),
		City:        models.LangProject(city.Name, city.NameAr, city.Slug, lang),
		Area:        models.LangProject(area.Name, area.NameAr, area.Slug, lang),
		Count:       len(views),
		Subareas:    views,
	}, nil
}

// Tree returns the governorate's whole shaped tree, deduplicated at every
// level. Sibling order is kept as stored.
func (ls *LocationService) Tree(ctx context.Context, lang models.Lang, govSlug string) (*TreeResponse, error) {
	gov, err := ls.locationRepo.GetGovernorate(ctx, govSlug)
	if err != nil {
		return nil, err
	}

	cities := models.DedupeBySlug(gov.Cities, func(c models.City) string { return c.Slug })
	treeCities := make([]TreeCity, 0, len(cities))
	for _, c := range cities {
		areas := models.DedupeBySlug(c.Areas, func(a models.Area) string { return a.Slug })
		treeAreas := make([]TreeArea, 0, len(areas))
		for _, a := range areas {
			subareas := models.DedupeBySlug(a.Subareas, func(s models.Subarea) string { return s.Slug })
			subViews := make([]models.Localized, 0, len(subareas))
			for _, s := range subareas {
				subViews = append(subViews, models.LangProject(s.Name, s.NameAr, s.Slug, lang))
			}
			treeAreas = append(treeAreas, TreeArea{
				Localized: models.LangProject(a.Name, a.NameAr, a.Slug, lang),
				Subareas:  subViews,
			})
		}
		treeCities = append(treeCities, TreeCity{
			Localized: models.LangProject(c.Name, c.NameAr, c.Slug, lang),
			Popular:   c.Popular,
			Areas:     treeAreas,
		})
	}

	return &TreeResponse{
		Localized: models.LangProject(gov.Name, gov.NameAr, gov.Slug, lang),
		Sort:      gov.Sort,
		Cities:    treeCities,
	}, nil
}

/* ---------------------------- locale-aware sort --------------------------- */

func displayName(l models.Localized) string {
	if l.Name != "" {
		return l.Name
	}
	if l.NameAr != "" {
		return l.NameAr
	}
	return l.NameEn
}

// sortLocalized orders slice elements by display name using a case-folding
// collator, so mixed-script names sort the way clients show them. The
// collator is built per call: collate.Collator carries mutable iterator
// state, so a shared instance is unsafe under concurrent requests.
func sortLocalized(n int, key func(int) string, swap func(i, j int)) {
	c := collate.New(language.English, collate.IgnoreCase)
	sort.Stable(localizedSorter{c: c, n: n, key: key, swap: swap})
}

type localizedSorter struct {
	c    *collate.Collator
	n    int
	key  func(int) string
	swap func(i, j int)
}

func (s localizedSorter) Len() int      { return s.n }
func (s localizedSorter) Swap(i, j int) { s.swap(i, j) }
func (s localizedSorter) Less(i, j int) bool {
	return s.c.CompareString(s.key(i), s.key(j)) < 0
}
